package project

// Stage is one of the seven fixed lifecycle phases. It is a pure projection
// of the project's field snapshot, never persisted.
type Stage string

const (
	StageSurvey     Stage = "survey"
	StageCommercial Stage = "commercial"
	StageDesign     Stage = "design"
	StagePlanning   Stage = "planning"
	StageMarketing  Stage = "marketing"
	StageBuild      Stage = "build"
	StageLive       Stage = "live"
)

// AllStages lists the stages in pipeline order, earliest first
var AllStages = []Stage{
	StageSurvey,
	StageCommercial,
	StageDesign,
	StagePlanning,
	StageMarketing,
	StageBuild,
	StageLive,
}

// String returns the string representation of Stage
func (s Stage) String() string {
	return string(s)
}

// IsValid checks if the stage is a valid Stage
func (s Stage) IsValid() bool {
	switch s {
	case StageSurvey, StageCommercial, StageDesign, StagePlanning,
		StageMarketing, StageBuild, StageLive:
		return true
	}
	return false
}

// InferStage determines which stage a project currently occupies. Stages are
// not mutually exclusive in the stored data, so the scan runs most-advanced
// first and the first populated signal wins: a project with both an offer
// date and a live date is live, not commercial.
func InferStage(p *Project) Stage {
	switch {
	case p.BuildLiveDate != nil:
		return StageLive
	case p.BuildStartDate != nil || p.BuildCompletionDate != nil:
		return StageBuild
	case p.MediaOwnerID != nil:
		return StageMarketing
	case p.PlanningSubmittedDate != nil || p.AdvertSubmittedDate != nil:
		return StagePlanning
	case p.DesignSignedOff == SignOffYes:
		return StageDesign
	case p.ContractSignedDate != nil || p.OfferAgreedDate != nil:
		return StageCommercial
	default:
		return StageSurvey
	}
}

// IsStageComplete reports whether a stage's own work is finished. This is
// computed independently of stage currency and uses stricter conditions than
// the inference signals, so a stage can be complete without being current
// and current without being complete.
func IsStageComplete(p *Project, stage Stage) bool {
	switch stage {
	case StageSurvey:
		return p.Name != "" && p.Address != "" && p.Postcode != ""
	case StageCommercial:
		return p.ContractSignedDate != nil
	case StageDesign:
		return p.DesignSignedOff == SignOffYes
	case StagePlanning:
		return p.PlanningDeterminedDate != nil || p.AdvertDeterminedDate != nil
	case StageMarketing:
		return p.MediaOwnerID != nil
	case StageBuild:
		return p.BuildCompletionDate != nil
	case StageLive:
		return p.BuildLiveDate != nil
	}
	return false
}

// StageCompleteness returns the completeness badge for every stage
func StageCompleteness(p *Project) map[Stage]bool {
	result := make(map[Stage]bool, len(AllStages))
	for _, stage := range AllStages {
		result[stage] = IsStageComplete(p, stage)
	}
	return result
}
