package schema

// YesNoTBC is the value set used by sign-off style flags
var YesNoTBC = []string{"Yes", "No", "TBC"}

func intPtr(n int) *int { return &n }

func text(name string) Field {
	return Field{Name: name, Column: name, Kind: KindText}
}

func date(name string) Field {
	return Field{Name: name, Column: name, Kind: KindDate}
}

func integer(name string) Field {
	return Field{Name: name, Column: name, Kind: KindInteger}
}

func rangedInt(name string, min, max int, message string) Field {
	return Field{Name: name, Column: name, Kind: KindInteger, Min: intPtr(min), Max: intPtr(max), RangeMessage: message}
}

func money(name string) Field {
	return Field{Name: name, Column: name, Kind: KindDecimal}
}

func foreignKey(name string) Field {
	return Field{Name: name, Column: name, Kind: KindForeignKey}
}

func enum(name string, values []string) Field {
	return Field{Name: name, Column: name, Kind: KindEnum, Values: values}
}

// signOff is a Yes/No/TBC flag stored in a NOT NULL column; blank input
// clears it back to TBC rather than to NULL
func signOff(name string) Field {
	return Field{Name: name, Column: name, Kind: KindEnum, Values: YesNoTBC, Default: "TBC"}
}

// Per-section allow-lists and kind maps. These are part of the update
// contract surface: reconciliation for a section accepts exactly these
// payload keys and silently discards everything else.
var (
	// Commercial owns the deal terms agreed with the landlord
	Commercial = NewSection("commercial", []Field{
		date("offer_agreed_date"),
		date("contract_signed_date"),
		money("lease_per_annum"),
		money("rent_deposit"),
		money("rates_per_annum"),
		money("power_per_annum"),
		money("insurance_per_annum"),
		integer("term_years"),
		integer("rent_review_years"),
		integer("break_clause_years"),
		rangedInt("probability", 0, 100, "must be between 0 and 100"),
		money("commission_rate"),
		money("capex_budget"),
		text("landlord_name"),
		text("landlord_agent"),
	})

	// Design owns the artwork and its sign-off
	Design = NewSection("design", []Field{
		text("design_ref"),
		enum("design_status", []string{"draft", "final"}),
		signOff("design_signed_off"),
		date("design_sign_off_date"),
		text("design_signed_off_by"),
	})

	// Planning owns the two consent applications: the planning application
	// and the advertisement application, tracked independently
	Planning = NewSection("planning", []Field{
		foreignKey("planning_status_id"),
		date("planning_submitted_date"),
		date("planning_registered_date"),
		date("planning_determined_date"),
		date("planning_appeal_lodged_date"),
		text("planning_appeal_decision"),
		integer("planning_conditions_count"),
		foreignKey("advert_status_id"),
		date("advert_submitted_date"),
		date("advert_registered_date"),
		date("advert_determined_date"),
		date("advert_appeal_lodged_date"),
		text("advert_appeal_decision"),
		integer("advert_conditions_count"),
		rangedInt("planning_score", 1, 5, "must be between 1 and 5"),
	})

	// Marketing owns who the site is being sold to
	Marketing = NewSection("marketing", []Field{
		foreignKey("media_owner_id"),
		foreignKey("agent_id"),
	})

	// Build owns the physical construction milestones
	Build = NewSection("build", []Field{
		date("build_start_date"),
		date("build_completion_date"),
		date("build_live_date"),
		text("contractor_name"),
		text("build_notes"),
	})

	// PanelConfiguration owns the physical panel sub-records. It is consumed
	// by the batch set editor rather than the single-record reconciler.
	PanelConfiguration = NewSection("panel_configuration", []Field{
		foreignKey("panel_type_id"),
		foreignKey("panel_size_id"),
		foreignKey("orientation_id"),
		foreignKey("structure_id"),
		signOff("digital"),
		signOff("illuminated"),
		rangedInt("sides", 1, 4, "must be between 1 and 4"),
		Field{Name: "quantity", Column: "quantity", Kind: KindInteger, Min: intPtr(1)},
		money("height_mm"),
		money("width_mm"),
	})
)

// projectSections are the sections that reconcile against the project record
var projectSections = map[string]Section{
	Commercial.Name: Commercial,
	Design.Name:     Design,
	Planning.Name:   Planning,
	Marketing.Name:  Marketing,
	Build.Name:      Build,
}

// ProjectSectionByName returns the named project-level section. The panel
// configuration section is deliberately excluded: its records are edited
// through the batch set editor, not the project reconciler.
func ProjectSectionByName(name string) (Section, bool) {
	s, ok := projectSections[name]
	return s, ok
}

// ProjectSectionNames lists the valid project-level section names
func ProjectSectionNames() []string {
	return []string{Commercial.Name, Design.Name, Planning.Name, Marketing.Name, Build.Name}
}
