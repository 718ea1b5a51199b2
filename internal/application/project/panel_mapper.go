package project

import (
	"github.com/devtrack/backend/internal/domain/project"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// applyPanelDelta maps a coerced column delta onto a panel configuration
// entity. A nil value clears the field; enum columns fall back to TBC when
// cleared.
func applyPanelDelta(pc *project.PanelConfiguration, delta map[string]any) {
	for column, value := range delta {
		switch column {
		case "panel_type_id":
			pc.PanelTypeID = asIDPtr(value)
		case "panel_size_id":
			pc.PanelSizeID = asIDPtr(value)
		case "orientation_id":
			pc.OrientationID = asIDPtr(value)
		case "structure_id":
			pc.StructureID = asIDPtr(value)
		case "digital":
			pc.Digital = asSignOffFlag(value)
		case "illuminated":
			pc.Illuminated = asSignOffFlag(value)
		case "sides":
			pc.Sides = asIntPtr(value)
		case "quantity":
			pc.Quantity = asIntPtr(value)
		case "height_mm":
			pc.HeightMM = asDecimalPtr(value)
		case "width_mm":
			pc.WidthMM = asDecimalPtr(value)
		}
	}
}

func asIDPtr(value any) *uuid.UUID {
	if id, ok := value.(uuid.UUID); ok {
		return &id
	}
	return nil
}

func asIntPtr(value any) *int {
	if n, ok := value.(int); ok {
		return &n
	}
	return nil
}

func asDecimalPtr(value any) *decimal.Decimal {
	if d, ok := value.(decimal.Decimal); ok {
		return &d
	}
	return nil
}

func asSignOffFlag(value any) project.SignOffFlag {
	if s, ok := value.(string); ok && s != "" {
		return project.SignOffFlag(s)
	}
	return project.SignOffTBC
}
