package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectSectionByName(t *testing.T) {
	for _, name := range ProjectSectionNames() {
		t.Run(name, func(t *testing.T) {
			section, ok := ProjectSectionByName(name)
			require.True(t, ok)
			assert.Equal(t, name, section.Name)
			assert.NotEmpty(t, section.Fields)
		})
	}

	t.Run("unknown section", func(t *testing.T) {
		_, ok := ProjectSectionByName("finance")
		assert.False(t, ok)
	})

	t.Run("panel configuration is not a project section", func(t *testing.T) {
		_, ok := ProjectSectionByName(PanelConfiguration.Name)
		assert.False(t, ok)
	})
}

func TestSectionAllowListsAreDisjoint(t *testing.T) {
	seen := make(map[string]string)
	for _, name := range ProjectSectionNames() {
		section, _ := ProjectSectionByName(name)
		for _, f := range section.Fields {
			owner, exists := seen[f.Name]
			require.False(t, exists, "field %s owned by both %s and %s", f.Name, owner, name)
			seen[f.Name] = name
		}
	}
}

func TestSectionLookup(t *testing.T) {
	f, ok := Commercial.Lookup("probability")
	require.True(t, ok)
	assert.Equal(t, KindInteger, f.Kind)
	require.NotNil(t, f.Min)
	require.NotNil(t, f.Max)
	assert.Equal(t, 0, *f.Min)
	assert.Equal(t, 100, *f.Max)

	// Commercial fields are invisible to the design section
	_, ok = Design.Lookup("lease_per_annum")
	assert.False(t, ok)

	// Unknown keys are invisible everywhere
	_, ok = Build.Lookup("favourite_colour")
	assert.False(t, ok)
}

func TestSectionKinds(t *testing.T) {
	tests := []struct {
		section Section
		field   string
		kind    Kind
	}{
		{Commercial, "offer_agreed_date", KindDate},
		{Commercial, "lease_per_annum", KindDecimal},
		{Commercial, "landlord_name", KindText},
		{Design, "design_signed_off", KindEnum},
		{Planning, "planning_status_id", KindForeignKey},
		{Planning, "planning_score", KindInteger},
		{Marketing, "media_owner_id", KindForeignKey},
		{Build, "build_live_date", KindDate},
		{PanelConfiguration, "digital", KindEnum},
		{PanelConfiguration, "height_mm", KindDecimal},
	}

	for _, tt := range tests {
		t.Run(tt.section.Name+"."+tt.field, func(t *testing.T) {
			f, ok := tt.section.Lookup(tt.field)
			require.True(t, ok)
			assert.Equal(t, tt.kind, f.Kind)
		})
	}
}
