package schema

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce_BlankClearsField(t *testing.T) {
	fields := []Field{
		text("notes"),
		integer("sides"),
		money("lease_per_annum"),
		date("offer_agreed_date"),
		foreignKey("media_owner_id"),
		enum("design_status", []string{"draft", "final"}),
	}

	for _, f := range fields {
		t.Run(f.Name+"/empty string", func(t *testing.T) {
			value, err := Coerce(f, "")
			require.NoError(t, err)
			assert.Nil(t, value)
		})
		t.Run(f.Name+"/whitespace", func(t *testing.T) {
			value, err := Coerce(f, "   ")
			require.NoError(t, err)
			assert.Nil(t, value)
		})
		t.Run(f.Name+"/nil", func(t *testing.T) {
			value, err := Coerce(f, nil)
			require.NoError(t, err)
			assert.Nil(t, value)
		})
	}
}

func TestCoerce_BlankSignOffClearsToDefault(t *testing.T) {
	// Sign-off flags live in NOT NULL columns, so clearing one must produce
	// the declared default rather than nil
	for _, f := range []Field{signOff("design_signed_off"), signOff("digital"), signOff("illuminated")} {
		for _, raw := range []any{nil, "", "   "} {
			value, err := Coerce(f, raw)
			require.NoError(t, err)
			assert.Equal(t, "TBC", value, f.Name)
		}
	}
}

func TestCoerce_Integer(t *testing.T) {
	probability := rangedInt("probability", 0, 100, "must be between 0 and 100")

	tests := []struct {
		name    string
		field   Field
		raw     any
		want    any
		wantErr string
	}{
		{"json number", integer("term_years"), float64(15), 15, ""},
		{"string number", integer("term_years"), "15", 15, ""},
		{"native int", integer("term_years"), 15, 15, ""},
		{"fractional json number", integer("term_years"), 15.5, nil, "must be a whole number"},
		{"fractional string", integer("term_years"), "15.5", nil, "must be a whole number"},
		{"non-numeric", integer("term_years"), "soon", nil, "must be a number"},
		{"bool", integer("term_years"), true, nil, "must be a number"},
		{"in range", probability, float64(100), 100, ""},
		{"below range", probability, float64(-1), nil, "must be between 0 and 100"},
		{"above range", probability, float64(101), nil, "must be between 0 and 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := Coerce(tt.field, tt.raw)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestCoerce_IntegerRangeMessageIndependentOfNumericCheck(t *testing.T) {
	score := rangedInt("planning_score", 1, 5, "must be between 1 and 5")

	// Non-numeric input gets the generic message, not the range message
	_, err := Coerce(score, "excellent")
	require.Error(t, err)
	assert.Equal(t, "must be a number", err.Error())

	// Out-of-range numeric input gets the field-specific message
	_, err = Coerce(score, float64(6))
	require.Error(t, err)
	assert.Equal(t, "must be between 1 and 5", err.Error())
}

func TestCoerce_Decimal(t *testing.T) {
	lease := money("lease_per_annum")

	t.Run("string figure", func(t *testing.T) {
		value, err := Coerce(lease, "12500.50")
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("12500.50").Equal(value.(decimal.Decimal)))
	})

	t.Run("json number", func(t *testing.T) {
		value, err := Coerce(lease, 12500.5)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromFloat(12500.5).Equal(value.(decimal.Decimal)))
	})

	t.Run("non-numeric", func(t *testing.T) {
		_, err := Coerce(lease, "twelve grand")
		require.Error(t, err)
		assert.Equal(t, "must be a number", err.Error())
	})
}

func TestCoerce_Date(t *testing.T) {
	f := date("offer_agreed_date")

	tests := []struct {
		name    string
		raw     any
		wantErr bool
	}{
		{"iso date", "2025-03-14", false},
		{"rfc3339", "2025-03-14T09:30:00Z", false},
		{"uk date", "14/03/2025", false},
		{"invalid calendar date", "2025-02-30", true},
		{"garbage", "next tuesday", true},
		{"number", float64(20250314), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := Coerce(f, tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "must be a valid date", err.Error())
				return
			}
			require.NoError(t, err)
			parsed, ok := value.(time.Time)
			require.True(t, ok)
			assert.Equal(t, 2025, parsed.Year())
			assert.Equal(t, time.March, parsed.Month())
			assert.Equal(t, 14, parsed.Day())
		})
	}
}

func TestCoerce_ForeignKey(t *testing.T) {
	f := foreignKey("media_owner_id")
	id := uuid.New()

	t.Run("valid id string", func(t *testing.T) {
		value, err := Coerce(f, id.String())
		require.NoError(t, err)
		assert.Equal(t, id, value)
	})

	t.Run("already parsed", func(t *testing.T) {
		value, err := Coerce(f, id)
		require.NoError(t, err)
		assert.Equal(t, id, value)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := Coerce(f, "12345")
		require.Error(t, err)
		assert.Equal(t, "must be a valid id", err.Error())
	})
}

func TestCoerce_Enum(t *testing.T) {
	f := enum("digital", YesNoTBC)

	for _, allowed := range YesNoTBC {
		t.Run(allowed, func(t *testing.T) {
			value, err := Coerce(f, allowed)
			require.NoError(t, err)
			assert.Equal(t, allowed, value)
		})
	}

	t.Run("unknown value", func(t *testing.T) {
		_, err := Coerce(f, "Maybe")
		require.Error(t, err)
		assert.Equal(t, "must be one of Yes, No, TBC", err.Error())
	})

	t.Run("wrong case is rejected", func(t *testing.T) {
		_, err := Coerce(f, "yes")
		require.Error(t, err)
	})
}

func TestCoerce_Text(t *testing.T) {
	f := text("contractor_name")

	value, err := Coerce(f, "  Smith & Sons  ")
	require.NoError(t, err)
	assert.Equal(t, "Smith & Sons", value)

	_, err = Coerce(f, float64(42))
	require.Error(t, err)
	assert.Equal(t, "must be text", err.Error())
}
