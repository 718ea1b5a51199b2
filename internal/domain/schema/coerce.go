package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Date layouts accepted by date coercion. No timezone normalization beyond
// parsing; the stored value keeps the parsed location.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02/01/2006",
}

// CoercionError is a field-scoped validation failure produced by Coerce
type CoercionError struct {
	Message string
}

// Error implements the error interface
func (e *CoercionError) Error() string {
	return e.Message
}

func coercionErrorf(format string, args ...any) *CoercionError {
	return &CoercionError{Message: fmt.Sprintf(format, args...)}
}

// Coerce converts a raw payload value into the typed value declared for the
// field. Blank input (nil, empty string) clears the field - the
// clear-on-blank policy, not an error. A cleared field coerces to nil, or to
// the field's declared default when it has one. The returned value is
// storage-ready: string, int, decimal.Decimal, time.Time, uuid.UUID or
// untyped nil.
func Coerce(f Field, raw any) (any, error) {
	if raw == nil {
		return clearedValue(f), nil
	}
	if s, ok := raw.(string); ok && strings.TrimSpace(s) == "" {
		return clearedValue(f), nil
	}

	switch f.Kind {
	case KindText:
		return coerceText(raw)
	case KindInteger:
		return coerceInteger(f, raw)
	case KindDecimal:
		return coerceDecimal(raw)
	case KindDate:
		return coerceDate(raw)
	case KindForeignKey:
		return coerceForeignKey(raw)
	case KindEnum:
		return coerceEnum(f, raw)
	}
	return nil, coercionErrorf("has an unsupported kind")
}

// clearedValue is what a blank input stores. Fields backed by NOT NULL
// columns declare a default and clear back to it instead of to NULL.
func clearedValue(f Field) any {
	if f.Default != "" {
		return f.Default
	}
	return nil
}

func coerceText(raw any) (any, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, coercionErrorf("must be text")
	}
	return strings.TrimSpace(s), nil
}

func coerceInteger(f Field, raw any) (any, error) {
	var n int
	switch v := raw.(type) {
	case int:
		n = v
	case int64:
		n = int(v)
	case float64:
		if v != math.Trunc(v) {
			return nil, coercionErrorf("must be a whole number")
		}
		n = int(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, coercionErrorf("must be a number")
		}
		if parsed != math.Trunc(parsed) {
			return nil, coercionErrorf("must be a whole number")
		}
		n = int(parsed)
	default:
		return nil, coercionErrorf("must be a number")
	}

	// Range failures carry the field-specific message when one is declared,
	// independent of the generic numeric check.
	if (f.Min != nil && n < *f.Min) || (f.Max != nil && n > *f.Max) {
		if f.RangeMessage != "" {
			return nil, &CoercionError{Message: f.RangeMessage}
		}
		return nil, rangeError(f)
	}
	return n, nil
}

func rangeError(f Field) *CoercionError {
	switch {
	case f.Min != nil && f.Max != nil:
		return coercionErrorf("must be between %d and %d", *f.Min, *f.Max)
	case f.Min != nil:
		return coercionErrorf("must be at least %d", *f.Min)
	default:
		return coercionErrorf("must be at most %d", *f.Max)
	}
}

func coerceDecimal(raw any) (any, error) {
	switch v := raw.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case decimal.Decimal:
		return v, nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return nil, coercionErrorf("must be a number")
		}
		return d, nil
	}
	return nil, coercionErrorf("must be a number")
}

func coerceDate(raw any) (any, error) {
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return nil, coercionErrorf("must be a valid date")
	}
	return nil, coercionErrorf("must be a valid date")
}

func coerceForeignKey(raw any) (any, error) {
	switch v := raw.(type) {
	case uuid.UUID:
		return v, nil
	case string:
		id, err := uuid.Parse(strings.TrimSpace(v))
		if err != nil {
			return nil, coercionErrorf("must be a valid id")
		}
		return id, nil
	}
	return nil, coercionErrorf("must be a valid id")
}

func coerceEnum(f Field, raw any) (any, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, coercionErrorf("must be one of %s", strings.Join(f.Values, ", "))
	}
	s = strings.TrimSpace(s)
	for _, allowed := range f.Values {
		if s == allowed {
			return s, nil
		}
	}
	return nil, coercionErrorf("must be one of %s", strings.Join(f.Values, ", "))
}
