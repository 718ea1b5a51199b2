package schema

// Kind identifies how a raw payload value is coerced before it may enter an
// update delta.
type Kind int

const (
	// KindText is free text
	KindText Kind = iota
	// KindInteger is a whole number, optionally range-constrained
	KindInteger
	// KindDecimal is an arbitrary-precision decimal figure
	KindDecimal
	// KindDate is a calendar date
	KindDate
	// KindForeignKey is a reference to another record. Coercion produces an
	// identifier or nil; it never verifies the referenced record exists -
	// that is the storage layer's constraint to enforce.
	KindForeignKey
	// KindEnum is one value from a fixed set
	KindEnum
)

// String returns a human-readable kind name
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindDate:
		return "date"
	case KindForeignKey:
		return "foreign_key"
	case KindEnum:
		return "enum"
	}
	return "unknown"
}

// Field declares one updatable field: its payload key, its storage column,
// its coercion kind and any constraints. Default is the value a blank input
// clears the field back to; enum columns that reject NULL declare one so a
// clear never produces a value their column cannot hold.
type Field struct {
	Name         string
	Column       string
	Kind         Kind
	Min          *int
	Max          *int
	Values       []string
	Default      string
	RangeMessage string
}

// Section is a named allow-list of fields owned by one lifecycle stage.
// Reconciliation for a section must never write outside its field set.
type Section struct {
	Name   string
	Fields []Field

	byName map[string]Field
}

// NewSection builds a section from its field list
func NewSection(name string, fields []Field) Section {
	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}
	return Section{Name: name, Fields: fields, byName: byName}
}

// Lookup returns the declared field for a payload key, if allow-listed
func (s Section) Lookup(name string) (Field, bool) {
	f, ok := s.byName[name]
	return f, ok
}

// FieldNames returns the payload keys this section accepts, in declaration order
func (s Section) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}
