package sqlbuilder

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidRange is returned when both a minimum and a maximum bound are
// supplied for the same attribute and minimum >= maximum. The check runs
// before any query is constructed.
var ErrInvalidRange = errors.New("minimum bound must be less than maximum bound")

// SelectBuilder assembles a parameterized SELECT from a base projection and
// a set of optional predicates. Predicates are combined with AND; when zero
// predicates apply the WHERE keyword is omitted entirely, so a dangling
// WHERE is structurally impossible.
type SelectBuilder struct {
	base    string
	conds   []string
	args    []interface{}
	orderBy string
}

// NewSelect creates a builder over a base projection such as
// "SELECT handle, name FROM companies".
func NewSelect(base string) *SelectBuilder {
	return &SelectBuilder{base: base}
}

// Where appends `column operator $n` with value bound positionally.
func (b *SelectBuilder) Where(column, operator string, value interface{}) *SelectBuilder {
	b.args = append(b.args, value)
	b.conds = append(b.conds, column+" "+operator+" $"+strconv.Itoa(len(b.args)))
	return b
}

// WhereContains adds a case-insensitive substring match. Empty terms are
// treated as absent.
func (b *SelectBuilder) WhereContains(column, term string) *SelectBuilder {
	if term == "" {
		return b
	}
	return b.Where(column, "ILIKE", "%"+term+"%")
}

// WhereMin adds an inclusive lower bound. Values that do not parse as a
// number are treated as absent rather than raising.
func (b *SelectBuilder) WhereMin(column, raw string) *SelectBuilder {
	if n, ok := parseNumber(raw); ok {
		return b.Where(column, ">=", n)
	}
	return b
}

// WhereMax adds an inclusive upper bound, with the same parsing rule as
// WhereMin.
func (b *SelectBuilder) WhereMax(column, raw string) *SelectBuilder {
	if n, ok := parseNumber(raw); ok {
		return b.Where(column, "<=", n)
	}
	return b
}

// OrderBy sets the deterministic ordering column. Ordering is part of the
// list contract: identical filters must return rows in the same order
// across calls.
func (b *SelectBuilder) OrderBy(column string) *SelectBuilder {
	b.orderBy = column
	return b
}

// Build returns the final statement and bound values.
func (b *SelectBuilder) Build() (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(b.base)
	if len(b.conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(b.conds, " AND "))
	}
	if b.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(b.orderBy)
	}
	return sb.String(), b.args
}

// ValidateRange fails with ErrInvalidRange when both raw bounds parse as
// numbers and minimum >= maximum. Bounds that are absent or non-numeric
// never fail.
func ValidateRange(minRaw, maxRaw string) error {
	minValue, minOK := parseNumber(minRaw)
	maxValue, maxOK := parseNumber(maxRaw)
	if minOK && maxOK && minValue >= maxValue {
		return ErrInvalidRange
	}
	return nil
}

func parseNumber(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
