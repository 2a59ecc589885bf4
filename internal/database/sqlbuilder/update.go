package sqlbuilder

import (
	"errors"
	"fmt"
	"strings"
)

// ReservedPrefix marks payload fields that are protocol metadata (for
// example a credential token travelling in the same body as the fields to
// persist). The update builder drops them; they must never reach a SET
// clause.
const ReservedPrefix = "_"

// ErrEmptyUpdate is returned when, after stripping reserved fields, no
// persistable fields remain. An UPDATE with no SET targets is invalid and
// is never constructed.
var ErrEmptyUpdate = errors.New("no fields to update")

// UpdateBuilder assembles a parameterized partial UPDATE statement of the
// shape `UPDATE <table> SET <f1>=$1, ... WHERE <key>=$n RETURNING *` with
// the lookup value bound last.
//
// The builder is pure: an identical Set sequence always produces an
// identical statement and bound-value sequence.
type UpdateBuilder struct {
	table     string
	keyColumn string
	keyValue  interface{}
	columns   []string
	values    []interface{}
}

// NewUpdate creates a builder targeting one row of table, looked up by
// keyColumn = keyValue.
func NewUpdate(table, keyColumn string, keyValue interface{}) *UpdateBuilder {
	return &UpdateBuilder{
		table:     table,
		keyColumn: keyColumn,
		keyValue:  keyValue,
	}
}

// Set registers a column assignment in call order. Fields carrying the
// reserved prefix are silently dropped.
func (b *UpdateBuilder) Set(column string, value interface{}) *UpdateBuilder {
	if strings.HasPrefix(column, ReservedPrefix) {
		return b
	}
	b.columns = append(b.columns, column)
	b.values = append(b.values, value)
	return b
}

// Build returns the statement and its bound values, or ErrEmptyUpdate when
// nothing survived Set.
func (b *UpdateBuilder) Build() (string, []interface{}, error) {
	if len(b.columns) == 0 {
		return "", nil, ErrEmptyUpdate
	}

	assignments := make([]string, len(b.columns))
	for i, column := range b.columns {
		assignments[i] = fmt.Sprintf("%s=$%d", column, i+1)
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s=$%d RETURNING *",
		b.table, strings.Join(assignments, ", "), b.keyColumn, len(b.columns)+1)

	values := make([]interface{}, 0, len(b.values)+1)
	values = append(values, b.values...)
	values = append(values, b.keyValue)

	return query, values, nil
}
