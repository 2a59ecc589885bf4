package sqlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateBuilder_SingleField(t *testing.T) {
	query, values, err := NewUpdate("users", "username", "testusername1").
		Set("first_name", "UPDATEDfirstname").
		Build()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE users SET first_name=$1 WHERE username=$2 RETURNING *", query)
	assert.Equal(t, []interface{}{"UPDATEDfirstname", "testusername1"}, values)
}

func TestUpdateBuilder_MultipleFieldsKeepCallOrder(t *testing.T) {
	query, values, err := NewUpdate("companies", "handle", "rithm").
		Set("name", "Rithm School").
		Set("num_employees", 50).
		Set("description", "coding school").
		Build()

	require.NoError(t, err)
	assert.Equal(t,
		"UPDATE companies SET name=$1, num_employees=$2, description=$3 WHERE handle=$4 RETURNING *",
		query)
	assert.Equal(t, []interface{}{"Rithm School", 50, "coding school", "rithm"}, values)
}

func TestUpdateBuilder_StripsReservedFields(t *testing.T) {
	query, values, err := NewUpdate("users", "username", "testusername1").
		Set("_token", "some.jwt.token").
		Set("first_name", "X").
		Build()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE users SET first_name=$1 WHERE username=$2 RETURNING *", query)
	assert.Equal(t, []interface{}{"X", "testusername1"}, values)
}

func TestUpdateBuilder_EmptyUpdate(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*UpdateBuilder, error)
	}{
		{
			name: "no fields at all",
			build: func() (*UpdateBuilder, error) {
				return NewUpdate("users", "username", "u"), nil
			},
		},
		{
			name: "only reserved fields",
			build: func() (*UpdateBuilder, error) {
				return NewUpdate("users", "username", "u").
					Set("_token", "t").
					Set("_csrf", "c"), nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := tt.build()
			query, values, err := b.Build()
			assert.ErrorIs(t, err, ErrEmptyUpdate)
			assert.Empty(t, query)
			assert.Nil(t, values)
		})
	}
}

func TestUpdateBuilder_Deterministic(t *testing.T) {
	build := func() (string, []interface{}, error) {
		return NewUpdate("jobs", "id", 7).
			Set("title", "Engineer").
			Set("salary", 120000.0).
			Build()
	}

	q1, v1, err1 := build()
	q2, v2, err2 := build()

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, q1, q2)
	assert.Equal(t, v1, v2)
}

func TestUpdateBuilder_ParameterCount(t *testing.T) {
	// Parameter count equals non-reserved fields plus one trailing lookup value.
	query, values, err := NewUpdate("jobs", "id", 3).
		Set("title", "A").
		Set("_token", "ignored").
		Set("salary", 1.0).
		Set("equity", 0.1).
		Build()

	require.NoError(t, err)
	assert.Len(t, values, 4)
	assert.Contains(t, query, "WHERE id=$4")
	assert.Equal(t, 3, values[len(values)-1])
}
