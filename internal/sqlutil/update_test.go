package sqlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/apperr"
)

func TestBuildPartialUpdate(t *testing.T) {
	setClause, values, err := BuildPartialUpdate(
		[]Field{{Name: "firstName", Value: "Aliya"}, {Name: "age", Value: 8}},
		map[string]string{"firstName": "first_name"},
	)
	require.NoError(t, err)
	assert.Equal(t, `"first_name"=$1, "age"=$2`, setClause)
	assert.Equal(t, []any{"Aliya", 8}, values)
}

func TestBuildPartialUpdateSingleField(t *testing.T) {
	setClause, values, err := BuildPartialUpdate(
		[]Field{{Name: "numEmployees", Value: 150}},
		map[string]string{"numEmployees": "num_employees"},
	)
	require.NoError(t, err)
	assert.Equal(t, `"num_employees"=$1`, setClause)
	assert.Equal(t, []any{150}, values)
}

func TestBuildPartialUpdateUnmappedNameFallsThrough(t *testing.T) {
	setClause, values, err := BuildPartialUpdate(
		[]Field{{Name: "description", Value: "hiring"}},
		map[string]string{"logoUrl": "logo_url"},
	)
	require.NoError(t, err)
	assert.Equal(t, `"description"=$1`, setClause)
	assert.Equal(t, []any{"hiring"}, values)
}

func TestBuildPartialUpdateNilColumnMap(t *testing.T) {
	setClause, values, err := BuildPartialUpdate([]Field{{Name: "title", Value: "Baker"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, `"title"=$1`, setClause)
	assert.Equal(t, []any{"Baker"}, values)
}

func TestBuildPartialUpdateEmptyFields(t *testing.T) {
	_, _, err := BuildPartialUpdate(nil, map[string]string{"firstName": "first_name"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))
	assert.EqualError(t, err, "No data")
}

func TestBuildPartialUpdatePlaceholderOrderMatchesValues(t *testing.T) {
	fields := []Field{
		{Name: "title", Value: "Engineer"},
		{Name: "salary", Value: 90000},
		{Name: "equity", Value: 0.05},
	}
	setClause, values, err := BuildPartialUpdate(fields, nil)
	require.NoError(t, err)
	assert.Equal(t, `"title"=$1, "salary"=$2, "equity"=$3`, setClause)
	require.Len(t, values, 3)
	// A trailing identifier parameter appended by the caller gets the next slot.
	assert.Equal(t, 4, len(values)+1)
}
