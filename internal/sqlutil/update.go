package sqlutil

import (
	"fmt"
	"strings"

	"jobboard/internal/apperr"
)

// Field is one logical-name/value pair of a sparse update. Callers build the
// slice in the order the placeholders should be numbered.
type Field struct {
	Name  string
	Value any
}

// BuildPartialUpdate turns a sparse field list into a SET clause with
// positional placeholders and the parallel value slice. Column names come from
// columnMap, falling back to the logical name verbatim when unmapped; values
// never appear in the clause text. Placeholders start at $1, so a caller
// appending e.g. a WHERE parameter numbers it $(len(values)+1).
func BuildPartialUpdate(fields []Field, columnMap map[string]string) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, apperr.BadRequest("No data")
	}

	assignments := make([]string, 0, len(fields))
	values := make([]any, 0, len(fields))
	for i, f := range fields {
		column, ok := columnMap[f.Name]
		if !ok {
			column = f.Name
		}
		assignments = append(assignments, fmt.Sprintf(`"%s"=$%d`, column, i+1))
		values = append(values, f.Value)
	}

	return strings.Join(assignments, ", "), values, nil
}

// Placeholder renders the positional parameter marker for slot n.
func Placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}
