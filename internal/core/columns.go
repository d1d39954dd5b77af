package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingColumn is matched by errors.Is for any MissingColumnError.
var ErrMissingColumn = errors.New("missing required column")

// MissingColumnError lists heading labels absent from the heading row.
type MissingColumnError struct {
	Labels []string
}

func (e *MissingColumnError) Error() string {
	quoted := make([]string, len(e.Labels))
	for i, l := range e.Labels {
		quoted[i] = fmt.Sprintf("%q", l)
	}
	if len(quoted) == 1 {
		return fmt.Sprintf("missing required column: the heading row has no column titled %s", quoted[0])
	}
	return fmt.Sprintf("missing required columns: the heading row has no columns titled %s", strings.Join(quoted, ", "))
}

func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}

// ColumnIndexMap maps canonical field names to zero-based column positions.
type ColumnIndexMap map[string]int

// ResolveColumns finds the column of every field by matching its Title
// against the heading row. Matching is case-sensitive but not byte-exact:
// both sides are trimmed and every run of inner whitespace, including a
// line break inside a wrapped heading cell, compares equal to one space.
// Letters and punctuation must match exactly. The first matching column
// wins. If any title is absent the whole mapping fails.
func ResolveColumns(heading []string, fields []FieldSpec) (ColumnIndexMap, error) {
	positions := make(map[string]int, len(heading))
	for i, h := range heading {
		key := headingKey(h)
		if key == "" {
			continue
		}
		if _, seen := positions[key]; !seen {
			positions[key] = i
		}
	}

	idx := make(ColumnIndexMap, len(fields))
	var missing []string

	for _, f := range fields {
		pos, ok := positions[headingKey(f.Title)]
		if !ok {
			missing = append(missing, f.Title)
			continue
		}
		idx[f.Name] = pos
	}

	if len(missing) > 0 {
		return nil, &MissingColumnError{Labels: missing}
	}
	return idx, nil
}

// headingKey normalizes heading text for comparison.
func headingKey(s string) string {
	return strings.Join(strings.Fields(CleanCell(s)), " ")
}
