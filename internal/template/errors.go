package template

import "fmt"

// ShapeMismatchError reports a field whose override value has a different
// shape (sequence, mapping, scalar) than the value it is merged into.
type ShapeMismatchError struct {
	Field    string
	Base     string
	Override string
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("field %q: cannot merge %s into %s", e.Field, e.Override, e.Base)
}
