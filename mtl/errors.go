package mtl

import "fmt"

// ParsingError reports a structurally broken metadata file: a diverging
// GROUP/END_GROUP tag pair, a statement outside of any open group, or a file
// that yields no records at all.
type ParsingError struct {
	Message string
}

func (e *ParsingError) Error() string {
	return "mtl: " + e.Message
}

// GroupError reports iteration over a group that is not present in the store.
type GroupError struct {
	Group string
}

func (e *GroupError) Error() string {
	return fmt.Sprintf("mtl: not possible to iterate over non existing group: %s", e.Group)
}
