package mesh

import "fmt"

// ParseError reports OBJ text that cannot produce a usable mesh.
type ParseError struct {
	Name   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("parse mesh: %s", e.Reason)
	}
	return fmt.Sprintf("parse mesh %s: %s", e.Name, e.Reason)
}
