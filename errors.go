package splitz

import "fmt"

// ErrConfig reports an invalid strategy parameter detected at construction
// time. Param names the offending parameter, Reason the violated invariant.
type ErrConfig struct {
	Param  string
	Reason string
}

func (e *ErrConfig) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

// ErrStructure reports structural input the splitter cannot traverse, such
// as a cyclic reference or an unserializable value. Path locates the
// offending node ("" for the root).
type ErrStructure struct {
	Path   string
	Reason string
}

func (e *ErrStructure) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unsupported structure: %s", e.Reason)
	}
	return fmt.Sprintf("unsupported structure at %s: %s", e.Path, e.Reason)
}
