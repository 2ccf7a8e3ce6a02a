package splitz

import (
	"strings"
	"testing"
)

func TestErrConfigNamesParam(t *testing.T) {
	err := &ErrConfig{Param: "chunk_overlap", Reason: "must be smaller than chunk_size"}
	msg := err.Error()
	if !strings.Contains(msg, "chunk_overlap") {
		t.Errorf("message should name the parameter: %s", msg)
	}
	if !strings.Contains(msg, "smaller than chunk_size") {
		t.Errorf("message should state the invariant: %s", msg)
	}
}

func TestErrStructurePath(t *testing.T) {
	err := &ErrStructure{Path: "company.employees", Reason: "cyclic reference"}
	if !strings.Contains(err.Error(), "company.employees") {
		t.Errorf("message should locate the node: %s", err.Error())
	}
	root := &ErrStructure{Reason: "cyclic reference"}
	if strings.Contains(root.Error(), "at ") {
		t.Errorf("root error should omit path: %s", root.Error())
	}
}
