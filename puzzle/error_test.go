package puzzle

import (
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	err := rangeError(SizeAttribute, 1, 2)
	if msg := err.Error(); msg != "Invalid argument: Board size (1): Must be at least 2" {
		t.Errorf("TestErrorMessages: range error message is %q", msg)
	}
	err = Error{
		Scope:     ArgumentScope,
		Structure: AttributeValueStructure,
		Attribute: FieldAttribute,
		Condition: NonIntegerCondition,
		Values:    ErrorData{4, "q"},
	}
	if msg := err.Error(); !strings.Contains(msg, "Field (4)") ||
		!strings.Contains(msg, "Not a decimal integer") {
		t.Errorf("TestErrorMessages: field error message is %q", msg)
	}
	err = Error{Scope: BoardScope, Condition: UnknownCondition, Values: ErrorData{1, 2}}
	if msg := err.Error(); !strings.HasPrefix(msg, "Invalid board: ") {
		t.Errorf("TestErrorMessages: unknown-condition message is %q", msg)
	}
}

func TestErrorCustomMessage(t *testing.T) {
	err := Error{Scope: InternalScope, Message: "custom"}
	if msg := err.Error(); msg != "custom" {
		t.Errorf("TestErrorCustomMessage: got %q", msg)
	}
}
