package core

import (
	"errors"
	"testing"
)

func TestWrapErrorKeepsChain(t *testing.T) {
	sentinel := errors.New("no such fontset")
	err := WrapError(sentinel, EMISSING, "fontset %q does not exist", "foo")
	if !errors.Is(err, sentinel) {
		t.Errorf("expected wrapped error to match sentinel")
	}
	if Code(err) != EMISSING {
		t.Errorf("expected code %d, is %d", EMISSING, Code(err))
	}
	if UserMessage(err) != `fontset "foo" does not exist` {
		t.Errorf("unexpected user message: %q", UserMessage(err))
	}
}

func TestCodeOfPlainErrors(t *testing.T) {
	if Code(nil) != NOERROR {
		t.Errorf("expected nil error to have code NOERROR")
	}
	if Code(errors.New("x")) != EINTERNAL {
		t.Errorf("expected plain error to have code EINTERNAL")
	}
	if UserMessage(errors.New("x")) != "internal error" {
		t.Errorf("expected plain error to have standard user message")
	}
}

func TestErrorWithCodeWrapsNil(t *testing.T) {
	err := ErrorWithCode(nil, EDUPLICATE)
	if err == nil {
		t.Fatalf("expected ErrorWithCode to produce an error for nil")
	}
	if Code(err) != EDUPLICATE {
		t.Errorf("expected code %d, is %d", EDUPLICATE, Code(err))
	}
}
