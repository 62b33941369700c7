package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestIsMatchesByCode(t *testing.T) {
	err := Newf(CodeUnstableStructure, "pivot %d vanished", 2)
	if !stderrors.Is(err, ErrUnstableStructure) {
		t.Fatalf("expected %v to match ErrUnstableStructure", err)
	}
	if stderrors.Is(err, ErrInvalidInput) {
		t.Fatalf("did not expect %v to match ErrInvalidInput", err)
	}
}

func TestCodeOfWrapped(t *testing.T) {
	inner := New(CodeMalformedSystem, "3 equations for 2 unknowns")
	outer := fmt.Errorf("assemble: %w", inner)

	if got := CodeOf(outer); got != CodeMalformedSystem {
		t.Errorf("CodeOf() = %q, want %q", got, CodeMalformedSystem)
	}
	if got := CodeOf(stderrors.New("plain")); got != CodeUnknown {
		t.Errorf("CodeOf(plain) = %q, want %q", got, CodeUnknown)
	}
	if got := CodeOf(nil); got != "" {
		t.Errorf("CodeOf(nil) = %q, want empty", got)
	}
}

func TestWrapMessage(t *testing.T) {
	err := Wrap(CodeInvalidInput, "read beam file", stderrors.New("no such file"))
	if got, want := err.Error(), "read beam file: no such file"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if stderrors.Unwrap(err) == nil {
		t.Error("expected a cause")
	}
}
