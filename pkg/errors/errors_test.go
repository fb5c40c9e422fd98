package errors

import (
	stderrors "errors"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "WithoutCause",
			err:  New(ErrCodeParse, "line 3: %q is not an integer", "x"),
			want: `PARSE_ERROR: line 3: "x" is not an integer`,
		},
		{
			name: "WithCause",
			err:  Wrap(ErrCodeFileNotFound, stderrors.New("no such file"), "open input.txt"),
			want: "FILE_NOT_FOUND: open input.txt: no such file",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidHeader, "header must contain exactly two values")
	if !Is(err, ErrCodeInvalidHeader) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeParse) {
		t.Error("Is() = true for non-matching code")
	}
	if Is(stderrors.New("plain"), ErrCodeParse) {
		t.Error("Is() = true for a plain error")
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(ErrCodeInternal, cause, "wrapped")
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is() must find the wrapped cause")
	}
	if GetCode(err) != ErrCodeInternal {
		t.Errorf("GetCode() = %q, want %q", GetCode(err), ErrCodeInternal)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeTruncatedInput, "expected 3 edge rows, got 1")
	if got := UserMessage(err); got != "expected 3 edge rows, got 1" {
		t.Errorf("UserMessage() = %q", got)
	}
	plain := stderrors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
