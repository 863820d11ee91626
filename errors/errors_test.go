package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	Register(2, "duplicate of unauthorized")
}

func TestRegisterRestrictedCodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	Register(1, "cannot use the internal code")
}

func TestErrIs(t *testing.T) {
	cases := map[string]struct {
		kind *Error
		err  error
		want bool
	}{
		"instance of itself": {
			kind: ErrNotFound,
			err:  ErrNotFound,
			want: true,
		},
		"wrapped instance": {
			kind: ErrNotFound,
			err:  Wrap(ErrNotFound, "gone"),
			want: true,
		},
		"double wrapped": {
			kind: ErrNotFound,
			err:  Wrap(Wrap(ErrNotFound, "gone"), "sorry"),
			want: true,
		},
		"different root": {
			kind: ErrNotFound,
			err:  Wrap(ErrState, "gone"),
			want: false,
		},
		"foreign error": {
			kind: ErrNotFound,
			err:  stderrors.New("gone"),
			want: false,
		},
		"nil kind against nil error": {
			kind: nil,
			err:  nil,
			want: true,
		},
		"kind against nil error": {
			kind: ErrNotFound,
			err:  nil,
			want: false,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.want {
				t.Fatalf("want %v", tc.want)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "whatever"); err != nil {
		t.Fatalf("wrapping nil must return nil, got %+v", err)
	}
	if err := Wrapf(nil, "whatever %d", 42); err != nil {
		t.Fatalf("wrapping nil must return nil, got %+v", err)
	}
}

func TestWrapMessage(t *testing.T) {
	err := Wrap(ErrNotFound, "gone")
	if want, got := "gone: not found", err.Error(); want != got {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestWrapAttachesStackTraceOnce(t *testing.T) {
	inner := Wrap(ErrNotFound, "inner")
	if stackTrace(inner) == nil {
		t.Fatal("first wrap must attach a stack trace")
	}
	outer := Wrap(inner, "outer")
	// Both layers must resolve to the same (innermost) trace.
	if fmt.Sprintf("%v", stackTrace(inner)) != fmt.Sprintf("%v", stackTrace(outer)) {
		t.Fatal("rewrapping must not replace the stack trace")
	}
}

func TestNew(t *testing.T) {
	err := ErrState.Newf("money %s", "gone")
	if !ErrState.Is(err) {
		t.Fatalf("want an invalid state error, got %+v", err)
	}
	if want, got := "money gone: invalid state", err.Error(); want != got {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestRecover(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		panic("the end is near")
	}()
	if !ErrPanic.Is(err) {
		t.Fatalf("want a panic error, got %+v", err)
	}
}
