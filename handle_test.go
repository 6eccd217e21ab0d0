package widecell

import (
	"errors"
	"testing"
)

func TestRegisterAndLookupWindow(t *testing.T) {
	win := New(WithSize(5, 5))
	h := RegisterWindow(win)
	defer ReleaseWindow(h)

	if h == HandleNone {
		t.Fatal("expected a non-zero handle")
	}

	got, err := LookupWindow(h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != win {
		t.Error("expected lookup to return the registered window")
	}
}

func TestLookupUnknownHandle(t *testing.T) {
	_, err := LookupWindow(Handle(0xBEEF))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}

	_, err = LookupWindow(HandleNone)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for HandleNone, got %v", err)
	}
}

func TestReleaseWindow(t *testing.T) {
	win := New(WithSize(5, 5))
	h := RegisterWindow(win)

	ReleaseWindow(h)

	if _, err := LookupWindow(h); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument after release, got %v", err)
	}

	// Releasing again is a no-op
	ReleaseWindow(h)
}

func TestHandlesAreUnique(t *testing.T) {
	a := RegisterWindow(New(WithSize(2, 2)))
	b := RegisterWindow(New(WithSize(2, 2)))
	defer ReleaseWindow(a)
	defer ReleaseWindow(b)

	if a == b {
		t.Error("expected distinct handles for distinct registrations")
	}
}

func TestHandleSize(t *testing.T) {
	size := HandleSize()
	if size <= 0 {
		t.Errorf("expected positive size, got %d", size)
	}
	if size != HandleSize() {
		t.Error("expected HandleSize to be constant within a process run")
	}
}
