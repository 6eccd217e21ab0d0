package widecell

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"
)

// ErrInvalidArgument is returned when a boundary call receives arguments of
// the wrong shape, such as a window handle that does not refer to a live
// window.
var ErrInvalidArgument = errors.New("invalid argument")

// Handle is an opaque reference to a registered window. Handles are stable
// for the lifetime of the registration and are never reused within a process
// run.
type Handle uint32

// HandleNone is the zero handle. It never refers to a window; passing it to
// WriteChar makes the call a no-op.
const HandleNone Handle = 0

// handleTable maps live handles to windows. Process-wide, like the set of
// windows a display library tracks.
type handleTable struct {
	mu      sync.Mutex
	next    Handle
	windows map[Handle]*Window
}

var handles = &handleTable{
	next:    1,
	windows: make(map[Handle]*Window),
}

// RegisterWindow adds a window to the process-wide handle table and returns
// its handle. Safe for concurrent use.
func RegisterWindow(w *Window) Handle {
	handles.mu.Lock()
	defer handles.mu.Unlock()

	h := handles.next
	handles.next++
	handles.windows[h] = w
	return h
}

// LookupWindow resolves a handle to its window. Returns ErrInvalidArgument if
// the handle is HandleNone or does not refer to a live window.
func LookupWindow(h Handle) (*Window, error) {
	handles.mu.Lock()
	defer handles.mu.Unlock()

	w, ok := handles.windows[h]
	if !ok {
		return nil, fmt.Errorf("widecell: unknown window handle %d: %w", h, ErrInvalidArgument)
	}
	return w, nil
}

// ReleaseWindow removes a handle from the table. The window itself is
// untouched; releasing an unknown handle is a no-op.
func ReleaseWindow(h Handle) {
	handles.mu.Lock()
	defer handles.mu.Unlock()

	delete(handles.windows, h)
}

// HandleSize returns the in-memory size of the Window structure in bytes.
// The value is a compile-time constant of the build platform; callers use it
// to size raw buffers that shadow window storage.
func HandleSize() int {
	return int(unsafe.Sizeof(Window{}))
}
