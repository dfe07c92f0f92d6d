package physics

import "fmt"

// Hold is the pointer interaction state: Idle, or Dragging a single body by index.
// The zero value is Idle.
type Hold struct {
	index    int
	dragging bool
}

// Idle returns the state with no body held.
func Idle() Hold {
	return Hold{}
}

// Dragging returns the state holding the body at index i.
func Dragging(i int) Hold {
	return Hold{index: i, dragging: true}
}

// Index returns the held index and true while dragging.
func (h Hold) Index() (int, bool) {
	return h.index, h.dragging
}

// Holds reports whether body i is the held body.
func (h Hold) Holds(i int) bool {
	return h.dragging && h.index == i
}

func (h Hold) String() string {
	if !h.dragging {
		return "idle"
	}
	return fmt.Sprintf("dragging(%d)", h.index)
}
