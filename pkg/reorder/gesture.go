package reorder

// Gesture tracks a drag in progress: an item has been picked up and is
// hovering over another item (or nothing)
type Gesture struct {
	active string
	over   string
}

// Pick starts dragging id. The item initially hovers over itself.
func (g *Gesture) Pick(id string) {
	g.active = id
	g.over = id
}

// Hover moves the drag over id. An empty id means no drop target.
func (g *Gesture) Hover(id string) {
	if g.active == "" {
		return
	}
	g.over = id
}

// Active reports whether a drag is in progress
func (g *Gesture) Active() bool {
	return g.active != ""
}

// ActiveID returns the id being dragged
func (g *Gesture) ActiveID() string {
	return g.active
}

// OverID returns the id currently hovered
func (g *Gesture) OverID() string {
	return g.over
}

// Drop ends the drag and returns the resulting event
func (g *Gesture) Drop() DropEvent {
	ev := DropEvent{ActiveID: g.active, OverID: g.over}
	g.active, g.over = "", ""
	return ev
}

// Cancel ends the drag without a drop target
func (g *Gesture) Cancel() DropEvent {
	ev := DropEvent{ActiveID: g.active}
	g.active, g.over = "", ""
	return ev
}
