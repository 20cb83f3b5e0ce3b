// Package designer holds the page document and the transient editing state
// around it: which component is open in the editor, whether the gallery is
// showing, and the single-slot undo buffer for deletions.
package designer

import (
	"fmt"
	"strings"

	"github.com/ldbpro/ldbpro-cli/pkg/models"
	"github.com/ldbpro/ldbpro-cli/pkg/reorder"
)

// ChangeFunc is called with a snapshot after every document mutation
type ChangeFunc func(page models.PageDataModel)

// deleted is the undo buffer entry
type deleted struct {
	item  models.PageComponent
	index int
}

// Designer owns the document. It is not safe for concurrent use; the TUI
// drives it from a single update loop.
type Designer struct {
	page        models.PageDataModel
	editing     int // -1 when closed
	galleryOpen bool
	lastDeleted *deleted
	listeners   []ChangeFunc
}

// New creates a designer over page. A nil component list is normalized.
func New(page models.PageDataModel) *Designer {
	if page.Components == nil {
		page.Components = []models.PageComponent{}
	}
	return &Designer{page: page, editing: -1}
}

// OnChange registers fn to run after each document change
func (d *Designer) OnChange(fn ChangeFunc) {
	d.listeners = append(d.listeners, fn)
}

func (d *Designer) changed() {
	if len(d.listeners) == 0 {
		return
	}
	snap := d.Snapshot()
	for _, fn := range d.listeners {
		fn(snap)
	}
}

// Snapshot returns a deep copy of the document
func (d *Designer) Snapshot() models.PageDataModel {
	return d.page.Clone()
}

// PageName returns the current page name
func (d *Designer) PageName() string {
	return d.page.PageName
}

// PageNameMissing reports whether the page name is blank once trimmed
func (d *Designer) PageNameMissing() bool {
	return strings.TrimSpace(d.page.PageName) == ""
}

// Len returns the number of components
func (d *Designer) Len() int {
	return len(d.page.Components)
}

// Component returns the component at i
func (d *Designer) Component(i int) (models.PageComponent, bool) {
	if i < 0 || i >= len(d.page.Components) {
		return models.PageComponent{}, false
	}
	return d.page.Components[i], true
}

// IndexOf returns the position of the component with id, or -1
func (d *Designer) IndexOf(id string) int {
	for i, c := range d.page.Components {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Add appends an empty component of type t, opens it in the editor and
// closes the gallery. It returns the new component's index.
func (d *Designer) Add(t models.ComponentType) int {
	d.page.Components = append(d.page.Components, models.NewEmptyComponent(t))
	d.editing = len(d.page.Components) - 1
	d.galleryOpen = false
	d.changed()
	return d.editing
}

// Move swaps the component at i with its neighbour at i+dir. It reports
// false and leaves the list untouched when either index is out of range.
func (d *Designer) Move(i, dir int) bool {
	j := i + dir
	n := len(d.page.Components)
	if i < 0 || i >= n || j < 0 || j >= n || i == j {
		return false
	}
	d.page.Components[i], d.page.Components[j] = d.page.Components[j], d.page.Components[i]
	switch d.editing {
	case i:
		d.editing = j
	case j:
		d.editing = i
	}
	d.changed()
	return true
}

// Delete removes the component at i and remembers it for UndoDelete,
// replacing any earlier entry
func (d *Designer) Delete(i int) error {
	if i < 0 || i >= len(d.page.Components) {
		return fmt.Errorf("delete %d of %d: %w", i, len(d.page.Components), ErrIndexOutOfRange)
	}
	removed := d.page.Components[i]
	d.page.Components = append(d.page.Components[:i:i], d.page.Components[i+1:]...)
	d.lastDeleted = &deleted{item: removed, index: i}

	switch {
	case d.editing == i:
		d.editing = -1
	case d.editing > i:
		d.editing--
	}
	d.changed()
	return nil
}

// CanUndo reports whether a deleted component can be restored
func (d *Designer) CanUndo() bool {
	return d.lastDeleted != nil
}

// UndoDelete re-inserts the last deleted component at the index it was
// deleted from. The index is positional: after other edits it may land
// somewhere else visually. Positions past the end append. It reports false
// when there is nothing to restore.
func (d *Designer) UndoDelete() bool {
	if d.lastDeleted == nil {
		return false
	}
	entry := *d.lastDeleted
	d.lastDeleted = nil

	idx := entry.index
	if idx > len(d.page.Components) {
		idx = len(d.page.Components)
	}
	comps := make([]models.PageComponent, 0, len(d.page.Components)+1)
	comps = append(comps, d.page.Components[:idx]...)
	comps = append(comps, entry.item)
	comps = append(comps, d.page.Components[idx:]...)
	d.page.Components = comps

	if d.editing >= idx {
		d.editing++
	}
	d.changed()
	return true
}

// Reorder replaces the list with next, which must be a permutation of the
// current components. The editor follows the edited component.
func (d *Designer) Reorder(next []models.PageComponent) {
	var editingID string
	if c, ok := d.Component(d.editing); ok {
		editingID = c.ID
	}
	d.page.Components = next
	if editingID != "" {
		d.editing = d.IndexOf(editingID)
	}
	d.changed()
}

// Drop applies a drag-and-drop gesture through sorter. It reports false
// when the drop leaves the order unchanged.
func (d *Designer) Drop(sorter reorder.Sorter, ev reorder.DropEvent) bool {
	perm, ok := sorter.Reorder(d.page.IDs(), ev)
	if !ok {
		return false
	}
	d.Reorder(reorder.Apply(d.page.Components, perm))
	return true
}

// EditField replaces one field of the component at i
func (d *Designer) EditField(i int, field, value string) error {
	if i < 0 || i >= len(d.page.Components) {
		return fmt.Errorf("edit %d of %d: %w", i, len(d.page.Components), ErrIndexOutOfRange)
	}
	c := &d.page.Components[i]
	if !c.Data.Has(field) {
		if _, declared := c.Schema().Field(field); !declared {
			return fmt.Errorf("%s.%s: %w", c.Type, field, ErrUnknownField)
		}
	}
	data := c.Data.Clone()
	data.Set(field, value)
	c.Data = data
	d.changed()
	return nil
}

// SetPageName replaces the page name verbatim
func (d *Designer) SetPageName(name string) {
	d.page.PageName = name
	d.changed()
}
