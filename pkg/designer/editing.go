package designer

import (
	"fmt"

	"github.com/ldbpro/ldbpro-cli/pkg/models"
)

// Editing returns the index open in the editor
func (d *Designer) Editing() (int, bool) {
	if d.editing < 0 || d.editing >= len(d.page.Components) {
		return -1, false
	}
	return d.editing, true
}

// EditingComponent returns the component open in the editor
func (d *Designer) EditingComponent() (models.PageComponent, bool) {
	i, ok := d.Editing()
	if !ok {
		return models.PageComponent{}, false
	}
	return d.page.Components[i], true
}

// OpenEditor starts editing the component at i
func (d *Designer) OpenEditor(i int) error {
	if i < 0 || i >= len(d.page.Components) {
		return fmt.Errorf("open editor %d of %d: %w", i, len(d.page.Components), ErrIndexOutOfRange)
	}
	d.editing = i
	d.galleryOpen = false
	return nil
}

// CloseEditor closes the editor whether or not the form is complete
func (d *Designer) CloseEditor() {
	d.editing = -1
}

// CanSubmit reports whether every required field of the edited component
// is non-empty. No trimming: whitespace counts as a value.
func (d *Designer) CanSubmit() bool {
	c, ok := d.EditingComponent()
	if !ok {
		return false
	}
	return len(c.MissingRequired()) == 0
}

// Submit closes the editor when the required-field gate passes
func (d *Designer) Submit() error {
	c, ok := d.EditingComponent()
	if !ok {
		return ErrNotEditing
	}
	if missing := c.MissingRequired(); len(missing) > 0 {
		return fmt.Errorf("%s %v: %w", c.Type.DisplayName(), missing, ErrRequiredFieldsMissing)
	}
	d.editing = -1
	return nil
}

// OpenGallery shows the component picker
func (d *Designer) OpenGallery() {
	d.galleryOpen = true
}

// CloseGallery hides the component picker
func (d *Designer) CloseGallery() {
	d.galleryOpen = false
}

// GalleryOpen reports whether the component picker is showing
func (d *Designer) GalleryOpen() bool {
	return d.galleryOpen
}
