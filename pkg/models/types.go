package models

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultPageName is used when no document has been stored yet
const DefaultPageName = "My new page"

// PageComponent is one placed content block
type PageComponent struct {
	ID   string        `json:"id" yaml:"id"`
	Type ComponentType `json:"type" yaml:"type"`
	Data ComponentData `json:"data" yaml:"data"`
}

// Schema returns the schema for the component's type
func (c PageComponent) Schema() ComponentSchema {
	return SchemaOf(c.Type)
}

// Clone returns a deep copy of the component
func (c PageComponent) Clone() PageComponent {
	return PageComponent{ID: c.ID, Type: c.Type, Data: c.Data.Clone()}
}

// MissingRequired returns the required fields whose value is empty.
// Whitespace-only values count as filled in.
func (c PageComponent) MissingRequired() []string {
	var missing []string
	for _, name := range c.Schema().RequiredFields() {
		if c.Data.Value(name) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// PageDataModel is the whole document under construction
type PageDataModel struct {
	PageName   string          `json:"pageName" yaml:"pageName"`
	Components []PageComponent `json:"components" yaml:"components"`
}

// NewPage returns an empty document with the default name
func NewPage() PageDataModel {
	return PageDataModel{PageName: DefaultPageName, Components: []PageComponent{}}
}

// Clone returns a deep copy of the document. The component slice is never
// nil so JSON output always carries an array.
func (p PageDataModel) Clone() PageDataModel {
	out := PageDataModel{PageName: p.PageName, Components: make([]PageComponent, len(p.Components))}
	for i, c := range p.Components {
		out.Components[i] = c.Clone()
	}
	return out
}

// IDs returns the component ids in document order
func (p PageDataModel) IDs() []string {
	ids := make([]string, len(p.Components))
	for i, c := range p.Components {
		ids[i] = c.ID
	}
	return ids
}

// IDGenerator produces component ids
type IDGenerator func() string

var (
	idMu        sync.RWMutex
	idGenerator IDGenerator = defaultID
)

// defaultID combines a base36 millisecond timestamp with eight hex
// characters of a random UUID
func defaultID() string {
	prefix := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%s-%s", prefix, suffix)
}

// SetIDGenerator swaps the id generator and returns a func restoring the
// previous one. Intended for tests.
func SetIDGenerator(gen IDGenerator) (restore func()) {
	idMu.Lock()
	prev := idGenerator
	idGenerator = gen
	idMu.Unlock()
	return func() {
		idMu.Lock()
		idGenerator = prev
		idMu.Unlock()
	}
}

// NewID returns a fresh component id
func NewID() string {
	idMu.RLock()
	gen := idGenerator
	idMu.RUnlock()
	return gen()
}

// NewEmptyComponent creates a component of type t with every schema field
// present and empty
func NewEmptyComponent(t ComponentType) PageComponent {
	var data ComponentData
	for _, f := range SchemaOf(t).Fields {
		data.Set(f.Name, "")
	}
	return PageComponent{ID: NewID(), Type: t, Data: data}
}
