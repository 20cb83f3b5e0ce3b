package models

import (
	"fmt"
	"strings"
)

// ComponentType identifies one of the fixed content block kinds
type ComponentType string

const (
	ComponentTypeRichText      ComponentType = "richText"
	ComponentTypeImageBanner   ComponentType = "imageBanner"
	ComponentTypeGenericBanner ComponentType = "genericBanner"
	ComponentTypeVideo         ComponentType = "video"
	ComponentTypeButton        ComponentType = "button"
)

// FieldKind selects the input widget used to edit a field
type FieldKind string

const (
	FieldKindText     FieldKind = "text"
	FieldKindTextarea FieldKind = "textarea"
)

// FieldSchema describes one editable field of a component type
type FieldSchema struct {
	Name     string    `json:"name" yaml:"name"`
	Label    string    `json:"label" yaml:"label"`
	Kind     FieldKind `json:"type" yaml:"type"`
	Required bool      `json:"required,omitempty" yaml:"required,omitempty"`
}

// ComponentSchema describes a component type: its display name and the
// ordered list of fields a user fills in
type ComponentSchema struct {
	Type   ComponentType `json:"type" yaml:"type"`
	Name   string        `json:"name" yaml:"name"`
	Fields []FieldSchema `json:"fields" yaml:"fields"`
}

// Field returns the descriptor for name
func (s ComponentSchema) Field(name string) (FieldSchema, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSchema{}, false
}

// FieldNames returns the field names in declaration order
func (s ComponentSchema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// RequiredFields returns the names of the required fields in declaration order
func (s ComponentSchema) RequiredFields() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// galleryOrder is the order types are offered in when adding a component
var galleryOrder = []ComponentType{
	ComponentTypeRichText,
	ComponentTypeImageBanner,
	ComponentTypeGenericBanner,
	ComponentTypeVideo,
	ComponentTypeButton,
}

var componentSchemas = map[ComponentType]ComponentSchema{
	ComponentTypeRichText: {
		Type: ComponentTypeRichText,
		Name: "RichText",
		Fields: []FieldSchema{
			{Name: "content", Label: "Content", Kind: FieldKindTextarea, Required: true},
		},
	},
	ComponentTypeImageBanner: {
		Type: ComponentTypeImageBanner,
		Name: "Image Banner",
		Fields: []FieldSchema{
			{Name: "imageUrl", Label: "Image URL", Kind: FieldKindText, Required: true},
			{Name: "title", Label: "Title", Kind: FieldKindText, Required: true},
		},
	},
	ComponentTypeGenericBanner: {
		Type: ComponentTypeGenericBanner,
		Name: "Generic Banner",
		Fields: []FieldSchema{
			{Name: "imageUrl", Label: "Image URL", Kind: FieldKindText, Required: true},
			{Name: "title", Label: "Title", Kind: FieldKindText, Required: true},
			{Name: "text", Label: "Text", Kind: FieldKindTextarea, Required: true},
		},
	},
	ComponentTypeVideo: {
		Type: ComponentTypeVideo,
		Name: "Video",
		Fields: []FieldSchema{
			{Name: "videoUrl", Label: "Video URL", Kind: FieldKindText, Required: true},
			{Name: "embedCode", Label: "Embed code (optional)", Kind: FieldKindTextarea},
		},
	},
	ComponentTypeButton: {
		Type: ComponentTypeButton,
		Name: "Button",
		Fields: []FieldSchema{
			{Name: "text", Label: "Button text", Kind: FieldKindText, Required: true},
			{Name: "url", Label: "URL", Kind: FieldKindText, Required: true},
		},
	},
}

// SchemaOf returns the schema registered for t. The registry covers every
// ComponentType constant; an unregistered tag yields a schema with no fields.
func SchemaOf(t ComponentType) ComponentSchema {
	s := componentSchemas[t]
	// Hand out a copy so callers can't mutate the registry
	fields := make([]FieldSchema, len(s.Fields))
	copy(fields, s.Fields)
	s.Fields = fields
	return s
}

// ComponentTypes returns the supported types in gallery order
func ComponentTypes() []ComponentType {
	types := make([]ComponentType, len(galleryOrder))
	copy(types, galleryOrder)
	return types
}

// Valid reports whether t is a registered component type
func (t ComponentType) Valid() bool {
	_, ok := componentSchemas[t]
	return ok
}

// DisplayName returns the schema's display name, or the raw tag when unknown
func (t ComponentType) DisplayName() string {
	if s, ok := componentSchemas[t]; ok {
		return s.Name
	}
	return string(t)
}

// ParseComponentType validates a user-supplied type tag. Matching is
// case-insensitive so "imagebanner" and "imageBanner" both work.
func ParseComponentType(s string) (ComponentType, error) {
	for _, t := range galleryOrder {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	valid := make([]string, len(galleryOrder))
	for i, t := range galleryOrder {
		valid[i] = string(t)
	}
	return "", fmt.Errorf("invalid component type: %s (must be one of: %s)", s, strings.Join(valid, ", "))
}
