package schema

import (
	"fmt"
	"strings"
)

// Kind classifies the value of a property or action parameter.
type Kind string

const (
	KindString     Kind = "string"
	KindInteger    Kind = "integer"
	KindNumber     Kind = "number"
	KindBoolean    Kind = "boolean"
	KindEnum       Kind = "enum"
	KindComplex    Kind = "complex"
	KindCollection Kind = "collection"
	KindLink       Kind = "link"
)

// Type categories as declared by the interface description schema.
const (
	CategoryEntity  string = "entity"
	CategoryComplex string = "complex"
	CategoryEnum    string = "enum"
)

// TypeRef names a type within the schema model.
type TypeRef struct {
	Namespace string `yaml:"namespace" json:"namespace"`
	Name      string `yaml:"name" json:"name"`
}

func (r TypeRef) String() string {
	return r.Namespace + "." + r.Name
}

func (r TypeRef) IsZero() bool {
	return r.Namespace == "" && r.Name == ""
}

// PropertyDescriptor describes a single declared property.
//
// Ref names the enum, complex or link target type for those kinds. For
// collections, ElemKind gives the element kind and Ref the element type
// when the element kind requires one.
type PropertyDescriptor struct {
	Name     string   `yaml:"name" json:"name"`
	Kind     Kind     `yaml:"kind" json:"kind"`
	Nullable bool     `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	Ref      *TypeRef `yaml:"ref,omitempty" json:"ref,omitempty"`
	ElemKind Kind     `yaml:"elemKind,omitempty" json:"elemKind,omitempty"`
}

// ActionParameter describes one parameter of an action, in declaration order.
type ActionParameter struct {
	Name     string   `yaml:"name" json:"name"`
	Kind     Kind     `yaml:"kind" json:"kind"`
	Required bool     `yaml:"required,omitempty" json:"required,omitempty"`
	Ref      *TypeRef `yaml:"ref,omitempty" json:"ref,omitempty"`
}

// ActionDescriptor describes a named action invocable on a resource.
// Target is a path template relative to the resource identifier. Mutates
// marks actions that are documented to change the state of the invoking
// resource.
type ActionDescriptor struct {
	Name       string            `yaml:"name" json:"name"`
	Target     string            `yaml:"target" json:"target"`
	Parameters []ActionParameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Mutates    bool              `yaml:"mutates,omitempty" json:"mutates,omitempty"`
}

// Fragment is one pre-parsed piece of an interface description schema,
// as produced by an external schema acquisition step or loaded from a
// fragment file.
type Fragment struct {
	Namespace  string               `yaml:"namespace" json:"namespace"`
	Name       string               `yaml:"name" json:"name"`
	Version    string               `yaml:"version,omitempty" json:"version,omitempty"`
	Category   string               `yaml:"category,omitempty" json:"category,omitempty"`
	Parent     *TypeRef             `yaml:"parent,omitempty" json:"parent,omitempty"`
	Members    []string             `yaml:"members,omitempty" json:"members,omitempty"`
	Properties []PropertyDescriptor `yaml:"properties,omitempty" json:"properties,omitempty"`
	Actions    []ActionDescriptor   `yaml:"actions,omitempty" json:"actions,omitempty"`
}

func (f Fragment) ref() TypeRef {
	return TypeRef{Namespace: f.Namespace, Name: f.Name}
}

func (f Fragment) category() string {
	if f.Category == "" {
		return CategoryEntity
	}
	return f.Category
}

// TypeDescriptor is the immutable in-model representation of one type.
type TypeDescriptor struct {
	TypeRef

	Version    string
	Category   string
	Parent     *TypeRef
	Members    []string
	Properties []PropertyDescriptor
	Actions    []ActionDescriptor
}

// ParseType parses an "@odata.type" payload annotation on the form
// "#Namespace.vN_N_N.TypeName" (the version segment is optional) into a
// type reference.
func ParseType(odataType string) (TypeRef, error) {
	if !strings.HasPrefix(odataType, "#") {
		return TypeRef{}, fmt.Errorf("type annotation %q does not start with '#'", odataType)
	}

	parts := strings.Split(odataType[1:], ".")
	if len(parts) < 2 {
		return TypeRef{}, fmt.Errorf("type annotation %q has too few segments", odataType)
	}

	return TypeRef{Namespace: parts[0], Name: parts[len(parts)-1]}, nil
}

// FormatType renders a type reference back to its payload annotation form.
func FormatType(ref TypeRef, version string) string {
	if version != "" {
		return "#" + ref.Namespace + "." + version + "." + ref.Name
	}
	return "#" + ref.Namespace + "." + ref.Name
}
