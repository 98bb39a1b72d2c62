package types

import (
	"github.com/rackwise/redfish-client/pkg/redfish/schema"
)

// Link is a typed reference to another resource: the target identifier
// plus the expected type of the resource behind it. Expected is zero when
// the schema does not constrain the target.
type Link struct {
	Target   string
	Expected schema.TypeRef
}

// Entity is one instantiated resource. Base properties and OEM extension
// properties are kept strictly apart: vendor specific values live in the
// extension bag and never appear in the base property mapping.
type Entity interface {
	ID() string
	Type() schema.TypeRef
	ETag() string

	Property(name string) (any, bool)
	ForEachProperty(func(name string, value any))

	OEM(vendor string) (map[string]any, bool)
	Vendors() []string

	Links() map[string]Link
	Members() []string
	ActionTarget(name string) (string, bool)

	MarshalJSON() ([]byte, error)
}
