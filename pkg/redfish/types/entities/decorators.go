package entities

import (
	"github.com/rackwise/redfish-client/pkg/redfish/schema"
	"github.com/rackwise/redfish-client/pkg/redfish/types"
)

// P sets a base property.
func P(name string, value any) EntityDecoratorFunc {
	return func(e *EntityImpl) {
		e.properties[name] = value
	}
}

// ETag sets the entity's version tag.
func ETag(tag string) EntityDecoratorFunc {
	return func(e *EntityImpl) {
		if tag != "" {
			e.etag = tag
		}
	}
}

// SchemaVersion sets the version segment used when rendering the type
// annotation.
func SchemaVersion(version string) EntityDecoratorFunc {
	return func(e *EntityImpl) {
		e.version = version
	}
}

// OEMBlock files vendor specific values into the extension bag.
func OEMBlock(vendor string, values map[string]any) EntityDecoratorFunc {
	return func(e *EntityImpl) {
		e.extensions[vendor] = values
	}
}

// LinkTo adds a typed link property.
func LinkTo(name, target string, expected schema.TypeRef) EntityDecoratorFunc {
	return func(e *EntityImpl) {
		e.links[name] = types.Link{Target: target, Expected: expected}
	}
}

// LinkList sets a property holding an ordered list of resource references.
func LinkList(name string, targets ...string) EntityDecoratorFunc {
	return func(e *EntityImpl) {
		e.properties[name] = targets
		e.linkLists[name] = true
	}
}

// Member appends collection members in order.
func Member(targets ...string) EntityDecoratorFunc {
	return func(e *EntityImpl) {
		e.members = append(e.members, targets...)
	}
}

// ActionAt declares an action target, keyed the way payloads key them.
func ActionAt(key, target string) EntityDecoratorFunc {
	return func(e *EntityImpl) {
		e.actionTargets[key] = target
	}
}
