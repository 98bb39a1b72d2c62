package entities

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/rackwise/redfish-client/pkg/redfish/errors"
	"github.com/rackwise/redfish-client/pkg/redfish/oem"
	"github.com/rackwise/redfish-client/pkg/redfish/schema"
	"github.com/rackwise/redfish-client/pkg/redfish/types"
)

type EntityDecoratorFunc func(e *EntityImpl)

// New creates an entity from scratch, typically for use in create and
// mutate request bodies or in tests.
func New(entityID string, typeRef schema.TypeRef, decorators ...EntityDecoratorFunc) (types.Entity, error) {
	if entityID == "" {
		return nil, fmt.Errorf("an entity requires a resource identifier")
	}

	e := &EntityImpl{
		entityID:      entityID,
		typeRef:       typeRef,
		properties:    map[string]any{},
		extensions:    map[string]map[string]any{},
		links:         map[string]types.Link{},
		linkLists:     map[string]bool{},
		actionTargets: map[string]string{},
	}

	for _, decorator := range decorators {
		decorator(e)
	}

	return e, nil
}

// NewFromPayload deserializes a wire payload against the schema model and
// extension registry. The payload's declared type must be known to the
// model and, when expected is non zero, must be a subtype of expected.
// Declared base properties land in the property mapping, vendor blocks in
// the extension bag, link kind properties in the link table and collection
// membership in the ordered member list. Decorators run last, so a version
// tag taken from a response header overrides one found in the payload.
func NewFromPayload(model *schema.Model, registry *oem.Registry, expected schema.TypeRef, body []byte, decorators ...EntityDecoratorFunc) (types.Entity, error) {
	var contents map[string]any

	err := json.Unmarshal(body, &contents)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal entity payload: %w", err)
	}

	actual, err := declaredType(contents, expected)
	if err != nil {
		return nil, err
	}

	td, known := model.DescribeRef(actual)
	if !known {
		return nil, errors.NewUnknownTypeError(
			fmt.Sprintf("payload declares type %s which is not part of the schema model", actual),
		)
	}

	if !expected.IsZero() && !model.IsSubtype(actual, expected) {
		return nil, errors.NewTypeMismatchError(
			fmt.Sprintf("payload type %s is not a subtype of expected type %s", actual, expected),
		)
	}

	e := &EntityImpl{
		typeRef:       actual,
		version:       td.Version,
		properties:    map[string]any{},
		extensions:    map[string]map[string]any{},
		links:         map[string]types.Link{},
		linkLists:     map[string]bool{},
		actionTargets: map[string]string{},
	}

	if id, ok := contents["@odata.id"].(string); ok {
		e.entityID = id
	}

	if etag, ok := contents["@odata.etag"].(string); ok {
		e.etag = etag
	}

	for _, pd := range model.Properties(actual) {
		raw, present := contents[pd.Name]
		if !present {
			continue
		}

		switch {
		case pd.Kind == schema.KindLink:
			if target, ok := referenceTarget(raw); ok {
				expected := schema.TypeRef{}
				if pd.Ref != nil {
					expected = *pd.Ref
				}
				e.links[pd.Name] = types.Link{Target: target, Expected: expected}
			}
		case pd.Kind == schema.KindCollection && pd.ElemKind == schema.KindLink:
			targets := referenceTargets(raw)
			if pd.Name == "Members" {
				e.members = targets
			} else {
				e.properties[pd.Name] = targets
				e.linkLists[pd.Name] = true
			}
		default:
			e.properties[pd.Name] = raw
		}
	}

	if block, ok := contents["Oem"].(map[string]any); ok {
		e.extensions = projectExtensions(registry, actual, block)
	}

	if block, ok := contents["Actions"].(map[string]any); ok {
		for key, value := range block {
			decl, ok := value.(map[string]any)
			if !ok {
				continue
			}
			if target, ok := decl["target"].(string); ok {
				e.actionTargets[key] = target
			}
		}
	}

	for _, decorator := range decorators {
		decorator(e)
	}

	if e.entityID == "" {
		return nil, fmt.Errorf("payload carries no resource identifier")
	}

	return e, nil
}

func declaredType(contents map[string]any, expected schema.TypeRef) (schema.TypeRef, error) {
	annotation, ok := contents["@odata.type"].(string)
	if !ok {
		if expected.IsZero() {
			return schema.TypeRef{}, errors.NewUnknownTypeError("payload declares no type and none was expected")
		}
		return expected, nil
	}

	return schema.ParseType(annotation)
}

func referenceTarget(raw any) (string, bool) {
	ref, ok := raw.(map[string]any)
	if !ok {
		return "", false
	}

	target, ok := ref["@odata.id"].(string)
	return target, ok
}

func referenceTargets(raw any) []string {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}

	targets := make([]string, 0, len(list))
	for _, item := range list {
		if target, ok := referenceTarget(item); ok {
			targets = append(targets, target)
		}
	}

	return targets
}

// projectExtensions files each vendor block into the extension bag. When
// the registry holds a descriptor for (type, vendor), only the declared
// extension properties are kept; unregistered vendor blocks are kept
// verbatim so that payload contents survive a round trip.
func projectExtensions(registry *oem.Registry, entityType schema.TypeRef, block map[string]any) map[string]map[string]any {
	bag := map[string]map[string]any{}

	for vendor, raw := range block {
		values, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		if registry == nil {
			bag[vendor] = values
			continue
		}

		ext, found := registry.Resolve(entityType, vendor)
		if !found {
			bag[vendor] = values
			continue
		}

		projected := map[string]any{}
		for _, pd := range ext.Properties {
			if v, present := values[pd.Name]; present {
				projected[pd.Name] = v
			}
		}
		bag[vendor] = projected
	}

	return bag
}

type EntityImpl struct {
	entityID string
	typeRef  schema.TypeRef
	version  string
	etag     string

	properties    map[string]any
	extensions    map[string]map[string]any
	links         map[string]types.Link
	linkLists     map[string]bool
	members       []string
	actionTargets map[string]string
}

func (e EntityImpl) ID() string {
	return e.entityID
}

func (e EntityImpl) Type() schema.TypeRef {
	return e.typeRef
}

func (e EntityImpl) ETag() string {
	return e.etag
}

func (e EntityImpl) Property(name string) (any, bool) {
	v, ok := e.properties[name]
	return v, ok
}

func (e EntityImpl) ForEachProperty(callback func(name string, value any)) {
	for k, v := range e.properties {
		callback(k, v)
	}
}

func (e EntityImpl) OEM(vendor string) (map[string]any, bool) {
	values, ok := e.extensions[vendor]
	return values, ok
}

func (e EntityImpl) Vendors() []string {
	vendors := make([]string, 0, len(e.extensions))
	for vendor := range e.extensions {
		vendors = append(vendors, vendor)
	}
	sort.Strings(vendors)
	return vendors
}

func (e EntityImpl) Links() map[string]types.Link {
	return e.links
}

func (e EntityImpl) Members() []string {
	return e.members
}

// ActionTarget resolves an action's invocation path. Payloads key action
// declarations by "#Namespace.ActionName"; lookup accepts either the full
// key or the bare action name.
func (e EntityImpl) ActionTarget(name string) (string, bool) {
	if target, ok := e.actionTargets[name]; ok {
		return target, true
	}

	for key, target := range e.actionTargets {
		if strings.HasSuffix(key, "."+name) {
			return target, true
		}
	}

	return "", false
}

func (e EntityImpl) MarshalJSON() ([]byte, error) {
	contents := map[string]any{
		"@odata.id": e.entityID,
	}

	if !e.typeRef.IsZero() {
		contents["@odata.type"] = schema.FormatType(e.typeRef, e.version)
	}

	if e.etag != "" {
		contents["@odata.etag"] = e.etag
	}

	// reference list properties go back out the way they came in, as
	// arrays of reference objects, so a round trip reproduces them
	for k, v := range e.properties {
		if e.linkLists[k] {
			targets, _ := v.([]string)
			refs := make([]any, 0, len(targets))
			for _, target := range targets {
				refs = append(refs, map[string]any{"@odata.id": target})
			}
			contents[k] = refs
			continue
		}
		contents[k] = v
	}

	for k, l := range e.links {
		contents[k] = map[string]any{"@odata.id": l.Target}
	}

	if e.members != nil {
		members := make([]any, 0, len(e.members))
		for _, m := range e.members {
			members = append(members, map[string]any{"@odata.id": m})
		}
		contents["Members"] = members
		contents["Members@odata.count"] = len(e.members)
	}

	if len(e.extensions) > 0 {
		contents["Oem"] = e.extensions
	}

	if len(e.actionTargets) > 0 {
		actions := map[string]any{}
		for key, target := range e.actionTargets {
			actions[key] = map[string]any{"target": target}
		}
		contents["Actions"] = actions
	}

	return json.Marshal(&contents)
}
