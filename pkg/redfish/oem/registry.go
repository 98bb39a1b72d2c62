package oem

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/rackwise/redfish-client/pkg/redfish/errors"
	"github.com/rackwise/redfish-client/pkg/redfish/schema"
)

// ExtensionDescriptor is a vendor specific schema fragment layered onto a
// standard base type. Extensions never alter the base type itself; they
// only describe the contents of the vendor's block in a payload's Oem
// section.
type ExtensionDescriptor struct {
	Vendor     string
	Base       schema.TypeRef
	Properties []schema.PropertyDescriptor
	Actions    []schema.ActionDescriptor
}

type registrationKey struct {
	base   schema.TypeRef
	vendor string
}

// Registry maps (base type, vendor namespace) pairs to extension
// descriptors. Resolution walks the base type's inheritance chain in the
// schema model, so an extension registered on an ancestor applies to all
// of its subtypes unless a more specific registration shadows it.
type Registry struct {
	model *schema.Model

	mutex      sync.RWMutex
	extensions map[registrationKey]ExtensionDescriptor
}

func NewRegistry(model *schema.Model) *Registry {
	return &Registry{
		model:      model,
		extensions: map[registrationKey]ExtensionDescriptor{},
	}
}

// Register associates an extension descriptor with a (base type, vendor)
// pair. Re-registering an identical descriptor is a no-op; registering a
// differing descriptor for an already claimed pair fails with
// ErrExtensionConflict.
func (r *Registry) Register(base schema.TypeRef, vendor string, ext ExtensionDescriptor) error {
	ext.Vendor = vendor
	ext.Base = base

	r.mutex.Lock()
	defer r.mutex.Unlock()

	key := registrationKey{base: base, vendor: vendor}

	if existing, ok := r.extensions[key]; ok {
		if reflect.DeepEqual(existing, ext) {
			return nil
		}
		return errors.NewExtensionConflictError(
			fmt.Sprintf("vendor %s already registered a different extension for %s", vendor, base),
		)
	}

	r.extensions[key] = ext
	return nil
}

// Resolve returns the extension registered for the nearest ancestor
// (including entityType itself) of entityType for the given vendor.
func (r *Registry) Resolve(entityType schema.TypeRef, vendor string) (*ExtensionDescriptor, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	current := &entityType
	for current != nil {
		if ext, ok := r.extensions[registrationKey{base: *current, vendor: vendor}]; ok {
			return &ext, true
		}

		td, ok := r.model.DescribeRef(*current)
		if !ok {
			break
		}
		current = td.Parent
	}

	return nil, false
}

// Vendors returns the vendor namespaces with at least one registration,
// sorted so callers iterating over them resolve deterministically.
func (r *Registry) Vendors() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	seen := map[string]bool{}
	vendors := []string{}

	for key := range r.extensions {
		if !seen[key.vendor] {
			seen[key.vendor] = true
			vendors = append(vendors, key.vendor)
		}
	}

	sort.Strings(vendors)

	return vendors
}
