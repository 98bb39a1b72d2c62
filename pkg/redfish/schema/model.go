package schema

import (
	"fmt"
	"reflect"

	"github.com/rackwise/redfish-client/pkg/redfish/errors"
)

// Model is a closed set of type descriptors where every type reference
// resolves within the set. A model is built once and immutable thereafter;
// lookups are pure functions with no side effects.
type Model struct {
	types map[TypeRef]*TypeDescriptor
}

// NewModel builds a model from one or more fragment sets. Identical
// fragments appearing in more than one set are collapsed; differing
// fragments for the same type are rejected. Building fails with
// ErrUnresolvedReference if any fragment references a type absent from
// the supplied sets, and with ErrCyclicInheritance if a parent chain
// revisits a type.
func NewModel(fragmentSets ...[]Fragment) (*Model, error) {
	fragments := map[TypeRef]Fragment{}

	for _, set := range fragmentSets {
		for _, f := range set {
			ref := f.ref()
			if existing, ok := fragments[ref]; ok {
				if !reflect.DeepEqual(existing, f) {
					return nil, fmt.Errorf("conflicting fragments for type %s", ref)
				}
				continue
			}
			fragments[ref] = f
		}
	}

	m := &Model{types: make(map[TypeRef]*TypeDescriptor, len(fragments))}

	for ref, f := range fragments {
		m.types[ref] = &TypeDescriptor{
			TypeRef:    ref,
			Version:    f.Version,
			Category:   f.category(),
			Parent:     f.Parent,
			Members:    f.Members,
			Properties: f.Properties,
			Actions:    f.Actions,
		}
	}

	for ref, td := range m.types {
		if err := m.checkReferences(ref, td); err != nil {
			return nil, err
		}
	}

	for ref := range m.types {
		if err := m.checkInheritance(ref); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Model) checkReferences(ref TypeRef, td *TypeDescriptor) error {
	if td.Parent != nil {
		if _, ok := m.types[*td.Parent]; !ok {
			return errors.NewUnresolvedReferenceError(
				fmt.Sprintf("type %s declares unknown parent %s", ref, td.Parent),
			)
		}
	}

	for _, p := range td.Properties {
		if err := m.checkKindRef(ref, p.Name, p.Kind, p.ElemKind, p.Ref); err != nil {
			return err
		}
	}

	for _, a := range td.Actions {
		for _, param := range a.Parameters {
			if err := m.checkKindRef(ref, a.Name+"/"+param.Name, param.Kind, "", param.Ref); err != nil {
				return err
			}
		}
	}

	return nil
}

func (m *Model) checkKindRef(owner TypeRef, name string, kind, elemKind Kind, typeRef *TypeRef) error {
	needsRef := kind == KindEnum || kind == KindComplex || kind == KindLink
	if kind == KindCollection {
		needsRef = elemKind == KindEnum || elemKind == KindComplex || elemKind == KindLink
	}

	if !needsRef {
		return nil
	}

	if typeRef == nil {
		return errors.NewUnresolvedReferenceError(
			fmt.Sprintf("%s %s of kind %s is missing its type reference", owner, name, kind),
		)
	}

	if _, ok := m.types[*typeRef]; !ok {
		return errors.NewUnresolvedReferenceError(
			fmt.Sprintf("%s %s references unknown type %s", owner, name, typeRef),
		)
	}

	return nil
}

func (m *Model) checkInheritance(ref TypeRef) error {
	visited := map[TypeRef]bool{}

	for current := &ref; current != nil; {
		if visited[*current] {
			return errors.NewCyclicInheritanceError(
				fmt.Sprintf("inheritance chain of %s revisits %s", ref, current),
			)
		}
		visited[*current] = true
		current = m.types[*current].Parent
	}

	return nil
}

// Describe returns the descriptor for the named type, if present.
func (m *Model) Describe(namespace, name string) (*TypeDescriptor, bool) {
	return m.DescribeRef(TypeRef{Namespace: namespace, Name: name})
}

// DescribeRef returns the descriptor for the referenced type, if present.
func (m *Model) DescribeRef(ref TypeRef) (*TypeDescriptor, bool) {
	td, ok := m.types[ref]
	return td, ok
}

// IsSubtype reports whether ancestor appears in candidate's inheritance
// chain. The relation is reflexive. Unknown candidates are never subtypes.
func (m *Model) IsSubtype(candidate, ancestor TypeRef) bool {
	for current := &candidate; current != nil; {
		td, ok := m.types[*current]
		if !ok {
			return false
		}
		if *current == ancestor {
			return true
		}
		current = td.Parent
	}

	return false
}

// Properties returns the declared properties of the referenced type,
// including inherited ones, parents first.
func (m *Model) Properties(ref TypeRef) []PropertyDescriptor {
	chain := m.chain(ref)

	var props []PropertyDescriptor
	for i := len(chain) - 1; i >= 0; i-- {
		props = append(props, chain[i].Properties...)
	}

	return props
}

// Property looks up a declared property by name, searching the type and
// its ancestors.
func (m *Model) Property(ref TypeRef, name string) (*PropertyDescriptor, bool) {
	for _, td := range m.chain(ref) {
		for i := range td.Properties {
			if td.Properties[i].Name == name {
				return &td.Properties[i], true
			}
		}
	}

	return nil, false
}

// Action looks up a declared action by name, searching the type and its
// ancestors.
func (m *Model) Action(ref TypeRef, name string) (*ActionDescriptor, bool) {
	for _, td := range m.chain(ref) {
		for i := range td.Actions {
			if td.Actions[i].Name == name {
				return &td.Actions[i], true
			}
		}
	}

	return nil, false
}

// EnumMembers returns the declared members of an enum type.
func (m *Model) EnumMembers(ref TypeRef) ([]string, bool) {
	td, ok := m.types[ref]
	if !ok || td.Category != CategoryEnum {
		return nil, false
	}

	return td.Members, true
}

func (m *Model) chain(ref TypeRef) []*TypeDescriptor {
	var chain []*TypeDescriptor

	for current := &ref; current != nil; {
		td, ok := m.types[*current]
		if !ok {
			break
		}
		chain = append(chain, td)
		current = td.Parent
	}

	return chain
}
