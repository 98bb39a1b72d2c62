package redfishstd

import (
	"github.com/rackwise/redfish-client/pkg/redfish/schema"
)

// ResourceFragments declares the base types every other family builds
// on: the abstract Resource entity, the shared Status complex type and
// the enumerations used across families.
func ResourceFragments() []schema.Fragment {
	return []schema.Fragment{
		{
			Namespace: "Resource",
			Name:      "Resource",
			Version:   "v1_0_0",
			Properties: []schema.PropertyDescriptor{
				{Name: "Id", Kind: schema.KindString},
				{Name: "Name", Kind: schema.KindString},
				{Name: "Description", Kind: schema.KindString, Nullable: true},
			},
		},
		{
			Namespace: "Resource",
			Name:      "Status",
			Category:  schema.CategoryComplex,
			Properties: []schema.PropertyDescriptor{
				{Name: "State", Kind: schema.KindEnum, Ref: ref(StateType)},
				{Name: "Health", Kind: schema.KindEnum, Ref: ref(HealthType), Nullable: true},
			},
		},
		{
			Namespace: "Resource",
			Name:      "Health",
			Category:  schema.CategoryEnum,
			Members:   []string{"OK", "Warning", "Critical"},
		},
		{
			Namespace: "Resource",
			Name:      "State",
			Category:  schema.CategoryEnum,
			Members:   []string{"Enabled", "Disabled", "StandbyOffline", "InTest", "Starting", "Absent", "UnavailableOffline", "Updating"},
		},
		{
			Namespace: "Resource",
			Name:      "ResetType",
			Category:  schema.CategoryEnum,
			Members:   []string{"On", "ForceOff", "GracefulShutdown", "GracefulRestart", "ForceRestart", "Nmi", "PowerCycle"},
		},
		{
			Namespace: "Collection",
			Name:      "ResourceCollection",
			Parent:    ref(ResourceType),
			Properties: []schema.PropertyDescriptor{
				{Name: "Members", Kind: schema.KindCollection, ElemKind: schema.KindLink, Ref: ref(ResourceType)},
			},
		},
	}
}

func init() {
	schema.RegisterFamily("resource", ResourceFragments())
}
