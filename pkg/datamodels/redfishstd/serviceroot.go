package redfishstd

import (
	"github.com/rackwise/redfish-client/pkg/redfish/schema"
)

func ServiceRootFragments() []schema.Fragment {
	return []schema.Fragment{
		{
			Namespace: "ServiceRoot",
			Name:      "ServiceRoot",
			Version:   "v1_9_0",
			Parent:    ref(ResourceType),
			Properties: []schema.PropertyDescriptor{
				{Name: "RedfishVersion", Kind: schema.KindString},
				{Name: "UUID", Kind: schema.KindString, Nullable: true},
				{Name: "Systems", Kind: schema.KindLink, Ref: ref(ComputerSystemCollectionType)},
				{Name: "Chassis", Kind: schema.KindLink, Ref: ref(ChassisCollectionType)},
				{Name: "Managers", Kind: schema.KindLink, Ref: ref(ManagerCollectionType)},
				{Name: "AccountService", Kind: schema.KindLink, Ref: ref(AccountServiceType)},
				{Name: "EventService", Kind: schema.KindLink, Ref: ref(EventServiceType)},
				{Name: "UpdateService", Kind: schema.KindLink, Ref: ref(UpdateServiceType)},
			},
		},
	}
}

func init() {
	schema.RegisterFamily("serviceroot", ServiceRootFragments())
}
