package redfishstd

import (
	"github.com/rackwise/redfish-client/pkg/redfish/schema"
)

func ComputerSystemFragments() []schema.Fragment {
	return []schema.Fragment{
		{
			Namespace: "ComputerSystem",
			Name:      "ComputerSystem",
			Version:   "v1_20_0",
			Parent:    ref(ResourceType),
			Properties: []schema.PropertyDescriptor{
				{Name: "Manufacturer", Kind: schema.KindString, Nullable: true},
				{Name: "Model", Kind: schema.KindString, Nullable: true},
				{Name: "SerialNumber", Kind: schema.KindString, Nullable: true},
				{Name: "AssetTag", Kind: schema.KindString, Nullable: true},
				{Name: "BiosVersion", Kind: schema.KindString, Nullable: true},
				{Name: "PowerState", Kind: schema.KindEnum, Ref: ref(PowerStateType)},
				{Name: "Status", Kind: schema.KindComplex, Ref: ref(StatusType)},
				{Name: "Storage", Kind: schema.KindLink, Ref: ref(StorageCollectionType)},
			},
			Actions: []schema.ActionDescriptor{
				{
					Name:    "Reset",
					Target:  "Actions/ComputerSystem.Reset",
					Mutates: true,
					Parameters: []schema.ActionParameter{
						{Name: "ResetType", Kind: schema.KindEnum, Ref: ref(ResetTypeType), Required: true},
					},
				},
			},
		},
		{
			Namespace: "ComputerSystemCollection",
			Name:      "ComputerSystemCollection",
			Parent:    ref(ResourceCollectionType),
			Properties: []schema.PropertyDescriptor{
				{Name: "Members", Kind: schema.KindCollection, ElemKind: schema.KindLink, Ref: ref(ComputerSystemType)},
			},
		},
		{
			Namespace: "ComputerSystem",
			Name:      "PowerState",
			Category:  schema.CategoryEnum,
			Members:   []string{"On", "Off", "PoweringOn", "PoweringOff", "Paused"},
		},
	}
}

func init() {
	schema.RegisterFamily("computersystem", ComputerSystemFragments())
}
