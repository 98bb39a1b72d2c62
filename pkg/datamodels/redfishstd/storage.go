package redfishstd

import (
	"github.com/rackwise/redfish-client/pkg/redfish/schema"
)

func StorageFragments() []schema.Fragment {
	return []schema.Fragment{
		{
			Namespace: "Storage",
			Name:      "Storage",
			Version:   "v1_15_0",
			Parent:    ref(ResourceType),
			Properties: []schema.PropertyDescriptor{
				{Name: "Status", Kind: schema.KindComplex, Ref: ref(StatusType)},
				{Name: "StorageControllers", Kind: schema.KindCollection, ElemKind: schema.KindComplex, Ref: ref(StorageControllerType)},
				{Name: "Drives", Kind: schema.KindCollection, ElemKind: schema.KindLink, Ref: ref(DriveType)},
				{Name: "Volumes", Kind: schema.KindLink, Ref: ref(VolumeCollectionType)},
			},
		},
		{
			Namespace: "StorageCollection",
			Name:      "StorageCollection",
			Parent:    ref(ResourceCollectionType),
			Properties: []schema.PropertyDescriptor{
				{Name: "Members", Kind: schema.KindCollection, ElemKind: schema.KindLink, Ref: ref(StorageType)},
			},
		},
		{
			Namespace: "Storage",
			Name:      "StorageController",
			Category:  schema.CategoryComplex,
			Properties: []schema.PropertyDescriptor{
				{Name: "Name", Kind: schema.KindString},
				{Name: "Manufacturer", Kind: schema.KindString, Nullable: true},
				{Name: "SpeedGbps", Kind: schema.KindNumber, Nullable: true},
				{Name: "Status", Kind: schema.KindComplex, Ref: ref(StatusType)},
			},
		},
		{
			Namespace: "Drive",
			Name:      "Drive",
			Version:   "v1_16_0",
			Parent:    ref(ResourceType),
			Properties: []schema.PropertyDescriptor{
				{Name: "CapacityBytes", Kind: schema.KindInteger, Nullable: true},
				{Name: "MediaType", Kind: schema.KindEnum, Ref: ref(MediaTypeType), Nullable: true},
				{Name: "Manufacturer", Kind: schema.KindString, Nullable: true},
				{Name: "SerialNumber", Kind: schema.KindString, Nullable: true},
				{Name: "Status", Kind: schema.KindComplex, Ref: ref(StatusType)},
			},
			Actions: []schema.ActionDescriptor{
				{
					Name:    "SecureErase",
					Target:  "Actions/Drive.SecureErase",
					Mutates: true,
				},
			},
		},
		{
			Namespace: "Drive",
			Name:      "MediaType",
			Category:  schema.CategoryEnum,
			Members:   []string{"HDD", "SSD", "SMR"},
		},
		{
			Namespace: "Volume",
			Name:      "Volume",
			Version:   "v1_9_0",
			Parent:    ref(ResourceType),
			Properties: []schema.PropertyDescriptor{
				{Name: "CapacityBytes", Kind: schema.KindInteger, Nullable: true},
				{Name: "Status", Kind: schema.KindComplex, Ref: ref(StatusType)},
			},
		},
		{
			Namespace: "VolumeCollection",
			Name:      "VolumeCollection",
			Parent:    ref(ResourceCollectionType),
			Properties: []schema.PropertyDescriptor{
				{Name: "Members", Kind: schema.KindCollection, ElemKind: schema.KindLink, Ref: ref(VolumeType)},
			},
		},
	}
}

func init() {
	schema.RegisterFamily("storage", StorageFragments())
}
