package redfishstd

import (
	"github.com/rackwise/redfish-client/pkg/redfish/schema"
)

func SensorFragments() []schema.Fragment {
	return []schema.Fragment{
		{
			Namespace: "Sensor",
			Name:      "Sensor",
			Version:   "v1_7_0",
			Parent:    ref(ResourceType),
			Properties: []schema.PropertyDescriptor{
				{Name: "Reading", Kind: schema.KindNumber, Nullable: true},
				{Name: "ReadingUnits", Kind: schema.KindString, Nullable: true},
				{Name: "ReadingType", Kind: schema.KindEnum, Ref: ref(ReadingTypeType)},
				{Name: "Status", Kind: schema.KindComplex, Ref: ref(StatusType)},
			},
		},
		{
			Namespace: "SensorCollection",
			Name:      "SensorCollection",
			Parent:    ref(ResourceCollectionType),
			Properties: []schema.PropertyDescriptor{
				{Name: "Members", Kind: schema.KindCollection, ElemKind: schema.KindLink, Ref: ref(SensorType)},
			},
		},
		{
			Namespace: "Sensor",
			Name:      "ReadingType",
			Category:  schema.CategoryEnum,
			Members:   []string{"Temperature", "Voltage", "Current", "Power", "Rotational", "Percent"},
		},
	}
}

func ManagerFragments() []schema.Fragment {
	return []schema.Fragment{
		{
			Namespace: "Manager",
			Name:      "Manager",
			Version:   "v1_18_0",
			Parent:    ref(ResourceType),
			Properties: []schema.PropertyDescriptor{
				{Name: "ManagerType", Kind: schema.KindEnum, Ref: ref(ManagerTypeEnumType)},
				{Name: "FirmwareVersion", Kind: schema.KindString, Nullable: true},
				{Name: "Status", Kind: schema.KindComplex, Ref: ref(StatusType)},
			},
			Actions: []schema.ActionDescriptor{
				{
					Name:    "Reset",
					Target:  "Actions/Manager.Reset",
					Mutates: true,
					Parameters: []schema.ActionParameter{
						{Name: "ResetType", Kind: schema.KindEnum, Ref: ref(ResetTypeType), Required: true},
					},
				},
			},
		},
		{
			Namespace: "ManagerCollection",
			Name:      "ManagerCollection",
			Parent:    ref(ResourceCollectionType),
			Properties: []schema.PropertyDescriptor{
				{Name: "Members", Kind: schema.KindCollection, ElemKind: schema.KindLink, Ref: ref(ManagerType)},
			},
		},
		{
			Namespace: "Manager",
			Name:      "ManagerType",
			Category:  schema.CategoryEnum,
			Members:   []string{"ManagementController", "EnclosureManager", "BMC", "RackManager"},
		},
	}
}

func AccountServiceFragments() []schema.Fragment {
	return []schema.Fragment{
		{
			Namespace: "AccountService",
			Name:      "AccountService",
			Version:   "v1_13_0",
			Parent:    ref(ResourceType),
			Properties: []schema.PropertyDescriptor{
				{Name: "ServiceEnabled", Kind: schema.KindBoolean},
				{Name: "MinPasswordLength", Kind: schema.KindInteger, Nullable: true},
				{Name: "Accounts", Kind: schema.KindLink, Ref: ref(ManagerAccountCollectionType)},
			},
		},
		{
			Namespace: "ManagerAccount",
			Name:      "ManagerAccount",
			Version:   "v1_10_0",
			Parent:    ref(ResourceType),
			Properties: []schema.PropertyDescriptor{
				{Name: "UserName", Kind: schema.KindString},
				{Name: "RoleId", Kind: schema.KindString},
				{Name: "Enabled", Kind: schema.KindBoolean},
				{Name: "Locked", Kind: schema.KindBoolean, Nullable: true},
				{Name: "Password", Kind: schema.KindString, Nullable: true},
			},
		},
		{
			Namespace: "ManagerAccountCollection",
			Name:      "ManagerAccountCollection",
			Parent:    ref(ResourceCollectionType),
			Properties: []schema.PropertyDescriptor{
				{Name: "Members", Kind: schema.KindCollection, ElemKind: schema.KindLink, Ref: ref(ManagerAccountType)},
			},
		},
	}
}

func EventServiceFragments() []schema.Fragment {
	return []schema.Fragment{
		{
			Namespace: "EventService",
			Name:      "EventService",
			Version:   "v1_10_0",
			Parent:    ref(ResourceType),
			Properties: []schema.PropertyDescriptor{
				{Name: "ServiceEnabled", Kind: schema.KindBoolean},
				{Name: "DeliveryRetryAttempts", Kind: schema.KindInteger, Nullable: true},
				{Name: "Subscriptions", Kind: schema.KindLink, Ref: ref(EventDestinationCollectionType)},
			},
			Actions: []schema.ActionDescriptor{
				{
					Name:   "SubmitTestEvent",
					Target: "Actions/EventService.SubmitTestEvent",
					Parameters: []schema.ActionParameter{
						{Name: "MessageId", Kind: schema.KindString, Required: true},
						{Name: "Message", Kind: schema.KindString},
					},
				},
			},
		},
		{
			Namespace: "EventDestination",
			Name:      "EventDestination",
			Version:   "v1_13_0",
			Parent:    ref(ResourceType),
			Properties: []schema.PropertyDescriptor{
				{Name: "Destination", Kind: schema.KindString},
				{Name: "Protocol", Kind: schema.KindEnum, Ref: ref(EventProtocolType)},
				{Name: "Context", Kind: schema.KindString, Nullable: true},
			},
		},
		{
			Namespace: "EventDestinationCollection",
			Name:      "EventDestinationCollection",
			Parent:    ref(ResourceCollectionType),
			Properties: []schema.PropertyDescriptor{
				{Name: "Members", Kind: schema.KindCollection, ElemKind: schema.KindLink, Ref: ref(EventDestinationType)},
			},
		},
		{
			Namespace: "EventDestination",
			Name:      "EventDestinationProtocol",
			Category:  schema.CategoryEnum,
			Members:   []string{"Redfish", "SNMPv1", "SNMPv2c", "SNMPv3", "SMTP", "SyslogTLS"},
		},
	}
}

func UpdateServiceFragments() []schema.Fragment {
	return []schema.Fragment{
		{
			Namespace: "UpdateService",
			Name:      "UpdateService",
			Version:   "v1_11_0",
			Parent:    ref(ResourceType),
			Properties: []schema.PropertyDescriptor{
				{Name: "ServiceEnabled", Kind: schema.KindBoolean},
				{Name: "FirmwareInventory", Kind: schema.KindLink, Ref: ref(SoftwareInventoryCollectionType)},
			},
			Actions: []schema.ActionDescriptor{
				{
					Name:   "SimpleUpdate",
					Target: "Actions/UpdateService.SimpleUpdate",
					Parameters: []schema.ActionParameter{
						{Name: "ImageURI", Kind: schema.KindString, Required: true},
						{Name: "TransferProtocol", Kind: schema.KindString},
					},
				},
			},
		},
		{
			Namespace: "SoftwareInventory",
			Name:      "SoftwareInventory",
			Version:   "v1_9_0",
			Parent:    ref(ResourceType),
			Properties: []schema.PropertyDescriptor{
				{Name: "Version", Kind: schema.KindString, Nullable: true},
				{Name: "Updateable", Kind: schema.KindBoolean},
			},
		},
		{
			Namespace: "SoftwareInventoryCollection",
			Name:      "SoftwareInventoryCollection",
			Parent:    ref(ResourceCollectionType),
			Properties: []schema.PropertyDescriptor{
				{Name: "Members", Kind: schema.KindCollection, ElemKind: schema.KindLink, Ref: ref(SoftwareInventoryType)},
			},
		},
	}
}

func init() {
	schema.RegisterFamily("sensor", SensorFragments())
	schema.RegisterFamily("manager", ManagerFragments())
	schema.RegisterFamily("accountservice", AccountServiceFragments())
	schema.RegisterFamily("eventservice", EventServiceFragments())
	schema.RegisterFamily("updateservice", UpdateServiceFragments())
}
