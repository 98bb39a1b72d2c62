package redfishstd

import (
	"github.com/rackwise/redfish-client/pkg/redfish/schema"
)

func ChassisFragments() []schema.Fragment {
	return []schema.Fragment{
		{
			Namespace: "Chassis",
			Name:      "Chassis",
			Version:   "v1_22_0",
			Parent:    ref(ResourceType),
			Properties: []schema.PropertyDescriptor{
				{Name: "ChassisType", Kind: schema.KindEnum, Ref: ref(ChassisTypeEnumType)},
				{Name: "Manufacturer", Kind: schema.KindString, Nullable: true},
				{Name: "Model", Kind: schema.KindString, Nullable: true},
				{Name: "SerialNumber", Kind: schema.KindString, Nullable: true},
				{Name: "PartNumber", Kind: schema.KindString, Nullable: true},
				{Name: "AssetTag", Kind: schema.KindString, Nullable: true},
				{Name: "Status", Kind: schema.KindComplex, Ref: ref(StatusType)},
				{Name: "Thermal", Kind: schema.KindLink, Ref: ref(ThermalType)},
				{Name: "Power", Kind: schema.KindLink, Ref: ref(PowerType)},
				{Name: "Sensors", Kind: schema.KindLink, Ref: ref(SensorCollectionType)},
			},
			Actions: []schema.ActionDescriptor{
				{
					Name:    "Reset",
					Target:  "Actions/Chassis.Reset",
					Mutates: true,
					Parameters: []schema.ActionParameter{
						{Name: "ResetType", Kind: schema.KindEnum, Ref: ref(ResetTypeType), Required: true},
					},
				},
			},
		},
		{
			Namespace: "ChassisCollection",
			Name:      "ChassisCollection",
			Parent:    ref(ResourceCollectionType),
			Properties: []schema.PropertyDescriptor{
				{Name: "Members", Kind: schema.KindCollection, ElemKind: schema.KindLink, Ref: ref(ChassisType)},
			},
		},
		{
			Namespace: "Chassis",
			Name:      "ChassisType",
			Category:  schema.CategoryEnum,
			Members:   []string{"Rack", "Blade", "Enclosure", "RackMount", "Card", "Sidecar", "Drawer", "Module"},
		},
		{
			Namespace: "Thermal",
			Name:      "Thermal",
			Version:   "v1_7_1",
			Parent:    ref(ResourceType),
			Properties: []schema.PropertyDescriptor{
				{Name: "Temperatures", Kind: schema.KindCollection, ElemKind: schema.KindComplex, Ref: ref(TemperatureType)},
				{Name: "Fans", Kind: schema.KindCollection, ElemKind: schema.KindComplex, Ref: ref(FanType)},
			},
		},
		{
			Namespace: "Thermal",
			Name:      "Temperature",
			Category:  schema.CategoryComplex,
			Properties: []schema.PropertyDescriptor{
				{Name: "Name", Kind: schema.KindString},
				{Name: "ReadingCelsius", Kind: schema.KindNumber, Nullable: true},
				{Name: "UpperThresholdCritical", Kind: schema.KindNumber, Nullable: true},
				{Name: "Status", Kind: schema.KindComplex, Ref: ref(StatusType)},
			},
		},
		{
			Namespace: "Thermal",
			Name:      "Fan",
			Category:  schema.CategoryComplex,
			Properties: []schema.PropertyDescriptor{
				{Name: "Name", Kind: schema.KindString},
				{Name: "Reading", Kind: schema.KindNumber, Nullable: true},
				{Name: "ReadingUnits", Kind: schema.KindString, Nullable: true},
				{Name: "Status", Kind: schema.KindComplex, Ref: ref(StatusType)},
			},
		},
		{
			Namespace: "Power",
			Name:      "Power",
			Version:   "v1_7_1",
			Parent:    ref(ResourceType),
			Properties: []schema.PropertyDescriptor{
				{Name: "PowerSupplies", Kind: schema.KindCollection, ElemKind: schema.KindComplex, Ref: ref(PowerSupplyType)},
			},
		},
		{
			Namespace: "Power",
			Name:      "PowerSupply",
			Category:  schema.CategoryComplex,
			Properties: []schema.PropertyDescriptor{
				{Name: "Name", Kind: schema.KindString},
				{Name: "PowerCapacityWatts", Kind: schema.KindNumber, Nullable: true},
				{Name: "LastPowerOutputWatts", Kind: schema.KindNumber, Nullable: true},
				{Name: "Status", Kind: schema.KindComplex, Ref: ref(StatusType)},
			},
		},
	}
}

func init() {
	schema.RegisterFamily("chassis", ChassisFragments())
}
