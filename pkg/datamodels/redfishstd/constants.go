package redfishstd

import (
	"github.com/rackwise/redfish-client/pkg/redfish/schema"
)

var (
	ResourceType           = schema.TypeRef{Namespace: "Resource", Name: "Resource"}
	StatusType             = schema.TypeRef{Namespace: "Resource", Name: "Status"}
	HealthType             = schema.TypeRef{Namespace: "Resource", Name: "Health"}
	StateType              = schema.TypeRef{Namespace: "Resource", Name: "State"}
	ResetTypeType          = schema.TypeRef{Namespace: "Resource", Name: "ResetType"}
	ResourceCollectionType = schema.TypeRef{Namespace: "Collection", Name: "ResourceCollection"}

	ServiceRootType = schema.TypeRef{Namespace: "ServiceRoot", Name: "ServiceRoot"}

	ChassisType           = schema.TypeRef{Namespace: "Chassis", Name: "Chassis"}
	ChassisCollectionType = schema.TypeRef{Namespace: "ChassisCollection", Name: "ChassisCollection"}
	ChassisTypeEnumType   = schema.TypeRef{Namespace: "Chassis", Name: "ChassisType"}
	ThermalType           = schema.TypeRef{Namespace: "Thermal", Name: "Thermal"}
	TemperatureType       = schema.TypeRef{Namespace: "Thermal", Name: "Temperature"}
	FanType               = schema.TypeRef{Namespace: "Thermal", Name: "Fan"}
	PowerType             = schema.TypeRef{Namespace: "Power", Name: "Power"}
	PowerSupplyType       = schema.TypeRef{Namespace: "Power", Name: "PowerSupply"}

	ComputerSystemType           = schema.TypeRef{Namespace: "ComputerSystem", Name: "ComputerSystem"}
	ComputerSystemCollectionType = schema.TypeRef{Namespace: "ComputerSystemCollection", Name: "ComputerSystemCollection"}
	PowerStateType               = schema.TypeRef{Namespace: "ComputerSystem", Name: "PowerState"}

	StorageType           = schema.TypeRef{Namespace: "Storage", Name: "Storage"}
	StorageCollectionType = schema.TypeRef{Namespace: "StorageCollection", Name: "StorageCollection"}
	StorageControllerType = schema.TypeRef{Namespace: "Storage", Name: "StorageController"}
	DriveType             = schema.TypeRef{Namespace: "Drive", Name: "Drive"}
	MediaTypeType         = schema.TypeRef{Namespace: "Drive", Name: "MediaType"}
	VolumeType            = schema.TypeRef{Namespace: "Volume", Name: "Volume"}
	VolumeCollectionType  = schema.TypeRef{Namespace: "VolumeCollection", Name: "VolumeCollection"}

	SensorType           = schema.TypeRef{Namespace: "Sensor", Name: "Sensor"}
	SensorCollectionType = schema.TypeRef{Namespace: "SensorCollection", Name: "SensorCollection"}
	ReadingTypeType      = schema.TypeRef{Namespace: "Sensor", Name: "ReadingType"}

	ManagerType           = schema.TypeRef{Namespace: "Manager", Name: "Manager"}
	ManagerCollectionType = schema.TypeRef{Namespace: "ManagerCollection", Name: "ManagerCollection"}
	ManagerTypeEnumType   = schema.TypeRef{Namespace: "Manager", Name: "ManagerType"}

	AccountServiceType           = schema.TypeRef{Namespace: "AccountService", Name: "AccountService"}
	ManagerAccountType           = schema.TypeRef{Namespace: "ManagerAccount", Name: "ManagerAccount"}
	ManagerAccountCollectionType = schema.TypeRef{Namespace: "ManagerAccountCollection", Name: "ManagerAccountCollection"}

	EventServiceType               = schema.TypeRef{Namespace: "EventService", Name: "EventService"}
	EventDestinationType           = schema.TypeRef{Namespace: "EventDestination", Name: "EventDestination"}
	EventDestinationCollectionType = schema.TypeRef{Namespace: "EventDestinationCollection", Name: "EventDestinationCollection"}
	EventProtocolType              = schema.TypeRef{Namespace: "EventDestination", Name: "EventDestinationProtocol"}

	UpdateServiceType               = schema.TypeRef{Namespace: "UpdateService", Name: "UpdateService"}
	SoftwareInventoryType           = schema.TypeRef{Namespace: "SoftwareInventory", Name: "SoftwareInventory"}
	SoftwareInventoryCollectionType = schema.TypeRef{Namespace: "SoftwareInventoryCollection", Name: "SoftwareInventoryCollection"}
)

func ref(r schema.TypeRef) *schema.TypeRef {
	return &r
}
