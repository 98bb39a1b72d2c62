package redfishstd

import (
	"testing"

	"github.com/matryer/is"
	"github.com/rackwise/redfish-client/pkg/redfish/schema"
)

func TestCatalogBuildsAClosedModel(t *testing.T) {
	is := is.New(t)

	m, err := schema.NewModelFromCatalog()
	is.NoErr(err)

	_, ok := m.DescribeRef(ServiceRootType)
	is.True(ok)

	_, ok = m.DescribeRef(DriveType)
	is.True(ok)
}

func TestEveryFamilyIsRegistered(t *testing.T) {
	is := is.New(t)

	families := map[string]bool{}
	for _, name := range schema.RegisteredFamilies() {
		families[name] = true
	}

	for _, name := range []string{
		"resource", "serviceroot", "chassis", "computersystem",
		"storage", "sensor", "manager", "accountservice",
		"eventservice", "updateservice",
	} {
		is.True(families[name])
	}
}

func TestAllStandardTypesDescendFromResource(t *testing.T) {
	is := is.New(t)

	m, err := schema.NewModelFromCatalog()
	is.NoErr(err)

	for _, candidate := range []schema.TypeRef{
		ChassisType, ComputerSystemType, StorageType, DriveType,
		VolumeType, SensorType, ManagerType, ThermalType,
		ComputerSystemCollectionType, SensorCollectionType,
	} {
		is.True(m.IsSubtype(candidate, ResourceType))
	}
}

func TestResetActionIsInvocableOnSystemsAndManagers(t *testing.T) {
	is := is.New(t)

	m, err := schema.NewModelFromCatalog()
	is.NoErr(err)

	for _, owner := range []schema.TypeRef{ComputerSystemType, ManagerType} {
		action, ok := m.Action(owner, "Reset")
		is.True(ok)
		is.True(action.Mutates)
		is.Equal(action.Parameters[0].Name, "ResetType")
		is.True(action.Parameters[0].Required)
	}
}

func TestCatalogAcceptsExtraFamilies(t *testing.T) {
	is := is.New(t)

	battery := []schema.Fragment{
		{
			Namespace: "Battery",
			Name:      "Battery",
			Parent:    ref(ResourceType),
			Properties: []schema.PropertyDescriptor{
				{Name: "ChargePercent", Kind: schema.KindNumber, Nullable: true},
			},
		},
	}

	m, err := schema.NewModelFromCatalog(battery)
	is.NoErr(err)
	is.True(m.IsSubtype(schema.TypeRef{Namespace: "Battery", Name: "Battery"}, ResourceType))
}
