// Package contoso is a sample OEM vendor extension set. It layers vendor
// specific properties and actions onto the standard Drive and Chassis
// types without touching the base schema.
package contoso

import (
	"github.com/rackwise/redfish-client/pkg/datamodels/redfishstd"
	"github.com/rackwise/redfish-client/pkg/redfish/oem"
	"github.com/rackwise/redfish-client/pkg/redfish/schema"
)

const Vendor string = "Contoso"

func DriveExtension() oem.ExtensionDescriptor {
	return oem.ExtensionDescriptor{
		Properties: []schema.PropertyDescriptor{
			{Name: "FirmwareBuild", Kind: schema.KindString},
			{Name: "PredictedWearPercent", Kind: schema.KindNumber, Nullable: true},
		},
		Actions: []schema.ActionDescriptor{
			{
				Name:    "RefreshWearEstimate",
				Target:  "Actions/Oem/Contoso.RefreshWearEstimate",
				Mutates: true,
			},
		},
	}
}

func ChassisExtension() oem.ExtensionDescriptor {
	return oem.ExtensionDescriptor{
		Properties: []schema.PropertyDescriptor{
			{Name: "RackU", Kind: schema.KindInteger, Nullable: true},
			{Name: "ServiceTag", Kind: schema.KindString},
		},
	}
}

// Register adds every Contoso extension to the registry.
func Register(registry *oem.Registry) error {
	if err := registry.Register(redfishstd.DriveType, Vendor, DriveExtension()); err != nil {
		return err
	}

	return registry.Register(redfishstd.ChassisType, Vendor, ChassisExtension())
}
