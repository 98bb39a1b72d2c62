package mockbmc

// NewWithDefaultTree seeds a service with the resource tree the
// integration tests navigate: a service root with one system, one
// chassis and a storage subsystem with two drives, one of which carries
// a Contoso OEM block.
func NewWithDefaultTree(options ...func(*Service)) *Service {
	options = append([]func(*Service){
		WithResource("/redfish/v1", map[string]any{
			"@odata.type":    "#ServiceRoot.v1_9_0.ServiceRoot",
			"Id":             "RootService",
			"Name":           "Root Service",
			"RedfishVersion": "1.17.0",
			"Systems":        reference("/redfish/v1/Systems"),
			"Chassis":        reference("/redfish/v1/Chassis"),
		}),
		WithResource("/redfish/v1/Systems", map[string]any{
			"@odata.type": "#ComputerSystemCollection.ComputerSystemCollection",
			"Name":        "Computer System Collection",
			"Members": []any{
				reference("/redfish/v1/Systems/1"),
			},
			"Members@odata.count": 1,
		}),
		WithResource("/redfish/v1/Systems/1", map[string]any{
			"@odata.type":  "#ComputerSystem.v1_20_0.ComputerSystem",
			"Id":           "1",
			"Name":         "System One",
			"Manufacturer": "Contoso",
			"PowerState":   "On",
			"AssetTag":     "fleet-0042",
			"Status":       map[string]any{"State": "Enabled", "Health": "OK"},
			"Storage":      reference("/redfish/v1/Systems/1/Storage"),
			"Actions": map[string]any{
				"#ComputerSystem.Reset": map[string]any{
					"target": "/redfish/v1/Systems/1/Actions/ComputerSystem.Reset",
				},
			},
		}),
		WithResource("/redfish/v1/Chassis", map[string]any{
			"@odata.type": "#ChassisCollection.ChassisCollection",
			"Name":        "Chassis Collection",
			"Members": []any{
				reference("/redfish/v1/Chassis/1"),
			},
			"Members@odata.count": 1,
		}),
		WithResource("/redfish/v1/Chassis/1", map[string]any{
			"@odata.type": "#Chassis.v1_22_0.Chassis",
			"Id":          "1",
			"Name":        "Chassis One",
			"ChassisType": "RackMount",
			"Status":      map[string]any{"State": "Enabled", "Health": "OK"},
			"Oem": map[string]any{
				"Contoso": map[string]any{
					"RackU":      float64(12),
					"ServiceTag": "CTO-4711",
				},
			},
		}),
		WithResource("/redfish/v1/Systems/1/Storage", map[string]any{
			"@odata.type": "#StorageCollection.StorageCollection",
			"Name":        "Storage Collection",
			"Members": []any{
				reference("/redfish/v1/Systems/1/Storage/0"),
			},
			"Members@odata.count": 1,
		}),
		WithResource("/redfish/v1/Systems/1/Storage/0", map[string]any{
			"@odata.type": "#Storage.v1_15_0.Storage",
			"Id":          "0",
			"Name":        "Local Storage",
			"Status":      map[string]any{"State": "Enabled", "Health": "OK"},
			"Drives": []any{
				reference("/redfish/v1/Systems/1/Storage/0/Drives/0"),
				reference("/redfish/v1/Systems/1/Storage/0/Drives/1"),
			},
		}),
		WithResource("/redfish/v1/Systems/1/Storage/0/Drives/0", map[string]any{
			"@odata.type":   "#Drive.v1_16_0.Drive",
			"Id":            "0",
			"Name":          "Drive Bay 0",
			"CapacityBytes": float64(960197124096),
			"MediaType":     "SSD",
			"Status":        map[string]any{"State": "Enabled", "Health": "OK"},
			"Oem": map[string]any{
				"Contoso": map[string]any{
					"FirmwareBuild":        "7.2.1",
					"PredictedWearPercent": float64(3.5),
				},
			},
		}),
		WithResource("/redfish/v1/Systems/1/Storage/0/Drives/1", map[string]any{
			"@odata.type":   "#Drive.v1_16_0.Drive",
			"Id":            "1",
			"Name":          "Drive Bay 1",
			"CapacityBytes": float64(960197124096),
			"MediaType":     "HDD",
			"Status":        map[string]any{"State": "Enabled", "Health": "Warning"},
		}),
	}, options...)

	return New(options...)
}

func reference(path string) map[string]any {
	return map[string]any{"@odata.id": path}
}
