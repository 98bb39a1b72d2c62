// Package redfishstd declares the standard resource families as schema
// fragment sets. Importing the package registers every family with the
// default catalog; builds that want a narrower capability surface can
// instead call the per-family fragment functions and assemble their own
// model.
package redfishstd

import (
	"github.com/rackwise/redfish-client/pkg/redfish/schema"
)

// Fragments returns all standard family fragments in one set.
func Fragments() []schema.Fragment {
	sets := [][]schema.Fragment{
		ResourceFragments(),
		ServiceRootFragments(),
		ChassisFragments(),
		ComputerSystemFragments(),
		StorageFragments(),
		SensorFragments(),
		ManagerFragments(),
		AccountServiceFragments(),
		EventServiceFragments(),
		UpdateServiceFragments(),
	}

	var all []schema.Fragment
	for _, set := range sets {
		all = append(all, set...)
	}

	return all
}
