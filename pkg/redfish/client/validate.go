package client

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/rackwise/redfish-client/pkg/redfish/errors"
	"github.com/rackwise/redfish-client/pkg/redfish/schema"
)

func marshalChanges(changes map[string]any) ([]byte, error) {
	if changes == nil {
		changes = map[string]any{}
	}

	return json.Marshal(changes)
}

// validateChanges checks a property update set against the declared
// schema before any transport traffic happens.
func (c *rfClient) validateChanges(entityType schema.TypeRef, changes map[string]any) error {
	if len(changes) == 0 {
		return errors.NewInvalidParametersError("a mutation requires at least one property change")
	}

	for name, value := range changes {
		descriptor, ok := c.model.Property(entityType, name)
		if !ok {
			return errors.NewInvalidParametersError(
				fmt.Sprintf("type %s declares no property named %s", entityType, name),
			)
		}

		if value == nil {
			if !descriptor.Nullable {
				return errors.NewInvalidParametersError(
					fmt.Sprintf("property %s is not nullable", name),
				)
			}
			continue
		}

		if err := c.checkKind(name, descriptor.Kind, descriptor.Ref, value); err != nil {
			return err
		}
	}

	return nil
}

// validateParameters checks action parameters against the declared
// parameter list. Validation happens strictly before the request is
// issued.
func (c *rfClient) validateParameters(descriptor *schema.ActionDescriptor, params map[string]any) error {
	declared := map[string]schema.ActionParameter{}

	for _, p := range descriptor.Parameters {
		declared[p.Name] = p

		if _, supplied := params[p.Name]; p.Required && !supplied {
			return errors.NewInvalidParametersError(
				fmt.Sprintf("action %s requires parameter %s", descriptor.Name, p.Name),
			)
		}
	}

	for name, value := range params {
		p, ok := declared[name]
		if !ok {
			return errors.NewInvalidParametersError(
				fmt.Sprintf("action %s declares no parameter named %s", descriptor.Name, name),
			)
		}

		if err := c.checkKind(name, p.Kind, p.Ref, value); err != nil {
			return err
		}
	}

	return nil
}

func (c *rfClient) checkKind(name string, kind schema.Kind, ref *schema.TypeRef, value any) error {
	mismatch := func() error {
		return errors.NewInvalidParametersError(
			fmt.Sprintf("value for %s does not match declared kind %s", name, kind),
		)
	}

	switch kind {
	case schema.KindString:
		if _, ok := value.(string); !ok {
			return mismatch()
		}
	case schema.KindBoolean:
		if _, ok := value.(bool); !ok {
			return mismatch()
		}
	case schema.KindNumber:
		if !isNumeric(value) {
			return mismatch()
		}
	case schema.KindInteger:
		f, ok := asFloat(value)
		if !ok || f != math.Trunc(f) {
			return mismatch()
		}
	case schema.KindEnum:
		s, ok := value.(string)
		if !ok {
			return mismatch()
		}
		if ref != nil {
			if members, ok := c.model.EnumMembers(*ref); ok && !contains(members, s) {
				return errors.NewInvalidParametersError(
					fmt.Sprintf("value %q for %s is not a member of enum %s", s, name, ref),
				)
			}
		}
	case schema.KindComplex:
		if _, ok := value.(map[string]any); !ok {
			return mismatch()
		}
	case schema.KindCollection:
		switch value.(type) {
		case []any, []string, []map[string]any:
		default:
			return mismatch()
		}
	case schema.KindLink:
		switch v := value.(type) {
		case string:
		case map[string]any:
			if _, ok := v["@odata.id"].(string); !ok {
				return mismatch()
			}
		default:
			return mismatch()
		}
	}

	return nil
}

func isNumeric(value any) bool {
	_, ok := asFloat(value)
	return ok
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}

	return 0, false
}

func contains(members []string, candidate string) bool {
	for _, m := range members {
		if m == candidate {
			return true
		}
	}

	return false
}
