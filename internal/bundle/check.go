package bundle

import (
	"errors"
	"fmt"

	"github.com/and161185/gw-transit/model"
)

var (
	ErrEmptyName       = errors.New("resource name is empty")
	ErrDuplicateName   = errors.New("duplicate resource name")
	ErrUnresolvedOwner = errors.New("owner does not resolve")
	ErrInvalidInterval = errors.New("interval start is after end")
	ErrValueTag        = errors.New("value does not match its type tag")
	ErrUnknownResource = errors.New("group references unknown resource")
)

// Check reports every structural problem in b. The transit client sends bundles as they are;
// Check is for callers that want to catch mistakes before the native module does.
func Check(b *model.ResourceBundle) error {
	if b == nil {
		return nil
	}
	resources := make([]model.Resource, 0, len(b.Resources))
	for _, r := range b.Resources {
		resources = append(resources, r.Resource)
	}
	problems := checkResources(resources)

	for _, r := range b.Resources {
		for i, s := range r.Metrics {
			if err := checkSample(s); err != nil {
				problems = append(problems, fmt.Errorf("%s: metric %d (%s): %w", r.Resource.Key(), i, s.MetricName, err))
			}
		}
	}
	return errors.Join(problems...)
}

// CheckInventory is Check for inventories. Group members must name inventory resources.
func CheckInventory(inv *model.Inventory) error {
	if inv == nil {
		return nil
	}
	problems := checkResources(inv.Resources)

	known := make(map[string]struct{}, len(inv.Resources))
	for _, r := range inv.Resources {
		known[r.Key()] = struct{}{}
	}
	for _, g := range inv.Groups {
		for _, ref := range g.Resources {
			if _, ok := known[ref.Key()]; !ok {
				problems = append(problems, fmt.Errorf("group %s: %q: %w", g.GroupName, ref.Key(), ErrUnknownResource))
			}
		}
	}
	return errors.Join(problems...)
}

// checkResources wants unique keys and owners naming another resource of the payload.
func checkResources(resources []model.Resource) []error {
	var problems []error
	keys := make(map[string]struct{}, len(resources))
	names := make(map[string]struct{}, len(resources))
	for i, r := range resources {
		if r.Name == "" {
			problems = append(problems, fmt.Errorf("resource %d: %w", i, ErrEmptyName))
			continue
		}
		if _, dup := keys[r.Key()]; dup {
			problems = append(problems, fmt.Errorf("%s: %w", r.Key(), ErrDuplicateName))
		}
		keys[r.Key()] = struct{}{}
		names[r.Name] = struct{}{}
	}
	for _, r := range resources {
		if r.Owner == "" {
			continue
		}
		if _, ok := names[r.Owner]; !ok {
			problems = append(problems, fmt.Errorf("%s: owner %q: %w", r.Key(), r.Owner, ErrUnresolvedOwner))
		}
	}
	return problems
}

func checkSample(s model.MetricSample) error {
	var problems []error
	if !s.Interval.Valid() {
		problems = append(problems, ErrInvalidInterval)
	}
	if err := checkValue(s.Value); err != nil {
		problems = append(problems, err)
	}
	return errors.Join(problems...)
}

// checkValue rejects values whose populated field disagrees with the tag.
func checkValue(v model.TypedValue) error {
	switch v.ValueType {
	case model.StringType:
		if v.IntegerValue != 0 || v.DoubleValue != 0 {
			return fmt.Errorf("%s: %w", v.ValueType, ErrValueTag)
		}
	case model.IntegerType:
		if v.StringValue != "" || v.DoubleValue != 0 {
			return fmt.Errorf("%s: %w", v.ValueType, ErrValueTag)
		}
	case model.DoubleType:
		if v.StringValue != "" || v.IntegerValue != 0 {
			return fmt.Errorf("%s: %w", v.ValueType, ErrValueTag)
		}
	default:
		return fmt.Errorf("%q: %w", v.ValueType, model.ErrUnknownValueType)
	}
	return nil
}
