// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package workload

import (
	"reflect"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"
)

// Layer is a Pebble configuration layer.
type Layer struct {
	Summary     string             `yaml:"summary,omitempty"`
	Description string             `yaml:"description,omitempty"`
	Services    map[string]Service `yaml:"services,omitempty"`
}

// Service is the definition of a single service within a layer or plan.
type Service struct {
	Override    string            `yaml:"override,omitempty"`
	Summary     string            `yaml:"summary,omitempty"`
	Command     string            `yaml:"command,omitempty"`
	Startup     string            `yaml:"startup,omitempty"`
	Environment map[string]string `yaml:"environment,omitempty"`
}

// Plan is the combined configuration Pebble is currently running with.
// Only the services section is modelled.
type Plan struct {
	Services map[string]Service `yaml:"services,omitempty"`
}

// Marshal returns the YAML document Pebble expects for the layer.
func (l Layer) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(l)
	if err != nil {
		return nil, errors.Annotate(err, "marshalling layer")
	}
	return data, nil
}

// ParsePlan decodes a plan as returned by Pebble.
func ParsePlan(data []byte) (Plan, error) {
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return Plan{}, errors.Annotate(err, "parsing plan")
	}
	return plan, nil
}

// ServicesEqual reports whether two sets of service definitions are
// structurally identical. Empty and missing maps are treated alike, as
// Pebble does not distinguish them.
func ServicesEqual(a, b map[string]Service) bool {
	if len(a) != len(b) {
		return false
	}
	for name, sa := range a {
		sb, ok := b[name]
		if !ok {
			return false
		}
		if len(sa.Environment) == 0 && len(sb.Environment) == 0 {
			sa.Environment, sb.Environment = nil, nil
		}
		if !reflect.DeepEqual(sa, sb) {
			return false
		}
	}
	return true
}
