// Package formoptions serves the fixed select-box catalogs used by admin forms.
package formoptions

import (
	"embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// District is one entry of the ward catalog
type District struct {
	Key   string   `yaml:"-" json:"key"`
	Name  string   `yaml:"name" json:"name"`
	City  string   `yaml:"city" json:"city"`
	Wards []string `yaml:"wards" json:"wards"`
}

type catalogFile struct {
	Districts map[string]District `yaml:"districts"`
}

// Registry holds the district catalog
type Registry struct {
	districts map[string]District
	mu        sync.RWMutex
}

// NewRegistry loads the embedded district catalog
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/districts.yaml")
	if err != nil {
		return nil, fmt.Errorf("read districts catalog: %w", err)
	}
	return NewRegistryFromYAML(data)
}

// NewRegistryFromYAML builds a registry from raw catalog YAML
func NewRegistryFromYAML(data []byte) (*Registry, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal districts catalog: %w", err)
	}

	r := &Registry{districts: make(map[string]District, len(file.Districts))}
	for key, d := range file.Districts {
		if len(d.Wards) == 0 {
			return nil, fmt.Errorf("district %s has no wards", key)
		}
		d.Key = key
		r.districts[key] = d
	}
	return r, nil
}

// District returns a district by key
func (r *Registry) District(key string) (District, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.districts[key]
	if !ok {
		return District{}, fmt.Errorf("unknown district: %s", key)
	}
	d.Wards = append([]string(nil), d.Wards...)
	return d, nil
}

// Wards returns a copy of the ward names of a district, in catalog order
func (r *Registry) Wards(key string) ([]string, error) {
	d, err := r.District(key)
	if err != nil {
		return nil, err
	}
	return d.Wards, nil
}

// Keys returns all district keys sorted
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.districts))
	for k := range r.districts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
