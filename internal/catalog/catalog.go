package catalog

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"motor_seeder/internal/models"

	"gopkg.in/yaml.v3"
)

// InstanceTemplate describes a motor instance to create. The model id is
// resolved at run time against the model working set.
type InstanceTemplate struct {
	Model       string `yaml:"model"`     // model name; empty means by slot
	ModelSlot   int    `yaml:"modelSlot"` // index into the working set when the name is not found
	DeviceID    string `yaml:"deviceId"`
	Name        string `yaml:"name"`
	Location    string `yaml:"location"`
	InstallDate string `yaml:"installDate"`
	AssetNumber string `yaml:"assetNumber"`
}

// Catalog is the demo data the pipeline provisions.
type Catalog struct {
	Models    []models.MotorModel                  `yaml:"models"`
	Instances []InstanceTemplate                   `yaml:"instances"`
	Mappings  map[string][]models.ParameterMapping `yaml:"mappings"` // keyed by deviceId
	Modes     []models.OperationMode               `yaml:"modes"`
}

var (
	errNoModels    = errors.New("catalog: at least one motor model is required")
	errNoInstances = errors.New("catalog: at least one motor instance is required")
)

// Load reads a YAML catalog from path. An empty path returns Default().
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %q: %w", path, err)
	}
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %q: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the catalog and orders modes by ascending priority.
func (c *Catalog) Validate() error {
	if len(c.Models) == 0 {
		return errNoModels
	}
	if len(c.Instances) == 0 {
		return errNoInstances
	}
	for i, m := range c.Models {
		if m.Name == "" {
			return fmt.Errorf("catalog: model %d has no name", i)
		}
	}
	for i, inst := range c.Instances {
		if inst.DeviceID == "" || inst.Name == "" {
			return fmt.Errorf("catalog: instance %d needs deviceId and name", i)
		}
		if inst.ModelSlot < 0 {
			return fmt.Errorf("catalog: instance %q has negative modelSlot", inst.Name)
		}
	}
	for i, mode := range c.Modes {
		if mode.TriggerMaxValue <= mode.TriggerMinValue {
			return fmt.Errorf("catalog: mode %d (%s) has an empty trigger range", i, mode.Name)
		}
	}
	sort.SliceStable(c.Modes, func(i, j int) bool {
		return c.Modes[i].Priority < c.Modes[j].Priority
	})
	return nil
}

// MappingsFor returns the mapping table entry of a device.
func (c *Catalog) MappingsFor(deviceID string) ([]models.ParameterMapping, bool) {
	m, ok := c.Mappings[deviceID]
	return m, ok
}

// ResolveModel picks the model id for a template: by name, else by slot,
// else the first model of the working set.
func (t InstanceTemplate) ResolveModel(working []models.MotorModel) (string, bool) {
	if len(working) == 0 {
		return "", false
	}
	if t.Model != "" {
		for _, m := range working {
			if m.Name == t.Model && m.ModelID != "" {
				return m.ModelID, true
			}
		}
	}
	if t.ModelSlot < len(working) {
		return working[t.ModelSlot].ModelID, true
	}
	return working[0].ModelID, true
}

// Instance builds the create payload for a resolved model id.
func (t InstanceTemplate) Instance(modelID string) models.MotorInstance {
	return models.MotorInstance{
		ModelID:     modelID,
		DeviceID:    t.DeviceID,
		Name:        t.Name,
		Location:    t.Location,
		InstallDate: t.InstallDate,
		AssetNumber: t.AssetNumber,
	}
}
