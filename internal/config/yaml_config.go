package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"neurosync/internal/booking"
	"neurosync/internal/community"
	"neurosync/internal/resources"
)

// YAMLConfig represents the structure of the config.yaml file.
// Catalog data that's easier to manage in YAML than env vars. Any section
// left out falls back to the built-in sample data.
type YAMLConfig struct {
	Counselors    []booking.Counselor      `yaml:"counselors"`
	TimeSlots     []booking.TimeSlot       `yaml:"time_slots"`
	Resources     []resources.Resource     `yaml:"resources"`
	SupportGroups []community.SupportGroup `yaml:"support_groups"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return LoadYAMLConfigFile(getEnv("CONFIG_FILE", "config.yaml"))
}

// LoadYAMLConfigFile loads and validates the catalog file at path.
func LoadYAMLConfigFile(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &cfg, nil
}

func (c *YAMLConfig) validate() error {
	seen := make(map[string]bool, len(c.Counselors))
	for _, co := range c.Counselors {
		if co.ID == "" || co.Name == "" {
			return fmt.Errorf("counselor %q: id and name are required", co.ID)
		}
		if seen[co.ID] {
			return fmt.Errorf("counselor %q: duplicate id", co.ID)
		}
		seen[co.ID] = true
		if co.Type != booking.TypeCampus && co.Type != booking.TypeExternal {
			return fmt.Errorf("counselor %q: type must be campus or external", co.ID)
		}
	}
	for _, s := range c.TimeSlots {
		if s.Time == "" {
			return fmt.Errorf("time slot with empty time")
		}
	}
	for _, r := range c.Resources {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CounselorList returns the configured counselors, or nil for the defaults.
func (c *YAMLConfig) CounselorList() []booking.Counselor {
	if c == nil || len(c.Counselors) == 0 {
		return nil
	}
	return c.Counselors
}

// TimeSlotList returns the configured time slots, or nil for the defaults.
func (c *YAMLConfig) TimeSlotList() []booking.TimeSlot {
	if c == nil || len(c.TimeSlots) == 0 {
		return nil
	}
	return c.TimeSlots
}

// ResourceList returns the configured resources, or nil for the defaults.
func (c *YAMLConfig) ResourceList() []resources.Resource {
	if c == nil || len(c.Resources) == 0 {
		return nil
	}
	return c.Resources
}

// SupportGroupList returns the configured support groups, or nil for the defaults.
func (c *YAMLConfig) SupportGroupList() []community.SupportGroup {
	if c == nil || len(c.SupportGroups) == 0 {
		return nil
	}
	return c.SupportGroups
}
