package domain

import "fmt"

// ProjectType selects the built-in checklist and repair catalog.
type ProjectType string

const (
	ProjectTypeService ProjectType = "service"
	ProjectTypeLibrary ProjectType = "library"
	ProjectTypeBridge  ProjectType = "bridge"
)

// ValidProjectTypes enumerates all recognized project types.
var ValidProjectTypes = []ProjectType{
	ProjectTypeService,
	ProjectTypeLibrary,
	ProjectTypeBridge,
}

// AuditConfig holds project-level configuration loaded from .checkmend.yaml.
// An explicit checklist or repair catalog replaces the type defaults
// entirely; there is no per-rule merging.
type AuditConfig struct {
	ProjectType ProjectType `yaml:"project_type"       json:"project_type,omitempty"`
	Checklist   Checklist   `yaml:"checklist,omitempty" json:"checklist,omitempty"`
	Repairs     Catalog     `yaml:"repairs,omitempty"   json:"repairs,omitempty"`
}

// DefaultConfig returns the configuration used when no .checkmend.yaml exists.
func DefaultConfig() AuditConfig {
	return AuditConfig{ProjectType: ProjectTypeService}
}

// DefaultConfigForType returns a config preloaded with the built-in
// checklist and catalog for the given project type, for `checkmend init`.
func DefaultConfigForType(pt ProjectType) AuditConfig {
	if pt == "" {
		pt = ProjectTypeService
	}
	return AuditConfig{
		ProjectType: pt,
		Checklist:   DefaultChecklistForType(pt),
		Repairs:     DefaultCatalogForType(pt),
	}
}

// EffectiveChecklist returns the explicit checklist, or the built-in one
// for the configured project type.
func (c AuditConfig) EffectiveChecklist() Checklist {
	if len(c.Checklist) > 0 {
		return c.Checklist
	}
	return DefaultChecklistForType(c.ProjectType)
}

// EffectiveCatalog returns the explicit repair catalog, or the built-in one
// for the configured project type.
func (c AuditConfig) EffectiveCatalog() Catalog {
	if len(c.Repairs) > 0 {
		return c.Repairs
	}
	return DefaultCatalogForType(c.ProjectType)
}

// Validate checks the config for invalid values and returns a descriptive
// error naming the first offender.
func (c AuditConfig) Validate() error {
	if c.ProjectType != "" {
		valid := false
		for _, pt := range ValidProjectTypes {
			if c.ProjectType == pt {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown project_type %q (valid: service, library, bridge)", c.ProjectType)
		}
	}
	if err := c.Checklist.Validate(); err != nil {
		return err
	}
	return c.Repairs.Validate()
}
