package domain

import "fmt"

// RepairKind identifies a known-safe, non-destructive fix.
type RepairKind string

const (
	// RepairEnsureDir creates a directory (and parents) if absent.
	RepairEnsureDir RepairKind = "ensure_dir"
	// RepairEnsureFile writes a default file if absent. Existing files are
	// never overwritten.
	RepairEnsureFile RepairKind = "ensure_file"
)

// ValidRepairKinds enumerates all recognized repair kinds.
var ValidRepairKinds = []RepairKind{RepairEnsureDir, RepairEnsureFile}

// RepairEntry is one fix in the repair catalog. The catalog is data,
// decoupled from the Issue sequence, so re-running it is always safe.
type RepairEntry struct {
	Kind        RepairKind `yaml:"kind"                  json:"kind"`
	Path        string     `yaml:"path"                  json:"path"`
	Content     string     `yaml:"content,omitempty"     json:"content,omitempty"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
}

// Describe returns the human-readable description recorded when this
// entry is applied.
func (e RepairEntry) Describe() string {
	if e.Description != "" {
		return e.Description
	}
	if e.Kind == RepairEnsureDir {
		return fmt.Sprintf("Created directory: %s", e.Path)
	}
	return fmt.Sprintf("Created file: %s", e.Path)
}

// Catalog is an ordered set of repair entries, applied in declaration order.
type Catalog []RepairEntry

// Validate checks the catalog for malformed entries.
func (c Catalog) Validate() error {
	for i, e := range c {
		if e.Path == "" {
			return fmt.Errorf("repairs[%d]: path must not be empty", i)
		}
		if !isValidRepairKind(e.Kind) {
			return fmt.Errorf("repairs[%d] (%s): unknown kind %q (valid: ensure_dir, ensure_file)", i, e.Path, e.Kind)
		}
		if e.Kind == RepairEnsureDir && e.Content != "" {
			return fmt.Errorf("repairs[%d] (%s): content is only valid on ensure_file entries", i, e.Path)
		}
	}
	return nil
}

func isValidRepairKind(k RepairKind) bool {
	for _, v := range ValidRepairKinds {
		if k == v {
			return true
		}
	}
	return false
}
