// Package mend applies the repair catalog: bounded, deterministic fixes for
// gaps that have a known-safe, non-destructive remedy.
//
// Application is idempotent. Every entry checks before it creates, so a
// second run with no external change records zero new repairs and leaves
// the artifact tree untouched. A failed mutation never reaches the caller:
// it is recorded as a RepairFailure and the gap resurfaces as an Issue on
// the next evaluation pass.
package mend

import (
	"fmt"

	"github.com/checkmend/checkmend/internal/domain"
)

// Apply walks the catalog in declaration order, creating whatever is absent.
// This is the only component that mutates the artifact store.
func Apply(catalog domain.Catalog, store domain.ArtifactStore, rc *domain.RunContext) {
	for _, entry := range catalog {
		applyEntry(entry, store, rc)
	}
}

func applyEntry(entry domain.RepairEntry, store domain.ArtifactStore, rc *domain.RunContext) {
	exists, err := store.Exists(entry.Path)
	if err != nil {
		rc.RecordRepairFailure(entry.Describe(), err.Error())
		return
	}
	if exists {
		return // already satisfied, nothing to record
	}

	switch entry.Kind {
	case domain.RepairEnsureDir:
		err = store.MkdirAll(entry.Path)
	case domain.RepairEnsureFile:
		err = store.WriteFile(entry.Path, []byte(entry.Content))
	default:
		err = fmt.Errorf("unknown repair kind %q", entry.Kind)
	}
	if err != nil {
		rc.RecordRepairFailure(entry.Describe(), err.Error())
		return
	}

	rc.RecordRepair(entry.Describe())
}
