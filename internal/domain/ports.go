package domain

// ArtifactStore resolves paths under one project root and exposes the
// read/write primitives the audit engine consumes. Paths are relative to
// the root, slash-separated. Operations are blocking I/O; the run model is
// single-threaded so implementations need no locking.
type ArtifactStore interface {
	// Exists reports whether the artifact is present. A stat failure other
	// than not-exist is returned as an error.
	Exists(relPath string) (bool, error)
	// IsDir reports whether the artifact exists and is a directory.
	IsDir(relPath string) (bool, error)
	ReadFile(relPath string) ([]byte, error)
	// WriteFile writes data, creating parent directories as needed.
	WriteFile(relPath string, data []byte) error
	MkdirAll(relPath string) error
}

// StoreProvider opens an ArtifactStore rooted at a project path.
type StoreProvider interface {
	Open(projectPath string) (ArtifactStore, error)
}

// ConfigLoader loads the audit configuration for a project.
type ConfigLoader interface {
	Load(projectPath string) (AuditConfig, error)
}

// GitInfo provides version control metadata for a project, best-effort.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}

// AuditEntry is one line of persisted audit history.
type AuditEntry struct {
	Timestamp  string     `json:"timestamp"`
	CommitHash string     `json:"commit_hash,omitempty"`
	Passed     int        `json:"passed"`
	Total      int        `json:"total"`
	Tier       HealthTier `json:"tier"`
}

// AuditHistory persists audit entries per project.
type AuditHistory interface {
	Save(projectPath string, entry AuditEntry) error
	Load(projectPath string) ([]AuditEntry, error)
}
