package domain

// Built-in checklists and repair catalogs per project type. Content lives
// here as immutable data so the evaluator, repair engine, and scorer never
// change when the checklist does.

const defaultComposeTemplate = `version: '3.8'
services:
  app:
    build: .
    ports:
      - "3000:3000"
`

const defaultBridgeComposeTemplate = `version: '3.8'
services:
  bridge:
    build: .
    ports:
      - "3000:3000"
    environment:
      - BRIDGE_CONFIG=/app/config/bridge.json
`

// DefaultChecklistForType returns the built-in checklist for a project type.
func DefaultChecklistForType(pt ProjectType) Checklist {
	switch pt {
	case ProjectTypeLibrary:
		return Checklist{
			{Component: "module_manifest", Kind: RuleFileExists, Path: "go.mod", Foundational: true,
				Remediation: "Initialize the module manifest (go mod init)"},
			{Component: "manifest_declarations", Kind: RuleFileContains, Path: "go.mod",
				Keywords: []string{"module ", "go "}, Severity: SeverityHigh,
				Remediation: "Declare the module path and go directive in go.mod"},
			{Component: "readme", Kind: RuleFileExists, Path: "README.md", Severity: SeverityMedium,
				Remediation: "Write a README.md describing the public API"},
			{Component: "license", Kind: RuleFileExists, Path: "LICENSE", Severity: SeverityMedium,
				Remediation: "Add a LICENSE file"},
			{Component: "docs", Kind: RuleDirExists, Path: "docs", Severity: SeverityLow,
				Remediation: "Create a docs/ directory"},
		}

	case ProjectTypeBridge:
		return Checklist{
			{Component: "package_manifest", Kind: RuleFileExists, Path: "swift-package/Package.swift", Foundational: true,
				Remediation: "Create swift-package/Package.swift"},
			{Component: "package_declarations", Kind: RuleFileContains, Path: "swift-package/Package.swift",
				Keywords: []string{"name:", "platforms:", "dependencies:", "targets:"}, Severity: SeverityHigh,
				Remediation: "Add the missing package declarations"},
			{Component: "container_build", Kind: RuleFileContains, Path: "containerization/Dockerfile.bridge",
				Keywords: []string{"FROM ", "USER ", "HEALTHCHECK", "EXPOSE "}, Severity: SeverityHigh,
				Remediation: "Harden the bridge Dockerfile (non-root user, health check, exposed port)"},
			{Component: "integration_components", Kind: RuleDirExists, Path: "integration", Severity: SeverityMedium,
				Remediation: "Create the integration/ component directory"},
			{Component: "test_suite", Kind: RuleDirExists, Path: "tests", Severity: SeverityMedium,
				Remediation: "Create the tests/ directory"},
		}

	default: // service or unrecognized
		return Checklist{
			{Component: "module_manifest", Kind: RuleFileExists, Path: "go.mod", Foundational: true,
				Remediation: "Initialize the module manifest (go mod init)"},
			{Component: "manifest_declarations", Kind: RuleFileContains, Path: "go.mod",
				Keywords: []string{"module ", "go "}, Severity: SeverityHigh,
				Remediation: "Declare the module path and go directive in go.mod"},
			{Component: "readme", Kind: RuleFileExists, Path: "README.md", Severity: SeverityMedium,
				Remediation: "Write a README.md"},
			{Component: "container_image", Kind: RuleFileContains, Path: "Dockerfile",
				Keywords: []string{"FROM ", "USER ", "HEALTHCHECK", "EXPOSE "}, Severity: SeverityHigh,
				Remediation: "Harden the Dockerfile (non-root user, health check, exposed port)"},
			{Component: "entrypoints", Kind: RuleDirExists, Path: "cmd", Severity: SeverityMedium,
				Remediation: "Create a cmd/ directory for binaries"},
			{Component: "internal_packages", Kind: RuleDirExists, Path: "internal", Severity: SeverityMedium,
				Remediation: "Create an internal/ directory for packages"},
			{Component: "ci_workflows", Kind: RuleDirExists, Path: ".github/workflows", Severity: SeverityLow,
				Remediation: "Add CI workflows under .github/workflows"},
		}
	}
}

// DefaultCatalogForType returns the built-in repair catalog for a project
// type. Entries are keyed to expected artifacts, not to issues, so
// re-running the catalog causes no duplicate work.
func DefaultCatalogForType(pt ProjectType) Catalog {
	switch pt {
	case ProjectTypeLibrary:
		return Catalog{
			{Kind: RepairEnsureDir, Path: "docs"},
		}

	case ProjectTypeBridge:
		return Catalog{
			{Kind: RepairEnsureDir, Path: "swift-package/Sources"},
			{Kind: RepairEnsureDir, Path: "containerization"},
			{Kind: RepairEnsureDir, Path: "integration"},
			{Kind: RepairEnsureDir, Path: "tests"},
			{Kind: RepairEnsureDir, Path: "validation"},
			{Kind: RepairEnsureFile, Path: "containerization/docker-compose.bridge.yml",
				Content:     defaultBridgeComposeTemplate,
				Description: "Created docker-compose.bridge.yml"},
		}

	default: // service or unrecognized
		return Catalog{
			{Kind: RepairEnsureDir, Path: "cmd"},
			{Kind: RepairEnsureDir, Path: "internal"},
			{Kind: RepairEnsureDir, Path: "docs"},
			{Kind: RepairEnsureFile, Path: "docker-compose.yml",
				Content:     defaultComposeTemplate,
				Description: "Created docker-compose.yml"},
		}
	}
}
