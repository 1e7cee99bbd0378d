package constants

const (
	// Default names used by the project generator
	DefaultProjectName = "my-mesh-project"
	DefaultNamespace   = "default"

	// Well-known files inside a generated project
	DefaultEnvFileName    = ".env"
	DefaultKeepFileName   = ".gitkeep"
	DefaultReadmeFileName = "README.md"

	// Template repository layout
	TemplatesDirName         = "templates"
	ProvidersDirName         = "providers"
	SamplesDirName           = "samples"
	TemplateMetadataFileName = "template.yaml"

	// Marker files used by the template locator for classification
	ProjectMarkerFileName = "pyproject.toml"
	ToolMarkerFileName    = "requirements.txt"

	// Reserved double suffix stripped during filename derivation,
	// e.g. agent.template.yaml -> billing-agent.yaml
	TemplateFileSuffix = ".template"

	// Size limits enforced by the path guard
	MaxFileNameLength = 200

	// Project artifact types
	ProjectTypeFull    = "full"
	ProjectTypeMinimal = "minimal"
)
