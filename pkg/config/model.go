package config

// FileName is the configuration file looked up in the target directory.
const FileName = ".spm-outdated.yml"

// Config is the root configuration structure.
//
// Fields mirror the command line flags; a flag set on the command line
// overrides the value loaded here.
//
// Fields:
//   - IgnorePrerelease: Drop pre-release versions before choosing the latest version
//   - OnlyMajorUpdates: Only report packages with a newer major version
//   - IgnoreIndirectPackages: Only check packages declared in the project manifest
//   - FailOnOutdated: Exit with status 1 when a package is outdated
//   - Format: Output format name
//   - Concurrency: Maximum number of tag lookups in flight
//   - TimeoutSeconds: Deadline for each tag lookup, 0 for none
//   - GitCommand: Tag-listing command template; {{location}} is the repository location
//   - Ignore: Package identities that are never checked
//   - Source: Path the configuration was loaded from, empty for built-in defaults
type Config struct {
	IgnorePrerelease       bool     `yaml:"ignore_prerelease"`
	OnlyMajorUpdates       bool     `yaml:"only_major_updates"`
	IgnoreIndirectPackages bool     `yaml:"ignore_indirect_packages"`
	FailOnOutdated         bool     `yaml:"fail_on_outdated"`
	Format                 string   `yaml:"format"`
	Concurrency            int      `yaml:"concurrency"`
	TimeoutSeconds         int      `yaml:"timeout_seconds"`
	GitCommand             string   `yaml:"git_command"`
	Ignore                 []string `yaml:"ignore,omitempty"`

	Source string `yaml:"-"`
}

// knownFields lists the YAML keys accepted at the top level, in file order.
var knownFields = []string{
	"ignore_prerelease",
	"only_major_updates",
	"ignore_indirect_packages",
	"fail_on_outdated",
	"format",
	"concurrency",
	"timeout_seconds",
	"git_command",
	"ignore",
}
