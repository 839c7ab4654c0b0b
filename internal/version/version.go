// Package version provides version information for the magicappdev CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version. Development builds report "dev".
	Version = "dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// Engine modules reported by `magicappdev version`.
const (
	templateEngineModule = "github.com/aymerick/raymond"
	schemaEngineModule   = "cuelang.org/go"
)

// Info contains version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`

	// TemplateEngine is the Handlebars engine module version.
	TemplateEngine string `json:"templateEngine"`

	// SchemaEngine is the CUE SDK version used for manifest schemas.
	SchemaEngine string `json:"schemaEngine"`
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:        Version,
		GitCommit:      GitCommit,
		BuildDate:      BuildDate,
		GoVersion:      runtime.Version(),
		TemplateEngine: moduleVersion(templateEngineModule),
		SchemaEngine:   moduleVersion(schemaEngineModule),
	}
}

// moduleVersion reads a dependency version from the embedded build info.
func moduleVersion(path string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path != path {
			continue
		}
		if dep.Replace != nil {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return "unknown"
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("magicappdev:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s\n\nEngines:\n  Handlebars: %s\n  CUE:        %s",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion, i.TemplateEngine, i.SchemaEngine)
}
