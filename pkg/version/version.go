// Package version exposes the build version of pageflow.
package version

// version is overridden at build time via
// -ldflags "-X github.com/seamlist/pageflow/pkg/version.version=v1.2.3".
var version = "dev"

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}
