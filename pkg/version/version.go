// Package version provides version information for HeaderTools
package version

// Version is the current version of the HeaderTools library
const Version = "1.0.0"

// GetVersion returns the current version of the library
func GetVersion() string {
	return Version
}
