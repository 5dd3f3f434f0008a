// internal/version/version.go
package version

// Version is printed by --version and in usage headers.
var Version = "0.3.0"
