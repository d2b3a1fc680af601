// Package build carries build-time metadata injected via ldflags.
package build

// Info holds version information for a urlfill binary.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}
