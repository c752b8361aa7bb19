// Package buildinfo reports the version stamped into the binaries at link time:
//
//	go build -ldflags "-X github.com/and161185/gw-transit/internal/buildinfo.BuildVersion=v1.0.0"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	BuildVersion string
	BuildDate    string
	BuildCommit  string
)

const notAvailable = "N/A"

// Version is a one-line summary suitable for a --version flag.
func Version() string {
	return fmt.Sprintf("%s (built %s, commit %s)", or(BuildVersion), or(BuildDate), or(BuildCommit))
}

// PrintBuildInfo writes the build version, date and commit to w.
func PrintBuildInfo(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", or(BuildVersion))
	fmt.Fprintf(w, "Build date: %s\n", or(BuildDate))
	fmt.Fprintf(w, "Build commit: %s\n", or(BuildCommit))
}

func or(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
