// Package buildinfo holds version information stamped in at link time:
//
//	go build -ldflags "-X github.com/thermitegod/mcomix-lite/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/thermitegod/mcomix-lite/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/thermitegod/mcomix-lite/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/mcomix-layout
package buildinfo

import "fmt"

var (
	// Version is the semantic version. It also scopes page size cache keys,
	// so entries written by other builds are not reused.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the build information on three lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
