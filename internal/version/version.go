// Package version holds build information injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/mj1618/selwatch/internal/version.Version=v0.2.0"
package version

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
