package config

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/boolean-maybe/mycounter/config.Version=v0.1.0"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
