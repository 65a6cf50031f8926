// Package misc holds build time information.
package misc

// Set with -ldflags "-X purl/misc.version=... -X purl/misc.gitHash=..."
var (
	version = "dev"
	gitHash = "unknown"
)

const appName = "purl"

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
