package version

// Build variables set via ldflags:
// -X 'github.com/fluo-io/fluo-go/pkg/version.Version=v1.0.0'
// -X 'github.com/fluo-io/fluo-go/pkg/version.CommitHash=abc123'
// -X 'github.com/fluo-io/fluo-go/pkg/version.BuildDate=2026-01-01T00:00:00Z'
var (
	// Version is the semantic version of the binary
	Version = "unknown"
	// CommitHash is the git commit the binary was built from
	CommitHash = "unknown"
	// BuildDate is the build timestamp in RFC3339 format
	BuildDate = "unknown"
)

// Info carries build information in a structured format.
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildDate  string `json:"build_date"`
}

// Get returns the current build information.
func Get() Info {
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildDate:  BuildDate,
	}
}

// GetVersion returns just the version string.
func GetVersion() string {
	return Version
}
