package buildinfo

// Set with -ldflags "-X github.com/aidanlsb/csvplait/internal/buildinfo.Version=..."
// for release builds. Empty otherwise.
var (
	Version = ""
	Commit  = ""
)
