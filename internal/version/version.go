package version

// Version is overridden at release time via
// -ldflags "-X tbfsbs/internal/version.Version=...".
var Version = "0.2.0"
