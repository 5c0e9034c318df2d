package version

// Current defines the application version.
// Update this single line to propagate version changes everywhere.
const Current = "v0.3.0"

const AppName = "habls"
