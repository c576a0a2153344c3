package version

// Version is stamped at release time.
const Version = "1.0.0"
