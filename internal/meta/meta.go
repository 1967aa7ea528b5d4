package meta

// Version is stamped by the release workflow; the default marks dev builds.
var Version = "0.2.0-dev"
