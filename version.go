package wargame

// Version is the release version reported by the version subcommand.
var Version = "0.1.0"
