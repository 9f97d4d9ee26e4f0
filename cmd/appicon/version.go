package main

// Build metadata, injected at release time via -ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
