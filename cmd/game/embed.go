package main

import "embed"

// configFS holds the default settings and levels used when --configs is not set
//
//go:embed configs
var configFS embed.FS
