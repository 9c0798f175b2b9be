// Command frame lays out TOML scene documents and previews them in the
// terminal.
//
// Usage:
//
//	frame render scene.toml               Lay out a scene and draw it
//	frame render --frames scene.toml      Also print the computed frames
//	frame measure --width 40 a.toml b.toml
//	frame version
package main

import (
	"os"

	"github.com/grindlemire/go-frame/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = ""
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
