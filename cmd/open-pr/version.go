package main

import (
	"fmt"
	"runtime/debug"
)

// Set via -ldflags "-X main.version=... -X main.commit=... -X main.date=...".
var (
	version = "dev"
	commit  = ""
	date    = ""
)

func buildVersionString() string {
	v := version
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}

	s := fmt.Sprintf("open-pr %s", v)
	switch {
	case commit != "" && date != "":
		s += fmt.Sprintf(" (%s, %s)", commit, date)
	case commit != "":
		s += fmt.Sprintf(" (%s)", commit)
	}
	return s
}
