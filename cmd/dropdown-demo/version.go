package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is injected at build time via ldflags.
var Version = "dev"

func printVersion() {
	fmt.Printf("dropdown-demo %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if Version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && len(setting.Value) > 7 {
				fmt.Printf("Commit: %s\n", setting.Value[:7])
				break
			}
		}
	}
}
