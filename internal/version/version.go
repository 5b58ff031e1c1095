// Package version holds build metadata. Version and BuildDate are set with
// -ldflags "-X rissy-bot/internal/version.Version=..." at release time.
package version

import (
	"runtime"
	"runtime/debug"
)

const (
	AppName        = "Rissy Bot"
	AppDescription = "Server icon, invite links, avatars and voice joins behind r! commands."
)

var (
	Version   = ""
	BuildDate = ""
	GoVersion = runtime.Version()
)

// String returns the best known version: the ldflags value, else the module
// version recorded by the Go toolchain, else "dev".
func String() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
