//go:build darwin || freebsd || openbsd || netbsd || dragonfly

package hostinfo

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// memorySysctls lists the sysctl names holding physical memory in bytes,
// tried in order.
func memorySysctls(goos string) []string {
	if goos == "darwin" {
		return []string{"hw.memsize"}
	}
	// hw.realmem only exists on FreeBSD.
	return []string{"hw.physmem", "hw.realmem"}
}

func physicalMemory() (uint64, bool) {
	for _, name := range memorySysctls(runtime.GOOS) {
		if mem, err := unix.SysctlUint64(name); err == nil && mem > 0 {
			return mem, true
		}
	}
	return 0, false
}
