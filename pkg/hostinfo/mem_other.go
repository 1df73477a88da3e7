//go:build !linux && !darwin && !windows && !freebsd && !openbsd && !netbsd && !dragonfly

package hostinfo

func physicalMemory() (uint64, bool) {
	return 0, false
}
