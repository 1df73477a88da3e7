//go:build linux

package hostinfo

import "golang.org/x/sys/unix"

// physicalMemory reads total RAM from sysinfo(2). Totalram is counted in
// units of si.Unit bytes and is 32 bits wide on some architectures.
func physicalMemory() (uint64, bool) {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return 0, false
	}
	unit := uint64(si.Unit)
	if unit == 0 {
		unit = 1
	}
	return uint64(si.Totalram) * unit, true
}
