//go:build linux
// +build linux

// File: pool/pressure_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux memory usage via sysinfo(2).

package pool

import (
	"golang.org/x/sys/unix"
)

// memoryUsage returns used and total physical memory in bytes.
func memoryUsage() (used, total uint64, err error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, 0, err
	}
	unit := uint64(info.Unit)
	if unit == 0 {
		unit = 1
	}
	total = uint64(info.Totalram) * unit
	free := (uint64(info.Freeram) + uint64(info.Bufferram)) * unit
	if free > total {
		free = total
	}
	return total - free, total, nil
}
