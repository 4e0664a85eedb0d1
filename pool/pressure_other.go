//go:build !linux
// +build !linux

// File: pool/pressure_other.go
// Author: momentics <momentics@gmail.com>
//
// Portable memory usage via gopsutil for non-Linux platforms.

package pool

import (
	"github.com/shirou/gopsutil/v3/mem"
)

// memoryUsage returns used and total physical memory in bytes.
func memoryUsage() (used, total uint64, err error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, err
	}
	return vm.Used, vm.Total, nil
}
