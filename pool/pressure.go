// File: pool/pressure.go
// Author: momentics <momentics@gmail.com>
//
// Tri-level memory pressure signal used by Trim. Platform probes live in
// pressure_linux.go and pressure_other.go.

package pool

// Pressure classifies current system memory load.
type Pressure int

const (
	PressureLow Pressure = iota
	PressureMedium
	PressureHigh
)

// String returns the level name.
func (p Pressure) String() string {
	switch p {
	case PressureMedium:
		return "medium"
	case PressureHigh:
		return "high"
	default:
		return "low"
	}
}

// ParsePressure maps a level name to a Pressure; unknown names yield PressureLow and false.
func ParsePressure(s string) (Pressure, bool) {
	switch s {
	case "low":
		return PressureLow, true
	case "medium":
		return PressureMedium, true
	case "high":
		return PressureHigh, true
	}
	return PressureLow, false
}

const (
	// highLoadFraction of physical memory is treated as the high-load mark.
	highLoadFraction = 0.90
	// Pressure is high at 90% of the high-load mark, medium at 70%.
	highPressureRatio   = 0.90
	mediumPressureRatio = 0.70
)

// PressureSource reports memory pressure.
type PressureSource interface {
	Pressure() Pressure
}

// PressureFunc adapts a function to PressureSource.
type PressureFunc func() Pressure

// Pressure implements PressureSource.
func (f PressureFunc) Pressure() Pressure { return f() }

// StaticPressure always reports the same level.
type StaticPressure Pressure

// Pressure implements PressureSource.
func (s StaticPressure) Pressure() Pressure { return Pressure(s) }

// SystemPressure probes physical memory usage of the host.
type SystemPressure struct{}

// Pressure implements PressureSource. Probe failures report PressureLow.
func (SystemPressure) Pressure() Pressure {
	used, total, err := memoryUsage()
	if err != nil {
		return PressureLow
	}
	return classifyPressure(used, total)
}

// classifyPressure maps used/total bytes onto a pressure level.
func classifyPressure(used, total uint64) Pressure {
	if total == 0 {
		return PressureLow
	}
	threshold := float64(total) * highLoadFraction
	load := float64(used)
	switch {
	case load >= threshold*highPressureRatio:
		return PressureHigh
	case load >= threshold*mediumPressureRatio:
		return PressureMedium
	default:
		return PressureLow
	}
}
