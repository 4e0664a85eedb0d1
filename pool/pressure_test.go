package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPressure(t *testing.T) {
	const total = 1000
	cases := []struct {
		used uint64
		want Pressure
	}{
		{0, PressureLow},
		{600, PressureLow},
		{640, PressureMedium},
		{800, PressureMedium},
		{820, PressureHigh},
		{1000, PressureHigh},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classifyPressure(tc.used, total), "used=%d", tc.used)
	}
	assert.Equal(t, PressureLow, classifyPressure(10, 0))
}

func TestParsePressure(t *testing.T) {
	for _, p := range []Pressure{PressureLow, PressureMedium, PressureHigh} {
		got, ok := ParsePressure(p.String())
		assert.True(t, ok)
		assert.Equal(t, p, got)
	}
	got, ok := ParsePressure("extreme")
	assert.False(t, ok)
	assert.Equal(t, PressureLow, got)
}

func TestSystemPressure_Probe(t *testing.T) {
	used, total, err := memoryUsage()
	if err != nil {
		t.Skipf("memory probe unavailable: %v", err)
	}
	assert.Positive(t, total)
	assert.LessOrEqual(t, used, total)

	p := SystemPressure{}.Pressure()
	assert.Contains(t, []Pressure{PressureLow, PressureMedium, PressureHigh}, p)
}

func TestPressureFunc(t *testing.T) {
	var src PressureSource = PressureFunc(func() Pressure { return PressureMedium })
	assert.Equal(t, PressureMedium, src.Pressure())
	assert.Equal(t, PressureHigh, StaticPressure(PressureHigh).Pressure())
}
