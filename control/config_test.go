package control_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/momentics/hioload-pooled/control"
)

func TestParseTunables_BucketLimit(t *testing.T) {
	cases := map[string]struct {
		value string
		set   bool
		want  int
	}{
		"absent":        {want: control.DefaultMaxArraysPerBucket},
		"valid":         {value: "64", set: true, want: 64},
		"one":           {value: "1", set: true, want: 1},
		"zero":          {value: "0", set: true, want: control.DefaultMaxArraysPerBucket},
		"negative":      {value: "-4", set: true, want: control.DefaultMaxArraysPerBucket},
		"unparsable":    {value: "lots", set: true, want: control.DefaultMaxArraysPerBucket},
		"empty":         {value: "", set: true, want: control.DefaultMaxArraysPerBucket},
		"padded":        {value: " 8 ", set: true, want: 8},
		"only spaces":   {value: "   ", set: true, want: control.DefaultMaxArraysPerBucket},
		"leading zeros": {value: "0008", set: true, want: 8},
		"plus sign":     {value: "+8", set: true, want: control.DefaultMaxArraysPerBucket},
		"tab":           {value: "\t8", set: true, want: control.DefaultMaxArraysPerBucket},
		"int32 max":     {value: "2147483647", set: true, want: 2147483647},
		"above int32":   {value: "2147483648", set: true, want: control.DefaultMaxArraysPerBucket},
		"eleven digits": {value: "99999999999", set: true, want: control.DefaultMaxArraysPerBucket},
		"too long":      {value: "                8                 ", set: true, want: control.DefaultMaxArraysPerBucket},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if tc.set {
				t.Setenv("HIOLOAD_POOL_MAX_ARRAYS_PER_BUCKET", tc.value)
			}
			assert.Equal(t, tc.want, control.ParseTunables().MaxArraysPerBucket)
		})
	}
}

func TestParseTunables_BadLimitKeepsLogging(t *testing.T) {
	t.Setenv("HIOLOAD_POOL_MAX_ARRAYS_PER_BUCKET", "nope")
	t.Setenv("HIOLOAD_POOL_LOG_LEVEL", "debug")
	t.Setenv("HIOLOAD_POOL_LOG_ENCODING", "console")

	tun := control.ParseTunables()
	assert.Equal(t, control.DefaultMaxArraysPerBucket, tun.MaxArraysPerBucket)
	assert.Equal(t, "debug", tun.LogLevel)
	assert.Equal(t, "console", tun.LogEncoding)
}

func TestParseTunables_Defaults(t *testing.T) {
	tun := control.ParseTunables()
	assert.Equal(t, "info", tun.LogLevel)
	assert.Equal(t, "json", tun.LogEncoding)
}

func TestLoadTunables_Stable(t *testing.T) {
	first := control.LoadTunables()
	t.Setenv("HIOLOAD_POOL_MAX_ARRAYS_PER_BUCKET", "3")
	assert.Equal(t, first, control.LoadTunables(), "environment is read once")
	assert.Equal(t, first.MaxArraysPerBucket, control.MaxArraysPerBucket())
}
