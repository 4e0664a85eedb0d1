// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Process-wide tunables read once from the environment.

package control

import (
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every tunable, e.g. HIOLOAD_POOL_MAX_ARRAYS_PER_BUCKET.
const EnvPrefix = "HIOLOAD_POOL"

// DefaultMaxArraysPerBucket is used when the tunable is absent, non-positive or unparsable.
const DefaultMaxArraysPerBucket = 32

// Tunables holds the resolved environment settings.
type Tunables struct {
	MaxArraysPerBucket int    `json:"max_arrays_per_bucket"`
	LogLevel           string `json:"log_level"`
	LogEncoding        string `json:"log_encoding"`
}

var (
	tunablesOnce sync.Once
	tunables     Tunables
)

// LoadTunables returns the tunables, parsing the environment on first call only.
func LoadTunables() Tunables {
	tunablesOnce.Do(func() {
		tunables = ParseTunables()
	})
	return tunables
}

// ParseTunables reads the environment now. The bucket limit is processed
// separately so a malformed value does not discard the logging settings.
func ParseTunables() Tunables {
	t := Tunables{
		MaxArraysPerBucket: DefaultMaxArraysPerBucket,
		LogLevel:           "info",
		LogEncoding:        "json",
	}

	var raw struct {
		MaxArraysPerBucket string `envconfig:"MAX_ARRAYS_PER_BUCKET"`
	}
	if err := envconfig.Process(EnvPrefix, &raw); err == nil {
		if n, ok := parseBucketLimit(raw.MaxArraysPerBucket); ok && n > 0 {
			t.MaxArraysPerBucket = n
		}
	}

	var logging struct {
		LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
		LogEncoding string `envconfig:"LOG_ENCODING" default:"json"`
	}
	if err := envconfig.Process(EnvPrefix, &logging); err == nil {
		t.LogLevel = logging.LogLevel
		t.LogEncoding = logging.LogEncoding
	}
	return t
}

// parseBucketLimit accepts at most 10 decimal digits surrounded by spaces,
// with a value no larger than math.MaxInt32. Signs are rejected.
func parseBucketLimit(s string) (int, bool) {
	if len(s) == 0 || len(s) > 32 {
		return 0, false
	}
	s = strings.Trim(s, " ")
	if len(s) == 0 || len(s) > 10 {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

// MaxArraysPerBucket is a shortcut for LoadTunables().MaxArraysPerBucket.
func MaxArraysPerBucket() int {
	return LoadTunables().MaxArraysPerBucket
}
