package util

import (
	"strconv"
	"strings"
)

// sizeUnits maps size suffixes to byte multipliers. Longer suffixes come
// first so "MB" is not consumed as a bare "B".
var sizeUnits = []struct {
	suffix     string
	multiplier int64
}{
	{"GB", 1 << 30},
	{"MB", 1 << 20},
	{"KB", 1 << 10},
	{"B", 1},
}

// ParseSize converts a human-readable size such as "4MB" or "512kb" into a
// byte count. Configuration values are best-effort: anything malformed,
// negative, or empty falls back to defaultBytes.
func ParseSize(s string, defaultBytes int64) int64 {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return defaultBytes
	}

	multiplier := int64(1)
	for _, u := range sizeUnits {
		if strings.HasSuffix(s, u.suffix) {
			multiplier = u.multiplier
			s = strings.TrimSpace(strings.TrimSuffix(s, u.suffix))
			break
		}
	}

	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil || val < 0 {
		return defaultBytes
	}
	return val * multiplier
}

// MaskSecret truncates a credential for log output, keeping at most
// visiblePrefix leading characters. Values too short to safely truncate
// are masked entirely.
func MaskSecret(s string, visiblePrefix int) string {
	if visiblePrefix < 0 || len(s) <= visiblePrefix {
		return "***"
	}
	return s[:visiblePrefix] + "***"
}
