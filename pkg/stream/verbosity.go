package stream

import (
	"fmt"
	"strings"
)

// Verbosity is the level a writer emits messages at. A message is written
// when its level is less than or equal to the writer's.
type Verbosity int

const (
	VerbosityQuiet Verbosity = iota
	VerbosityNormal
	VerbosityVerbose
	VerbosityVeryVerbose
	VerbosityDebug
)

// String returns the name of the level
func (v Verbosity) String() string {
	switch v {
	case VerbosityQuiet:
		return "quiet"
	case VerbosityNormal:
		return "normal"
	case VerbosityVerbose:
		return "verbose"
	case VerbosityVeryVerbose:
		return "very-verbose"
	case VerbosityDebug:
		return "debug"
	default:
		return fmt.Sprintf("verbosity(%d)", int(v))
	}
}

// ParseVerbosity parses a level name
func ParseVerbosity(s string) (Verbosity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quiet":
		return VerbosityQuiet, nil
	case "normal", "":
		return VerbosityNormal, nil
	case "verbose":
		return VerbosityVerbose, nil
	case "very-verbose":
		return VerbosityVeryVerbose, nil
	case "debug":
		return VerbosityDebug, nil
	default:
		return VerbosityNormal, fmt.Errorf("unknown verbosity: %s", s)
	}
}

// VerbosityFromCount maps a -v flag count onto a level above normal
func VerbosityFromCount(count int) Verbosity {
	v := VerbosityNormal + Verbosity(count)
	if v > VerbosityDebug {
		return VerbosityDebug
	}
	return v
}
