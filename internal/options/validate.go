// Package options provides shared utilities for functional option validation.
package options

import (
	"strings"

	"github.com/erraggy/nextcase/caseerrors"
)

// Source names one candidate input of an operation and whether it was set.
type Source struct {
	Option string
	Set    bool
}

// RequireSingleSource ensures exactly one of sources is set.
// The returned error is a *caseerrors.ConfigError naming every candidate.
func RequireSingleSource(sources ...Source) error {
	names := make([]string, 0, len(sources))
	var set []string
	for _, s := range sources {
		names = append(names, s.Option)
		if s.Set {
			set = append(set, s.Option)
		}
	}

	switch len(set) {
	case 1:
		return nil
	case 0:
		return &caseerrors.ConfigError{
			Option:  strings.Join(names, "|"),
			Message: "must specify an input source",
		}
	default:
		return &caseerrors.ConfigError{
			Option:  strings.Join(set, "|"),
			Message: "must specify exactly one input source",
		}
	}
}
