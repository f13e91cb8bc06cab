package schema

import (
	"fmt"
	"regexp"
	"strings"
)

// The conda version grammar: lowercase alphanumeric segments separated by
// dots or underscores, an optional numeric epoch before '!', and an optional
// local version after '+'.
var (
	versionCharsRe  = regexp.MustCompile(`^[*.+!_0-9a-z]+$`)
	numericEpochRe  = regexp.MustCompile(`^[0-9]+$`)
	versionSplitSep = regexp.MustCompile(`[._]`)
)

// CheckVersion reports whether a package version string parses under the
// conda version-ordering grammar.
func CheckVersion(version string) error {
	v := strings.ToLower(strings.TrimSpace(version))
	if v == "" {
		return fmt.Errorf("empty version string")
	}
	if !versionCharsRe.MatchString(v) {
		return fmt.Errorf("invalid characters in version %q", version)
	}

	// Split off the local version part.
	parts := strings.Split(v, "+")
	switch {
	case len(parts) > 2:
		return fmt.Errorf("duplicated local version separator '+' in %q", version)
	case len(parts) == 2 && parts[1] == "":
		return fmt.Errorf("empty local version in %q", version)
	}

	// Split off the epoch.
	main := parts[0]
	epochParts := strings.Split(main, "!")
	switch {
	case len(epochParts) > 2:
		return fmt.Errorf("duplicated epoch separator '!' in %q", version)
	case len(epochParts) == 2:
		if !numericEpochRe.MatchString(epochParts[0]) {
			return fmt.Errorf("epoch must be an integer in %q", version)
		}
		main = epochParts[1]
	}

	segments := []string{main}
	if len(parts) == 2 {
		segments = append(segments, parts[1])
	}
	for _, segment := range segments {
		if segment == "" {
			return fmt.Errorf("empty version component in %q", version)
		}
		for _, component := range versionSplitSep.Split(segment, -1) {
			if component == "" {
				return fmt.Errorf("empty version component in %q", version)
			}
		}
	}
	return nil
}
