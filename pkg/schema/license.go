package schema

import (
	"fmt"
	"strings"
)

// Allowed license families, checked in order so that the more specific
// families (GPL3 before GPL) win the prefix comparison.
var allowedLicenseFamilies = []string{
	"AGPL", "GPL3", "GPL2", "GPL", "LGPL", "BSD", "MIT", "APACHE", "PSF",
	"CC", "MOZILLA", "PUBLICDOMAIN", "PROPRIETARY", "OTHER", "NONE",
}

// ValidateLicenseFamily checks a recipe's about/license_family value against
// the allowed families. An empty family is valid (the field is optional).
func ValidateLicenseFamily(family string) error {
	if family == "" {
		return nil
	}
	canonical := canonicalFamily(family)
	for _, allowed := range allowedLicenseFamilies {
		if canonical == allowed {
			return nil
		}
	}
	return fmt.Errorf("about/license_family '%s' not allowed. Allowed families are %s",
		family, strings.Join(allowedLicenseFamilies, ", "))
}

func canonicalFamily(family string) string {
	canonical := strings.ToUpper(strings.TrimSpace(family))
	canonical = strings.ReplaceAll(canonical, "-", "")
	canonical = strings.ReplaceAll(canonical, " ", "")
	return canonical
}
