package lint

import (
	"fmt"
	"slices"
	"strings"
)

// lintUnexpectedTopLevelKeys reports top-level keys outside the canonical
// vocabulary and strips them from the section list the order rule checks.
func lintUnexpectedTopLevelKeys(ctx *ruleContext) {
	for _, key := range ctx.doc.Keys() {
		if slices.Contains(expectedSectionOrder, key) {
			ctx.majorSections = append(ctx.majorSections, key)
			continue
		}
		ctx.findings.AddErrorf("The top level meta key %s is unexpected", key)
	}
}

// lintSectionOrder checks that the present top-level keys follow the
// canonical section order.
func lintSectionOrder(ctx *ruleContext) {
	sorted := sortByCanonicalIndex(ctx.majorSections, expectedSectionOrder)
	if slices.Equal(ctx.majorSections, sorted) {
		return
	}
	quoted := make([]string, 0, len(sorted))
	for _, key := range sorted {
		quoted = append(quoted, fmt.Sprintf("'%s'", key))
	}
	ctx.findings.AddErrorf(
		"The top level meta keys are in an unexpected order. Expecting [%s].",
		strings.Join(quoted, ", "))
}

// lintRequirementsOrder checks that the requirements tiers present among
// build/host/run appear in that relative order. Absent tiers are skipped.
func lintRequirementsOrder(ctx *ruleContext) {
	var seen []string
	for _, key := range ctx.requirements.Keys() {
		if slices.Contains(requirementsOrder, key) {
			seen = append(seen, key)
		}
	}
	sorted := sortByCanonicalIndex(seen, requirementsOrder)
	if slices.Equal(seen, sorted) {
		return
	}
	ctx.findings.AddErrorf(
		"The `requirements/` sections should be defined in the following order: %s; instead saw: %s.",
		strings.Join(requirementsOrder, ", "), strings.Join(seen, ", "))
}
