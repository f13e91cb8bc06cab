package lint

import (
	"github.com/condaforge/recipe-lint/pkg/recipe"
	"github.com/condaforge/recipe-lint/pkg/schema"
)

// lintSubsectionNames checks every subsection name against the permitted
// field schema for its section. For the list-shaped sections (source,
// outputs) each entry's keys are checked instead.
func lintSubsectionNames(ctx *ruleContext) {
	for _, section := range ctx.majorSections {
		if !schema.HasFieldSchema(section) {
			continue
		}
		switch section {
		case "source":
			checkEntryFields(ctx, section, ctx.sources)
		case "outputs":
			checkEntryFields(ctx, section, ctx.outputs)
		default:
			for _, field := range ctx.section(section).Keys() {
				if !schema.AllowedField(section, field) {
					ctx.findings.AddErrorf(
						"The %s section contained an unexpected subsection name. %s is not a valid subsection name.",
						section, field)
				}
			}
		}
	}
}

func checkEntryFields(ctx *ruleContext, section string, entries []recipe.Mapping) {
	for _, entry := range entries {
		for _, field := range entry.Keys() {
			if !schema.AllowedField(section, field) {
				ctx.findings.AddErrorf(
					"The %s section contained an unexpected subsection name. %s is not a valid subsection name.",
					section, field)
			}
		}
	}
}
