package grammar

import (
	"fmt"
	"strings"
)

// FormatHelp formats the grammar as help text.
func FormatHelp() string {
	g := GetGrammar()

	var b strings.Builder
	b.WriteString("bts scenario language\n\n")
	b.WriteString("Layout:\n")
	b.WriteString("  scenario \"<name>\" {\n")
	b.WriteString("      description \"<text>\"\n")
	b.WriteString("      url \"<url>\"\n")
	b.WriteString("      tags [\"<tag>\", ...]\n")
	b.WriteString("      priority critical|high|medium|low\n\n")
	b.WriteString("      step \"<description>\" {\n")
	b.WriteString("          <action>\n")
	b.WriteString("          [expect \"<text>\"] [timeout <ms>] [retry <n>] [continueOnFailure]\n")
	b.WriteString("      }\n")
	b.WriteString("  }\n\n")

	b.WriteString("Actions:\n")
	for _, a := range g.Actions {
		fmt.Fprintf(&b, "  %-12s - %s\n", a.Name, a.Description)
		if a.Example != "" {
			fmt.Fprintf(&b, "                 %s\n", a.Example)
		}
	}

	b.WriteString("\nStep modifiers:\n")
	for _, m := range g.Modifiers {
		fmt.Fprintf(&b, "  %-18s - %s\n", m.Name, m.Description)
	}

	fmt.Fprintf(&b, "\nWait conditions: %s\n", strings.Join(g.WaitConditions, ", "))
	fmt.Fprintf(&b, "Assertions:      %s\n", strings.Join(g.Assertions, ", "))
	fmt.Fprintf(&b, "Priorities:      %s\n", strings.Join(g.Priorities, ", "))

	b.WriteString("\nLines starting with // or # are comments. Element references are #<n>.\n")
	return b.String()
}
