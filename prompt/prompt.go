// Package prompt turns a resolved core.CombinedUserMemory into prompt-ready
// context for conversational models. Render produces a deterministic plain
// text block; the Anthropic / OpenAI helpers adapt that block into each SDK's
// system message shape so callers can inject it without further formatting.
package prompt

import (
	"strings"

	"github.com/hupe1980/usermemory/core"
)

// Render formats the combined user memory as a plain-text context block.
// Sections with no entries are omitted and an entirely empty input renders
// to the empty string. Entry order follows the input; Render never reorders
// or filters.
func Render(cm core.CombinedUserMemory) string {
	var b strings.Builder
	writeSection(&b, "User identity:", identityLines(cm.Identities))
	writeSection(&b, "Known context:", cm.Contexts)
	writeSection(&b, "Shared experiences:", cm.Experiences)
	writeSection(&b, "Preferences:", cm.Preferences)
	return strings.TrimRight(b.String(), "\n")
}

// identityLines flattens identity records into one display line each,
// prefixing the role when present.
func identityLines(records []core.IdentityRecord) []string {
	lines := make([]string, 0, len(records))
	for _, r := range records {
		line := r.Description
		if r.Role != "" {
			line = r.Role + ": " + line
		}
		lines = append(lines, line)
	}
	return lines
}

func writeSection(b *strings.Builder, heading string, entries []string) {
	if len(entries) == 0 {
		return
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(heading)
	b.WriteString("\n")
	for _, entry := range entries {
		b.WriteString("- ")
		b.WriteString(entry)
		b.WriteString("\n")
	}
}
