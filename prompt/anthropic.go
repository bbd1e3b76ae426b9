package prompt

import (
	"github.com/anthropics/anthropic-sdk-go"

	"github.com/hupe1980/usermemory/core"
)

// AnthropicSystemBlocks converts the combined user memory into system prompt
// blocks for the Anthropic Messages API. It returns nil when there is nothing
// to inject so callers can skip setting params.System entirely.
func AnthropicSystemBlocks(cm core.CombinedUserMemory) []anthropic.TextBlockParam {
	text := Render(cm)
	if text == "" {
		return nil
	}
	return []anthropic.TextBlockParam{{Text: text}}
}
