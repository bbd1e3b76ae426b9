package prompt

import (
	"github.com/openai/openai-go"

	"github.com/hupe1980/usermemory/core"
)

// OpenAISystemMessage converts the combined user memory into a system message
// for the OpenAI Chat Completions API. The boolean is false when there is
// nothing to inject.
func OpenAISystemMessage(cm core.CombinedUserMemory) (openai.ChatCompletionMessageParamUnion, bool) {
	text := Render(cm)
	if text == "" {
		return openai.ChatCompletionMessageParamUnion{}, false
	}
	return openai.SystemMessage(text), true
}
