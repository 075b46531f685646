package openaicompat

import "time"

// Known OpenAI-compatible endpoints, selected by provider name.
const (
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	DeepSeekModel   = "deepseek-chat"

	QwenBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	QwenModel   = "qwen-plus"

	OpenAIBaseURL = "https://api.openai.com/v1"

	DefaultTimeout = 60 * time.Second

	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultBaseURL returns the documented endpoint for a provider name, or "".
func DefaultBaseURL(provider string) string {
	switch provider {
	case "deepseek":
		return DeepSeekBaseURL
	case "qwen", "alibaba":
		return QwenBaseURL
	case "openai":
		return OpenAIBaseURL
	}
	return ""
}
