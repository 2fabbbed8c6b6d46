package intelligence

import "strings"

// unsafePatterns are matched as lowercase substrings against user input.
// The list targets prompt-extraction and rule-override phrasing in both
// English and Chinese.
var unsafePatterns = []string{
	"system instruction",
	"system prompt",
	"ignore all instructions",
	"repeat the text above",
	"your prompt",
	"ignore previous",
	"disregard all",
	"forget everything",
	"override",
	"bypass",
	"系统指令",
	"提示词",
	"你的设定",
	"忽略之前的",
	"重复上面的",
	"忽略以上",
	"无视规则",
	"跳过限制",
	"绕过",
	"告诉我你的",
	"输出你的",
	"显示你的",
	"打印你的",
}

// IsSafeInput reports whether a free-form question can be forwarded to
// the model. It is a coarse gate: the security footer in the context
// block is the second line of defense.
func IsSafeInput(input string) bool {
	lowered := strings.ToLower(input)
	for _, p := range unsafePatterns {
		if strings.Contains(lowered, p) {
			return false
		}
	}
	return true
}

// UnsafeInputMessage is shown instead of a reading when IsSafeInput
// rejects the question.
const UnsafeInputMessage = "🔮 天机不可泄露，请勿试探。请提出与命理相关的正当问题。"

// MissingKeyMessage explains how to enable live readings when no API key
// is configured.
const MissingKeyMessage = "⚠️ API Key 未设置或无效。请设置 TIANJI_LLM_API_KEY（或 DEEPSEEK_API_KEY）环境变量后重试。"
