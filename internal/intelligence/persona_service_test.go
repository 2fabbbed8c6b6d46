package intelligence

import (
	"context"
	"testing"

	"github.com/alexanderramin/tianji/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonaService_Card_LLM(t *testing.T) {
	content := "根据命盘，卡片如下：\n```json\n" +
		`{"summary":"冬火待薪","core_image":"雪夜一点烛光","key_conflict":"根气不足而逢冲","key_cure":"以甲木引火"}` +
		"\n```"
	var capture capturedChatRequest
	srv := newChatTestServer(t, chatHandler(t, content, &capture))
	defer srv.Close()

	svc := NewPersonaService(testChatClient(srv.URL), llm.NoopObserver{})
	card, err := svc.Card(context.Background(), testContextInput(t))
	require.NoError(t, err)

	assert.Equal(t, "llm", card.Source)
	assert.Equal(t, "冬火待薪", card.Summary)
	assert.Equal(t, "雪夜一点烛光", card.CoreImage)
	assert.Equal(t, "根气不足而逢冲", card.KeyConflict)
	assert.Equal(t, "以甲木引火", card.KeyCure)

	require.Len(t, capture.Messages, 2)
	assert.Equal(t, personaSystemPrompt, capture.Messages[0].Content)
	assert.Contains(t, capture.Messages[1].Content, "# Role: 子平八字宗师")
	assert.Contains(t, capture.Messages[1].Content, "八字四柱：己巳 丙子 丙寅 甲午")
	assert.Contains(t, capture.Messages[1].Content, "- **当前年龄**: 36岁")
	assert.Contains(t, capture.Messages[1].Content, "- **生理性别**: 男")
	assert.Contains(t, capture.Messages[1].Content, "成年 (ADULT, 25-59岁)")
	assert.InDelta(t, 0.7, capture.Temperature, 0.001, "strict-JSON calls pin the temperature")
	assert.Equal(t, 512, capture.MaxTokens)
}

func TestPersonaService_Card_ProseFallsBack(t *testing.T) {
	srv := newChatTestServer(t, chatHandler(t, "今天不宜测算，请明日再来。", nil))
	defer srv.Close()

	svc := NewPersonaService(testChatClient(srv.URL), llm.NoopObserver{})
	card, err := svc.Card(context.Background(), testContextInput(t))
	require.NoError(t, err)

	assert.Equal(t, "deterministic", card.Source)
	assert.Equal(t, "生于冬季的丙，如雪夜孤烛，微弱却珍贵。", card.CoreImage)
}

func TestPersonaService_Card_MissingFieldFallsBack(t *testing.T) {
	content := `{"summary":"冬火待薪","core_image":"雪夜一点烛光","key_conflict":"根气不足"}`
	srv := newChatTestServer(t, chatHandler(t, content, nil))
	defer srv.Close()

	svc := NewPersonaService(testChatClient(srv.URL), llm.NoopObserver{})
	card, err := svc.Card(context.Background(), testContextInput(t))
	require.NoError(t, err)

	assert.Equal(t, "deterministic", card.Source)
}

func TestPersonaService_Card_NoKeyFallsBack(t *testing.T) {
	svc := NewPersonaService(keylessChatClient(), llm.NoopObserver{})
	card, err := svc.Card(context.Background(), testContextInput(t))
	require.NoError(t, err)

	assert.Equal(t, "deterministic", card.Source)
	assert.Contains(t, card.Summary, "丙日主生于子月，身弱")
}

func TestPersonaService_Card_UnknownGenderAndYear(t *testing.T) {
	var capture capturedChatRequest
	srv := newChatTestServer(t, chatHandler(t,
		`{"summary":"s","core_image":"i","key_conflict":"c","key_cure":"k"}`, &capture))
	defer srv.Close()

	in := testContextInput(t)
	in.Gender = ""
	in.BirthYear = 0

	svc := NewPersonaService(testChatClient(srv.URL), llm.NoopObserver{})
	_, err := svc.Card(context.Background(), in)
	require.NoError(t, err)

	assert.Contains(t, capture.Messages[1].Content, "- **当前年龄**: 30岁")
	assert.Contains(t, capture.Messages[1].Content, "- **生理性别**: 未知")
	assert.Contains(t, capture.Messages[1].Content, "成年 (ADULT, 25-59岁)")
}

func TestPersonaAgeLens(t *testing.T) {
	assert.Contains(t, personaAgeLens(10), "少年 (CHILD, 0-15岁)")
	assert.Contains(t, personaAgeLens(10), "❌ 禁忌话题")
	assert.Contains(t, personaAgeLens(16), "青年 (YOUTH, 16-24岁)")
	assert.Contains(t, personaAgeLens(24), "青年 (YOUTH, 16-24岁)")
	assert.Contains(t, personaAgeLens(25), "成年 (ADULT, 25-59岁)")
	assert.Contains(t, personaAgeLens(59), "成年 (ADULT, 25-59岁)")
	assert.Contains(t, personaAgeLens(60), "长者 (ELDER, 60+岁)")
}

func TestValidatePersonaCard(t *testing.T) {
	full := PersonaCard{Summary: "s", CoreImage: "i", KeyConflict: "c", KeyCure: "k"}
	assert.NoError(t, validatePersonaCard(full))

	missing := full
	missing.CoreImage = "  "
	err := validatePersonaCard(missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "core_image field is required")
}

func TestDeterministicPersona(t *testing.T) {
	card := DeterministicPersona(testChart(t))

	assert.Equal(t, "deterministic", card.Source)
	assert.Contains(t, card.Summary, "丙日主生于子月，身弱")
	assert.Contains(t, card.Summary, "喜用火、木")
	assert.Equal(t, "生于冬季的丙，如雪夜孤烛，微弱却珍贵。", card.CoreImage)
	assert.Equal(t, "根气不足，容易被环境推着走，精力常感透支；又逢子午相冲，根基时有动摇。", card.KeyConflict)
	assert.Equal(t, "先补甲木 (引火)以调候，再以喜用火、木养局：行事、环境、颜色皆向其靠拢。", card.KeyCure)
}
