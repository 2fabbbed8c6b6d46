package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tianji/internal/llm"
)

// PersonaCard is the strict-JSON snapshot reading (千面): one summary
// line, the day-master image, the chart's ailment and its remedy.
type PersonaCard struct {
	Summary     string `json:"summary"`
	CoreImage   string `json:"core_image"`
	KeyConflict string `json:"key_conflict"`
	KeyCure     string `json:"key_cure"`
	Source      string `json:"source,omitempty"` // "llm" or "deterministic"
}

const personaSystemPrompt = "You are a Bazi expert. Output strict JSON only."

// ageLensChild through ageLensElder tune the card to the subject's life
// stage; the model is told both what to focus on and what voice to take.
const (
	ageLensChild = `- **当前生命阶段**: 少年 (CHILD, 0-15岁)
- **核心关注**: 天赋潜力、学业文昌、亲子关系、性格养成。
- **❌ 禁忌话题**: 婚姻嫁娶、职场权谋、财富积累。
- **语调 (Tone)**: 充满保护欲、鼓励性、像一位慈祥的长辈对父母说话。`

	ageLensYouth = `- **当前生命阶段**: 青年 (YOUTH, 16-24岁)
- **核心关注**: 学业/考研、迷茫与方向、初恋/桃花、社交关系。
- **语调 (Tone)**: 充满激情、共情年轻人的焦虑、富有远见、像一位人生导师。`

	ageLensAdult = `- **当前生命阶段**: 成年 (ADULT, 25-59岁)
- **核心关注**: 事业晋升、财富杠杆、婚姻经营、家庭责任。
- **语调 (Tone)**: 务实、犀利、讲究策略、像一位幕后军师。`

	ageLensElder = `- **当前生命阶段**: 长者 (ELDER, 60+岁)
- **核心关注**: 健康养生、心态平和、子女成就、晚年安乐。
- **语调 (Tone)**: 沉稳、通透、充满智慧、像一位得道高僧。`
)

func personaAgeLens(age int) string {
	switch {
	case age <= 15:
		return ageLensChild
	case age <= 24:
		return ageLensYouth
	case age <= 59:
		return ageLensAdult
	default:
		return ageLensElder
	}
}

// buildPersonaPrompt assembles the strict-JSON persona prompt around the
// full chart context.
func buildPersonaPrompt(baziContext string, age int, gender string) string {
	return fmt.Sprintf(`# Role: 子平八字宗师 (专注于画面感与精准度)

# 核心指令 (Core Directives)
1. **拒绝巴纳姆效应 (No Barnum Effect)**: 严禁使用“你性格比较随和但有时也会固执”这种放之四海而皆准的废话。必须结合具体的干支组合（如“你日坐羊刃，性格中自带一把刀...”）。
2. **高度画面感 (Visual Imagery)**: 使用“日主意象”技术。不要只说“你是乙木”，要说“你是生在冬天的乙木，像一株被冰雪覆盖的兰花，急需丙火太阳的照耀...”。
3. **一针见血 (Direct & Sharp)**: 不要在这个环节模棱两可。直接指出命局最大的“病”和“药”。
4. **输出语言**: 必须使用优美、专业且易懂的 **中文**。

# 用户上下文 (Context)
%s
- **当前年龄**: %d岁
- **生理性别**: %s

# 年龄透镜 (Life Stage Lens)
%s

# 输出格式 (Strict JSON)
{
  "summary": "一句话总结",
  "core_image": "日主意象的画面感描述",
  "key_conflict": "命局最大的病灶",
  "key_cure": "命局最大的解药"
}
`, baziContext, age, gender, personaAgeLens(age))
}

// PersonaService produces the persona card for a chart.
type PersonaService interface {
	// Card generates the card; any LLM failure yields the deterministic
	// card built from the imagery tables.
	Card(ctx context.Context, in ContextInput) (*PersonaCard, error)
}

type personaService struct {
	client   llm.LLMClient
	observer llm.Observer
}

// NewPersonaService creates a PersonaService backed by an LLM client.
func NewPersonaService(client llm.LLMClient, observer llm.Observer) PersonaService {
	return &personaService{client: client, observer: observer}
}

func (s *personaService) Card(ctx context.Context, in ContextInput) (*PersonaCard, error) {
	in.Now = readingClock(in)
	gender := in.Gender
	if gender == "" {
		gender = "未知"
	}

	prompt := buildPersonaPrompt(BuildUserContext(in), personaAge(in), gender)

	// Strict-JSON generation runs at a fixed temperature regardless of
	// the model's chat default.
	temp := 0.7
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPersona,
		SystemPrompt: personaSystemPrompt,
		UserPrompt:   prompt,
		Temperature:  &temp,
	})
	if err != nil {
		return DeterministicPersona(in.Chart), nil
	}

	card, err := llm.ExtractJSON[PersonaCard](resp.Text, validatePersonaCard)
	if err != nil {
		return DeterministicPersona(in.Chart), nil
	}
	card.Source = "llm"
	return &card, nil
}

// personaAge resolves the subject's age; an unknown birth year reads
// through the adult lens.
func personaAge(in ContextInput) int {
	if in.BirthYear == 0 {
		return 30
	}
	return in.Now.Year() - in.BirthYear
}

func validatePersonaCard(c PersonaCard) error {
	for _, f := range []struct{ name, value string }{
		{"summary", c.Summary},
		{"core_image", c.CoreImage},
		{"key_conflict", c.KeyConflict},
		{"key_cure", c.KeyCure},
	} {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s field is required", f.name)
		}
	}
	return nil
}
