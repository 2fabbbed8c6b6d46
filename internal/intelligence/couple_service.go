package intelligence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tianji/internal/bazi"
	"github.com/alexanderramin/tianji/internal/llm"
)

// Relation types for couple readings. The relation reshapes the prompt:
// business partners get no romance talk, same-sex partners get de-gendered
// terminology, an undecided relation gets all three angles evaluated.
const (
	RelationPartner  = "恋人/伴侣"
	RelationBusiness = "事业合伙人"
	RelationFriend   = "知己好友"
	RelationUnknown  = "尚未确定"
)

// RelationTypes lists the relation choices in menu order.
func RelationTypes() []string {
	return []string{RelationPartner, RelationBusiness, RelationFriend, RelationUnknown}
}

// CoupleInput is one party of a two-chart reading.
type CoupleInput struct {
	Chart  bazi.Chart
	Gender string
}

// CoupleRequest carries both charts and the relation framing.
type CoupleRequest struct {
	A, B         CoupleInput
	RelationType string // empty defaults to 恋人/伴侣
	Focus        string // optional core question, gets half the reading
	Now          time.Time
}

// CoupleService produces the two-chart prose reading. The hard evidence
// (score and chemistry lines) is always computed deterministically; only
// the narration needs the model.
type CoupleService interface {
	Reading(ctx context.Context, req CoupleRequest) (*Reading, error)
}

type coupleService struct {
	client   llm.LLMClient
	observer llm.Observer
}

// NewCoupleService creates a CoupleService backed by an LLM client.
func NewCoupleService(client llm.LLMClient, observer llm.Observer) CoupleService {
	return &coupleService{client: client, observer: observer}
}

func (s *coupleService) Reading(ctx context.Context, req CoupleRequest) (*Reading, error) {
	if !IsSafeInput(req.Focus) {
		return &Reading{Text: UnsafeInputMessage, Source: "refused"}, nil
	}
	if req.Now.IsZero() {
		req.Now = time.Now()
	}

	comp := bazi.AnalyzeCompatibility(req.A.Chart.Pillars, req.B.Chart.Pillars)

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskCompat,
		SystemPrompt: SystemPrompt(true, req.Now),
		UserPrompt:   buildCouplePrompt(req, comp),
	})
	if err != nil {
		return &Reading{Text: DeterministicCoupleReading(req, comp), Source: "deterministic"}, nil
	}
	return &Reading{Text: strings.TrimSpace(resp.Text), Model: resp.Model, Source: "llm"}, nil
}

func relationOrDefault(rt string) string {
	if rt == "" {
		return RelationPartner
	}
	return rt
}

// roleInstruction customizes the reading to the relation and the gender
// combination. Two unknown genders count as same-sex on purpose: better
// de-gendered prose than a wrong guess.
func roleInstruction(relation string, sameSex bool) string {
	switch {
	case sameSex && relation == RelationPartner:
		return `**⚠️ 特殊指令（同性伴侣分析）**：
1.  **严禁使用**"丈夫"、"妻子"、"克妻"、"旺夫"等传统异性恋术语。
2.  请使用"甲方/乙方"、"伴侣"、"对方"或"另一半"来称呼。
3.  分析重点在于**阴阳能量的互补**（如一方阳刚一方阴柔，或双方都很强势），而非生理性别。`
	case relation == RelationBusiness:
		return `**⚠️ 特殊指令（事业合伙分析）**：
1.  这是商业合伙关系，**严禁提及**婚恋、桃花、夫妻宫等情感术语。
2.  请将"日支合"解读为"协作默契"，将"日支冲"解读为"经营理念冲突"。
3.  重点分析：两人合财吗？能否互补短板？谁适合主导（CEO），谁适合执行（COO）？`
	case relation == RelationFriend:
		return `**⚠️ 特殊指令（友情分析）**：
1.  这是纯友谊关系。请分析两人是否是"灵魂知己"或"酒肉朋友"。
2.  重点看性格是否投缘，能否互相提供情绪价值。`
	case relation == RelationUnknown:
		return `**⚠️ 特殊指令（关系探索分析）**：
1.  两人关系尚未明确，请从多角度分析他们的契合度。
2.  请分别评估：作为恋人、作为事业伙伴、作为朋友的匹配程度。
3.  给出建议：根据两人八字特点，哪种关系更适合他们？`
	default:
		return "这是传统的异性伴侣分析，请按常规命理逻辑进行。"
	}
}

// coupleProfile renders one party's dossier block.
func coupleProfile(label string, p CoupleInput, imageHint string) string {
	gender := p.Gender
	if gender == "" {
		gender = "未知"
	}
	c := p.Chart
	return fmt.Sprintf(`**【%s】**
- **性别**：%s
- **八字**：%s  %s  %s  %s
- **核心格局**：%s
- **五行能量**：%s (喜：%s)
- **本命画像**：%s`,
		label, gender,
		c.Pillars.Year, c.Pillars.Month, c.Pillars.Day, c.Pillars.Hour,
		c.Pattern.Name,
		c.Strength.Result, c.Strength.JoyElements,
		imageHint)
}

// buildCouplePrompt assembles the complete two-chart prompt: dossiers,
// relation framing, the computed hard evidence, the user's focus, and
// the output structure.
func buildCouplePrompt(req CoupleRequest, comp bazi.CompatibilityResult) string {
	relation := relationOrDefault(req.RelationType)
	genderA, genderB := req.A.Gender, req.B.Gender
	if genderA == "" {
		genderA = "未知"
	}
	if genderB == "" {
		genderB = "未知"
	}
	sameSex := genderA == genderB

	evidence := make([]string, 0, len(comp.Details))
	for _, d := range comp.Details {
		evidence = append(evidence, "- "+d)
	}

	focus := req.Focus
	focusDirective := "请按照标准结构进行全面分析。"
	if strings.TrimSpace(focus) == "" {
		focus = "无特别指定，请全面分析"
	} else {
		focusDirective = "请在分析报告中，**用 50% 以上的篇幅** 专门回答这个问题。其他维度可简略带过。"
	}

	return fmt.Sprintf(`# Role & Persona
你是一位精通《三命通会》与现代心理学的**资深情感命理师**。
你现在的任务是为两位用户进行【双人合盘深度分析】。

---
### 📂 档案资料 (System Verified Data)

%s

%s

---
### 🎯 关系定义 (Relationship Context)
- **关系类型**：%s
- **性别组合**：%s + %s
%s

---
### 🔗 缘分硬指标 (系统计算)
**⚠️ 系统检测到以下关键化学反应，请务必将其作为分析的核心依据：**
%s

*(如果此处为空，代表两人八字无明显的强冲或强合，属于平淡关系，请据此分析)*

---
### 🎯 用户核心诉求 (User Focus)
**用户现在的疑问点是**：%s
**指令**：%s

---
### 📝 分析指令 (Instructions)

请撰写一份**《双人灵魂契合度报告》**，语气要温暖、客观且具有洞察力。请严格按照以下结构输出 Markdown：

#### 1. 💑 缘分总评 (The Metaphor)
* 不要直接说分数。请用一个**自然界的比喻**来形容这段关系。
* *示例*："你们的关系就像**'藤蔓缠绕大树'**，甲方提供了稳定的依靠，而乙方带来了生机与情感的滋养。"
* *逻辑参考*：结合双方的身强身弱（如一强一弱为互补）和五行喜忌（如互补则为救赎）。

#### 2. 🧪 深度化学反应 (Interaction Analysis)
* **性格碰撞**：结合【格局】分析。例如：七杀格（急躁）遇到正印格（包容），是谁在迁就谁？
* **硬指标解读**：**必须引用**上述"缘分硬指标"中的内容。
    * 如果有**日支六合**，请强调"相处默契，甚至不用说话就知道对方想什么"。
    * 如果有**日支相冲**，请直言"容易在生活琐事上价值观不同"，并指出具体的冲突点（如：一个想安稳，一个想折腾）。

#### 3. ⚠️ 潜在风险与雷区 (Risk Alert)
* 不要只说好话。请敏锐地指出两人关系中最大的隐患。
* *例如*：流年冲克、沟通方式的差异、或者一方对另一方的过度消耗。

#### 4. 💡 经营建议 (Actionable Advice)
* 给出 2-3 条具体的相处建议。
* **开运建议**：基于两人的喜用神，推荐一个共同的活动（如：两人都喜火，建议多去南方旅游或一起露营）。

---
**特别禁忌**：
1.  严禁说"你们肯定会离婚"或"你们注定分手"。
2.  遇到刑冲，请用"磨合"、"修炼"等词汇代替"克死"。
3.  分析必须基于上述提供的八字数据，不可胡编乱造。
`,
		coupleProfile("甲方 (User A)", req.A, `(请基于其日主和格局，用一句话描述甲方的性格底色，如"固执但有责任感的磐石")`),
		coupleProfile("乙方 (User B)", req.B, "(请基于其日主和格局，用一句话描述乙方的性格底色)"),
		relation, genderA, genderB,
		roleInstruction(relation, sameSex),
		strings.Join(evidence, "\n"),
		focus, focusDirective)
}
