package intelligence

import (
	"testing"

	"github.com/alexanderramin/tianji/internal/bazi"
	"github.com/alexanderramin/tianji/internal/zhouyi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterministicTopicReading_Overview(t *testing.T) {
	out := DeterministicTopicReading(testContextInput(t), "整体命格")

	assert.Contains(t, out, "【四柱】己巳 丙子 丙寅 甲午")
	assert.Contains(t, out, "生于子月（冬季），判定身弱")
	assert.Contains(t, out, "【喜用五行】火、木")
	assert.Contains(t, out, "日主身弱，心思细")
	assert.Contains(t, out, "同党得分: 40")
	assert.Contains(t, out, "本命音「大林木」")
	assert.Contains(t, out, "自我音「炉中火」")
	assert.Contains(t, out, "【地支动静】⚠️子午冲。")
	assert.Contains(t, out, "【神煞】命带将星(午)、羊刃(午)")
}

func TestDeterministicTopicReading_UnknownTopicReadsOverview(t *testing.T) {
	out := DeterministicTopicReading(testContextInput(t), "塔罗占卜")
	assert.Contains(t, out, "你的格局为「")
}

func TestDeterministicTopicReading_Career(t *testing.T) {
	out := DeterministicTopicReading(testContextInput(t), "事业运势")

	assert.Contains(t, out, "月干透出「比肩」，主事业取向：适合与人并肩合作、合伙经营")
	assert.Contains(t, out, "十神布局：年干伤官、月干比肩、时干偏印")
	assert.Contains(t, out, "身弱之人善借势")
	assert.Contains(t, out, "行业五行宜向「火、木」靠拢")
}

func TestDeterministicTopicReading_Romance(t *testing.T) {
	out := DeterministicTopicReading(testContextInput(t), "感情运势")

	assert.Contains(t, out, "日支寅为夫妻宫，坐下藏干甲, 丙, 戊")
	assert.Contains(t, out, "盘中桃花不显")
	assert.Contains(t, out, "夫妻宫无明显刑冲")
}

func TestDeterministicTopicReading_RomanceSpousePalaceClash(t *testing.T) {
	p, err := bazi.ParsePillars("甲子", "丙子", "庚午", "丁丑")
	require.NoError(t, err)
	in := testContextInput(t)
	in.Chart = bazi.Derive(p)

	out := DeterministicTopicReading(in, "感情运势")

	assert.Contains(t, out, "涉及夫妻宫，感情易有波动聚散")
	assert.NotContains(t, out, "夫妻宫无明显刑冲")
}

func TestDeterministicTopicReading_Health(t *testing.T) {
	out := DeterministicTopicReading(testContextInput(t), "健康建议")

	assert.Contains(t, out, "日主属火，先天对应心脏、血液循环")
	assert.Contains(t, out, "【调候】火势气弱。急需补「甲木 (引火)」")
	assert.Contains(t, out, "火主心脏、血液循环；木主肝胆、筋骨")
}

func TestDeterministicTopicReading_HealthCalmSeason(t *testing.T) {
	p, err := bazi.ParsePillars("甲子", "丁卯", "丙辰", "戊子")
	require.NoError(t, err)
	in := testContextInput(t)
	in.Chart = bazi.Derive(p)

	out := DeterministicTopicReading(in, "健康建议")
	assert.Contains(t, out, "生月气候平和，无需刻意调候")
}

func TestDeterministicTopicReading_Luck(t *testing.T) {
	out := DeterministicTopicReading(testContextInput(t), "开运建议")

	assert.Contains(t, out, "* **火**：颜色取红色、紫色，方位利南方。")
	assert.Contains(t, out, "* **木**：颜色取绿色、青色，方位利东方。")
	assert.Contains(t, out, "调候急于一切：此命火势气弱，先补「甲木 (引火)」")
}

func TestDeterministicTopicReading_CyclesWithoutData(t *testing.T) {
	in := testContextInput(t)
	in.Cycles = nil
	out := DeterministicTopicReading(in, "大运流年")
	assert.Contains(t, out, "大运尚未排定")
}

func TestDeterministicTopicReading_Cycles(t *testing.T) {
	in := testContextInput(t)
	in.Cycles = &bazi.FortuneCycles{
		Start: bazi.FortuneStart{Years: 7, Months: 2, Days: 15},
		Decades: []bazi.Decade{
			{GanZhi: "甲戌", StartYear: 2017, EndYear: 2026, StartAge: 27, EndAge: 36},
			{GanZhi: "乙亥", StartYear: 2027, EndYear: 2036, StartAge: 37, EndAge: 46},
		},
		Annual: []bazi.AnnualCycle{
			{Year: 2026, Age: 36, GanZhi: "丙午"},
			{Year: 2027, Age: 37, GanZhi: "丁未"},
			{Year: 2028, Age: 38, GanZhi: "戊申"},
			{Year: 2029, Age: 39, GanZhi: "己酉"},
		},
	}

	out := DeterministicTopicReading(in, "大运流年")

	assert.Contains(t, out, "【起运】出生后7年2个月15天起运。")
	assert.Contains(t, out, "当前行「甲戌」大运（2017-2026年，27-36岁）")
	assert.Contains(t, out, "近三个流年：2026年丙午（36岁）、2027年丁未（37岁）、2028年戊申（38岁）")
}

func TestDeterministicQuestionReading(t *testing.T) {
	out := DeterministicQuestionReading(testChart(t), " 我该跳槽吗 ")

	assert.Contains(t, out, "关于「我该跳槽吗」")
	assert.Contains(t, out, "【四柱】己巳 丙子 丙寅 甲午")
	assert.Contains(t, out, "顺着喜用五行（火、木）")
}

func castStatic() zhouyi.CastResult {
	qian := zhouyi.Trigram{Name: "乾", Nature: "天", Symbol: "☰", Trait: "刚健"}
	return zhouyi.CastResult{
		Original:     zhouyi.Hexagram{Name: "乾为天", Short: "乾", Meaning: "刚健中正，自强不息"},
		OriginalBits: "111111",
		Lower:        qian,
		Upper:        qian,
	}
}

func TestDeterministicDivinationReading_Static(t *testing.T) {
	out := DeterministicDivinationReading(castStatic(), "今年适合搬家吗")

	assert.Contains(t, out, "所问之事：今年适合搬家吗")
	assert.Contains(t, out, "本卦【乾为天】，卦义「刚健中正，自强不息」")
	assert.Contains(t, out, "上卦☰ 乾(天)主刚健")
	assert.Contains(t, out, "六爻皆静，以本卦卦辞断之")
}

func TestDeterministicDivinationReading_SingleMovingLine(t *testing.T) {
	cast := castStatic()
	cast.HasChange = true
	cast.ChangingLines = []int{5}
	cast.FutureBits = "111101"
	cast.Future = &zhouyi.Hexagram{Name: "火天大有", Short: "大有", Meaning: "日丽中天，万物繁盛"}

	out := DeterministicDivinationReading(cast, "")

	assert.NotContains(t, out, "所问之事")
	assert.Contains(t, out, "第5爻独动")
	assert.Contains(t, out, "变卦为【火天大有】——「日丽中天，万物繁盛」")
}

func TestDeterministicDivinationReading_MultipleMovingLines(t *testing.T) {
	cast := castStatic()
	cast.HasChange = true
	cast.ChangingLines = []int{1, 4, 6}
	cast.FutureBits = "011010"
	cast.Future = &zhouyi.Hexagram{Name: "水泽节", Short: "节", Meaning: "节制有度，不可穷极"}

	out := DeterministicDivinationReading(cast, "问合作")

	assert.Contains(t, out, "第1爻、第4爻、第6爻俱动")
	assert.Contains(t, out, "宜以变卦【水泽节】为主参断")
}
