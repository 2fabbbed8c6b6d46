package intelligence

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tianji/internal/bazi"
)

// personaImages gives each day-master element its seasonal image in the
// card's own voice.
var personaImages = map[bazi.Element]map[string]string{
	bazi.Wood: {
		"春": "春日杨柳，生机勃发",
		"夏": "烈日下的薪柴，燃烧自己照亮别人",
		"秋": "深秋古木，褪尽繁华静待轮回",
		"冬": "雪中寒兰，藏锋守拙等一缕阳光",
	},
	bazi.Fire: {
		"春": "柴上新火，越烧越亮",
		"夏": "盛夏骄阳，光焰逼人",
		"秋": "天边晚霞，绚烂而渐敛",
		"冬": "雪夜孤烛，微弱却珍贵",
	},
	bazi.Earth: {
		"春": "初春松土，等一双耕种的手",
		"夏": "酷暑下龟裂的田地，渴望一场甘霖",
		"秋": "秋日高山，沉稳可靠",
		"冬": "冻土封藏，外冷而内蕴生机",
	},
	bazi.Metal: {
		"春": "蒙尘之金，锋芒未露",
		"夏": "炉中熔金，百炼方成器",
		"秋": "秋水利剑，锋锐正当时",
		"冬": "寒冬冷铁，坚硬而孤清",
	},
	bazi.Water: {
		"春": "春晨朝露，温润无声",
		"夏": "夏日浅塘，水气蒸腾将涸",
		"秋": "秋涧清流，澄澈奔涌",
		"冬": "寒冬深海，静水流深",
	},
}

// DeterministicPersona builds a card from the imagery and strength
// tables when the model cannot.
func DeterministicPersona(c bazi.Chart) *PersonaCard {
	return &PersonaCard{
		Summary: fmt.Sprintf("%s日主生于%s月，%s，格局「%s」，喜用%s。",
			c.DayMaster, c.MonthBranch, c.Strength.Result, c.Pattern.Name, c.Strength.JoyElements),
		CoreImage:   personaImage(c),
		KeyConflict: personaConflict(c),
		KeyCure:     personaCure(c),
		Source:      "deterministic",
	}
}

func personaImage(c bazi.Chart) string {
	season := bazi.Season(c.MonthBranch)
	image := personaImages[c.DayMaster.Element()][season]
	return fmt.Sprintf("生于%s季的%s，如%s。", season, c.DayMaster, image)
}

func personaConflict(c bazi.Chart) string {
	base := "根气不足，容易被环境推着走，精力常感透支"
	if c.Strength.IsStrong {
		base = "旺气无处宣泄，多与人争、与己耗"
	}
	for _, i := range c.Interactions {
		if strings.Contains(i, "冲") {
			return fmt.Sprintf("%s；又逢%s，根基时有动摇。", base, i)
		}
	}
	return base + "。"
}

func personaCure(c bazi.Chart) string {
	if c.Climate.Urgent {
		return fmt.Sprintf("先补%s以调候，再以喜用%s养局：行事、环境、颜色皆向其靠拢。",
			c.Climate.Needs, c.Strength.JoyElements)
	}
	return fmt.Sprintf("喜用在%s，行事、环境、颜色皆向其靠拢，便是此局的药。", c.Strength.JoyElements)
}
