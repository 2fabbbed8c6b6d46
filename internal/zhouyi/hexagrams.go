package zhouyi

// Trigram is one of the eight basic figures. Bits read bottom line first:
// 乾 is 111, 坤 is 000.
type Trigram struct {
	Name   string
	Nature string
	Symbol string
	Trait  string
}

// Label renders a trigram for display, e.g. ☰ 乾(天).
func (t Trigram) Label() string {
	return t.Symbol + " " + t.Name + "(" + t.Nature + ")"
}

// trigramOrder fixes the traditional 乾兑离震巽坎艮坤 sequence used by the
// hexagram matrix.
var trigramOrder = [8]string{"111", "011", "101", "001", "110", "010", "100", "000"}

var trigrams = map[string]Trigram{
	"111": {"乾", "天", "☰", "刚健"},
	"011": {"兑", "泽", "☱", "喜悦"},
	"101": {"离", "火", "☲", "光明"},
	"001": {"震", "雷", "☳", "震动"},
	"110": {"巽", "风", "☴", "顺入"},
	"010": {"坎", "水", "☵", "陷险"},
	"100": {"艮", "山", "☶", "止静"},
	"000": {"坤", "地", "☷", "柔顺"},
}

// Hexagram is one of the sixty-four figures with its one-line reading.
type Hexagram struct {
	Name    string
	Short   string
	Meaning string
}

// hexagramMatrix lists the sixty-four hexagrams: rows by upper trigram,
// columns by lower, both in 乾兑离震巽坎艮坤 order.
var hexagramMatrix = [8][8]Hexagram{
	{ // upper 乾
		{"乾为天", "乾", "刚健中正，自强不息"},
		{"天泽履", "履", "履道坦坦，素履之往"},
		{"天火同人", "同人", "志同道合，和同于人"},
		{"天雷无妄", "无妄", "真实无妄，顺应自然"},
		{"天风姤", "姤", "邂逅相遇，阴柔渐长"},
		{"天水讼", "讼", "争讼纠纷，终凶戒惧"},
		{"天山遁", "遁", "隐退避让，保全实力"},
		{"天地否", "否", "阴阳不交，闭塞不通"},
	},
	{ // upper 兑
		{"泽天夬", "夬", "决断果敢，刚决柔和"},
		{"兑为泽", "兑", "欢悦和悦，以诚相待"},
		{"泽火革", "革", "变革更新，顺天应人"},
		{"泽雷随", "随", "随机应变，和悦相随"},
		{"泽风大过", "大过", "大为过度，非常行事"},
		{"泽水困", "困", "困境受阻，坚守正道"},
		{"泽山咸", "咸", "感应交流，男女相感"},
		{"泽地萃", "萃", "聚集汇合，顺应时势"},
	},
	{ // upper 离
		{"火天大有", "大有", "日丽中天，万物繁盛"},
		{"火泽睽", "睽", "乖违背离，同异相成"},
		{"离为火", "离", "光明美丽，附着依托"},
		{"火雷噬嗑", "噬嗑", "咬合惩治，明罚敕法"},
		{"火风鼎", "鼎", "革新变革，稳定发展"},
		{"火水未济", "未济", "事未成就，小心谨慎"},
		{"火山旅", "旅", "羁旅在外，谨慎小心"},
		{"火地晋", "晋", "光明上进，顺畅发展"},
	},
	{ // upper 震
		{"雷天大壮", "大壮", "阳盛壮大，非礼弗履"},
		{"雷泽归妹", "归妹", "少女出嫁，不可勉强"},
		{"雷火丰", "丰", "丰盛盈满，明以动之"},
		{"震为雷", "震", "震动奋起，戒惧修省"},
		{"雷风恒", "恒", "恒久不变，守恒持正"},
		{"雷水解", "解", "解除险难，缓和舒解"},
		{"雷山小过", "小过", "小事过度，谨慎行事"},
		{"雷地豫", "豫", "欢乐豫悦，骄纵灾祸"},
	},
	{ // upper 巽
		{"风天小畜", "小畜", "小有蓄积，以待时机"},
		{"风泽中孚", "中孚", "内心诚信，豚鱼吉祥"},
		{"风火家人", "家人", "家庭家道，利女正固"},
		{"风雷益", "益", "增益利益，损上益下"},
		{"巽为风", "巽", "谦逊柔顺，渗透前进"},
		{"风水涣", "涣", "涣散离散，拯救团聚"},
		{"风山渐", "渐", "渐进发展，循序前进"},
		{"风地观", "观", "观察审视，神道设教"},
	},
	{ // upper 坎
		{"水天需", "需", "等待时机，饮食宴乐"},
		{"水泽节", "节", "节制调节，适可而止"},
		{"水火既济", "既济", "事已成就，守成谨慎"},
		{"水雷屯", "屯", "初生艰难，屯难聚积"},
		{"水风井", "井", "井养不穷，往来无咎"},
		{"坎为水", "坎", "重重险阻，习坎行险"},
		{"水山蹇", "蹇", "艰难险阻，见险而止"},
		{"水地比", "比", "亲近辅助，择善而从"},
	},
	{ // upper 艮
		{"山天大畜", "大畜", "大有蓄积，刚健笃实"},
		{"山泽损", "损", "减损奉献，损下益上"},
		{"山火贲", "贲", "装饰文饰，实质为本"},
		{"山雷颐", "颐", "颐养正道，自求口实"},
		{"山风蛊", "蛊", "蛊惑振救，整治腐败"},
		{"山水蒙", "蒙", "启蒙教育，以正养正"},
		{"艮为山", "艮", "止而不进，知止则吉"},
		{"山地剥", "剥", "剥落衰败，以静制动"},
	},
	{ // upper 坤
		{"地天泰", "泰", "天地交通，通泰安宁"},
		{"地泽临", "临", "居高临下，教民保民"},
		{"地火明夷", "明夷", "光明受损，晦暗艰贞"},
		{"地雷复", "复", "一阳来复，回归正道"},
		{"地风升", "升", "上升进步，柔顺谦虚"},
		{"地水师", "师", "兴师动众，正义之战"},
		{"地山谦", "谦", "谦虚谨慎，有终吉祥"},
		{"坤为地", "坤", "柔顺厚德，载物含弘"},
	},
}

// hexagramsByBits indexes the matrix by the six-bit cast string, lower
// trigram bits first.
var hexagramsByBits = make(map[string]Hexagram, 64)

func init() {
	for upperIdx, upperBits := range trigramOrder {
		for lowerIdx, lowerBits := range trigramOrder {
			hexagramsByBits[lowerBits+upperBits] = hexagramMatrix[upperIdx][lowerIdx]
		}
	}
}

// HexagramByBits resolves a six-bit line string, lower trigram first.
func HexagramByBits(bits string) (Hexagram, bool) {
	h, ok := hexagramsByBits[bits]
	return h, ok
}

// TrigramByBits resolves a three-bit trigram string.
func TrigramByBits(bits string) (Trigram, bool) {
	t, ok := trigrams[bits]
	return t, ok
}
