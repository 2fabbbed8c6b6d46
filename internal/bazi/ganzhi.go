// Package bazi implements the Four Pillars (八字) calculation engine:
// pillar primitives, ten gods, hidden stems, pattern classification,
// day-master strength, life stages, voids, symbolic stars, branch
// interactions, Na Yin sounds and seasonal climate needs.
//
// Everything in this package is pure table-driven computation. Functions
// never return errors: inputs are validated at the boundary (ParseStem,
// ParseBranch, ParsePillar) and lookups on validated values cannot miss.
package bazi

import "fmt"

type Stem string

type Branch string

type Element string

const (
	Wood  Element = "木"
	Fire  Element = "火"
	Earth Element = "土"
	Metal Element = "金"
	Water Element = "水"
)

// Stems lists the ten heavenly stems in canonical order, 甲 first.
var Stems = [10]Stem{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

// Branches lists the twelve earthly branches in canonical order, 子 first.
var Branches = [12]Branch{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

// Elements lists the five elements in the order they are reported, 金 first.
var Elements = [5]Element{Metal, Wood, Water, Fire, Earth}

var stemIndex = make(map[Stem]int, len(Stems))

var branchIndex = make(map[Branch]int, len(Branches))

func init() {
	for i, s := range Stems {
		stemIndex[s] = i
	}
	for i, b := range Branches {
		branchIndex[b] = i
	}
}

var stemElements = map[Stem]Element{
	"甲": Wood, "乙": Wood,
	"丙": Fire, "丁": Fire,
	"戊": Earth, "己": Earth,
	"庚": Metal, "辛": Metal,
	"壬": Water, "癸": Water,
}

var branchElements = map[Branch]Element{
	"寅": Wood, "卯": Wood,
	"巳": Fire, "午": Fire,
	"辰": Earth, "戌": Earth, "丑": Earth, "未": Earth,
	"申": Metal, "酉": Metal,
	"亥": Water, "子": Water,
}

// produces is the generating cycle 木→火→土→金→水→木.
var produces = map[Element]Element{
	Wood:  Fire,
	Fire:  Earth,
	Earth: Metal,
	Metal: Water,
	Water: Wood,
}

// producedBy is the reverse of the generating cycle: the resource element.
var producedBy = map[Element]Element{
	Fire:  Wood,
	Earth: Fire,
	Metal: Earth,
	Water: Metal,
	Wood:  Water,
}

// Index returns the stem's position in the canonical order, 甲 = 0.
func (s Stem) Index() int { return stemIndex[s] }

func (s Stem) Element() Element { return stemElements[s] }

// Yang reports whether the stem is yang. Stems alternate yang/yin from 甲.
func (s Stem) Yang() bool { return stemIndex[s]%2 == 0 }

func (s Stem) String() string { return string(s) }

// Index returns the branch's position in the canonical order, 子 = 0.
func (b Branch) Index() int { return branchIndex[b] }

func (b Branch) Element() Element { return branchElements[b] }

func (b Branch) String() string { return string(b) }

// Produces reports whether e generates other in the five-element cycle.
func (e Element) Produces(other Element) bool { return produces[e] == other }

// Resource returns the element that generates e.
func (e Element) Resource() Element { return producedBy[e] }

func (e Element) String() string { return string(e) }

// ParseStem validates a single heavenly stem character.
func ParseStem(s string) (Stem, error) {
	if _, ok := stemIndex[Stem(s)]; !ok {
		return "", fmt.Errorf("invalid heavenly stem %q", s)
	}
	return Stem(s), nil
}

// ParseBranch validates a single earthly branch character.
func ParseBranch(s string) (Branch, error) {
	if _, ok := branchIndex[Branch(s)]; !ok {
		return "", fmt.Errorf("invalid earthly branch %q", s)
	}
	return Branch(s), nil
}

// Pillar is one stem/branch column of a chart.
type Pillar struct {
	Stem   Stem
	Branch Branch
}

func (p Pillar) String() string { return string(p.Stem) + string(p.Branch) }

// ParsePillar validates a two-character ganzhi string such as 甲子.
func ParsePillar(s string) (Pillar, error) {
	runes := []rune(s)
	if len(runes) != 2 {
		return Pillar{}, fmt.Errorf("invalid pillar %q: want stem+branch", s)
	}
	stem, err := ParseStem(string(runes[0]))
	if err != nil {
		return Pillar{}, fmt.Errorf("invalid pillar %q: %w", s, err)
	}
	branch, err := ParseBranch(string(runes[1]))
	if err != nil {
		return Pillar{}, fmt.Errorf("invalid pillar %q: %w", s, err)
	}
	return Pillar{Stem: stem, Branch: branch}, nil
}

// MustPillar is ParsePillar for compile-time-known literals; it panics on
// malformed input.
func MustPillar(s string) Pillar {
	p, err := ParsePillar(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Pillars holds the four columns of a natal chart.
type Pillars struct {
	Year  Pillar
	Month Pillar
	Day   Pillar
	Hour  Pillar
}

// List returns the pillars in year/month/day/hour order.
func (p Pillars) List() [4]Pillar {
	return [4]Pillar{p.Year, p.Month, p.Day, p.Hour}
}

// StemList returns the four stems in year/month/day/hour order.
func (p Pillars) StemList() [4]Stem {
	return [4]Stem{p.Year.Stem, p.Month.Stem, p.Day.Stem, p.Hour.Stem}
}

// BranchList returns the four branches in year/month/day/hour order.
func (p Pillars) BranchList() [4]Branch {
	return [4]Branch{p.Year.Branch, p.Month.Branch, p.Day.Branch, p.Hour.Branch}
}

// DayMaster returns the day stem, the reference point for most derivations.
func (p Pillars) DayMaster() Stem { return p.Day.Stem }

func (p Pillars) String() string {
	return p.Year.String() + " " + p.Month.String() + " " + p.Day.String() + " " + p.Hour.String()
}

// ParsePillars validates four ganzhi strings in year/month/day/hour order.
func ParsePillars(year, month, day, hour string) (Pillars, error) {
	var p Pillars
	var err error
	if p.Year, err = ParsePillar(year); err != nil {
		return Pillars{}, fmt.Errorf("year pillar: %w", err)
	}
	if p.Month, err = ParsePillar(month); err != nil {
		return Pillars{}, fmt.Errorf("month pillar: %w", err)
	}
	if p.Day, err = ParsePillar(day); err != nil {
		return Pillars{}, fmt.Errorf("day pillar: %w", err)
	}
	if p.Hour, err = ParsePillar(hour); err != nil {
		return Pillars{}, fmt.Errorf("hour pillar: %w", err)
	}
	return p, nil
}
