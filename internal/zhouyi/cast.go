// Package zhouyi implements three-coin hexagram casting (金钱课).
//
// A cast throws three coins six times, building the hexagram from the
// bottom line up. Each throw sums the coins (front 3, back 2): 6 is old
// yin, 7 young yang, 8 young yin, 9 old yang. Old lines are moving and
// flip in the transformed hexagram.
package zhouyi

import (
	"fmt"
	"math/rand"
	"time"
)

// CastResult holds one complete casting: the original hexagram, the
// transformed one when moving lines exist, and the per-line records.
type CastResult struct {
	Original      Hexagram
	OriginalBits  string
	Future        *Hexagram
	FutureBits    string
	ChangingLines []int
	Details       []string
	LineTypes     []string
	Lower         Trigram
	Upper         Trigram
	HasChange     bool
}

// Caster produces hexagram castings from a randomness source.
type Caster struct {
	rng *rand.Rand
}

// NewCaster returns a caster seeded from the current time.
func NewCaster() *Caster {
	return NewCasterWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewCasterWithSource returns a caster drawing coins from src. Tests use
// a fixed seed to make castings reproducible.
func NewCasterWithSource(src rand.Source) *Caster {
	return &Caster{rng: rand.New(src)}
}

// toss throws three coins and sums them; each coin lands 2 (back) or 3
// (front), so the result is 6..9.
func (c *Caster) toss() int {
	sum := 0
	for i := 0; i < 3; i++ {
		sum += 2 + c.rng.Intn(2)
	}
	return sum
}

// lineOf maps a toss value to its line: bit value, type name, display
// note, and whether it moves.
func lineOf(t int) (bit byte, typ, note string, moving bool) {
	switch t {
	case 6:
		return '0', "老阴", "⚋ 老阴 (动爻)", true
	case 7:
		return '1', "少阳", "⚊ 少阳", false
	case 8:
		return '0', "少阴", "⚋ 少阴", false
	default: // 9
		return '1', "老阳", "⚊ 老阳 (动爻)", true
	}
}

// Cast performs one complete six-line casting.
func (c *Caster) Cast() CastResult {
	tosses := make([]int, 6)
	for i := range tosses {
		tosses[i] = c.toss()
	}
	return castFromTosses(tosses)
}

// castFromTosses builds a result from six toss values, bottom line
// first. Split out so tests can feed fixed sequences.
func castFromTosses(tosses []int) CastResult {
	original := make([]byte, 6)
	future := make([]byte, 6)
	res := CastResult{
		Details:   make([]string, 0, 6),
		LineTypes: make([]string, 0, 6),
	}
	for i, t := range tosses {
		bit, typ, note, moving := lineOf(t)
		original[i] = bit
		future[i] = bit
		if moving {
			if bit == '1' {
				future[i] = '0'
			} else {
				future[i] = '1'
			}
			res.ChangingLines = append(res.ChangingLines, i+1)
		}
		res.Details = append(res.Details, fmt.Sprintf("第%d爻: %s", i+1, note))
		res.LineTypes = append(res.LineTypes, typ)
	}

	res.OriginalBits = string(original)
	res.Original = hexagramsByBits[res.OriginalBits]
	res.Lower = trigrams[res.OriginalBits[:3]]
	res.Upper = trigrams[res.OriginalBits[3:]]
	res.HasChange = len(res.ChangingLines) > 0
	if res.HasChange {
		res.FutureBits = string(future)
		h := hexagramsByBits[res.FutureBits]
		res.Future = &h
	}
	return res
}
