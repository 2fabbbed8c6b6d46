package domain

type Gender string

const (
	GenderMale   Gender = "男"
	GenderFemale Gender = "女"
)

// ValidGenders is the canonical set of accepted gender strings.
var ValidGenders = map[string]bool{
	"男": true, "女": true,
}

func (g Gender) IsMale() bool {
	return g == GenderMale
}

type ReadingKind string

const (
	ReadingAnalysis   ReadingKind = "analysis"
	ReadingQuestion   ReadingKind = "question"
	ReadingCompat     ReadingKind = "compat"
	ReadingDivination ReadingKind = "divination"
)

// ValidReadingKinds is the canonical set of accepted reading kind strings.
var ValidReadingKinds = map[string]bool{
	"analysis": true, "question": true, "compat": true, "divination": true,
}
