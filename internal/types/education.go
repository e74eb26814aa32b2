package types

import "strings"

// EducationLevel is the ordinal scale of degree levels used to compare a
// candidate's highest degree against a job's stated minimum.
type EducationLevel string

// Education levels, lowest to highest.
const (
	EducationNone      EducationLevel = "none"
	EducationDiploma   EducationLevel = "diploma"
	EducationBachelor  EducationLevel = "bachelor"
	EducationMaster    EducationLevel = "master"
	EducationDoctorate EducationLevel = "doctorate"
)

// educationRank maps each level to its position on the ordinal scale.
var educationRank = map[EducationLevel]int{
	EducationNone:      0,
	EducationDiploma:   1,
	EducationBachelor:  2,
	EducationMaster:    3,
	EducationDoctorate: 4,
}

// degreeAliases maps degree-name tokens found in free-form degree strings to
// their level on the ordinal scale.
var degreeAliases = map[string]EducationLevel{
	"phd":       EducationDoctorate,
	"doctorate": EducationDoctorate,
	"doctoral":  EducationDoctorate,
	"master":    EducationMaster,
	"masters":   EducationMaster,
	"mtech":     EducationMaster,
	"mba":       EducationMaster,
	"msc":       EducationMaster,
	"mcom":      EducationMaster,
	"ma":        EducationMaster,
	"bachelor":  EducationBachelor,
	"bachelors": EducationBachelor,
	"btech":     EducationBachelor,
	"be":        EducationBachelor,
	"bsc":       EducationBachelor,
	"bcom":      EducationBachelor,
	"ba":        EducationBachelor,
	"bca":       EducationBachelor,
	"diploma":   EducationDiploma,
}

// Rank returns the position of the level on the ordinal scale. Unknown levels
// rank as none.
func (l EducationLevel) Rank() int {
	return educationRank[l]
}

// Valid reports whether the level is one of the five known values.
func (l EducationLevel) Valid() bool {
	_, ok := educationRank[l]
	return ok
}

// ParseEducationLevel resolves a free-form degree string ("B.Tech", "MSc in
// Statistics", "PhD") to its level on the ordinal scale. Tokens are compared
// whole, not as substrings, so "ba" in "barista" does not count. When several
// tokens resolve, the highest level wins. Unrecognized strings parse as none.
func ParseEducationLevel(degree string) EducationLevel {
	cleaned := strings.ToLower(degree)
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	level := EducationNone
	for _, token := range strings.FieldsFunc(cleaned, func(r rune) bool {
		return !('a' <= r && r <= 'z')
	}) {
		if l, ok := degreeAliases[token]; ok && l.Rank() > level.Rank() {
			level = l
		}
	}
	return level
}
