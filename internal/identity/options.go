package identity

import (
	"strings"

	"github.com/zarlcorp/zident/internal/registry"
)

// age bounds
const (
	DefaultAgeMin = 18
	DefaultAgeMax = 70

	minAge = 1
	maxAge = 120
)

// Options constrains a generated identity. The zero value generates a CN
// identity of random gender aged 18 to 70 with every optional field.
type Options struct {
	Country registry.Code
	Gender  Gender

	// AgeMin and AgeMax bound the age in years. Zero selects the default.
	AgeMin int
	AgeMax int

	// Region is a subdivision name or code. Unknown values pick a random
	// region of the country.
	Region string

	// OccupationCategory and EducationLevel are honored when they match the
	// country's vocabulary and ignored otherwise.
	OccupationCategory string
	EducationLevel     string

	OmitAvatar      bool
	OmitCreditCard  bool
	OmitSocialMedia bool
}

// Normalize resolves defaults and repairs out-of-range values. Unknown
// countries become registry.Default, unknown genders become random, age
// bounds are clamped to [1,120] and swapped when inverted.
func (o Options) Normalize() Options {
	o.Country, _ = registry.ParseCode(string(o.Country))

	if g, ok := ParseGender(string(o.Gender)); ok {
		o.Gender = g
	} else {
		o.Gender = ""
	}

	if o.AgeMin == 0 {
		o.AgeMin = DefaultAgeMin
		if o.AgeMax > 0 && o.AgeMax < o.AgeMin {
			o.AgeMin = o.AgeMax
		}
	}
	if o.AgeMax == 0 {
		o.AgeMax = max(DefaultAgeMax, o.AgeMin)
	}
	o.AgeMin = clampAge(o.AgeMin)
	o.AgeMax = clampAge(o.AgeMax)
	if o.AgeMin > o.AgeMax {
		o.AgeMin, o.AgeMax = o.AgeMax, o.AgeMin
	}

	o.Region = strings.TrimSpace(o.Region)
	o.OccupationCategory = strings.TrimSpace(o.OccupationCategory)
	o.EducationLevel = strings.TrimSpace(o.EducationLevel)
	return o
}

func clampAge(n int) int {
	return min(max(n, minAge), maxAge)
}
