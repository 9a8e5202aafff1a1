// Package registry holds the static per-country reference data used to
// generate synthetic identities. Tables are built once at package init and
// never written afterwards, so every value returned here is safe to share
// between goroutines. Callers must treat returned slices as read-only.
package registry

import (
	"regexp"
	"strings"
)

// Code is an upper-case country code.
type Code string

// Supported countries.
const (
	CN Code = "CN"
	US Code = "US"
	UK Code = "UK"
	JP Code = "JP"
	CA Code = "CA"
	AU Code = "AU"
)

// Default is the country used for empty or unrecognized codes.
const Default = CN

// Name is one entry of a name pool. Latin is the romanized form used for
// email addresses and social handles; for Western pools it equals Local.
type Name struct {
	Local string
	Latin string
}

// Region is a first-level subdivision (province, state, prefecture).
type Region struct {
	Name  string
	Latin string
	// Code is the administrative code: the 2-digit division code for CN,
	// the postal abbreviation for US/CA/AU, the prefecture number for JP and
	// the nation code for UK.
	Code string
	// PostalPrefix constrains the leading characters of generated postcodes.
	PostalPrefix string
	Cities       []string
}

// Format describes the structure of a generated document number.
type Format struct {
	Pattern  *regexp.Regexp
	Prefixes []string
	Digits   int
}

// Match reports whether s has the structure described by f.
func (f Format) Match(s string) bool {
	if f.Pattern == nil {
		return s != ""
	}
	return f.Pattern.MatchString(s)
}

// OccupationCategory groups job titles under a selectable category.
type OccupationCategory struct {
	Name   string
	Titles []string
}

// LicenseRule describes a driver's license number: Letters upper-case
// letters followed by Digits digits.
type LicenseRule struct {
	Letters int
	Digits  int
}

// Country is the reference data for one supported country.
type Country struct {
	Code        Code
	Name        string
	Nationality string

	Surnames    []Name
	MaleNames   []Name
	FemaleNames []Name

	Regions        []Region
	Streets        []string
	StreetSuffixes []string

	IDFormat       Format
	PhoneFormat    Format
	PassportFormat Format

	OccupationCategories []OccupationCategory
	// Occupations is the generic vocabulary. Empty means the generator
	// falls back to a language-neutral job title source.
	Occupations     []string
	EducationLevels []string
	EmailProviders  []string

	// LicenseRules is keyed by region code; DefaultLicense covers the rest.
	LicenseRules   map[string]LicenseRule
	DefaultLicense LicenseRule
}

// placeholderRegion stands in when a country has no region data.
var placeholderRegion = Region{Name: "Central", Code: "00", Cities: []string{"Capital City"}}

var countries = map[Code]*Country{
	CN: &china,
	US: &unitedStates,
	UK: &unitedKingdom,
	JP: &japan,
	CA: &canada,
	AU: &australia,
}

// order fixes the listing order of Codes.
var order = []Code{CN, US, UK, JP, CA, AU}

// aliases maps alternative spellings onto supported codes.
var aliases = map[string]Code{
	"GB":             UK,
	"CHINA":          CN,
	"中国":             CN,
	"USA":            US,
	"UNITED STATES":  US,
	"UNITED KINGDOM": UK,
	"JAPAN":          JP,
	"日本":             JP,
	"CANADA":         CA,
	"AUSTRALIA":      AU,
}

// Codes returns the supported country codes in display order.
func Codes() []Code {
	out := make([]Code, len(order))
	copy(out, order)
	return out
}

// Supported reports whether code names a supported country.
func Supported(code Code) bool {
	_, ok := countries[code]
	return ok
}

// ParseCode normalizes s to a supported code. It accepts codes in any case
// and a few common country names. ok is false when s is not recognized, in
// which case Default is returned.
func ParseCode(s string) (Code, bool) {
	key := strings.ToUpper(strings.TrimSpace(s))
	if c := Code(key); Supported(c) {
		return c, true
	}
	if c, found := aliases[key]; found {
		return c, true
	}
	return Default, false
}

// Lookup returns the reference data for code. Unknown codes resolve to the
// Default country; this is the only fallback point for country data.
func Lookup(code Code) Country {
	if c, ok := countries[code]; ok {
		return *c
	}
	return *countries[Default]
}

// GivenNames returns the given-name pool for the requested gender.
func (c Country) GivenNames(female bool) []Name {
	if female {
		if len(c.FemaleNames) > 0 {
			return c.FemaleNames
		}
		return c.MaleNames
	}
	if len(c.MaleNames) > 0 {
		return c.MaleNames
	}
	return c.FemaleNames
}

// RegionList returns the country's regions, or a single placeholder region
// when none are defined.
func (c Country) RegionList() []Region {
	if len(c.Regions) == 0 {
		return []Region{placeholderRegion}
	}
	return c.Regions
}

// Region finds a region by local name, Latin name or code. Matching ignores
// case, surrounding space and administrative suffixes, so "北京" matches
// "北京市" and "tokyo" matches "東京都".
func (c Country) Region(query string) (Region, bool) {
	raw := strings.ToLower(strings.TrimSpace(query))
	if raw == "" {
		return Region{}, false
	}
	q := normalizeRegion(raw)
	for _, r := range c.Regions {
		if strings.EqualFold(r.Code, raw) || strings.EqualFold(r.Latin, raw) {
			return r, true
		}
		name := strings.ToLower(r.Name)
		short := normalizeRegion(name)
		if name == raw || short == raw || short == q {
			return r, true
		}
	}
	return Region{}, false
}

// License returns the driver's license rule for a region code.
func (c Country) License(regionCode string) LicenseRule {
	if r, ok := c.LicenseRules[regionCode]; ok {
		return r
	}
	return c.DefaultLicense
}

// CityNames returns the region's cities, falling back to the region name.
func (r Region) CityNames() []string {
	if len(r.Cities) == 0 {
		return []string{r.Name}
	}
	return r.Cities
}

var regionSuffixes = []string{"特别行政区", "维吾尔自治区", "壮族自治区", "回族自治区", "自治区", "省", "市", "都", "府", "県"}

func normalizeRegion(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, suf := range regionSuffixes {
		if trimmed := strings.TrimSuffix(s, suf); trimmed != s && trimmed != "" {
			return trimmed
		}
	}
	return s
}

// latin builds a pool whose local and Latin forms coincide.
func latin(names ...string) []Name {
	out := make([]Name, len(names))
	for i, n := range names {
		out[i] = Name{Local: n, Latin: n}
	}
	return out
}

// pairs builds a pool from alternating local/Latin values.
func pairs(kv ...string) []Name {
	out := make([]Name, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, Name{Local: kv[i], Latin: kv[i+1]})
	}
	return out
}
