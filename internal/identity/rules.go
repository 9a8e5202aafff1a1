package identity

import (
	"fmt"
	"strings"

	"github.com/zarlcorp/zident/internal/registry"
)

// countryRules builds the fields whose structure differs between countries.
// Each supported country has exactly one implementation; behavior shared
// between countries lives in the small embedded types below.
type countryRules interface {
	name(g *Generator, d draft) personName
	idNumber(g *Generator, d draft) string
	phone(g *Generator, d draft) string
	address(g *Generator, d draft) string
	driversLicense(g *Generator, d draft) string
}

var rules = map[registry.Code]countryRules{
	registry.CN: chinaRules{},
	registry.US: usRules{},
	registry.UK: ukRules{},
	registry.JP: japanRules{surnameFirst: surnameFirst{sep: " "}},
	registry.CA: canadaRules{},
	registry.AU: australiaRules{},
}

// rulesFor returns the rules of code. Unknown codes take the registry's
// fallback country.
func rulesFor(code registry.Code) countryRules {
	return rules[registry.Lookup(code).Code]
}

// personName is a composed name plus the parts email and social handles are
// derived from.
type personName struct {
	Full    string
	Given   registry.Name
	Surname registry.Name
}

// givenFirst writes one or two given names followed by the surname.
type givenFirst struct{}

func (givenFirst) name(g *Generator, d draft) personName {
	pool := d.country.GivenNames(d.gender == Female)
	given := g.pickName(pool)
	surname := g.pickName(d.country.Surnames)

	full := given.Local
	if g.rng.IntN(5) == 0 {
		if middle := g.pickName(pool); middle.Local != given.Local {
			full += " " + middle.Local
		}
	}
	return personName{Full: full + " " + surname.Local, Given: given, Surname: surname}
}

// surnameFirst writes the surname, sep, then the given name.
type surnameFirst struct {
	sep string
}

func (r surnameFirst) name(g *Generator, d draft) personName {
	surname := g.pickName(d.country.Surnames)
	given := g.pickName(d.country.GivenNames(d.gender == Female))
	return personName{Full: surname.Local + r.sep + given.Local, Given: given, Surname: surname}
}

type noLicense struct{}

func (noLicense) driversLicense(*Generator, draft) string { return "" }

// nanpPhone formats North American numbers as (NXX) NXX-XXXX.
type nanpPhone struct{}

func (nanpPhone) phone(g *Generator, _ draft) string {
	return fmt.Sprintf("(%d%s) %d%s-%s",
		g.between(2, 9), g.digits(2),
		g.between(2, 9), g.digits(2),
		g.digits(4))
}

type chinaRules struct {
	noLicense
}

// name concatenates the surname with one or two given-name characters.
func (chinaRules) name(g *Generator, d draft) personName {
	pool := d.country.GivenNames(d.gender == Female)
	surname := g.pickName(d.country.Surnames)
	given := g.pickName(pool)
	if g.rng.IntN(2) == 0 {
		second := g.pickName(pool)
		given = registry.Name{Local: given.Local + second.Local, Latin: given.Latin + second.Latin}
	}
	return personName{Full: surname.Local + given.Local, Given: given, Surname: surname}
}

// idNumber builds the 18-digit resident identity number: a 6-digit
// administrative code, the birth date, a 3-digit sequence whose last digit
// is odd for men, and the MOD 11-2 check character.
func (chinaRules) idNumber(g *Generator, d draft) string {
	admin := d.region.Code + fmt.Sprintf("%02d%02d", g.between(1, 20), g.between(1, 18))
	seq := g.rng.IntN(1000)
	if (seq%2 == 1) != (d.gender == Male) {
		seq = (seq + 1) % 1000
	}
	body := admin + d.birth.Format("20060102") + fmt.Sprintf("%03d", seq)
	check, _ := ResidentIDCheck(body)
	return body + string(check)
}

func (chinaRules) phone(g *Generator, d draft) string {
	f := d.country.PhoneFormat
	return g.pick(f.Prefixes) + g.digits(f.Digits)
}

func (chinaRules) address(g *Generator, d draft) string {
	var b strings.Builder
	b.WriteString(d.region.Name)
	if city := g.pick(d.region.CityNames()); city != d.region.Name {
		b.WriteString(city)
	}
	b.WriteString(g.streetName(d.country))
	fmt.Fprintf(&b, "%d号", g.between(1, 999))
	fmt.Fprintf(&b, "%d栋%d单元%d%02d室", g.between(1, 30), g.between(1, 6), g.between(1, 32), g.between(1, 4))
	return b.String()
}

type usRules struct {
	givenFirst
	nanpPhone
}

func (usRules) idNumber(g *Generator, _ draft) string {
	return g.digits(3) + "-" + g.digits(2) + "-" + g.digits(4)
}

func (usRules) address(g *Generator, d draft) string {
	return fmt.Sprintf("%s, %s, %s %s",
		g.streetLine(d.country, 100, 9999),
		g.pick(d.region.CityNames()),
		d.region.Code,
		g.postal(d.region.PostalPrefix, 5))
}

// driversLicense follows the state's letters-then-digits rule.
func (usRules) driversLicense(g *Generator, d draft) string {
	rule := d.country.License(d.region.Code)
	return g.chars(rule.Letters, upperChars) + g.digits(rule.Digits)
}

// ukPostcodeLetters may appear in the inward part of a postcode.
const ukPostcodeLetters = "ABDEFGHJLNPQRSTUWXYZ"

type ukRules struct {
	givenFirst
	noLicense
}

// idNumber formats a National Insurance number: AA 12 34 56 A.
func (ukRules) idNumber(g *Generator, _ draft) string {
	return fmt.Sprintf("%s %s %s %s %s",
		g.chars(2, registry.NIPrefixLetters),
		g.digits(2), g.digits(2), g.digits(2),
		g.chars(1, registry.NISuffixLetters))
}

func (ukRules) phone(g *Generator, _ draft) string {
	return "+44 7" + g.digits(3) + " " + g.digits(6)
}

func (ukRules) address(g *Generator, d draft) string {
	area := d.region.PostalPrefix
	if area == "" {
		area = g.chars(2, upperChars)
	}
	postcode := fmt.Sprintf("%s%d %d%s", area, g.between(1, 20), g.rng.IntN(10), g.chars(2, ukPostcodeLetters))
	return fmt.Sprintf("%s, %s %s", g.streetLine(d.country, 1, 250), g.pick(d.region.CityNames()), postcode)
}

type japanRules struct {
	surnameFirst
	noLicense
}

// idNumber is a 12-digit individual number.
func (japanRules) idNumber(g *Generator, _ draft) string {
	return g.digits(12)
}

func (japanRules) phone(g *Generator, d draft) string {
	return "+81 " + g.pick(d.country.PhoneFormat.Prefixes) + "-" + g.digits(4) + "-" + g.digits(4)
}

// address starts with the 〒 postal code and lists prefecture, city, town
// and block numbers.
func (japanRules) address(g *Generator, d draft) string {
	zip := g.postal(d.region.PostalPrefix, 7)
	city := g.pick(d.region.CityNames())
	if city == d.region.Name {
		city = ""
	}
	return fmt.Sprintf("〒%s-%s %s%s%s%d-%d-%d",
		zip[:3], zip[3:],
		d.region.Name, city, g.streetName(d.country),
		g.between(1, 5), g.between(1, 30), g.between(1, 20))
}

type canadaRules struct {
	givenFirst
	nanpPhone
	noLicense
}

// idNumber formats a Social Insurance Number: 123-456-789.
func (canadaRules) idNumber(g *Generator, _ draft) string {
	return g.digits(3) + "-" + g.digits(3) + "-" + g.digits(3)
}

// address ends with an A1A 1A1 postal code whose first letter matches the
// province.
func (canadaRules) address(g *Generator, d draft) string {
	first := d.region.PostalPrefix
	if first == "" {
		first = g.chars(1, registry.PostalLetters)
	}
	postcode := fmt.Sprintf("%s%d%s %d%s%d",
		first[:1], g.rng.IntN(10), g.chars(1, registry.PostalLetters),
		g.rng.IntN(10), g.chars(1, registry.PostalLetters), g.rng.IntN(10))
	return fmt.Sprintf("%s, %s, %s %s",
		g.streetLine(d.country, 1, 9999), g.pick(d.region.CityNames()), d.region.Code, postcode)
}

type australiaRules struct {
	givenFirst
	noLicense
}

// idNumber is a Tax File Number of nine or eight digits.
func (australiaRules) idNumber(g *Generator, _ draft) string {
	if g.rng.IntN(2) == 0 {
		return g.digits(3) + " " + g.digits(3) + " " + g.digits(3)
	}
	return g.digits(3) + " " + g.digits(2) + " " + g.digits(3)
}

func (australiaRules) phone(g *Generator, _ draft) string {
	return "+61 4" + g.digits(2) + " " + g.digits(3) + " " + g.digits(3)
}

func (australiaRules) address(g *Generator, d draft) string {
	return fmt.Sprintf("%s, %s %s %s",
		g.streetLine(d.country, 1, 400), g.pick(d.region.CityNames()), d.region.Code,
		g.postal(d.region.PostalPrefix, 4))
}

// pickName draws from pool, degrading to a placeholder when it is empty.
func (g *Generator) pickName(pool []registry.Name) registry.Name {
	if len(pool) == 0 {
		return registry.Name{Local: "Alex", Latin: "Alex"}
	}
	return pool[g.rng.IntN(len(pool))]
}

func (g *Generator) streetName(c registry.Country) string {
	if len(c.Streets) == 0 {
		return "Main"
	}
	return g.pick(c.Streets)
}

// streetLine returns "<number> <street> <suffix>" with the number in [lo, hi].
func (g *Generator) streetLine(c registry.Country, lo, hi int) string {
	line := fmt.Sprintf("%d %s", g.between(lo, hi), g.streetName(c))
	if len(c.StreetSuffixes) > 0 {
		line += " " + g.pick(c.StreetSuffixes)
	}
	return line
}

// postal returns an n-digit code starting with prefix.
func (g *Generator) postal(prefix string, n int) string {
	if len(prefix) >= n {
		return prefix[:n]
	}
	return prefix + g.digits(n-len(prefix))
}
