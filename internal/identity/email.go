package identity

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/zarlcorp/zident/internal/registry"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// email returns <slug><0-9999>@<domain>. The slug joins the romanized given
// name and surname in one of a few common patterns; the domain comes from
// the general pool or the country's providers.
func (g *Generator) email(c registry.Country, n personName) string {
	given := slug(n.Given.Latin)
	surname := slug(n.Surname.Latin)

	var local string
	switch g.rng.IntN(5) {
	case 0:
		local = given + "." + surname
	case 1:
		local = given + surname
	case 2:
		local = given + "_" + surname
	case 3:
		local = initial(given) + surname
	default:
		local = surname + "." + given
	}
	local = strings.Trim(local, "._")
	if local == "" {
		local = "user"
	}

	domains := emailDomains
	if len(c.EmailProviders) > 0 {
		domains = append(append([]string(nil), emailDomains...), c.EmailProviders...)
	}
	return local + strconv.Itoa(g.rng.IntN(10000)) + "@" + g.pick(domains)
}

// slug lowercases s, strips diacritics and drops everything that is not an
// ASCII letter or digit.
func slug(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func initial(s string) string {
	if s == "" {
		return ""
	}
	return s[:1]
}
