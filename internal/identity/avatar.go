package identity

import (
	"strconv"
	"strings"
)

// avatar fills a random service template. Placeholders: {seed} a random hex
// token, {gender} male/female, {gender_plural} men/women, {n} 0-99.
func (g *Generator) avatar(gender Gender) string {
	if len(g.avatars) == 0 {
		return ""
	}
	tmpl := g.pick(g.avatars)

	plural := "men"
	if gender == Female {
		plural = "women"
	}
	r := strings.NewReplacer(
		"{seed}", strconv.FormatUint(g.rng.Uint64(), 16),
		"{gender_plural}", plural,
		"{gender}", string(gender),
		"{n}", strconv.Itoa(g.rng.IntN(100)),
	)
	return r.Replace(tmpl)
}
