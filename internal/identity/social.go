package identity

import (
	"fmt"
	"strconv"
)

// socialMedia returns accounts on two to four distinct platforms.
func (g *Generator) socialMedia(n personName) []SocialAccount {
	count := g.between(2, min(4, len(platforms)))
	order := g.rng.Perm(len(platforms))

	accounts := make([]SocialAccount, 0, count)
	for _, i := range order[:count] {
		p := platforms[i]
		a := SocialAccount{Platform: p.name, Username: g.handle(n)}
		if p.url != "" {
			a.URL = fmt.Sprintf(p.url, a.Username)
		}
		accounts = append(accounts, a)
	}
	return accounts
}

// handle derives a username from the name parts, sometimes with a numeric
// suffix.
func (g *Generator) handle(n personName) string {
	given := slug(n.Given.Latin)
	surname := slug(n.Surname.Latin)

	var h string
	switch g.rng.IntN(4) {
	case 0:
		h = given + surname
	case 1:
		h = given + "." + surname
	case 2:
		h = given + "_" + surname
	default:
		h = initial(given) + surname
	}
	if h == "" || h == "." || h == "_" {
		h = "user"
	}
	if g.rng.IntN(2) == 0 {
		h += strconv.Itoa(g.between(1, 999))
	}
	return h
}
