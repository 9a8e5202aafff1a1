package identity

import (
	"fmt"
	"strconv"
	"time"
)

// creditCard picks an issuer at random and builds a Luhn-valid number with
// one of the issuer's prefixes, an expiry one to five years after now and a
// CVV of the issuer's length.
func (g *Generator) creditCard(now time.Time) CreditCard {
	is := issuers[g.rng.IntN(len(issuers))]
	r := is.prefixes[g.rng.IntN(len(is.prefixes))]
	prefix := strconv.Itoa(g.between(r.lo, r.hi))

	payload := prefix + g.digits(is.length-len(prefix)-1)
	number := payload + string(luhnDigit(payload))

	year := now.Year() + g.between(1, 5)
	month := g.between(1, 12)

	return CreditCard{
		Number:     number,
		Expiration: fmt.Sprintf("%02d/%02d", month, year%100),
		CVV:        g.digits(is.cvv),
		Type:       is.name,
	}
}
