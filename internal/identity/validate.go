package identity

import (
	"errors"
	"fmt"

	"github.com/zarlcorp/zident/internal/registry"
)

// ErrInvalidFormat is wrapped by every error Validate returns.
var ErrInvalidFormat = errors.New("invalid format")

// Validate checks that the identity's document numbers and phone have the
// structure of its country. For CN it also verifies the MOD 11-2 check
// character and that the sequence parity matches the gender.
func Validate(id Identity) error {
	if !registry.Supported(id.Country) {
		return fmt.Errorf("country %q: %w", id.Country, ErrInvalidFormat)
	}
	c := registry.Lookup(id.Country)

	var errs []error
	check := func(field, value string, f registry.Format) {
		if !f.Match(value) {
			errs = append(errs, fmt.Errorf("%s %q: %w", field, value, ErrInvalidFormat))
		}
	}
	check("id_number", id.IDNumber, c.IDFormat)
	check("passport_number", id.PassportNumber, c.PassportFormat)
	check("phone", id.Phone, c.PhoneFormat)

	if id.Country == registry.CN && c.IDFormat.Match(id.IDNumber) {
		if !ValidResidentID(id.IDNumber) {
			errs = append(errs, fmt.Errorf("id_number %q: checksum: %w", id.IDNumber, ErrInvalidFormat))
		}
		male := (id.IDNumber[16]-'0')%2 == 1
		if male != (id.Gender == Male) {
			errs = append(errs, fmt.Errorf("id_number %q: gender digit disagrees with %s: %w", id.IDNumber, id.Gender, ErrInvalidFormat))
		}
	}

	if id.CreditCard != nil && !Luhn(id.CreditCard.Number) {
		errs = append(errs, fmt.Errorf("credit card %q: %w", id.CreditCard.Number, ErrInvalidFormat))
	}

	return errors.Join(errs...)
}
