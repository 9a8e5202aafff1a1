package identity

import (
	"testing"
	"time"
)

func TestResidentIDCheck(t *testing.T) {
	tests := []struct {
		name string
		body string
		want byte
		ok   bool
	}{
		// published sample numbers
		{"digit check", "11010519491231002", 'X', true},
		{"zero check", "44052418800101001", '4', true},
		{"too short", "1101051949123100", 0, false},
		{"not digits", "1101051949123100A", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResidentIDCheck(tt.body)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("check = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidResidentID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"11010519491231002X", true},
		{"440524188001010014", true},
		{"110105194912310021", false},
		{"11010519491231002", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidResidentID(tt.id); got != tt.want {
			t.Errorf("ValidResidentID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestLuhn(t *testing.T) {
	tests := []struct {
		number string
		want   bool
	}{
		{"4111111111111111", true},
		{"5555555555554444", true},
		{"378282246310005", true},
		{"6011111111111117", true},
		{"4111111111111112", false},
		{"4111-1111", false},
		{"0", false},
	}
	for _, tt := range tests {
		if got := Luhn(tt.number); got != tt.want {
			t.Errorf("Luhn(%q) = %v, want %v", tt.number, got, tt.want)
		}
	}
}

func TestLuhnDigit(t *testing.T) {
	for _, n := range []string{"4111111111111111", "378282246310005", "6011111111111117"} {
		payload := n[:len(n)-1]
		if got := luhnDigit(payload); got != n[len(n)-1] {
			t.Errorf("luhnDigit(%q) = %q, want %q", payload, got, n[len(n)-1])
		}
	}
}

func TestCreditCardIssuerRules(t *testing.T) {
	g := newTestGenerator(30)
	seen := make(map[string]bool)

	for range 2000 {
		c := g.creditCard(testNow)
		seen[c.Type] = true

		if !Luhn(c.Number) {
			t.Fatalf("%s number %q fails Luhn", c.Type, c.Number)
		}

		switch c.Type {
		case "Visa":
			if c.Number[0] != '4' || len(c.Number) != 16 {
				t.Errorf("visa %q: want prefix 4 and 16 digits", c.Number)
			}
		case "American Express":
			if p := c.Number[:2]; (p != "34" && p != "37") || len(c.Number) != 15 {
				t.Errorf("amex %q: want prefix 34/37 and 15 digits", c.Number)
			}
			if len(c.CVV) != 4 {
				t.Errorf("amex cvv %q: want 4 digits", c.CVV)
			}
		case "MasterCard":
			if len(c.Number) != 16 {
				t.Errorf("mastercard %q: want 16 digits", c.Number)
			}
		case "Discover":
			if len(c.Number) != 16 || c.Number[0] != '6' {
				t.Errorf("discover %q: want prefix 6 and 16 digits", c.Number)
			}
		default:
			t.Fatalf("unknown card type %q", c.Type)
		}
		if c.Type != "American Express" && len(c.CVV) != 3 {
			t.Errorf("%s cvv %q: want 3 digits", c.Type, c.CVV)
		}

		exp, err := time.Parse("01/06", c.Expiration)
		if err != nil {
			t.Fatalf("expiration %q: %v", c.Expiration, err)
		}
		if years := exp.Year() - testNow.Year(); years < 1 || years > 5 {
			t.Errorf("expiration %q is %d years ahead", c.Expiration, years)
		}
	}

	if len(seen) != len(issuers) {
		t.Errorf("expected every issuer, saw %v", seen)
	}
}
