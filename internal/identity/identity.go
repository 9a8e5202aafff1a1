// Package identity generates synthetic personal records whose fields follow
// each supported country's real-world formats and checksums. Values are
// fictitious; only their structure is realistic.
package identity

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/zarlcorp/zident/internal/registry"
)

// Gender of a generated identity.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ParseGender accepts the usual English spellings and the Chinese 男/女.
// ok is false for anything else, including the empty string.
func ParseGender(s string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", "man", "男":
		return Male, true
	case "female", "f", "woman", "女":
		return Female, true
	}
	return "", false
}

// CreditCard is a card number that passes the Luhn check for its issuer.
type CreditCard struct {
	Number     string `json:"number"`
	Expiration string `json:"expiration"` // MM/YY
	CVV        string `json:"cvv"`
	Type       string `json:"type"`
}

// SocialAccount is a handle on one platform. URL is empty for platforms
// without public profile pages.
type SocialAccount struct {
	Platform string `json:"platform"`
	Username string `json:"username"`
	URL      string `json:"url,omitempty"`
}

// Identity holds a complete generated persona. The optional fields are left
// at their zero value, and therefore omitted from JSON, when their
// generation was switched off.
type Identity struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Gender         Gender          `json:"gender"`
	BirthDate      Date            `json:"birth_date"`
	IDNumber       string          `json:"id_number"`
	PassportNumber string          `json:"passport_number"`
	DriversLicense string          `json:"drivers_license,omitempty"`
	Address        string          `json:"address"`
	Region         string          `json:"region"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	Occupation     string          `json:"occupation"`
	Education      string          `json:"education"`
	Country        registry.Code   `json:"country"`
	Nationality    string          `json:"nationality"`
	CreditCard     *CreditCard     `json:"credit_card,omitempty"`
	SocialMedia    []SocialAccount `json:"social_media,omitempty"`
	AvatarURL      string          `json:"avatar_url,omitempty"`
	Favorite       bool            `json:"favorite"`
	Tags           []string        `json:"tags,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Age returns the age in whole years at now.
func (id Identity) Age(now time.Time) int {
	b := id.BirthDate.Time
	age := now.Year() - b.Year()
	if now.Month() < b.Month() || (now.Month() == b.Month() && now.Day() < b.Day()) {
		age--
	}
	return age
}

// dateLayout is the ISO calendar date format.
const dateLayout = "2006-01-02"

// Date is a calendar date encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate returns the date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
