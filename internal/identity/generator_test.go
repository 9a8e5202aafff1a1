package identity

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/zarlcorp/zident/internal/registry"
)

var testNow = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestGenerator(seed uint64) *Generator {
	return New(WithSeed(seed), WithClock(func() time.Time { return testNow }))
}

func TestGenerate(t *testing.T) {
	g := newTestGenerator(1)
	id := g.Generate(Options{})

	tests := []struct {
		name  string
		check func() bool
	}{
		{"ID is uuid", func() bool {
			return regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`).MatchString(id.ID)
		}},
		{"defaults to CN", func() bool { return id.Country == registry.CN }},
		{"Nationality", func() bool { return id.Nationality == "Chinese" }},
		{"Name non-empty", func() bool { return id.Name != "" }},
		{"Gender set", func() bool { return id.Gender == Male || id.Gender == Female }},
		{"BirthDate non-zero", func() bool { return !id.BirthDate.IsZero() }},
		{"IDNumber length", func() bool { return len(id.IDNumber) == 18 }},
		{"Passport", func() bool { return regexp.MustCompile(`^E\d{8}$`).MatchString(id.PassportNumber) }},
		{"no license outside US", func() bool { return id.DriversLicense == "" }},
		{"Address non-empty", func() bool { return id.Address != "" }},
		{"Region non-empty", func() bool { return id.Region != "" }},
		{"Email has @ sign", func() bool { return strings.Contains(id.Email, "@") }},
		{"Occupation non-empty", func() bool { return id.Occupation != "" }},
		{"Education non-empty", func() bool { return id.Education != "" }},
		{"Avatar by default", func() bool { return id.AvatarURL != "" }},
		{"Card by default", func() bool { return id.CreditCard != nil }},
		{"Social by default", func() bool { return len(id.SocialMedia) >= 2 }},
		{"not favorite", func() bool { return !id.Favorite }},
		{"CreatedAt from clock", func() bool { return id.CreatedAt.Equal(testNow) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.check() {
				t.Errorf("check failed for identity: %+v", id)
			}
		})
	}
}

func TestGenerateChineseMaleExample(t *testing.T) {
	g := newTestGenerator(2)
	for range 200 {
		id := g.Generate(Options{Country: "CN", Gender: "男", AgeMin: 30, AgeMax: 30})

		if id.Gender != Male {
			t.Fatalf("gender = %q, want male", id.Gender)
		}
		if got := id.BirthDate.Year(); got != testNow.Year()-30 {
			t.Errorf("birth year = %d, want %d", got, testNow.Year()-30)
		}
		if len(id.IDNumber) != 18 {
			t.Fatalf("id number %q: length %d", id.IDNumber, len(id.IDNumber))
		}
		if !ValidResidentID(id.IDNumber) {
			t.Errorf("id number %q fails MOD 11-2", id.IDNumber)
		}
		if (id.IDNumber[16]-'0')%2 != 1 {
			t.Errorf("id number %q: 17th digit should be odd for male", id.IDNumber)
		}
	}
}

func TestGenerateUSWithoutCardExample(t *testing.T) {
	g := newTestGenerator(3)
	id := g.Generate(Options{Country: "US", OmitCreditCard: true})

	data, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := m["credit_card"]; ok {
		t.Errorf("credit_card key present: %s", data)
	}
	if !regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`).MatchString(id.IDNumber) {
		t.Errorf("ssn %q has wrong shape", id.IDNumber)
	}
}

func TestChineseIDGenderParity(t *testing.T) {
	g := newTestGenerator(4)
	for range 1000 {
		id := g.Generate(Options{Country: registry.CN})
		if !ValidResidentID(id.IDNumber) {
			t.Fatalf("id number %q fails MOD 11-2", id.IDNumber)
		}
		odd := (id.IDNumber[16]-'0')%2 == 1
		if odd != (id.Gender == Male) {
			t.Fatalf("id number %q parity disagrees with gender %s", id.IDNumber, id.Gender)
		}
	}
}

func TestChineseIDEmbedsRegionAndBirthDate(t *testing.T) {
	g := newTestGenerator(5)
	for range 100 {
		id := g.Generate(Options{Country: registry.CN, Region: "浙江"})
		if id.Region != "浙江省" {
			t.Fatalf("region = %q, want 浙江省", id.Region)
		}
		if !strings.HasPrefix(id.IDNumber, "33") {
			t.Errorf("id number %q should start with the Zhejiang code", id.IDNumber)
		}
		if got, want := id.IDNumber[6:14], id.BirthDate.Format("20060102"); got != want {
			t.Errorf("embedded birth date %s, want %s", got, want)
		}
	}
}

func TestFormatConformance(t *testing.T) {
	g := newTestGenerator(6)
	for _, code := range registry.Codes() {
		t.Run(string(code), func(t *testing.T) {
			c := registry.Lookup(code)
			for range 300 {
				id := g.Generate(Options{Country: code})
				if !c.IDFormat.Match(id.IDNumber) {
					t.Errorf("id number %q does not match %s", id.IDNumber, c.IDFormat.Pattern)
				}
				if !c.PassportFormat.Match(id.PassportNumber) {
					t.Errorf("passport %q does not match %s", id.PassportNumber, c.PassportFormat.Pattern)
				}
				if !c.PhoneFormat.Match(id.Phone) {
					t.Errorf("phone %q does not match %s", id.Phone, c.PhoneFormat.Pattern)
				}
				if err := Validate(id); err != nil {
					t.Errorf("validate: %v", err)
				}
			}
		})
	}
}

func TestUKNationalInsuranceLetters(t *testing.T) {
	g := newTestGenerator(7)
	for range 500 {
		id := g.Generate(Options{Country: registry.UK})
		if strings.ContainsAny(id.IDNumber[:2], "DFIQUV") {
			t.Fatalf("NI number %q uses an excluded prefix letter", id.IDNumber)
		}
		if !strings.Contains("ABCD", id.IDNumber[len(id.IDNumber)-1:]) {
			t.Fatalf("NI number %q has a bad suffix", id.IDNumber)
		}
	}
}

func TestAustralianTFNShapes(t *testing.T) {
	g := newTestGenerator(8)
	nine := regexp.MustCompile(`^\d{3} \d{3} \d{3}$`)
	eight := regexp.MustCompile(`^\d{3} \d{2} \d{3}$`)
	var sawNine, sawEight bool
	for range 200 {
		id := g.Generate(Options{Country: registry.AU})
		switch {
		case nine.MatchString(id.IDNumber):
			sawNine = true
		case eight.MatchString(id.IDNumber):
			sawEight = true
		default:
			t.Fatalf("TFN %q has neither shape", id.IDNumber)
		}
	}
	if !sawNine || !sawEight {
		t.Errorf("expected both TFN shapes, nine=%v eight=%v", sawNine, sawEight)
	}
}

func TestAgeRangeContainment(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		wantLo   int
		wantHi   int
	}{
		{"narrow", 25, 30, 25, 30},
		{"single year", 40, 40, 40, 40},
		{"defaults", 0, 0, DefaultAgeMin, DefaultAgeMax},
		{"inverted", 60, 20, 20, 60},
		{"clamped", -5, 500, 1, 120},
	}

	g := newTestGenerator(9)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 1000 {
				id := g.Generate(Options{AgeMin: tt.min, AgeMax: tt.max, OmitAvatar: true, OmitCreditCard: true, OmitSocialMedia: true})
				age := testNow.Year() - id.BirthDate.Year()
				if age < tt.wantLo || age > tt.wantHi {
					t.Fatalf("age %d outside [%d, %d]", age, tt.wantLo, tt.wantHi)
				}
			}
		})
	}
}

// Days are drawn from 1-28 so no month can overflow.
func TestBirthDayNeverAfter28(t *testing.T) {
	g := newTestGenerator(10)
	months := make(map[time.Month]bool)
	for range 2000 {
		id := g.Generate(Options{OmitAvatar: true, OmitCreditCard: true, OmitSocialMedia: true})
		if d := id.BirthDate.Day(); d < 1 || d > 28 {
			t.Fatalf("birth day %d outside [1, 28]", d)
		}
		months[id.BirthDate.Month()] = true
	}
	if len(months) != 12 {
		t.Errorf("expected all 12 months, saw %d", len(months))
	}
}

func TestRequestedGender(t *testing.T) {
	g := newTestGenerator(11)
	for _, code := range registry.Codes() {
		for range 50 {
			id := g.Generate(Options{Country: code, Gender: Female})
			if id.Gender != Female {
				t.Fatalf("%s: gender = %q, want female", code, id.Gender)
			}
		}
	}
}

func TestUnknownCountryFallsBackToChina(t *testing.T) {
	g := newTestGenerator(12)
	id := g.Generate(Options{Country: "ZZ"})
	if id.Country != registry.CN {
		t.Fatalf("country = %q, want CN", id.Country)
	}
	if !ValidResidentID(id.IDNumber) {
		t.Errorf("id number %q should be a resident ID", id.IDNumber)
	}
}

func TestUnknownRegionPicksKnownRegion(t *testing.T) {
	g := newTestGenerator(13)
	c := registry.Lookup(registry.US)
	for range 50 {
		id := g.Generate(Options{Country: registry.US, Region: "Atlantis"})
		if _, ok := c.Region(id.Region); !ok {
			t.Fatalf("region %q is not a US state", id.Region)
		}
	}
}

func TestNameComposition(t *testing.T) {
	g := newTestGenerator(14)
	for range 100 {
		cn := g.Generate(Options{Country: registry.CN})
		if strings.Contains(cn.Name, " ") {
			t.Errorf("CN name %q should have no separator", cn.Name)
		}
		if n := len([]rune(cn.Name)); n < 2 || n > 4 {
			t.Errorf("CN name %q has %d characters", cn.Name, n)
		}

		jp := g.Generate(Options{Country: registry.JP})
		if strings.Count(jp.Name, " ") != 1 {
			t.Errorf("JP name %q should join surname and given name with one space", jp.Name)
		}

		us := g.Generate(Options{Country: registry.US})
		if parts := strings.Fields(us.Name); len(parts) < 2 || len(parts) > 3 {
			t.Errorf("US name %q should be given name(s) then surname", us.Name)
		}
	}
}

func TestDriversLicense(t *testing.T) {
	tests := []struct {
		region string
		re     *regexp.Regexp
	}{
		{"California", regexp.MustCompile(`^[A-Z]\d{7}$`)},
		{"TX", regexp.MustCompile(`^\d{8}$`)},
		{"Florida", regexp.MustCompile(`^[A-Z]\d{12}$`)},
		{"New York", regexp.MustCompile(`^\d{9}$`)},
		{"Ohio", regexp.MustCompile(`^[A-Z]{2}\d{6}$`)},
	}

	g := newTestGenerator(15)
	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			for range 20 {
				id := g.Generate(Options{Country: registry.US, Region: tt.region})
				if !tt.re.MatchString(id.DriversLicense) {
					t.Errorf("license %q does not match %s", id.DriversLicense, tt.re)
				}
			}
		})
	}
}

func TestAddressFormats(t *testing.T) {
	tests := []struct {
		code registry.Code
		re   *regexp.Regexp
	}{
		{registry.CN, regexp.MustCompile(`号\d+栋\d+单元\d+室$`)},
		{registry.US, regexp.MustCompile(`, [A-Z]{2} \d{5}$`)},
		{registry.UK, regexp.MustCompile(` [A-Z]{1,2}\d{1,2} \d[A-Z]{2}$`)},
		{registry.JP, regexp.MustCompile(`^〒\d{3}-\d{4} `)},
		{registry.CA, regexp.MustCompile(`, [A-Z]{2} [A-Z]\d[A-Z] \d[A-Z]\d$`)},
		{registry.AU, regexp.MustCompile(` [A-Z]{2,3} \d{4}$`)},
	}

	g := newTestGenerator(16)
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			for range 50 {
				id := g.Generate(Options{Country: tt.code})
				if !tt.re.MatchString(id.Address) {
					t.Errorf("address %q does not match %s", id.Address, tt.re)
				}
			}
		})
	}
}

func TestEmailShape(t *testing.T) {
	re := regexp.MustCompile(`^[a-z0-9._]+\d{0,4}@[a-z0-9.]+\.[a-z]+$`)
	g := newTestGenerator(17)
	for _, code := range registry.Codes() {
		for range 50 {
			id := g.Generate(Options{Country: code})
			if !re.MatchString(id.Email) {
				t.Errorf("%s email %q has unexpected characters", code, id.Email)
			}
		}
	}
}

func TestEmailUsesRomanizedName(t *testing.T) {
	g := newTestGenerator(18)
	n := personName{
		Full:    "王伟",
		Given:   registry.Name{Local: "伟", Latin: "wei"},
		Surname: registry.Name{Local: "王", Latin: "wang"},
	}
	c := registry.Lookup(registry.CN)
	for range 50 {
		email := g.email(c, n)
		if !strings.Contains(email, "wang") {
			t.Errorf("email %q should contain the surname", email)
		}
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Côté", "cote"},
		{"Chloé", "chloe"},
		{"O'Brien", "obrien"},
		{"Zhang", "zhang"},
		{"王", ""},
	}
	for _, tt := range tests {
		if got := slug(tt.in); got != tt.want {
			t.Errorf("slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOccupationCategory(t *testing.T) {
	g := newTestGenerator(19)
	var trades []string
	for _, cat := range registry.Lookup(registry.US).OccupationCategories {
		if cat.Name == "trades" {
			trades = cat.Titles
		}
	}
	for range 50 {
		id := g.Generate(Options{Country: registry.US, OccupationCategory: "Trades", EducationLevel: "master's degree"})
		if !contains(trades, id.Occupation) {
			t.Errorf("occupation %q is not a trades title", id.Occupation)
		}
		if id.Education != "Master's Degree" {
			t.Errorf("education = %q, want Master's Degree", id.Education)
		}
	}
}

func TestGenericOccupation(t *testing.T) {
	g := newTestGenerator(20)
	for range 20 {
		id := g.Generate(Options{Country: registry.UK})
		if id.Occupation == "" {
			t.Fatal("UK occupation is empty")
		}
	}
}

func TestConditionalFieldsOmitted(t *testing.T) {
	g := newTestGenerator(21)
	id := g.Generate(Options{OmitAvatar: true, OmitCreditCard: true, OmitSocialMedia: true})

	data, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"avatar_url", "credit_card", "social_media", "drivers_license", "tags", "notes"} {
		if _, ok := m[key]; ok {
			t.Errorf("key %q should be absent: %s", key, data)
		}
	}
	for _, key := range []string{"id", "name", "birth_date", "id_number", "favorite", "created_at"} {
		if _, ok := m[key]; !ok {
			t.Errorf("key %q should be present: %s", key, data)
		}
	}
}

func TestSeedDeterminism(t *testing.T) {
	a := newTestGenerator(42)
	b := newTestGenerator(42)
	for _, code := range registry.Codes() {
		x := a.Generate(Options{Country: code})
		y := b.Generate(Options{Country: code})
		xj, _ := json.Marshal(x)
		yj, _ := json.Marshal(y)
		if string(xj) != string(yj) {
			t.Fatalf("same seed produced different identities:\n%s\n%s", xj, yj)
		}
	}
}

func TestGenerateRandomness(t *testing.T) {
	g := New()
	a := g.Generate(Options{})
	b := g.Generate(Options{})
	if a.ID == b.ID {
		t.Errorf("consecutive IDs should differ: got %q twice", a.ID)
	}
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
