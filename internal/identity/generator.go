package identity

import (
	"encoding/binary"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/zarlcorp/core/pkg/zcrypto"
	"github.com/zarlcorp/zident/internal/registry"
)

// DefaultMaxBatch is the largest batch GenerateMany accepts unless
// WithMaxBatch says otherwise.
const DefaultMaxBatch = 1000

// Generator produces synthetic identities from a seeded PRNG. A Generator is
// not safe for concurrent use; GenerateMany derives one child generator per
// worker instead of sharing it.
type Generator struct {
	src   *rand.ChaCha8
	rng   *rand.Rand
	faker *gofakeit.Faker

	now      func() time.Time
	avatars  []string
	workers  int
	maxBatch int
}

type settings struct {
	seed     *[32]byte
	now      func() time.Time
	avatars  []string
	workers  int
	maxBatch int
}

// Option configures a Generator.
type Option func(*settings)

// WithSeed makes the generator's output reproducible.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		var b [32]byte
		binary.LittleEndian.PutUint64(b[:], seed)
		s.seed = &b
	}
}

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

// WithAvatarServices sets the avatar URL templates. Templates may reference
// {seed}, {gender}, {gender_plural} and {n}.
func WithAvatarServices(templates ...string) Option {
	return func(s *settings) {
		if len(templates) > 0 {
			s.avatars = templates
		}
	}
}

// WithWorkers sets how many goroutines GenerateMany uses.
func WithWorkers(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithMaxBatch sets the largest count GenerateMany accepts.
func WithMaxBatch(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxBatch = n
		}
	}
}

// New creates a generator. Without WithSeed it is seeded from crypto/rand.
func New(opts ...Option) *Generator {
	s := settings{
		now:      time.Now,
		avatars:  defaultAvatarServices,
		workers:  1,
		maxBatch: DefaultMaxBatch,
	}
	for _, o := range opts {
		o(&s)
	}

	var seed [32]byte
	if s.seed != nil {
		seed = *s.seed
	} else {
		b, err := zcrypto.RandBytes(len(seed))
		if err != nil {
			// crypto/rand failure is unrecoverable
			panic("crypto/rand: " + err.Error())
		}
		copy(seed[:], b)
	}

	g := &Generator{
		now:      s.now,
		avatars:  s.avatars,
		workers:  s.workers,
		maxBatch: s.maxBatch,
	}
	g.reseed(seed)
	return g
}

func (g *Generator) reseed(seed [32]byte) {
	g.src = rand.NewChaCha8(seed)
	g.rng = rand.New(g.src)
	g.faker = gofakeit.New(g.rng.Int64())
}

// child returns an independent generator seeded from g's stream.
func (g *Generator) child() *Generator {
	var seed [32]byte
	_, _ = g.src.Read(seed[:])
	c := &Generator{
		now:      g.now,
		avatars:  g.avatars,
		workers:  1,
		maxBatch: g.maxBatch,
	}
	c.reseed(seed)
	return c
}

// draft carries the values resolved before the per-country fields are built.
type draft struct {
	country registry.Country
	region  registry.Region
	gender  Gender
	birth   Date
	name    personName
}

// Generate produces one complete identity. It never fails: unknown countries,
// genders and regions fall back to defaults and age bounds are normalized.
func (g *Generator) Generate(opts Options) Identity {
	opts = opts.Normalize()
	now := g.now()

	d := draft{
		country: registry.Lookup(opts.Country),
		gender:  opts.Gender,
	}
	if d.gender == "" {
		d.gender = g.gender()
	}
	d.birth = g.birthDate(now, opts.AgeMin, opts.AgeMax)
	d.region = g.region(d.country, opts.Region)

	rules := rulesFor(d.country.Code)
	d.name = rules.name(g, d)

	id := Identity{
		ID:             g.uuid(),
		Name:           d.name.Full,
		Gender:         d.gender,
		BirthDate:      d.birth,
		IDNumber:       rules.idNumber(g, d),
		PassportNumber: g.passport(d.country.PassportFormat),
		DriversLicense: rules.driversLicense(g, d),
		Address:        rules.address(g, d),
		Region:         d.region.Name,
		Phone:          rules.phone(g, d),
		Email:          g.email(d.country, d.name),
		Occupation:     g.occupation(d.country, opts.OccupationCategory),
		Education:      g.education(d.country, opts.EducationLevel),
		Country:        d.country.Code,
		Nationality:    d.country.Nationality,
		CreatedAt:      now,
	}

	if !opts.OmitAvatar {
		id.AvatarURL = g.avatar(d.gender)
	}
	if !opts.OmitCreditCard {
		card := g.creditCard(now)
		id.CreditCard = &card
	}
	if !opts.OmitSocialMedia {
		id.SocialMedia = g.socialMedia(d.name)
	}

	return id
}

func (g *Generator) gender() Gender {
	if g.rng.IntN(2) == 0 {
		return Male
	}
	return Female
}

// birthDate draws a year so that now.Year()-year lies in [ageMin, ageMax].
// Days are drawn from 1 to 28 so every month yields a valid date.
func (g *Generator) birthDate(now time.Time, ageMin, ageMax int) Date {
	age := ageMin + g.rng.IntN(ageMax-ageMin+1)
	month := time.Month(1 + g.rng.IntN(12))
	day := 1 + g.rng.IntN(28)
	return NewDate(now.Year()-age, month, day)
}

// region resolves the requested region or picks one at random.
func (g *Generator) region(c registry.Country, query string) registry.Region {
	if r, ok := c.Region(query); ok {
		return r
	}
	regions := c.RegionList()
	return regions[g.rng.IntN(len(regions))]
}

func (g *Generator) uuid() string {
	id, err := uuid.NewRandomFromReader(g.src)
	if err != nil {
		// ChaCha8 reads never fail
		panic("uuid: " + err.Error())
	}
	return id.String()
}

// passport builds a number from one of the format's prefixes followed by
// its digit count.
func (g *Generator) passport(f registry.Format) string {
	prefix := ""
	if len(f.Prefixes) > 0 {
		prefix = g.pick(f.Prefixes)
	}
	return prefix + g.digits(f.Digits)
}

func (g *Generator) occupation(c registry.Country, category string) string {
	for _, cat := range c.OccupationCategories {
		if category != "" && strings.EqualFold(cat.Name, category) && len(cat.Titles) > 0 {
			return g.pick(cat.Titles)
		}
	}
	if len(c.Occupations) > 0 {
		return g.pick(c.Occupations)
	}
	if len(c.OccupationCategories) > 0 {
		cat := c.OccupationCategories[g.rng.IntN(len(c.OccupationCategories))]
		if len(cat.Titles) > 0 {
			return g.pick(cat.Titles)
		}
	}
	return g.faker.JobTitle()
}

func (g *Generator) education(c registry.Country, level string) string {
	levels := c.EducationLevels
	if len(levels) == 0 {
		levels = genericEducation
	}
	for _, l := range levels {
		if level != "" && strings.EqualFold(l, level) {
			return l
		}
	}
	return g.pick(levels)
}
