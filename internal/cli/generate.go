package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zarlcorp/zident/internal/identity"
	"github.com/zarlcorp/zident/internal/registry"
	"github.com/zarlcorp/zident/internal/store"
)

// genFlags are the generation options shared by identity and batch.
type genFlags struct {
	country    string
	gender     string
	ageMin     int
	ageMax     int
	region     string
	occupation string
	education  string
	noAvatar   bool
	noCard     bool
	noSocial   bool
	seed       uint64

	asJSON bool
	save   bool
}

func (f *genFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.country, "country", "c", "", "country code (default from config)")
	fs.StringVarP(&f.gender, "gender", "g", "", "male or female (default random)")
	fs.IntVar(&f.ageMin, "age-min", 0, "minimum age (default 18)")
	fs.IntVar(&f.ageMax, "age-max", 0, "maximum age (default 70)")
	fs.StringVarP(&f.region, "region", "r", "", "region name or code")
	fs.StringVar(&f.occupation, "occupation", "", "occupation category")
	fs.StringVar(&f.education, "education", "", "education level")
	fs.BoolVar(&f.noAvatar, "no-avatar", false, "skip the avatar URL")
	fs.BoolVar(&f.noCard, "no-card", false, "skip the credit card")
	fs.BoolVar(&f.noSocial, "no-social", false, "skip social media accounts")
	fs.Uint64Var(&f.seed, "seed", 0, "seed for reproducible output")
	fs.BoolVar(&f.asJSON, "json", false, "print JSON")
	fs.BoolVar(&f.save, "save", false, "save to the encrypted store")
}

func (f *genFlags) validate() error {
	if f.country != "" {
		if _, ok := registry.ParseCode(f.country); !ok {
			return fmt.Errorf("unsupported country %q (supported: %v)", f.country, registry.Codes())
		}
	}
	if f.gender != "" {
		if _, ok := identity.ParseGender(f.gender); !ok {
			return fmt.Errorf("unknown gender %q", f.gender)
		}
	}
	if f.ageMin < 0 || f.ageMax < 0 {
		return fmt.Errorf("ages must not be negative")
	}
	if f.ageMin > 0 && f.ageMax > 0 && f.ageMin > f.ageMax {
		return fmt.Errorf("age-min %d is greater than age-max %d", f.ageMin, f.ageMax)
	}
	return nil
}

func (f *genFlags) options(fallback registry.Code) identity.Options {
	opts := identity.Options{
		Country:            fallback,
		Gender:             identity.Gender(f.gender),
		AgeMin:             f.ageMin,
		AgeMax:             f.ageMax,
		Region:             f.region,
		OccupationCategory: f.occupation,
		EducationLevel:     f.education,
		OmitAvatar:         f.noAvatar,
		OmitCreditCard:     f.noCard,
		OmitSocialMedia:    f.noSocial,
	}
	if f.country != "" {
		opts.Country = registry.Code(f.country)
	}
	return opts
}

func (a *App) generator(f *genFlags, cmd *cobra.Command) *identity.Generator {
	opts := a.cfg.GeneratorOptions()
	if cmd.Flags().Changed("seed") {
		opts = append(opts, identity.WithSeed(f.seed))
	}
	return identity.New(opts...)
}

func (a *App) identityCmd() *cobra.Command {
	var f genFlags
	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Generate one identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := f.validate(); err != nil {
				return err
			}

			id := a.generator(&f, cmd).Generate(f.options(a.cfg.Country()))

			if f.asJSON {
				if err := a.printJSON(id); err != nil {
					return err
				}
			} else {
				a.printIdentity(id)
			}

			if !f.save {
				return nil
			}
			return a.withStore(func(s *store.Store) error {
				if err := s.Save(id); err != nil {
					return err
				}
				fmt.Fprintln(a.Err, "saved")
				return nil
			})
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func (a *App) batchCmd() *cobra.Command {
	var f genFlags
	var count int
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate many identities at once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := f.validate(); err != nil {
				return err
			}

			ids, err := a.generator(&f, cmd).GenerateMany(cmd.Context(), count, f.options(a.cfg.Country()))
			if err != nil {
				return err
			}
			a.log.Debug("generated batch", "count", len(ids))

			if f.asJSON {
				if err := a.printJSON(ids); err != nil {
					return err
				}
			} else {
				for _, id := range ids {
					a.printRow(id)
				}
			}

			if !f.save {
				return nil
			}
			return a.withStore(func(s *store.Store) error {
				if err := s.SaveAll(ids); err != nil {
					return err
				}
				fmt.Fprintf(a.Err, "saved %d\n", len(ids))
				return nil
			})
		},
	}
	f.register(cmd.Flags())
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of identities")
	return cmd
}
