package server

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/zarlcorp/zident/internal/identity"
	"github.com/zarlcorp/zident/internal/registry"
)

// form limits for age bounds
const (
	minFormAge = 1
	maxFormAge = 99
)

// generateRequest is the body of POST /v1/identities. The generate_* flags
// default to true when absent.
type generateRequest struct {
	Country             string `json:"country"`
	Gender              string `json:"gender"`
	AgeMin              int    `json:"age_min"`
	AgeMax              int    `json:"age_max"`
	Region              string `json:"region"`
	OccupationCategory  string `json:"occupation_category"`
	EducationLevel      string `json:"education_level"`
	GenerateAvatar      *bool  `json:"generate_avatar"`
	GenerateCreditCard  *bool  `json:"generate_credit_card"`
	GenerateSocialMedia *bool  `json:"generate_social_media"`
}

func (r generateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Country, validation.By(func(v any) error {
			if s := v.(string); s != "" {
				if _, ok := registry.ParseCode(s); !ok {
					return errors.New("unsupported country")
				}
			}
			return nil
		})),
		validation.Field(&r.Gender, validation.By(func(v any) error {
			if s := v.(string); s != "" {
				if _, ok := identity.ParseGender(s); !ok {
					return errors.New("must be male or female")
				}
			}
			return nil
		})),
		validation.Field(&r.AgeMin, validation.Min(minFormAge), validation.Max(maxFormAge)),
		validation.Field(&r.AgeMax,
			validation.Min(minFormAge),
			validation.Max(maxFormAge),
			validation.Min(r.AgeMin).Error("must be no less than age_min"),
		),
	)
}

// options converts the request, using country when none was given.
func (r generateRequest) options(country registry.Code) identity.Options {
	opts := identity.Options{
		Country:            country,
		Gender:             identity.Gender(r.Gender),
		AgeMin:             r.AgeMin,
		AgeMax:             r.AgeMax,
		Region:             r.Region,
		OccupationCategory: r.OccupationCategory,
		EducationLevel:     r.EducationLevel,
		OmitAvatar:         !enabled(r.GenerateAvatar),
		OmitCreditCard:     !enabled(r.GenerateCreditCard),
		OmitSocialMedia:    !enabled(r.GenerateSocialMedia),
	}
	if r.Country != "" {
		opts.Country = registry.Code(r.Country)
	}
	return opts
}

func enabled(b *bool) bool {
	return b == nil || *b
}

// batchRequest is the body of POST /v1/identities/batch.
type batchRequest struct {
	Count int `json:"count"`
	generateRequest
}

func (r batchRequest) validate(maxCount int) error {
	errs := validation.Errors{
		"count": validation.Validate(r.Count, validation.Required, validation.Min(1), validation.Max(maxCount)),
	}
	if err := r.generateRequest.Validate(); err != nil {
		var fieldErrs validation.Errors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for k, v := range fieldErrs {
			errs[k] = v
		}
	}
	return errs.Filter()
}
