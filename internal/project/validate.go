package project

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/piwi3910/advslider/internal/model"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their YAML names.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		// font_weight accepts the CSS numeric weights 100..900.
		_ = v.RegisterValidation("font_weight", func(fl validator.FieldLevel) bool {
			w := fl.Field().Int()
			return w >= 100 && w <= 900 && w%100 == 0
		})

		validateInst = v
	})
	return validateInst
}

// ValidatePresets checks every preset against its struct rules and then
// builds a scratch slider from it, which catches values the tags cannot
// express (such as 8-digit hex colors). IDs must be unique.
func ValidatePresets(presets []model.SliderPreset) error {
	seen := make(map[string]int, len(presets))
	for i, p := range presets {
		if err := validatorInstance().Struct(p); err != nil {
			return convertValidationError(fmt.Sprintf("sliders[%d]", i), err)
		}
		if p.ID != "" {
			if j, dup := seen[p.ID]; dup {
				return newValidationError(fmt.Sprintf("sliders[%d].id", i),
					fmt.Sprintf("duplicate id %q (also sliders[%d])", p.ID, j), nil)
			}
			seen[p.ID] = i
		}
		if _, err := p.NewSlider(); err != nil {
			return newValidationError(fmt.Sprintf("sliders[%d]", i), err.Error(), err)
		}
	}
	return nil
}

func convertValidationError(prefix string, err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := prefix + "." + fe.Field()
		if fe.Param() != "" {
			return newValidationError(field, fmt.Sprintf("failed '%s=%s'", fe.Tag(), fe.Param()), err)
		}
		return newValidationError(field, fmt.Sprintf("failed '%s'", fe.Tag()), err)
	}
	return newValidationError(prefix, err.Error(), err)
}
