package validator

import (
	"log"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"apnajourney_backend/internal/models"
)

// Phone numbers are the regional 10-digit mobile format.
var phonePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)

// registerCustomRules installs all domain validation tags on the given
// validator instance.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error, not a
			// request error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("job-category", oneOfRule(models.JobCategories))
	mustRegister("job-type", oneOfRule(models.JobTypes))
	mustRegister("district", oneOfRule(models.Districts))
	mustRegister("news-category", oneOfRule(models.NewsCategories))
	mustRegister("news-language", validateNewsLanguage)
	mustRegister("inquiry-type", oneOfRule(models.InquiryTypes))
	mustRegister("indian-phone", validatePhone)
	mustRegister("future", validateFuture)
}

// oneOfRule builds a membership check against a closed enum. Empty
// values pass; 'required' handles those.
func oneOfRule(allowed []string) validator.Func {
	set := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		set[a] = true
	}
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return set[value]
	}
}

// validateNewsLanguage accepts the canonical values plus the short forms
// used by the user-authored surface; normalization happens at the DTO
// boundary.
func validateNewsLanguage(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "english", "hindi", "en", "hi":
		return true
	default:
		return false
	}
}

func validatePhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return phonePattern.MatchString(value)
}

// validateFuture requires a timestamp strictly after now.
func validateFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	if t.IsZero() {
		return true
	}
	return t.After(time.Now())
}
