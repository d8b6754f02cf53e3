package checkout

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	emailRe = regexp.MustCompile(`\S+@\S+\.\S+`)
	cardRe  = regexp.MustCompile(`^\d{16}$`)
	zipRe   = regexp.MustCompile(`^\d{5}$`)
)

// One message per field, matching what the storefront shows inline.
var fieldMessages = map[string]string{
	"fullName":   "Full name is required.",
	"email":      "Valid email is required.",
	"cardNumber": "Card number must be 16 digits.",
	"address1":   "Address Line 1 is required.",
	"city":       "City is required.",
	"state":      "State is required.",
	"zip":        "ZIP code must be 5 digits.",
}

// Validator checks a BuyerForm against the checkout field rules. It is
// stateless, never mutates the form, and collects every violation rather
// than stopping at the first.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Report fields by their JSON names so the result maps straight onto
	// the form the client submitted.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "simpleemail", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "card16", func(fl validator.FieldLevel) bool {
		return cardRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "zip5", func(fl validator.FieldLevel) bool {
		return zipRe.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate returns the per-field violations; an empty result means the form
// may proceed to order building.
func (v *Validator) Validate(form BuyerForm) ValidationResult {
	result := ValidationResult{}

	err := v.validate.Struct(form)
	if err == nil {
		return result
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Struct-level failure should be impossible for a plain string
		// form; treat everything as invalid rather than pass bad input on.
		result["form"] = "checkout form could not be validated"
		return result
	}

	for _, fe := range errs {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = "Invalid value."
		}
		result[fe.Field()] = msg
	}
	return result
}
