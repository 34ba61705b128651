package utils

import (
	"pidelocal-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate      *validator.Validate
	slugRegex     = regexp.MustCompile(constvars.RegexTenantSlug)
	isoDateRegex  = regexp.MustCompile(constvars.RegexDateYYYYMMDD)
	currencyRegex = regexp.MustCompile(constvars.RegexCurrency)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("slug", validateSlug)
	validate.RegisterValidation("hhmm", validateHHMM)
	validate.RegisterValidation("isodate", validateISODate)
	validate.RegisterValidation("timezone", validateTimezone)
	validate.RegisterValidation("currency", validateCurrency)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSlug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

func validateHHMM(fl validator.FieldLevel) bool {
	_, err := ParseHHMM(fl.Field().String())
	return err == nil
}

func validateISODate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !isoDateRegex.MatchString(value) {
		return false
	}
	_, err := time.Parse(constvars.TimeLayoutDate, value)
	return err == nil
}

func validateTimezone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}
	_, err := time.LoadLocation(value)
	return err == nil
}

func validateCurrency(fl validator.FieldLevel) bool {
	return currencyRegex.MatchString(fl.Field().String())
}
