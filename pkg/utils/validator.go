package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
)

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation("plan", oneOfField("Enterprise", "Pro", "Basic"))
	_ = validate.RegisterValidation("subscription_status", oneOfField("active", "trial", "suspended"))
	_ = validate.RegisterValidation("profile_role", oneOfField("super_admin", "org_admin", "site_manager", "viewer"))
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func oneOfField(allowed ...string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, a := range allowed {
			if value == a {
				return true
			}
		}
		return false
	}
}

func IsValidEmail(email string) bool {
	email = strings.TrimSpace(strings.ToLower(email))
	return emailPattern.MatchString(email)
}
