package utils

import (
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("user_type", validateUserType)
	validate.RegisterValidation("blood_type", validateBloodType)
	validate.RegisterValidation("org_code", validateOrgCode)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateUserType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	switch value {
	case constvars.UserTypeSystemAdmin,
		constvars.UserTypeSuperAdmin,
		constvars.UserTypeTenantAdmin,
		constvars.UserTypeStaff,
		constvars.UserTypeRequestor:
		return true
	}
	return false
}

func validateBloodType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, bt := range models.BloodTypes {
		if value == bt {
			return true
		}
	}
	return false
}

func validateOrgCode(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexOrgCode).MatchString(fl.Field().String())
}
