package constvars

const (
	RegexContainAtLeastOneSpecialChar = `[!@#~$%^&*()+|_{}<>?,./:;'"\[\]\\=-]`
	RegexContainAtLeastOneUppercase   = `[A-Z]`
	RegexOrgCode                      = `^[A-Z0-9]{3,12}$`
	RegexDonorCode                    = `^DNR-[A-Z0-9]{8}$`
)

var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"email":      "must be a valid email address",
	"min":        "must be at least %s characters long",
	"max":        "must be at most %s characters long",
	"oneof":      "must be one of: %s",
	"uuid4":      "must be a valid UUID",
	"gt":         "must be greater than %s",
	"gte":        "must be at least %s",
	"password":   "must be at least 8 characters with one uppercase letter and one special character",
	"user_type":  "must be a valid user type",
	"blood_type": "must be a valid blood type",
	"org_code":   "must be 3-12 uppercase letters or digits",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
}
