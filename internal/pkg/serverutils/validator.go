package serverutils

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateRequest enforces the struct tags on a request DTO. Returns
// validator.ValidationErrors, which the error middleware maps to a 400.
func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}
