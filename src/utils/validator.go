package utils

import "github.com/go-playground/validator/v10"

// Validate is the shared validator instance for request bodies.
var Validate = validator.New()

// ValidateStruct runs struct-tag validation and returns the first error, if any.
func ValidateStruct(s interface{}) error {
	return Validate.Struct(s)
}
