package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(fieldNameFromTags)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// fieldNameFromTags reports form/json names so validation messages match what clients send.
func fieldNameFromTags(field reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return field.Name
}
