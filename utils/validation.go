package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors turns gin binding failures into a field -> message map so
// validation problems always come back attributed to a field.
func FieldErrors(err error) map[string]string {
	fields := map[string]string{}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		fields["_body"] = "malformed request body"
		return fields
	}

	for _, fe := range validationErrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = "this field is required"
		case "email":
			fields[name] = "must be a valid email address"
		case "min":
			fields[name] = "must be at least " + fe.Param()
		case "max":
			fields[name] = "must be at most " + fe.Param()
		default:
			fields[name] = "invalid value"
		}
	}
	return fields
}

// FormatPrice renders integer cents as a decimal amount, e.g. 1300 -> "13.00".
func FormatPrice(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
