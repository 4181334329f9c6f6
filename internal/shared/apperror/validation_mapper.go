package apperror

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// monthly_wage -> Monthly Wage
func formatFieldName(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "_", " "))
}

// MapValidationError turns a binding failure into an INVALID_INPUT AppError
// naming the first offending field. Details carry the raw field and rule.
func MapValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		details := map[string]string{"field": fe.Field(), "rule": fe.Tag()}

		if fe.Tag() == "required" {
			return RequiredField(formatFieldName(fe.Field())).WithDetails(details)
		}
		return InvalidField(formatFieldName(fe.Field())).WithDetails(details)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return InvalidField(formatFieldName(typeErr.Field)).
			WithDetails(map[string]string{"field": typeErr.Field, "rule": "type"})
	}

	return ErrMalformedInput
}
