package exceptions

import (
	"healthrecords-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"min":      "is below the minimum length of %s",
	"max":      "exceeds the maximum length of %s",
	"oneof":    "must be one of %s",
	"gt":       "must be greater than %s",
	"password": "must be at least 8 characters with an uppercase letter and a special character",
	"role":     "must be one of admin, doctor, patient",
}

var validationTagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		firstErr := validationErrors[0]
		fieldName := strings.ToLower(firstErr.Field())
		tag := firstErr.Tag()
		customMessage, ok := validationErrorMessages[tag]
		if !ok {
			customMessage = "is invalid"
		}

		if validationTagsWithParams[tag] {
			if tag == "oneof" {
				customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(firstErr.Param()), ", "), 1)
			} else {
				customMessage = strings.Replace(customMessage, "%s", firstErr.Param(), 1)
			}
		}
		return fieldName + " " + customMessage
	}
	return constvars.ErrClientCannotProcessRequest
}
