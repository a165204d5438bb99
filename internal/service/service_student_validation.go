package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/teacher-dashboard/models"
)

// validate is the shared validator instance. Struct rules live in the
// validate tags on models.StudentInput and models.StudentPatch; field names
// in reported violations follow the json tags so they match what the client
// actually sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldMessages maps an input field to the message reported when any of its
// rules fail. The texts mirror what the dashboard UI expects.
var fieldMessages = map[string]string{
	"name":    "Name must be at least 2 characters",
	"email":   "Valid email is required",
	"subject": "Subject must be one of: " + strings.Join(models.Subjects, ", "),
	"grade":   "Grade must be between 0 and 100",
}

// validateStruct runs the validator over s and converts the outcome into a
// *ValidationError listing every violated field. Returns nil when s passes.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		// validator.InvalidValidationError: a programming error, not bad input
		return err
	}

	fields := make([]models.FieldError, 0, len(violations))
	for _, violation := range violations {
		field := violation.Field()
		message, ok := fieldMessages[field]
		if !ok {
			message = fmt.Sprintf("Field %s is invalid", field)
		}
		fields = append(fields, models.FieldError{Field: field, Message: message})
	}

	return &ValidationError{Fields: fields}
}

// validateSubjectFilter checks the optional ?subject= query value against
// the subject enumeration. An empty filter means "no filter" and is valid.
func validateSubjectFilter(subject string) error {
	if subject == "" || models.IsValidSubject(subject) {
		return nil
	}

	return &ValidationError{Fields: []models.FieldError{
		{Field: "subject", Message: fieldMessages["subject"]},
	}}
}
