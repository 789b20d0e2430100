package handlers

import (
	"reflect"
	"strings"

	"github.com/craigashields/docs-feedback/internal/models"
	"github.com/go-playground/validator/v10"
)

// feedbackFields lists the schema fields in the order errors are reported
var feedbackFields = []string{"page", "product", "option", "feedbackType", "feedbackComment"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so paths match the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ValidateFeedback checks a decoded request body against the feedback schema.
// It returns the typed submission when the body is valid, or one
// ValidationError per failing field otherwise.
func ValidateFeedback(body map[string]any) (*models.FeedbackSubmission, []models.ValidationError) {
	var submission models.FeedbackSubmission
	targets := map[string]**string{
		"page":            &submission.Page,
		"product":         &submission.Product,
		"option":          &submission.Option,
		"feedbackType":    &submission.FeedbackType,
		"feedbackComment": &submission.FeedbackComment,
	}

	byField := make(map[string]models.ValidationError)

	for _, field := range feedbackFields {
		raw, ok := body[field]
		if !ok {
			continue
		}

		value, isString := raw.(string)
		if !isString {
			byField[field] = models.ValidationError{
				Path:    field,
				Message: field + " must be a string, received " + jsonTypeName(raw),
			}
			continue
		}
		*targets[field] = &value
	}

	for _, ve := range ParseValidationErrors(validate.Struct(&submission)) {
		// A type mismatch already explains why the field is missing
		if _, seen := byField[ve.Path]; !seen {
			byField[ve.Path] = ve
		}
	}

	if len(byField) == 0 {
		return &submission, nil
	}

	errs := make([]models.ValidationError, 0, len(byField))
	for _, field := range feedbackFields {
		if ve, ok := byField[field]; ok {
			errs = append(errs, ve)
		}
	}

	return nil, errs
}

// asObject returns raw as a JSON object. A literal null is treated as an
// empty object so every required field is reported on its own.
func asObject(raw any) (map[string]any, []models.ValidationError) {
	switch v := raw.(type) {
	case map[string]any:
		return v, nil
	case nil:
		return map[string]any{}, nil
	default:
		return nil, []models.ValidationError{{
			Path:    "",
			Message: "Expected object, received " + jsonTypeName(raw),
		}}
	}
}

// ParseValidationErrors converts validator errors to user-friendly format
func ParseValidationErrors(err error) []models.ValidationError {
	var errors []models.ValidationError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			errors = append(errors, models.ValidationError{
				Path:    fieldError.Field(),
				Message: getErrorMessage(fieldError),
			})
		}
	}

	return errors
}

func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fe.Field() + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return fe.Field() + " is invalid"
	}
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}
