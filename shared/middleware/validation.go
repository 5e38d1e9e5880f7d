package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Error texts for requests that fail validation.
const (
	MissingFieldsMessage  = "Missing required fields"
	InvalidRequestMessage = "Invalid request"
)

var validate = validator.New()

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func ValidateRequest(obj any) []ValidationError {
	var validationErrors []ValidationError

	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []ValidationError{{Message: err.Error(), Type: "invalid"}}
	}
	for _, fe := range fieldErrors {
		validationErrors = append(validationErrors, ValidationError{
			Field:   fe.Field(),
			Message: getErrorMsg(fe),
			Type:    fe.Tag(),
		})
	}

	return validationErrors
}

func getErrorMsg(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "max":
		return "Value is too long"
	case "datetime":
		return "Date must be formatted as YYYY-MM-DD"
	default:
		return "Invalid value"
	}
}

// RespondWithValidationError reports missing fields ahead of malformed ones.
func RespondWithValidationError(c *gin.Context, validationErrors []ValidationError) {
	message := InvalidRequestMessage
	for _, ve := range validationErrors {
		if ve.Type == "required" {
			message = MissingFieldsMessage
			break
		}
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   message,
		Details: validationErrors,
	})
}

func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// RespondWithErrorDetails is RespondWithError with a diagnostic details field.
func RespondWithErrorDetails(c *gin.Context, code int, message string, details any) {
	c.JSON(code, ErrorResponse{Error: message, Details: details})
}
