package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tapanbhakhar27/inventory-service/pkg/errs"
)

type SuccessResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data"`
	Pagination interface{} `json:"pagination,omitempty"`
}

type ValidationErrorResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Errors  []errs.FieldViolation `json:"errors"`
}

func WriteSuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func WritePaginatedResponse(c echo.Context, statusCode int, data interface{}, pagination interface{}) error {
	return c.JSON(statusCode, SuccessResponse{
		Success:    true,
		Data:       data,
		Pagination: pagination,
	})
}

// WriteErrorResponse funnels any failure through the classifier and writes
// the normalized result. Bind failures surface as *echo.HTTPError wrapping
// the real decode error; unwrap before classifying so the classifier sees
// the JSON failure shape, not the framework's. A bare framework error with
// no wrapped cause, such as the 415 raised for an unsupported content type,
// keeps its own status code instead of falling through as unclassified.
func WriteErrorResponse(c echo.Context, err error, context string) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Internal != nil {
			err = httpErr.Internal
		} else {
			err = errs.New(fmt.Sprintf("%v", httpErr.Message), httpErr.Code)
		}
	}

	result := errs.Classify(err, context)
	return c.JSON(result.StatusCode, result)
}

// WriteValidationErrorResponse reports every field violation in one response.
func WriteValidationErrorResponse(c echo.Context, violations errs.FieldViolations) error {
	return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  violations,
	})
}
