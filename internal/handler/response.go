package handler

import (
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/mmhcare/frontdesk-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// BindError converts a gin binding failure into the application's
// validation error, naming the first offending field when the failure
// came from struct validation.
func BindError(err error) *apperrors.AppError {
	var verrs validator.ValidationErrors
	if ok := asValidationErrors(err, &verrs); ok && len(verrs) > 0 {
		field := strings.ToLower(verrs[0].Field())
		return apperrors.Validation(field, field+" is missing or invalid")
	}
	return apperrors.BadRequest("invalid request body", err)
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}
