package apierr

import (
	"errors"
	"net/http"

	govalidator "github.com/go-playground/validator/v10"

	"github.com/tuanvumaihuynh/supplier-catalog/internal/http/gen"
	"github.com/tuanvumaihuynh/supplier-catalog/pkg/validator"
	"github.com/tuanvumaihuynh/supplier-catalog/pkg/zerror"
)

const (
	ValidationErrorCode     = "validationError"
	InternalServerErrorCode = "internalServerError"
)

// ErrorResponse is the error response for the API.
type ErrorResponse struct {
	gen.ErrorResponse

	// StatusCode is the status code for the error response.
	StatusCode int `json:"-"`
}

func New(err error) ErrorResponse {
	return errorToErrorResponse(err)
}

var InternalServerErr = ErrorResponse{
	ErrorResponse: gen.ErrorResponse{
		Success: false,
		Code:    InternalServerErrorCode,
		Error:   "an unknown error occurred",
	},
	StatusCode: http.StatusInternalServerError,
}

func errorToErrorResponse(err error) ErrorResponse {
	var validationErrs govalidator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]gen.FieldError, len(validationErrs))
		for i, fe := range validationErrs {
			details[i] = gen.FieldError{
				Field:   fe.Field(),
				Message: validator.ValidationErrorMessage(fe),
			}
		}

		return ErrorResponse{
			ErrorResponse: gen.ErrorResponse{
				Code:    ValidationErrorCode,
				Error:   "validation error",
				Details: &details,
			},
			StatusCode: http.StatusBadRequest,
		}
	}

	var zErr zerror.ZError
	if errors.As(err, &zErr) {
		return ErrorResponse{
			ErrorResponse: gen.ErrorResponse{
				Code:  zErr.Code(),
				Error: zErr.Msg(),
			},
			StatusCode: ZErrorStatusToHTTPStatus(zErr.Status()),
		}
	}

	if isOpenAPICodegenErr(err) {
		return ErrorResponse{
			ErrorResponse: gen.ErrorResponse{
				Code:  ValidationErrorCode,
				Error: err.Error(),
			},
			StatusCode: http.StatusBadRequest,
		}
	}

	return InternalServerErr
}

var zerrorHTTPStatus = map[zerror.Status]int{
	zerror.StatusBadRequest:          http.StatusBadRequest,
	zerror.StatusValidationFailed:    http.StatusBadRequest,
	zerror.StatusUnauthorized:        http.StatusUnauthorized,
	zerror.StatusForbidden:           http.StatusForbidden,
	zerror.StatusNotFound:            http.StatusNotFound,
	zerror.StatusConflict:            http.StatusConflict,
	zerror.StatusUnprocessableEntity: http.StatusUnprocessableEntity,
	zerror.StatusTooManyRequests:     http.StatusTooManyRequests,
	zerror.StatusInternalServerError: http.StatusInternalServerError,
	zerror.StatusNotImplemented:      http.StatusNotImplemented,
	zerror.StatusBadGateway:          http.StatusBadGateway,
	zerror.StatusServiceUnavailable:  http.StatusServiceUnavailable,
	zerror.StatusTimeout:             http.StatusGatewayTimeout,
}

// ZErrorStatusToHTTPStatus maps a ZError status to its HTTP status. Unknown
// statuses are internal errors.
func ZErrorStatusToHTTPStatus(status zerror.Status) int {
	if code, ok := zerrorHTTPStatus[status]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// isOpenAPICodegenErr reports parameter binding failures raised by the
// generated router.
func isOpenAPICodegenErr(err error) bool {
	return isErr[*gen.UnescapedCookieParamError](err) ||
		isErr[*gen.UnmarshalingParamError](err) ||
		isErr[*gen.RequiredParamError](err) ||
		isErr[*gen.RequiredHeaderError](err) ||
		isErr[*gen.InvalidParamFormatError](err) ||
		isErr[*gen.TooManyValuesForParamError](err)
}

func isErr[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}
