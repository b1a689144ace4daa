package apperr

import "github.com/tuanvumaihuynh/supplier-catalog/pkg/zerror"

const (
	ValidationErrorCode          = "VALIDATION_FAILED"
	UpstreamRequestFailedCode    = "UPSTREAM_REQUEST_FAILED"
	UpstreamInvalidResponseCode  = "UPSTREAM_INVALID_RESPONSE"
	UpstreamUnavailableErrorCode = "UPSTREAM_UNAVAILABLE"
	UpstreamTimeoutErrorCode     = "UPSTREAM_TIMEOUT"
	FeedRenderFailedCode         = "FEED_RENDER_FAILED"
)

var (
	ValidationErr = zerror.NewValidationFailed(ValidationErrorCode, "validation error")

	UpstreamRequestFailedErr   = zerror.NewBadGateway(UpstreamRequestFailedCode, "upstream request failed")
	UpstreamInvalidResponseErr = zerror.NewBadGateway(UpstreamInvalidResponseCode, "upstream returned an invalid response")
	UpstreamUnavailableErr     = zerror.NewServiceUnavailable(UpstreamUnavailableErrorCode, "upstream is unavailable")
	UpstreamTimeoutErr         = zerror.NewTimeout(UpstreamTimeoutErrorCode, "upstream request timed out")

	FeedRenderFailedErr = zerror.NewInternalServerError(FeedRenderFailedCode, "failed to generate feed")
)
