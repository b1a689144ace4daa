package service

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/tuanvumaihuynh/supplier-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/storage/shopify"
)

// upstreamError translates catalog platform failures into application errors.
// Other errors are returned unchanged.
func upstreamError(err error) error {
	var statusErr *shopify.StatusError

	switch {
	case errors.As(err, &statusErr):
		return apperr.UpstreamRequestFailedErr.
			WithMsg(fmt.Sprintf("upstream request failed: %s returned status %d", statusErr.Op, statusErr.StatusCode)).
			WrapParent(err)
	case errors.Is(err, shopify.ErrTooManyPages):
		return apperr.UpstreamRequestFailedErr.
			WithMsg("upstream request failed: page limit reached").
			WrapParent(err)
	case errors.Is(err, shopify.ErrForeignNextLink):
		return apperr.UpstreamRequestFailedErr.
			WithMsg("upstream request failed: next page link points to another host").
			WrapParent(err)
	case errors.Is(err, shopify.ErrInvalidResponse):
		return apperr.UpstreamInvalidResponseErr.WrapParent(err)
	case isTimeout(err):
		return apperr.UpstreamTimeoutErr.WrapParent(err)
	case errors.Is(err, shopify.ErrUnavailable):
		return apperr.UpstreamUnavailableErr.WrapParent(err)
	default:
		return err
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
