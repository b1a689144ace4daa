package shopify

import (
	"errors"
	"fmt"
)

var (
	ErrRequestFailed    = errors.New("shopify: request failed")
	ErrUnavailable      = errors.New("shopify: upstream unavailable")
	ErrInvalidResponse  = errors.New("shopify: invalid response")
	ErrTooManyPages     = errors.New("shopify: page limit reached")
	ErrForeignNextLink  = errors.New("shopify: next page link points to another host")
	ErrInvalidProductID = errors.New("shopify: invalid product id")
)

// StatusError is returned for any non-2xx upstream response.
type StatusError struct {
	Op         string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("shopify: %s: upstream returned status %d", e.Op, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return ErrRequestFailed
}
