package zerror_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/supplier-catalog/pkg/zerror"
)

func TestZError(t *testing.T) {
	base := zerror.NewBadGateway("UPSTREAM_REQUEST_FAILED", "upstream request failed")
	parent := errors.New("status 500")

	t.Run("Should keep code and status after wrapping", func(t *testing.T) {
		err := base.WrapParent(parent)

		assert.Equal(t, "UPSTREAM_REQUEST_FAILED", err.Code())
		assert.Equal(t, zerror.StatusBadGateway, err.Status())
		assert.Equal(t, "Code=UPSTREAM_REQUEST_FAILED, Msg=upstream request failed, Parent=(status 500)", err.Error())
	})

	t.Run("Should unwrap to the parent error", func(t *testing.T) {
		var err error = base.WrapParent(parent)

		assert.ErrorIs(t, err, parent)
		assert.ErrorIs(t, err, base)
	})

	t.Run("Should match a predefined error after message override", func(t *testing.T) {
		var err error = base.WithMsg("upstream returned status 503")

		var zErr zerror.ZError
		assert.True(t, errors.As(err, &zErr))
		assert.Equal(t, "upstream returned status 503", zErr.Msg())
		assert.ErrorIs(t, err, base)
	})

	t.Run("Should not wrap a nil parent", func(t *testing.T) {
		err := base.WrapParent(nil)

		assert.Nil(t, err.Parent())
	})

	t.Run("Should name statuses", func(t *testing.T) {
		assert.Equal(t, "BAD_GATEWAY", zerror.StatusBadGateway.String())
		assert.Equal(t, "UNKNOWN", zerror.Status(200).String())
	})
}
