//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lendit/internal/pkg/errs"
)

func TestIs_SeesMarkedSentinel(t *testing.T) {
	t.Parallel()

	err := errs.Mark(errs.Newf("cannot change booking status: %s", "APPROVED"), errs.ErrStatusAlreadyDecided)

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrStatusAlreadyDecided))
	assert.Equal(t, "cannot change booking status: APPROVED", err.Error())
}

func TestIs_SeesWrappedSentinel(t *testing.T) {
	t.Parallel()

	err := errs.Wrap(errs.ErrBookingNotFound, "load booking")

	assert.True(t, errs.Is(err, errs.ErrBookingNotFound))
	assert.True(t, errors.Is(err, errs.ErrBookingNotFound))
}

func TestIs_RejectsUnrelatedSentinel(t *testing.T) {
	t.Parallel()

	err := errs.Mark(errs.New("boom"), errs.ErrDomainValidation)

	assert.False(t, errs.Is(err, errs.ErrStatusAlreadyDecided))
	assert.False(t, errs.Is(nil, errs.ErrDomainValidation))
}
