package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_DetailsKeepIdentity(t *testing.T) {
	detailed := ErrUploadRejected.WithDetails("file is empty")

	assert.True(t, stderrors.Is(detailed, ErrUploadRejected))
	assert.False(t, stderrors.Is(detailed, ErrUploadFailed))
	assert.Equal(t, "The uploaded file was rejected: file is empty", detailed.Error())
	assert.Empty(t, ErrUploadRejected.Details())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrOrderNotFound.WrapMessage("order 42")

	var appErr AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "ORDER_NOT_FOUND", appErr.ErrorCode())
	assert.True(t, stderrors.Is(err, ErrOrderNotFound))
}

func TestBaseError_WithCause(t *testing.T) {
	cause := &timeoutError{}
	err := ErrInventoryAdjustmentFailed.WithCause(cause)

	var appErr AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, "INVENTORY_ADJUSTMENT_FAILED", appErr.ErrorCode())
	assert.True(t, stderrors.Is(err, ErrInventoryAdjustmentFailed))

	var te *timeoutError
	assert.True(t, stderrors.As(err, &te))
	assert.Equal(t, "Could not update the spare part quantity: lock timeout", err.Error())
}

type timeoutError struct{}

func (*timeoutError) Error() string { return "lock timeout" }

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to list orders")

	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPCode())
	assert.Equal(t, "Storage is unavailable, failed to list orders", err.Message())
	assert.Equal(t, "Storage is unavailable", NewDatabaseExecuteError(cause, "").Message())
}
