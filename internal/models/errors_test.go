package models

import (
	"errors"
	"testing"

	"github.com/clearpath-au/go-remit/internal/common"

	"github.com/stretchr/testify/assert"
)

func TestGetErrMap(t *testing.T) {
	t.Run("known code keeps sentinel matching", func(t *testing.T) {
		detail := GetErrMap(CodeKillSwitchActive)

		assert.Equal(t, "KILL_SWITCH_ACTIVE", detail.Code)
		assert.True(t, errors.Is(detail, common.ErrKillSwitchActive))
	})

	t.Run("args wrap without losing the sentinel", func(t *testing.T) {
		detail := GetErrMap(CodeIdempotencyDown, "connection refused")

		assert.True(t, errors.Is(detail, common.ErrIdempotencyUnavailable))
		assert.Contains(t, detail.ErrorMessage.Error(), "connection refused")
	})

	t.Run("unknown code falls through", func(t *testing.T) {
		detail := GetErrMap("NOT_A_CODE")

		assert.Equal(t, "NOT_A_CODE", detail.Code)
		assert.EqualError(t, detail.ErrorMessage, "unknown error mapping")
	})
}

func TestErrorDetail_As(t *testing.T) {
	wrapped := common.WrapError{
		Causer: common.ErrIdempotencyUnavailable,
		Err:    errors.New("dial tcp: connection refused"),
	}

	assert.True(t, errors.Is(wrapped, common.ErrIdempotencyUnavailable))

	var detail ErrorDetail
	assert.True(t, errors.As(GetErrMap(CodeDuplicateRequest), &detail))
	assert.Equal(t, CodeDuplicateRequest, detail.Code)
}
