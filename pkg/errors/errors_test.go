package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrorTypeQuota, 429, "quota reached after %d calls", 12)

	assert.Equal(t, "quota error (code 429): quota reached after 12 calls", err.Error())
	assert.Equal(t, ErrorTypeQuota, err.Type)
	assert.Equal(t, 429, err.Code)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrorTypeQuota))

	for _, errorType := range []ErrorType{
		ErrorTypeNetwork, ErrorTypeDailyQuota, ErrorTypeBadRequest,
		ErrorTypeDecode, ErrorTypeNotFound, ErrorTypeConfig,
		ErrorTypeChecksum, ErrorTypeUnknown,
	} {
		assert.False(t, IsRetryable(errorType), string(errorType))
	}
}
