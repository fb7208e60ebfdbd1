package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapAndCodes(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap("configuration_error", "load corpus", cause)

	require.Equal(t, "load corpus: boom", err.Error())
	require.ErrorIs(t, err, cause)
	require.True(t, IsCode(err, "configuration_error"))
	require.False(t, IsCode(err, "invalid_input"))
	require.Equal(t, "load corpus", MessageOf(err))

	wrapped := fmt.Errorf("startup: %w", err)
	require.Equal(t, "configuration_error", CodeOf(wrapped))
}

func TestCodeOfPlainError(t *testing.T) {
	plain := errors.New("plain")
	require.Equal(t, "", CodeOf(plain))
	require.False(t, IsCode(plain, ""))
	require.Equal(t, "plain", MessageOf(plain))
	require.Equal(t, "", MessageOf(nil))
	require.Equal(t, "question required", Wrap("invalid_input", "question required", nil).Error())
}
