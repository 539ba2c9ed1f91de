package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("title", "must not be blank", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "title", validationErr.Field)
	require.Contains(t, err.Error(), "must not be blank")
}

func TestGenerationErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("response is not a JSON array")
	err := NewGenerationError("Elden Ring DLC", underlying)

	var generationErr *GenerationError
	require.ErrorAs(t, err, &generationErr)
	require.Equal(t, "Elden Ring DLC", generationErr.Topic)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "Elden Ring DLC")
}

func TestConfigErrorIncludesKey(t *testing.T) {
	t.Parallel()

	err := NewConfigError("GEMINI_API_KEY", "credential is not configured", nil)

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	require.Equal(t, "GEMINI_API_KEY", configErr.Key)
	require.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestStorageErrorIncludesOperation(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("permission denied")
	err := NewStorageError("write", "/tmp/cards.json", underlying)

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	require.Equal(t, "write", storageErr.Op)
	require.Equal(t, "/tmp/cards.json", storageErr.Path)
	require.True(t, stdErrors.Is(err, underlying))
}
