package openai_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lingualog/lingualog-api/internal/generation"
	"github.com/lingualog/lingualog-api/internal/platform/openai"
)

func TestNew_ConfigValidation(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	adapter, err := openai.New(logger, "", "gpt-4o-mini")
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	assert.Nil(t, adapter)

	adapter, err = openai.New(logger, "key", "")
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	assert.Nil(t, adapter)

	adapter, err = openai.New(nil, "key", "gpt-4o-mini")
	assert.Error(t, err)
	assert.Nil(t, adapter)

	adapter, err = openai.New(logger, "key", "gpt-4o-mini")
	assert.NoError(t, err)
	assert.Equal(t, "openai", adapter.Name())
}
