package logging_test

import (
	"context"
	"testing"

	"github.com/agentstation/apiflags/pkg/logging"
	"github.com/stretchr/testify/assert"
)

func TestContextFunctions(t *testing.T) {
	t.Run("WithSource adds source to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithSource(ctx, "public.txt")

		// Extract logger and verify it has the source field
		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithTag adds tag to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithTag(ctx, "greylist")

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithStage adds stage to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithStage(ctx, "strict")

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithOperation adds operation to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithOperation(ctx, "merge_csv")

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithFields adds custom fields to context", func(t *testing.T) {
		ctx := context.Background()
		fields := map[string]interface{}{
			"entries": 123,
			"run_id":  "abc-def",
		}
		ctx = logging.WithFields(ctx, fields)

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("FromContext returns logger from context", func(t *testing.T) {
		ctx := context.Background()

		// First call should fall back to the default logger
		logger1 := logging.FromContext(ctx)
		assert.NotNil(t, logger1)

		// Add source and get logger again
		ctx = logging.WithSource(ctx, "private.txt")
		logger2 := logging.FromContext(ctx)
		assert.NotNil(t, logger2)
	})

	t.Run("Ctx extracts logger from context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithSource(ctx, "flags.csv")

		logger := logging.Ctx(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("chaining context functions", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithStage(ctx, "lenient")
		ctx = logging.WithSource(ctx, "greylist-max-o.txt")
		ctx = logging.WithOperation(ctx, "assign")
		ctx = logging.WithTag(ctx, "greylist-max-o")

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})
}
