package provider

import (
	"context"

	"github.com/google/generative-ai-go/genai"
)

// ContentProvider returns schema-constrained JSON text for a prompt.
// Implementations should honour ctx cancellation; callers still bound the
// wait on their own.
type ContentProvider interface {
	Complete(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}
