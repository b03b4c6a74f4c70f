package reporter

import (
	"context"

	"github.com/yaklabco/unigrid/pkg/runner"
)

// Renderer formats a runner.Result for output.
// Renderers are stateless and only handle presentation logic.
type Renderer interface {
	// Render writes the formatted result to the configured output.
	Render(ctx context.Context, result *runner.Result) error
}
