package httpapi

import (
	"context"

	"github.com/rdmgray/eplpal/internal/platform/logging"
)

// withRequestID attaches id to every context-aware log line of the request.
func withRequestID(ctx context.Context, id string) context.Context {
	return logging.ContextWith(ctx, "request_id", id)
}
