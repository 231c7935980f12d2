package helpers

import (
	"context"
)

// MetricsCtx is a context wrapper with metrics
type MetricsCtx context.Context
