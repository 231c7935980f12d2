package metrics

import (
	"context"
	"time"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

// Distributions
var defaultMillisecondsDistribution = view.Distribution(
	0.01, 0.05, 0.1, 0.3, 0.6, 0.8, 1, 2, 3, 4, 5, 6, 8, // Very short intervals for fast operations
	10, 20, 30, 40, 50, 60, 70, 80, 90, 100, // 10 ms intervals up to 100 ms
	150, 200, 250, 300, 350, 400, 450, 500, // 50 ms intervals from 100 to 500 ms
	600, 700, 800, 900, 1000, // 100 ms intervals from 500 to 1000 ms
	2000, 3000, 4000, 5000, 10000,
)

// Tags
var (
	// common
	Version, _ = tag.NewKey("version")
	Commit, _  = tag.NewKey("commit")

	// vm
	Program, _  = tag.NewKey("program")
	Method, _   = tag.NewKey("method")
	ExitCode, _ = tag.NewKey("exit_code")
)

// Measures
var (
	KonnectInfo           = stats.Int64("info", "Arbitrary counter to tag konnect info to", stats.UnitDimensionless)
	MessageApplied        = stats.Int64("message/applied", "Counter for applied messages", stats.UnitDimensionless)
	MessageApplyDuration  = stats.Float64("message/apply_ms", "Duration of message application", stats.UnitMilliseconds)
	MessageRejected       = stats.Int64("message/rejected", "Counter for messages rejected before execution", stats.UnitDimensionless)
	JournalEventsRecorded = stats.Int64("journal/events", "Counter for program events written to the journal", stats.UnitDimensionless)
	StateFlushDuration    = stats.Float64("state/flush_ms", "Duration of state flushes", stats.UnitMilliseconds)
)

var (
	InfoView = &view.View{
		Name:        "info",
		Description: "Konnect node information",
		Measure:     KonnectInfo,
		Aggregation: view.LastValue(),
		TagKeys:     []tag.Key{Version, Commit},
	}
	MessageAppliedView = &view.View{
		Measure:     MessageApplied,
		Aggregation: view.Count(),
		TagKeys:     []tag.Key{Program, Method, ExitCode},
	}
	MessageApplyDurationView = &view.View{
		Measure:     MessageApplyDuration,
		Aggregation: defaultMillisecondsDistribution,
		TagKeys:     []tag.Key{Program, Method},
	}
	MessageRejectedView = &view.View{
		Measure:     MessageRejected,
		Aggregation: view.Count(),
		TagKeys:     []tag.Key{ExitCode},
	}
	JournalEventsRecordedView = &view.View{
		Measure:     JournalEventsRecorded,
		Aggregation: view.Count(),
		TagKeys:     []tag.Key{Program},
	}
	StateFlushDurationView = &view.View{
		Measure:     StateFlushDuration,
		Aggregation: defaultMillisecondsDistribution,
	}
)

// DefaultViews is an array of OpenCensus views for metric gathering purposes
var DefaultViews = []*view.View{
	InfoView,
	MessageAppliedView,
	MessageApplyDurationView,
	MessageRejectedView,
	JournalEventsRecordedView,
	StateFlushDurationView,
}

// SinceInMilliseconds returns the duration of time since the provide time as a float64.
func SinceInMilliseconds(startTime time.Time) float64 {
	return float64(time.Since(startTime).Nanoseconds()) / 1e6
}

// Timer is a function stopwatch, calling it starts the timer,
// calling the returned function will record the duration.
func Timer(ctx context.Context, m *stats.Float64Measure) func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		stats.Record(ctx, m.M(SinceInMilliseconds(start)))
		return time.Since(start)
	}
}
