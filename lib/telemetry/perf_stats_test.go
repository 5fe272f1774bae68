package telemetry

import (
	"context"
	"testing"
)

func TestInstrumentPerfStatsStopsOnContextCancel(t *testing.T) {
	cleanup := SetupForTesting(t, "test:telemetry")
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	InstrumentPerfStats(ctx)
	cancel()
}
