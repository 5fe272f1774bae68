package main

import (
	"context"

	"faabwatch/cmd/faabwatch/commands"
	"faabwatch/lib/serviceutil"
	"faabwatch/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	telemetry.InitSlog(true)
	tel, err := telemetry.SetupFromEnv(ctx, "faabwatch")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer tel.Shutdown(context.Background())
	telemetry.InstrumentPerfStats(ctx)

	commands.ExecuteContext(ctx)
}
