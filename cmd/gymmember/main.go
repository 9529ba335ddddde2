// cmd/gymmember/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"gymnexus/internal/config"
	"gymnexus/internal/console"
	"gymnexus/internal/logger"
	"gymnexus/internal/membership"
	"gymnexus/internal/telemetry"
)

func main() {
	id := flag.Int("id", 1, "member id")
	name := flag.String("name", "", "member name")
	location := flag.String("location", "", "member location")
	phone := flag.String("phone", "", "member phone")
	email := flag.String("email", "", "member email")
	gender := flag.String("gender", "", "member gender")
	dob := flag.String("dob", "", "date of birth")
	start := flag.String("start", "", "membership start date")
	flag.Parse()

	cmds, err := parseScript(flag.Args())
	if err != nil {
		log.Fatalf("Invalid command script: %v", err)
	}

	cfg := config.Load()
	logg := logger.New(cfg)

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx, telemetry.Config{
		ServiceName: cfg.ServiceName,
		Endpoint:    cfg.OTLPEndpoint,
		Insecure:    cfg.OTLPInsecure,
	})
	if err != nil {
		log.Fatalf("Failed to set up telemetry: %v", err)
	}

	member := membership.NewStandard(*id, *name, *location, *phone, *email, *gender, *dob, *start)
	runErr := run(ctx, os.Stdout, logg, member, cmds)

	stopTelemetry(ctx, shutdown, logg)
	if runErr != nil {
		log.Fatalf("Script failed: %v", runErr)
	}
}

// parseScript defaults an empty script to a single display.
func parseScript(args []string) ([]console.Command, error) {
	if len(args) == 0 {
		args = []string{string(console.CommandDisplay)}
	}
	return console.Parse(args)
}

func run(ctx context.Context, out io.Writer, logg *slog.Logger, member membership.Record, cmds []console.Command) error {
	runner, err := console.NewRunner(out, logg)
	if err != nil {
		return fmt.Errorf("failed to create runner: %w", err)
	}
	return runner.Run(ctx, member, cmds)
}

func stopTelemetry(ctx context.Context, shutdown func(context.Context) error, logg *slog.Logger) {
	if err := shutdown(ctx); err != nil {
		logg.Warn("telemetry shutdown failed", slog.Any("error", err))
	}
}
