// internal/console/runner.go
package console

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"gymnexus/internal/membership"
)

const instrumentationName = "gymnexus/console"

// Runner applies command scripts to a single member. It is not safe for
// concurrent use.
type Runner struct {
	out      io.Writer
	log      *slog.Logger
	tracer   trace.Tracer
	commands metric.Int64Counter
}

type options struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// Option customizes a Runner.
type Option func(*options)

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

// WithMeterProvider overrides the global meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.meterProvider = mp }
}

// NewRunner creates a runner writing member output to out.
func NewRunner(out io.Writer, log *slog.Logger, opts ...Option) (*Runner, error) {
	o := options{
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	counter, err := o.meterProvider.Meter(instrumentationName).Int64Counter(
		"member_commands_total",
		metric.WithDescription("Total number of member commands executed"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create command counter: %w", err)
	}

	return &Runner{
		out:      out,
		log:      log,
		tracer:   o.tracerProvider.Tracer(instrumentationName),
		commands: counter,
	}, nil
}

// Run executes cmds in order against rec and stops at the first failure.
func (r *Runner) Run(ctx context.Context, rec membership.Record, cmds []Command) error {
	if len(cmds) == 0 {
		return ErrEmptyScript
	}

	runID := uuid.New().String()
	ctx, span := r.tracer.Start(ctx, "console.run",
		trace.WithAttributes(
			attribute.String("run.id", runID),
			attribute.Int("member.id", rec.ID()),
			attribute.Int("command.count", len(cmds)),
		),
	)
	defer span.End()

	log := r.log.With(slog.String("run_id", runID), slog.Int("member_id", rec.ID()))

	for i, cmd := range cmds {
		if err := r.exec(ctx, rec, cmd); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			log.Error("command failed", slog.String("command", string(cmd)), slog.Int("step", i+1), slog.Any("error", err))
			return fmt.Errorf("step %d (%s): %w", i+1, cmd, err)
		}
		log.Debug("command applied",
			slog.String("command", string(cmd)),
			slog.Bool("active", rec.Active()),
			slog.Int("attendance", rec.Attendance()),
			slog.Float64("loyalty_points", rec.LoyaltyPoints()),
		)
	}

	log.Info("script completed",
		slog.Int("commands", len(cmds)),
		slog.Bool("active", rec.Active()),
		slog.Int("attendance", rec.Attendance()),
	)
	return nil
}

func (r *Runner) exec(ctx context.Context, rec membership.Record, cmd Command) error {
	ctx, span := r.tracer.Start(ctx, "console."+string(cmd))
	defer span.End()

	var err error
	switch cmd {
	case CommandActivate:
		rec.Activate()
	case CommandDeactivate:
		rec.Deactivate()
	case CommandReset:
		rec.Reset()
	case CommandAttend:
		rec.MarkAttendance()
	case CommandDisplay:
		err = rec.Display(r.out)
	case CommandJSON:
		if encErr := json.NewEncoder(r.out).Encode(rec.Snapshot()); encErr != nil {
			err = fmt.Errorf("failed to encode member %d: %w", rec.ID(), encErr)
		}
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}

	span.SetAttributes(
		attribute.Int("member.id", rec.ID()),
		attribute.Bool("member.active", rec.Active()),
		attribute.Int("member.attendance", rec.Attendance()),
	)
	r.commands.Add(ctx, 1, metric.WithAttributes(attribute.String("command", string(cmd))))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
