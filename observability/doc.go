// Package observability wires OpenTelemetry metrics and tracing for the
// gochat services.
//
// InitMeter and InitTracer install global providers exporting over OTLP
// HTTP; auth components pick their instruments up through the global
// providers (otel.Meter), so a service that never calls Init simply gets
// the no-op providers.
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("gochat"), log)
//	defer mp.Shutdown(ctx)
package observability
