package utils

import (
	"github.com/SandeepaDilakshana/UniBond/utils/flag"
	Logger "github.com/SandeepaDilakshana/UniBond/utils/log"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

// InitTracer starts the Datadog tracer. Must be called from main before
// serving any traffic.
func InitTracer() {
	env := "development"
	if !flag.IsDevelopment {
		env = "production"
	}

	tracer.Start(
		tracer.WithService(flag.ServiceName),
		tracer.WithEnv(env),
	)

	Logger.Log.Info("tracer initialized")
}

// CloseTracer stops the tracer, OK to be closed multiple times.
func CloseTracer() {
	tracer.Stop()
}
