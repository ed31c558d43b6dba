package utils

import (
	"github.com/SandeepaDilakshana/UniBond/utils/flag"
	Logger "github.com/SandeepaDilakshana/UniBond/utils/log"
	"gopkg.in/DataDog/dd-trace-go.v1/profiler"
)

// InitProfiler starts the Datadog continuous profiler. Must be called from
// main, pairs with CloseProfiler.
func InitProfiler() {
	env := "development"
	if !flag.IsDevelopment {
		env = "production"
	}

	if err := profiler.Start(
		profiler.WithService(flag.ServiceName),
		profiler.WithEnv(env),
		profiler.WithProfileTypes(
			profiler.CPUProfile,
			profiler.HeapProfile,
			// The profiles below are disabled by
			// default to keep overhead low, but
			// can be enabled as needed.
			// profiler.BlockProfile,
			// profiler.MutexProfile,
			// profiler.GoroutineProfile,
		),
	); err != nil {
		Logger.Log.Fatal(err)
	}
}

// CloseProfiler stops the profiler, OK to be closed multiple times.
func CloseProfiler() {
	profiler.Stop()
}
