package logging

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// RecoverPanic logs a panic with its stack trace, then re-panics so the
// process still dies with the usual exit code. Call it deferred in main.
func RecoverPanic(logger zerolog.Logger) {
	r := recover()
	if r == nil {
		return
	}

	logger.WithLevel(zerolog.FatalLevel).
		Str("panic", fmt.Sprint(r)).
		Str("go", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Msg("unrecovered panic")
	fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())

	panic(r)
}
