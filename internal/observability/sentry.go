package observability

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// Init wires Sentry error reporting. An empty DSN disables it; every capture
// below becomes a no-op in that case.
func Init(dsn string, environment string) error {
	if dsn == "" {
		return nil
	}

	return sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		AttachStacktrace: true,
	})
}

func Flush() {
	sentry.Flush(2 * time.Second)
}

// CapturePanic reports a recovered panic value.
func CapturePanic(recovered any) {
	sentry.CurrentHub().CaptureException(fmt.Errorf("panic: %v", recovered))
}
