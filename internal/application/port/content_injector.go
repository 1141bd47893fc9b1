package port

import "context"

//go:generate mockgen -source=content_injector.go -destination=mocks/mock_content_injector.go -package=mocks

// ContentFilterInstaller compiles declarative block rules into the engine's
// content filter store and attaches them to the browsing surface.
type ContentFilterInstaller interface {
	// InstallContentFilter compiles rulesJSON under identifier. Compilation is
	// asynchronous; done runs on the UI thread with the outcome.
	InstallContentFilter(ctx context.Context, identifier string, rulesJSON []byte, done func(error))
}
