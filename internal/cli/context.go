package cli

import (
	"context"
	"errors"

	"github.com/thenoetrevino/flowmaster/internal/app"
)

// ErrNoApp is returned when a command runs without an application in its context.
var ErrNoApp = errors.New("application not initialized")

type appKey struct{}

// WithApp stores the application container in ctx for commands to use.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// AppFromContext returns the application container stored by WithApp.
func AppFromContext(ctx context.Context) (*app.App, error) {
	if ctx == nil {
		return nil, ErrNoApp
	}
	a, ok := ctx.Value(appKey{}).(*app.App)
	if !ok || a == nil {
		return nil, ErrNoApp
	}
	return a, nil
}
