package goConsole

import "context"

type screenContextKey struct{}

// WithScreen attaches the originating screen name to ctx. The Console copies
// it into audit events so operators can trace which view issued a backend
// call.
func WithScreen(ctx context.Context, screen string) context.Context {
	return context.WithValue(ctx, screenContextKey{}, screen)
}

func screenFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	screen, _ := ctx.Value(screenContextKey{}).(string)
	return screen
}
