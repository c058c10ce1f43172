package catalog

import "context"

type userIDContextKey struct{}

// WithUserID scopes bag calls made with ctx to the given shopper.
func WithUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, userIDContextKey{}, uid)
}

// UserIDFromContext returns the shopper id set by WithUserID.
func UserIDFromContext(ctx context.Context) string {
	uid, _ := ctx.Value(userIDContextKey{}).(string)
	return uid
}
