package reqctx

import "context"

type key int

const (
	keyRequestID key = iota
	keyUserID
	keyUserEmail
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyRequestID).(string)
	return v, ok
}

func WithUser(ctx context.Context, id, email string) context.Context {
	ctx = context.WithValue(ctx, keyUserID, id)
	return context.WithValue(ctx, keyUserEmail, email)
}

func GetUserID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyUserID).(string)
	return v, ok
}

func GetUserEmail(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyUserEmail).(string)
	return v, ok
}
