package session

import "context"

type ctxKey string

const ctxKeyID ctxKey = "session_id"

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyID, id)
}

func IDFromContext(ctx context.Context) string {
	if v := ctx.Value(ctxKeyID); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
