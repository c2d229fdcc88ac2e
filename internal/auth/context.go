package auth

import "context"

type ctxKey string

const (
	ctxKeySub  ctxKey = "sub"
	ctxKeyRole ctxKey = "role"
	ctxKeyName ctxKey = "name"
)

// Learner identifies the authenticated end user for downstream handlers.
type Learner struct {
	ID          string
	Role        string
	DisplayName string
}

func WithLearner(ctx context.Context, l Learner) context.Context {
	ctx = context.WithValue(ctx, ctxKeySub, l.ID)
	ctx = context.WithValue(ctx, ctxKeyRole, l.Role)
	return context.WithValue(ctx, ctxKeyName, l.DisplayName)
}

// LearnerFromContext returns the authenticated learner, or ok=false when the
// request carried no valid token.
func LearnerFromContext(ctx context.Context) (Learner, bool) {
	id, _ := ctx.Value(ctxKeySub).(string)
	if id == "" {
		return Learner{}, false
	}
	role, _ := ctx.Value(ctxKeyRole).(string)
	name, _ := ctx.Value(ctxKeyName).(string)
	return Learner{ID: id, Role: role, DisplayName: name}, true
}

func RoleFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(ctxKeyRole).(string); ok {
		return s
	}
	return ""
}
