package httpapi

import (
	"context"

	"github.com/riskibarqy/soccer-tracker/internal/usecase"
)

type contextKey string

const (
	sessionContextKey     contextKey = "tracker_session"
	requestInfoContextKey contextKey = "request_info"
)

func withSession(ctx context.Context, session *usecase.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

func sessionFromContext(ctx context.Context) (*usecase.Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(*usecase.Session)
	return session, ok && session != nil
}

// requestInfo is filled in by inner handlers and read back by RequestLogging once the
// request has been served.
type requestInfo struct {
	route string
}

func withRequestInfo(ctx context.Context, info *requestInfo) context.Context {
	return context.WithValue(ctx, requestInfoContextKey, info)
}

func requestInfoFromContext(ctx context.Context) (*requestInfo, bool) {
	info, ok := ctx.Value(requestInfoContextKey).(*requestInfo)
	return info, ok && info != nil
}
