package auditlog

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/coophub/internal/app/store/audit"
	"github.com/dalemusser/coophub/internal/app/system/auth"
	"github.com/dalemusser/coophub/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// storeTimeout bounds the write after the response has been sent.
const storeTimeout = 5 * time.Second

// Content records one content event per mutating request (POST, PUT, PATCH,
// DELETE). It must run inside the auth gate so the caller is known.
func (l *Logger) Content(next http.Handler) http.Handler {
	if l == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		rctx := chi.RouteContext(r.Context())
		pattern := r.URL.Path
		if rctx != nil && rctx.RoutePattern() != "" {
			pattern = rctx.RoutePattern()
		}

		e := audit.Event{
			Category:  audit.CategoryContent,
			EventType: contentEventType(r.Method, pattern, status),
			Resource:  resourceOf(pattern),
			IP:        ratelimit.ClientIP(r),
			UserAgent: r.UserAgent(),
			Success:   status < http.StatusBadRequest,
			Details:   map[string]string{"route": r.Method + " " + pattern},
		}
		if rctx != nil {
			e.ResourceID = rctx.URLParam("id")
		}
		if u, ok := auth.CurrentUser(r); ok {
			e.ActorID = &u.ID
		}
		if !e.Success {
			e.FailureReason = http.StatusText(status)
		}

		ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), storeTimeout)
		defer cancel()
		l.Log(ctx, e)
	})
}

func contentEventType(method, pattern string, status int) string {
	if status == http.StatusForbidden {
		return audit.EventDenied
	}
	switch method {
	case http.MethodPost:
		return audit.EventCreated
	case http.MethodDelete:
		return audit.EventDeleted
	}
	if strings.HasSuffix(pattern, "/toggle") {
		return audit.EventToggled
	}
	return audit.EventUpdated
}

// resourceOf returns the path below /api up to the first parameter, e.g.
// "/api/about/values/{id}" -> "about/values".
func resourceOf(pattern string) string {
	p := strings.TrimPrefix(pattern, "/api/")
	var parts []string
	for _, seg := range strings.Split(p, "/") {
		if seg == "" || strings.HasPrefix(seg, "{") || seg == "*" {
			break
		}
		parts = append(parts, seg)
	}
	return strings.Join(parts, "/")
}
