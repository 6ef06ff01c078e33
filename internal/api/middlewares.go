package api

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5/request"

	"github.com/samandr77/microservices/intranet/internal/entity"
	"github.com/samandr77/microservices/intranet/internal/session"
	"github.com/samandr77/microservices/intranet/pkg/logger"
)

type ctxKeySession struct{}

// SessionResolver turns a bearer token into the session it was issued for.
type SessionResolver interface {
	Resolve(ctx context.Context, accessToken string) (string, *session.Session, error)
}

// tokenExtractor also reads ?access_token= because EventSource cannot set headers.
var tokenExtractor = request.MultiExtractor{
	request.BearerExtractor{},
	request.ArgumentExtractor{"access_token"},
}

type Middleware struct {
	sessions SessionResolver
}

func NewMiddleware(sessions SessionResolver) *Middleware {
	return &Middleware{
		sessions: sessions,
	}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.SetRequestID(r.Context(), uuid.Must(uuid.NewV4()).String())
		ctx = logger.SetMethod(ctx, r.Method)
		ctx = logger.SetURL(ctx, r.URL.Path)

		headers := ""

		for k, v := range r.Header {
			if k == "Authorization" {
				continue
			}

			headers += fmt.Sprintf("%s: %s,\n", k, v)
		}

		slog.InfoContext(ctx, "incoming request", "headers", headers, "user_ip", r.RemoteAddr)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func(ctx context.Context) {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "panic", "error", err, "stack", string(debug.Stack()))
				SendErr(ctx, w, http.StatusInternalServerError, fmt.Errorf("panic: %v", err), errInternalText)
			}
		}(r.Context())
		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control")

		if r.Method == http.MethodOptions {
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) WithIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := removePort(r.RemoteAddr)

		if xRealIP := r.Header.Get("X-Real-IP"); xRealIP != "" {
			xRealIP = removePort(strings.TrimSpace(xRealIP))
			if net.ParseIP(xRealIP) != nil {
				ip = xRealIP
			}
		}

		ctx := context.WithValue(r.Context(), entity.CtxKeyIP{}, ip)
		ctx = logger.SetIP(ctx, ip)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Identify attaches the viewer's session to the request when a valid token is present.
// Requests without one pass through anonymously.
func (m *Middleware) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accessToken, err := tokenExtractor.ExtractToken(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx, err := m.resolve(r.Context(), accessToken)
		if err != nil {
			slog.DebugContext(r.Context(), "anonymous request", "error", err)
			next.ServeHTTP(w, r)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		accessToken, err := tokenExtractor.ExtractToken(r)
		if err != nil {
			sendErr(ctx, w, http.StatusUnauthorized, ResponseError{
				Message:  "Pas de jeton dans l'en-tête",
				Error:    err.Error(),
				Redirect: entity.RouteLogin,
			})

			return
		}

		ctx, err = m.resolve(ctx, accessToken)
		if err != nil {
			SendServiceErr(r.Context(), w, err, errInternalText)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) resolve(ctx context.Context, accessToken string) (context.Context, error) {
	sid, s, err := m.sessions.Resolve(ctx, accessToken)
	if err != nil {
		return ctx, err
	}

	identity, ok := s.Identity()
	if !ok {
		return ctx, entity.ErrSessionExpired
	}

	ctx = logger.SetUserID(ctx, identity.ID)
	ctx = entity.SetIdentityToContext(ctx, identity)
	ctx = entity.SetSessionIDToContext(ctx, sid)
	ctx = context.WithValue(ctx, ctxKeySession{}, s)

	return ctx, nil
}

// Guard admits the request only when the viewer's session may open route.
func (m *Middleware) Guard(route string) func(http.Handler) http.Handler {
	roles, ok := entity.RouteRoles(route)
	if !ok {
		panic(fmt.Sprintf("guard on unknown route %q", route))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			d := sessionFromCtx(ctx).CanAccess(route, roles...)
			if !d.Allowed() {
				sendDecision(ctx, w, d)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func sendDecision(ctx context.Context, w http.ResponseWriter, d entity.Decision) {
	body := ResponseError{Redirect: d.Redirect, Error: fmt.Sprintf("route %s: %s", d.Route, d.Verdict)}

	switch d.Verdict {
	case entity.VerdictPending:
		body.Message = "Connexion en cours"
		sendErr(ctx, w, http.StatusConflict, body)
	case entity.VerdictLogin:
		body.Message = "Authentification requise"
		sendErr(ctx, w, http.StatusUnauthorized, body)
	default:
		body.Message = "Accès refusé"
		sendErr(ctx, w, http.StatusForbidden, body)
	}
}

// sessionFromCtx returns the viewer's session, or an unauthenticated one for anonymous requests.
func sessionFromCtx(ctx context.Context) *session.Session {
	s, ok := ctx.Value(ctxKeySession{}).(*session.Session)
	if !ok || s == nil {
		return session.New(nil, 0)
	}

	return s
}

func removePort(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}

	return host
}
