package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/bodyfuel/bodyfuel-backend/internal/config"
)

type corsPolicy struct {
	anyOrigin   bool
	origins     map[string]struct{}
	methods     []string
	allowMethod string
	allowHeader string
	credentials bool
	maxAge      string
}

func newCORSPolicy(cfg config.CORSConfig) *corsPolicy {
	p := &corsPolicy{
		origins:     make(map[string]struct{}),
		methods:     splitList(cfg.AllowedMethods),
		credentials: cfg.AllowCredentials,
		maxAge:      strconv.Itoa(cfg.MaxAge),
	}
	for _, o := range splitList(cfg.AllowedOrigins) {
		if o == "*" {
			p.anyOrigin = true
			continue
		}
		p.origins[o] = struct{}{}
	}
	p.allowMethod = strings.Join(p.methods, ",")
	p.allowHeader = strings.Join(splitList(cfg.AllowedHeaders), ",")
	return p
}

// allowOrigin returns the Access-Control-Allow-Origin value for origin, or
// "" when the origin is not allowed. A wildcard policy answers "*" unless
// credentials are allowed, in which case the origin is echoed.
func (p *corsPolicy) allowOrigin(origin string) string {
	if _, ok := p.origins[origin]; ok {
		return origin
	}
	if p.anyOrigin {
		if p.credentials {
			return origin
		}
		return "*"
	}
	return ""
}

// CORS returns middleware that answers preflight requests for the web
// client and decorates actual responses. The request id header is exposed
// so the client can quote it in bug reports.
func CORS(cfg config.CORSConfig) Middleware {
	p := newCORSPolicy(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			allowed := ""
			if origin != "" {
				allowed = p.allowOrigin(origin)
			}
			if allowed != "" {
				h.Set("Access-Control-Allow-Origin", allowed)
				h.Set("Access-Control-Expose-Headers", RequestIDHeader)
				if p.credentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			requested := r.Header.Get("Access-Control-Request-Method")
			if r.Method != http.MethodOptions || requested == "" {
				next.ServeHTTP(w, r)
				return
			}

			// Preflight. Without the Allow-* headers the browser blocks the
			// actual request.
			h.Add("Vary", "Access-Control-Request-Method")
			h.Add("Vary", "Access-Control-Request-Headers")
			if allowed != "" && slices.Contains(p.methods, strings.ToUpper(requested)) {
				h.Set("Access-Control-Allow-Methods", p.allowMethod)
				h.Set("Access-Control-Allow-Headers", p.allowHeader)
				h.Set("Access-Control-Max-Age", p.maxAge)
			}
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

// splitList splits a comma-separated config value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
