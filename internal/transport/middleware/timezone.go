package middleware

import (
	"net/http"
	"time"

	"github.com/bodyfuel/bodyfuel-backend/pkg/ctxutil"
)

// TimezoneHeader carries the caller's IANA time zone, e.g. "Europe/Berlin".
const TimezoneHeader = "X-Timezone"

// Timezone stores the location named in the X-Timezone header in the
// request context. Journal days are calendar days in that location. A
// missing header leaves the server default in effect; an unknown zone is
// rejected with 400.
func Timezone() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			name := r.Header.Get(TimezoneHeader)
			if name == "" {
				next.ServeHTTP(w, r)
				return
			}
			loc, err := time.LoadLocation(name)
			if err != nil {
				writeError(w, http.StatusBadRequest, "unknown time zone "+name)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithLocation(r.Context(), loc)))
		})
	}
}
