package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/prms-backend-go/internal/service/realtime"
)

// Provide makes the realtime provider available to every handler below it.
func Provide(p *realtime.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(realtime.WithProvider(r.Context(), p)))
		})
	}
}
