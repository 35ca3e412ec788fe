package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/api/handlers"
)

type contextKey string

const staffIDKey contextKey = "staffID"

// HeaderStaffID identifies the staff member making a protected request.
const HeaderStaffID = "X-Staff-ID"

// Auth requires a numeric X-Staff-ID header on protected routes and stores
// the value in the request context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderStaffID)
		if raw == "" {
			handlers.RespondUnauthorized(w, "missing "+HeaderStaffID+" header")
			return
		}

		staffID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || staffID <= 0 {
			handlers.RespondUnauthorized(w, "invalid "+HeaderStaffID+" header")
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetStaffID extracts the authenticated staff identifier from the context.
func GetStaffID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(staffIDKey).(int64)
	return id, ok
}
