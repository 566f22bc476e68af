package http

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wearapparel/admin-console/internal/auth"
	rl "github.com/wearapparel/admin-console/internal/http/rate_limiter"
	"github.com/wearapparel/admin-console/internal/mailsvc"
)

type contextKey string

const (
	userIDKey   = contextKey("user_id")
	userRoleKey = contextKey("user_role")
)

// AuthMiddleware rejects requests without a valid bearer token and
// stashes the caller's identity in the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := auth.TokenClaims(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, "missing or invalid token", http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		if sub, ok := claims["sub"].(float64); ok {
			ctx = context.WithValue(ctx, userIDKey, int(sub))
		}
		if role, ok := claims["role"].(string); ok {
			ctx = context.WithValue(ctx, userRoleKey, role)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates a route to admin accounts. Must sit behind
// AuthMiddleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if role, _ := r.Context().Value(userRoleKey).(string); role != "admin" {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetUserID(r *http.Request) int {
	if val, ok := r.Context().Value(userIDKey).(int); ok {
		return val
	}
	return 0
}

var (
	strikeRdb     *redis.Client
	strikeCtx     context.Context
	alertMailer   mailsvc.Mailer
	alertTo       string
	strikeWarning = 10
)

// SetAbuseReporting wires the optional strike counter and alert mail
// for rate-limited clients. Both may stay nil; throttling itself works
// without them.
func SetAbuseReporting(rdb *redis.Client, ctx context.Context, m mailsvc.Mailer, to string) {
	strikeRdb = rdb
	strikeCtx = ctx
	alertMailer = m
	alertTo = to
}

// RateLimitMiddleware throttles per client IP. Applied to the
// unauthenticated auth routes only.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !rl.GetVisitor(ip).Allow() {
			recordStrike(ip, r.URL.Path)
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func recordStrike(ip, route string) {
	if strikeRdb == nil {
		return
	}

	key := "ratelimit:strikes:" + ip
	strikes, err := strikeRdb.Incr(strikeCtx, key).Result()
	if err != nil {
		log.Printf("Failed to record strike for %s: %v", ip, err)
		return
	}
	strikeRdb.Expire(strikeCtx, key, time.Hour)

	if int(strikes) == strikeWarning && alertMailer != nil && alertTo != "" {
		subject := fmt.Sprintf("Rate limit alert: %s", ip)
		body := fmt.Sprintf("Client: %s\nRoute: %s\nStrikes: %d\nTime: %s",
			ip, route, strikes, time.Now().Format(time.RFC3339))
		if err := alertMailer.Send(alertTo, subject, body); err != nil {
			log.Printf("Failed to send rate limit alert: %v", err)
		}
	}
}
