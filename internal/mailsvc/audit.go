package mailsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	rdb *redis.Client
	ctx context.Context
)

// SetRedis attaches the redis client used for the audit trail. Without
// it, audit logging is skipped silently.
func SetRedis(r *redis.Client, c context.Context) {
	rdb = r
	ctx = c
}

// ResetRequestEntry records one password-reset request for the daily
// summary mail.
type ResetRequestEntry struct {
	Email string    `json:"email"`
	IP    string    `json:"ip"`
	Time  time.Time `json:"time"`
}

const DailyResetLogKey = "auth:resetlog:daily"

func LogResetRequest(email, ip string) {
	if rdb == nil {
		return
	}

	entry := ResetRequestEntry{Email: email, IP: ip, Time: time.Now()}
	data, err := json.Marshal(entry)
	if err != nil {
		log.Printf("Failed to marshal reset log entry: %v", err)
		return
	}
	if err := rdb.RPush(ctx, DailyResetLogKey, data).Err(); err != nil {
		log.Printf("Failed to log reset request: %v", err)
	}
}

// StartDailyResetSummary periodically drains the reset log and mails a
// summary to the operations inbox. Run as a goroutine from main.
func StartDailyResetSummary(interval time.Duration, m Mailer, alertTo string) {
	for {
		time.Sleep(interval)

		if rdb == nil || alertTo == "" {
			continue
		}

		entries, err := rdb.LRange(ctx, DailyResetLogKey, 0, -1).Result()
		if err != nil {
			log.Printf("Failed to read reset log: %v", err)
			continue
		}
		if len(entries) == 0 {
			continue
		}

		body := fmt.Sprintf("%d password reset requests in the last period:\n", len(entries))
		for _, raw := range entries {
			var e ResetRequestEntry
			if err := json.Unmarshal([]byte(raw), &e); err != nil {
				continue
			}
			body += fmt.Sprintf("- %s from %s at %s\n", e.Email, e.IP, e.Time.Format(time.RFC3339))
		}

		subject := fmt.Sprintf("Password reset summary: %d requests", len(entries))
		if err := m.Send(alertTo, subject, body); err != nil {
			log.Printf("Failed to send reset summary: %v", err)
			continue
		}

		if err := rdb.Del(ctx, DailyResetLogKey).Err(); err != nil {
			log.Printf("Failed to clear reset log: %v", err)
		}
	}
}
