package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eventhive/eventhive_api/internal/utils"
)

// SigninRateLimiter slows down credential guessing. Only failed sign-in
// attempts count against the limit: 5 per IP per minute.
type SigninRateLimiter struct {
	mu       sync.Mutex
	attempts map[string]*attemptInfo
}

type attemptInfo struct {
	count   int
	firstAt time.Time
}

func NewSigninRateLimiter() *SigninRateLimiter {
	rl := &SigninRateLimiter{
		attempts: make(map[string]*attemptInfo),
	}
	go rl.cleanup()
	return rl
}

// Handle rejects blocked IPs up front and records a failure whenever the
// wrapped handler responds 401.
func (r *SigninRateLimiter) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if r.blocked(ip) {
			utils.Error(c, http.StatusTooManyRequests, "Too many failed attempts, try again later")
			c.Abort()
			return
		}

		c.Next()

		if c.Writer.Status() == http.StatusUnauthorized {
			r.record(ip)
		}
	}
}

func (r *SigninRateLimiter) blocked(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	info, exists := r.attempts[ip]
	if !exists {
		return false
	}
	if time.Since(info.firstAt) > time.Minute {
		delete(r.attempts, ip)
		return false
	}
	return info.count >= 5
}

func (r *SigninRateLimiter) record(ip string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	info, exists := r.attempts[ip]
	if !exists || now.Sub(info.firstAt) > time.Minute {
		r.attempts[ip] = &attemptInfo{count: 1, firstAt: now}
		return
	}
	info.count++
}

func (r *SigninRateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		r.mu.Lock()
		now := time.Now()
		for ip, info := range r.attempts {
			if now.Sub(info.firstAt) > time.Minute {
				delete(r.attempts, ip)
			}
		}
		r.mu.Unlock()
	}
}
