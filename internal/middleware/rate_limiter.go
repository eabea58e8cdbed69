package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/Italzenergy/AlzConnect-app/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ipLimiter is a sliding-window counter per client IP. One instance per
// protected surface so login throttling never competes with API traffic.
type ipLimiter struct {
	limit  int
	window time.Duration
	msg    string

	mu      sync.Mutex
	entries map[string]*ipWindow
}

type ipWindow struct {
	count     int
	windowEnd time.Time
}

func newIPLimiter(limit int, window time.Duration, msg string) *ipLimiter {
	l := &ipLimiter{
		limit:   limit,
		window:  window,
		msg:     msg,
		entries: make(map[string]*ipWindow),
	}
	go l.purgeLoop()
	return l
}

func (l *ipLimiter) allow(ip string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	entry, ok := l.entries[ip]
	if !ok || now.After(entry.windowEnd) {
		entry = &ipWindow{windowEnd: now.Add(l.window)}
		l.entries[ip] = entry
	}
	entry.count++
	return entry.count <= l.limit, entry.windowEnd
}

// purgeLoop removes expired entries so IPs that never return do not
// accumulate forever.
func (l *ipLimiter) purgeLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		purged := 0
		for ip, entry := range l.entries {
			if now.After(entry.windowEnd) {
				delete(l.entries, ip)
				purged++
			}
		}
		remaining := len(l.entries)
		l.mu.Unlock()
		if purged > 0 {
			log.Debug().Int("purged", purged).Int("remaining", remaining).Msg("rate limiter entries purged")
		}
	}
}

func (l *ipLimiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, windowEnd := l.allow(c.ClientIP())
		if !ok {
			c.Header("Retry-After", windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.msg))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return newIPLimiter(20, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.").handler()
}

// RateLimiter is the general-purpose API limiter.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newIPLimiter(limit, window, "Demasiadas solicitudes. Intente nuevamente en un momento.").handler()
}
