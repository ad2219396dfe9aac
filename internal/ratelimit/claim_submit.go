package ratelimit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Claim submissions are throttled per client IP: a small burst for a
// household sharing one address, then roughly one claim per minute.
const (
	claimSubmitRate  = 1.0 / 60.0
	claimSubmitBurst = 5
)

// ClaimSubmitLimiter throttles public claims-book submissions. It runs
// on redis when available so replicas share buckets, with a local
// token bucket fallback otherwise.
type ClaimSubmitLimiter struct {
	bucket *TokenBucket
	log    *zap.Logger

	mu    sync.Mutex
	local map[string]*localBucket
}

type localBucket struct {
	tokens float64
	last   time.Time
}

func NewClaimSubmitLimiter(bucket *TokenBucket, log *zap.Logger) *ClaimSubmitLimiter {
	return &ClaimSubmitLimiter{
		bucket: bucket,
		log:    log.Named("ratelimit.claims"),
		local:  make(map[string]*localBucket),
	}
}

// Allow reports whether this client may submit another claim now.
func (l *ClaimSubmitLimiter) Allow(ctx context.Context, clientIP string) bool {
	if clientIP == "" {
		return true
	}

	if l.bucket != nil {
		res, err := l.bucket.Allow(ctx, "fogon:claims:"+clientIP, claimSubmitRate, claimSubmitBurst)
		if err == nil {
			return res.Allowed
		}
		// Redis trouble must not block legitimate claims.
		l.log.Warn("redis limiter failed, falling back to local", zap.Error(err))
	}

	return l.allowLocal(clientIP)
}

func (l *ClaimSubmitLimiter) allowLocal(clientIP string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	bucket, ok := l.local[clientIP]
	if !ok {
		bucket = &localBucket{tokens: claimSubmitBurst, last: now}
		l.local[clientIP] = bucket
	} else {
		elapsed := now.Sub(bucket.last).Seconds()
		bucket.tokens = min(claimSubmitBurst, bucket.tokens+elapsed*claimSubmitRate)
		bucket.last = now
	}

	if bucket.tokens < 1 {
		return false
	}
	bucket.tokens--
	return true
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
