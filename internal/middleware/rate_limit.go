package middleware

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/menu-service/internal/domain/dto"
	"github.com/guttosm/menu-service/internal/i18n"
	"golang.org/x/time/rate"
)

const defaultNumShards = 16

// client is one caller's limiter and when it was last seen.
type client struct {
	limiter *rate.Limiter
	seen    time.Time
}

type limiterShard struct {
	mu      sync.Mutex
	clients map[string]*client
}

// ShardedRateLimiter gives each client a token bucket: a burst of up to
// rate requests, refilled at rate per window by a rate.Limiter. Clients are spread across
// shards by FNV hash so unrelated clients rarely share a lock.
type ShardedRateLimiter struct {
	shards   []*limiterShard
	rate     int
	window   time.Duration
	perToken time.Duration
	now      func() time.Time

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a limiter with the default shard count.
func NewRateLimiter(requests int, window time.Duration) *ShardedRateLimiter {
	return NewShardedRateLimiter(requests, window, defaultNumShards)
}

// NewShardedRateLimiter creates a limiter allowing requests per window for
// each client.
func NewShardedRateLimiter(requests int, window time.Duration, numShards int) *ShardedRateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}
	if requests <= 0 {
		requests = 1
	}
	if window <= 0 {
		window = time.Minute
	}

	rl := &ShardedRateLimiter{
		shards:   make([]*limiterShard, numShards),
		rate:     requests,
		window:   window,
		perToken: window / time.Duration(requests),
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
	for i := range rl.shards {
		rl.shards[i] = &limiterShard{clients: make(map[string]*client)}
	}

	go rl.sweep()
	return rl
}

func (rl *ShardedRateLimiter) shardFor(id string) *limiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// take consumes a token for id. It returns whether the request may pass, the
// whole tokens left and, when refused, how long until the next token.
func (rl *ShardedRateLimiter) take(id string) (allowed bool, remaining int, retryAfter time.Duration) {
	shard := rl.shardFor(id)
	now := rl.now()

	shard.mu.Lock()
	defer shard.mu.Unlock()

	cl, ok := shard.clients[id]
	if !ok {
		cl = &client{limiter: rate.NewLimiter(rate.Every(rl.perToken), rl.rate)}
		shard.clients[id] = cl
	}
	cl.seen = now

	if cl.limiter.AllowN(now, 1) {
		return true, int(cl.limiter.TokensAt(now)), 0
	}

	r := cl.limiter.ReserveN(now, 1)
	wait := r.DelayFrom(now)
	r.CancelAt(now)
	return false, 0, wait
}

// RateLimit returns a middleware that limits requests per client. Clients
// presenting an API key are counted by key, everyone else by IP.
func (rl *ShardedRateLimiter) RateLimit() gin.HandlerFunc {
	limit := strconv.Itoa(rl.rate)

	return func(c *gin.Context) {
		allowed, remaining, retryAfter := rl.take(clientIdentifier(c))

		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			seconds := (retryAfter + time.Second - 1) / time.Second
			c.Header("Retry-After", strconv.Itoa(max(int(seconds), 1)))
			message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c)))
			return
		}

		c.Next()
	}
}

// clientIdentifier returns the API key if one was sent, otherwise the IP.
func clientIdentifier(c *gin.Context) string {
	if key := c.GetHeader(APIKeyHeader); key != "" {
		return "key:" + key
	}
	return "ip:" + c.ClientIP()
}

// sweep drops clients not seen for a whole window. Their buckets would be
// full again by then.
func (rl *ShardedRateLimiter) sweep() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.dropIdle()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *ShardedRateLimiter) dropIdle() {
	cutoff := rl.now().Add(-rl.window)
	for _, shard := range rl.shards {
		shard.mu.Lock()
		for id, cl := range shard.clients {
			if cl.seen.Before(cutoff) {
				delete(shard.clients, id)
			}
		}
		shard.mu.Unlock()
	}
}

// Stop ends the sweeper. Calling it twice is safe.
func (rl *ShardedRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Stats returns the number of tracked clients, total and per shard.
func (rl *ShardedRateLimiter) Stats() (total int, perShard []int) {
	perShard = make([]int, len(rl.shards))
	for i, shard := range rl.shards {
		shard.mu.Lock()
		perShard[i] = len(shard.clients)
		shard.mu.Unlock()
		total += perShard[i]
	}
	return total, perShard
}
