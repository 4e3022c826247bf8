package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/menu-service/internal/cache"
	"github.com/guttosm/menu-service/internal/logger"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key (RFC standard).
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the replay store.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// DefaultIdempotencyTTL is how long a create response can be replayed.
	DefaultIdempotencyTTL = 5 * time.Minute
	// idempotencyKeyPrefix namespaces replay records in the cache store.
	idempotencyKeyPrefix = "idempotency:"
)

// storedResponse is a replayable create response.
type storedResponse struct {
	StatusCode  int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// Idempotency returns a middleware that replays POST responses for a
// repeated Idempotency-Key. Replay records live in store under
// "idempotency:<hash>", where the hash covers the key, the path and the
// body, so every instance sharing the store sees them. Store failures
// never fail the request; the create simply runs.
func Idempotency(store cache.Store, ttl time.Duration) gin.HandlerFunc {
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if store == nil || key == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		storeKey, err := idempotencyStoreKey(key, c.Request)
		if err != nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		if raw, found, err := store.Get(ctx, storeKey); err == nil && found {
			var resp storedResponse
			if json.Unmarshal(raw, &resp) == nil {
				c.Header(IdempotencyReplayedHeader, "true")
				c.Data(resp.StatusCode, resp.ContentType, resp.Body)
				c.Abort()
				return
			}
		}

		writer := &captureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status < 200 || status >= 300 {
			return
		}
		raw, err := json.Marshal(storedResponse{
			StatusCode:  status,
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body.Bytes(),
		})
		if err != nil {
			return
		}
		if err := store.Set(ctx, storeKey, raw, ttl); err != nil {
			log := logger.Logger()
			log.Warn().Err(err).Str("request_id", GetRequestID(c)).Msg("Failed to store idempotent response")
		}
	}
}

// idempotencyStoreKey hashes the client key with the path and body, then
// restores the body for the handler.
func idempotencyStoreKey(key string, req *http.Request) (string, error) {
	hasher := sha256.New()
	hasher.Write([]byte(key))
	hasher.Write([]byte(req.URL.Path))

	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return "", err
		}
		req.Body = io.NopCloser(bytes.NewReader(body))
		hasher.Write(body)
	}
	return idempotencyKeyPrefix + hex.EncodeToString(hasher.Sum(nil)), nil
}

// captureWriter tees the response body.
type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
