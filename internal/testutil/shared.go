//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

// Backend names a container kind shared across a package's tests.
type Backend string

const (
	Postgres Backend = "postgres"
	MongoDB  Backend = "mongodb"
	Redis    Backend = "redis"
)

var setups = map[Backend]func(context.Context) (*Container, error){
	Postgres: SetupPostgres,
	MongoDB:  SetupMongoDB,
	Redis:    SetupRedis,
}

var (
	sharedMu         sync.RWMutex
	sharedContainers = map[Backend]*Container{}
)

// SetupTestMain starts one container per backend, runs the tests, and
// tears the containers down again.
// Usage:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMain(context.Background(), m, testutil.Postgres, testutil.Redis))
//	}
func SetupTestMain(ctx context.Context, m *testing.M, backends ...Backend) int {
	for _, b := range backends {
		c, err := setups[b](ctx)
		if err != nil {
			cleanupShared(ctx)
			panic(err)
		}
		sharedMu.Lock()
		sharedContainers[b] = c
		sharedMu.Unlock()
	}

	code := m.Run()
	cleanupShared(ctx)
	return code
}

func cleanupShared(ctx context.Context) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	for b, c := range sharedContainers {
		if err := c.Cleanup(ctx); err != nil {
			// Docker reaps the container eventually.
			_, _ = os.Stderr.WriteString("Warning: failed to cleanup shared " + string(b) + " container: " + err.Error() + "\n")
		}
		delete(sharedContainers, b)
	}
}

// SharedURI returns the address of the shared container for b.
// Panics if SetupTestMain did not start it.
func SharedURI(b Backend) string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()

	c, ok := sharedContainers[b]
	if !ok {
		panic(fmt.Sprintf("shared %s container not initialized - list it in SetupTestMain", b))
	}
	return c.URI
}

// SanitizeDBName turns a test name into a unique database name.
func SanitizeDBName(testName string) string {
	sanitized := strings.NewReplacer("/", "_", "\\", "_", " ", "_").Replace(testName)
	if len(sanitized) > 50 {
		sanitized = sanitized[:50]
	}
	return fmt.Sprintf("%s_%d", sanitized, time.Now().UnixNano()%1000000)
}
