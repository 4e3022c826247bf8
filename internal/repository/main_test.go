//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/guttosm/menu-service/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestMain shares one PostgreSQL and one MongoDB container across the package.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMain(context.Background(), m, testutil.Postgres, testutil.MongoDB))
}

// repos is one storage backend's set of repositories.
type repos struct {
	menus    MenuRepositoryInterface
	submenus SubmenuRepositoryInterface
	dishes   DishRepositoryInterface
}

// setupPostgres migrates the shared database and empties it for the test.
func setupPostgres(t *testing.T) repos {
	t.Helper()
	ctx := context.Background()

	db, err := NewPostgres(ctx, DefaultPostgresConfig(testutil.SharedURI(testutil.Postgres)))
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.Migrate(ctx))
	_, err = db.Pool.Exec(ctx, `TRUNCATE menus CASCADE`)
	require.NoError(t, err)

	return repos{
		menus:    NewMenuRepository(db),
		submenus: NewSubmenuRepository(db),
		dishes:   NewDishRepository(db),
	}
}

// setupMongo connects to a database unique to the test.
func setupMongo(t *testing.T) repos {
	t.Helper()

	db, err := NewMongoDB(context.Background(), testutil.SharedURI(testutil.MongoDB), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx := context.Background()
		_ = db.Database.Drop(ctx)
		_ = db.Close(ctx)
	})

	return repos{
		menus:    NewMongoMenuRepository(db),
		submenus: NewMongoSubmenuRepository(db),
		dishes:   NewMongoDishRepository(db),
	}
}

// forEachBackend runs fn against every storage backend. Postgres subtests
// share one database, so they run sequentially.
func forEachBackend(t *testing.T, fn func(t *testing.T, r repos)) {
	t.Run("postgres", func(t *testing.T) { fn(t, setupPostgres(t)) })
	t.Run("mongodb", func(t *testing.T) { fn(t, setupMongo(t)) })
}
