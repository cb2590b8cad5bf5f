//go:build integration

package vartext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgresContainer creates an ephemeral PostgreSQL container for testing.
func setupPostgresContainer(t *testing.T) (*SQLResolver, func()) {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:15",
		postgres.WithDatabase("vartext_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	resolver, err := NewSQLResolver(ctx, SQLConfig{
		ConnectionString: connStr,
		AutoMigrate:      true,
		QueryTimeout:     30 * time.Second,
	})
	require.NoError(t, err, "failed to create sql resolver")

	cleanup := func() {
		if resolver != nil {
			_ = resolver.Close()
		}
		if container != nil {
			_ = container.Terminate(ctx)
		}
	}

	return resolver, cleanup
}

func TestSQLResolver_E2E(t *testing.T) {
	resolver, cleanup := setupPostgresContainer(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, resolver.Set(ctx, "user.name", "Ada"))
	require.NoError(t, resolver.SetList(ctx, "items", []string{"keyboard", "mouse"}))

	t.Run("Render", func(t *testing.T) {
		out, err := MustNew().Render(ctx, "{{ user.name }} ordered {{ ...items }}{{ note | . }}", resolver)
		require.NoError(t, err)
		assert.Equal(t, "Ada ordered keyboard, mouse.", out)
	})

	t.Run("Upsert", func(t *testing.T) {
		require.NoError(t, resolver.Set(ctx, "user.name", "Grace"))
		got, err := resolver.Resolve(ctx, "user.name", KindPlain)
		require.NoError(t, err)
		assert.Equal(t, "Grace", got)
	})

	t.Run("KindMismatch", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, "items", KindPlain)
		assert.ErrorIs(t, err, ErrKindMismatch)

		_, err = resolver.Resolve(ctx, "user.name", KindSpread)
		assert.ErrorIs(t, err, ErrKindMismatch)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, "missing", KindPlain)
		assert.ErrorIs(t, err, ErrNameNotFound)
	})

	t.Run("Names", func(t *testing.T) {
		assert.Equal(t, []string{"items", "user.name"}, resolver.Names())
	})

	t.Run("Suggestions", func(t *testing.T) {
		_, err := MustNew().Render(ctx, "{{ user.nam }}", resolver)
		serrs, ok := AsSubstitutionErrors(err)
		require.True(t, ok)
		assert.Equal(t, []string{"user.name"}, serrs[0].Suggestions)
	})

	t.Run("Migrate is idempotent", func(t *testing.T) {
		assert.NoError(t, resolver.Migrate(ctx))
	})

	t.Run("Closed", func(t *testing.T) {
		require.NoError(t, resolver.Close())
		require.NoError(t, resolver.Close())

		_, err := resolver.Resolve(ctx, "user.name", KindPlain)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgSQLClosed)
		assert.Nil(t, resolver.Names())
	})
}
