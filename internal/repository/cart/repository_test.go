package cart

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventas-dashboard/internal/domain"
	"ventas-dashboard/internal/migrate"
)

func TestMemory_Contract(t *testing.T) {
	runContract(t, NewMemory())
}

func TestPostgres_Contract(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	require.NoError(t, migrate.Apply(ctx, pool, nil))
	_, err := pool.Exec(ctx, `TRUNCATE cart_draft_lines, cart_drafts`)
	require.NoError(t, err)

	runContract(t, NewPostgres(pool, nil))
}

func TestRedis_Contract(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	client, err := DialRedis(context.Background(), url)
	require.NoError(t, err)
	defer client.Close()

	runContract(t, NewRedis(client, time.Minute, nil))
}

func TestRedis_DraftExpires(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	client, err := DialRedis(ctx, url)
	require.NoError(t, err)
	defer client.Close()

	repo := NewRedis(client, time.Second, nil)
	d, err := repo.Create(ctx, "owner-1")
	require.NoError(t, err)

	ttl, err := client.TTL(ctx, redisKeyPrefix+d.ID).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Second)
}

func runContract(t *testing.T, repo Repository) {
	t.Helper()
	ctx := context.Background()

	t.Run("create starts empty", func(t *testing.T) {
		d, err := repo.Create(ctx, "owner-1")
		require.NoError(t, err)
		assert.NotEmpty(t, d.ID)
		assert.Equal(t, "owner-1", d.OwnerID)
		assert.Empty(t, d.UserID)
		assert.NotNil(t, d.Items)
		assert.Empty(t, d.Items)
	})

	t.Run("save keeps item order and exact prices", func(t *testing.T) {
		d, err := repo.Create(ctx, "owner-1")
		require.NoError(t, err)

		d.UserID = "customer-7"
		d.Items = []domain.SaleLineItem{
			{ProductID: "p2", Quantity: 1, Price: decimal.RequireFromString("5")},
			{ProductID: "p1", Quantity: 3, Price: decimal.RequireFromString("19.99")},
			{ProductID: "p3", Quantity: 2, Price: decimal.RequireFromString("0.10")},
		}
		require.NoError(t, repo.Save(ctx, d))

		got, err := repo.Get(ctx, "owner-1", d.ID)
		require.NoError(t, err)
		assert.Equal(t, "customer-7", got.UserID)
		require.Len(t, got.Items, 3)
		assert.Equal(t, []string{"p2", "p1", "p3"}, []string{got.Items[0].ProductID, got.Items[1].ProductID, got.Items[2].ProductID})
		assert.Equal(t, 3, got.Items[1].Quantity)
		assert.True(t, got.Items[1].Price.Equal(decimal.RequireFromString("19.99")), "price %s", got.Items[1].Price)
		assert.True(t, got.Items[2].Price.Equal(decimal.RequireFromString("0.1")), "price %s", got.Items[2].Price)
	})

	t.Run("save replaces previous items", func(t *testing.T) {
		d, err := repo.Create(ctx, "owner-1")
		require.NoError(t, err)
		d.Items = []domain.SaleLineItem{{ProductID: "p1", Quantity: 1, Price: decimal.NewFromInt(1)}}
		require.NoError(t, repo.Save(ctx, d))

		d.Items = nil
		d.UserID = ""
		require.NoError(t, repo.Save(ctx, d))

		got, err := repo.Get(ctx, "owner-1", d.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Items)
		assert.Empty(t, got.UserID)
	})

	t.Run("other owner sees not found", func(t *testing.T) {
		d, err := repo.Create(ctx, "owner-1")
		require.NoError(t, err)

		_, err = repo.Get(ctx, "owner-2", d.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		foreign := *d
		foreign.OwnerID = "owner-2"
		assert.ErrorIs(t, repo.Save(ctx, &foreign), domain.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, "owner-2", d.ID), domain.ErrNotFound)

		_, err = repo.Get(ctx, "owner-1", d.ID)
		assert.NoError(t, err)
	})

	t.Run("delete removes draft", func(t *testing.T) {
		d, err := repo.Create(ctx, "owner-1")
		require.NoError(t, err)
		require.NoError(t, repo.Delete(ctx, "owner-1", d.ID))

		_, err = repo.Get(ctx, "owner-1", d.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, "owner-1", d.ID), domain.ErrNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.Get(ctx, "owner-1", "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = repo.Get(ctx, "owner-1", "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}
