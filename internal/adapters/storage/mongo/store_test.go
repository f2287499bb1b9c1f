package mongo

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arimodu/shopper/internal/adapters/storage/storagetest"
	"github.com/arimodu/shopper/internal/ports"
)

func getTestMongoURI(t *testing.T) string {
	t.Helper()
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set; skipping mongo integration test")
	}
	return uri
}

func openTestClient(t *testing.T) *mongo.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(getTestMongoURI(t)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(ctx) })
	return client
}

func newTestStore(t *testing.T, client *mongo.Client, transactions bool) ports.Store {
	t.Helper()
	ctx := context.Background()

	database := "shopper_test_" + uuid.NewString()[:8]
	s := New(client, database, transactions)
	require.NoError(t, s.EnsureIndexes(ctx))
	t.Cleanup(func() { _ = client.Database(database).Drop(ctx) })
	return s
}

func TestStore_Contract(t *testing.T) {
	client := openTestClient(t)

	storagetest.Run(t, func(t *testing.T) ports.Store {
		return newTestStore(t, client, false)
	})
}

func TestStore_ContractWithTransactions(t *testing.T) {
	if os.Getenv("TEST_MONGO_REPLICA_SET") == "" {
		t.Skip("TEST_MONGO_REPLICA_SET not set; transactions need a replica set")
	}
	client := openTestClient(t)

	storagetest.Run(t, func(t *testing.T) ports.Store {
		return newTestStore(t, client, true)
	})
}
