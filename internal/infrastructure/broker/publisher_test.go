package broker

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"mediacore/internal/domain/entity"
)

const (
	testStream = "media-events"
	testGroup  = "media-consumers"
)

func setupRedis(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start redis container:", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatal(err)
	}

	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatal(err)
	}

	return fmt.Sprintf("redis://%s", net.JoinHostPort(host, port.Port()))
}

func TestPublishAppendsToStream(t *testing.T) {
	t.Parallel()
	uri := setupRedis(t)

	client, err := NewClient(Config{URI: uri, StreamName: testStream, GroupName: testGroup})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close()
	})

	publisher := NewPublisher(client, PublisherConfig{Timeout: 5000})
	ctx := context.Background()

	require.NoError(t, publisher.Publish(ctx, entity.MediaEvent{Action: entity.ActionCreated, ID: "media-1"}))
	require.NoError(t, publisher.Publish(ctx, entity.MediaEvent{Action: entity.ActionDeleted, ID: "media-2"}))

	opt, err := redis.ParseURL(uri)
	require.NoError(t, err)
	rdb := redis.NewClient(opt)
	t.Cleanup(func() {
		_ = rdb.Close()
	})

	messages, err := rdb.XRange(ctx, testStream, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, "created", messages[0].Values["action"])
	assert.Equal(t, "media-1", messages[0].Values["id"])
	assert.Equal(t, "deleted", messages[1].Values["action"])
	assert.Equal(t, "media-2", messages[1].Values["id"])
}

func TestNewClientCreatesConsumerGroup(t *testing.T) {
	t.Parallel()
	uri := setupRedis(t)

	client, err := NewClient(Config{URI: uri, StreamName: testStream, GroupName: testGroup})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close()
	})

	opt, err := redis.ParseURL(uri)
	require.NoError(t, err)
	rdb := redis.NewClient(opt)
	t.Cleanup(func() {
		_ = rdb.Close()
	})

	groups, err := rdb.XInfoGroups(context.Background(), testStream).Result()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, testGroup, groups[0].Name)
}

func TestNewClientToleratesExistingGroup(t *testing.T) {
	t.Parallel()
	uri := setupRedis(t)

	first, err := NewClient(Config{URI: uri, StreamName: testStream, GroupName: testGroup})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = first.Close()
	})

	// A second connect against the same stream and group must not fail.
	second, err := NewClient(Config{URI: uri, StreamName: testStream, GroupName: testGroup})
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestPublishWithoutClient(t *testing.T) {
	t.Parallel()

	publisher := NewPublisher(nil, PublisherConfig{Timeout: 1000})
	err := publisher.Publish(context.Background(), entity.MediaEvent{Action: entity.ActionCreated, ID: "media-1"})
	assert.Error(t, err)
}
