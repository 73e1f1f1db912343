package handler_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datocms-community/datocms-mcp/internal/constants"
	"github.com/datocms-community/datocms-mcp/internal/handler"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// fakeClient satisfies dato.Client by embedding the interface; only the
// accessors a test exercises are overridden.
type fakeClient struct {
	dato.Client

	config dato.Config
	items  *captureItemsClient
	users  *stubUsersClient
}

func (c *fakeClient) Items() dato.ItemsClient { return c.items }
func (c *fakeClient) Users() dato.UsersClient { return c.users }

type captureItemsClient struct {
	dato.ItemsClient

	lastParams *dato.QueryParams
}

func (c *captureItemsClient) List(_ context.Context, params *dato.QueryParams) (*dato.ItemPage, error) {
	c.lastParams = params

	return &dato.ItemPage{}, nil
}

type stubUsersClient struct {
	dato.UsersClient

	users []dato.User
}

func (c *stubUsersClient) List(_ context.Context) ([]dato.User, error) {
	listed := make([]dato.User, len(c.users))
	copy(listed, c.users)

	return listed, nil
}

func (c *stubUsersClient) Get(_ context.Context, _ string) (*dato.User, error) {
	user := c.users[0]

	return &user, nil
}

// countingFactory counts constructions and records the config each client was
// built with.
func countingFactory(count *atomic.Int64) handler.ClientFactory {
	return func(config *dato.Config) (dato.Client, error) {
		count.Add(1)

		return &fakeClient{
			config: *config,
			items:  &captureItemsClient{},
			users:  &stubUsersClient{},
		}, nil
	}
}

func TestClientManager_SameTripleSameInstance(t *testing.T) {
	t.Parallel()

	var constructions atomic.Int64

	manager, err := handler.NewClientManager(countingFactory(&constructions), dato.Config{}, 8)
	require.NoError(t, err)

	first, err := manager.GetClient("token-a", "sandbox", handler.ClientDefault)
	require.NoError(t, err)

	second, err := manager.GetClient("token-a", "sandbox", handler.ClientDefault)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int64(1), constructions.Load())
}

func TestClientManager_DistinctTriplesDistinctInstances(t *testing.T) {
	t.Parallel()

	var constructions atomic.Int64

	manager, err := handler.NewClientManager(countingFactory(&constructions), dato.Config{}, 8)
	require.NoError(t, err)

	byToken, err := manager.GetClient("token-a", "", handler.ClientDefault)
	require.NoError(t, err)

	otherToken, err := manager.GetClient("token-b", "", handler.ClientDefault)
	require.NoError(t, err)

	otherEnv, err := manager.GetClient("token-a", "sandbox", handler.ClientDefault)
	require.NoError(t, err)

	otherKind, err := manager.GetClient("token-a", "", handler.ClientRecords)
	require.NoError(t, err)

	assert.NotSame(t, byToken, otherToken)
	assert.NotSame(t, byToken, otherEnv)
	assert.NotSame(t, byToken, otherKind)
	assert.Equal(t, int64(4), constructions.Load())
	assert.Equal(t, 4, manager.Len())
}

func TestClientManager_EmptyTokenRejected(t *testing.T) {
	t.Parallel()

	var constructions atomic.Int64

	manager, err := handler.NewClientManager(countingFactory(&constructions), dato.Config{}, 8)
	require.NoError(t, err)

	_, err = manager.GetClient("   ", "", handler.ClientDefault)
	require.ErrorIs(t, err, dato.ErrAPITokenRequired)
	assert.Equal(t, int64(0), constructions.Load())
}

func TestClientManager_BaseConfigCarriedThrough(t *testing.T) {
	t.Parallel()

	var constructions atomic.Int64

	base := dato.Config{APIEndpoint: "https://example.test", RetryMax: 7}

	manager, err := handler.NewClientManager(countingFactory(&constructions), base, 8)
	require.NoError(t, err)

	client, err := manager.GetClient("token-a", "sandbox", handler.ClientDefault)
	require.NoError(t, err)

	fake, ok := client.(*fakeClient)
	require.True(t, ok)
	assert.Equal(t, "https://example.test", fake.config.APIEndpoint)
	assert.Equal(t, 7, fake.config.RetryMax)
	assert.Equal(t, "token-a", fake.config.APIToken)
	assert.Equal(t, "sandbox", fake.config.Environment)
}

func TestClientManager_InvalidateDropsOnlyThatToken(t *testing.T) {
	t.Parallel()

	var constructions atomic.Int64

	manager, err := handler.NewClientManager(countingFactory(&constructions), dato.Config{}, 8)
	require.NoError(t, err)

	stale, err := manager.GetClient("token-a", "", handler.ClientDefault)
	require.NoError(t, err)

	_, err = manager.GetClient("token-a", "sandbox", handler.ClientRecords)
	require.NoError(t, err)

	kept, err := manager.GetClient("token-b", "", handler.ClientDefault)
	require.NoError(t, err)

	manager.Invalidate("token-a")
	assert.Equal(t, 1, manager.Len())

	rebuilt, err := manager.GetClient("token-a", "", handler.ClientDefault)
	require.NoError(t, err)
	assert.NotSame(t, stale, rebuilt)

	keptAgain, err := manager.GetClient("token-b", "", handler.ClientDefault)
	require.NoError(t, err)
	assert.Same(t, kept, keptAgain)
}

func TestClientManager_RecordsKindClampsListQueries(t *testing.T) {
	t.Parallel()

	var built *fakeClient

	factory := func(config *dato.Config) (dato.Client, error) {
		built = &fakeClient{
			config: *config,
			items:  &captureItemsClient{},
			users:  &stubUsersClient{},
		}

		return built, nil
	}

	manager, err := handler.NewClientManager(factory, dato.Config{}, 8)
	require.NoError(t, err)

	client, err := manager.GetClient("token-a", "", handler.ClientRecords)
	require.NoError(t, err)
	require.NotNil(t, built)

	ctx := context.Background()

	tests := []struct {
		name     string
		params   *dato.QueryParams
		expected int
	}{
		{"nil defaults", nil, constants.DefaultPageLimit},
		{"zero defaults", dato.NewQueryParams(), constants.DefaultPageLimit},
		{"over max clamped", dato.NewQueryParams().WithLimit(9999), constants.MaxPageLimit},
		{"in range preserved", dato.NewQueryParams().WithLimit(100), 100},
	}

	for _, tt := range tests {
		_, err = client.Items().List(ctx, tt.params)
		require.NoError(t, err, tt.name)

		require.NotNil(t, built.items.lastParams, tt.name)
		assert.Equal(t, tt.expected, built.items.lastParams.Limit, tt.name)
	}
}

func TestClientManager_CollaboratorsKindNormalizesUsers(t *testing.T) {
	t.Parallel()

	users := []dato.User{
		{ID: "u1", Email: "  Alice@Example.COM ", IsActive: true},
		{ID: "u2", Email: "bob@example.com", IsActive: false},
	}

	factory := func(config *dato.Config) (dato.Client, error) {
		return &fakeClient{
			config: *config,
			items:  &captureItemsClient{},
			users:  &stubUsersClient{users: users},
		}, nil
	}

	manager, err := handler.NewClientManager(factory, dato.Config{}, 8)
	require.NoError(t, err)

	client, err := manager.GetClient("token-a", "", handler.ClientCollaborators)
	require.NoError(t, err)

	listed, err := client.Users().List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 2)

	assert.Equal(t, "alice@example.com", listed[0].Email)
	assert.Equal(t, "active", listed[0].State)
	assert.Equal(t, "pending", listed[1].State)

	got, err := client.Users().Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "active", got.State)
}
