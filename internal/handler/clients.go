package handler

import (
	"context"
	"fmt"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/datocms-community/datocms-mcp/internal/constants"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// ClientKind selects the client wrapper a handler needs.
type ClientKind string

// Client kinds.
const (
	ClientDefault       ClientKind = "default"
	ClientRecords       ClientKind = "records"
	ClientCollaborators ClientKind = "collaborators"
)

// ClientFactory constructs a CMA client from a configuration. Injected so
// tests can count constructions and substitute fakes.
type ClientFactory func(config *dato.Config) (dato.Client, error)

// ClientManager hands out cached CMA clients keyed by (token, environment,
// kind). The cache is a bounded LRU rather than a process-lifetime map, so a
// long-running server with many tokens does not grow without limit and a
// rotated token's stale client eventually falls out.
type ClientManager struct {
	mu      sync.Mutex
	factory ClientFactory
	base    dato.Config
	cache   *lru.Cache[string, dato.Client]
}

// NewClientManager creates a client manager. The base configuration supplies
// everything except the per-request token and environment. A size of zero
// uses the default cache capacity.
func NewClientManager(factory ClientFactory, base dato.Config, size int) (*ClientManager, error) {
	if size <= 0 {
		size = constants.DefaultClientCacheSize
	}

	cache, err := lru.New[string, dato.Client](size)
	if err != nil {
		return nil, fmt.Errorf("creating client cache: %w", err)
	}

	return &ClientManager{factory: factory, base: base, cache: cache}, nil
}

// GetClient returns the cached client for the triple, constructing it on
// first use. Identical arguments always yield the same instance while the
// entry stays resident.
func (m *ClientManager) GetClient(apiToken, environment string, kind ClientKind) (dato.Client, error) {
	if strings.TrimSpace(apiToken) == "" {
		return nil, dato.ErrAPITokenRequired
	}

	key := clientKey(apiToken, environment, kind)

	// Lock around the check-then-insert so a racing miss cannot construct
	// the same client twice.
	m.mu.Lock()
	defer m.mu.Unlock()

	if client, ok := m.cache.Get(key); ok {
		return client, nil
	}

	config := m.base
	config.APIToken = apiToken
	config.Environment = environment

	client, err := m.factory(&config)
	if err != nil {
		return nil, fmt.Errorf("constructing client: %w", err)
	}

	switch kind {
	case ClientRecords:
		client = &recordsClient{Client: client}
	case ClientCollaborators:
		client = &collaboratorsClient{Client: client}
	case ClientDefault:
	}

	m.cache.Add(key, client)

	return client, nil
}

// Invalidate drops every cached client for the given token, across all
// environments and kinds. Called when a token is rotated or deleted so the
// next invocation constructs a client with fresh credentials.
func (m *ClientManager) Invalidate(apiToken string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prefix := apiToken + "|"
	for _, key := range m.cache.Keys() {
		if strings.HasPrefix(key, prefix) {
			m.cache.Remove(key)
		}
	}
}

// Len returns the number of resident clients.
func (m *ClientManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.cache.Len()
}

func clientKey(apiToken, environment string, kind ClientKind) string {
	env := environment
	if env == "" {
		env = "primary"
	}

	return apiToken + "|" + env + "|" + string(kind)
}

// recordsClient specializes the generic client for record-heavy tools: list
// queries get a default page size and are clamped to the CMA's maximum so a
// single call cannot request an unbounded page.
type recordsClient struct {
	dato.Client
}

func (c *recordsClient) Items() dato.ItemsClient {
	return &boundedItemsClient{ItemsClient: c.Client.Items()}
}

type boundedItemsClient struct {
	dato.ItemsClient
}

func (c *boundedItemsClient) List(ctx context.Context, params *dato.QueryParams) (*dato.ItemPage, error) {
	params = clampQuery(params)

	return c.ItemsClient.List(ctx, params)
}

func clampQuery(params *dato.QueryParams) *dato.QueryParams {
	if params == nil {
		params = &dato.QueryParams{}
	}

	if params.Limit <= 0 {
		params.Limit = constants.DefaultPageLimit
	}

	if params.Limit > constants.MaxPageLimit {
		params.Limit = constants.MaxPageLimit
	}

	return params
}

// collaboratorsClient specializes the generic client for collaborator tools
// with defensive normalization: the CMA has returned user payloads with
// inconsistent email casing and a missing state on some plans, so those are
// normalized here instead of in every handler.
type collaboratorsClient struct {
	dato.Client
}

func (c *collaboratorsClient) Users() dato.UsersClient {
	return &normalizingUsersClient{UsersClient: c.Client.Users()}
}

type normalizingUsersClient struct {
	dato.UsersClient
}

func (c *normalizingUsersClient) List(ctx context.Context) ([]dato.User, error) {
	users, err := c.UsersClient.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		normalizeUser(&users[i])
	}

	return users, nil
}

func (c *normalizingUsersClient) Get(ctx context.Context, userID string) (*dato.User, error) {
	user, err := c.UsersClient.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user != nil {
		normalizeUser(user)
	}

	return user, nil
}

func normalizeUser(user *dato.User) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	if user.State == "" {
		if user.IsActive {
			user.State = "active"
		} else {
			user.State = "pending"
		}
	}
}
