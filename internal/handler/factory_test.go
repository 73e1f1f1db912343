package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/datocms-community/datocms-mcp/internal/handler"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

func newTestFactory(t *testing.T) *handler.Factory {
	t.Helper()

	clientFactory := func(config *dato.Config) (dato.Client, error) {
		return &fakeClient{
			config: *config,
			items:  &captureItemsClient{},
			users:  &stubUsersClient{},
		}, nil
	}

	manager, err := handler.NewClientManager(clientFactory, dato.Config{}, 8)
	require.NoError(t, err)

	return handler.NewFactory(handler.NewRegistry(), manager, zap.NewNop(), false)
}

func tokenSchema(extraRequired ...string) *jsonschema.Schema {
	return objectSchema(
		append([]string{"api_token"}, extraRequired...),
		map[string]*jsonschema.Schema{
			"api_token": {Type: "string"},
			"label_id":  {Type: "string"},
		},
	)
}

func labelDescriptor(operation string) handler.Descriptor {
	return handler.Descriptor{
		Domain:      "labels",
		Operation:   operation,
		Schema:      tokenSchema(),
		EntityLabel: "label",
		IDParam:     "label_id",
	}
}

func TestFactory_CreateWrapsResult(t *testing.T) {
	t.Parallel()

	factory := newTestFactory(t)

	fn := factory.Create(labelDescriptor("create"),
		func(_ context.Context, _ dato.Client, _ handler.Args) (any, error) {
			return map[string]string{"id": "l1"}, nil
		})

	envelope, err := fn(context.Background(), handler.Args{"api_token": "t"})
	require.NoError(t, err)

	assert.True(t, envelope.Success)
	assert.Equal(t, "label created successfully", envelope.Message)
	assert.Equal(t, map[string]string{"id": "l1"}, envelope.Data)
}

func TestFactory_RetrieveNilResultIsNotFound(t *testing.T) {
	t.Parallel()

	factory := newTestFactory(t)

	fn := factory.Retrieve(labelDescriptor("get"),
		func(_ context.Context, _ dato.Client, _ handler.Args) (any, error) {
			var missing *dato.Item

			return missing, nil
		})

	envelope, err := fn(context.Background(), handler.Args{"api_token": "t", "label_id": "x"})
	require.NoError(t, err)

	assert.False(t, envelope.Success)
	assert.Equal(t, "label with ID 'x' not found", envelope.Error)
	require.NotNil(t, envelope.Meta)
	assert.Equal(t, handler.CodeNotFound, envelope.Meta.ErrorCode)
}

func TestFactory_UpdateExpandsIDPlaceholder(t *testing.T) {
	t.Parallel()

	factory := newTestFactory(t)

	fn := factory.Update(labelDescriptor("update"),
		func(_ context.Context, _ dato.Client, _ handler.Args) (any, error) {
			return map[string]string{"id": "l7"}, nil
		})

	envelope, err := fn(context.Background(), handler.Args{"api_token": "t", "label_id": "l7"})
	require.NoError(t, err)

	assert.True(t, envelope.Success)
	assert.Equal(t, "label 'l7' updated successfully", envelope.Message)
}

func TestFactory_DeleteDiscardsResult(t *testing.T) {
	t.Parallel()

	factory := newTestFactory(t)

	fn := factory.Delete(labelDescriptor("delete"),
		func(_ context.Context, _ dato.Client, _ handler.Args) (any, error) {
			return map[string]string{"id": "l1"}, nil
		})

	envelope, err := fn(context.Background(), handler.Args{"api_token": "t", "label_id": "l1"})
	require.NoError(t, err)

	assert.True(t, envelope.Success)
	assert.Nil(t, envelope.Data)
	assert.Equal(t, "label 'l1' deleted successfully", envelope.Message)
}

func TestFactory_ValidationShortCircuitsAction(t *testing.T) {
	t.Parallel()

	factory := newTestFactory(t)
	invoked := false

	descriptor := labelDescriptor("create")
	descriptor.Schema = tokenSchema("label_id")

	fn := factory.Create(descriptor,
		func(_ context.Context, _ dato.Client, _ handler.Args) (any, error) {
			invoked = true

			return nil, nil
		})

	envelope, err := fn(context.Background(), handler.Args{"label_id": 42})
	require.NoError(t, err)

	assert.False(t, invoked)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Meta)
	assert.Equal(t, handler.CodeValidationError, envelope.Meta.ErrorCode)
	// Both the missing token and the mistyped ID are reported at once.
	assert.Len(t, envelope.Meta.ValidationErrors, 2)
}

func TestFactory_ErrorBoundaryClassifiesActionErrors(t *testing.T) {
	t.Parallel()

	factory := newTestFactory(t)

	fn := factory.Create(labelDescriptor("create"),
		func(_ context.Context, _ dato.Client, _ handler.Args) (any, error) {
			return nil, apiErr(http.StatusNotFound, dato.ErrorCodeNotFound)
		})

	envelope, err := fn(context.Background(), handler.Args{"api_token": "t"})
	require.NoError(t, err)

	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Meta)
	assert.Equal(t, handler.CodeNotFound, envelope.Meta.ErrorCode)
}

func TestFactory_MissingTokenBecomesEnvelopeFailure(t *testing.T) {
	t.Parallel()

	factory := newTestFactory(t)

	fn := factory.Retrieve(labelDescriptor("get"),
		func(_ context.Context, _ dato.Client, _ handler.Args) (any, error) {
			t.Fatal("action must not run without a client")

			return nil, nil
		})

	envelope, err := fn(context.Background(), handler.Args{"api_token": "   "})
	require.NoError(t, err)

	assert.False(t, envelope.Success)
	assert.Contains(t, envelope.Error, "API token is required")
}

func TestFactory_CustomEnvelopeIsFinal(t *testing.T) {
	t.Parallel()

	factory := newTestFactory(t)

	fn := factory.Custom(labelDescriptor("archive"),
		func(_ context.Context, _ dato.Client, _ handler.Args) (*handler.Envelope, error) {
			return handler.SuccessMessage(nil, "label archived"), nil
		})

	envelope, err := fn(context.Background(), handler.Args{"api_token": "t"})
	require.NoError(t, err)

	assert.True(t, envelope.Success)
	assert.Equal(t, "label archived", envelope.Message)
}

func TestFactory_ListShapesPagination(t *testing.T) {
	t.Parallel()

	factory := newTestFactory(t)

	shape := func(result any, _ handler.Args) *handler.Envelope {
		return handler.SuccessPage(result, 2, 42, dato.NewQueryParams().WithLimit(30))
	}

	fn := factory.List(labelDescriptor("list"),
		func(_ context.Context, _ dato.Client, _ handler.Args) (any, error) {
			return []string{"l1", "l2"}, nil
		}, shape)

	envelope, err := fn(context.Background(), handler.Args{"api_token": "t"})
	require.NoError(t, err)

	assert.True(t, envelope.Success)
	require.NotNil(t, envelope.Meta)
	require.NotNil(t, envelope.Meta.Pagination)
	assert.Equal(t, 42, envelope.Meta.Pagination.Total)
	assert.True(t, envelope.Meta.Pagination.HasMore)
}

func TestFactory_NilSchemaPanics(t *testing.T) {
	t.Parallel()

	factory := newTestFactory(t)

	assert.Panics(t, func() {
		factory.Create(handler.Descriptor{Domain: "labels", Operation: "create"},
			func(_ context.Context, _ dato.Client, _ handler.Args) (any, error) {
				return nil, nil
			})
	})
}

func TestSuccessPage_HasMore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		limit   int
		offset  int
		count   int
		total   int
		hasMore bool
	}{
		{"first page of many", 30, 0, 30, 100, true},
		{"last full page", 30, 70, 30, 100, false},
		{"exact fit", 50, 50, 50, 100, false},
		{"single page", 30, 0, 10, 10, false},
		{"no explicit limit, everything returned", 0, 0, 10, 10, false},
		{"no explicit limit, default page size", 0, 0, 30, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := dato.NewQueryParams().WithLimit(tt.limit).WithOffset(tt.offset)
			envelope := handler.SuccessPage(nil, tt.count, tt.total, params)

			require.NotNil(t, envelope.Meta)
			require.NotNil(t, envelope.Meta.Pagination)
			assert.Equal(t, tt.hasMore, envelope.Meta.Pagination.HasMore)
		})
	}
}
