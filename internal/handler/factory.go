package handler

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"go.uber.org/zap"

	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// Descriptor declares one tool operation. Created once at startup and read
// by the factory on every invocation.
type Descriptor struct {
	// Domain groups operations for the schema registry key, e.g. "records"
	// or "collaborators.roles".
	Domain string

	// Operation names the action within the domain, e.g. "create".
	Operation string

	// Schema validates the argument bag. Required.
	Schema *jsonschema.Schema

	// EntityLabel is the human-readable entity name used in messages, e.g.
	// "API token".
	EntityLabel string

	// IDParam names the argument carrying the target entity's ID, for
	// archetypes that address one entity.
	IDParam string

	// ClientKind selects the client wrapper. Zero value is the default kind.
	ClientKind ClientKind

	// SuccessMessage overrides the archetype's default message. The {id}
	// placeholder expands to the ID argument's value.
	SuccessMessage string
}

// Action is the domain-specific body of a handler: one call against the CMA
// client, returning the raw result.
type Action func(ctx context.Context, client dato.Client, args Args) (any, error)

// EnvelopeAction is the body of a custom-archetype handler. Its envelope is
// taken as final output; only validation and the error boundary still apply.
type EnvelopeAction func(ctx context.Context, client dato.Client, args Args) (*Envelope, error)

// ListShaper optionally reshapes a list action's raw result into the final
// envelope, e.g. to attach pagination metadata.
type ListShaper func(result any, args Args) *Envelope

// Factory composes tool handlers. Every handler it produces runs the same
// middleware pipeline: debug/timing, then the error boundary, then schema
// validation, then the archetype body.
type Factory struct {
	registry *Registry
	clients  *ClientManager
	logger   *zap.Logger
	debug    bool
}

// NewFactory creates a handler factory.
func NewFactory(registry *Registry, clients *ClientManager, logger *zap.Logger, debug bool) *Factory {
	return &Factory{registry: registry, clients: clients, logger: logger, debug: debug}
}

// Registry exposes the factory's schema registry for tool declaration.
func (f *Factory) Registry() *Registry {
	return f.registry
}

// Clients exposes the factory's client manager.
func (f *Factory) Clients() *ClientManager {
	return f.clients
}

func (f *Factory) compose(d Descriptor, base Func) Func {
	if d.Schema == nil {
		panic(fmt.Sprintf("no schema supplied for %s.%s", d.Domain, d.Operation))
	}

	f.registry.Register(d.Domain, d.Operation, d.Schema)

	return Chain(base,
		DebugTiming(f.logger, f.debug, d.Domain, d.Operation),
		ErrorBoundary(),
		ValidateInput(f.registry, d.Domain, d.Operation),
	)
}

func (f *Factory) client(args Args, kind ClientKind) (dato.Client, error) {
	if kind == "" {
		kind = ClientDefault
	}

	return f.clients.GetClient(args.String("api_token"), args.String("environment"), kind)
}

// operationError threads the target entity into the error chain so the
// classified message can report which entity the operation addressed.
func operationError(d Descriptor, args Args, verb string, err error) error {
	id := args.String(d.IDParam)
	if d.IDParam == "" || id == "" {
		return fmt.Errorf("%s %s: %w", verb, d.EntityLabel, err)
	}

	return fmt.Errorf("%s %s %q: %w", verb, d.EntityLabel, id, err)
}

func (d Descriptor) message(defaultTemplate string, args Args) string {
	template := d.SuccessMessage
	if template == "" {
		template = defaultTemplate
	}

	return strings.ReplaceAll(template, "{id}", args.String(d.IDParam))
}

// Create builds a create-archetype handler: run the action, wrap the created
// entity with a success message.
func (f *Factory) Create(d Descriptor, action Action) Func {
	return f.compose(d, func(ctx context.Context, args Args) (*Envelope, error) {
		client, err := f.client(args, d.ClientKind)
		if err != nil {
			return nil, err
		}

		result, err := action(ctx, client, args)
		if err != nil {
			return nil, operationError(d, args, "creating", err)
		}

		return SuccessMessage(result, d.message(d.EntityLabel+" created successfully", args)), nil
	})
}

// Retrieve builds a retrieve-archetype handler. Actions signal "not found"
// by returning nil rather than an error; the factory converts that into a
// classified not-found failure naming the entity and its ID.
func (f *Factory) Retrieve(d Descriptor, action Action) Func {
	return f.compose(d, func(ctx context.Context, args Args) (*Envelope, error) {
		client, err := f.client(args, d.ClientKind)
		if err != nil {
			return nil, err
		}

		result, err := action(ctx, client, args)
		if err != nil {
			return nil, operationError(d, args, "retrieving", err)
		}

		if isEmptyResult(result) {
			return Failure(CodeNotFound,
				fmt.Sprintf("%s with ID '%s' not found", d.EntityLabel, args.String(d.IDParam))), nil
		}

		return Success(result), nil
	})
}

// Update builds an update-archetype handler. The default success message
// references the target ID.
func (f *Factory) Update(d Descriptor, action Action) Func {
	return f.compose(d, func(ctx context.Context, args Args) (*Envelope, error) {
		client, err := f.client(args, d.ClientKind)
		if err != nil {
			return nil, err
		}

		result, err := action(ctx, client, args)
		if err != nil {
			return nil, operationError(d, args, "updating", err)
		}

		return SuccessMessage(result, d.message(d.EntityLabel+" '{id}' updated successfully", args)), nil
	})
}

// Delete builds a delete-archetype handler. The action's return value is
// discarded; success is reported with a message referencing the target ID,
// which is captured before the action runs so mid-deletion failures can
// still name the entity.
func (f *Factory) Delete(d Descriptor, action Action) Func {
	return f.compose(d, func(ctx context.Context, args Args) (*Envelope, error) {
		client, err := f.client(args, d.ClientKind)
		if err != nil {
			return nil, err
		}

		if _, err := action(ctx, client, args); err != nil {
			return nil, operationError(d, args, "deleting", err)
		}

		return SuccessMessage(nil, d.message(d.EntityLabel+" '{id}' deleted successfully", args)), nil
	})
}

// List builds a list-archetype handler. When shape is non-nil it produces
// the final envelope from the raw result (e.g. attaching pagination);
// otherwise the result is wrapped as plain success data.
func (f *Factory) List(d Descriptor, action Action, shape ListShaper) Func {
	return f.compose(d, func(ctx context.Context, args Args) (*Envelope, error) {
		client, err := f.client(args, d.ClientKind)
		if err != nil {
			return nil, err
		}

		result, err := action(ctx, client, args)
		if err != nil {
			return nil, operationError(d, args, "listing", err)
		}

		if shape != nil {
			return shape(result, args), nil
		}

		return Success(result), nil
	})
}

// Custom builds an escape-hatch handler for operations that don't fit CRUD.
// The action's envelope is final; validation and the error boundary still
// apply.
func (f *Factory) Custom(d Descriptor, action EnvelopeAction) Func {
	return f.compose(d, func(ctx context.Context, args Args) (*Envelope, error) {
		client, err := f.client(args, d.ClientKind)
		if err != nil {
			return nil, err
		}

		envelope, err := action(ctx, client, args)
		if err != nil {
			return nil, operationError(d, args, "executing", err)
		}

		return envelope, nil
	})
}

// isEmptyResult reports whether an action result counts as "nothing found".
// Typed nil pointers arrive wrapped in a non-nil interface, so reflection is
// needed.
func isEmptyResult(result any) bool {
	if result == nil {
		return true
	}

	value := reflect.ValueOf(result)
	switch value.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return value.IsNil()
	default:
		return false
	}
}
