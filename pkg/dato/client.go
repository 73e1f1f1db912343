package dato

import (
	"context"
	"time"
)

// ContentClients provides access to content resource clients.
type ContentClients interface {
	Items() ItemsClient
	Uploads() UploadsClient
}

// SchemaClients provides access to schema resource clients.
type SchemaClients interface {
	ItemTypes() ItemTypesClient
	Fields() FieldsClient
	Fieldsets() FieldsetsClient
}

// AccessClients provides access to permission and collaborator resource clients.
type AccessClients interface {
	AccessTokens() AccessTokensClient
	Roles() RolesClient
	Users() UsersClient
	SiteInvitations() SiteInvitationsClient
}

// DeliveryClients provides access to webhook and build resource clients.
type DeliveryClients interface {
	Webhooks() WebhooksClient
	WebhookCalls() WebhookCallsClient
	BuildTriggers() BuildTriggersClient
}

// ProjectClients provides access to project-level resource clients.
type ProjectClients interface {
	Site() SiteClient
	Environments() EnvironmentsClient
	MaintenanceMode() MaintenanceModeClient
	Jobs() JobsClient
	MenuItems() MenuItemsClient
	Plugins() PluginsClient
}

// Client is the full DatoCMS CMA client surface.
type Client interface {
	ContentClients
	SchemaClients
	AccessClients
	DeliveryClients
	ProjectClients
}

// ItemsClient manages records.
type ItemsClient interface {
	List(ctx context.Context, params *QueryParams) (*ItemPage, error)
	Get(ctx context.Context, itemID string, params *QueryParams) (*Item, error)
	Create(ctx context.Context, request *ItemCreateRequest) (*Item, error)
	Update(ctx context.Context, itemID string, fields map[string]any) (*Item, error)
	Delete(ctx context.Context, itemID string) (*Item, error)
	Publish(ctx context.Context, itemID string) (*Item, error)
	Unpublish(ctx context.Context, itemID string) (*Item, error)
	Duplicate(ctx context.Context, itemID string) (*Item, error)
}

// UploadsClient manages the media area.
type UploadsClient interface {
	List(ctx context.Context, params *QueryParams) (*UploadPage, error)
	Get(ctx context.Context, uploadID string) (*Upload, error)
	Update(ctx context.Context, uploadID string, request *UploadUpdateRequest) (*Upload, error)
	Delete(ctx context.Context, uploadID string) error
	References(ctx context.Context, uploadID string) ([]Item, error)
}

// ItemTypesClient manages models.
type ItemTypesClient interface {
	List(ctx context.Context) ([]ItemType, error)
	Get(ctx context.Context, itemTypeID string) (*ItemType, error)
	Create(ctx context.Context, request *ItemTypeCreateRequest) (*ItemType, error)
	Update(ctx context.Context, itemTypeID string, request *ItemTypeUpdateRequest) (*ItemType, error)
	Duplicate(ctx context.Context, itemTypeID string) (*ItemType, error)
	Delete(ctx context.Context, itemTypeID string) (*ItemType, error)
}

// FieldsClient manages fields of a model.
type FieldsClient interface {
	List(ctx context.Context, itemTypeID string) ([]Field, error)
	Get(ctx context.Context, fieldID string) (*Field, error)
	Create(ctx context.Context, itemTypeID string, request *FieldCreateRequest) (*Field, error)
	Update(ctx context.Context, fieldID string, request *FieldUpdateRequest) (*Field, error)
	Delete(ctx context.Context, fieldID string) (*Field, error)
}

// FieldsetsClient manages fieldsets of a model.
type FieldsetsClient interface {
	List(ctx context.Context, itemTypeID string) ([]Fieldset, error)
	Get(ctx context.Context, fieldsetID string) (*Fieldset, error)
	Create(ctx context.Context, itemTypeID string, request *FieldsetCreateRequest) (*Fieldset, error)
	Update(ctx context.Context, fieldsetID string, request *FieldsetUpdateRequest) (*Fieldset, error)
	Delete(ctx context.Context, fieldsetID string) (*Fieldset, error)
}

// AccessTokensClient manages API tokens.
type AccessTokensClient interface {
	List(ctx context.Context) ([]AccessToken, error)
	Get(ctx context.Context, tokenID string) (*AccessToken, error)
	Create(ctx context.Context, request *AccessTokenCreateRequest) (*AccessToken, error)
	Update(ctx context.Context, tokenID string, request *AccessTokenUpdateRequest) (*AccessToken, error)
	Regenerate(ctx context.Context, tokenID string) (*AccessToken, error)
	Delete(ctx context.Context, tokenID string) (*AccessToken, error)
}

// RolesClient manages roles.
type RolesClient interface {
	List(ctx context.Context) ([]Role, error)
	Get(ctx context.Context, roleID string) (*Role, error)
	Create(ctx context.Context, request *RoleCreateRequest) (*Role, error)
	Update(ctx context.Context, roleID string, request *RoleUpdateRequest) (*Role, error)
	Duplicate(ctx context.Context, roleID string) (*Role, error)
	Delete(ctx context.Context, roleID string) (*Role, error)
}

// UsersClient manages project collaborators.
type UsersClient interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, userID string) (*User, error)
	Update(ctx context.Context, userID string, request *UserUpdateRequest) (*User, error)
	Delete(ctx context.Context, userID string) (*User, error)
}

// SiteInvitationsClient manages pending collaborator invitations.
type SiteInvitationsClient interface {
	List(ctx context.Context) ([]SiteInvitation, error)
	Get(ctx context.Context, invitationID string) (*SiteInvitation, error)
	Create(ctx context.Context, request *SiteInvitationCreateRequest) (*SiteInvitation, error)
	Resend(ctx context.Context, invitationID string) error
	Delete(ctx context.Context, invitationID string) (*SiteInvitation, error)
}

// WebhooksClient manages webhooks.
type WebhooksClient interface {
	List(ctx context.Context) ([]Webhook, error)
	Get(ctx context.Context, webhookID string) (*Webhook, error)
	Create(ctx context.Context, request *WebhookCreateRequest) (*Webhook, error)
	Update(ctx context.Context, webhookID string, request *WebhookUpdateRequest) (*Webhook, error)
	Delete(ctx context.Context, webhookID string) (*Webhook, error)
}

// WebhookCallsClient inspects webhook delivery attempts.
type WebhookCallsClient interface {
	List(ctx context.Context, params *QueryParams) (*WebhookCallPage, error)
	Resend(ctx context.Context, callID string) error
}

// BuildTriggersClient manages build triggers.
type BuildTriggersClient interface {
	List(ctx context.Context) ([]BuildTrigger, error)
	Create(ctx context.Context, request *BuildTriggerCreateRequest) (*BuildTrigger, error)
	Trigger(ctx context.Context, triggerID string) error
	Delete(ctx context.Context, triggerID string) (*BuildTrigger, error)
}

// SiteClient manages project-wide settings.
type SiteClient interface {
	Get(ctx context.Context) (*Site, error)
	Update(ctx context.Context, request *SiteUpdateRequest) (*Site, error)
}

// EnvironmentsClient manages sandbox environments.
type EnvironmentsClient interface {
	List(ctx context.Context) ([]Environment, error)
	Get(ctx context.Context, environmentID string) (*Environment, error)
	Fork(ctx context.Context, environmentID string, request *EnvironmentForkRequest) (*Environment, error)
	Promote(ctx context.Context, environmentID string) (*Environment, error)
	Rename(ctx context.Context, environmentID, newID string) (*Environment, error)
	Delete(ctx context.Context, environmentID string) (*Environment, error)
}

// MaintenanceModeClient toggles project maintenance mode.
type MaintenanceModeClient interface {
	Get(ctx context.Context) (*MaintenanceMode, error)
	Activate(ctx context.Context, force bool) (*MaintenanceMode, error)
	Deactivate(ctx context.Context) (*MaintenanceMode, error)
}

// JobsClient polls asynchronous job results.
type JobsClient interface {
	Get(ctx context.Context, jobID string) (*JobResult, error)
}

// MenuItemsClient manages editor navigation entries.
type MenuItemsClient interface {
	List(ctx context.Context) ([]MenuItem, error)
	Get(ctx context.Context, menuItemID string) (*MenuItem, error)
	Create(ctx context.Context, request *MenuItemCreateRequest) (*MenuItem, error)
	Update(ctx context.Context, menuItemID string, request *MenuItemUpdateRequest) (*MenuItem, error)
	Delete(ctx context.Context, menuItemID string) (*MenuItem, error)
}

// PluginsClient manages installed plugins.
type PluginsClient interface {
	List(ctx context.Context) ([]Plugin, error)
	Get(ctx context.Context, pluginID string) (*Plugin, error)
	Create(ctx context.Context, request *PluginCreateRequest) (*Plugin, error)
	Update(ctx context.Context, pluginID string, request *PluginUpdateRequest) (*Plugin, error)
	Delete(ctx context.Context, pluginID string) (*Plugin, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a dato.Client.
//
// # Authentication
//
// The CMA authenticates every request with a plain API token sent as a
// Bearer header. Tokens are project-scoped; there is no OAuth flow and no
// refresh. A token revoked mid-process keeps failing with 401 on every
// subsequent call, which surfaces as an auth error per request rather than
// a crash.
//
// # Environments
//
// When Environment is set, requests carry the X-Environment header and
// operate on that sandbox environment; otherwise the primary environment
// is targeted.
type Config struct {
	// APIToken is the CMA API token. Required.
	APIToken string

	// APIEndpoint overrides the CMA base URL. Defaults to
	// https://site-api.datocms.com. Mostly useful for tests.
	APIEndpoint string

	// Environment selects a sandbox environment. Empty means primary.
	Environment string

	// HTTPTimeout is the per-request timeout applied when the caller's
	// context carries no deadline.
	HTTPTimeout time.Duration

	// RetryMax is the maximum number of retries for transient failures
	// (429 and 5xx). Client errors other than 429 are never retried.
	RetryMax int

	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration

	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool

	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Cache is an optional response cache for GET requests. Nil disables
	// caching.
	Cache Cache
}
