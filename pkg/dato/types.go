package dato

import (
	"time"
)

// Page represents a paginated list response with the CMA's total count.
type Page[T any] struct {
	Data       []T `json:"data"        yaml:"data"`
	TotalCount int `json:"total_count" yaml:"total_count"`
}

// ItemPage represents a paginated list of records.
type ItemPage = Page[Item]

// UploadPage represents a paginated list of uploads.
type UploadPage = Page[Upload]

// WebhookCallPage represents a paginated list of webhook calls.
type WebhookCallPage = Page[WebhookCall]

// Item represents a record. Field values are dynamic and depend on the
// record's model, so they are kept as an attribute map.
type Item struct {
	ID         string         `json:"id"                   yaml:"id"`
	ItemTypeID string         `json:"item_type_id"         yaml:"item_type_id"`
	Fields     map[string]any `json:"fields"               yaml:"fields"`
	Meta       *ItemMeta      `json:"meta,omitempty"       yaml:"meta,omitempty"`
}

// ItemMeta carries the publication state of a record.
type ItemMeta struct {
	CreatedAt        *time.Time `json:"created_at,omitempty"         yaml:"created_at,omitempty"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"         yaml:"updated_at,omitempty"`
	PublishedAt      *time.Time `json:"published_at,omitempty"       yaml:"published_at,omitempty"`
	FirstPublishedAt *time.Time `json:"first_published_at,omitempty" yaml:"first_published_at,omitempty"`
	Status           string     `json:"status,omitempty"             yaml:"status,omitempty"`
	CurrentVersion   string     `json:"current_version,omitempty"    yaml:"current_version,omitempty"`
	Stage            *string    `json:"stage,omitempty"              yaml:"stage,omitempty"`
	IsValid          bool       `json:"is_valid"                     yaml:"is_valid"`
}

// ItemCreateRequest creates a record of the given model.
type ItemCreateRequest struct {
	ItemTypeID string         `json:"item_type_id" yaml:"item_type_id"`
	Fields     map[string]any `json:"fields"       yaml:"fields"`
}

// ItemType represents a model.
type ItemType struct {
	ID                   string `json:"id"                     yaml:"id"`
	Name                 string `json:"name"                   yaml:"name"`
	APIKey               string `json:"api_key"                yaml:"api_key"`
	Singleton            bool   `json:"singleton"              yaml:"singleton"`
	Sortable             bool   `json:"sortable"               yaml:"sortable"`
	ModularBlock         bool   `json:"modular_block"          yaml:"modular_block"`
	Tree                 bool   `json:"tree"                   yaml:"tree"`
	DraftModeActive      bool   `json:"draft_mode_active"      yaml:"draft_mode_active"`
	AllLocalesRequired   bool   `json:"all_locales_required"   yaml:"all_locales_required"`
	OrderingDirection    string `json:"ordering_direction,omitempty" yaml:"ordering_direction,omitempty"`
	CollectionAppearance string `json:"collection_appearance,omitempty" yaml:"collection_appearance,omitempty"`
	Hint                 string `json:"hint,omitempty"         yaml:"hint,omitempty"`
}

// ItemTypeCreateRequest creates a model.
type ItemTypeCreateRequest struct {
	Name               string `json:"name"                          yaml:"name"`
	APIKey             string `json:"api_key"                       yaml:"api_key"`
	Singleton          bool   `json:"singleton,omitempty"           yaml:"singleton,omitempty"`
	Sortable           bool   `json:"sortable,omitempty"            yaml:"sortable,omitempty"`
	ModularBlock       bool   `json:"modular_block,omitempty"       yaml:"modular_block,omitempty"`
	Tree               bool   `json:"tree,omitempty"                yaml:"tree,omitempty"`
	DraftModeActive    bool   `json:"draft_mode_active,omitempty"   yaml:"draft_mode_active,omitempty"`
	AllLocalesRequired bool   `json:"all_locales_required,omitempty" yaml:"all_locales_required,omitempty"`
	Hint               string `json:"hint,omitempty"                yaml:"hint,omitempty"`
}

// ItemTypeUpdateRequest updates a model. Nil fields are left untouched.
type ItemTypeUpdateRequest struct {
	Name            *string `json:"name,omitempty"              yaml:"name,omitempty"`
	APIKey          *string `json:"api_key,omitempty"           yaml:"api_key,omitempty"`
	Sortable        *bool   `json:"sortable,omitempty"          yaml:"sortable,omitempty"`
	Tree            *bool   `json:"tree,omitempty"              yaml:"tree,omitempty"`
	DraftModeActive *bool   `json:"draft_mode_active,omitempty" yaml:"draft_mode_active,omitempty"`
	Hint            *string `json:"hint,omitempty"              yaml:"hint,omitempty"`
}

// Field represents a field of a model.
type Field struct {
	ID           string         `json:"id"                      yaml:"id"`
	ItemTypeID   string         `json:"item_type_id"            yaml:"item_type_id"`
	Label        string         `json:"label"                   yaml:"label"`
	APIKey       string         `json:"api_key"                 yaml:"api_key"`
	FieldType    string         `json:"field_type"              yaml:"field_type"`
	Localized    bool           `json:"localized"               yaml:"localized"`
	Position     int            `json:"position"                yaml:"position"`
	Hint         string         `json:"hint,omitempty"          yaml:"hint,omitempty"`
	Validators   map[string]any `json:"validators,omitempty"    yaml:"validators,omitempty"`
	Appearance   map[string]any `json:"appearance,omitempty"    yaml:"appearance,omitempty"`
	DefaultValue any            `json:"default_value,omitempty" yaml:"default_value,omitempty"`
	FieldsetID   string         `json:"fieldset_id,omitempty"   yaml:"fieldset_id,omitempty"`
}

// FieldCreateRequest creates a field on a model.
type FieldCreateRequest struct {
	Label        string         `json:"label"                   yaml:"label"`
	APIKey       string         `json:"api_key"                 yaml:"api_key"`
	FieldType    string         `json:"field_type"              yaml:"field_type"`
	Localized    bool           `json:"localized,omitempty"     yaml:"localized,omitempty"`
	Hint         string         `json:"hint,omitempty"          yaml:"hint,omitempty"`
	Validators   map[string]any `json:"validators,omitempty"    yaml:"validators,omitempty"`
	Appearance   map[string]any `json:"appearance,omitempty"    yaml:"appearance,omitempty"`
	DefaultValue any            `json:"default_value,omitempty" yaml:"default_value,omitempty"`
}

// FieldUpdateRequest updates a field. Nil fields are left untouched.
type FieldUpdateRequest struct {
	Label      *string        `json:"label,omitempty"      yaml:"label,omitempty"`
	APIKey     *string        `json:"api_key,omitempty"    yaml:"api_key,omitempty"`
	Localized  *bool          `json:"localized,omitempty"  yaml:"localized,omitempty"`
	Hint       *string        `json:"hint,omitempty"       yaml:"hint,omitempty"`
	Position   *int           `json:"position,omitempty"   yaml:"position,omitempty"`
	Validators map[string]any `json:"validators,omitempty" yaml:"validators,omitempty"`
	Appearance map[string]any `json:"appearance,omitempty" yaml:"appearance,omitempty"`
}

// Fieldset represents a group of fields inside a model.
type Fieldset struct {
	ID             string `json:"id"              yaml:"id"`
	ItemTypeID     string `json:"item_type_id"    yaml:"item_type_id"`
	Title          string `json:"title"           yaml:"title"`
	Hint           string `json:"hint,omitempty"  yaml:"hint,omitempty"`
	Position       int    `json:"position"        yaml:"position"`
	Collapsible    bool   `json:"collapsible"     yaml:"collapsible"`
	StartCollapsed bool   `json:"start_collapsed" yaml:"start_collapsed"`
}

// FieldsetCreateRequest creates a fieldset on a model.
type FieldsetCreateRequest struct {
	Title          string `json:"title"                     yaml:"title"`
	Hint           string `json:"hint,omitempty"            yaml:"hint,omitempty"`
	Collapsible    bool   `json:"collapsible,omitempty"     yaml:"collapsible,omitempty"`
	StartCollapsed bool   `json:"start_collapsed,omitempty" yaml:"start_collapsed,omitempty"`
}

// FieldsetUpdateRequest updates a fieldset. Nil fields are left untouched.
type FieldsetUpdateRequest struct {
	Title          *string `json:"title,omitempty"           yaml:"title,omitempty"`
	Hint           *string `json:"hint,omitempty"            yaml:"hint,omitempty"`
	Position       *int    `json:"position,omitempty"        yaml:"position,omitempty"`
	Collapsible    *bool   `json:"collapsible,omitempty"     yaml:"collapsible,omitempty"`
	StartCollapsed *bool   `json:"start_collapsed,omitempty" yaml:"start_collapsed,omitempty"`
}

// Upload represents an asset in the media area.
type Upload struct {
	ID        string         `json:"id"                  yaml:"id"`
	Path      string         `json:"path"                yaml:"path"`
	Basename  string         `json:"basename"            yaml:"basename"`
	Filename  string         `json:"filename"            yaml:"filename"`
	URL       string         `json:"url"                 yaml:"url"`
	Size      int64          `json:"size"                yaml:"size"`
	Width     int            `json:"width,omitempty"     yaml:"width,omitempty"`
	Height    int            `json:"height,omitempty"    yaml:"height,omitempty"`
	Format    string         `json:"format,omitempty"    yaml:"format,omitempty"`
	MimeType  string         `json:"mime_type,omitempty" yaml:"mime_type,omitempty"`
	IsImage   bool           `json:"is_image"            yaml:"is_image"`
	Author    string         `json:"author,omitempty"    yaml:"author,omitempty"`
	Copyright string         `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	Notes     string         `json:"notes,omitempty"     yaml:"notes,omitempty"`
	Tags      []string       `json:"tags,omitempty"      yaml:"tags,omitempty"`
	SmartTags []string       `json:"smart_tags,omitempty" yaml:"smart_tags,omitempty"`
	Metadata  map[string]any `json:"default_field_metadata,omitempty" yaml:"default_field_metadata,omitempty"`
}

// UploadUpdateRequest updates upload metadata. Nil fields are left untouched.
type UploadUpdateRequest struct {
	Author    *string  `json:"author,omitempty"    yaml:"author,omitempty"`
	Copyright *string  `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	Notes     *string  `json:"notes,omitempty"     yaml:"notes,omitempty"`
	Tags      []string `json:"tags,omitempty"      yaml:"tags,omitempty"`
}

// AccessToken represents a CMA API token. Token is only populated on
// creation and rotation; list and retrieve responses omit it.
type AccessToken struct {
	ID                  string `json:"id"                      yaml:"id"`
	Name                string `json:"name"                    yaml:"name"`
	Token               string `json:"token,omitempty"         yaml:"token,omitempty"`
	HardcodedType       string `json:"hardcoded_type,omitempty" yaml:"hardcoded_type,omitempty"`
	CanAccessCDA        bool   `json:"can_access_cda"          yaml:"can_access_cda"`
	CanAccessCDAPreview bool   `json:"can_access_cda_preview"  yaml:"can_access_cda_preview"`
	CanAccessCMA        bool   `json:"can_access_cma"          yaml:"can_access_cma"`
	RoleID              string `json:"role_id,omitempty"       yaml:"role_id,omitempty"`
}

// AccessTokenCreateRequest creates an API token bound to a role.
type AccessTokenCreateRequest struct {
	Name                string `json:"name"                   yaml:"name"`
	RoleID              string `json:"role_id"                yaml:"role_id"`
	CanAccessCDA        bool   `json:"can_access_cda"         yaml:"can_access_cda"`
	CanAccessCDAPreview bool   `json:"can_access_cda_preview" yaml:"can_access_cda_preview"`
	CanAccessCMA        bool   `json:"can_access_cma"         yaml:"can_access_cma"`
}

// AccessTokenUpdateRequest updates an API token. Nil fields are left untouched.
type AccessTokenUpdateRequest struct {
	Name                *string `json:"name,omitempty"                   yaml:"name,omitempty"`
	RoleID              *string `json:"role_id,omitempty"                yaml:"role_id,omitempty"`
	CanAccessCDA        *bool   `json:"can_access_cda,omitempty"         yaml:"can_access_cda,omitempty"`
	CanAccessCDAPreview *bool   `json:"can_access_cda_preview,omitempty" yaml:"can_access_cda_preview,omitempty"`
	CanAccessCMA        *bool   `json:"can_access_cma,omitempty"         yaml:"can_access_cma,omitempty"`
}

// Role represents a permission role.
type Role struct {
	ID                     string `json:"id"                        yaml:"id"`
	Name                   string `json:"name"                      yaml:"name"`
	CanEditSchema          bool   `json:"can_edit_schema"           yaml:"can_edit_schema"`
	CanEditSite            bool   `json:"can_edit_site"             yaml:"can_edit_site"`
	CanEditFavicon         bool   `json:"can_edit_favicon"          yaml:"can_edit_favicon"`
	CanManageUsers         bool   `json:"can_manage_users"          yaml:"can_manage_users"`
	CanManageAccessTokens  bool   `json:"can_manage_access_tokens"  yaml:"can_manage_access_tokens"`
	CanManageWebhooks      bool   `json:"can_manage_webhooks"       yaml:"can_manage_webhooks"`
	CanManageEnvironments  bool   `json:"can_manage_environments"   yaml:"can_manage_environments"`
	CanManageBuildTriggers bool   `json:"can_manage_build_triggers" yaml:"can_manage_build_triggers"`
	CanPromoteEnvironments bool   `json:"can_promote_environments"  yaml:"can_promote_environments"`
	CanPublishToProduction bool   `json:"can_publish_to_production" yaml:"can_publish_to_production"`
	CanAccessAuditLog      bool   `json:"can_access_audit_log"      yaml:"can_access_audit_log"`
	EnvironmentsAccess     string `json:"environments_access,omitempty" yaml:"environments_access,omitempty"`
}

// RoleCreateRequest creates a role.
type RoleCreateRequest struct {
	Name                   string `json:"name"                               yaml:"name"`
	CanEditSchema          bool   `json:"can_edit_schema,omitempty"          yaml:"can_edit_schema,omitempty"`
	CanEditSite            bool   `json:"can_edit_site,omitempty"            yaml:"can_edit_site,omitempty"`
	CanManageUsers         bool   `json:"can_manage_users,omitempty"         yaml:"can_manage_users,omitempty"`
	CanManageAccessTokens  bool   `json:"can_manage_access_tokens,omitempty" yaml:"can_manage_access_tokens,omitempty"`
	CanManageWebhooks      bool   `json:"can_manage_webhooks,omitempty"      yaml:"can_manage_webhooks,omitempty"`
	CanManageEnvironments  bool   `json:"can_manage_environments,omitempty"  yaml:"can_manage_environments,omitempty"`
	CanPromoteEnvironments bool   `json:"can_promote_environments,omitempty" yaml:"can_promote_environments,omitempty"`
	EnvironmentsAccess     string `json:"environments_access,omitempty"      yaml:"environments_access,omitempty"`
}

// RoleUpdateRequest updates a role. Nil fields are left untouched.
type RoleUpdateRequest struct {
	Name                   *string `json:"name,omitempty"                     yaml:"name,omitempty"`
	CanEditSchema          *bool   `json:"can_edit_schema,omitempty"          yaml:"can_edit_schema,omitempty"`
	CanEditSite            *bool   `json:"can_edit_site,omitempty"            yaml:"can_edit_site,omitempty"`
	CanManageUsers         *bool   `json:"can_manage_users,omitempty"         yaml:"can_manage_users,omitempty"`
	CanManageAccessTokens  *bool   `json:"can_manage_access_tokens,omitempty" yaml:"can_manage_access_tokens,omitempty"`
	CanManageWebhooks      *bool   `json:"can_manage_webhooks,omitempty"      yaml:"can_manage_webhooks,omitempty"`
	CanManageEnvironments  *bool   `json:"can_manage_environments,omitempty"  yaml:"can_manage_environments,omitempty"`
	CanPromoteEnvironments *bool   `json:"can_promote_environments,omitempty" yaml:"can_promote_environments,omitempty"`
	EnvironmentsAccess     *string `json:"environments_access,omitempty"      yaml:"environments_access,omitempty"`
}

// User represents a project collaborator.
type User struct {
	ID        string `json:"id"                 yaml:"id"`
	FirstName string `json:"first_name"         yaml:"first_name"`
	LastName  string `json:"last_name"          yaml:"last_name"`
	Email     string `json:"email"              yaml:"email"`
	IsActive  bool   `json:"is_active"          yaml:"is_active"`
	State     string `json:"state,omitempty"    yaml:"state,omitempty"`
	RoleID    string `json:"role_id,omitempty"  yaml:"role_id,omitempty"`
}

// UserUpdateRequest updates a collaborator. Nil fields are left untouched.
type UserUpdateRequest struct {
	FirstName *string `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"  yaml:"last_name,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"  yaml:"is_active,omitempty"`
	RoleID    *string `json:"role_id,omitempty"    yaml:"role_id,omitempty"`
}

// SiteInvitation represents a pending collaborator invitation.
type SiteInvitation struct {
	ID     string `json:"id"                yaml:"id"`
	Email  string `json:"email"             yaml:"email"`
	RoleID string `json:"role_id,omitempty" yaml:"role_id,omitempty"`
}

// SiteInvitationCreateRequest invites a collaborator by email.
type SiteInvitationCreateRequest struct {
	Email  string `json:"email"   yaml:"email"`
	RoleID string `json:"role_id" yaml:"role_id"`
}

// Webhook represents a webhook subscription.
type Webhook struct {
	ID                string            `json:"id"                            yaml:"id"`
	Name              string            `json:"name"                          yaml:"name"`
	URL               string            `json:"url"                           yaml:"url"`
	Enabled           bool              `json:"enabled"                       yaml:"enabled"`
	Headers           map[string]string `json:"headers,omitempty"             yaml:"headers,omitempty"`
	Events            []WebhookEvent    `json:"events"                        yaml:"events"`
	HTTPBasicUser     string            `json:"http_basic_user,omitempty"     yaml:"http_basic_user,omitempty"`
	HTTPBasicPassword string            `json:"http_basic_password,omitempty" yaml:"http_basic_password,omitempty"`
	CustomPayload     string            `json:"custom_payload,omitempty"      yaml:"custom_payload,omitempty"`
	AutoRetry         bool              `json:"auto_retry"                    yaml:"auto_retry"`
}

// WebhookEvent selects which entity events fire a webhook.
type WebhookEvent struct {
	EntityType string         `json:"entity_type"       yaml:"entity_type"`
	EventTypes []string       `json:"event_types"       yaml:"event_types"`
	Filters    map[string]any `json:"filters,omitempty" yaml:"filters,omitempty"`
}

// WebhookCreateRequest creates a webhook.
type WebhookCreateRequest struct {
	Name          string            `json:"name"                     yaml:"name"`
	URL           string            `json:"url"                      yaml:"url"`
	Enabled       bool              `json:"enabled"                  yaml:"enabled"`
	Headers       map[string]string `json:"headers,omitempty"        yaml:"headers,omitempty"`
	Events        []WebhookEvent    `json:"events"                   yaml:"events"`
	CustomPayload string            `json:"custom_payload,omitempty" yaml:"custom_payload,omitempty"`
	AutoRetry     bool              `json:"auto_retry,omitempty"     yaml:"auto_retry,omitempty"`
}

// WebhookUpdateRequest updates a webhook. Nil fields are left untouched.
type WebhookUpdateRequest struct {
	Name      *string           `json:"name,omitempty"       yaml:"name,omitempty"`
	URL       *string           `json:"url,omitempty"        yaml:"url,omitempty"`
	Enabled   *bool             `json:"enabled,omitempty"    yaml:"enabled,omitempty"`
	Headers   map[string]string `json:"headers,omitempty"    yaml:"headers,omitempty"`
	Events    []WebhookEvent    `json:"events,omitempty"     yaml:"events,omitempty"`
	AutoRetry *bool             `json:"auto_retry,omitempty" yaml:"auto_retry,omitempty"`
}

// WebhookCall represents one delivery attempt of a webhook.
type WebhookCall struct {
	ID             string     `json:"id"                        yaml:"id"`
	WebhookID      string     `json:"webhook_id,omitempty"      yaml:"webhook_id,omitempty"`
	EntityType     string     `json:"entity_type"               yaml:"entity_type"`
	EventType      string     `json:"event_type"                yaml:"event_type"`
	CreatedAt      *time.Time `json:"created_at,omitempty"      yaml:"created_at,omitempty"`
	RequestURL     string     `json:"request_url"               yaml:"request_url"`
	ResponseStatus int        `json:"response_status,omitempty" yaml:"response_status,omitempty"`
}

// BuildTrigger represents a deployment/build trigger.
type BuildTrigger struct {
	ID              string         `json:"id"                         yaml:"id"`
	Name            string         `json:"name"                       yaml:"name"`
	Adapter         string         `json:"adapter"                    yaml:"adapter"`
	AdapterSettings map[string]any `json:"adapter_settings,omitempty" yaml:"adapter_settings,omitempty"`
	FrontendURL     string         `json:"frontend_url,omitempty"     yaml:"frontend_url,omitempty"`
	IndexingEnabled bool           `json:"indexing_enabled"           yaml:"indexing_enabled"`
}

// BuildTriggerCreateRequest creates a build trigger.
type BuildTriggerCreateRequest struct {
	Name            string         `json:"name"                       yaml:"name"`
	Adapter         string         `json:"adapter"                    yaml:"adapter"`
	AdapterSettings map[string]any `json:"adapter_settings,omitempty" yaml:"adapter_settings,omitempty"`
	FrontendURL     string         `json:"frontend_url,omitempty"     yaml:"frontend_url,omitempty"`
	IndexingEnabled bool           `json:"indexing_enabled,omitempty" yaml:"indexing_enabled,omitempty"`
}

// Site represents project-wide settings.
type Site struct {
	ID                string   `json:"id"                           yaml:"id"`
	Name              string   `json:"name"                         yaml:"name"`
	InternalSubdomain string   `json:"internal_subdomain,omitempty" yaml:"internal_subdomain,omitempty"`
	Locales           []string `json:"locales"                      yaml:"locales"`
	Timezone          string   `json:"timezone,omitempty"           yaml:"timezone,omitempty"`
	NoIndex           bool     `json:"no_index"                     yaml:"no_index"`
	RequireSSO        bool     `json:"require_sso"                  yaml:"require_sso"`
}

// SiteUpdateRequest updates project settings. Nil fields are left untouched.
type SiteUpdateRequest struct {
	Name     *string  `json:"name,omitempty"     yaml:"name,omitempty"`
	Locales  []string `json:"locales,omitempty"  yaml:"locales,omitempty"`
	Timezone *string  `json:"timezone,omitempty" yaml:"timezone,omitempty"`
	NoIndex  *bool    `json:"no_index,omitempty" yaml:"no_index,omitempty"`
}

// Environment represents a primary or sandbox environment.
type Environment struct {
	ID   string           `json:"id"             yaml:"id"`
	Meta *EnvironmentMeta `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// EnvironmentMeta carries environment lifecycle information.
type EnvironmentMeta struct {
	Status           string     `json:"status"                        yaml:"status"`
	Primary          bool       `json:"primary"                       yaml:"primary"`
	CreatedAt        *time.Time `json:"created_at,omitempty"          yaml:"created_at,omitempty"`
	LastDataChangeAt *time.Time `json:"last_data_change_at,omitempty" yaml:"last_data_change_at,omitempty"`
	ForkedFrom       string     `json:"forked_from,omitempty"         yaml:"forked_from,omitempty"`
}

// EnvironmentForkRequest forks an environment into a new sandbox.
type EnvironmentForkRequest struct {
	ID   string `json:"id"             yaml:"id"`
	Fast bool   `json:"fast,omitempty" yaml:"fast,omitempty"`
}

// MaintenanceMode represents the project maintenance-mode flag.
type MaintenanceMode struct {
	ID     string `json:"id"     yaml:"id"`
	Active bool   `json:"active" yaml:"active"`
}

// JobResult represents the outcome of an asynchronous CMA job.
type JobResult struct {
	ID      string         `json:"id"                yaml:"id"`
	Status  int            `json:"status"            yaml:"status"`
	Payload map[string]any `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// MenuItem represents an entry in the editor navigation.
type MenuItem struct {
	ID           string `json:"id"                       yaml:"id"`
	Label        string `json:"label"                    yaml:"label"`
	Position     int    `json:"position"                 yaml:"position"`
	ExternalURL  string `json:"external_url,omitempty"   yaml:"external_url,omitempty"`
	OpenInNewTab bool   `json:"open_in_new_tab"          yaml:"open_in_new_tab"`
	ItemTypeID   string `json:"item_type_id,omitempty"   yaml:"item_type_id,omitempty"`
	ParentID     string `json:"parent_id,omitempty"      yaml:"parent_id,omitempty"`
}

// MenuItemCreateRequest creates a navigation entry.
type MenuItemCreateRequest struct {
	Label        string `json:"label"                    yaml:"label"`
	ExternalURL  string `json:"external_url,omitempty"   yaml:"external_url,omitempty"`
	OpenInNewTab bool   `json:"open_in_new_tab,omitempty" yaml:"open_in_new_tab,omitempty"`
	ItemTypeID   string `json:"item_type_id,omitempty"   yaml:"item_type_id,omitempty"`
	ParentID     string `json:"parent_id,omitempty"      yaml:"parent_id,omitempty"`
}

// MenuItemUpdateRequest updates a navigation entry. Nil fields are left untouched.
type MenuItemUpdateRequest struct {
	Label        *string `json:"label,omitempty"           yaml:"label,omitempty"`
	Position     *int    `json:"position,omitempty"        yaml:"position,omitempty"`
	ExternalURL  *string `json:"external_url,omitempty"    yaml:"external_url,omitempty"`
	OpenInNewTab *bool   `json:"open_in_new_tab,omitempty" yaml:"open_in_new_tab,omitempty"`
	ItemTypeID   *string `json:"item_type_id,omitempty"    yaml:"item_type_id,omitempty"`
	ParentID     *string `json:"parent_id,omitempty"       yaml:"parent_id,omitempty"`
}

// Plugin represents an installed plugin.
type Plugin struct {
	ID             string         `json:"id"                        yaml:"id"`
	Name           string         `json:"name"                      yaml:"name"`
	Description    string         `json:"description,omitempty"     yaml:"description,omitempty"`
	URL            string         `json:"url"                       yaml:"url"`
	Parameters     map[string]any `json:"parameters,omitempty"      yaml:"parameters,omitempty"`
	PackageName    string         `json:"package_name,omitempty"    yaml:"package_name,omitempty"`
	PackageVersion string         `json:"package_version,omitempty" yaml:"package_version,omitempty"`
}

// PluginCreateRequest installs a plugin.
type PluginCreateRequest struct {
	Name        string         `json:"name,omitempty"         yaml:"name,omitempty"`
	URL         string         `json:"url,omitempty"          yaml:"url,omitempty"`
	PackageName string         `json:"package_name,omitempty" yaml:"package_name,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"   yaml:"parameters,omitempty"`
}

// PluginUpdateRequest updates a plugin. Nil fields are left untouched.
type PluginUpdateRequest struct {
	Name       *string        `json:"name,omitempty"       yaml:"name,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}
