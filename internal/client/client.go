// Package client implements the DatoCMS CMA client defined in pkg/dato.
package client

import (
	"github.com/datocms-community/datocms-mcp/internal/http"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// Client implements the dato.Client interface.
type Client struct {
	httpClient *http.Client

	// Resource clients
	items           dato.ItemsClient
	uploads         dato.UploadsClient
	itemTypes       dato.ItemTypesClient
	fields          dato.FieldsClient
	fieldsets       dato.FieldsetsClient
	accessTokens    dato.AccessTokensClient
	roles           dato.RolesClient
	users           dato.UsersClient
	siteInvitations dato.SiteInvitationsClient
	webhooks        dato.WebhooksClient
	webhookCalls    dato.WebhookCallsClient
	buildTriggers   dato.BuildTriggersClient
	site            dato.SiteClient
	environments    dato.EnvironmentsClient
	maintenanceMode dato.MaintenanceModeClient
	jobs            dato.JobsClient
	menuItems       dato.MenuItemsClient
	plugins         dato.PluginsClient
}

var _ dato.Client = (*Client)(nil)

// New creates a new CMA client.
func New(config *dato.Config) (*Client, error) {
	if config == nil {
		return nil, dato.ErrConfigRequired
	}

	if config.APIToken == "" {
		return nil, dato.ErrAPITokenRequired
	}

	c := &Client{httpClient: http.NewClient(config)}
	c.initializeResourceClients()

	return c, nil
}

func (c *Client) initializeResourceClients() {
	c.items = NewItemsClient(c.httpClient)
	c.uploads = NewUploadsClient(c.httpClient)
	c.itemTypes = NewItemTypesClient(c.httpClient)
	c.fields = NewFieldsClient(c.httpClient)
	c.fieldsets = NewFieldsetsClient(c.httpClient)
	c.accessTokens = NewAccessTokensClient(c.httpClient)
	c.roles = NewRolesClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.siteInvitations = NewSiteInvitationsClient(c.httpClient)
	c.webhooks = NewWebhooksClient(c.httpClient)
	c.webhookCalls = NewWebhookCallsClient(c.httpClient)
	c.buildTriggers = NewBuildTriggersClient(c.httpClient)
	c.site = NewSiteClient(c.httpClient)
	c.environments = NewEnvironmentsClient(c.httpClient)
	c.maintenanceMode = NewMaintenanceModeClient(c.httpClient)
	c.jobs = NewJobsClient(c.httpClient)
	c.menuItems = NewMenuItemsClient(c.httpClient)
	c.plugins = NewPluginsClient(c.httpClient)
}

// Items implements dato.ContentClients.
func (c *Client) Items() dato.ItemsClient { return c.items }

// Uploads implements dato.ContentClients.
func (c *Client) Uploads() dato.UploadsClient { return c.uploads }

// ItemTypes implements dato.SchemaClients.
func (c *Client) ItemTypes() dato.ItemTypesClient { return c.itemTypes }

// Fields implements dato.SchemaClients.
func (c *Client) Fields() dato.FieldsClient { return c.fields }

// Fieldsets implements dato.SchemaClients.
func (c *Client) Fieldsets() dato.FieldsetsClient { return c.fieldsets }

// AccessTokens implements dato.AccessClients.
func (c *Client) AccessTokens() dato.AccessTokensClient { return c.accessTokens }

// Roles implements dato.AccessClients.
func (c *Client) Roles() dato.RolesClient { return c.roles }

// Users implements dato.AccessClients.
func (c *Client) Users() dato.UsersClient { return c.users }

// SiteInvitations implements dato.AccessClients.
func (c *Client) SiteInvitations() dato.SiteInvitationsClient { return c.siteInvitations }

// Webhooks implements dato.DeliveryClients.
func (c *Client) Webhooks() dato.WebhooksClient { return c.webhooks }

// WebhookCalls implements dato.DeliveryClients.
func (c *Client) WebhookCalls() dato.WebhookCallsClient { return c.webhookCalls }

// BuildTriggers implements dato.DeliveryClients.
func (c *Client) BuildTriggers() dato.BuildTriggersClient { return c.buildTriggers }

// Site implements dato.ProjectClients.
func (c *Client) Site() dato.SiteClient { return c.site }

// Environments implements dato.ProjectClients.
func (c *Client) Environments() dato.EnvironmentsClient { return c.environments }

// MaintenanceMode implements dato.ProjectClients.
func (c *Client) MaintenanceMode() dato.MaintenanceModeClient { return c.maintenanceMode }

// Jobs implements dato.ProjectClients.
func (c *Client) Jobs() dato.JobsClient { return c.jobs }

// MenuItems implements dato.ProjectClients.
func (c *Client) MenuItems() dato.MenuItemsClient { return c.menuItems }

// Plugins implements dato.ProjectClients.
func (c *Client) Plugins() dato.PluginsClient { return c.plugins }
