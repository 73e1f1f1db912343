package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/datocms-community/datocms-mcp/internal/handler"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// uiTools covers the editor surface: navigation menu items and installed
// plugins.
func uiTools(f *handler.Factory) []Tool {
	var tools []Tool

	tools = append(tools, menuItemTools(f)...)
	tools = append(tools, pluginTools(f)...)

	return tools
}

func menuItemTools(f *handler.Factory) []Tool {
	const domain = "ui.menu_items"

	idSchema := withAuth(map[string]*jsonschema.Schema{
		"menu_item_id": stringProp("ID of the menu item"),
	}, "menu_item_id")

	createSchema := withAuth(map[string]*jsonschema.Schema{
		"label":           stringProp("Label shown in the editor navigation"),
		"item_type_id":    stringProp("ID of the model the entry links to; mutually exclusive with external_url"),
		"external_url":    stringProp("External URL the entry links to; mutually exclusive with item_type_id"),
		"open_in_new_tab": boolProp("Whether an external URL opens in a new tab"),
		"parent_id":       stringProp("ID of the parent menu item for nesting"),
	}, "label")

	updateSchema := withAuth(map[string]*jsonschema.Schema{
		"menu_item_id":    stringProp("ID of the menu item"),
		"label":           stringProp("New label"),
		"position":        intProp("Position among siblings, starting at 1"),
		"item_type_id":    stringProp("ID of the model the entry links to"),
		"external_url":    stringProp("External URL the entry links to"),
		"open_in_new_tab": boolProp("Whether an external URL opens in a new tab"),
		"parent_id":       stringProp("ID of the parent menu item"),
	}, "menu_item_id")

	return []Tool{
		{
			Name:        "datocms_menu_items_list",
			Description: "List the editor navigation menu items.",
			Schema:      withAuth(nil),
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.List(handler.Descriptor{
				Domain: domain, Operation: "list", Schema: withAuth(nil), EntityLabel: "menu item",
			}, func(ctx context.Context, client dato.Client, _ handler.Args) (any, error) {
				return client.MenuItems().List(ctx)
			}, nil),
		},
		{
			Name:        "datocms_menu_items_get",
			Description: "Retrieve a menu item by ID.",
			Schema:      idSchema,
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.Retrieve(handler.Descriptor{
				Domain: domain, Operation: "get", Schema: idSchema,
				EntityLabel: "menu item", IDParam: "menu_item_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				item, err := client.MenuItems().Get(ctx, args.String("menu_item_id"))
				if err != nil {
					if dato.IsNotFound(err) {
						return nil, nil
					}

					return nil, err
				}

				return item, nil
			}),
		},
		{
			Name:        "datocms_menu_items_create",
			Description: "Create a navigation menu item linking to a model or an external URL.",
			Schema:      createSchema,
			Handler: f.Create(handler.Descriptor{
				Domain: domain, Operation: "create", Schema: createSchema, EntityLabel: "menu item",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.MenuItems().Create(ctx, &dato.MenuItemCreateRequest{
					Label:        args.String("label"),
					ExternalURL:  args.String("external_url"),
					OpenInNewTab: args.Bool("open_in_new_tab"),
					ItemTypeID:   args.String("item_type_id"),
					ParentID:     args.String("parent_id"),
				})
			}),
		},
		{
			Name:        "datocms_menu_items_update",
			Description: "Update a menu item's label, position, target, or nesting.",
			Schema:      updateSchema,
			Idempotent:  true,
			Handler: f.Update(handler.Descriptor{
				Domain: domain, Operation: "update", Schema: updateSchema,
				EntityLabel: "menu item", IDParam: "menu_item_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.MenuItems().Update(ctx, args.String("menu_item_id"), &dato.MenuItemUpdateRequest{
					Label:        optString(args, "label"),
					Position:     optInt(args, "position"),
					ExternalURL:  optString(args, "external_url"),
					OpenInNewTab: optBool(args, "open_in_new_tab"),
					ItemTypeID:   optString(args, "item_type_id"),
					ParentID:     optString(args, "parent_id"),
				})
			}),
		},
		{
			Name:        "datocms_menu_items_delete",
			Description: "Delete a menu item. Nested children are promoted to its parent.",
			Schema:      idSchema,
			Destructive: true,
			Handler: f.Delete(handler.Descriptor{
				Domain: domain, Operation: "delete", Schema: idSchema,
				EntityLabel: "menu item", IDParam: "menu_item_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.MenuItems().Delete(ctx, args.String("menu_item_id"))
			}),
		},
	}
}

func pluginTools(f *handler.Factory) []Tool {
	const domain = "ui.plugins"

	idSchema := withAuth(map[string]*jsonschema.Schema{
		"plugin_id": stringProp("ID of the plugin"),
	}, "plugin_id")

	createSchema := withAuth(map[string]*jsonschema.Schema{
		"package_name": stringProp("npm package name for marketplace plugins; mutually exclusive with url"),
		"name":         stringProp("Name for a private plugin; required with url"),
		"url":          stringProp("Entry-point URL for a private plugin; mutually exclusive with package_name"),
		"parameters":   objectProp("Plugin configuration parameters"),
	})

	updateSchema := withAuth(map[string]*jsonschema.Schema{
		"plugin_id":  stringProp("ID of the plugin"),
		"name":       stringProp("New plugin name"),
		"parameters": objectProp("Plugin configuration parameters; replaces the current set"),
	}, "plugin_id")

	return []Tool{
		{
			Name:        "datocms_plugins_list",
			Description: "List the project's installed plugins.",
			Schema:      withAuth(nil),
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.List(handler.Descriptor{
				Domain: domain, Operation: "list", Schema: withAuth(nil), EntityLabel: "plugin",
			}, func(ctx context.Context, client dato.Client, _ handler.Args) (any, error) {
				return client.Plugins().List(ctx)
			}, nil),
		},
		{
			Name:        "datocms_plugins_get",
			Description: "Retrieve a plugin by ID.",
			Schema:      idSchema,
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.Retrieve(handler.Descriptor{
				Domain: domain, Operation: "get", Schema: idSchema,
				EntityLabel: "plugin", IDParam: "plugin_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				plugin, err := client.Plugins().Get(ctx, args.String("plugin_id"))
				if err != nil {
					if dato.IsNotFound(err) {
						return nil, nil
					}

					return nil, err
				}

				return plugin, nil
			}),
		},
		{
			Name:        "datocms_plugins_create",
			Description: "Install a plugin from the marketplace by package name, or a private plugin by URL.",
			Schema:      createSchema,
			Handler: f.Create(handler.Descriptor{
				Domain: domain, Operation: "create", Schema: createSchema, EntityLabel: "plugin",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.Plugins().Create(ctx, &dato.PluginCreateRequest{
					Name:        args.String("name"),
					URL:         args.String("url"),
					PackageName: args.String("package_name"),
					Parameters:  args.StringMap("parameters"),
				})
			}),
		},
		{
			Name:        "datocms_plugins_update",
			Description: "Update a plugin's name or configuration parameters.",
			Schema:      updateSchema,
			Idempotent:  true,
			Handler: f.Update(handler.Descriptor{
				Domain: domain, Operation: "update", Schema: updateSchema,
				EntityLabel: "plugin", IDParam: "plugin_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.Plugins().Update(ctx, args.String("plugin_id"), &dato.PluginUpdateRequest{
					Name:       optString(args, "name"),
					Parameters: args.StringMap("parameters"),
				})
			}),
		},
		{
			Name:        "datocms_plugins_delete",
			Description: "Uninstall a plugin. Fields configured to use it fall back to their default editor.",
			Schema:      idSchema,
			Destructive: true,
			Handler: f.Delete(handler.Descriptor{
				Domain: domain, Operation: "delete", Schema: idSchema,
				EntityLabel: "plugin", IDParam: "plugin_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.Plugins().Delete(ctx, args.String("plugin_id"))
			}),
		},
	}
}
