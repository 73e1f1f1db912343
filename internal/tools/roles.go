package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/datocms-community/datocms-mcp/internal/handler"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// roleTools covers permission role management.
func roleTools(f *handler.Factory) []Tool {
	const domain = "collaborators.roles"

	idSchema := withAuth(map[string]*jsonschema.Schema{
		"role_id": stringProp("ID of the role"),
	}, "role_id")

	permissionProps := map[string]*jsonschema.Schema{
		"can_edit_schema":          boolProp("Whether the role can change models and fields"),
		"can_edit_site":            boolProp("Whether the role can change project settings"),
		"can_manage_users":         boolProp("Whether the role can manage collaborators"),
		"can_manage_access_tokens": boolProp("Whether the role can manage API tokens"),
		"can_manage_webhooks":      boolProp("Whether the role can manage webhooks"),
		"can_manage_environments":  boolProp("Whether the role can manage sandbox environments"),
		"can_promote_environments": boolProp("Whether the role can promote a sandbox to primary"),
		"environments_access":      enumProp("Environment visibility", "all", "primary_only", "sandbox_only"),
	}

	createSchema := withAuth(mergeProps(permissionProps, map[string]*jsonschema.Schema{
		"name": stringProp("Name of the role"),
	}), "name")

	updateSchema := withAuth(mergeProps(permissionProps, map[string]*jsonschema.Schema{
		"role_id": stringProp("ID of the role"),
		"name":    stringProp("New role name"),
	}), "role_id")

	return []Tool{
		{
			Name:        "datocms_roles_list",
			Description: "List the project's permission roles.",
			Schema:      withAuth(nil),
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.List(handler.Descriptor{
				Domain: domain, Operation: "list", Schema: withAuth(nil), EntityLabel: "role",
			}, func(ctx context.Context, client dato.Client, _ handler.Args) (any, error) {
				return client.Roles().List(ctx)
			}, nil),
		},
		{
			Name:        "datocms_roles_get",
			Description: "Retrieve a role by ID.",
			Schema:      idSchema,
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.Retrieve(handler.Descriptor{
				Domain: domain, Operation: "get", Schema: idSchema,
				EntityLabel: "role", IDParam: "role_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				role, err := client.Roles().Get(ctx, args.String("role_id"))
				if err != nil {
					if dato.IsNotFound(err) {
						return nil, nil
					}

					return nil, err
				}

				return role, nil
			}),
		},
		{
			Name:        "datocms_roles_create",
			Description: "Create a permission role.",
			Schema:      createSchema,
			Handler: f.Create(handler.Descriptor{
				Domain: domain, Operation: "create", Schema: createSchema, EntityLabel: "role",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.Roles().Create(ctx, &dato.RoleCreateRequest{
					Name:                   args.String("name"),
					CanEditSchema:          args.Bool("can_edit_schema"),
					CanEditSite:            args.Bool("can_edit_site"),
					CanManageUsers:         args.Bool("can_manage_users"),
					CanManageAccessTokens:  args.Bool("can_manage_access_tokens"),
					CanManageWebhooks:      args.Bool("can_manage_webhooks"),
					CanManageEnvironments:  args.Bool("can_manage_environments"),
					CanPromoteEnvironments: args.Bool("can_promote_environments"),
					EnvironmentsAccess:     args.String("environments_access"),
				})
			}),
		},
		{
			Name:        "datocms_roles_update",
			Description: "Update a role's name or permissions. Only the supplied attributes change.",
			Schema:      updateSchema,
			Idempotent:  true,
			Handler: f.Update(handler.Descriptor{
				Domain: domain, Operation: "update", Schema: updateSchema,
				EntityLabel: "role", IDParam: "role_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.Roles().Update(ctx, args.String("role_id"), &dato.RoleUpdateRequest{
					Name:                   optString(args, "name"),
					CanEditSchema:          optBool(args, "can_edit_schema"),
					CanEditSite:            optBool(args, "can_edit_site"),
					CanManageUsers:         optBool(args, "can_manage_users"),
					CanManageAccessTokens:  optBool(args, "can_manage_access_tokens"),
					CanManageWebhooks:      optBool(args, "can_manage_webhooks"),
					CanManageEnvironments:  optBool(args, "can_manage_environments"),
					CanPromoteEnvironments: optBool(args, "can_promote_environments"),
					EnvironmentsAccess:     optString(args, "environments_access"),
				})
			}),
		},
		{
			Name:        "datocms_roles_duplicate",
			Description: "Duplicate a role with all its permissions.",
			Schema:      idSchema,
			Handler: f.Custom(handler.Descriptor{
				Domain: domain, Operation: "duplicate", Schema: idSchema,
				EntityLabel: "role", IDParam: "role_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (*handler.Envelope, error) {
				role, err := client.Roles().Duplicate(ctx, args.String("role_id"))
				if err != nil {
					return nil, err
				}

				return handler.SuccessMessage(role, "role '"+args.String("role_id")+"' duplicated"), nil
			}),
		},
		{
			Name:        "datocms_roles_delete",
			Description: "Delete a role. Fails while collaborators or API tokens still use it.",
			Schema:      idSchema,
			Destructive: true,
			Handler: f.Delete(handler.Descriptor{
				Domain: domain, Operation: "delete", Schema: idSchema,
				EntityLabel: "role", IDParam: "role_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.Roles().Delete(ctx, args.String("role_id"))
			}),
		},
	}
}
