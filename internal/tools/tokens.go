package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/datocms-community/datocms-mcp/internal/handler"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// accessTokenTools covers CMA API token management. Token values are only
// ever present in create and rotate responses; the CMA never returns them
// again.
func accessTokenTools(f *handler.Factory) []Tool {
	const domain = "access_tokens"

	idSchema := withAuth(map[string]*jsonschema.Schema{
		"token_id": stringProp("ID of the API token"),
	}, "token_id")

	createSchema := withAuth(map[string]*jsonschema.Schema{
		"name":                   stringProp("Name of the API token"),
		"role_id":                stringProp("ID of the role the token assumes"),
		"can_access_cda":         boolProp("Whether the token can read published content"),
		"can_access_cda_preview": boolProp("Whether the token can read draft content"),
		"can_access_cma":         boolProp("Whether the token can use the management API"),
	}, "name", "role_id")

	updateSchema := withAuth(map[string]*jsonschema.Schema{
		"token_id":               stringProp("ID of the API token"),
		"name":                   stringProp("New token name"),
		"role_id":                stringProp("ID of the role the token assumes"),
		"can_access_cda":         boolProp("Whether the token can read published content"),
		"can_access_cda_preview": boolProp("Whether the token can read draft content"),
		"can_access_cma":         boolProp("Whether the token can use the management API"),
	}, "token_id")

	return []Tool{
		{
			Name:        "datocms_access_tokens_list",
			Description: "List the project's API tokens. Token values are never included.",
			Schema:      withAuth(nil),
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.List(handler.Descriptor{
				Domain: domain, Operation: "list", Schema: withAuth(nil), EntityLabel: "API token",
			}, func(ctx context.Context, client dato.Client, _ handler.Args) (any, error) {
				return client.AccessTokens().List(ctx)
			}, nil),
		},
		{
			Name:        "datocms_access_tokens_get",
			Description: "Retrieve an API token's metadata by ID.",
			Schema:      idSchema,
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.Retrieve(handler.Descriptor{
				Domain: domain, Operation: "get", Schema: idSchema,
				EntityLabel: "API token", IDParam: "token_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				token, err := client.AccessTokens().Get(ctx, args.String("token_id"))
				if err != nil {
					if dato.IsNotFound(err) {
						return nil, nil
					}

					return nil, err
				}

				return token, nil
			}),
		},
		{
			Name:        "datocms_access_tokens_create",
			Description: "Create an API token bound to a role. The response is the only place the token value appears; store it immediately.",
			Schema:      createSchema,
			Handler: f.Create(handler.Descriptor{
				Domain: domain, Operation: "create", Schema: createSchema, EntityLabel: "API token",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.AccessTokens().Create(ctx, &dato.AccessTokenCreateRequest{
					Name:                args.String("name"),
					RoleID:              args.String("role_id"),
					CanAccessCDA:        args.Bool("can_access_cda"),
					CanAccessCDAPreview: args.Bool("can_access_cda_preview"),
					CanAccessCMA:        args.Bool("can_access_cma"),
				})
			}),
		},
		{
			Name:        "datocms_access_tokens_update",
			Description: "Update an API token's name, role, or API access flags.",
			Schema:      updateSchema,
			Idempotent:  true,
			Handler: f.Update(handler.Descriptor{
				Domain: domain, Operation: "update", Schema: updateSchema,
				EntityLabel: "API token", IDParam: "token_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.AccessTokens().Update(ctx, args.String("token_id"), &dato.AccessTokenUpdateRequest{
					Name:                optString(args, "name"),
					RoleID:              optString(args, "role_id"),
					CanAccessCDA:        optBool(args, "can_access_cda"),
					CanAccessCDAPreview: optBool(args, "can_access_cda_preview"),
					CanAccessCMA:        optBool(args, "can_access_cma"),
				})
			}),
		},
		{
			Name:        "datocms_access_tokens_rotate",
			Description: "Regenerate an API token's value. The old value stops working immediately; the response carries the new value.",
			Schema:      idSchema,
			Destructive: true,
			Handler: f.Custom(handler.Descriptor{
				Domain: domain, Operation: "rotate", Schema: idSchema,
				EntityLabel: "API token", IDParam: "token_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (*handler.Envelope, error) {
				token, err := client.AccessTokens().Regenerate(ctx, args.String("token_id"))
				if err != nil {
					return nil, err
				}

				// Covers self-rotation: if the caller rotated the token it
				// is authenticating with, its cached clients are now stale.
				f.Clients().Invalidate(args.String("api_token"))

				return handler.SuccessMessage(token,
					"API token '"+args.String("token_id")+"' rotated; the previous value is no longer valid"), nil
			}),
		},
		{
			Name:        "datocms_access_tokens_delete",
			Description: "Delete an API token. Requests using its value start failing immediately.",
			Schema:      idSchema,
			Destructive: true,
			Handler: f.Delete(handler.Descriptor{
				Domain: domain, Operation: "delete", Schema: idSchema,
				EntityLabel: "API token", IDParam: "token_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.AccessTokens().Delete(ctx, args.String("token_id"))
			}),
		},
	}
}
