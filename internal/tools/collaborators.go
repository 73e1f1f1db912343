package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/datocms-community/datocms-mcp/internal/handler"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// collaboratorTools covers project collaborators and pending invitations.
// All collaborator tools use the collaborators client kind, which normalizes
// the inconsistent user payloads the CMA returns.
func collaboratorTools(f *handler.Factory) []Tool {
	const (
		usersDomain       = "collaborators.users"
		invitationsDomain = "collaborators.invitations"
	)

	userIDSchema := withAuth(map[string]*jsonschema.Schema{
		"user_id": stringProp("ID of the collaborator"),
	}, "user_id")

	userUpdateSchema := withAuth(map[string]*jsonschema.Schema{
		"user_id":    stringProp("ID of the collaborator"),
		"first_name": stringProp("New first name"),
		"last_name":  stringProp("New last name"),
		"is_active":  boolProp("Whether the collaborator can sign in"),
		"role_id":    stringProp("ID of the role to assign"),
	}, "user_id")

	inviteSchema := withAuth(map[string]*jsonschema.Schema{
		"email":   stringProp("Email address to invite"),
		"role_id": stringProp("ID of the role the collaborator will hold"),
	}, "email", "role_id")

	invitationIDSchema := withAuth(map[string]*jsonschema.Schema{
		"invitation_id": stringProp("ID of the pending invitation"),
	}, "invitation_id")

	return []Tool{
		{
			Name:        "datocms_collaborators_list",
			Description: "List the project's collaborators.",
			Schema:      withAuth(nil),
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.List(handler.Descriptor{
				Domain: usersDomain, Operation: "list", Schema: withAuth(nil),
				EntityLabel: "collaborator", ClientKind: handler.ClientCollaborators,
			}, func(ctx context.Context, client dato.Client, _ handler.Args) (any, error) {
				return client.Users().List(ctx)
			}, nil),
		},
		{
			Name:        "datocms_collaborators_get",
			Description: "Retrieve a collaborator by ID.",
			Schema:      userIDSchema,
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.Retrieve(handler.Descriptor{
				Domain: usersDomain, Operation: "get", Schema: userIDSchema,
				EntityLabel: "collaborator", IDParam: "user_id", ClientKind: handler.ClientCollaborators,
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				user, err := client.Users().Get(ctx, args.String("user_id"))
				if err != nil {
					if dato.IsNotFound(err) {
						return nil, nil
					}

					return nil, err
				}

				return user, nil
			}),
		},
		{
			Name:        "datocms_collaborators_update",
			Description: "Update a collaborator's name, role, or active state.",
			Schema:      userUpdateSchema,
			Idempotent:  true,
			Handler: f.Update(handler.Descriptor{
				Domain: usersDomain, Operation: "update", Schema: userUpdateSchema,
				EntityLabel: "collaborator", IDParam: "user_id", ClientKind: handler.ClientCollaborators,
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.Users().Update(ctx, args.String("user_id"), &dato.UserUpdateRequest{
					FirstName: optString(args, "first_name"),
					LastName:  optString(args, "last_name"),
					IsActive:  optBool(args, "is_active"),
					RoleID:    optString(args, "role_id"),
				})
			}),
		},
		{
			Name:        "datocms_collaborators_delete",
			Description: "Remove a collaborator from the project.",
			Schema:      userIDSchema,
			Destructive: true,
			Handler: f.Delete(handler.Descriptor{
				Domain: usersDomain, Operation: "delete", Schema: userIDSchema,
				EntityLabel: "collaborator", IDParam: "user_id", ClientKind: handler.ClientCollaborators,
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.Users().Delete(ctx, args.String("user_id"))
			}),
		},
		{
			Name:        "datocms_invitations_list",
			Description: "List pending collaborator invitations.",
			Schema:      withAuth(nil),
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.List(handler.Descriptor{
				Domain: invitationsDomain, Operation: "list", Schema: withAuth(nil),
				EntityLabel: "invitation", ClientKind: handler.ClientCollaborators,
			}, func(ctx context.Context, client dato.Client, _ handler.Args) (any, error) {
				return client.SiteInvitations().List(ctx)
			}, nil),
		},
		{
			Name:        "datocms_invitations_get",
			Description: "Retrieve a pending invitation by ID.",
			Schema:      invitationIDSchema,
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.Retrieve(handler.Descriptor{
				Domain: invitationsDomain, Operation: "get", Schema: invitationIDSchema,
				EntityLabel: "invitation", IDParam: "invitation_id", ClientKind: handler.ClientCollaborators,
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.SiteInvitations().Get(ctx, args.String("invitation_id"))
			}),
		},
		{
			Name:        "datocms_invitations_create",
			Description: "Invite a collaborator by email with a given role.",
			Schema:      inviteSchema,
			Handler: f.Create(handler.Descriptor{
				Domain: invitationsDomain, Operation: "create", Schema: inviteSchema,
				EntityLabel: "invitation", ClientKind: handler.ClientCollaborators,
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.SiteInvitations().Create(ctx, &dato.SiteInvitationCreateRequest{
					Email:  args.String("email"),
					RoleID: args.String("role_id"),
				})
			}),
		},
		{
			Name:        "datocms_invitations_resend",
			Description: "Resend a pending invitation email.",
			Schema:      invitationIDSchema,
			Idempotent:  true,
			Handler: f.Custom(handler.Descriptor{
				Domain: invitationsDomain, Operation: "resend", Schema: invitationIDSchema,
				EntityLabel: "invitation", IDParam: "invitation_id", ClientKind: handler.ClientCollaborators,
			}, func(ctx context.Context, client dato.Client, args handler.Args) (*handler.Envelope, error) {
				if err := client.SiteInvitations().Resend(ctx, args.String("invitation_id")); err != nil {
					return nil, err
				}

				return handler.SuccessMessage(nil,
					"invitation '"+args.String("invitation_id")+"' resent"), nil
			}),
		},
		{
			Name:        "datocms_invitations_delete",
			Description: "Revoke a pending invitation.",
			Schema:      invitationIDSchema,
			Destructive: true,
			Handler: f.Delete(handler.Descriptor{
				Domain: invitationsDomain, Operation: "delete", Schema: invitationIDSchema,
				EntityLabel: "invitation", IDParam: "invitation_id", ClientKind: handler.ClientCollaborators,
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.SiteInvitations().Delete(ctx, args.String("invitation_id"))
			}),
		},
	}
}
