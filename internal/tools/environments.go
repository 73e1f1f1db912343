package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/datocms-community/datocms-mcp/internal/handler"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// environmentTools covers sandbox environments, maintenance mode, and the
// job-results endpoint used to poll slow environment operations.
func environmentTools(f *handler.Factory) []Tool {
	var tools []Tool

	tools = append(tools, sandboxTools(f)...)
	tools = append(tools, maintenanceModeTools(f)...)
	tools = append(tools, jobResultTools(f)...)

	return tools
}

func sandboxTools(f *handler.Factory) []Tool {
	const domain = "environments"

	idSchema := withAuth(map[string]*jsonschema.Schema{
		"environment_id": stringProp("ID of the environment, e.g. \"main\" or \"feature-branch\""),
	}, "environment_id")

	forkSchema := withAuth(map[string]*jsonschema.Schema{
		"environment_id": stringProp("ID of the environment to fork"),
		"new_id":         stringProp("ID the new sandbox will take"),
		"fast":           boolProp("Fork without copying records; much faster but the sandbox starts empty"),
	}, "environment_id", "new_id")

	renameSchema := withAuth(map[string]*jsonschema.Schema{
		"environment_id": stringProp("Current ID of the environment"),
		"new_id":         stringProp("New ID for the environment"),
	}, "environment_id", "new_id")

	return []Tool{
		{
			Name:        "datocms_environments_list",
			Description: "List the project's environments, including the primary one.",
			Schema:      withAuth(nil),
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.List(handler.Descriptor{
				Domain: domain, Operation: "list", Schema: withAuth(nil), EntityLabel: "environment",
			}, func(ctx context.Context, client dato.Client, _ handler.Args) (any, error) {
				return client.Environments().List(ctx)
			}, nil),
		},
		{
			Name:        "datocms_environments_get",
			Description: "Retrieve an environment and its lifecycle status.",
			Schema:      idSchema,
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.Retrieve(handler.Descriptor{
				Domain: domain, Operation: "get", Schema: idSchema,
				EntityLabel: "environment", IDParam: "environment_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				environment, err := client.Environments().Get(ctx, args.String("environment_id"))
				if err != nil {
					if dato.IsNotFound(err) {
						return nil, nil
					}

					return nil, err
				}

				return environment, nil
			}),
		},
		{
			Name:        "datocms_environments_fork",
			Description: "Fork an environment into a new sandbox. The fork runs asynchronously; poll the environment status until it reaches \"ready\".",
			Schema:      forkSchema,
			Handler: f.Custom(handler.Descriptor{
				Domain: domain, Operation: "fork", Schema: forkSchema,
				EntityLabel: "environment", IDParam: "environment_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (*handler.Envelope, error) {
				environment, err := client.Environments().Fork(ctx, args.String("environment_id"), &dato.EnvironmentForkRequest{
					ID:   args.String("new_id"),
					Fast: args.Bool("fast"),
				})
				if err != nil {
					return nil, err
				}

				return handler.SuccessMessage(environment,
					"environment '"+args.String("new_id")+"' forked from '"+args.String("environment_id")+"'"), nil
			}),
		},
		{
			Name:        "datocms_environments_promote",
			Description: "Promote a sandbox environment to primary. The previous primary becomes a sandbox. Fails with invalid_operation while the sandbox is not ready.",
			Schema:      idSchema,
			Handler: f.Custom(handler.Descriptor{
				Domain: domain, Operation: "promote", Schema: idSchema,
				EntityLabel: "environment", IDParam: "environment_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (*handler.Envelope, error) {
				environment, err := client.Environments().Promote(ctx, args.String("environment_id"))
				if err != nil {
					return nil, err
				}

				return handler.SuccessMessage(environment,
					"environment '"+args.String("environment_id")+"' promoted to primary"), nil
			}),
		},
		{
			Name:        "datocms_environments_rename",
			Description: "Rename an environment. Clients pinned to the old ID must be reconfigured.",
			Schema:      renameSchema,
			Handler: f.Custom(handler.Descriptor{
				Domain: domain, Operation: "rename", Schema: renameSchema,
				EntityLabel: "environment", IDParam: "environment_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (*handler.Envelope, error) {
				environment, err := client.Environments().Rename(ctx,
					args.String("environment_id"), args.String("new_id"))
				if err != nil {
					return nil, err
				}

				return handler.SuccessMessage(environment,
					"environment '"+args.String("environment_id")+"' renamed to '"+args.String("new_id")+"'"), nil
			}),
		},
		{
			Name:        "datocms_environments_delete",
			Description: "Delete a sandbox environment and everything in it. The primary environment cannot be deleted.",
			Schema:      idSchema,
			Destructive: true,
			Handler: f.Delete(handler.Descriptor{
				Domain: domain, Operation: "delete", Schema: idSchema,
				EntityLabel: "environment", IDParam: "environment_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.Environments().Delete(ctx, args.String("environment_id"))
			}),
		},
	}
}

func maintenanceModeTools(f *handler.Factory) []Tool {
	const domain = "environments.maintenance"

	activateSchema := withAuth(map[string]*jsonschema.Schema{
		"force": boolProp("Activate even while other collaborators are editing content"),
	})

	return []Tool{
		{
			Name:        "datocms_maintenance_mode_get",
			Description: "Report whether the project is in maintenance mode.",
			Schema:      withAuth(nil),
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.Custom(handler.Descriptor{
				Domain: domain, Operation: "get", Schema: withAuth(nil), EntityLabel: "maintenance mode",
			}, func(ctx context.Context, client dato.Client, _ handler.Args) (*handler.Envelope, error) {
				mode, err := client.MaintenanceMode().Get(ctx)
				if err != nil {
					return nil, err
				}

				return handler.Success(mode), nil
			}),
		},
		{
			Name:        "datocms_maintenance_mode_activate",
			Description: "Put the project in maintenance mode, blocking content edits. Fails with invalid_operation while collaborators are editing unless force is set.",
			Schema:      activateSchema,
			Idempotent:  true,
			Handler: f.Custom(handler.Descriptor{
				Domain: domain, Operation: "activate", Schema: activateSchema, EntityLabel: "maintenance mode",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (*handler.Envelope, error) {
				mode, err := client.MaintenanceMode().Activate(ctx, args.Bool("force"))
				if err != nil {
					return nil, err
				}

				return handler.SuccessMessage(mode, "maintenance mode activated"), nil
			}),
		},
		{
			Name:        "datocms_maintenance_mode_deactivate",
			Description: "Take the project out of maintenance mode.",
			Schema:      withAuth(nil),
			Idempotent:  true,
			Handler: f.Custom(handler.Descriptor{
				Domain: domain, Operation: "deactivate", Schema: withAuth(nil), EntityLabel: "maintenance mode",
			}, func(ctx context.Context, client dato.Client, _ handler.Args) (*handler.Envelope, error) {
				mode, err := client.MaintenanceMode().Deactivate(ctx)
				if err != nil {
					return nil, err
				}

				return handler.SuccessMessage(mode, "maintenance mode deactivated"), nil
			}),
		},
	}
}

func jobResultTools(f *handler.Factory) []Tool {
	const domain = "environments.jobs"

	idSchema := withAuth(map[string]*jsonschema.Schema{
		"job_id": stringProp("ID of the asynchronous job"),
	}, "job_id")

	return []Tool{
		{
			Name:        "datocms_job_results_get",
			Description: "Retrieve the result of an asynchronous job, such as a bulk publish or an environment fork. Returns not found while the job is still running.",
			Schema:      idSchema,
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.Retrieve(handler.Descriptor{
				Domain: domain, Operation: "get", Schema: idSchema,
				EntityLabel: "job result", IDParam: "job_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				result, err := client.Jobs().Get(ctx, args.String("job_id"))
				if err != nil {
					if dato.IsNotFound(err) {
						return nil, nil
					}

					return nil, err
				}

				return result, nil
			}),
		},
	}
}
