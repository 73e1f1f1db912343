package tools

import (
	"context"
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/datocms-community/datocms-mcp/internal/handler"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// webhookTools covers webhooks, their delivery log, and build triggers.
func webhookTools(f *handler.Factory) []Tool {
	var tools []Tool

	tools = append(tools, webhookCrudTools(f)...)
	tools = append(tools, webhookCallTools(f)...)
	tools = append(tools, buildTriggerTools(f)...)

	return tools
}

func webhookCrudTools(f *handler.Factory) []Tool {
	const domain = "webhooks"

	idSchema := withAuth(map[string]*jsonschema.Schema{
		"webhook_id": stringProp("ID of the webhook"),
	}, "webhook_id")

	eventSchema := &jsonschema.Schema{
		Type:        "object",
		Description: "Entity event subscription",
		Properties: map[string]*jsonschema.Schema{
			"entity_type": stringProp("Entity to watch, e.g. \"item\", \"item_type\", \"upload\""),
			"event_types": arrayProp("Events to fire on, e.g. \"create\", \"update\", \"publish\"",
				stringProp("Event type")),
			"filters": objectProp("Optional entity filters"),
		},
		Required: []string{"entity_type", "event_types"},
	}

	createSchema := withAuth(map[string]*jsonschema.Schema{
		"name":           stringProp("Name of the webhook"),
		"url":            stringProp("URL the webhook delivers to"),
		"enabled":        boolProp("Whether the webhook fires; defaults to false"),
		"headers":        objectProp("Extra HTTP headers to send with each delivery"),
		"events":         arrayProp("Entity events that trigger the webhook", eventSchema),
		"custom_payload": stringProp("Custom payload template; omit to send the default payload"),
		"auto_retry":     boolProp("Whether failed deliveries are retried automatically"),
	}, "name", "url", "events")

	updateSchema := withAuth(map[string]*jsonschema.Schema{
		"webhook_id": stringProp("ID of the webhook"),
		"name":       stringProp("New webhook name"),
		"url":        stringProp("New delivery URL"),
		"enabled":    boolProp("Whether the webhook fires"),
		"headers":    objectProp("Extra HTTP headers to send with each delivery"),
		"events":     arrayProp("Entity events that trigger the webhook", eventSchema),
		"auto_retry": boolProp("Whether failed deliveries are retried automatically"),
	}, "webhook_id")

	return []Tool{
		{
			Name:        "datocms_webhooks_list",
			Description: "List the project's webhooks.",
			Schema:      withAuth(nil),
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.List(handler.Descriptor{
				Domain: domain, Operation: "list", Schema: withAuth(nil), EntityLabel: "webhook",
			}, func(ctx context.Context, client dato.Client, _ handler.Args) (any, error) {
				return client.Webhooks().List(ctx)
			}, nil),
		},
		{
			Name:        "datocms_webhooks_get",
			Description: "Retrieve a webhook by ID.",
			Schema:      idSchema,
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.Retrieve(handler.Descriptor{
				Domain: domain, Operation: "get", Schema: idSchema,
				EntityLabel: "webhook", IDParam: "webhook_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				webhook, err := client.Webhooks().Get(ctx, args.String("webhook_id"))
				if err != nil {
					if dato.IsNotFound(err) {
						return nil, nil
					}

					return nil, err
				}

				return webhook, nil
			}),
		},
		{
			Name:        "datocms_webhooks_create",
			Description: "Create a webhook subscribed to entity events.",
			Schema:      createSchema,
			Handler: f.Create(handler.Descriptor{
				Domain: domain, Operation: "create", Schema: createSchema, EntityLabel: "webhook",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				events, err := webhookEventsFromArgs(args)
				if err != nil {
					return nil, err
				}

				return client.Webhooks().Create(ctx, &dato.WebhookCreateRequest{
					Name:          args.String("name"),
					URL:           args.String("url"),
					Enabled:       args.Bool("enabled"),
					Headers:       headerMapFromArgs(args),
					Events:        events,
					CustomPayload: args.String("custom_payload"),
					AutoRetry:     args.Bool("auto_retry"),
				})
			}),
		},
		{
			Name:        "datocms_webhooks_update",
			Description: "Update a webhook. Only the supplied attributes change.",
			Schema:      updateSchema,
			Idempotent:  true,
			Handler: f.Update(handler.Descriptor{
				Domain: domain, Operation: "update", Schema: updateSchema,
				EntityLabel: "webhook", IDParam: "webhook_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				events, err := webhookEventsFromArgs(args)
				if err != nil {
					return nil, err
				}

				return client.Webhooks().Update(ctx, args.String("webhook_id"), &dato.WebhookUpdateRequest{
					Name:      optString(args, "name"),
					URL:       optString(args, "url"),
					Enabled:   optBool(args, "enabled"),
					Headers:   headerMapFromArgs(args),
					Events:    events,
					AutoRetry: optBool(args, "auto_retry"),
				})
			}),
		},
		{
			Name:        "datocms_webhooks_delete",
			Description: "Delete a webhook. Its delivery log is removed with it.",
			Schema:      idSchema,
			Destructive: true,
			Handler: f.Delete(handler.Descriptor{
				Domain: domain, Operation: "delete", Schema: idSchema,
				EntityLabel: "webhook", IDParam: "webhook_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.Webhooks().Delete(ctx, args.String("webhook_id"))
			}),
		},
	}
}

func webhookCallTools(f *handler.Factory) []Tool {
	const domain = "webhooks.calls"

	listSchema := withAuth(pagingProps())

	resendSchema := withAuth(map[string]*jsonschema.Schema{
		"call_id": stringProp("ID of the webhook delivery attempt"),
	}, "call_id")

	return []Tool{
		{
			Name:        "datocms_webhook_calls_list",
			Description: "List recent webhook delivery attempts with their response status. Results are paginated.",
			Schema:      listSchema,
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.List(handler.Descriptor{
				Domain: domain, Operation: "list", Schema: listSchema, EntityLabel: "webhook call",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.WebhookCalls().List(ctx, queryFromArgs(args))
			}, webhookCallPageShaper),
		},
		{
			Name:        "datocms_webhook_calls_resend",
			Description: "Re-deliver a webhook call's original payload.",
			Schema:      resendSchema,
			Handler: f.Custom(handler.Descriptor{
				Domain: domain, Operation: "resend", Schema: resendSchema,
				EntityLabel: "webhook call", IDParam: "call_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (*handler.Envelope, error) {
				if err := client.WebhookCalls().Resend(ctx, args.String("call_id")); err != nil {
					return nil, err
				}

				return handler.SuccessMessage(nil,
					"webhook call '"+args.String("call_id")+"' queued for re-delivery"), nil
			}),
		},
	}
}

func buildTriggerTools(f *handler.Factory) []Tool {
	const domain = "webhooks.build_triggers"

	idSchema := withAuth(map[string]*jsonschema.Schema{
		"build_trigger_id": stringProp("ID of the build trigger"),
	}, "build_trigger_id")

	createSchema := withAuth(map[string]*jsonschema.Schema{
		"name":             stringProp("Name of the build trigger"),
		"adapter":          stringProp("Deployment adapter, e.g. \"custom\", \"netlify\", \"vercel\""),
		"adapter_settings": objectProp("Adapter-specific settings, e.g. the deploy hook URL"),
		"frontend_url":     stringProp("URL of the deployed frontend"),
		"indexing_enabled": boolProp("Whether site search indexing runs after builds"),
	}, "name", "adapter")

	return []Tool{
		{
			Name:        "datocms_build_triggers_list",
			Description: "List the project's build triggers.",
			Schema:      withAuth(nil),
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.List(handler.Descriptor{
				Domain: domain, Operation: "list", Schema: withAuth(nil), EntityLabel: "build trigger",
			}, func(ctx context.Context, client dato.Client, _ handler.Args) (any, error) {
				return client.BuildTriggers().List(ctx)
			}, nil),
		},
		{
			Name:        "datocms_build_triggers_create",
			Description: "Create a build trigger for a deployment pipeline.",
			Schema:      createSchema,
			Handler: f.Create(handler.Descriptor{
				Domain: domain, Operation: "create", Schema: createSchema, EntityLabel: "build trigger",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.BuildTriggers().Create(ctx, &dato.BuildTriggerCreateRequest{
					Name:            args.String("name"),
					Adapter:         args.String("adapter"),
					AdapterSettings: args.StringMap("adapter_settings"),
					FrontendURL:     args.String("frontend_url"),
					IndexingEnabled: args.Bool("indexing_enabled"),
				})
			}),
		},
		{
			Name:        "datocms_build_triggers_trigger",
			Description: "Fire a build trigger, starting its deployment pipeline.",
			Schema:      idSchema,
			Handler: f.Custom(handler.Descriptor{
				Domain: domain, Operation: "trigger", Schema: idSchema,
				EntityLabel: "build trigger", IDParam: "build_trigger_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (*handler.Envelope, error) {
				if err := client.BuildTriggers().Trigger(ctx, args.String("build_trigger_id")); err != nil {
					return nil, err
				}

				return handler.SuccessMessage(nil,
					"build trigger '"+args.String("build_trigger_id")+"' fired"), nil
			}),
		},
		{
			Name:        "datocms_build_triggers_delete",
			Description: "Delete a build trigger.",
			Schema:      idSchema,
			Destructive: true,
			Handler: f.Delete(handler.Descriptor{
				Domain: domain, Operation: "delete", Schema: idSchema,
				EntityLabel: "build trigger", IDParam: "build_trigger_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.BuildTriggers().Delete(ctx, args.String("build_trigger_id"))
			}),
		},
	}
}

func webhookCallPageShaper(result any, args handler.Args) *handler.Envelope {
	page, ok := result.(*dato.WebhookCallPage)
	if !ok {
		return handler.Success(result)
	}

	return handler.SuccessPage(page.Data, len(page.Data), page.TotalCount, queryFromArgs(args))
}

// webhookEventsFromArgs decodes the events argument into typed event
// subscriptions. A round-trip through JSON keeps the conversion in one
// place.
func webhookEventsFromArgs(args handler.Args) ([]dato.WebhookEvent, error) {
	raw, ok := args["events"]
	if !ok {
		return nil, nil
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}

	var events []dato.WebhookEvent
	if err := json.Unmarshal(encoded, &events); err != nil {
		return nil, err
	}

	return events, nil
}

func headerMapFromArgs(args handler.Args) map[string]string {
	return stringMapFromArgs(args, "headers")
}
