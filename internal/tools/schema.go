package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/datocms-community/datocms-mcp/internal/handler"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// schemaTools covers the project schema: models, their fields, and
// fieldsets.
func schemaTools(f *handler.Factory) []Tool {
	var tools []Tool

	tools = append(tools, itemTypeTools(f)...)
	tools = append(tools, fieldTools(f)...)
	tools = append(tools, fieldsetTools(f)...)

	return tools
}

func itemTypeTools(f *handler.Factory) []Tool {
	const domain = "schema.item_types"

	listSchema := withAuth(nil)
	idSchema := withAuth(map[string]*jsonschema.Schema{
		"item_type_id": stringProp("ID of the model"),
	}, "item_type_id")

	createSchema := withAuth(map[string]*jsonschema.Schema{
		"name":                 stringProp("Human-readable model name"),
		"api_key":              stringProp("Machine-readable model identifier (snake_case)"),
		"singleton":            boolProp("Whether the model holds a single record"),
		"sortable":             boolProp("Whether records can be manually sorted"),
		"modular_block":        boolProp("Whether the model is a modular content block"),
		"tree":                 boolProp("Whether records form a tree hierarchy"),
		"draft_mode_active":    boolProp("Whether draft/published mode is enabled"),
		"all_locales_required": boolProp("Whether every locale must be filled in"),
		"hint":                 stringProp("Editor-facing hint describing the model"),
	}, "name", "api_key")

	updateSchema := withAuth(map[string]*jsonschema.Schema{
		"item_type_id":      stringProp("ID of the model"),
		"name":              stringProp("New model name"),
		"api_key":           stringProp("New machine-readable identifier"),
		"sortable":          boolProp("Whether records can be manually sorted"),
		"tree":              boolProp("Whether records form a tree hierarchy"),
		"draft_mode_active": boolProp("Whether draft/published mode is enabled"),
		"hint":              stringProp("Editor-facing hint describing the model"),
	}, "item_type_id")

	return []Tool{
		{
			Name:        "datocms_schema_item_types_list",
			Description: "List every model defined in the project schema.",
			Schema:      listSchema,
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.List(handler.Descriptor{
				Domain: domain, Operation: "list", Schema: listSchema, EntityLabel: "model",
			}, func(ctx context.Context, client dato.Client, _ handler.Args) (any, error) {
				return client.ItemTypes().List(ctx)
			}, nil),
		},
		{
			Name:        "datocms_schema_item_types_get",
			Description: "Retrieve a model by ID.",
			Schema:      idSchema,
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.Retrieve(handler.Descriptor{
				Domain: domain, Operation: "get", Schema: idSchema,
				EntityLabel: "model", IDParam: "item_type_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				itemType, err := client.ItemTypes().Get(ctx, args.String("item_type_id"))
				if err != nil {
					if dato.IsNotFound(err) {
						return nil, nil
					}

					return nil, err
				}

				return itemType, nil
			}),
		},
		{
			Name:        "datocms_schema_item_types_create",
			Description: "Create a model.",
			Schema:      createSchema,
			Handler: f.Create(handler.Descriptor{
				Domain: domain, Operation: "create", Schema: createSchema, EntityLabel: "model",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.ItemTypes().Create(ctx, &dato.ItemTypeCreateRequest{
					Name:               args.String("name"),
					APIKey:             args.String("api_key"),
					Singleton:          args.Bool("singleton"),
					Sortable:           args.Bool("sortable"),
					ModularBlock:       args.Bool("modular_block"),
					Tree:               args.Bool("tree"),
					DraftModeActive:    args.Bool("draft_mode_active"),
					AllLocalesRequired: args.Bool("all_locales_required"),
					Hint:               args.String("hint"),
				})
			}),
		},
		{
			Name:        "datocms_schema_item_types_update",
			Description: "Update a model. Only the supplied attributes change.",
			Schema:      updateSchema,
			Idempotent:  true,
			Handler: f.Update(handler.Descriptor{
				Domain: domain, Operation: "update", Schema: updateSchema,
				EntityLabel: "model", IDParam: "item_type_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.ItemTypes().Update(ctx, args.String("item_type_id"), &dato.ItemTypeUpdateRequest{
					Name:            optString(args, "name"),
					APIKey:          optString(args, "api_key"),
					Sortable:        optBool(args, "sortable"),
					Tree:            optBool(args, "tree"),
					DraftModeActive: optBool(args, "draft_mode_active"),
					Hint:            optString(args, "hint"),
				})
			}),
		},
		{
			Name:        "datocms_schema_item_types_duplicate",
			Description: "Duplicate a model, including its fields and fieldsets.",
			Schema:      idSchema,
			Handler: f.Custom(handler.Descriptor{
				Domain: domain, Operation: "duplicate", Schema: idSchema,
				EntityLabel: "model", IDParam: "item_type_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (*handler.Envelope, error) {
				itemType, err := client.ItemTypes().Duplicate(ctx, args.String("item_type_id"))
				if err != nil {
					return nil, err
				}

				return handler.SuccessMessage(itemType, "model '"+args.String("item_type_id")+"' duplicated"), nil
			}),
		},
		{
			Name:        "datocms_schema_item_types_delete",
			Description: "Delete a model and every record of it. Irreversible.",
			Schema:      idSchema,
			Destructive: true,
			Handler: f.Delete(handler.Descriptor{
				Domain: domain, Operation: "delete", Schema: idSchema,
				EntityLabel: "model", IDParam: "item_type_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.ItemTypes().Delete(ctx, args.String("item_type_id"))
			}),
		},
	}
}

func fieldTools(f *handler.Factory) []Tool {
	const domain = "schema.fields"

	listSchema := withAuth(map[string]*jsonschema.Schema{
		"item_type_id": stringProp("ID of the model whose fields to list"),
	}, "item_type_id")

	idSchema := withAuth(map[string]*jsonschema.Schema{
		"field_id": stringProp("ID of the field"),
	}, "field_id")

	createSchema := withAuth(map[string]*jsonschema.Schema{
		"item_type_id": stringProp("ID of the model to add the field to"),
		"label":        stringProp("Human-readable field label"),
		"api_key":      stringProp("Machine-readable field identifier (snake_case)"),
		"field_type": enumProp("Field type",
			"string", "text", "boolean", "integer", "float", "date", "date_time",
			"color", "json", "lat_lon", "seo", "slug", "file", "gallery", "link",
			"links", "video", "structured_text", "rich_text"),
		"localized":     boolProp("Whether the field holds one value per locale"),
		"hint":          stringProp("Editor-facing hint"),
		"validators":    objectProp("Validator configuration, e.g. {\"required\": {}}"),
		"appearance":    objectProp("Editor appearance configuration"),
		"default_value": &jsonschema.Schema{Description: "Default value for new records"},
	}, "item_type_id", "label", "api_key", "field_type")

	updateSchema := withAuth(map[string]*jsonschema.Schema{
		"field_id":   stringProp("ID of the field"),
		"label":      stringProp("New field label"),
		"api_key":    stringProp("New machine-readable identifier"),
		"localized":  boolProp("Whether the field holds one value per locale"),
		"hint":       stringProp("Editor-facing hint"),
		"position":   intProp("Ordering position within the model"),
		"validators": objectProp("Validator configuration"),
		"appearance": objectProp("Editor appearance configuration"),
	}, "field_id")

	return []Tool{
		{
			Name:        "datocms_schema_fields_list",
			Description: "List the fields of a model.",
			Schema:      listSchema,
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.List(handler.Descriptor{
				Domain: domain, Operation: "list", Schema: listSchema, EntityLabel: "field",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.Fields().List(ctx, args.String("item_type_id"))
			}, nil),
		},
		{
			Name:        "datocms_schema_fields_get",
			Description: "Retrieve a field by ID.",
			Schema:      idSchema,
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.Retrieve(handler.Descriptor{
				Domain: domain, Operation: "get", Schema: idSchema,
				EntityLabel: "field", IDParam: "field_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				field, err := client.Fields().Get(ctx, args.String("field_id"))
				if err != nil {
					if dato.IsNotFound(err) {
						return nil, nil
					}

					return nil, err
				}

				return field, nil
			}),
		},
		{
			Name:        "datocms_schema_fields_create",
			Description: "Add a field to a model.",
			Schema:      createSchema,
			Handler: f.Create(handler.Descriptor{
				Domain: domain, Operation: "create", Schema: createSchema, EntityLabel: "field",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.Fields().Create(ctx, args.String("item_type_id"), &dato.FieldCreateRequest{
					Label:        args.String("label"),
					APIKey:       args.String("api_key"),
					FieldType:    args.String("field_type"),
					Localized:    args.Bool("localized"),
					Hint:         args.String("hint"),
					Validators:   args.StringMap("validators"),
					Appearance:   args.StringMap("appearance"),
					DefaultValue: args["default_value"],
				})
			}),
		},
		{
			Name:        "datocms_schema_fields_update",
			Description: "Update a field. Only the supplied attributes change.",
			Schema:      updateSchema,
			Idempotent:  true,
			Handler: f.Update(handler.Descriptor{
				Domain: domain, Operation: "update", Schema: updateSchema,
				EntityLabel: "field", IDParam: "field_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.Fields().Update(ctx, args.String("field_id"), &dato.FieldUpdateRequest{
					Label:      optString(args, "label"),
					APIKey:     optString(args, "api_key"),
					Localized:  optBool(args, "localized"),
					Hint:       optString(args, "hint"),
					Position:   optInt(args, "position"),
					Validators: args.StringMap("validators"),
					Appearance: args.StringMap("appearance"),
				})
			}),
		},
		{
			Name:        "datocms_schema_fields_delete",
			Description: "Delete a field and its stored values from every record.",
			Schema:      idSchema,
			Destructive: true,
			Handler: f.Delete(handler.Descriptor{
				Domain: domain, Operation: "delete", Schema: idSchema,
				EntityLabel: "field", IDParam: "field_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.Fields().Delete(ctx, args.String("field_id"))
			}),
		},
	}
}

func fieldsetTools(f *handler.Factory) []Tool {
	const domain = "schema.fieldsets"

	listSchema := withAuth(map[string]*jsonschema.Schema{
		"item_type_id": stringProp("ID of the model whose fieldsets to list"),
	}, "item_type_id")

	idSchema := withAuth(map[string]*jsonschema.Schema{
		"fieldset_id": stringProp("ID of the fieldset"),
	}, "fieldset_id")

	createSchema := withAuth(map[string]*jsonschema.Schema{
		"item_type_id":    stringProp("ID of the model to add the fieldset to"),
		"title":           stringProp("Fieldset title shown in the editor"),
		"hint":            stringProp("Editor-facing hint"),
		"collapsible":     boolProp("Whether the fieldset can be collapsed"),
		"start_collapsed": boolProp("Whether the fieldset starts collapsed"),
	}, "item_type_id", "title")

	updateSchema := withAuth(map[string]*jsonschema.Schema{
		"fieldset_id":     stringProp("ID of the fieldset"),
		"title":           stringProp("New fieldset title"),
		"hint":            stringProp("Editor-facing hint"),
		"position":        intProp("Ordering position within the model"),
		"collapsible":     boolProp("Whether the fieldset can be collapsed"),
		"start_collapsed": boolProp("Whether the fieldset starts collapsed"),
	}, "fieldset_id")

	return []Tool{
		{
			Name:        "datocms_schema_fieldsets_list",
			Description: "List the fieldsets of a model.",
			Schema:      listSchema,
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.List(handler.Descriptor{
				Domain: domain, Operation: "list", Schema: listSchema, EntityLabel: "fieldset",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.Fieldsets().List(ctx, args.String("item_type_id"))
			}, nil),
		},
		{
			Name:        "datocms_schema_fieldsets_get",
			Description: "Retrieve a fieldset by ID.",
			Schema:      idSchema,
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.Retrieve(handler.Descriptor{
				Domain: domain, Operation: "get", Schema: idSchema,
				EntityLabel: "fieldset", IDParam: "fieldset_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				fieldset, err := client.Fieldsets().Get(ctx, args.String("fieldset_id"))
				if err != nil {
					if dato.IsNotFound(err) {
						return nil, nil
					}

					return nil, err
				}

				return fieldset, nil
			}),
		},
		{
			Name:        "datocms_schema_fieldsets_create",
			Description: "Add a fieldset to a model.",
			Schema:      createSchema,
			Handler: f.Create(handler.Descriptor{
				Domain: domain, Operation: "create", Schema: createSchema, EntityLabel: "fieldset",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.Fieldsets().Create(ctx, args.String("item_type_id"), &dato.FieldsetCreateRequest{
					Title:          args.String("title"),
					Hint:           args.String("hint"),
					Collapsible:    args.Bool("collapsible"),
					StartCollapsed: args.Bool("start_collapsed"),
				})
			}),
		},
		{
			Name:        "datocms_schema_fieldsets_update",
			Description: "Update a fieldset. Only the supplied attributes change.",
			Schema:      updateSchema,
			Idempotent:  true,
			Handler: f.Update(handler.Descriptor{
				Domain: domain, Operation: "update", Schema: updateSchema,
				EntityLabel: "fieldset", IDParam: "fieldset_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.Fieldsets().Update(ctx, args.String("fieldset_id"), &dato.FieldsetUpdateRequest{
					Title:          optString(args, "title"),
					Hint:           optString(args, "hint"),
					Position:       optInt(args, "position"),
					Collapsible:    optBool(args, "collapsible"),
					StartCollapsed: optBool(args, "start_collapsed"),
				})
			}),
		},
		{
			Name:        "datocms_schema_fieldsets_delete",
			Description: "Delete a fieldset. Its fields remain on the model.",
			Schema:      idSchema,
			Destructive: true,
			Handler: f.Delete(handler.Descriptor{
				Domain: domain, Operation: "delete", Schema: idSchema,
				EntityLabel: "fieldset", IDParam: "fieldset_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.Fieldsets().Delete(ctx, args.String("fieldset_id"))
			}),
		},
	}
}
