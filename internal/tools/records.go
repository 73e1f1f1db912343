package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/datocms-community/datocms-mcp/internal/handler"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// recordTools covers the records domain: CRUD plus the publication workflow.
func recordTools(f *handler.Factory) []Tool {
	const domain = "records"

	idProps := func() map[string]*jsonschema.Schema {
		return map[string]*jsonschema.Schema{
			"item_id": stringProp("ID of the record"),
		}
	}

	listSchema := withAuth(mergeProps(pagingProps(), map[string]*jsonschema.Schema{
		"item_type": stringProp("Restrict results to records of this model (item type ID or API key)"),
		"query":     stringProp("Full-text search query across record fields"),
		"fields":    objectProp("Structured field filters, e.g. {\"title\": {\"eq\": \"Hello\"}}"),
		"locale":    stringProp("Locale used when filtering localized fields"),
		"order_by":  stringProp("Ordering expression, e.g. \"_created_at_DESC\""),
		"nested":    boolProp("Include nested block records in the response"),
		"version":   enumProp("Record version to read", "published", "current"),
	}))

	getSchema := withAuth(mergeProps(idProps(), map[string]*jsonschema.Schema{
		"nested":  boolProp("Include nested block records in the response"),
		"version": enumProp("Record version to read", "published", "current"),
	}), "item_id")

	createSchema := withAuth(map[string]*jsonschema.Schema{
		"item_type_id": stringProp("ID of the model the record belongs to"),
		"fields":       objectProp("Record field values keyed by field API key"),
	}, "item_type_id", "fields")

	updateSchema := withAuth(mergeProps(idProps(), map[string]*jsonschema.Schema{
		"fields": objectProp("Record field values to change, keyed by field API key"),
	}), "item_id", "fields")

	idSchema := withAuth(idProps(), "item_id")

	return []Tool{
		{
			Name:        "datocms_records_list",
			Description: "List records, optionally filtered by model, full-text query, or per-field conditions. Results are paginated.",
			Schema:      listSchema,
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.List(handler.Descriptor{
				Domain: domain, Operation: "list", Schema: listSchema,
				EntityLabel: "record", ClientKind: handler.ClientRecords,
			}, listRecords, recordPageShaper),
		},
		{
			Name:        "datocms_records_get",
			Description: "Retrieve a single record by ID.",
			Schema:      getSchema,
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.Retrieve(handler.Descriptor{
				Domain: domain, Operation: "get", Schema: getSchema,
				EntityLabel: "record", IDParam: "item_id", ClientKind: handler.ClientRecords,
			}, getRecord),
		},
		{
			Name:        "datocms_records_create",
			Description: "Create a record of the given model. Field values must match the model's field API keys.",
			Schema:      createSchema,
			Handler: f.Create(handler.Descriptor{
				Domain: domain, Operation: "create", Schema: createSchema,
				EntityLabel: "record", ClientKind: handler.ClientRecords,
			}, createRecord),
		},
		{
			Name:        "datocms_records_update",
			Description: "Update a record's field values. Only the supplied fields change.",
			Schema:      updateSchema,
			Idempotent:  true,
			Handler: f.Update(handler.Descriptor{
				Domain: domain, Operation: "update", Schema: updateSchema,
				EntityLabel: "record", IDParam: "item_id", ClientKind: handler.ClientRecords,
			}, updateRecord),
		},
		{
			Name:        "datocms_records_delete",
			Description: "Delete a record permanently.",
			Schema:      idSchema,
			Destructive: true,
			Handler: f.Delete(handler.Descriptor{
				Domain: domain, Operation: "delete", Schema: idSchema,
				EntityLabel: "record", IDParam: "item_id", ClientKind: handler.ClientRecords,
			}, deleteRecord),
		},
		{
			Name:        "datocms_records_publish",
			Description: "Publish a record, making its current version live.",
			Schema:      idSchema,
			Idempotent:  true,
			Handler: f.Custom(handler.Descriptor{
				Domain: domain, Operation: "publish", Schema: idSchema,
				EntityLabel: "record", IDParam: "item_id", ClientKind: handler.ClientRecords,
			}, publishRecord),
		},
		{
			Name:        "datocms_records_unpublish",
			Description: "Unpublish a record, removing it from the published content.",
			Schema:      idSchema,
			Idempotent:  true,
			Handler: f.Custom(handler.Descriptor{
				Domain: domain, Operation: "unpublish", Schema: idSchema,
				EntityLabel: "record", IDParam: "item_id", ClientKind: handler.ClientRecords,
			}, unpublishRecord),
		},
		{
			Name:        "datocms_records_duplicate",
			Description: "Duplicate a record, returning the new copy.",
			Schema:      idSchema,
			Handler: f.Custom(handler.Descriptor{
				Domain: domain, Operation: "duplicate", Schema: idSchema,
				EntityLabel: "record", IDParam: "item_id", ClientKind: handler.ClientRecords,
			}, duplicateRecord),
		},
	}
}

func listRecords(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
	query := queryFromArgs(args)
	query.Locale = args.String("locale")
	query.Nested = args.Bool("nested")
	query.Version = args.String("version")

	if itemType := args.String("item_type"); itemType != "" {
		query.WithFilter("type", itemType)
	}

	if search := args.String("query"); search != "" {
		query.WithFilter("query", search)
	}

	for path, value := range args.StringMap("fields") {
		query.Fields[path] = stringify(value)
	}

	return client.Items().List(ctx, query)
}

// recordPageShaper attaches pagination metadata from the CMA's total count.
func recordPageShaper(result any, args handler.Args) *handler.Envelope {
	page, ok := result.(*dato.ItemPage)
	if !ok {
		return handler.Success(result)
	}

	return handler.SuccessPage(page.Data, len(page.Data), page.TotalCount, queryFromArgs(args))
}

// getRecord maps the CMA's 404 onto a nil result so the retrieve archetype
// owns the not-found response shape.
func getRecord(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
	query := dato.NewQueryParams()
	query.Nested = args.Bool("nested")
	query.Version = args.String("version")

	item, err := client.Items().Get(ctx, args.String("item_id"), query)
	if err != nil {
		if dato.IsNotFound(err) {
			return nil, nil
		}

		return nil, err
	}

	return item, nil
}

func createRecord(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
	return client.Items().Create(ctx, &dato.ItemCreateRequest{
		ItemTypeID: args.String("item_type_id"),
		Fields:     args.StringMap("fields"),
	})
}

func updateRecord(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
	return client.Items().Update(ctx, args.String("item_id"), args.StringMap("fields"))
}

func deleteRecord(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
	return client.Items().Delete(ctx, args.String("item_id"))
}

func publishRecord(ctx context.Context, client dato.Client, args handler.Args) (*handler.Envelope, error) {
	item, err := client.Items().Publish(ctx, args.String("item_id"))
	if err != nil {
		return nil, err
	}

	return handler.SuccessMessage(item, "record '"+args.String("item_id")+"' published"), nil
}

func unpublishRecord(ctx context.Context, client dato.Client, args handler.Args) (*handler.Envelope, error) {
	item, err := client.Items().Unpublish(ctx, args.String("item_id"))
	if err != nil {
		return nil, err
	}

	return handler.SuccessMessage(item, "record '"+args.String("item_id")+"' unpublished"), nil
}

func duplicateRecord(ctx context.Context, client dato.Client, args handler.Args) (*handler.Envelope, error) {
	item, err := client.Items().Duplicate(ctx, args.String("item_id"))
	if err != nil {
		return nil, err
	}

	return handler.SuccessMessage(item, "record '"+args.String("item_id")+"' duplicated"), nil
}

// mergeProps combines property maps; later maps win on key collisions.
func mergeProps(maps ...map[string]*jsonschema.Schema) map[string]*jsonschema.Schema {
	merged := map[string]*jsonschema.Schema{}

	for _, m := range maps {
		for name, prop := range m {
			merged[name] = prop
		}
	}

	return merged
}
