package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/datocms-community/datocms-mcp/internal/handler"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// uploadTools covers the media area: listing, metadata updates, deletion,
// and reverse lookups of records embedding an upload.
func uploadTools(f *handler.Factory) []Tool {
	const domain = "uploads"

	listSchema := withAuth(mergeProps(pagingProps(), map[string]*jsonschema.Schema{
		"query":    stringProp("Full-text search across filenames, tags and metadata"),
		"tags":     stringProp("Comma-separated tags an upload must carry"),
		"order_by": stringProp("Ordering expression, e.g. \"_created_at_DESC\""),
	}))

	idSchema := withAuth(map[string]*jsonschema.Schema{
		"upload_id": stringProp("ID of the upload"),
	}, "upload_id")

	updateSchema := withAuth(map[string]*jsonschema.Schema{
		"upload_id": stringProp("ID of the upload"),
		"author":    stringProp("Author credit"),
		"copyright": stringProp("Copyright notice"),
		"notes":     stringProp("Internal notes"),
		"tags":      arrayProp("Tags to assign", stringProp("Tag name")),
	}, "upload_id")

	return []Tool{
		{
			Name:        "datocms_uploads_list",
			Description: "List uploads in the media area, optionally filtered by search query or tags. Results are paginated.",
			Schema:      listSchema,
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.List(handler.Descriptor{
				Domain: domain, Operation: "list", Schema: listSchema, EntityLabel: "upload",
			}, listUploads, uploadPageShaper),
		},
		{
			Name:        "datocms_uploads_get",
			Description: "Retrieve an upload by ID.",
			Schema:      idSchema,
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.Retrieve(handler.Descriptor{
				Domain: domain, Operation: "get", Schema: idSchema,
				EntityLabel: "upload", IDParam: "upload_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				upload, err := client.Uploads().Get(ctx, args.String("upload_id"))
				if err != nil {
					if dato.IsNotFound(err) {
						return nil, nil
					}

					return nil, err
				}

				return upload, nil
			}),
		},
		{
			Name:        "datocms_uploads_update",
			Description: "Update an upload's metadata (author, copyright, notes, tags).",
			Schema:      updateSchema,
			Idempotent:  true,
			Handler: f.Update(handler.Descriptor{
				Domain: domain, Operation: "update", Schema: updateSchema,
				EntityLabel: "upload", IDParam: "upload_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.Uploads().Update(ctx, args.String("upload_id"), &dato.UploadUpdateRequest{
					Author:    optString(args, "author"),
					Copyright: optString(args, "copyright"),
					Notes:     optString(args, "notes"),
					Tags:      stringSliceFromArgs(args, "tags"),
				})
			}),
		},
		{
			Name:        "datocms_uploads_delete",
			Description: "Delete an upload from the media area. Fails if records still reference it.",
			Schema:      idSchema,
			Destructive: true,
			Handler: f.Delete(handler.Descriptor{
				Domain: domain, Operation: "delete", Schema: idSchema,
				EntityLabel: "upload", IDParam: "upload_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return nil, client.Uploads().Delete(ctx, args.String("upload_id"))
			}),
		},
		{
			Name:        "datocms_uploads_references",
			Description: "List the records that embed an upload.",
			Schema:      idSchema,
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.List(handler.Descriptor{
				Domain: domain, Operation: "references", Schema: idSchema,
				EntityLabel: "upload", IDParam: "upload_id",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
				return client.Uploads().References(ctx, args.String("upload_id"))
			}, nil),
		},
	}
}

func listUploads(ctx context.Context, client dato.Client, args handler.Args) (any, error) {
	query := queryFromArgs(args)

	if search := args.String("query"); search != "" {
		query.WithFilter("query", search)
	}

	if tags := args.String("tags"); tags != "" {
		query.WithFilter("tags", tags)
	}

	return client.Uploads().List(ctx, query)
}

func uploadPageShaper(result any, args handler.Args) *handler.Envelope {
	page, ok := result.(*dato.UploadPage)
	if !ok {
		return handler.Success(result)
	}

	return handler.SuccessPage(page.Data, len(page.Data), page.TotalCount, queryFromArgs(args))
}
