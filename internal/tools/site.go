package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/datocms-community/datocms-mcp/internal/handler"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// siteTools covers the project-settings singleton.
func siteTools(f *handler.Factory) []Tool {
	const domain = "site"

	updateSchema := withAuth(map[string]*jsonschema.Schema{
		"name":     stringProp("New project name"),
		"locales":  arrayProp("Full set of locale codes, e.g. [\"en\", \"it\"]; replaces the current set", stringProp("Locale code")),
		"timezone": stringProp("Project timezone, e.g. \"Europe/Rome\""),
		"no_index": boolProp("Whether search engines are asked not to index the site"),
	})

	return []Tool{
		{
			Name:        "datocms_site_get",
			Description: "Retrieve the project settings: name, locales, timezone, and flags.",
			Schema:      withAuth(nil),
			ReadOnly:    true,
			Idempotent:  true,
			Handler: f.Custom(handler.Descriptor{
				Domain: domain, Operation: "get", Schema: withAuth(nil), EntityLabel: "site",
			}, func(ctx context.Context, client dato.Client, _ handler.Args) (*handler.Envelope, error) {
				site, err := client.Site().Get(ctx)
				if err != nil {
					return nil, err
				}

				return handler.Success(site), nil
			}),
		},
		{
			Name:        "datocms_site_update",
			Description: "Update the project settings. Only the supplied attributes change; locales, when given, replace the whole set.",
			Schema:      updateSchema,
			Idempotent:  true,
			Handler: f.Custom(handler.Descriptor{
				Domain: domain, Operation: "update", Schema: updateSchema, EntityLabel: "site",
			}, func(ctx context.Context, client dato.Client, args handler.Args) (*handler.Envelope, error) {
				site, err := client.Site().Update(ctx, &dato.SiteUpdateRequest{
					Name:     optString(args, "name"),
					Locales:  stringSliceFromArgs(args, "locales"),
					Timezone: optString(args, "timezone"),
					NoIndex:  optBool(args, "no_index"),
				})
				if err != nil {
					return nil, err
				}

				return handler.SuccessMessage(site, "site settings updated successfully"), nil
			}),
		},
	}
}
