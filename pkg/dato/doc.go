// Package dato provides a client for the DatoCMS Content Management API (CMA).
//
// The package exposes the public surface of the client: the Client interface
// with its per-resource sub-clients, configuration, typed resources, error
// classification helpers, query parameters, and the pluggable response cache.
// The concrete implementation lives in internal/client and internal/http.
//
// Create a client with datoclient.New:
//
//	client, err := datoclient.New(&dato.Config{APIToken: token})
//	if err != nil {
//		log.Fatal(err)
//	}
//	site, err := client.Site().Get(ctx)
//
// All methods take a context.Context and surface CMA failures as
// *dato.ErrorResponse values, which can be inspected with the Is* helpers
// (IsNotFound, IsUnauthorized, ...).
package dato
