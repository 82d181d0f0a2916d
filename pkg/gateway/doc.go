// Package gateway is the generic data-access layer of the CRM client: one
// implementation of a fixed CRUD/query contract over any named backend
// resource, with consistent request construction, credential injection and
// error normalization.
//
// The gateway has no compile-time knowledge of domain entities. A resource
// is a string naming a backend collection ("membership", "users") reached
// through convention-based REST paths, and records are plain field maps.
// Higher-level typed clients (see modules/membership) are composed on top.
//
// Every request carries the bearer token from the session store, a JSON
// content type and a generated request id. List queries map to the
// backend's query-string convention: _page/_limit for pagination,
// _sort/_order for the single active sort, and <field>_<operator> pairs
// for filters.
//
// Batch operations (GetMany, CreateMany, UpdateMany, DeleteMany) fan out
// one request per item concurrently, preserve input ordering in the result
// and fail fast with the first failed item's normalized error.
//
// All failures — transport faults, non-2xx statuses and the backend's
// body-level errors array — surface as *apierr.Error values.
//
// # Usage
//
//	store := sessionstore.NewMemoryStore()
//	gw, err := gateway.New(gateway.Config{BaseURL: "https://api.example.com"}, store)
//	if err != nil {
//	    return err
//	}
//
//	result, err := gw.List(ctx, gateway.ListRequest{
//	    Resource:   "membership",
//	    Pagination: gateway.Pagination{Page: 2, PageSize: 25},
//	    Sort:       []gateway.Sort{{Field: "name", Order: "asc"}},
//	    Filters:    []gateway.Filter{{Field: "status", Operator: "eq", Value: "active"}},
//	})
package gateway
