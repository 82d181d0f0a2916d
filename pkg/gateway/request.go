package gateway

import (
	"fmt"
	"net/url"
	"strconv"
)

// Default pagination applied when a list request leaves values unset.
const (
	defaultPage     = 1
	defaultPageSize = 10
)

// Record is a generic backend record: a field map carrying the record's
// unique identifier under "id".
type Record map[string]any

// ID returns the record's identifier rendered as a string, or "" when the
// record has none.
func (r Record) ID() string {
	v, ok := r["id"]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// ListResult is the collection outcome of a List call.
type ListResult struct {
	Data  []Record
	Total int
}

// Pagination selects a 1-based page of a given size. Zero values fall
// back to page 1, size 10.
type Pagination struct {
	Page     int
	PageSize int
}

// Sort orders a list by a single field. Order is "asc" or "desc".
type Sort struct {
	Field string
	Order string
}

// Filter narrows a list with a field/operator/value triple. The operator
// follows the backend convention ("eq", "like", "gte", ...), producing a
// query parameter named <field>_<operator>.
type Filter struct {
	Field    string
	Operator string
	Value    any
}

// ListRequest queries a page of a resource collection.
type ListRequest struct {
	Resource   string
	Pagination Pagination
	Sort       []Sort // only the first entry is honored
	Filters    []Filter
}

func (r ListRequest) validate() error {
	if r.Resource == "" {
		return ErrMissingResource
	}
	return nil
}

// query renders the request into the backend's query-string convention.
func (r ListRequest) query() url.Values {
	page := r.Pagination.Page
	if page < 1 {
		page = defaultPage
	}
	size := r.Pagination.PageSize
	if size < 1 {
		size = defaultPageSize
	}

	q := url.Values{}
	q.Set("_page", strconv.Itoa(page))
	q.Set("_limit", strconv.Itoa(size))

	if len(r.Sort) > 0 && r.Sort[0].Field != "" {
		q.Set("_sort", r.Sort[0].Field)
		q.Set("_order", r.Sort[0].Order)
	}

	for _, f := range r.Filters {
		if f.Field == "" || f.Operator == "" {
			continue
		}
		q.Set(f.Field+"_"+f.Operator, fmt.Sprint(f.Value))
	}

	return q
}

// GetRequest fetches a single record by id.
type GetRequest struct {
	Resource string
	ID       string
}

func (r GetRequest) validate() error {
	if r.Resource == "" {
		return ErrMissingResource
	}
	if r.ID == "" {
		return ErrMissingID
	}
	return nil
}

// CreateRequest creates a single record.
type CreateRequest struct {
	Resource  string
	Variables map[string]any
}

func (r CreateRequest) validate() error {
	if r.Resource == "" {
		return ErrMissingResource
	}
	if len(r.Variables) == 0 {
		return ErrNoVariables
	}
	return nil
}

// UpdateRequest partially updates a single record.
type UpdateRequest struct {
	Resource  string
	ID        string
	Variables map[string]any
}

func (r UpdateRequest) validate() error {
	if r.Resource == "" {
		return ErrMissingResource
	}
	if r.ID == "" {
		return ErrMissingID
	}
	if len(r.Variables) == 0 {
		return ErrNoVariables
	}
	return nil
}

// DeleteRequest removes a single record.
type DeleteRequest struct {
	Resource string
	ID       string
}

func (r DeleteRequest) validate() error {
	return GetRequest(r).validate()
}

// GetManyRequest fetches several records concurrently, one request per id.
type GetManyRequest struct {
	Resource string
	IDs      []string
}

func (r GetManyRequest) validate() error {
	if r.Resource == "" {
		return ErrMissingResource
	}
	if len(r.IDs) == 0 {
		return ErrNoIDs
	}
	return nil
}

// CreateManyRequest creates several records concurrently.
type CreateManyRequest struct {
	Resource string
	Items    []map[string]any
}

func (r CreateManyRequest) validate() error {
	if r.Resource == "" {
		return ErrMissingResource
	}
	if len(r.Items) == 0 {
		return ErrNoItems
	}
	return nil
}

// UpdateManyRequest applies the same variables to several records
// concurrently, one PUT per id.
type UpdateManyRequest struct {
	Resource  string
	IDs       []string
	Variables map[string]any
}

func (r UpdateManyRequest) validate() error {
	if r.Resource == "" {
		return ErrMissingResource
	}
	if len(r.IDs) == 0 {
		return ErrNoIDs
	}
	if len(r.Variables) == 0 {
		return ErrNoVariables
	}
	return nil
}

// DeleteManyRequest removes several records concurrently.
type DeleteManyRequest struct {
	Resource string
	IDs      []string
}

func (r DeleteManyRequest) validate() error {
	return GetManyRequest(r).validate()
}

// CustomRequest calls an arbitrary endpoint outside the resource
// convention. Headers override the defaults, including Authorization.
type CustomRequest struct {
	Path    string
	Method  string
	Query   url.Values
	Payload any
	Headers map[string]string
}

func (r CustomRequest) validate() error {
	if r.Path == "" {
		return ErrMissingPath
	}
	if r.Method == "" {
		return ErrMissingMethod
	}
	return nil
}
