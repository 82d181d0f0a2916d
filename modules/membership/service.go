package membership

import (
	"context"
	"errors"
	"net/http"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/Slymcode/cipmn-crm/pkg/gateway"
)

// Resource is the backend collection name.
const Resource = "membership"

var (
	ErrMissingGateway = errors.New("membership: missing gateway")
	ErrMissingID      = errors.New("membership: missing membership id")
	ErrNilMembership  = errors.New("membership: nil membership")
)

// Service is the typed membership client.
type Service struct {
	gw *gateway.Gateway
}

// NewService creates a membership service over the given gateway.
func NewService(gw *gateway.Gateway) (*Service, error) {
	if gw == nil {
		return nil, ErrMissingGateway
	}
	return &Service{gw: gw}, nil
}

// ListOptions narrows and pages a membership listing. Search terms map to
// the backend's <field>_like filters.
type ListOptions struct {
	Page     int
	PageSize int
	Sort     *gateway.Sort

	// Search filters by substring on the named column.
	NameSearch         string
	EmailSearch        string
	MembershipIDSearch string
}

func (o ListOptions) toRequest() gateway.ListRequest {
	req := gateway.ListRequest{
		Resource:   Resource,
		Pagination: gateway.Pagination{Page: o.Page, PageSize: o.PageSize},
	}
	if o.Sort != nil {
		req.Sort = []gateway.Sort{*o.Sort}
	}
	for field, value := range map[string]string{
		"name":         o.NameSearch,
		"email":        o.EmailSearch,
		"membershipID": o.MembershipIDSearch,
	} {
		if value != "" {
			req.Filters = append(req.Filters, gateway.Filter{
				Field: field, Operator: "like", Value: value,
			})
		}
	}
	return req
}

// List fetches a page of memberships.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]*Membership, int, error) {
	result, err := s.gw.List(ctx, opts.toRequest())
	if err != nil {
		return nil, 0, err
	}

	members := make([]*Membership, 0, len(result.Data))
	for _, record := range result.Data {
		m, err := decode(record)
		if err != nil {
			return nil, 0, err
		}
		members = append(members, m)
	}
	return members, result.Total, nil
}

// Get fetches a single membership by id.
func (s *Service) Get(ctx context.Context, id string) (*Membership, error) {
	if id == "" {
		return nil, ErrMissingID
	}

	record, err := s.gw.GetOne(ctx, gateway.GetRequest{Resource: Resource, ID: id})
	if err != nil {
		return nil, err
	}
	return decode(record)
}

// Create registers a new membership.
func (s *Service) Create(ctx context.Context, m *Membership) (*Membership, error) {
	if m == nil {
		return nil, ErrNilMembership
	}

	variables, err := m.encode()
	if err != nil {
		return nil, err
	}

	record, err := s.gw.Create(ctx, gateway.CreateRequest{
		Resource:  Resource,
		Variables: variables,
	})
	if err != nil {
		return nil, err
	}
	return decode(record)
}

// Update saves an edited membership.
func (s *Service) Update(ctx context.Context, m *Membership) (*Membership, error) {
	if m == nil {
		return nil, ErrNilMembership
	}
	if m.ID == "" {
		return nil, ErrMissingID
	}

	variables, err := m.encode()
	if err != nil {
		return nil, err
	}

	record, err := s.gw.Update(ctx, gateway.UpdateRequest{
		Resource:  Resource,
		ID:        m.ID,
		Variables: variables,
	})
	if err != nil {
		return nil, err
	}
	return decode(record)
}

// Delete removes a membership.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}

	_, err := s.gw.Delete(ctx, gateway.DeleteRequest{Resource: Resource, ID: id})
	return err
}

// Barcode downloads the server-rendered barcode image (PNG) for a
// membership card.
func (s *Service) Barcode(ctx context.Context, id string) ([]byte, error) {
	if id == "" {
		return nil, ErrMissingID
	}

	return s.gw.Custom(ctx, gateway.CustomRequest{
		Path:   Resource + "/generate-barcode/" + id,
		Method: http.MethodGet,
	})
}

// CardQR renders a QR code PNG of the member's id locally, for card
// printing when the barcode endpoint is unreachable. Size is the image
// edge in pixels.
func CardQR(m *Membership, size int) ([]byte, error) {
	if m == nil {
		return nil, ErrNilMembership
	}
	if m.MembershipID == "" {
		return nil, ErrMissingID
	}
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(m.MembershipID, qrcode.Medium, size)
}
