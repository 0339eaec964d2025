package retail

import (
	"time"

	"cloud.google.com/go/retail/apiv2/retailpb"
	"github.com/fivetwenty-io/retail-samples/internal/constants"
	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/fieldmaskpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// InventoryMaskPaths are the product fields written by a set-inventory request.
var InventoryMaskPaths = []string{ //nolint:gochecknoglobals // read-only field mask
	"price_info",
	"availability",
	"fulfillment_info",
	"available_quantity",
}

// SearchOption customises a search request.
type SearchOption func(req *retailpb.SearchRequest)

// WithFacetKey requests a textual or numerical facet.
func WithFacetKey(key string) SearchOption {
	return func(req *retailpb.SearchRequest) {
		req.FacetSpecs = append(req.FacetSpecs, &retailpb.SearchRequest_FacetSpec{
			FacetKey: &retailpb.SearchRequest_FacetSpec_FacetKey{Key: key},
		})
	}
}

// WithOrderBy sorts results, e.g. "price desc".
func WithOrderBy(orderBy string) SearchOption {
	return func(req *retailpb.SearchRequest) {
		req.OrderBy = orderBy
	}
}

// WithFilter restricts results, e.g. `colorFamilies: ANY("black")`.
func WithFilter(filter string) SearchOption {
	return func(req *retailpb.SearchRequest) {
		req.Filter = filter
	}
}

// WithBoost promotes (positive boost) or demotes (negative boost) products
// matching condition. Boost must be in [-1, 1].
func WithBoost(condition string, boost float32) SearchOption {
	return func(req *retailpb.SearchRequest) {
		if req.BoostSpec == nil {
			req.BoostSpec = &retailpb.SearchRequest_BoostSpec{}
		}

		req.BoostSpec.ConditionBoostSpecs = append(req.BoostSpec.ConditionBoostSpecs,
			&retailpb.SearchRequest_BoostSpec_ConditionBoostSpec{
				Condition: condition,
				Boost:     boost,
			})
	}
}

// WithQueryExpansion lets the service expand the query when it has few
// results.
func WithQueryExpansion(pinUnexpandedResults bool) SearchOption {
	return func(req *retailpb.SearchRequest) {
		req.QueryExpansionSpec = &retailpb.SearchRequest_QueryExpansionSpec{
			Condition:            retailpb.SearchRequest_QueryExpansionSpec_AUTO,
			PinUnexpandedResults: pinUnexpandedResults,
		}
	}
}

// WithPageSize overrides the default page size of 10.
func WithPageSize(pageSize int32) SearchOption {
	return func(req *retailpb.SearchRequest) {
		req.PageSize = pageSize
	}
}

// WithPageToken continues a previous search.
func WithPageToken(token string) SearchOption {
	return func(req *retailpb.SearchRequest) {
		req.PageToken = token
	}
}

// WithOffset skips the first offset results.
func WithOffset(offset int32) SearchOption {
	return func(req *retailpb.SearchRequest) {
		req.Offset = offset
	}
}

// WithVisitorID replaces the generated visitor id.
func WithVisitorID(visitorID string) SearchOption {
	return func(req *retailpb.SearchRequest) {
		req.VisitorId = visitorID
	}
}

// NewSearchRequest builds a search request against placement with a page size
// of 10 and a freshly generated visitor id.
func NewSearchRequest(placement, query string, opts ...SearchOption) *retailpb.SearchRequest {
	req := &retailpb.SearchRequest{
		Placement: placement,
		Query:     query,
		VisitorId: uuid.NewString(),
		PageSize:  constants.DefaultPageSize,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(req)
		}
	}

	return req
}

// NewSampleProduct returns the product created by the setup helpers.
func NewSampleProduct(productID string) *retailpb.Product {
	return &retailpb.Product{
		Id:         productID,
		Type:       retailpb.Product_PRIMARY,
		Title:      "Nest Mini",
		Categories: []string{"Speakers and displays"},
		Brands:     []string{"Google"},
		PriceInfo: &retailpb.PriceInfo{
			Price:         30.0,
			OriginalPrice: 35.5,
			CurrencyCode:  constants.CurrencyCode,
		},
		Availability: retailpb.Product_IN_STOCK,
	}
}

// NewInventoryProduct returns the inventory payload for a product name: price,
// availability and pickup-in-store fulfillment.
func NewInventoryProduct(productName string) *retailpb.Product {
	return &retailpb.Product{
		Name: productName,
		PriceInfo: &retailpb.PriceInfo{
			Price:         15.0,
			OriginalPrice: 20.0,
			Cost:          8.0,
			CurrencyCode:  constants.CurrencyCode,
		},
		FulfillmentInfo: []*retailpb.FulfillmentInfo{
			{
				Type:     constants.PickupInStore,
				PlaceIds: []string{"store1", "store2"},
			},
		},
		Availability: retailpb.Product_IN_STOCK,
	}
}

// NewSetInventoryRequest builds a set-inventory request limited to the
// inventory fields. Missing products are created.
func NewSetInventoryRequest(productName string, setTime time.Time) *retailpb.SetInventoryRequest {
	paths := make([]string, len(InventoryMaskPaths))
	copy(paths, InventoryMaskPaths)

	return &retailpb.SetInventoryRequest{
		Inventory:    NewInventoryProduct(productName),
		SetMask:      &fieldmaskpb.FieldMask{Paths: paths},
		SetTime:      timestamppb.New(setTime),
		AllowMissing: true,
	}
}

// NewCreateProductRequest builds a create request for a product in branch.
func NewCreateProductRequest(branch string, product *retailpb.Product) *retailpb.CreateProductRequest {
	return &retailpb.CreateProductRequest{
		Parent:    branch,
		Product:   product,
		ProductId: product.GetId(),
	}
}

// NewUpdateProductRequest builds a partial update; an empty mask updates every
// field present in the product.
func NewUpdateProductRequest(product *retailpb.Product, paths ...string) *retailpb.UpdateProductRequest {
	req := &retailpb.UpdateProductRequest{Product: product}
	if len(paths) > 0 {
		req.UpdateMask = &fieldmaskpb.FieldMask{Paths: paths}
	}

	return req
}
