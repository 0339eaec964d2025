package samples_test

import (
	"context"
	"iter"

	"cloud.google.com/go/retail/apiv2/retailpb"
	"github.com/fivetwenty-io/retail-samples/pkg/retail"
	"github.com/stretchr/testify/mock"
)

// MockClient implements retail.Client for testing.
type MockClient struct {
	products *MockProductsClient
	search   *MockSearchClient
	buckets  *MockBucketsClient
}

func newMockClient() *MockClient {
	return &MockClient{
		products: &MockProductsClient{},
		search:   &MockSearchClient{},
		buckets:  &MockBucketsClient{},
	}
}

func (m *MockClient) Products() retail.ProductsClient { return m.products }
func (m *MockClient) Search() retail.SearchClient     { return m.search }
func (m *MockClient) Buckets() retail.BucketsClient   { return m.buckets }
func (m *MockClient) Close() error                    { return nil }

// MockProductsClient implements retail.ProductsClient for testing.
type MockProductsClient struct {
	mock.Mock
}

func (m *MockProductsClient) CreateProduct(ctx context.Context, req *retailpb.CreateProductRequest) (*retailpb.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*retailpb.Product), args.Error(1)
}

func (m *MockProductsClient) GetProduct(ctx context.Context, req *retailpb.GetProductRequest) (*retailpb.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*retailpb.Product), args.Error(1)
}

func (m *MockProductsClient) UpdateProduct(ctx context.Context, req *retailpb.UpdateProductRequest) (*retailpb.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*retailpb.Product), args.Error(1)
}

func (m *MockProductsClient) DeleteProduct(ctx context.Context, req *retailpb.DeleteProductRequest) error {
	args := m.Called(ctx, req)

	return args.Error(0)
}

func (m *MockProductsClient) ListProducts(ctx context.Context, req *retailpb.ListProductsRequest) iter.Seq2[*retailpb.Product, error] {
	args := m.Called(ctx, req)

	return args.Get(0).(iter.Seq2[*retailpb.Product, error])
}

func (m *MockProductsClient) SetInventory(ctx context.Context, req *retailpb.SetInventoryRequest) (retail.InventoryOperation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(retail.InventoryOperation), args.Error(1)
}

// MockOperation implements retail.InventoryOperation for testing.
type MockOperation struct {
	mock.Mock
}

func (m *MockOperation) Name() string {
	return "operations/set-inventory-1"
}

func (m *MockOperation) Wait(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}

// MockSearchClient implements retail.SearchClient for testing.
type MockSearchClient struct {
	mock.Mock
}

func (m *MockSearchClient) Search(ctx context.Context, req *retailpb.SearchRequest) (*retailpb.SearchResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*retailpb.SearchResponse), args.Error(1)
}

// MockBucketsClient implements retail.BucketsClient for testing.
type MockBucketsClient struct {
	mock.Mock
}

func (m *MockBucketsClient) BucketExists(ctx context.Context, bucket string) (bool, error) {
	args := m.Called(ctx, bucket)

	return args.Bool(0), args.Error(1)
}

func (m *MockBucketsClient) DeleteBucket(ctx context.Context, bucket string) error {
	args := m.Called(ctx, bucket)

	return args.Error(0)
}

func (m *MockBucketsClient) ListObjects(ctx context.Context, bucket string) iter.Seq2[string, error] {
	args := m.Called(ctx, bucket)

	return args.Get(0).(iter.Seq2[string, error])
}

func (m *MockBucketsClient) DeleteObject(ctx context.Context, bucket, object string) error {
	args := m.Called(ctx, bucket, object)

	return args.Error(0)
}

// productSeq yields products, then err if it is not nil.
func productSeq(products []*retailpb.Product, err error) iter.Seq2[*retailpb.Product, error] {
	return func(yield func(*retailpb.Product, error) bool) {
		for _, product := range products {
			if !yield(product, nil) {
				return
			}
		}

		if err != nil {
			yield(nil, err)
		}
	}
}

// objectSeq yields object names.
func objectSeq(objects ...string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, object := range objects {
			if !yield(object, nil) {
				return
			}
		}
	}
}
