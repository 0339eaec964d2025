package commands

import (
	"bytes"
	"context"
	"iter"
	"strings"
	"sync"
	"testing"

	"cloud.google.com/go/retail/apiv2/retailpb"
	"github.com/fivetwenty-io/retail-samples/internal/config"
	"github.com/fivetwenty-io/retail-samples/pkg/retail"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeClient struct {
	mu       sync.Mutex
	products []*retailpb.Product
	deleted  []string
	searches []*retailpb.SearchRequest
	buckets  map[string][]string
	closed   bool
}

func (f *fakeClient) Products() retail.ProductsClient { return fakeProducts{f} }
func (f *fakeClient) Search() retail.SearchClient     { return fakeSearch{f} }
func (f *fakeClient) Buckets() retail.BucketsClient   { return fakeBuckets{f} }

func (f *fakeClient) Close() error {
	f.closed = true

	return nil
}

type fakeProducts struct{ f *fakeClient }

func (p fakeProducts) CreateProduct(_ context.Context, req *retailpb.CreateProductRequest) (*retailpb.Product, error) {
	return req.GetProduct(), nil
}

func (p fakeProducts) GetProduct(_ context.Context, req *retailpb.GetProductRequest) (*retailpb.Product, error) {
	return &retailpb.Product{Name: req.GetName()}, nil
}

func (p fakeProducts) UpdateProduct(_ context.Context, req *retailpb.UpdateProductRequest) (*retailpb.Product, error) {
	return req.GetProduct(), nil
}

func (p fakeProducts) DeleteProduct(_ context.Context, req *retailpb.DeleteProductRequest) error {
	p.f.mu.Lock()
	defer p.f.mu.Unlock()

	if strings.HasSuffix(req.GetName(), "/gone") {
		return status.Error(codes.PermissionDenied, "gone")
	}

	p.f.deleted = append(p.f.deleted, req.GetName())

	return nil
}

func (p fakeProducts) ListProducts(_ context.Context, _ *retailpb.ListProductsRequest) iter.Seq2[*retailpb.Product, error] {
	return func(yield func(*retailpb.Product, error) bool) {
		for _, product := range p.f.products {
			if !yield(product, nil) {
				return
			}
		}
	}
}

func (p fakeProducts) SetInventory(_ context.Context, _ *retailpb.SetInventoryRequest) (retail.InventoryOperation, error) {
	return fakeOperation{}, nil
}

type fakeOperation struct{}

func (fakeOperation) Name() string                 { return "operations/1" }
func (fakeOperation) Wait(_ context.Context) error { return nil }

type fakeSearch struct{ f *fakeClient }

func (s fakeSearch) Search(_ context.Context, req *retailpb.SearchRequest) (*retailpb.SearchResponse, error) {
	s.f.searches = append(s.f.searches, req)

	return &retailpb.SearchResponse{TotalSize: 1}, nil
}

type fakeBuckets struct{ f *fakeClient }

func (b fakeBuckets) BucketExists(_ context.Context, bucket string) (bool, error) {
	_, ok := b.f.buckets[bucket]

	return ok, nil
}

func (b fakeBuckets) DeleteBucket(_ context.Context, bucket string) error {
	delete(b.f.buckets, bucket)

	return nil
}

func (b fakeBuckets) ListObjects(_ context.Context, bucket string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, object := range b.f.buckets[bucket] {
			if !yield(object, nil) {
				return
			}
		}
	}
}

func (b fakeBuckets) DeleteObject(_ context.Context, _, _ string) error {
	return nil
}

// setupCLI configures the global viper instance and swaps the client
// constructor for fake.
func setupCLI(t *testing.T, fake *fakeClient, settings map[string]interface{}) {
	t.Helper()

	viper.Reset()
	require.NoError(t, config.Configure(viper.GetViper()))

	for key, value := range settings {
		viper.Set(key, value)
	}

	previousClient := newClient
	previousInteractive := isInteractive

	newClient = func(_ context.Context, cfg *retail.Config) (retail.Client, error) {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}

		return fake, nil
	}
	isInteractive = func() bool { return false }

	t.Cleanup(func() {
		newClient = previousClient
		isInteractive = previousInteractive

		viper.Reset()
	})
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	if args == nil {
		args = []string{}
	}

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

func TestCommandStructure(t *testing.T) {
	tests := []struct {
		cmd         *cobra.Command
		use         string
		subcommands []string
	}{
		{NewSearchCommand(), "search", []string{"facet", "order", "query"}},
		{NewProductsCommand(), "products", []string{"create", "get", "delete", "delete-all"}},
		{NewInventoryCommand(), "inventory", []string{"set", "tutorial"}},
		{NewBucketsCommand(), "buckets", []string{"delete"}},
		{NewConfigCommand(), "config", []string{"show"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.use, tt.cmd.Use)
		assert.NotEmpty(t, tt.cmd.Short)
		assert.Len(t, tt.cmd.Commands(), len(tt.subcommands))

		for _, name := range tt.subcommands {
			sub := findSubcommand(tt.cmd, name)
			if assert.NotNil(t, sub, "subcommand %s of %s", name, tt.use) {
				assert.NotNil(t, sub.RunE)
			}
		}
	}

	cleanup := NewCleanupCommand()
	assert.Equal(t, "cleanup", cleanup.Use)
	assert.NotNil(t, cleanup.Flags().Lookup("force"))
}

func TestSearchQueryFlags(t *testing.T) {
	cmd := newSearchQueryCommand()

	for _, name := range []string{
		"facet-key", "order-by", "filter", "boost", "boost-condition",
		"query-expansion", "page-size", "page-token", "offset",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s should exist", name)
	}
}

func TestSearchFacetCommand(t *testing.T) {
	fake := &fakeClient{}
	setupCLI(t, fake, map[string]interface{}{config.KeyProjectNumber: "123"})

	out, err := execute(t, NewSearchCommand(), "facet")
	require.NoError(t, err)

	require.Len(t, fake.searches, 1)
	assert.Equal(t, "Tee", fake.searches[0].GetQuery())
	assert.Equal(t, "colorFamilies", fake.searches[0].GetFacetSpecs()[0].GetFacetKey().GetKey())
	assert.Contains(t, out, "Search response: ")
	assert.True(t, fake.closed)
}

func TestSearchQueryCommand(t *testing.T) {
	fake := &fakeClient{}
	setupCLI(t, fake, map[string]interface{}{config.KeyProjectNumber: "123"})

	_, err := execute(t, NewSearchCommand(), "query", "Hoodie",
		"--order-by", "price desc", "--filter", `colorFamilies: ANY("blue")`, "--page-size", "5")
	require.NoError(t, err)

	require.Len(t, fake.searches, 1)
	req := fake.searches[0]
	assert.Equal(t, "Hoodie", req.GetQuery())
	assert.Equal(t, "price desc", req.GetOrderBy())
	assert.Equal(t, `colorFamilies: ANY("blue")`, req.GetFilter())
	assert.Equal(t, int32(5), req.GetPageSize())
}

func TestCommandRequiresProject(t *testing.T) {
	t.Setenv("PROJECT_NUMBER", "")
	setupCLI(t, &fakeClient{}, nil)

	_, err := execute(t, NewSearchCommand(), "order")
	require.ErrorIs(t, err, retail.ErrProjectNumberRequired)
}

func TestProductsDeleteRequiresConfirmation(t *testing.T) {
	fake := &fakeClient{}
	setupCLI(t, fake, map[string]interface{}{config.KeyProjectNumber: "123"})

	_, err := execute(t, NewProductsCommand(), "delete", "p-1")
	require.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Empty(t, fake.deleted)

	_, err = execute(t, NewProductsCommand(), "delete", "p-1", "--force")
	require.NoError(t, err)
	assert.Equal(t, []string{retail.NewResourceNames("123").Product("p-1")}, fake.deleted)
}

func TestProductsDeleteAllCommand(t *testing.T) {
	names := retail.NewResourceNames("123")
	fake := &fakeClient{products: []*retailpb.Product{
		{Name: names.Product("a")},
		{Name: names.Product("gone")},
		{Name: names.Product("b")},
	}}
	setupCLI(t, fake, map[string]interface{}{
		config.KeyProjectNumber: "123",
		config.KeyOutput:        "json",
	})

	out, err := execute(t, NewProductsCommand(), "delete-all", "--force", "--concurrency", "2")
	require.NoError(t, err)
	assert.Len(t, fake.deleted, 2)
	assert.Contains(t, out, `"deleted": 2`)
	assert.Contains(t, out, `"skipped": 1`)
}

func TestBucketsDeleteCommand(t *testing.T) {
	fake := &fakeClient{buckets: map[string][]string{"import-bucket": {"a.json"}}}
	setupCLI(t, fake, map[string]interface{}{
		config.KeyProjectNumber: "123",
		config.KeyBucketName:    "import-bucket",
	})

	out, err := execute(t, NewBucketsCommand(), "delete", "--force")
	require.NoError(t, err)
	assert.Empty(t, fake.buckets)
	assert.Contains(t, out, "Bucket import-bucket was deleted.")

	out, err = execute(t, NewBucketsCommand(), "delete", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Bucket 'import-bucket' already deleted.")
}

func TestCleanupRequiresBucket(t *testing.T) {
	t.Setenv("BUCKET_NAME", "")
	setupCLI(t, &fakeClient{}, map[string]interface{}{config.KeyProjectNumber: "123"})

	_, err := execute(t, NewCleanupCommand(), "--force")
	require.ErrorIs(t, err, retail.ErrBucketNameRequired)
}

func TestVersionCommand(t *testing.T) {
	setupCLI(t, &fakeClient{}, map[string]interface{}{config.KeyOutput: "json"})

	out, err := execute(t, NewVersionCommand("1.2.3", "abc", "today"))
	require.NoError(t, err)
	assert.Contains(t, out, `"version": "1.2.3"`)
}

func TestConfigShowCommand(t *testing.T) {
	setupCLI(t, &fakeClient{}, map[string]interface{}{
		config.KeyProjectNumber: "123",
		config.KeyOutput:        "yaml",
	})

	out, err := execute(t, NewConfigCommand(), "show")
	require.NoError(t, err)
	assert.Contains(t, out, "project_number: \"123\"")
	assert.Contains(t, out, "branch: projects/123/locations/global/catalogs/default_catalog/branches/default_branch")
}

func TestReadYes(t *testing.T) {
	assert.True(t, readYes(strings.NewReader("y\n")))
	assert.True(t, readYes(strings.NewReader("YES\n")))
	assert.False(t, readYes(strings.NewReader("n\n")))
	assert.False(t, readYes(strings.NewReader("")))
}
