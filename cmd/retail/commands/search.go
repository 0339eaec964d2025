package commands

import (
	"context"

	"github.com/fivetwenty-io/retail-samples/internal/constants"
	"github.com/fivetwenty-io/retail-samples/pkg/retail"
	"github.com/spf13/cobra"
)

// NewSearchCommand creates the search command group.
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the product catalog",
		Long:  "Run product searches against the default search placement of the catalog",
	}

	cmd.AddCommand(newSearchFacetCommand())
	cmd.AddCommand(newSearchOrderCommand())
	cmd.AddCommand(newSearchQueryCommand())

	return cmd
}

func newSearchFacetCommand() *cobra.Command {
	var facetKey string

	cmd := &cobra.Command{
		Use:   "facet",
		Short: "Search with a facet spec",
		Long:  "Search for \"Tee\" and request facet counts for one facet key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				_, err := s.runner.SearchWithFacetSpec(ctx, facetKey)

				return err
			})
		},
	}

	cmd.Flags().StringVar(&facetKey, "facet-key", constants.FacetKey, "facet key to request")

	return cmd
}

func newSearchOrderCommand() *cobra.Command {
	var orderBy string

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Search with ordering",
		Long:  "Search for \"Hoodie\" and order the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				_, err := s.runner.SearchWithOrdering(ctx, orderBy)

				return err
			})
		},
	}

	cmd.Flags().StringVar(&orderBy, "order-by", constants.OrderBy, "ordering expression")

	return cmd
}

type queryFlags struct {
	facetKeys      []string
	orderBy        string
	filter         string
	boost          float32
	boostCondition string
	queryExpansion bool
	pageSize       int32
	pageToken      string
	offset         int32
}

func (f *queryFlags) options() []retail.SearchOption {
	var opts []retail.SearchOption

	for _, key := range f.facetKeys {
		opts = append(opts, retail.WithFacetKey(key))
	}

	if f.orderBy != "" {
		opts = append(opts, retail.WithOrderBy(f.orderBy))
	}

	if f.filter != "" {
		opts = append(opts, retail.WithFilter(f.filter))
	}

	if f.boostCondition != "" {
		opts = append(opts, retail.WithBoost(f.boostCondition, f.boost))
	}

	if f.queryExpansion {
		opts = append(opts, retail.WithQueryExpansion(false))
	}

	if f.pageSize > 0 {
		opts = append(opts, retail.WithPageSize(f.pageSize))
	}

	if f.pageToken != "" {
		opts = append(opts, retail.WithPageToken(f.pageToken))
	}

	if f.offset > 0 {
		opts = append(opts, retail.WithOffset(f.offset))
	}

	return opts
}

func newSearchQueryCommand() *cobra.Command {
	flags := &queryFlags{}

	cmd := &cobra.Command{
		Use:   "query QUERY",
		Short: "Run a custom search",
		Long:  "Search for QUERY with optional facets, ordering, filtering, boosting and paging",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				_, err := s.runner.Search(ctx, args[0], flags.options()...)

				return err
			})
		},
	}

	cmd.Flags().StringSliceVar(&flags.facetKeys, "facet-key", nil, "facet keys to request (repeatable)")
	cmd.Flags().StringVar(&flags.orderBy, "order-by", "", "ordering expression, e.g. \"price desc\"")
	cmd.Flags().StringVar(&flags.filter, "filter", "", "filter expression, e.g. 'colorFamilies: ANY(\"black\")'")
	cmd.Flags().StringVar(&flags.boostCondition, "boost-condition", "", "condition of products to boost")
	cmd.Flags().Float32Var(&flags.boost, "boost", 0, "boost strength between -1 and 1")
	cmd.Flags().BoolVar(&flags.queryExpansion, "query-expansion", false, "let the service expand the query")
	cmd.Flags().Int32Var(&flags.pageSize, "page-size", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&flags.pageToken, "page-token", "", "token of the page to fetch")
	cmd.Flags().Int32Var(&flags.offset, "offset", 0, "number of results to skip")

	return cmd
}
