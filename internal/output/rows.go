package output

import (
	"fmt"
	"strconv"
	"strings"

	"cloud.google.com/go/retail/apiv2/retailpb"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"google.golang.org/protobuf/proto"
)

const notAvailable = "N/A"

// Rows returns table rows for the messages that have a tabular form.
func Rows(msg proto.Message) ([][]string, []string, bool) {
	switch m := msg.(type) {
	case *retailpb.SearchResponse:
		return searchResponseRows(m), []string{"#", "ID", "Title", "Price", "Availability"}, true
	case *retailpb.Product:
		return productRows(m), []string{"Property", "Value"}, true
	case *retailpb.SearchRequest:
		return searchRequestRows(m), []string{"Property", "Value"}, true
	case *retailpb.SetInventoryRequest:
		rows := productRows(m.GetInventory())
		rows = append(rows,
			[]string{"Set Mask", strings.Join(m.GetSetMask().GetPaths(), ", ")},
			[]string{"Allow Missing", strconv.FormatBool(m.GetAllowMissing())},
			[]string{"Set Time", m.GetSetTime().AsTime().String()},
		)

		return rows, []string{"Property", "Value"}, true
	default:
		return nil, nil, false
	}
}

func searchResponseRows(resp *retailpb.SearchResponse) [][]string {
	rows := make([][]string, 0, len(resp.GetResults()))

	for i, result := range resp.GetResults() {
		product := result.GetProduct()
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			result.GetId(),
			valueOrNA(product.GetTitle()),
			FormatPrice(product.GetPriceInfo()),
			EnumTitle(product.GetAvailability().String()),
		})
	}

	return rows
}

func productRows(product *retailpb.Product) [][]string {
	places := make([]string, 0, len(product.GetFulfillmentInfo()))
	for _, info := range product.GetFulfillmentInfo() {
		places = append(places, fmt.Sprintf("%s: %s", info.GetType(), strings.Join(info.GetPlaceIds(), ", ")))
	}

	return [][]string{
		{"Name", valueOrNA(product.GetName())},
		{"ID", valueOrNA(product.GetId())},
		{"Title", valueOrNA(product.GetTitle())},
		{"Type", EnumTitle(product.GetType().String())},
		{"Availability", EnumTitle(product.GetAvailability().String())},
		{"Price", FormatPrice(product.GetPriceInfo())},
		{"Fulfillment", valueOrNA(strings.Join(places, "; "))},
	}
}

func searchRequestRows(req *retailpb.SearchRequest) [][]string {
	facets := make([]string, 0, len(req.GetFacetSpecs()))
	for _, spec := range req.GetFacetSpecs() {
		facets = append(facets, spec.GetFacetKey().GetKey())
	}

	return [][]string{
		{"Placement", req.GetPlacement()},
		{"Query", req.GetQuery()},
		{"Visitor ID", req.GetVisitorId()},
		{"Page Size", strconv.Itoa(int(req.GetPageSize()))},
		{"Order By", valueOrNA(req.GetOrderBy())},
		{"Filter", valueOrNA(req.GetFilter())},
		{"Facets", valueOrNA(strings.Join(facets, ", "))},
	}
}

// FormatPrice renders a price with its currency, e.g. "15.00 USD".
func FormatPrice(info *retailpb.PriceInfo) string {
	if info == nil {
		return notAvailable
	}

	return fmt.Sprintf("%.2f %s", info.GetPrice(), info.GetCurrencyCode())
}

// EnumTitle renders a protobuf enum name such as IN_STOCK as "In Stock".
func EnumTitle(name string) string {
	if name == "" || strings.HasSuffix(name, "_UNSPECIFIED") {
		return notAvailable
	}

	return cases.Title(language.English).String(strings.ReplaceAll(strings.ToLower(name), "_", " "))
}

func valueOrNA(value string) string {
	if value == "" {
		return notAvailable
	}

	return value
}
