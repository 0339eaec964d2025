package output_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"cloud.google.com/go/retail/apiv2/retailpb"
	"github.com/fivetwenty-io/retail-samples/internal/constants"
	"github.com/fivetwenty-io/retail-samples/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleProduct() *retailpb.Product {
	return &retailpb.Product{
		Name:         "projects/1/locations/global/catalogs/default_catalog/branches/default_branch/products/p1",
		Id:           "p1",
		Title:        "Nest Mini",
		Availability: retailpb.Product_IN_STOCK,
		PriceInfo:    &retailpb.PriceInfo{Price: 30, CurrencyCode: "USD"},
	}
}

func TestNewPrinter_InvalidFormat(t *testing.T) {
	t.Parallel()

	_, err := output.NewPrinter("xml", &bytes.Buffer{})
	require.ErrorIs(t, err, constants.ErrInvalidOutputFormat)
}

func TestNewPrinter_DefaultsToText(t *testing.T) {
	t.Parallel()

	printer, err := output.NewPrinter("", &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, constants.FormatText, printer.Format())
}

func TestPrinter_TextMessage(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	printer, err := output.NewPrinter(constants.FormatText, &out)
	require.NoError(t, err)

	require.NoError(t, printer.Message("Get product response", sampleProduct()))
	assert.True(t, strings.HasPrefix(out.String(), "Get product response: "))
	assert.Contains(t, out.String(), "Nest Mini")
}

func TestPrinter_JSONMessage(t *testing.T) {
	t.Parallel()

	var out, info bytes.Buffer

	printer, err := output.NewPrinterWithInfo(constants.FormatJSON, &out, &info)
	require.NoError(t, err)

	printer.Messagef("working")
	require.NoError(t, printer.Message("ignored label", sampleProduct()))

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "p1", doc["id"])
	assert.Equal(t, "IN_STOCK", doc["availability"])
	assert.Equal(t, "working\n", info.String())
}

func TestPrinter_YAMLSeparatesDocuments(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	printer, err := output.NewPrinterWithInfo(constants.FormatYAML, &out, &bytes.Buffer{})
	require.NoError(t, err)

	require.NoError(t, printer.Message("request", &retailpb.SearchRequest{Query: "Tee"}))
	require.NoError(t, printer.Message("response", sampleProduct()))

	decoder := yaml.NewDecoder(&out)

	var first, second map[string]interface{}
	require.NoError(t, decoder.Decode(&first))
	require.NoError(t, decoder.Decode(&second))
	assert.Equal(t, "Tee", first["query"])
	assert.Equal(t, "Nest Mini", second["title"])
}

func TestPrinter_TableMessage(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	printer, err := output.NewPrinter(constants.FormatTable, &out)
	require.NoError(t, err)

	resp := &retailpb.SearchResponse{
		Results: []*retailpb.SearchResponse_SearchResult{
			{Id: "p1", Product: sampleProduct()},
		},
	}

	require.NoError(t, printer.Message("Search response", resp))
	assert.Contains(t, out.String(), "Search response:")
	assert.Contains(t, out.String(), "Nest Mini")
	assert.Contains(t, out.String(), "30.00 USD")
	assert.Contains(t, out.String(), "In Stock")
}

func TestPrinter_Value(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	printer, err := output.NewPrinter(constants.FormatJSON, &out)
	require.NoError(t, err)

	require.NoError(t, printer.Value("report", map[string]int{"deleted": 3}))
	assert.JSONEq(t, `{"deleted": 3}`, out.String())
}

func TestEnumTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "In Stock", output.EnumTitle(retailpb.Product_IN_STOCK.String()))
	assert.Equal(t, "Out Of Stock", output.EnumTitle(retailpb.Product_OUT_OF_STOCK.String()))
	assert.Equal(t, "N/A", output.EnumTitle(retailpb.Product_AVAILABILITY_UNSPECIFIED.String()))
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "N/A", output.FormatPrice(nil))
	assert.Equal(t, "15.00 USD", output.FormatPrice(&retailpb.PriceInfo{Price: 15, CurrencyCode: "USD"}))
}
