package retail

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/retail-samples/internal/constants"
)

// ResourceNames holds the resource paths of a project's default catalog.
type ResourceNames struct {
	Project       string `json:"project"        yaml:"project"`
	Catalog       string `json:"catalog"        yaml:"catalog"`
	Branch        string `json:"branch"         yaml:"branch"`
	Placement     string `json:"placement"      yaml:"placement"`
	ServingConfig string `json:"serving_config" yaml:"serving_config"`
}

// NewResourceNames derives the default catalog paths for a project number.
func NewResourceNames(projectNumber string) ResourceNames {
	catalog := fmt.Sprintf(constants.CatalogTemplate, projectNumber)

	return ResourceNames{
		Project:       projectNumber,
		Catalog:       catalog,
		Branch:        catalog + constants.DefaultBranchSegment,
		Placement:     catalog + constants.DefaultPlacementSegment,
		ServingConfig: catalog + constants.DefaultServingConfigSegment,
	}
}

// Product returns the full resource name of a product in the default branch.
func (n ResourceNames) Product(productID string) string {
	return n.Branch + constants.ProductsSegment + productID
}

// ProductID extracts the product id from a full product name. Values that are
// not product names are returned unchanged.
func ProductID(name string) string {
	if idx := strings.LastIndex(name, constants.ProductsSegment); idx >= 0 {
		return name[idx+len(constants.ProductsSegment):]
	}

	return name
}

// ResolveProductName accepts either a product id or a full product name.
func (n ResourceNames) ResolveProductName(idOrName string) string {
	if strings.HasPrefix(idOrName, "projects/") {
		return idOrName
	}

	return n.Product(idOrName)
}
