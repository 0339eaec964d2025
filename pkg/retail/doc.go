// Package retail provides the interfaces, configuration, and request builders
// used by the Retail API tutorials.
//
// # Overview
//
// The package defines small client interfaces (ProductsClient, SearchClient,
// BucketsClient) over the Google Cloud Retail API v2 and Cloud Storage. A
// concrete implementation is provided by the retailclient package, which wires
// endpoints, credentials, transport retries, and gRPC interceptors. Most
// consumers should import retailclient to construct a client and then pass it
// to the samples package.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/retail-samples/pkg/retail"
//	  "github.com/fivetwenty-io/retail-samples/pkg/retailclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := retailclient.New(ctx, &retail.Config{ProjectNumber: "123456789"})
//	  if err != nil { log.Fatal(err) }
//	  defer cli.Close()
//
//	  names := retail.NewResourceNames("123456789")
//	  req := retail.NewSearchRequest(names.Placement, "Tee", retail.WithFacetKey("colorFamilies"))
//	  resp, err := cli.Search().Search(ctx, req)
//	  if err != nil { log.Fatal(err) }
//	  _ = resp
//	}
//
// # Resource names
//
// Every tutorial works against the default catalog of a project. Use
// NewResourceNames to derive the catalog, branch, placement and product names
// from a project number instead of formatting paths by hand.
//
// # Errors
//
// Use IsPermissionDenied, IsNotFound and IsBucketNotEmpty to classify errors
// returned by the clients. They understand gRPC status errors, Google API HTTP
// errors and the sentinel errors of this package, including wrapped ones.
package retail
