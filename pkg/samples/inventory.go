package samples

import (
	"context"
	"fmt"
	"time"

	"github.com/fivetwenty-io/retail-samples/internal/constants"
	"github.com/fivetwenty-io/retail-samples/pkg/retail"
)

// SetInventory submits the inventory update for productName. The operation
// is not polled: unless await is set, the runner only sleeps for the
// configured wait so that a following GetProduct usually sees the change.
func (r *Runner) SetInventory(ctx context.Context, productName string, await bool) error {
	req := retail.NewSetInventoryRequest(productName, r.now())
	if err := r.printer.Message("Set inventory request", req); err != nil {
		return err
	}

	op, err := r.client.Products().SetInventory(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to set inventory of %s: %w", productName, err)
	}

	r.logger.Info("set inventory operation started", map[string]interface{}{
		"operation": op.Name(),
		"product":   productName,
	})

	if await {
		r.printer.Messagef("Set inventory, waiting for operation %s.", op.Name())

		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("set inventory operation %s failed: %w", op.Name(), err)
		}

		return nil
	}

	r.printer.Messagef("Set inventory, wait %d seconds.", int(r.wait/time.Second))

	return r.sleep(ctx, r.wait)
}

// RunSetInventory is the complete inventory tutorial: create the product,
// update its inventory, print it, and delete it again.
func (r *Runner) RunSetInventory(ctx context.Context, await bool) error {
	productName := r.names.Product(constants.InventoryProductID)

	if _, err := r.CreateProduct(ctx, constants.InventoryProductID); err != nil {
		if !retail.IsAlreadyExists(err) {
			return err
		}

		r.logger.Warn("product already exists, reusing it", map[string]interface{}{
			"product": productName,
		})
	}

	err := r.SetInventory(ctx, productName, await)
	if err == nil {
		_, err = r.GetProduct(ctx, productName)
	}

	if deleteErr := r.DeleteProduct(ctx, productName); deleteErr != nil && err == nil {
		err = deleteErr
	}

	return err
}
