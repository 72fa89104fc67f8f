package commands

import (
	"context"
	"errors"

	"sokoni/internal/core/domain/model/order"
	"sokoni/internal/pkg/errs"
)

// cancelRepos is the slice of a unit of work a cancellation cascade needs.
type cancelRepos interface {
	DeliveryRepoFactory
	ProductRepoFactory
}

// cascadeOrderCancellation restores the cancelled order's stock and fails
// its delivery. Runs inside the caller's transaction, after the order
// aggregate has moved to cancelled.
func cascadeOrderCancellation(ctx context.Context, repos cancelRepos, cancelled *order.Order) error {
	for _, item := range cancelled.Items() {
		if err := repos.ProductRepository().RestoreStock(ctx, item.ProductID(), item.Quantity()); err != nil {
			return err
		}
	}

	d, err := repos.DeliveryRepository().GetByOrderID(ctx, cancelled.ID())
	if err != nil {
		// Orders predating delivery creation have nothing to fail.
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	if d.Status().IsTerminal() {
		return nil
	}

	prior := d.Status()
	if err = d.MarkFailed(d.Rider()); err != nil {
		return err
	}
	return repos.DeliveryRepository().UpdateStatusFrom(ctx, d, prior)
}
