package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creation is all-or-nothing: the order, its line items, and the inventory
// decrement for every product commit together or not at all.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), customerID, items)
//
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInsufficientStock) {
//	    // the error names the first product that could not be reserved
//	    return
//	}
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a CheckoutUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
//
// Locks all referenced products (the repository acquires the locks in
// ascending product id), reserves stock for each line, snapshots unit prices
// after any active discount, and persists the order in Created status. The
// first product that cannot cover its quantity fails the whole command with
// InsufficientStockError and no stock change.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	items := cmd.Items()
	productIDs := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := uow.ProductRepository().GetForUpdate(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	productByID := make(map[kernel.UUID]int, len(products))
	for i, p := range products {
		productByID[p.ID()] = i
	}

	now := time.Now().UTC()
	discounts, err := uow.DiscountRepository().GetActiveForProducts(ctx, productIDs, now)
	if err != nil {
		return nil, err
	}

	lineItems := make([]order.LineItem, 0, len(items))
	for _, item := range items {
		p := products[productByID[item.ProductID]]
		if err = p.Reserve(item.Quantity); err != nil {
			return nil, err
		}

		unitPrice := p.UnitPrice()
		if d, ok := discounts[item.ProductID]; ok && d.IsActiveAt(now) {
			unitPrice = d.Apply(unitPrice)
		}

		lineItem, err := order.NewLineItem(item.ProductID, item.Quantity, unitPrice)
		if err != nil {
			return nil, err
		}
		lineItems = append(lineItems, lineItem)
	}

	created, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), lineItems, now)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}
	for _, p := range products {
		if err = uow.ProductRepository().Update(ctx, p); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
