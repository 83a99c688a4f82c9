package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func adminActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleAdmin)
	require.NoError(t, err)
	return actor
}

func customerActor(t *testing.T, id kernel.UUID) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(id, kernel.RoleCustomer)
	require.NoError(t, err)
	return actor
}

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func address(t *testing.T) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress("12 Jalan Merdeka", "Jakarta", "10110", "ID")
	require.NoError(t, err)
	return a
}

func productWithStock(t *testing.T, id kernel.UUID, priceMinor int64, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(id, "item", money(t, priceMinor), stock)
	require.NoError(t, err)
	return p
}

func orderInStatus(t *testing.T, status order.Status, items ...order.LineItem) *order.Order {
	t.Helper()
	if len(items) == 0 {
		item, err := order.NewLineItem(kernel.NewUUID(), 2, money(t, 10000))
		require.NoError(t, err)
		items = []order.LineItem{item}
	}
	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(),
		time.Now().UTC(), status, items, nil, nil, false)
	require.NoError(t, err)
	return o
}

func pendingPayment(t *testing.T, orderID kernel.UUID, amountMinor int64) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(kernel.NewUUID(), orderID,
		payment.MethodBankTransfer, money(t, amountMinor), "uploads/proof.jpg", time.Now().UTC())
	require.NoError(t, err)
	return p
}
