// Package paymentrepo provides data transfer objects and mapping functions for payment persistence.
package paymentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payment aggregates.
// The order_id index serves the active-payment lookup used to enforce one
// live payment per order.
type PaymentDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	Method       int
	Amount       int64
	SubmittedAt  time.Time
	ProofRef     string
	Status       int
	RejectReason string
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment domain aggregate to its database representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:           aggregate.ID().Bytes(),
		OrderID:      aggregate.OrderID().Bytes(),
		Method:       int(aggregate.Method()),
		Amount:       aggregate.Amount().Amount(),
		SubmittedAt:  aggregate.SubmittedAt(),
		ProofRef:     aggregate.ProofRef(),
		Status:       int(aggregate.Status()),
		RejectReason: aggregate.RejectReason(),
	}
}

// toDomain converts a database DTO to a payment domain aggregate using RestorePayment.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id, orderID,
		payment.Method(dto.Method),
		amount,
		dto.SubmittedAt,
		dto.ProofRef,
		payment.Status(dto.Status),
		dto.RejectReason,
	)
}
