package paymentrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

type PaymentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Gateway        string    `gorm:"type:varchar(32);not null"`
	Method         string    `gorm:"type:varchar(32);not null"`
	TransactionRef string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Amount         int64     `gorm:"not null"`
	Status         string    `gorm:"type:varchar(32);not null"`
	FailureReason  string    `gorm:"type:text;not null;default:''"`
	RefundReason   string    `gorm:"type:text;not null;default:''"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:             p.ID().Bytes(),
		OrderID:        p.OrderID().Bytes(),
		Gateway:        p.Gateway().String(),
		Method:         p.Method().String(),
		TransactionRef: p.TransactionRef().String(),
		Amount:         p.Amount().Amount(),
		Status:         p.Status().String(),
		FailureReason:  p.FailureReason(),
		RefundReason:   p.RefundReason(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	gateway, err := payment.ParseGateway(dto.Gateway)
	if err != nil {
		return nil, err
	}

	method, err := payment.ParseMethod(dto.Method)
	if err != nil {
		return nil, err
	}

	ref, err := payment.TransactionRefFromString(dto.TransactionRef)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	status, err := payment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id, orderID, gateway, method, ref, amount, status, dto.FailureReason, dto.RefundReason,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
