package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

type OrderDTO struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	VendorID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Items          []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Total          int64          `gorm:"not null"`
	Status         string         `gorm:"type:varchar(32);not null"`
	PaymentStatus  string         `gorm:"type:varchar(32);not null"`
	DeliveryStatus string         `gorm:"type:varchar(32);not null"`
	Address        AddressDTO     `gorm:"embedded;embeddedPrefix:address_"`
	CreatedAt      time.Time      `gorm:"not null;index"`
	UpdatedAt      time.Time      `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type AddressDTO struct {
	Label string `gorm:"type:varchar(64);not null"`
	Line1 string `gorm:"type:varchar(255);not null"`
	Line2 string `gorm:"type:varchar(255);not null;default:''"`
	City  string `gorm:"type:varchar(128);not null"`
	Zip   string `gorm:"type:varchar(32);not null"`
}

type OrderItemDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"primaryKey;autoIncrement:false"`
	MenuItemID uuid.UUID `gorm:"type:uuid;not null"`
	Name       string    `gorm:"type:varchar(255);not null"`
	UnitPrice  int64     `gorm:"not null"`
	Quantity   int       `gorm:"not null"`
	Note       string    `gorm:"type:varchar(200);not null;default:''"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, li := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    orderID,
			Position:   i,
			MenuItemID: li.MenuItemID().Bytes(),
			Name:       li.Name(),
			UnitPrice:  li.UnitPrice().Amount(),
			Quantity:   li.Quantity(),
			Note:       li.Note(),
		})
	}

	address := o.Address()
	return OrderDTO{
		ID:             orderID,
		CustomerID:     o.CustomerID().Bytes(),
		VendorID:       o.VendorID().Bytes(),
		Items:          items,
		Total:          o.Total().Amount(),
		Status:         o.Status().String(),
		PaymentStatus:  o.PaymentStatus().String(),
		DeliveryStatus: o.DeliveryStatus().String(),
		Address: AddressDTO{
			Label: address.Label(),
			Line1: address.Line1(),
			Line2: address.Line2(),
			City:  address.City(),
			Zip:   address.Zip(),
		},
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		li, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, li)
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	deliveryStatus, err := order.ParseDeliveryStatus(dto.DeliveryStatus)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(
		dto.Address.Label, dto.Address.Line1, dto.Address.Line2, dto.Address.City, dto.Address.Zip,
	)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customerID, vendorID, items, total, status, paymentStatus, deliveryStatus, address,
		dto.CreatedAt, dto.UpdatedAt,
	)
}

func lineItemToDomain(dto OrderItemDTO) (order.LineItem, error) {
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(menuItemID, dto.Name, unitPrice, dto.Quantity, dto.Note)
}
