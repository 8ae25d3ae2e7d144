// Package orderrepo persists parent order aggregates. Sub-order references
// are not stored on the order row; they live in the sub_orders table and
// are rehydrated by position when the aggregate is loaded.
package orderrepo

import (
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database row for a parent order.
type OrderDTO struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID           uuid.UUID  `gorm:"type:uuid;index"`
	Address              AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	PaymentMethod        string
	PaymentStatus        string
	PaymentTransactionID string
	Note                 string
	TotalAmount          int64
	TotalQuantity        int
	Status               string `gorm:"index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is the delivery address embedded in the order row.
type AddressDTO struct {
	Name         string
	Line         string
	City         string
	State        string
	Pincode      string
	MobileNumber string
}

func fromDomain(aggregate *order.Order) OrderDTO {
	address := aggregate.Address()
	payment := aggregate.Payment()

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Address: AddressDTO{
			Name:         address.Name(),
			Line:         address.AddressLine(),
			City:         address.City(),
			State:        address.State(),
			Pincode:      address.Pincode(),
			MobileNumber: address.MobileNumber(),
		},
		PaymentMethod:        string(payment.Method()),
		PaymentStatus:        string(payment.Status()),
		PaymentTransactionID: payment.TransactionID(),
		Note:                 aggregate.Note(),
		TotalAmount:          aggregate.TotalAmount().Int64(),
		TotalQuantity:        aggregate.TotalQuantity(),
		Status:               aggregate.Status().String(),
	}
}

func toDomain(dto OrderDTO, subOrderIDs []kernel.UUID) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(
		dto.Address.Name, dto.Address.Line, dto.Address.City,
		dto.Address.State, dto.Address.Pincode, dto.Address.MobileNumber)
	if err != nil {
		return nil, err
	}

	payment, err := order.NewPaymentInfo(dto.PaymentMethod, dto.PaymentStatus, dto.PaymentTransactionID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customerID, address, payment, dto.Note,
		kernel.Money(dto.TotalAmount), dto.TotalQuantity, status, subOrderIDs)
}
