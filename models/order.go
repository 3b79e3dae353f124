package models

import "time"

// OrderStatus represents all possible states of a delivery order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusAssigned  OrderStatus = "assigned"
	StatusPickedUp  OrderStatus = "picked_up"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// Location is a WGS84 coordinate pair used for pickup and delivery points
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Order struct {
	ID               uint        `json:"id" gorm:"primaryKey"`
	OrderNumber      string      `json:"orderNumber" gorm:"uniqueIndex;not null"`
	CustomerName     string      `json:"customerName" gorm:"not null"`
	CustomerPhone    string      `json:"customerPhone" gorm:"not null"`
	PickupAddress    string      `json:"pickupAddress" gorm:"not null"`
	PickupLocation   Location    `json:"pickupLocation" gorm:"embedded;embeddedPrefix:pickup_"`
	DeliveryAddress  string      `json:"deliveryAddress" gorm:"not null"`
	DeliveryLocation Location    `json:"deliveryLocation" gorm:"embedded;embeddedPrefix:delivery_"`
	Status           OrderStatus `json:"status" gorm:"not null;default:'pending'"`
	AssignedToID     *uint       `json:"assignedToId,omitempty" gorm:"index"`
	AssignedTo       *User       `json:"assignedTo,omitempty" gorm:"foreignKey:AssignedToID"`
	Notes            string      `json:"notes,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}
