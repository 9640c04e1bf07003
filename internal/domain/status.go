package domain

// DeliveryStatus is the lifecycle status of a package.
type DeliveryStatus string

// List of package delivery statuses
const (
	StatusPending     DeliveryStatus = "en attente"
	StatusPickedUp    DeliveryStatus = "pris en charge"
	StatusInTransit   DeliveryStatus = "en transit"
	StatusDelivered   DeliveryStatus = "livré"
	StatusTransferred DeliveryStatus = "transféré"
)

var allowedStatuses = [...]DeliveryStatus{
	StatusPending, StatusPickedUp, StatusInTransit, StatusDelivered, StatusTransferred,
}

// statuses a courier may request through the status endpoint
var courierStatuses = [...]DeliveryStatus{
	StatusPickedUp, StatusInTransit, StatusDelivered, StatusTransferred,
}

// Valid checks if the DeliveryStatus is known.
func (s DeliveryStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// CourierSettable reports whether a courier may request this status.
func (s DeliveryStatus) CourierSettable() bool {
	for _, v := range courierStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s DeliveryStatus) Terminal() bool {
	return s == StatusDelivered
}

// TransferStatus is the state of a transfer record.
type TransferStatus string

// List of transfer record states
const (
	TransferOpen      TransferStatus = "open"
	TransferConfirmed TransferStatus = "confirmed"
	TransferExpired   TransferStatus = "expired"
)

// CourierStatus represents the status of a courier account.
type CourierStatus string

// List of courier statuses
const (
	CourierActive    CourierStatus = "active"
	CourierSuspended CourierStatus = "suspended"
)

// Valid checks if the CourierStatus is valid
func (s CourierStatus) Valid() bool {
	return s == CourierActive || s == CourierSuspended
}
