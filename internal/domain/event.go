package domain

import "time"

// EventKind names a delivery event published to downstream consumers.
type EventKind string

// List of published event kinds
const (
	EventTransferInitiated EventKind = "transfer.initiated"
	EventTransferConfirmed EventKind = "transfer.confirmed"
	EventTransferExpired   EventKind = "transfer.expired"
	EventStatusChanged     EventKind = "package.status_changed"
)

// Event is a fact about a package that other services may react to.
type Event struct {
	Kind        EventKind
	PackageID   int64
	CourierID   int64
	ToCourierID int64
	Status      DeliveryStatus
	OccurredAt  time.Time
}

// IntakeKind names an inbound package lifecycle event.
type IntakeKind string

// List of inbound event kinds
const (
	IntakePackageCreated    IntakeKind = "package.created"
	IntakePackageAssigned   IntakeKind = "package.assigned"
	IntakePackagePaid       IntakeKind = "package.paid"
	IntakeCourierRegistered IntakeKind = "courier.registered"
)

// IntakeEvent is an inbound lifecycle event produced by the advertisement and payment services.
type IntakeEvent struct {
	Kind       IntakeKind
	PackageID  int64
	CourierID  int64
	Paid       bool
	Package    *PackageSnapshot
	Courier    *Courier
	OccurredAt time.Time
}
