package handlers

import "time"

type courierDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

type pointDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type packageDTO struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Weight          float64   `json:"weight"`
	Length          float64   `json:"length"`
	Width           float64   `json:"width"`
	Height          float64   `json:"height"`
	Quantity        int       `json:"quantity"`
	DeliveryStatus  string    `json:"deliveryStatus"`
	IsPaid          bool      `json:"isPaid"`
	Prioritaire     bool      `json:"prioritaire"`
	CourierIDs      []int64   `json:"courierIds"`
	AdvertisementID *int64    `json:"advertisementId,omitempty"`
	Origin          *pointDTO `json:"origin,omitempty"`
	Destination     *pointDTO `json:"destination,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type transferDTO struct {
	ID               int64      `json:"id"`
	PackageID        int64      `json:"packageId"`
	FromCourierID    int64      `json:"fromCourierId"`
	ToCourierID      int64      `json:"toCourierId"`
	Address          string     `json:"address"`
	PostalCode       string     `json:"postalCode"`
	City             string     `json:"city"`
	Drop             *pointDTO  `json:"drop,omitempty"`
	TransferCode     string     `json:"transferCode,omitempty"`
	Livreur1Progress *float64   `json:"livreur1Progress"`
	Livreur2Progress *float64   `json:"livreur2Progress"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"createdAt"`
	ClosedAt         *time.Time `json:"closedAt,omitempty"`
}

type progressDTO struct {
	PackageID        int64    `json:"packageId"`
	TransferID       int64    `json:"transferId"`
	Status           string   `json:"status"`
	Livreur1Progress *float64 `json:"livreur1Progress"`
	Livreur2Progress *float64 `json:"livreur2Progress"`
}

type statusResponse struct {
	PackageID int64        `json:"packageId"`
	Status    string       `json:"status"`
	Transfer  *transferDTO `json:"transfer,omitempty"`
}

// dropFields is shared by the transfer and status requests.
type dropFields struct {
	Address    string   `json:"address"`
	PostalCode string   `json:"postalCode"`
	City       string   `json:"city"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

type updateStatusRequest struct {
	Status      string `json:"status"`
	CourierID   *int64 `json:"courierId,omitempty"`
	ToCourierID *int64 `json:"toCourierId,omitempty"`
	dropFields
}

type transferRequest struct {
	FromCourierID *int64 `json:"fromCourierId,omitempty"`
	ToCourierID   int64  `json:"toCourierId"`
	dropFields
}

type confirmTransferRequest struct {
	ToCourierID *int64 `json:"toCourierId,omitempty"`
	Code        string `json:"code"`
}
