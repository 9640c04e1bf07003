package handlers

import (
	"context"

	"ecodeli-delivery/internal/domain"
	"ecodeli-delivery/internal/service/courier"
	"ecodeli-delivery/internal/service/delivery"
	"ecodeli-delivery/internal/service/transfer"
)

type courierUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Courier, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Courier, error)
}

// NewCourierUsecase wires a courier.Service into a courierUsecase.
func NewCourierUsecase(svc *courier.Service) courierUsecase {
	return svc
}

type deliveryUsecase interface {
	UpdateStatus(ctx context.Context, cmd delivery.UpdateStatusCommand) (delivery.UpdateStatusResult, error)
	MyDeliveries(ctx context.Context, courierID int64) ([]domain.Package, error)
	PendingTransfers(ctx context.Context, courierID int64) ([]domain.Package, error)
}

// NewDeliveryUsecase wires a delivery.Service into a deliveryUsecase.
func NewDeliveryUsecase(svc *delivery.Service) deliveryUsecase {
	return svc
}

type transferUsecase interface {
	Initiate(ctx context.Context, cmd transfer.InitiateCommand) (domain.TransferRecord, error)
	Confirm(ctx context.Context, cmd transfer.ConfirmCommand) (domain.TransferRecord, error)
	Progress(ctx context.Context, packageID int64) (domain.TransferRecord, error)
}

// NewTransferUsecase wires a transfer.Service into a transferUsecase.
func NewTransferUsecase(svc *transfer.Service) transferUsecase {
	return svc
}
