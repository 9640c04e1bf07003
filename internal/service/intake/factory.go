package intake

import (
	"context"
	"strings"

	"ecodeli-delivery/internal/domain"
)

type actionFunc func(context.Context, domain.IntakeEvent) error

type actionFactory struct {
	byKind map[domain.IntakeKind]actionFunc
}

func newActionFactory(onCreated, onAssigned, onPaid, onCourier actionFunc) *actionFactory {
	return &actionFactory{
		byKind: map[domain.IntakeKind]actionFunc{
			domain.IntakePackageCreated:    onCreated,
			domain.IntakePackageAssigned:   onAssigned,
			domain.IntakePackagePaid:       onPaid,
			domain.IntakeCourierRegistered: onCourier,
		},
	}
}

func (f *actionFactory) get(kind domain.IntakeKind) (actionFunc, bool) {
	kind = domain.IntakeKind(strings.ToLower(strings.TrimSpace(string(kind))))
	fn, ok := f.byKind[kind]
	return fn, ok
}
