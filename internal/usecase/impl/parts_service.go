package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// partsService implements the PartsUsecase interface.
type partsService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// PartsServiceParams holds dependencies for partsService, injected by Fx.
type PartsServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewPartsService is the constructor for partsService.
func NewPartsService(params PartsServiceParams) usecase.PartsUsecase {
	return &partsService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *partsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddPartsOrder places a parts order against a vehicle. The total cost is
// computed from the lines once, at creation, and never recalculated. When no
// order number is supplied the next sequence number for the VIN is used.
func (srv *partsService) AddPartsOrder(ctx context.Context, input usecase.AddPartsOrderInput) (*entity.PartsOrder, error) {
	srv.log(ctx).Info("Adding parts order", slog.String("vin", input.VIN), slog.String("vendor", input.VendorName))

	parts, err := partsFromInput(input.Parts)
	if err != nil {
		return nil, err
	}

	order := &entity.PartsOrder{
		OrderNumber: input.OrderNumber,
		VIN:         input.VIN,
		VendorName:  input.VendorName,
		TotalCost:   entity.ComputeTotalCost(parts),
		Parts:       parts,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewVehicleRepository().FindByVIN(ctx, input.VIN); err != nil {
			if errors.Is(err, repository.ErrVehicleNotFound) {
				return errors.Wrap(domainerrors.ErrVehicleNotFound, input.VIN)
			}

			return errors.Wrap(err, "failed to find vehicle")
		}

		if _, err := repoFactory.NewVendorRepository().FindByName(ctx, input.VendorName); err != nil {
			if errors.Is(err, repository.ErrVendorNotFound) {
				return errors.Wrap(domainerrors.ErrVendorNotFound, input.VendorName)
			}

			return errors.Wrap(err, "failed to find vendor")
		}

		partsRepo := repoFactory.NewPartsOrderRepository()

		if order.OrderNumber == "" {
			count, err := partsRepo.CountByVIN(ctx, input.VIN)
			if err != nil {
				return errors.Wrap(err, "failed to count parts orders")
			}
			order.OrderNumber = fmt.Sprintf("%s-%03d", input.VIN, count+1)
		}

		if err := partsRepo.CreateOrder(ctx, order); err != nil {
			if errors.Is(err, repository.ErrDuplicateOrderNumber) {
				return errors.Wrap(domainerrors.ErrOrderNumberInUse, order.OrderNumber)
			}

			return errors.Wrap(err, "failed to create parts order")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add parts order", slog.String("vin", input.VIN), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Debug("Parts order added", slog.String("orderNumber", order.OrderNumber), slog.Float64("totalCost", order.TotalCost))

	return order, nil
}

// UpdatePartStatus moves one part line forward in its lifecycle. Backward
// moves are rejected; a concurrent move of the same part surfaces as a
// conflict rather than a silent overwrite.
func (srv *partsService) UpdatePartStatus(ctx context.Context, input usecase.UpdatePartStatusInput) (*entity.Part, error) {
	srv.log(ctx).Info("Updating part status",
		slog.String("orderNumber", input.OrderNumber),
		slog.String("part", input.VendorPartsNumber),
		slog.String("status", input.Status))

	target := entity.PartStatus(input.Status)
	if !target.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown part status %q", input.Status)
	}

	var part *entity.Part

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		partsRepo := repoFactory.NewPartsOrderRepository()

		found, err := partsRepo.FindPart(ctx, input.OrderNumber, input.VendorPartsNumber)
		if err != nil {
			if errors.Is(err, repository.ErrPartNotFound) {
				return errors.Wrap(domainerrors.ErrPartNotFound, input.VendorPartsNumber)
			}

			return errors.Wrap(err, "failed to find part")
		}

		if !found.Status.CanTransitionTo(target) {
			return errors.Wrapf(domainerrors.ErrInvalidStatusTransition,
				"%s to %s", found.Status, target)
		}

		if err := partsRepo.UpdatePartStatus(ctx, input.OrderNumber, input.VendorPartsNumber, found.Status, target); err != nil {
			if errors.Is(err, repository.ErrStatusConflict) {
				return errors.Wrap(domainerrors.ErrConflict, "part status changed concurrently")
			}

			return errors.Wrap(err, "failed to update part status")
		}

		found.Status = target
		part = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update part status", slog.String("orderNumber", input.OrderNumber), slog.Any("error", err))

		return nil, err
	}

	return part, nil
}

// AddVendor registers a new parts vendor.
func (srv *partsService) AddVendor(ctx context.Context, input usecase.AddVendorInput) (*entity.Vendor, error) {
	srv.log(ctx).Info("Adding vendor", slog.String("name", input.Name))

	vendor := &entity.Vendor{
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
		Address: entity.Address{
			Street:     input.Street,
			City:       input.City,
			State:      input.State,
			PostalCode: input.PostalCode,
		},
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewVendorRepository().Create(ctx, vendor); err != nil {
			if errors.Is(err, repository.ErrDuplicateVendor) {
				return errors.Wrap(domainerrors.ErrVendorAlreadyExists, vendor.Name)
			}

			return errors.Wrap(err, "failed to create vendor")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add vendor", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	return vendor, nil
}

// ListVendors retrieves every registered vendor.
func (srv *partsService) ListVendors(ctx context.Context) ([]*entity.Vendor, error) {
	var vendors []*entity.Vendor

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewVendorRepository().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list vendors")
		}
		vendors = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list vendors", slog.Any("error", err))

		return nil, err
	}

	return vendors, nil
}

// partsFromInput validates the order lines and defaults every new line to
// the Ordered status.
func partsFromInput(inputs []usecase.PartInput) ([]entity.Part, error) {
	if len(inputs) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "a parts order needs at least one line")
	}

	seen := make(map[string]bool, len(inputs))
	parts := make([]entity.Part, 0, len(inputs))
	for _, in := range inputs {
		if in.VendorPartsNumber == "" {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "vendor parts number is required")
		}
		if seen[in.VendorPartsNumber] {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "duplicate part %q in order", in.VendorPartsNumber)
		}
		seen[in.VendorPartsNumber] = true

		if in.Quantity <= 0 {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "quantity for part %q must be positive", in.VendorPartsNumber)
		}
		if in.UnitPrice <= 0 {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unit price for part %q must be positive", in.VendorPartsNumber)
		}

		parts = append(parts, entity.Part{
			VendorPartsNumber: in.VendorPartsNumber,
			Description:       in.Description,
			Quantity:          in.Quantity,
			UnitPrice:         in.UnitPrice,
			Status:            entity.PartStatusOrdered,
		})
	}

	return parts, nil
}
