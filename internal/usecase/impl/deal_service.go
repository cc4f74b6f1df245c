package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dealService implements the DealUsecase interface.
type dealService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// DealServiceParams holds dependencies for dealService, injected by Fx.
type DealServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewDealService is the constructor for dealService.
func NewDealService(params DealServiceParams) usecase.DealUsecase {
	return &dealService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *dealService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordSale closes a sale on an available vehicle. A vehicle with a prior
// sale or any pending part cannot be sold; when two requests race for the
// same vehicle the database's unique index picks the winner and the loser
// gets a conflict.
func (srv *dealService) RecordSale(ctx context.Context, input usecase.RecordSaleInput) (*entity.SaleTransaction, error) {
	srv.log(ctx).Info("Recording sale", slog.String("vin", input.VIN), slog.String("username", input.Username))

	if input.SalePrice <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "sale price must be positive")
	}

	sale := &entity.SaleTransaction{
		VIN:        input.VIN,
		Username:   input.Username,
		CustomerID: input.CustomerID,
		SalePrice:  input.SalePrice,
		SoldOn:     dateOrToday(input.SoldOn),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewVehicleRepository().FindByVIN(ctx, input.VIN); err != nil {
			if errors.Is(err, repository.ErrVehicleNotFound) {
				return errors.Wrap(domainerrors.ErrVehicleNotFound, input.VIN)
			}

			return errors.Wrap(err, "failed to find vehicle")
		}

		dealRepo := repoFactory.NewDealRepository()

		if _, err := dealRepo.FindSaleByVIN(ctx, input.VIN); err == nil {
			return errors.Wrap(domainerrors.ErrVehicleAlreadySold, input.VIN)
		} else if !errors.Is(err, repository.ErrSaleNotFound) {
			return errors.Wrap(err, "failed to check for prior sale")
		}

		open, err := repoFactory.NewPartsOrderRepository().HasOpenParts(ctx, input.VIN)
		if err != nil {
			return errors.Wrap(err, "failed to check pending parts")
		}
		if open {
			return errors.Wrap(domainerrors.ErrVehicleUnavailable, "parts still pending")
		}

		if err := dealRepo.CreateSale(ctx, sale); err != nil {
			switch {
			case errors.Is(err, repository.ErrDuplicateSale):
				// A concurrent sale won the unique index race.
				return errors.Wrap(domainerrors.ErrVehicleAlreadySold, input.VIN)
			case errors.Is(err, repository.ErrUnknownReference):
				return errors.Wrap(domainerrors.ErrValidationFailed, "unknown user or customer")
			}

			return errors.Wrap(err, "failed to create sale")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to record sale", slog.String("vin", input.VIN), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Debug("Sale recorded", slog.String("vin", input.VIN), slog.Float64("salePrice", sale.SalePrice))

	return sale, nil
}

// RecordPurchase records buying a vehicle that is already in inventory.
// At most one purchase exists per vehicle.
func (srv *dealService) RecordPurchase(ctx context.Context, input usecase.RecordPurchaseInput) (*entity.PurchaseTransaction, error) {
	srv.log(ctx).Info("Recording purchase", slog.String("vin", input.VIN), slog.String("username", input.Username))

	purchase, err := purchaseFromInput(input)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewVehicleRepository().FindByVIN(ctx, input.VIN); err != nil {
			if errors.Is(err, repository.ErrVehicleNotFound) {
				return errors.Wrap(domainerrors.ErrVehicleNotFound, input.VIN)
			}

			return errors.Wrap(err, "failed to find vehicle")
		}

		return createPurchase(ctx, repoFactory.NewDealRepository(), purchase)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to record purchase", slog.String("vin", input.VIN), slog.Any("error", err))

		return nil, err
	}

	return purchase, nil
}

// AcquireVehicle adds a vehicle and records its purchase in one transaction,
// so a rejected purchase never leaves an orphaned vehicle behind.
func (srv *dealService) AcquireVehicle(ctx context.Context, input usecase.AcquireVehicleInput) (*entity.PurchaseTransaction, error) {
	srv.log(ctx).Info("Acquiring vehicle", slog.String("vin", input.Vehicle.VIN))

	vehicle, err := vehicleFromInput(input.Vehicle)
	if err != nil {
		return nil, err
	}

	purchaseInput := input.Purchase
	purchaseInput.VIN = vehicle.VIN

	purchase, err := purchaseFromInput(purchaseInput)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := checkLookups(ctx, repoFactory.NewLookupRepository(), vehicle); err != nil {
			return err
		}

		if err := repoFactory.NewVehicleRepository().Create(ctx, vehicle); err != nil {
			if errors.Is(err, repository.ErrDuplicateVIN) {
				return errors.Wrap(domainerrors.ErrVINAlreadyExists, vehicle.VIN)
			}

			return errors.Wrap(err, "failed to create vehicle")
		}

		return createPurchase(ctx, repoFactory.NewDealRepository(), purchase)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to acquire vehicle", slog.String("vin", input.Vehicle.VIN), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Debug("Vehicle acquired", slog.String("vin", vehicle.VIN), slog.Float64("purchasePrice", purchase.PurchasePrice))

	return purchase, nil
}

// GetSaleDetails retrieves the sale with counterparty and staff names.
func (srv *dealService) GetSaleDetails(ctx context.Context, vin string) (*entity.DealDetails, error) {
	var details *entity.DealDetails

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewDealRepository().GetSaleDetails(ctx, vin)
		if err != nil {
			if errors.Is(err, repository.ErrSaleNotFound) {
				return errors.Wrap(domainerrors.ErrSaleNotFound, vin)
			}

			return errors.Wrap(err, "failed to load sale details")
		}
		details = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to get sale details", slog.String("vin", vin), slog.Any("error", err))

		return nil, err
	}

	return details, nil
}

// GetPurchaseDetails retrieves the purchase with counterparty and staff names.
func (srv *dealService) GetPurchaseDetails(ctx context.Context, vin string) (*entity.DealDetails, error) {
	var details *entity.DealDetails

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewDealRepository().GetPurchaseDetails(ctx, vin)
		if err != nil {
			if errors.Is(err, repository.ErrPurchaseNotFound) {
				return errors.Wrap(domainerrors.ErrPurchaseNotFound, vin)
			}

			return errors.Wrap(err, "failed to load purchase details")
		}
		details = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to get purchase details", slog.String("vin", vin), slog.Any("error", err))

		return nil, err
	}

	return details, nil
}

// purchaseFromInput validates and builds the purchase entity.
func purchaseFromInput(input usecase.RecordPurchaseInput) (*entity.PurchaseTransaction, error) {
	if input.PurchasePrice <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "purchase price must be positive")
	}

	return &entity.PurchaseTransaction{
		VIN:           input.VIN,
		Username:      input.Username,
		CustomerID:    input.CustomerID,
		PurchasePrice: input.PurchasePrice,
		PurchasedOn:   dateOrToday(input.PurchasedOn),
	}, nil
}

// createPurchase writes the purchase, mapping the one-per-VIN and reference
// violations to their domain errors.
func createPurchase(ctx context.Context, dealRepo repository.DealRepository, purchase *entity.PurchaseTransaction) error {
	if _, err := dealRepo.FindPurchaseByVIN(ctx, purchase.VIN); err == nil {
		return errors.Wrap(domainerrors.ErrPurchaseAlreadyRecorded, purchase.VIN)
	} else if !errors.Is(err, repository.ErrPurchaseNotFound) {
		return errors.Wrap(err, "failed to check for prior purchase")
	}

	if err := dealRepo.CreatePurchase(ctx, purchase); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicatePurchase):
			return errors.Wrap(domainerrors.ErrPurchaseAlreadyRecorded, purchase.VIN)
		case errors.Is(err, repository.ErrUnknownReference):
			return errors.Wrap(domainerrors.ErrValidationFailed, "unknown user or customer")
		}

		return errors.Wrap(err, "failed to create purchase")
	}

	return nil
}

// dateOrToday defaults a zero transaction date to the current day.
func dateOrToday(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().Truncate(24 * time.Hour)
	}

	return t
}
