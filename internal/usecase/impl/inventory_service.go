// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/permission"
	"ledger/internal/domain/repository"
	"ledger/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// InventoryServiceParams holds dependencies for inventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddVehicle takes a new vehicle into inventory after validating its fields
// against the lookup sets.
func (srv *inventoryService) AddVehicle(ctx context.Context, input usecase.AddVehicleInput) (*entity.Vehicle, error) {
	srv.log(ctx).Info("Adding vehicle", slog.String("vin", input.VIN))

	vehicle, err := vehicleFromInput(input)
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

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add vehicle", slog.String("vin", input.VIN), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Debug("Vehicle added", slog.String("vin", vehicle.VIN))

	return vehicle, nil
}

// UpdateVehicle modifies the mutable fields of an existing vehicle. The VIN
// only identifies the row.
func (srv *inventoryService) UpdateVehicle(ctx context.Context, input usecase.UpdateVehicleInput) (*entity.Vehicle, error) {
	srv.log(ctx).Info("Updating vehicle", slog.String("vin", input.VIN))

	vehicle, err := vehicleFromInput(usecase.AddVehicleInput(input))
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := checkLookups(ctx, repoFactory.NewLookupRepository(), vehicle); err != nil {
			return err
		}

		if err := repoFactory.NewVehicleRepository().Update(ctx, vehicle); err != nil {
			if errors.Is(err, repository.ErrVehicleNotFound) {
				return errors.Wrap(domainerrors.ErrVehicleNotFound, vehicle.VIN)
			}

			return errors.Wrap(err, "failed to update vehicle")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update vehicle", slog.String("vin", input.VIN), slog.Any("error", err))

		return nil, err
	}

	return vehicle, nil
}

// SearchVehicles retrieves every vehicle matching the filter. The VIN and
// sold-status refinements are gated by the caller's role; an empty filter
// returns the entire inventory.
func (srv *inventoryService) SearchVehicles(ctx context.Context, input usecase.SearchVehiclesInput) ([]*entity.VehicleListing, error) {
	filter, err := buildSearchFilter(input)
	if err != nil {
		return nil, err
	}

	var listings []*entity.VehicleListing

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewVehicleRepository().Search(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to search vehicles")
		}
		listings = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to search vehicles", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Debug("Vehicle search completed", slog.Int("results", len(listings)))

	return listings, nil
}

// GetVehicle retrieves one vehicle's listing together with every parts order
// placed against it.
func (srv *inventoryService) GetVehicle(ctx context.Context, vin string) (*usecase.VehicleDetailsOutput, error) {
	var output usecase.VehicleDetailsOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listing, err := repoFactory.NewVehicleRepository().FindListing(ctx, vin)
		if err != nil {
			if errors.Is(err, repository.ErrVehicleNotFound) {
				return errors.Wrap(domainerrors.ErrVehicleNotFound, vin)
			}

			return errors.Wrap(err, "failed to find vehicle")
		}
		output.Listing = listing

		orders, err := repoFactory.NewPartsOrderRepository().FindOrdersByVIN(ctx, vin)
		if err != nil {
			return errors.Wrap(err, "failed to load parts orders")
		}
		output.PartsOrders = orders

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to get vehicle", slog.String("vin", vin), slog.Any("error", err))

		return nil, err
	}

	return &output, nil
}

// VehicleCounts computes the dashboard totals over the whole inventory.
func (srv *inventoryService) VehicleCounts(ctx context.Context) (*entity.VehicleCounts, error) {
	var counts *entity.VehicleCounts

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewVehicleRepository().Counts(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count vehicles")
		}
		counts = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to compute vehicle counts", slog.Any("error", err))

		return nil, err
	}

	return counts, nil
}

// ListReferenceData retrieves the three lookup sets in one consistent read.
func (srv *inventoryService) ListReferenceData(ctx context.Context) (*entity.ReferenceData, error) {
	var data entity.ReferenceData

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		lookupRepo := repoFactory.NewLookupRepository()

		types, err := lookupRepo.ListVehicleTypes(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list vehicle types")
		}
		data.VehicleTypes = types

		manufacturers, err := lookupRepo.ListManufacturers(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list manufacturers")
		}
		data.Manufacturers = manufacturers

		colors, err := lookupRepo.ListColors(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list colors")
		}
		data.Colors = colors

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list reference data", slog.Any("error", err))

		return nil, err
	}

	return &data, nil
}

// vehicleFromInput builds the vehicle entity and validates the enum fields
// and color list before any database work.
func vehicleFromInput(input usecase.AddVehicleInput) (*entity.Vehicle, error) {
	condition := entity.Condition(input.Condition)
	if !condition.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown condition %q", input.Condition)
	}

	fuelType := entity.FuelType(input.FuelType)
	if !fuelType.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown fuel type %q", input.FuelType)
	}

	if len(input.Colors) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "at least one color is required")
	}

	return &entity.Vehicle{
		VIN:          strings.ToUpper(strings.TrimSpace(input.VIN)),
		VehicleType:  input.VehicleType,
		Manufacturer: input.Manufacturer,
		Condition:    condition,
		ModelName:    input.ModelName,
		Year:         input.Year,
		FuelType:     fuelType,
		Horsepower:   input.Horsepower,
		Description:  input.Description,
		Colors:       input.Colors,
	}, nil
}

// checkLookups verifies the vehicle's type, manufacturer and colors against
// the lookup sets inside the current transaction.
func checkLookups(ctx context.Context, lookupRepo repository.LookupRepository, vehicle *entity.Vehicle) error {
	ok, err := lookupRepo.HasVehicleType(ctx, vehicle.VehicleType)
	if err != nil {
		return errors.Wrap(err, "failed to check vehicle type")
	}
	if !ok {
		return errors.Wrapf(domainerrors.ErrUnknownLookupValue, "vehicle type %q", vehicle.VehicleType)
	}

	ok, err = lookupRepo.HasManufacturer(ctx, vehicle.Manufacturer)
	if err != nil {
		return errors.Wrap(err, "failed to check manufacturer")
	}
	if !ok {
		return errors.Wrapf(domainerrors.ErrUnknownLookupValue, "manufacturer %q", vehicle.Manufacturer)
	}

	missing, err := lookupRepo.MissingColors(ctx, vehicle.Colors)
	if err != nil {
		return errors.Wrap(err, "failed to check colors")
	}
	if len(missing) > 0 {
		return errors.Wrapf(domainerrors.ErrUnknownLookupValue, "colors %s", strings.Join(missing, ", "))
	}

	return nil
}

// buildSearchFilter validates the search input and applies the role gates on
// the VIN and sold-status refinements.
func buildSearchFilter(input usecase.SearchVehiclesInput) (repository.SearchFilter, error) {
	var filter repository.SearchFilter

	if input.VIN != "" && !permission.Allowed(input.Role, permission.OpFilterByVIN) {
		return filter, errors.Wrap(domainerrors.ErrPermissionDenied, "VIN filter")
	}

	availability := repository.Availability(input.Availability)
	switch availability {
	case repository.AvailabilityAny, repository.AvailabilityForSale:
	case repository.AvailabilityUnsold, repository.AvailabilitySold:
		if !permission.Allowed(input.Role, permission.OpFilterBySoldStatus) {
			return filter, errors.Wrap(domainerrors.ErrPermissionDenied, "sold status filter")
		}
	default:
		return filter, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown availability %q", input.Availability)
	}

	if input.Condition != "" && !entity.Condition(input.Condition).IsValid() {
		return filter, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown condition %q", input.Condition)
	}
	if input.FuelType != "" && !entity.FuelType(input.FuelType).IsValid() {
		return filter, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown fuel type %q", input.FuelType)
	}

	return repository.SearchFilter{
		VIN:          strings.ToUpper(strings.TrimSpace(input.VIN)),
		VehicleType:  input.VehicleType,
		Manufacturer: input.Manufacturer,
		Color:        input.Color,
		Condition:    entity.Condition(input.Condition),
		FuelType:     entity.FuelType(input.FuelType),
		YearMin:      input.YearMin,
		YearMax:      input.YearMax,
		Keyword:      strings.TrimSpace(input.Keyword),
		Availability: availability,
	}, nil
}
