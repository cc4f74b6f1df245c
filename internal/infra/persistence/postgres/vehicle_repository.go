// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// vehicleRepository implements the repository.VehicleRepository interface.
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository is the constructor for vehicleRepository.
func NewVehicleRepository(db *gorm.DB) repository.VehicleRepository {
	return &vehicleRepository{
		db: db,
	}
}

// Create persists a new vehicle together with its color associations.
func (repo *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	vehicleM := fromVehicleDomain(vehicle)

	if err := repo.db.WithContext(ctx).Create(vehicleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateVIN
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUnknownReference
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vehicle")
	}

	if err := repo.replaceColors(ctx, vehicle.VIN, vehicle.Colors); err != nil {
		return err
	}

	return nil
}

// Update modifies the mutable fields of an existing vehicle and replaces its
// color associations.
func (repo *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VehicleModel{}).
		Where("vehicle_identification_number = ?", vehicle.VIN).
		Updates(map[string]any{
			"vehicle_type":      vehicle.VehicleType,
			"manufacturer_name": vehicle.Manufacturer,
			"condition":         vehicle.Condition.String(),
			"model_name":        vehicle.ModelName,
			"year":              vehicle.Year,
			"fuel_type":         vehicle.FuelType.String(),
			"horsepower":        vehicle.Horsepower,
			"description":       vehicle.Description,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrUnknownReference
		}

		return errors.Wrap(result.Error, "failed to update vehicle")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVehicleNotFound
	}

	return repo.replaceColors(ctx, vehicle.VIN, vehicle.Colors)
}

// FindByVIN retrieves a single vehicle with its colors.
func (repo *vehicleRepository) FindByVIN(ctx context.Context, vin string) (*entity.Vehicle, error) {
	var vehicleM model.VehicleModel

	if err := repo.db.WithContext(ctx).
		Preload("Colors").
		Where("vehicle_identification_number = ?", vin).
		First(&vehicleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to find vehicle by VIN")
	}

	return toVehicleDomain(&vehicleM), nil
}

// FindListing retrieves one vehicle together with its derived sale and parts state.
func (repo *vehicleRepository) FindListing(ctx context.Context, vin string) (*entity.VehicleListing, error) {
	vehicle, err := repo.FindByVIN(ctx, vin)
	if err != nil {
		return nil, err
	}

	listings, err := repo.buildListings(ctx, []*entity.Vehicle{vehicle})
	if err != nil {
		return nil, err
	}

	return listings[0], nil
}

// Search retrieves every vehicle matching the filter, with derived state.
func (repo *vehicleRepository) Search(ctx context.Context, filter repository.SearchFilter) ([]*entity.VehicleListing, error) {
	query := repo.db.WithContext(ctx).Model(&model.VehicleModel{})

	if filter.VIN != "" {
		query = query.Where("vehicle_identification_number = ?", filter.VIN)
	}
	if filter.VehicleType != "" {
		query = query.Where("vehicle_type = ?", filter.VehicleType)
	}
	if filter.Manufacturer != "" {
		query = query.Where("manufacturer_name = ?", filter.Manufacturer)
	}
	if filter.Condition != "" {
		query = query.Where("condition = ?", filter.Condition.String())
	}
	if filter.FuelType != "" {
		query = query.Where("fuel_type = ?", filter.FuelType.String())
	}
	if filter.YearMin > 0 {
		query = query.Where("year >= ?", filter.YearMin)
	}
	if filter.YearMax > 0 {
		query = query.Where("year <= ?", filter.YearMax)
	}
	if filter.Color != "" {
		colorVINs := repo.db.Model(&model.VehicleColorModel{}).
			Select("vehicle_identification_number").
			Where("color_name = ?", filter.Color)
		query = query.Where("vehicle_identification_number IN (?)", colorVINs)
	}
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where(
			"manufacturer_name ILIKE ? OR model_name ILIKE ? OR CAST(year AS TEXT) LIKE ? OR description ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	soldVINs := repo.db.Model(&model.SaleTransactionModel{}).
		Select("vehicle_identification_number")
	switch filter.Availability {
	case repository.AvailabilitySold:
		query = query.Where("vehicle_identification_number IN (?)", soldVINs)
	case repository.AvailabilityUnsold:
		query = query.Where("vehicle_identification_number NOT IN (?)", soldVINs)
	case repository.AvailabilityForSale:
		query = query.Where("vehicle_identification_number NOT IN (?)", soldVINs).
			Where("vehicle_identification_number NOT IN (?)", repo.pendingPartsVINs())
	case repository.AvailabilityAny:
		// No availability filter.
	}

	var vehicleModels []*model.VehicleModel
	if err := query.
		Preload("Colors").
		Order("vehicle_identification_number").
		Find(&vehicleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search vehicles")
	}

	vehicles := make([]*entity.Vehicle, 0, len(vehicleModels))
	for _, vehicleM := range vehicleModels {
		vehicles = append(vehicles, toVehicleDomain(vehicleM))
	}

	return repo.buildListings(ctx, vehicles)
}

// Counts computes the dashboard totals over the whole inventory.
func (repo *vehicleRepository) Counts(ctx context.Context) (*entity.VehicleCounts, error) {
	var available, pending int64

	soldVINs := repo.db.Model(&model.SaleTransactionModel{}).
		Select("vehicle_identification_number")

	if err := repo.db.WithContext(ctx).
		Model(&model.VehicleModel{}).
		Where("vehicle_identification_number NOT IN (?)", soldVINs).
		Where("vehicle_identification_number NOT IN (?)", repo.pendingPartsVINs()).
		Count(&available).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count available vehicles")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.VehicleModel{}).
		Where("vehicle_identification_number IN (?)", repo.pendingPartsVINs()).
		Count(&pending).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count vehicles with pending parts")
	}

	return &entity.VehicleCounts{
		AvailableForSale: int(available),
		WithPendingParts: int(pending),
	}, nil
}

// pendingPartsVINs builds the subquery of VINs that have at least one part
// line not yet Installed.
func (repo *vehicleRepository) pendingPartsVINs() *gorm.DB {
	return repo.db.Model(&model.PartsOrderModel{}).
		Distinct("\"PartsOrder\".vehicle_identification_number").
		Joins("JOIN \"Part\" ON \"Part\".order_number = \"PartsOrder\".order_number").
		Where("\"Part\".status <> ?", entity.PartStatusInstalled.String())
}

// buildListings decorates vehicles with their derived sale, purchase and
// parts state, batching one query per concern.
func (repo *vehicleRepository) buildListings(ctx context.Context, vehicles []*entity.Vehicle) ([]*entity.VehicleListing, error) {
	vins := make([]string, 0, len(vehicles))
	for _, vehicle := range vehicles {
		vins = append(vins, vehicle.VIN)
	}

	listings := make([]*entity.VehicleListing, 0, len(vehicles))
	if len(vins) == 0 {
		return listings, nil
	}

	type vinCost struct {
		VehicleIdentificationNumber string
		Total                       float64
	}
	var partsCosts []vinCost
	if err := repo.db.WithContext(ctx).
		Model(&model.PartsOrderModel{}).
		Select("vehicle_identification_number, SUM(total_cost) AS total").
		Where("vehicle_identification_number IN ?", vins).
		Group("vehicle_identification_number").
		Scan(&partsCosts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate parts cost")
	}
	costByVIN := make(map[string]float64, len(partsCosts))
	for _, row := range partsCosts {
		costByVIN[row.VehicleIdentificationNumber] = row.Total
	}

	var pendingVINs []string
	if err := repo.db.WithContext(ctx).
		Model(&model.PartsOrderModel{}).
		Distinct("\"PartsOrder\".vehicle_identification_number").
		Joins("JOIN \"Part\" ON \"Part\".order_number = \"PartsOrder\".order_number").
		Where("\"Part\".status <> ?", entity.PartStatusInstalled.String()).
		Where("\"PartsOrder\".vehicle_identification_number IN ?", vins).
		Pluck("\"PartsOrder\".vehicle_identification_number", &pendingVINs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending parts")
	}
	pendingByVIN := make(map[string]bool, len(pendingVINs))
	for _, vin := range pendingVINs {
		pendingByVIN[vin] = true
	}

	var sales []model.SaleTransactionModel
	if err := repo.db.WithContext(ctx).
		Where("vehicle_identification_number IN ?", vins).
		Find(&sales).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load sale transactions")
	}
	saleByVIN := make(map[string]float64, len(sales))
	for _, sale := range sales {
		saleByVIN[sale.VehicleIdentificationNumber] = sale.SalePrice
	}

	var purchases []model.PurchaseTransactionModel
	if err := repo.db.WithContext(ctx).
		Where("vehicle_identification_number IN ?", vins).
		Find(&purchases).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load purchase transactions")
	}
	purchaseByVIN := make(map[string]float64, len(purchases))
	for _, purchase := range purchases {
		purchaseByVIN[purchase.VehicleIdentificationNumber] = purchase.PurchasePrice
	}

	for _, vehicle := range vehicles {
		listing := &entity.VehicleListing{
			Vehicle:      *vehicle,
			PendingParts: pendingByVIN[vehicle.VIN],
			PartsCost:    costByVIN[vehicle.VIN],
		}
		if purchasePrice, ok := purchaseByVIN[vehicle.VIN]; ok {
			price := purchasePrice
			listing.PurchasePrice = &price
		}
		if salePrice, ok := saleByVIN[vehicle.VIN]; ok {
			listing.Sold = true
			price := salePrice
			listing.SalePrice = &price
		} else if listing.PurchasePrice != nil {
			suggested := entity.SuggestedSalePrice(*listing.PurchasePrice, listing.PartsCost)
			listing.SalePrice = &suggested
		}
		listings = append(listings, listing)
	}

	return listings, nil
}

// --- Mapper Functions ---

// toVehicleDomain converts a GORM VehicleModel to a domain Vehicle entity.
func toVehicleDomain(data *model.VehicleModel) *entity.Vehicle {
	if data == nil {
		return nil
	}

	colors := make([]string, 0, len(data.Colors))
	for _, color := range data.Colors {
		colors = append(colors, color.ColorName)
	}

	return &entity.Vehicle{
		VIN:          data.VehicleIdentificationNumber,
		VehicleType:  data.VehicleType,
		Manufacturer: data.ManufacturerName,
		Condition:    entity.Condition(data.Condition),
		ModelName:    data.ModelName,
		Year:         data.Year,
		FuelType:     entity.FuelType(data.FuelType),
		Horsepower:   data.Horsepower,
		Description:  data.Description,
		Colors:       colors,
	}
}

// fromVehicleDomain converts a domain Vehicle entity to a GORM VehicleModel.
// Color associations are written separately.
func fromVehicleDomain(data *entity.Vehicle) *model.VehicleModel {
	if data == nil {
		return nil
	}

	return &model.VehicleModel{
		VehicleIdentificationNumber: data.VIN,
		VehicleType:                 data.VehicleType,
		ManufacturerName:            data.Manufacturer,
		Condition:                   data.Condition.String(),
		ModelName:                   data.ModelName,
		Year:                        data.Year,
		FuelType:                    data.FuelType.String(),
		Horsepower:                  data.Horsepower,
		Description:                 data.Description,
	}
}

// replaceColors rewrites the color join rows for a vehicle.
func (repo *vehicleRepository) replaceColors(ctx context.Context, vin string, colors []string) error {
	if err := repo.db.WithContext(ctx).
		Where("vehicle_identification_number = ?", vin).
		Delete(&model.VehicleColorModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear vehicle colors")
	}

	if len(colors) == 0 {
		return nil
	}

	rows := make([]model.VehicleColorModel, 0, len(colors))
	for _, color := range colors {
		rows = append(rows, model.VehicleColorModel{
			VehicleIdentificationNumber: vin,
			ColorName:                   color,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUnknownReference
		}

		return errors.Wrap(err, "failed to write vehicle colors")
	}

	return nil
}
