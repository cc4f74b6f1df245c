package postgres

import (
	"context"

	"ledger/internal/domain/repository"
	"ledger/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// lookupRepository implements the repository.LookupRepository interface over
// the three reference tables.
type lookupRepository struct {
	db *gorm.DB
}

// NewLookupRepository is the constructor for lookupRepository.
func NewLookupRepository(db *gorm.DB) repository.LookupRepository {
	return &lookupRepository{
		db: db,
	}
}

// ListVehicleTypes retrieves every valid vehicle type, sorted.
func (repo *lookupRepository) ListVehicleTypes(ctx context.Context) ([]string, error) {
	var values []string
	if err := repo.db.WithContext(ctx).
		Model(&model.VehicleTypeModel{}).
		Order("vehicle_type").
		Pluck("vehicle_type", &values).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vehicle types")
	}

	return values, nil
}

// ListManufacturers retrieves every valid manufacturer name, sorted.
func (repo *lookupRepository) ListManufacturers(ctx context.Context) ([]string, error) {
	var values []string
	if err := repo.db.WithContext(ctx).
		Model(&model.VehicleManufacturerModel{}).
		Order("manufacturer_name").
		Pluck("manufacturer_name", &values).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list manufacturers")
	}

	return values, nil
}

// ListColors retrieves every valid color name, sorted.
func (repo *lookupRepository) ListColors(ctx context.Context) ([]string, error) {
	var values []string
	if err := repo.db.WithContext(ctx).
		Model(&model.ColorModel{}).
		Order("color_name").
		Pluck("color_name", &values).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list colors")
	}

	return values, nil
}

// HasVehicleType reports whether the vehicle type is in the lookup set.
func (repo *lookupRepository) HasVehicleType(ctx context.Context, vehicleType string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.VehicleTypeModel{}).
		Where("vehicle_type = ?", vehicleType).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check vehicle type")
	}

	return count > 0, nil
}

// HasManufacturer reports whether the manufacturer is in the lookup set.
func (repo *lookupRepository) HasManufacturer(ctx context.Context, manufacturer string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.VehicleManufacturerModel{}).
		Where("manufacturer_name = ?", manufacturer).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check manufacturer")
	}

	return count > 0, nil
}

// MissingColors returns the subset of the given colors that are not in the
// lookup set.
func (repo *lookupRepository) MissingColors(ctx context.Context, colors []string) ([]string, error) {
	if len(colors) == 0 {
		return nil, nil
	}

	var known []string
	if err := repo.db.WithContext(ctx).
		Model(&model.ColorModel{}).
		Where("color_name IN ?", colors).
		Pluck("color_name", &known).Error; err != nil {
		return nil, errors.Wrap(err, "failed to check colors")
	}

	knownSet := make(map[string]bool, len(known))
	for _, color := range known {
		knownSet[color] = true
	}

	var missing []string
	for _, color := range colors {
		if !knownSet[color] {
			missing = append(missing, color)
		}
	}

	return missing, nil
}
