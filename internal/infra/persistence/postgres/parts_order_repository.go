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

// partsOrderRepository implements the repository.PartsOrderRepository interface.
type partsOrderRepository struct {
	db *gorm.DB
}

// NewPartsOrderRepository is the constructor for partsOrderRepository.
func NewPartsOrderRepository(db *gorm.DB) repository.PartsOrderRepository {
	return &partsOrderRepository{
		db: db,
	}
}

// CreateOrder persists a parts order together with all of its lines.
func (repo *partsOrderRepository) CreateOrder(ctx context.Context, order *entity.PartsOrder) error {
	orderM := fromPartsOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrderNumber
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUnknownReference
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create parts order")
	}

	lineModels := make([]model.PartModel, 0, len(order.Parts))
	for i := range order.Parts {
		lineModels = append(lineModels, *fromPartDomain(&order.Parts[i], order.OrderNumber))
	}

	if err := repo.db.WithContext(ctx).Create(&lineModels).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrderNumber
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create parts order lines")
	}

	return nil
}

// FindOrder retrieves a parts order with its lines by order number.
func (repo *partsOrderRepository) FindOrder(ctx context.Context, orderNumber string) (*entity.PartsOrder, error) {
	var orderM model.PartsOrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Parts").
		Where("order_number = ?", orderNumber).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartsOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find parts order")
	}

	return toPartsOrderDomain(&orderM), nil
}

// FindOrdersByVIN retrieves every parts order placed against a vehicle.
func (repo *partsOrderRepository) FindOrdersByVIN(ctx context.Context, vin string) ([]*entity.PartsOrder, error) {
	var orderModels []*model.PartsOrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Parts").
		Where("vehicle_identification_number = ?", vin).
		Order("order_number").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find parts orders by VIN")
	}

	orders := make([]*entity.PartsOrder, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toPartsOrderDomain(orderM))
	}

	return orders, nil
}

// CountByVIN returns how many parts orders exist for a vehicle.
func (repo *partsOrderRepository) CountByVIN(ctx context.Context, vin string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PartsOrderModel{}).
		Where("vehicle_identification_number = ?", vin).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count parts orders")
	}

	return count, nil
}

// FindPart retrieves a single part line.
func (repo *partsOrderRepository) FindPart(ctx context.Context, orderNumber, vendorPartsNumber string) (*entity.Part, error) {
	var partM model.PartModel

	if err := repo.db.WithContext(ctx).
		Where("order_number = ? AND vendor_parts_number = ?", orderNumber, vendorPartsNumber).
		First(&partM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartNotFound
		}

		return nil, errors.Wrap(err, "failed to find part")
	}

	return toPartDomain(&partM), nil
}

// UpdatePartStatus moves a part line from one status to another. The WHERE
// clause on the observed status makes the update optimistic: a concurrent
// writer that got there first leaves zero rows affected here.
func (repo *partsOrderRepository) UpdatePartStatus(ctx context.Context, orderNumber, vendorPartsNumber string, from, to entity.PartStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PartModel{}).
		Where("order_number = ? AND vendor_parts_number = ? AND status = ?", orderNumber, vendorPartsNumber, from.String()).
		Update("status", to.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update part status")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing line from a lost race.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.PartModel{}).
			Where("order_number = ? AND vendor_parts_number = ?", orderNumber, vendorPartsNumber).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check part existence")
		}
		if count == 0 {
			return repository.ErrPartNotFound
		}

		return repository.ErrStatusConflict
	}

	return nil
}

// HasOpenParts reports whether the vehicle has any part line that has not
// reached Installed.
func (repo *partsOrderRepository) HasOpenParts(ctx context.Context, vin string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PartModel{}).
		Joins("JOIN \"PartsOrder\" ON \"PartsOrder\".order_number = \"Part\".order_number").
		Where("\"PartsOrder\".vehicle_identification_number = ?", vin).
		Where("\"Part\".status <> ?", entity.PartStatusInstalled.String()).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check open parts")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

// toPartsOrderDomain converts a GORM PartsOrderModel to a domain PartsOrder entity.
func toPartsOrderDomain(data *model.PartsOrderModel) *entity.PartsOrder {
	if data == nil {
		return nil
	}

	parts := make([]entity.Part, 0, len(data.Parts))
	for i := range data.Parts {
		parts = append(parts, *toPartDomain(&data.Parts[i]))
	}

	return &entity.PartsOrder{
		OrderNumber: data.OrderNumber,
		VIN:         data.VehicleIdentificationNumber,
		VendorName:  data.Name,
		TotalCost:   data.TotalCost,
		Parts:       parts,
	}
}

// fromPartsOrderDomain converts a domain PartsOrder entity to a GORM
// PartsOrderModel. Lines are written separately.
func fromPartsOrderDomain(data *entity.PartsOrder) *model.PartsOrderModel {
	if data == nil {
		return nil
	}

	return &model.PartsOrderModel{
		OrderNumber:                 data.OrderNumber,
		VehicleIdentificationNumber: data.VIN,
		Name:                        data.VendorName,
		TotalCost:                   data.TotalCost,
	}
}

// toPartDomain converts a GORM PartModel to a domain Part entity.
func toPartDomain(data *model.PartModel) *entity.Part {
	if data == nil {
		return nil
	}

	return &entity.Part{
		VendorPartsNumber: data.VendorPartsNumber,
		OrderNumber:       data.OrderNumber,
		Description:       data.Description,
		Quantity:          data.Quantity,
		UnitPrice:         data.UnitPrice,
		Status:            entity.PartStatus(data.Status),
	}
}

// fromPartDomain converts a domain Part entity to a GORM PartModel.
func fromPartDomain(data *entity.Part, orderNumber string) *model.PartModel {
	if data == nil {
		return nil
	}

	return &model.PartModel{
		VendorPartsNumber: data.VendorPartsNumber,
		OrderNumber:       orderNumber,
		Description:       data.Description,
		Quantity:          data.Quantity,
		UnitPrice:         data.UnitPrice,
		Status:            data.Status.String(),
	}
}
