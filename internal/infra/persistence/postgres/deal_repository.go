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

// dealRepository implements the repository.DealRepository interface.
type dealRepository struct {
	db *gorm.DB
}

// NewDealRepository is the constructor for dealRepository.
func NewDealRepository(db *gorm.DB) repository.DealRepository {
	return &dealRepository{
		db: db,
	}
}

// CreateSale persists a sale transaction. Under concurrent inserts for the
// same VIN the unique index lets exactly one through; the loser surfaces as
// ErrDuplicateSale.
func (repo *dealRepository) CreateSale(ctx context.Context, sale *entity.SaleTransaction) error {
	saleM := fromSaleDomain(sale)

	if err := repo.db.WithContext(ctx).Create(saleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSale
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUnknownReference
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale transaction")
	}

	return nil
}

// CreatePurchase persists a purchase transaction, at most one per vehicle.
func (repo *dealRepository) CreatePurchase(ctx context.Context, purchase *entity.PurchaseTransaction) error {
	purchaseM := fromPurchaseDomain(purchase)

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePurchase
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUnknownReference
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase transaction")
	}

	return nil
}

// FindSaleByVIN retrieves the sale transaction for a vehicle.
func (repo *dealRepository) FindSaleByVIN(ctx context.Context, vin string) (*entity.SaleTransaction, error) {
	var saleM model.SaleTransactionModel

	if err := repo.db.WithContext(ctx).
		Where("vehicle_identification_number = ?", vin).
		First(&saleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale by VIN")
	}

	return toSaleDomain(&saleM), nil
}

// FindPurchaseByVIN retrieves the purchase transaction for a vehicle.
func (repo *dealRepository) FindPurchaseByVIN(ctx context.Context, vin string) (*entity.PurchaseTransaction, error) {
	var purchaseM model.PurchaseTransactionModel

	if err := repo.db.WithContext(ctx).
		Where("vehicle_identification_number = ?", vin).
		First(&purchaseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchase by VIN")
	}

	return toPurchaseDomain(&purchaseM), nil
}

// GetSaleDetails retrieves the sale together with counterparty and staff names.
func (repo *dealRepository) GetSaleDetails(ctx context.Context, vin string) (*entity.DealDetails, error) {
	var saleM model.SaleTransactionModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("Customer.Individual").
		Preload("Customer.Business").
		Where("vehicle_identification_number = ?", vin).
		First(&saleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to load sale details")
	}

	details := &entity.DealDetails{
		VIN:        saleM.VehicleIdentificationNumber,
		Price:      saleM.SalePrice,
		Date:       saleM.SoldOn,
		CustomerID: saleM.CustomerID,
		Username:   saleM.Username,
	}
	if saleM.Customer != nil {
		details.CustomerName = toCustomerDomain(saleM.Customer).DisplayName()
	}
	if saleM.User != nil {
		details.StaffName = toUserDomain(saleM.User).FullName()
	}

	return details, nil
}

// GetPurchaseDetails retrieves the purchase together with counterparty and staff names.
func (repo *dealRepository) GetPurchaseDetails(ctx context.Context, vin string) (*entity.DealDetails, error) {
	var purchaseM model.PurchaseTransactionModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("Customer.Individual").
		Preload("Customer.Business").
		Where("vehicle_identification_number = ?", vin).
		First(&purchaseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to load purchase details")
	}

	details := &entity.DealDetails{
		VIN:        purchaseM.VehicleIdentificationNumber,
		Price:      purchaseM.PurchasePrice,
		Date:       purchaseM.PurchasedOn,
		CustomerID: purchaseM.CustomerID,
		Username:   purchaseM.Username,
	}
	if purchaseM.Customer != nil {
		details.CustomerName = toCustomerDomain(purchaseM.Customer).DisplayName()
	}
	if purchaseM.User != nil {
		details.StaffName = toUserDomain(purchaseM.User).FullName()
	}

	return details, nil
}

// --- Mapper Functions ---

// toSaleDomain converts a GORM SaleTransactionModel to a domain SaleTransaction entity.
func toSaleDomain(data *model.SaleTransactionModel) *entity.SaleTransaction {
	if data == nil {
		return nil
	}

	return &entity.SaleTransaction{
		VIN:        data.VehicleIdentificationNumber,
		Username:   data.Username,
		CustomerID: data.CustomerID,
		SalePrice:  data.SalePrice,
		SoldOn:     data.SoldOn,
	}
}

// fromSaleDomain converts a domain SaleTransaction entity to a GORM SaleTransactionModel.
func fromSaleDomain(data *entity.SaleTransaction) *model.SaleTransactionModel {
	if data == nil {
		return nil
	}

	return &model.SaleTransactionModel{
		VehicleIdentificationNumber: data.VIN,
		Username:                    data.Username,
		CustomerID:                  data.CustomerID,
		SalePrice:                   data.SalePrice,
		SoldOn:                      data.SoldOn,
	}
}

// toPurchaseDomain converts a GORM PurchaseTransactionModel to a domain PurchaseTransaction entity.
func toPurchaseDomain(data *model.PurchaseTransactionModel) *entity.PurchaseTransaction {
	if data == nil {
		return nil
	}

	return &entity.PurchaseTransaction{
		VIN:           data.VehicleIdentificationNumber,
		Username:      data.Username,
		CustomerID:    data.CustomerID,
		PurchasePrice: data.PurchasePrice,
		PurchasedOn:   data.PurchasedOn,
	}
}

// fromPurchaseDomain converts a domain PurchaseTransaction entity to a GORM PurchaseTransactionModel.
func fromPurchaseDomain(data *entity.PurchaseTransaction) *model.PurchaseTransactionModel {
	if data == nil {
		return nil
	}

	return &model.PurchaseTransactionModel{
		VehicleIdentificationNumber: data.VIN,
		Username:                    data.Username,
		CustomerID:                  data.CustomerID,
		PurchasePrice:               data.PurchasePrice,
		PurchasedOn:                 data.PurchasedOn,
	}
}
