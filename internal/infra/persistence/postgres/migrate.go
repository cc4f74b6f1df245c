package postgres

import (
	"ledger/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// manufacturerNames is the fixed manufacturer lookup set loaded at setup.
var manufacturerNames = []string{
	"Acura", "Alfa Romeo", "Aston Martin", "Audi", "Bentley", "BMW",
	"Buick", "Cadillac", "Chevrolet", "Chrysler", "Dodge", "Ferrari",
	"Fiat", "Ford", "Genesis", "GMC", "Honda", "Hummer", "Hyundai",
	"Infiniti", "Jaguar", "Jeep", "Kia", "Lamborghini", "Land Rover",
	"Lexus", "Lincoln", "Lotus", "Maserati", "Mazda", "McLaren",
	"Mercedes-Benz", "Mini", "Mitsubishi", "Nissan", "Pontiac",
	"Porsche", "Ram", "Rolls-Royce", "Saab", "Saturn", "Smart",
	"Subaru", "Suzuki", "Tesla", "Toyota", "Volkswagen", "Volvo",
}

// vehicleTypeNames is the fixed vehicle type lookup set loaded at setup.
var vehicleTypeNames = []string{
	"Convertible", "Coupe", "Hatchback", "Minivan", "Pickup",
	"Sedan", "Sports Car", "Station Wagon", "SUV", "Van",
}

// colorNames is the fixed color lookup set loaded at setup.
var colorNames = []string{
	"Aluminum", "Beige", "Black", "Blue", "Bronze", "Brown", "Claret",
	"Copper", "Cream", "Gold", "Gray", "Green", "Maroon", "Metallic",
	"Navy", "Orange", "Pink", "Purple", "Red", "Rose", "Rust",
	"Silver", "Tan", "Turquoise", "White", "Yellow",
}

// Migrate creates or updates the schema for every table the ledger uses.
// The models pin the original table and column names, so a database migrated
// from an existing instance maps onto the same layout.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.VehicleTypeModel{},
		&model.VehicleManufacturerModel{},
		&model.ColorModel{},
		&model.VehicleModel{},
		&model.VehicleColorModel{},
		&model.VendorModel{},
		&model.PartsOrderModel{},
		&model.PartModel{},
		&model.CustomerModel{},
		&model.IndividualCustomerModel{},
		&model.BusinessCustomerModel{},
		&model.UserModel{},
		&model.SaleTransactionModel{},
		&model.PurchaseTransactionModel{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

// SeedReferenceData loads the lookup sets. Inserts are idempotent: rows that
// already exist are left untouched, so the command can be re-run safely.
func SeedReferenceData(db *gorm.DB) error {
	types := make([]model.VehicleTypeModel, 0, len(vehicleTypeNames))
	for _, name := range vehicleTypeNames {
		types = append(types, model.VehicleTypeModel{VehicleType: name})
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&types).Error; err != nil {
		return errors.Wrap(err, "failed to seed vehicle types")
	}

	manufacturers := make([]model.VehicleManufacturerModel, 0, len(manufacturerNames))
	for _, name := range manufacturerNames {
		manufacturers = append(manufacturers, model.VehicleManufacturerModel{ManufacturerName: name})
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&manufacturers).Error; err != nil {
		return errors.Wrap(err, "failed to seed manufacturers")
	}

	colors := make([]model.ColorModel, 0, len(colorNames))
	for _, name := range colorNames {
		colors = append(colors, model.ColorModel{ColorName: name})
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&colors).Error; err != nil {
		return errors.Wrap(err, "failed to seed colors")
	}

	return nil
}

// SeedUser inserts a staff account if the username is not taken yet.
func SeedUser(db *gorm.DB, user *model.UserModel) error {
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(user).Error; err != nil {
		return errors.Wrap(err, "failed to seed user")
	}

	return nil
}
