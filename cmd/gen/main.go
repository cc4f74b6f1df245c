package main

import (
	"ledger/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.VehicleTypeModel{},
		model.VehicleManufacturerModel{},
		model.ColorModel{},
		model.VehicleModel{},
		model.VehicleColorModel{},
		model.VendorModel{},
		model.PartsOrderModel{},
		model.PartModel{},
		model.CustomerModel{},
		model.IndividualCustomerModel{},
		model.BusinessCustomerModel{},
		model.UserModel{},
		model.SaleTransactionModel{},
		model.PurchaseTransactionModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
