package model

import "time"

// SaleTransactionModel mirrors the 'SaleTransaction' table. The unique index
// on the VIN is what guarantees at most one sale per vehicle, even when two
// salespeople race to close the same deal.
type SaleTransactionModel struct {
	VehicleIdentificationNumber string    `gorm:"column:vehicle_identification_number;type:varchar(17);primaryKey;uniqueIndex:uq_sale_vin"`
	Username                    string    `gorm:"column:username;type:varchar(60);primaryKey"`
	CustomerID                  int64     `gorm:"column:customer_id;primaryKey"`
	SalePrice                   float64   `gorm:"column:sale_price;type:decimal(10,2);not null"`
	SoldOn                      time.Time `gorm:"column:sold_on;type:date;not null"`

	Vehicle  *VehicleModel  `gorm:"foreignKey:VehicleIdentificationNumber;references:VehicleIdentificationNumber"`
	User     *UserModel     `gorm:"foreignKey:Username;references:Username"`
	Customer *CustomerModel `gorm:"foreignKey:CustomerID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (SaleTransactionModel) TableName() string {
	return "SaleTransaction"
}

// PurchaseTransactionModel mirrors the 'PurchaseTransaction' table, the
// dealership's acquisition of a vehicle. One per VIN.
type PurchaseTransactionModel struct {
	VehicleIdentificationNumber string    `gorm:"column:vehicle_identification_number;type:varchar(17);primaryKey;uniqueIndex:uq_purchase_vin"`
	Username                    string    `gorm:"column:username;type:varchar(60);primaryKey"`
	CustomerID                  int64     `gorm:"column:customer_id;primaryKey"`
	PurchasePrice               float64   `gorm:"column:purchase_price;type:decimal(10,2);not null"`
	PurchasedOn                 time.Time `gorm:"column:purchased_on;type:date;not null"`

	Vehicle  *VehicleModel  `gorm:"foreignKey:VehicleIdentificationNumber;references:VehicleIdentificationNumber"`
	User     *UserModel     `gorm:"foreignKey:Username;references:Username"`
	Customer *CustomerModel `gorm:"foreignKey:CustomerID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (PurchaseTransactionModel) TableName() string {
	return "PurchaseTransaction"
}
