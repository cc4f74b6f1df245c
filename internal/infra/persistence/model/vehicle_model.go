// Package model holds the GORM structs mirroring the dealership schema.
// Table and column names match the original schema exactly; they are the
// compatibility surface for data migrated from an existing instance.
package model

// VehicleTypeModel mirrors the 'VehicleType' lookup table.
type VehicleTypeModel struct {
	VehicleType string `gorm:"column:vehicle_type;type:varchar(50);primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (VehicleTypeModel) TableName() string {
	return "VehicleType"
}

// VehicleManufacturerModel mirrors the 'VehicleManufacturer' lookup table.
type VehicleManufacturerModel struct {
	ManufacturerName string `gorm:"column:manufacturer_name;type:varchar(120);primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (VehicleManufacturerModel) TableName() string {
	return "VehicleManufacturer"
}

// ColorModel mirrors the 'Color' lookup table.
type ColorModel struct {
	ColorName string `gorm:"column:color_name;type:varchar(50);primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (ColorModel) TableName() string {
	return "Color"
}

// VehicleModel mirrors the 'Vehicle' table. The VIN is the immutable primary
// key; rows are never deleted.
type VehicleModel struct {
	VehicleIdentificationNumber string `gorm:"column:vehicle_identification_number;type:varchar(17);primaryKey"`
	VehicleType                 string `gorm:"column:vehicle_type;type:varchar(50);not null"`
	ManufacturerName            string `gorm:"column:manufacturer_name;type:varchar(120);not null"`
	Condition                   string `gorm:"column:condition;type:varchar(20);not null"`
	ModelName                   string `gorm:"column:model_name;type:varchar(120);not null"`
	Year                        int    `gorm:"column:year;not null"`
	FuelType                    string `gorm:"column:fuel_type;type:varchar(20);not null"`
	Horsepower                  int    `gorm:"column:horsepower;not null"`
	Description                 string `gorm:"column:description;type:text"`

	TypeRef         *VehicleTypeModel         `gorm:"foreignKey:VehicleType;references:VehicleType"`
	ManufacturerRef *VehicleManufacturerModel `gorm:"foreignKey:ManufacturerName;references:ManufacturerName"`
	Colors          []VehicleColorModel       `gorm:"foreignKey:VehicleIdentificationNumber;references:VehicleIdentificationNumber"`
}

// TableName explicitly sets the table name for GORM.
func (VehicleModel) TableName() string {
	return "Vehicle"
}

// VehicleColorModel mirrors the 'VehicleColor' join table between vehicles
// and the color lookup set.
type VehicleColorModel struct {
	VehicleIdentificationNumber string `gorm:"column:vehicle_identification_number;type:varchar(17);primaryKey"`
	ColorName                   string `gorm:"column:color_name;type:varchar(50);primaryKey"`

	ColorRef *ColorModel `gorm:"foreignKey:ColorName;references:ColorName"`
}

// TableName explicitly sets the table name for GORM.
func (VehicleColorModel) TableName() string {
	return "VehicleColor"
}
