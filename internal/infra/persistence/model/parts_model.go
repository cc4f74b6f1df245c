package model

// PartsOrderModel mirrors the 'PartsOrder' table. The order number is
// globally unique; the VIN and vendor columns document which vehicle and
// supplier the order belongs to. total_cost is frozen at creation.
type PartsOrderModel struct {
	OrderNumber                 string  `gorm:"column:order_number;type:varchar(40);primaryKey"`
	VehicleIdentificationNumber string  `gorm:"column:vehicle_identification_number;type:varchar(17);not null;index"`
	Name                        string  `gorm:"column:name;type:varchar(120);not null"`
	TotalCost                   float64 `gorm:"column:total_cost;type:decimal(10,2);not null"`

	Vehicle *VehicleModel `gorm:"foreignKey:VehicleIdentificationNumber;references:VehicleIdentificationNumber"`
	Vendor  *VendorModel  `gorm:"foreignKey:Name;references:Name"`
	Parts   []PartModel   `gorm:"foreignKey:OrderNumber;references:OrderNumber"`
}

// TableName explicitly sets the table name for GORM.
func (PartsOrderModel) TableName() string {
	return "PartsOrder"
}

// PartModel mirrors the 'Part' table, one row per order line. The status
// only moves forward: Ordered, Received, Installed.
type PartModel struct {
	VendorPartsNumber string  `gorm:"column:vendor_parts_number;type:varchar(40);primaryKey"`
	OrderNumber       string  `gorm:"column:order_number;type:varchar(40);primaryKey"`
	Description       string  `gorm:"column:description;type:varchar(255);not null"`
	Quantity          int     `gorm:"column:quantity;not null"`
	UnitPrice         float64 `gorm:"column:unit_price;type:decimal(10,2);not null"`
	Status            string  `gorm:"column:status;type:varchar(20);not null;default:Ordered"`
}

// TableName explicitly sets the table name for GORM.
func (PartModel) TableName() string {
	return "Part"
}
