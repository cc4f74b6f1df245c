package model

// VendorModel mirrors the 'Vendor' table. The vendor name is the primary key
// and is referenced by parts orders through their 'name' column.
type VendorModel struct {
	Name              string `gorm:"column:name;type:varchar(120);primaryKey"`
	PhoneNumber       string `gorm:"column:phone_number;type:varchar(30);not null"`
	AddressStreet     string `gorm:"column:address_street;type:varchar(120);not null"`
	AddressCity       string `gorm:"column:address_city;type:varchar(80);not null"`
	AddressState      string `gorm:"column:address_state;type:varchar(40);not null"`
	AddressPostalCode string `gorm:"column:address_postal_code;type:varchar(20);not null"`
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "Vendor"
}
