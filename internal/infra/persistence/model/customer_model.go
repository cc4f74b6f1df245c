package model

// CustomerModel mirrors the 'Customer' table, the base row shared by both
// customer specializations. Exactly one specialization row exists per
// customer; which one decides the customer's kind.
type CustomerModel struct {
	ID                int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Email             *string `gorm:"column:email;type:varchar(255)"`
	PhoneNumber       string  `gorm:"column:phone_number;type:varchar(30);not null"`
	AddressStreet     string  `gorm:"column:address_street;type:varchar(120);not null"`
	AddressCity       string  `gorm:"column:address_city;type:varchar(80);not null"`
	AddressState      string  `gorm:"column:address_state;type:varchar(40);not null"`
	AddressPostalCode string  `gorm:"column:address_postal_code;type:varchar(20);not null"`

	Individual *IndividualCustomerModel `gorm:"foreignKey:CustomerID;references:ID"`
	Business   *BusinessCustomerModel   `gorm:"foreignKey:CustomerID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "Customer"
}

// IndividualCustomerModel mirrors the 'IndividualCustomer' table. The SSN is
// an alternate key across all individual customers.
type IndividualCustomerModel struct {
	CustomerID           int64  `gorm:"column:customer_id;primaryKey"`
	SocialSecurityNumber string `gorm:"column:social_security_number;type:varchar(20);uniqueIndex;not null"`
	FirstName            string `gorm:"column:first_name;type:varchar(80);not null"`
	LastName             string `gorm:"column:last_name;type:varchar(80);not null"`
}

// TableName explicitly sets the table name for GORM.
func (IndividualCustomerModel) TableName() string {
	return "IndividualCustomer"
}

// BusinessCustomerModel mirrors the 'BusinessCustomer' table. The tax ID is
// an alternate key across all business customers.
type BusinessCustomerModel struct {
	CustomerID              int64  `gorm:"column:customer_id;primaryKey"`
	TaxIdentificationNumber string `gorm:"column:tax_identification_number;type:varchar(20);uniqueIndex;not null"`
	BusinessName            string `gorm:"column:business_name;type:varchar(120);not null"`
	PrimaryContactFirstName string `gorm:"column:primary_contact_first_name;type:varchar(80);not null"`
	PrimaryContactLastName  string `gorm:"column:primary_contact_last_name;type:varchar(80);not null"`
	PrimaryContactTitle     string `gorm:"column:primary_contact_title;type:varchar(80);not null"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessCustomerModel) TableName() string {
	return "BusinessCustomer"
}
