package model

// UserModel mirrors the 'User' table of dealership staff accounts. The
// password column stores a bcrypt hash, never the plaintext.
type UserModel struct {
	Username  string `gorm:"column:username;type:varchar(60);primaryKey"`
	Password  string `gorm:"column:password;type:varchar(100);not null"`
	FirstName string `gorm:"column:first_name;type:varchar(80);not null"`
	LastName  string `gorm:"column:last_name;type:varchar(80);not null"`
	Role      string `gorm:"column:role;type:varchar(30);not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "User"
}
