// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is a dealership staff account. The username is the primary identifier
// and appears on every transaction the user records.
type User struct {
	Username     string `json:"username"`   // Unique login name, referenced by sale and purchase transactions.
	PasswordHash string `json:"-"`          // Bcrypt hash of the user's password. Never the plaintext.
	FirstName    string `json:"first_name"` // The user's given name.
	LastName     string `json:"last_name"`  // The user's family name.
	Role         Role   `json:"role"`       // The access level assigned to this account.
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
