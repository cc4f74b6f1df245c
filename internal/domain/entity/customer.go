// Package entity contains the core business objects of the project.
package entity

// CustomerKind discriminates the two customer specializations. A customer is
// exactly one kind, fixed at creation.
type CustomerKind string

const (
	// CustomerKindIndividual indicates a private person identified by SSN.
	CustomerKindIndividual CustomerKind = "Individual"
	// CustomerKindBusiness indicates a company identified by tax ID.
	CustomerKindBusiness CustomerKind = "Business"
)

// String returns the string representation of the CustomerKind.
func (k CustomerKind) String() string {
	return string(k)
}

// IsValid checks if the CustomerKind is a valid value.
func (k CustomerKind) IsValid() bool {
	switch k {
	case CustomerKindIndividual, CustomerKindBusiness:
		return true
	default:
		return false
	}
}

// IndividualProfile holds the specialization data of an individual customer.
type IndividualProfile struct {
	SocialSecurityNumber string `json:"social_security_number"` // Unique across all individual customers.
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
}

// BusinessProfile holds the specialization data of a business customer.
type BusinessProfile struct {
	TaxIdentificationNumber string `json:"tax_identification_number"` // Unique across all business customers.
	BusinessName            string `json:"business_name"`
	ContactFirstName        string `json:"contact_first_name"`        // Given name of the primary contact person.
	ContactLastName         string `json:"contact_last_name"`         // Family name of the primary contact person.
	ContactTitle            string `json:"contact_title"`             // Job title of the primary contact person.
}

// Customer is a buying or selling counterparty of the dealership. Exactly one
// of Individual or Business is set, matching Kind; the other is nil.
type Customer struct {
	ID          int64              `json:"id"`                   // Surrogate key assigned by the database.
	Email       *string            `json:"email,omitempty"`      // Optional contact email.
	PhoneNumber string             `json:"phone_number"`
	Address     Address            `json:"address"`
	Kind        CustomerKind       `json:"kind"`
	Individual  *IndividualProfile `json:"individual,omitempty"`
	Business    *BusinessProfile   `json:"business,omitempty"`
}

// Identifier returns the customer's natural identifier: the SSN for an
// individual, the tax ID for a business.
func (c *Customer) Identifier() string {
	switch c.Kind {
	case CustomerKindIndividual:
		if c.Individual != nil {
			return c.Individual.SocialSecurityNumber
		}
	case CustomerKindBusiness:
		if c.Business != nil {
			return c.Business.TaxIdentificationNumber
		}
	}

	return ""
}

// DisplayName returns a human-readable name for the customer.
func (c *Customer) DisplayName() string {
	switch c.Kind {
	case CustomerKindIndividual:
		if c.Individual != nil {
			return c.Individual.FirstName + " " + c.Individual.LastName
		}
	case CustomerKindBusiness:
		if c.Business != nil {
			return c.Business.BusinessName
		}
	}

	return ""
}
