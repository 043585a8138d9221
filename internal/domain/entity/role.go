// Package entity contains the core business objects of the project.
package entity

// AccountType represents the role tag assigned to an account at registration.
// Downstream authorization decisions branch on it.
type AccountType string

const (
	// AccountTypeBuyer indicates a regular buyer account.
	AccountTypeBuyer AccountType = "buyer"
	// AccountTypeSeller indicates a seller account that may list artworks.
	AccountTypeSeller AccountType = "seller"
)

// String returns the string representation of the AccountType.
func (t AccountType) String() string {
	return string(t)
}

// IsValid checks if the AccountType is a valid value.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeBuyer, AccountTypeSeller:
		return true
	default:
		return false
	}
}
