// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. Username and Email are unique, enforced by
// the storage layer; either collision rejects registration.
type User struct {
	ID           uuid.UUID   // The unique identifier for the account, assigned by the store on creation.
	Username     string      // Unique, case-sensitive login name.
	Email        string      // Unique contact email, also usable as a login identifier.
	PasswordHash string      // The bcrypt digest of the password. Never serialized in any response.
	AccountType  AccountType // Role tag set at registration ("buyer" or "seller").
	Name         string      // Optional display name.
	Address      string      // Optional shipping/contact address.
	Telephone    string      // Optional contact number.
	ProfileImage string      // Path of the uploaded profile image in the blob store.
	CreatedAt    time.Time   // Timestamp of when this account was created.
	UpdatedAt    time.Time   // Timestamp of the last modification to this account.
}
