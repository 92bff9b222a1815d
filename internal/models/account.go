package models

import "time"

// Staff roles.
const (
	RoleAdmin          = "Admin"
	RoleWebsiteManager = "Website Manager"
)

// StaffAccount is a back-office login for parish staff. Usernames are
// unique case-insensitively; passwords are stored as bcrypt hashes only.
type StaffAccount struct {
	ID           string    `db:"id" json:"_id"`
	Name         string    `db:"name" json:"name"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	Position     string    `db:"position" json:"position"`
	Department   string    `db:"department" json:"department"`
	Address      string    `db:"address" json:"address"`
	Contact      string    `db:"contact" json:"contact"`
	Notes        string    `db:"notes" json:"notes"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	LastUpdated  time.Time `db:"last_updated" json:"lastUpdated"`
}

// Parishioner is a member account submitted through the public pages; the
// back office only lists, counts and removes them.
type Parishioner struct {
	ID           string    `db:"id" json:"_id"`
	FullName     string    `db:"full_name" json:"fullName"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	Address      string    `db:"address" json:"address,omitempty"`
	Contact      string    `db:"contact" json:"contact,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
