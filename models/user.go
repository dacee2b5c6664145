package models

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Answer    string    `gorm:"not null" json:"-"` // hashed security-question answer
	Role      Role      `gorm:"type:VARCHAR(20);default:'customer'" json:"role"`
	Cart      Cart      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasAddress reports whether the user can receive deliveries. Order
// placement refuses buyers without an address on file.
func (u *User) HasAddress() bool {
	return u.Address != ""
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
