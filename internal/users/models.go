package users

import (
	"time"

	"github.com/google/uuid"
)

// Roles mirror the hierarchy levels the dashboard gates its screens by,
// plus a scheme administrator.
const (
	RoleAdmin    = "admin"
	RoleMinistry = "ministry"
	RoleState    = "state"
	RoleDistrict = "district"
	RoleAgency   = "agency"
)

type User struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Email     string     `json:"email" db:"email"`
	Phone     string     `json:"phone" db:"phone"`
	Role      string     `json:"role" db:"role"`
	AgencyID  *uuid.UUID `json:"agency_id,omitempty" db:"agency_id"`
	IsActive  bool       `json:"is_active" db:"is_active"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}
