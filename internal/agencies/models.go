package agencies

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type RoleType string

const (
	RoleImplementing RoleType = "Implementing"
	RoleExecuting    RoleType = "Executing"
)

// Agency categories mirror the closed set used by the scheme's agency
// registration forms.
const (
	CategoryCentralAgency         = "CentralAgency"
	CategoryStateGovernment       = "StateGovernment"
	CategoryDistrictAdministration = "DistrictAdministration"
	CategoryPSU                   = "PSU"
	CategoryNGO                   = "NGO"
	CategoryPanchayatiRaj         = "PanchayatiRaj"
	CategoryUrbanLocalBody        = "UrbanLocalBody"
	CategoryPrivateContractor     = "PrivateContractor"
	CategorySpecialPurposeVehicle = "SpecialPurposeVehicle"
	CategoryOther                 = "Other"
)

type Agency struct {
	ID                 uuid.UUID      `json:"id" db:"id"`
	Name               string         `json:"name" db:"name"`
	Code               string         `json:"code" db:"code"`
	Category           string         `json:"category" db:"category"`
	RoleType           RoleType       `json:"role_type" db:"role_type"`
	ContactPerson      string         `json:"contact_person" db:"contact_person"`
	ContactEmail       string         `json:"contact_email" db:"contact_email"`
	ContactPhone       string         `json:"contact_phone" db:"contact_phone"`
	AssignedProjectIDs pq.StringArray `json:"assigned_project_ids" db:"assigned_project_ids"`
	ActiveProjects     int            `json:"active_projects" db:"active_projects"`
	PerformanceScore   int            `json:"performance_score" db:"performance_score"`
	CreatedAt          time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at" db:"updated_at"`
}
