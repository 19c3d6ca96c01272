package domain

import "time"

// ApplicationStatus represents the lifecycle state of an application.
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "Pending"
	StatusProcessed ApplicationStatus = "Processed"
	StatusRejected  ApplicationStatus = "Rejected"
)

// Valid reports whether s is one of the three known statuses.
func (s ApplicationStatus) Valid() bool {
	return s == StatusPending || s == StatusProcessed || s == StatusRejected
}

// Application is a client's request for an insurance product. Created with
// status Pending; mutated only through a status transition performed by a
// manager or admin, which also stamps the processing manager and time.
// Applications are never deleted.
type Application struct {
	ID               int64             `json:"id"`
	ClientID         int64             `json:"client_id"`
	ManagerID        *int64            `json:"manager_id,omitempty"`
	InsuranceTypeID  int64             `json:"insurance_type_id"`
	InsuranceSubtype string            `json:"insurance_subtype"`
	Details          Document          `json:"details"`
	Status           ApplicationStatus `json:"status"`
	CreatedAt        time.Time         `json:"created_at"`
	ProcessedAt      *time.Time        `json:"processed_at,omitempty"`
	Price            *float64          `json:"price,omitempty"`

	// Joined display fields, populated on listings only.
	InsuranceName string `json:"insurance_name,omitempty"`
	ClientName    string `json:"client_name,omitempty"`
	ManagerName   string `json:"manager_name,omitempty"`
}
