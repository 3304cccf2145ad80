package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportFilter is the repository level listing filter. StudentIDs, when non-nil,
// restricts results to reports authored by one of those students; an empty non-nil
// slice matches nothing.
type ReportFilter struct {
	Active        bool
	Search        string
	StudentName   string
	PatientName   string
	TreatmentType string
	StaffName     string
	CreatedFrom   *time.Time
	CreatedUntil  *time.Time
	StudentIDs    []primitive.ObjectID
}
