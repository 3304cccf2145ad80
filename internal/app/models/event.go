package models

import "time"

type ReportEvent struct {
	Event      string    `json:"event"`
	ReportID   string    `json:"reportId"`
	PatientID  string    `json:"pacienteId,omitempty"`
	ActorEmail string    `json:"actorEmail,omitempty"`
	ActorRole  string    `json:"actorRole,omitempty"`
	Version    int64     `json:"versao"`
	OccurredAt time.Time `json:"occurredAt"`
}
