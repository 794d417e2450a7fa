package models

import "time"

type ClearanceStatus string

const (
	ClearanceCleared              ClearanceStatus = "CLEARED"
	ClearanceConsultationRequired ClearanceStatus = "CONSULTATION_REQUIRED"
)

type ClientSummary struct {
	Name   string   `json:"name"`
	Age    int      `json:"age"`
	Goals  []string `json:"goals"`
	Gender string   `json:"gender"`
}

type SafetyAssessment struct {
	MedicalClearance      ClearanceStatus `json:"medical_clearance"`
	RiskFactors           []string        `json:"risk_factors"`
	ContraindicationNotes []string        `json:"contraindication_notes"`
	RequiredMonitoring    string          `json:"required_monitoring"`
}

type PeptideSelection struct {
	Compound  string `json:"compound"`
	Purpose   string `json:"purpose"`
	Dose      string `json:"dose"`
	Schedule  string `json:"schedule"`
	Route     string `json:"route"`
	Duration  string `json:"duration"`
	Rationale string `json:"rationale"`
}

type CyclePhase struct {
	Name      string `json:"name"`
	StartWeek int    `json:"start_week"`
	EndWeek   int    `json:"end_week"`
	DoseLevel string `json:"dose_level"`
}

type MonitoringCheckpoint struct {
	WeekOffset int    `json:"week_offset"`
	Action     string `json:"action"`
}

// ProtocolReport is the derived output of a completed assessment. It is
// immutable once generated; regenerating produces a fresh value.
type ProtocolReport struct {
	ClientSummary               ClientSummary          `json:"client_summary"`
	SafetyAssessment            SafetyAssessment       `json:"safety_assessment"`
	PeptideSelections           []PeptideSelection     `json:"peptide_selections"`
	CyclingPlan                 []CyclePhase           `json:"cycling_plan"`
	RestWeeks                   int                    `json:"rest_weeks"`
	SupplementalRecommendations []string               `json:"supplemental_recommendations"`
	MonitoringSchedule          []MonitoringCheckpoint `json:"monitoring_schedule"`
	ImportantNotes              []string               `json:"important_notes"`
	GeneratedAt                 time.Time              `json:"generated_at"`
}
