package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/Dolonia333/enhanced-games-peptides/internal/models"
)

const notSpecified = "Not specified"

var corePeptideSelections = []models.PeptideSelection{
	{
		Compound:  "CJC-1295 + Ipamorelin",
		Purpose:   "Growth Hormone Optimization",
		Dose:      "2mg CJC-1295 + 300mcg Ipamorelin",
		Schedule:  "Monday, Wednesday, Friday evenings",
		Route:     "Subcutaneous abdominal area",
		Duration:  "12-week cycles with 4-week breaks",
		Rationale: "Synergistic GH release for muscle growth and recovery",
	},
	{
		Compound:  "BPC-157",
		Purpose:   "Tissue Repair & Recovery",
		Dose:      "500mcg",
		Schedule:  "Daily post-workout",
		Route:     "Subcutaneous near injury sites",
		Duration:  "4-6 weeks per injury cycle",
		Rationale: "Accelerated healing and tissue repair",
	},
	{
		Compound:  "TB-500",
		Purpose:   "Muscle Recovery & Growth",
		Dose:      "2mg",
		Schedule:  "Twice weekly",
		Route:     "Subcutaneous",
		Duration:  "4-6 week cycles",
		Rationale: "Enhanced muscle repair and growth",
	},
}

var cyclingPlan = []models.CyclePhase{
	{Name: "Loading phase", StartWeek: 1, EndWeek: 4, DoseLevel: "Full protocol dosage"},
	{Name: "Maintenance phase", StartWeek: 5, EndWeek: 12, DoseLevel: "75% dosage"},
}

const restWeeksBetweenCycles = 4

var supplementalRecommendations = []string{
	"Vitamin D3: 5000 IU daily",
	"Omega-3: 2g EPA/DHA daily",
	"Magnesium: 400mg daily",
	"Zinc: 30mg daily",
}

var monitoringSchedule = []models.MonitoringCheckpoint{
	{WeekOffset: 4, Action: "Blood work assessment"},
	{WeekOffset: 8, Action: "Progress evaluation and dosage adjustment"},
	{WeekOffset: 12, Action: "Final assessment and cycle planning"},
}

var importantNotes = []string{
	"Start with lowest effective dose",
	"Monitor for side effects",
	"Maintain proper injection technique",
	"Combine with optimized nutrition and training",
	"Regular medical supervision recommended",
}

const requiredMonitoring = "Regular blood work, hormone panels, comprehensive metabolic panel"

// ProtocolService derives a protocol report from a finished answer set. The
// derivation is a fixed rule table: the safety assessment is the only part
// that branches on answers; compound selection, cycling, supplements and
// monitoring are constants of the current protocol template.
type ProtocolService struct {
	now func() time.Time
}

func NewProtocolService() *ProtocolService {
	return &ProtocolService{now: time.Now}
}

// Generate is total over any answer shape: missing sections fall back to
// empty collections or "Not specified" instead of failing. Two calls with
// the same answers differ only in the generated_at stamp.
func (s *ProtocolService) Generate(answers models.AssessmentAnswers) models.ProtocolReport {
	return models.ProtocolReport{
		ClientSummary:               buildClientSummary(answers),
		SafetyAssessment:            buildSafetyAssessment(answers.HealthConditions),
		PeptideSelections:           append([]models.PeptideSelection(nil), corePeptideSelections...),
		CyclingPlan:                 append([]models.CyclePhase(nil), cyclingPlan...),
		RestWeeks:                   restWeeksBetweenCycles,
		SupplementalRecommendations: append([]string(nil), supplementalRecommendations...),
		MonitoringSchedule:          append([]models.MonitoringCheckpoint(nil), monitoringSchedule...),
		ImportantNotes:              append([]string(nil), importantNotes...),
		GeneratedAt:                 s.now().UTC(),
	}
}

func buildClientSummary(answers models.AssessmentAnswers) models.ClientSummary {
	summary := models.ClientSummary{
		Name:   notSpecified,
		Gender: notSpecified,
		Goals:  []string{},
	}
	if p := answers.ClientProfile; p != nil {
		if strings.TrimSpace(p.Name) != "" {
			summary.Name = p.Name
		}
		if strings.TrimSpace(p.Gender) != "" {
			summary.Gender = p.Gender
		}
		summary.Age = p.Age
	}
	if len(answers.PerformanceGoals) > 0 {
		summary.Goals = append(summary.Goals, answers.PerformanceGoals...)
	}
	return summary
}

// Clearance is granted only when the condition set is empty or exactly
// {"None"}. When "None" is ticked alongside real conditions, the real
// conditions win.
func buildSafetyAssessment(conditions []string) models.SafetyAssessment {
	riskFactors := []string{}
	for _, condition := range conditions {
		if condition != "None" {
			riskFactors = append(riskFactors, condition)
		}
	}

	clearance := models.ClearanceConsultationRequired
	if len(riskFactors) == 0 {
		clearance = models.ClearanceCleared
	}

	notes := []string{}
	for _, factor := range riskFactors {
		if factor == "Diabetes" || factor == "Heart Disease" {
			notes = append(notes, "Monitor blood glucose/cardiovascular health")
			break
		}
	}

	return models.SafetyAssessment{
		MedicalClearance:      clearance,
		RiskFactors:           riskFactors,
		ContraindicationNotes: notes,
		RequiredMonitoring:    requiredMonitoring,
	}
}

// RenderReport formats the report as the plain-text protocol the client can
// copy or export.
func RenderReport(report models.ProtocolReport) string {
	var b strings.Builder

	b.WriteString("ENHANCED GAMES PEPTIDES CUSTOM PROTOCOL\n")
	b.WriteString("==========================================\n\n")

	age := notSpecified
	if report.ClientSummary.Age > 0 {
		age = fmt.Sprintf("%d", report.ClientSummary.Age)
	}
	goals := "None selected"
	if len(report.ClientSummary.Goals) > 0 {
		goals = strings.Join(report.ClientSummary.Goals, ", ")
	}
	fmt.Fprintf(&b, "CLIENT: %s | AGE: %s | GOALS: %s\n\n", report.ClientSummary.Name, age, goals)

	b.WriteString("SAFETY ASSESSMENT\n")
	b.WriteString("--------------------\n")
	clearance := "CONSULTATION REQUIRED"
	if report.SafetyAssessment.MedicalClearance == models.ClearanceCleared {
		clearance = "CLEARED"
	}
	fmt.Fprintf(&b, "Medical Clearance Status: %s\n", clearance)
	riskFactors := "None identified"
	if len(report.SafetyAssessment.RiskFactors) > 0 {
		riskFactors = strings.Join(report.SafetyAssessment.RiskFactors, ", ")
	}
	fmt.Fprintf(&b, "Risk Factors: %s\n", riskFactors)
	contraindications := "None"
	if len(report.SafetyAssessment.ContraindicationNotes) > 0 {
		contraindications = strings.Join(report.SafetyAssessment.ContraindicationNotes, "; ")
	}
	fmt.Fprintf(&b, "Contraindications: %s\n", contraindications)
	fmt.Fprintf(&b, "Required Monitoring: %s\n\n", report.SafetyAssessment.RequiredMonitoring)

	b.WriteString("CORE PEPTIDE PROTOCOL\n")
	b.WriteString("-----------------------\n")
	b.WriteString("PRIMARY BLEND:\n\n")
	for i, selection := range report.PeptideSelections {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, selection.Compound, selection.Purpose)
		fmt.Fprintf(&b, "    Dosage: %s\n", selection.Dose)
		fmt.Fprintf(&b, "    Schedule: %s\n", selection.Schedule)
		fmt.Fprintf(&b, "    Injection: %s\n", selection.Route)
		fmt.Fprintf(&b, "    Duration: %s\n", selection.Duration)
		fmt.Fprintf(&b, "    Rationale: %s\n\n", selection.Rationale)
	}

	b.WriteString("CYCLING STRATEGY\n")
	b.WriteString("------------------\n")
	for i, phase := range report.CyclingPlan {
		fmt.Fprintf(&b, "Phase %d (Weeks %d-%d): %s - %s\n", i+1, phase.StartWeek, phase.EndWeek, phase.Name, phase.DoseLevel)
	}
	fmt.Fprintf(&b, "Rest Period: %d weeks between cycles\n\n", report.RestWeeks)

	b.WriteString("SUPPLEMENTAL SUPPORT\n")
	b.WriteString("----------------------\n")
	for _, item := range report.SupplementalRecommendations {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	b.WriteString("\n")

	b.WriteString("MONITORING & ADJUSTMENTS\n")
	b.WriteString("--------------------------\n")
	for _, checkpoint := range report.MonitoringSchedule {
		fmt.Fprintf(&b, "Week %d: %s\n", checkpoint.WeekOffset, checkpoint.Action)
	}
	b.WriteString("\n")

	b.WriteString("IMPORTANT NOTES\n")
	b.WriteString("-----------------\n")
	for _, note := range report.ImportantNotes {
		fmt.Fprintf(&b, "- %s\n", note)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Generated: %s\n", report.GeneratedAt.Format("2006-01-02"))

	return b.String()
}
