package services

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/Dolonia333/enhanced-games-peptides/internal/models"
)

func fixedClockService(t *testing.T) *ProtocolService {
	t.Helper()
	service := NewProtocolService()
	stamp := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return stamp }
	return service
}

func TestGenerateIsDeterministic(t *testing.T) {
	service := fixedClockService(t)
	answers := completeAnswers()

	first := service.Generate(answers)
	second := service.Generate(answers)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical reports for identical answers and clock")
	}
	if RenderReport(first) != RenderReport(second) {
		t.Errorf("Expected identical rendered text for identical reports")
	}
}

func TestGenerateClearsHealthyClient(t *testing.T) {
	service := fixedClockService(t)

	report := service.Generate(models.AssessmentAnswers{HealthConditions: []string{"None"}})

	if report.SafetyAssessment.MedicalClearance != models.ClearanceCleared {
		t.Errorf("Expected CLEARED, got %s", report.SafetyAssessment.MedicalClearance)
	}
	if len(report.SafetyAssessment.RiskFactors) != 0 {
		t.Errorf("Expected no risk factors, got %v", report.SafetyAssessment.RiskFactors)
	}
	if len(report.SafetyAssessment.ContraindicationNotes) != 0 {
		t.Errorf("Expected no contraindication notes, got %v", report.SafetyAssessment.ContraindicationNotes)
	}
}

func TestGenerateRequiresConsultationForDiabetes(t *testing.T) {
	service := fixedClockService(t)

	report := service.Generate(models.AssessmentAnswers{HealthConditions: []string{"Diabetes"}})

	if report.SafetyAssessment.MedicalClearance != models.ClearanceConsultationRequired {
		t.Errorf("Expected CONSULTATION_REQUIRED, got %s", report.SafetyAssessment.MedicalClearance)
	}
	if len(report.SafetyAssessment.RiskFactors) != 1 || report.SafetyAssessment.RiskFactors[0] != "Diabetes" {
		t.Errorf("Expected risk factors [Diabetes], got %v", report.SafetyAssessment.RiskFactors)
	}
	if len(report.SafetyAssessment.ContraindicationNotes) == 0 {
		t.Errorf("Expected a glucose/cardiovascular monitoring note")
	}
}

func TestGenerateNonNoneConditionsWin(t *testing.T) {
	service := fixedClockService(t)

	// "None" ticked alongside a real condition is representable; the real
	// condition decides clearance.
	report := service.Generate(models.AssessmentAnswers{HealthConditions: []string{"None", "Heart Disease"}})

	if report.SafetyAssessment.MedicalClearance != models.ClearanceConsultationRequired {
		t.Errorf("Expected CONSULTATION_REQUIRED, got %s", report.SafetyAssessment.MedicalClearance)
	}
	if len(report.SafetyAssessment.RiskFactors) != 1 || report.SafetyAssessment.RiskFactors[0] != "Heart Disease" {
		t.Errorf("Expected risk factors [Heart Disease], got %v", report.SafetyAssessment.RiskFactors)
	}
}

func TestGenerateNoContraindicationNoteForOtherConditions(t *testing.T) {
	service := fixedClockService(t)

	report := service.Generate(models.AssessmentAnswers{HealthConditions: []string{"Thyroid Issues"}})

	if report.SafetyAssessment.MedicalClearance != models.ClearanceConsultationRequired {
		t.Errorf("Expected CONSULTATION_REQUIRED, got %s", report.SafetyAssessment.MedicalClearance)
	}
	if len(report.SafetyAssessment.ContraindicationNotes) != 0 {
		t.Errorf("Expected no contraindication notes, got %v", report.SafetyAssessment.ContraindicationNotes)
	}
}

func TestGenerateFullAssessment(t *testing.T) {
	service := fixedClockService(t)

	report := service.Generate(completeAnswers())

	if report.SafetyAssessment.MedicalClearance != models.ClearanceCleared {
		t.Errorf("Expected CLEARED, got %s", report.SafetyAssessment.MedicalClearance)
	}
	if len(report.PeptideSelections) != 3 {
		t.Errorf("Expected 3 peptide selections, got %d", len(report.PeptideSelections))
	}
	if len(report.CyclingPlan) != 2 {
		t.Errorf("Expected 2 cycling phases, got %d", len(report.CyclingPlan))
	}
	if len(report.SupplementalRecommendations) != 4 {
		t.Errorf("Expected 4 supplemental items, got %d", len(report.SupplementalRecommendations))
	}
	if len(report.MonitoringSchedule) != 3 {
		t.Errorf("Expected 3 monitoring checkpoints, got %d", len(report.MonitoringSchedule))
	}
	if report.ClientSummary.Name != "Jane Doe" {
		t.Errorf("Expected client name Jane Doe, got %s", report.ClientSummary.Name)
	}
}

func TestGenerateIsTotalOverEmptyAnswers(t *testing.T) {
	service := fixedClockService(t)

	report := service.Generate(models.AssessmentAnswers{})

	if report.ClientSummary.Name != "Not specified" {
		t.Errorf("Expected missing name to default to Not specified, got %q", report.ClientSummary.Name)
	}
	if len(report.ClientSummary.Goals) != 0 {
		t.Errorf("Expected empty goals, got %v", report.ClientSummary.Goals)
	}
	if report.SafetyAssessment.MedicalClearance != models.ClearanceCleared {
		t.Errorf("Expected empty conditions to clear, got %s", report.SafetyAssessment.MedicalClearance)
	}
	if len(report.PeptideSelections) != 3 {
		t.Errorf("Expected the fixed selections regardless of answers")
	}
}

func TestRenderReportLayout(t *testing.T) {
	service := fixedClockService(t)

	text := RenderReport(service.Generate(completeAnswers()))

	for _, expected := range []string{
		"ENHANCED GAMES PEPTIDES CUSTOM PROTOCOL",
		"CLIENT: Jane Doe | AGE: 30 | GOALS: Muscle Growth & Hypertrophy",
		"Medical Clearance Status: CLEARED",
		"Risk Factors: None identified",
		"1. CJC-1295 + Ipamorelin - Growth Hormone Optimization",
		"2. BPC-157 - Tissue Repair & Recovery",
		"3. TB-500 - Muscle Recovery & Growth",
		"Phase 1 (Weeks 1-4): Loading phase - Full protocol dosage",
		"Phase 2 (Weeks 5-12): Maintenance phase - 75% dosage",
		"Rest Period: 4 weeks between cycles",
		"- Vitamin D3: 5000 IU daily",
		"Week 4: Blood work assessment",
		"Generated: 2025-08-30",
	} {
		if !strings.Contains(text, expected) {
			t.Errorf("Expected rendered report to contain %q", expected)
		}
	}
}
