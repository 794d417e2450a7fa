package services

import (
	"strings"
	"time"

	"github.com/Dolonia333/enhanced-games-peptides/internal/models"
)

const (
	StepProfile = iota
	StepGoals
	StepTraining
	StepHealth
	StepLifestyle
	StepPreferences
	StepReview
)

var assessmentSteps = []models.StepInfo{
	{Index: StepProfile, Key: "profile", Title: "Client Profile", Description: "Basic information", RequiredFields: []string{"client_profile.name", "client_profile.age", "client_profile.gender"}},
	{Index: StepGoals, Key: "goals", Title: "Performance Goals", Description: "What you want to achieve", RequiredFields: []string{"performance_goals"}},
	{Index: StepTraining, Key: "training", Title: "Training & Lifestyle", Description: "Your current routine", RequiredFields: []string{"training_experience", "training_frequency"}},
	{Index: StepHealth, Key: "health", Title: "Health History", Description: "Medical background", RequiredFields: []string{"health_conditions", "peptide_experience"}},
	{Index: StepLifestyle, Key: "lifestyle", Title: "Lifestyle Factors", Description: "Daily habits", RequiredFields: []string{"diet_type", "smoking_status"}},
	{Index: StepPreferences, Key: "preferences", Title: "Preferences", Description: "Your comfort level", RequiredFields: []string{"injection_comfort", "results_timeline"}},
	{Index: StepReview, Key: "review", Title: "Review & Generate", Description: "Final review and protocol", RequiredFields: []string{}},
}

type AssessmentSessionStore interface {
	Create() (*models.AssessmentSession, error)
	Get(id string) (*models.AssessmentSession, error)
	Update(id string, fn func(*models.AssessmentSession) error) (*models.AssessmentSession, error)
	Delete(id string) error
	Count() int
}

// AssessmentService drives a client through the fixed seven-step intake
// sequence: answers accumulate under their field keys, each step gates
// forward navigation on its required fields, and the review step is the only
// place a protocol can be generated from.
type AssessmentService struct {
	store AssessmentSessionStore
}

func NewAssessmentService(store AssessmentSessionStore) *AssessmentService {
	return &AssessmentService{store: store}
}

func (s *AssessmentService) Steps() []models.StepInfo {
	steps := make([]models.StepInfo, len(assessmentSteps))
	copy(steps, assessmentSteps)
	return steps
}

func (s *AssessmentService) StepCount() int {
	return len(assessmentSteps)
}

func (s *AssessmentService) Create() (*models.AssessmentSession, error) {
	return s.store.Create()
}

func (s *AssessmentService) Get(id string) (*models.AssessmentSession, error) {
	return s.store.Get(id)
}

func (s *AssessmentService) Delete(id string) error {
	return s.store.Delete(id)
}

func (s *AssessmentService) ActiveSessions() int {
	return s.store.Count()
}

// UpdateAnswers merges the supplied partial answers into the session. The
// merge is shallow: every non-nil field overwrites the stored value for the
// same key, and the client profile is replaced as a whole sub-object. No
// validation happens here; bounds feedback is advisory and computed
// separately.
func (s *AssessmentService) UpdateAnswers(id string, partial models.AssessmentAnswers) (*models.AssessmentSession, error) {
	return s.store.Update(id, func(session *models.AssessmentSession) error {
		mergeAnswers(&session.Answers, partial)
		session.UpdatedAt = time.Now().UTC()
		return nil
	})
}

// CanAdvance reports whether the required fields for the given step are all
// present. The profile step additionally requires the age to sit inside the
// eligibility range; 18+ is a hard business rule, not a display hint.
func (s *AssessmentService) CanAdvance(session *models.AssessmentSession, step int) bool {
	a := session.Answers
	switch step {
	case StepProfile:
		p := a.ClientProfile
		return p != nil &&
			strings.TrimSpace(p.Name) != "" &&
			ValidAge(p.Age) &&
			strings.TrimSpace(p.Gender) != ""
	case StepGoals:
		return len(a.PerformanceGoals) > 0
	case StepTraining:
		return stringSet(a.TrainingExperience) && intSet(a.TrainingFrequency)
	case StepHealth:
		return len(a.HealthConditions) > 0 && stringSet(a.PeptideExperience)
	case StepLifestyle:
		return stringSet(a.DietType) && stringSet(a.SmokingStatus)
	case StepPreferences:
		return stringSet(a.InjectionComfort) && stringSet(a.ResultsTimeline)
	case StepReview:
		return true
	default:
		return false
	}
}

// Advance moves the session one step forward. It is a silent no-op when the
// current step's required fields are incomplete; on success the departed step
// is recorded as completed (idempotently) and the index is clamped at the
// review step.
func (s *AssessmentService) Advance(id string) (*models.AssessmentSession, bool, error) {
	moved := false
	session, err := s.store.Update(id, func(session *models.AssessmentSession) error {
		if !s.CanAdvance(session, session.CurrentStep) {
			return nil
		}
		if session.CurrentStep >= StepReview {
			return nil
		}

		if !containsStep(session.CompletedSteps, session.CurrentStep) {
			session.CompletedSteps = append(session.CompletedSteps, session.CurrentStep)
		}
		session.CurrentStep++
		session.UpdatedAt = time.Now().UTC()
		moved = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return session, moved, nil
}

// Retreat moves the session one step back, clamped at the first step. It
// never touches answers or completed steps.
func (s *AssessmentService) Retreat(id string) (*models.AssessmentSession, error) {
	return s.store.Update(id, func(session *models.AssessmentSession) error {
		if session.CurrentStep > 0 {
			session.CurrentStep--
			session.UpdatedAt = time.Now().UTC()
		}
		return nil
	})
}

func mergeAnswers(dst *models.AssessmentAnswers, src models.AssessmentAnswers) {
	if src.ClientProfile != nil {
		dst.ClientProfile = src.ClientProfile
	}
	if src.PerformanceGoals != nil {
		dst.PerformanceGoals = src.PerformanceGoals
	}
	if src.GoalPriorities != nil {
		dst.GoalPriorities = src.GoalPriorities
	}
	if src.TrainingExperience != nil {
		dst.TrainingExperience = src.TrainingExperience
	}
	if src.TrainingFrequency != nil {
		dst.TrainingFrequency = src.TrainingFrequency
	}
	if src.TrainingStyles != nil {
		dst.TrainingStyles = src.TrainingStyles
	}
	if src.SleepQuality != nil {
		dst.SleepQuality = src.SleepQuality
	}
	if src.SleepHours != nil {
		dst.SleepHours = src.SleepHours
	}
	if src.StressLevel != nil {
		dst.StressLevel = src.StressLevel
	}
	if src.HealthConditions != nil {
		dst.HealthConditions = src.HealthConditions
	}
	if src.CurrentMedications != nil {
		dst.CurrentMedications = src.CurrentMedications
	}
	if src.CurrentSupplements != nil {
		dst.CurrentSupplements = src.CurrentSupplements
	}
	if src.PeptideExperience != nil {
		dst.PeptideExperience = src.PeptideExperience
	}
	if src.PreviousPeptides != nil {
		dst.PreviousPeptides = src.PreviousPeptides
	}
	if src.Allergies != nil {
		dst.Allergies = src.Allergies
	}
	if src.DietType != nil {
		dst.DietType = src.DietType
	}
	if src.AlcoholConsumption != nil {
		dst.AlcoholConsumption = src.AlcoholConsumption
	}
	if src.SmokingStatus != nil {
		dst.SmokingStatus = src.SmokingStatus
	}
	if src.InjectionComfort != nil {
		dst.InjectionComfort = src.InjectionComfort
	}
	if src.InjectionFrequency != nil {
		dst.InjectionFrequency = src.InjectionFrequency
	}
	if src.ResultsTimeline != nil {
		dst.ResultsTimeline = src.ResultsTimeline
	}
	if src.AdditionalInfo != nil {
		dst.AdditionalInfo = src.AdditionalInfo
	}
}

func stringSet(value *string) bool {
	return value != nil && strings.TrimSpace(*value) != ""
}

func intSet(value *int) bool {
	return value != nil && *value != 0
}

func containsStep(steps []int, step int) bool {
	for _, s := range steps {
		if s == step {
			return true
		}
	}
	return false
}

type FieldAdvisory struct {
	Field   string `json:"field"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// Advise evaluates the bounds rules for every numeric field present in the
// partial update. Results are inline feedback for the client; they never
// block storing the answer or advancing a step whose predicate is met.
func Advise(partial models.AssessmentAnswers) []FieldAdvisory {
	var advisories []FieldAdvisory

	add := func(field string, valid bool, message string) {
		if valid {
			message = ""
		}
		advisories = append(advisories, FieldAdvisory{Field: field, Valid: valid, Message: message})
	}

	if p := partial.ClientProfile; p != nil {
		if p.Age != 0 {
			add("client_profile.age", ValidAge(p.Age), "age must be between 18 and 100")
		}
		if p.HeightCM != nil {
			add("client_profile.height_cm", ValidHeightCM(*p.HeightCM), "height_cm must be between 120 and 250")
		}
		if p.WeightKG != nil {
			add("client_profile.weight_kg", ValidWeightKG(*p.WeightKG), "weight_kg must be between 40 and 200")
		}
		if p.BodyFatPct != nil {
			add("client_profile.body_fat_pct", ValidBodyFatPct(*p.BodyFatPct), "body_fat_pct must be between 3 and 50")
		}
	}
	if partial.TrainingFrequency != nil {
		add("training_frequency", ValidTrainingFrequency(*partial.TrainingFrequency), "training_frequency must be between 1 and 7")
	}
	if partial.SleepQuality != nil {
		add("sleep_quality", ValidSleepQuality(*partial.SleepQuality), "sleep_quality must be between 1 and 10")
	}
	if partial.SleepHours != nil {
		add("sleep_hours", ValidSleepHours(*partial.SleepHours), "sleep_hours must be between 4 and 12")
	}
	if partial.StressLevel != nil {
		add("stress_level", ValidStressLevel(*partial.StressLevel), "stress_level must be between 1 and 10")
	}
	for goal, rank := range partial.GoalPriorities {
		if !ValidGoalPriority(rank) {
			advisories = append(advisories, FieldAdvisory{
				Field:   "goal_priorities." + goal,
				Valid:   false,
				Message: "priority must be between 1 and 5",
			})
		}
	}

	return advisories
}
