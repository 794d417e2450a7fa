package models

import "time"

type ClientProfile struct {
	Name       string   `json:"name"`
	Age        int      `json:"age"`
	Gender     string   `json:"gender"`
	HeightCM   *float64 `json:"height_cm,omitempty"`
	WeightKG   *float64 `json:"weight_kg,omitempty"`
	BodyFatPct *float64 `json:"body_fat_pct,omitempty"`
}

// AssessmentAnswers accumulates everything the client supplies across the
// intake steps. Unset fields stay nil; a non-nil field in an update request
// overwrites the stored value for the same key.
type AssessmentAnswers struct {
	ClientProfile      *ClientProfile `json:"client_profile,omitempty"`
	PerformanceGoals   []string       `json:"performance_goals,omitempty"`
	GoalPriorities     map[string]int `json:"goal_priorities,omitempty"`
	TrainingExperience *string        `json:"training_experience,omitempty"`
	TrainingFrequency  *int           `json:"training_frequency,omitempty"`
	TrainingStyles     []string       `json:"training_styles,omitempty"`
	SleepQuality       *int           `json:"sleep_quality,omitempty"`
	SleepHours         *int           `json:"sleep_hours,omitempty"`
	StressLevel        *int           `json:"stress_level,omitempty"`
	HealthConditions   []string       `json:"health_conditions,omitempty"`
	CurrentMedications *string        `json:"current_medications,omitempty"`
	CurrentSupplements *string        `json:"current_supplements,omitempty"`
	PeptideExperience  *string        `json:"peptide_experience,omitempty"`
	PreviousPeptides   *string        `json:"previous_peptides,omitempty"`
	Allergies          *string        `json:"allergies,omitempty"`
	DietType           *string        `json:"diet_type,omitempty"`
	AlcoholConsumption *string        `json:"alcohol_consumption,omitempty"`
	SmokingStatus      *string        `json:"smoking_status,omitempty"`
	InjectionComfort   *string        `json:"injection_comfort,omitempty"`
	InjectionFrequency *string        `json:"injection_frequency,omitempty"`
	ResultsTimeline    *string        `json:"results_timeline,omitempty"`
	AdditionalInfo     *string        `json:"additional_info,omitempty"`
}

type AssessmentSession struct {
	ID             string            `json:"id"`
	CurrentStep    int               `json:"current_step"`
	CompletedSteps []int             `json:"completed_steps"`
	Answers        AssessmentAnswers `json:"answers"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type StepInfo struct {
	Index          int      `json:"index"`
	Key            string   `json:"key"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredFields []string `json:"required_fields"`
}

var PerformanceGoalOptions = []string{
	"Muscle Growth & Hypertrophy",
	"Fat Loss & Body Composition",
	"Strength & Power Gains",
	"Recovery & Injury Prevention",
	"Endurance & Performance",
	"Anti-Aging & Longevity",
	"Hormone Optimization",
	"Sleep Quality Improvement",
}

var TrainingStyleOptions = []string{
	"Weight Training",
	"Cardio",
	"HIIT",
	"CrossFit",
	"Olympic Lifting",
	"Bodybuilding",
	"Powerlifting",
	"Functional Training",
}

var HealthConditionOptions = []string{
	"None",
	"Diabetes",
	"Heart Disease",
	"High Blood Pressure",
	"Thyroid Issues",
	"Kidney Disease",
	"Liver Disease",
	"Cancer",
	"Autoimmune Disorders",
}

var DietTypeOptions = []string{
	"Standard American Diet",
	"Ketogenic",
	"Paleo",
	"Mediterranean",
	"Vegetarian",
	"Vegan",
	"Intermittent Fasting",
	"Calorie Restricted",
}
