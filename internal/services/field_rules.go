package services

// Bounds for the numeric intake fields. Each predicate answers only whether a
// supplied value sits inside its documented range; absence is handled by the
// caller, since an untouched field is neither valid nor invalid.

const (
	MinAge = 18
	MaxAge = 100
)

func ValidAge(age int) bool {
	return age >= MinAge && age <= MaxAge
}

func ValidHeightCM(height float64) bool {
	return height >= 120 && height <= 250
}

func ValidWeightKG(weight float64) bool {
	return weight >= 40 && weight <= 200
}

func ValidBodyFatPct(pct float64) bool {
	return pct >= 3 && pct <= 50
}

func ValidTrainingFrequency(days int) bool {
	return days >= 1 && days <= 7
}

func ValidSleepQuality(rating int) bool {
	return rating >= 1 && rating <= 10
}

func ValidSleepHours(hours int) bool {
	return hours >= 4 && hours <= 12
}

func ValidStressLevel(rating int) bool {
	return rating >= 1 && rating <= 10
}

func ValidGoalPriority(rank int) bool {
	return rank >= 1 && rank <= 5
}
