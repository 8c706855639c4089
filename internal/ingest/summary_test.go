package ingest

import (
	"testing"
	"time"

	"github.com/claude/gymez/internal/models"
	"github.com/claude/gymez/internal/strength"
)

func session(day int, exercises ...models.WorkoutExercise) models.WorkoutSession {
	return models.WorkoutSession{
		Name:      "Session",
		Date:      time.Date(2026, 3, day, 18, 0, 0, 0, time.UTC),
		Exercises: exercises,
	}
}

func exercise(name, equipment string, sets ...models.WorkoutSet) models.WorkoutExercise {
	return models.WorkoutExercise{Name: name, Equipment: equipment, Sets: sets}
}

// TestSummarizeBestAcrossSessions verifies the best set wins across sessions and keeps its date.
func TestSummarizeBestAcrossSessions(t *testing.T) {
	sessions := []models.WorkoutSession{
		session(1, exercise("Squat", "Barbell",
			models.WorkoutSet{WeightKg: 60, Reps: 10, IsWarmup: true},
			models.WorkoutSet{WeightKg: 140, Reps: 5},
		)),
		session(8, exercise("Squat", "Barbell",
			models.WorkoutSet{WeightKg: 150, Reps: 5},
			models.WorkoutSet{WeightKg: 145, Reps: 5},
		)),
	}
	sum := Summarize(sessions, strength.Epley)

	if sum.Sessions != 2 || sum.WorkingSets != 3 || sum.SkippedSets != 0 {
		t.Errorf("counts = %d/%d/%d, want 2/3/0", sum.Sessions, sum.WorkingSets, sum.SkippedSets)
	}
	if len(sum.Lifts) != 1 {
		t.Fatalf("lifts = %d, want 1", len(sum.Lifts))
	}
	best := sum.Lifts[0]
	// 150 * (1 + 5/30) = 175 kg = 385.8 lbs
	if best.OneRepMaxKg != 175 || best.OneRepMaxLbs != 386 {
		t.Errorf("best = %v kg / %v lbs, want 175 / 386", best.OneRepMaxKg, best.OneRepMaxLbs)
	}
	if best.Date.Day() != 8 {
		t.Errorf("date = %v, want March 8", best.Date)
	}
	if best.Tier != strength.Advanced {
		t.Errorf("tier = %s, want Advanced", best.Tier)
	}
}

// TestSummarizeEquipmentSeparate verifies the same exercise on different equipment is tracked separately.
func TestSummarizeEquipmentSeparate(t *testing.T) {
	sum := Summarize([]models.WorkoutSession{
		session(1,
			exercise("Bench Press", "Barbell", models.WorkoutSet{WeightKg: 100, Reps: 5}),
			exercise("Bench Press", "Dumbbells", models.WorkoutSet{WeightKg: 40, Reps: 8}),
		),
	}, strength.Epley)
	if len(sum.Lifts) != 2 {
		t.Fatalf("lifts = %d, want 2", len(sum.Lifts))
	}
	if sum.Lifts[0].Equipment != "Barbell" || sum.Lifts[1].Equipment != "Dumbbells" {
		t.Errorf("order = %s, %s", sum.Lifts[0].Equipment, sum.Lifts[1].Equipment)
	}
}

// TestSummarizeSkipsUnestimable verifies bodyweight-plus and out-of-range sets are skipped.
func TestSummarizeSkipsUnestimable(t *testing.T) {
	sum := Summarize([]models.WorkoutSession{
		session(1,
			exercise("Pull-ups", "Bodyweight", models.WorkoutSet{WeightKg: 20, Reps: 8, IsBodyweightPlus: true}),
			exercise("Leg Press", "Machine",
				models.WorkoutSet{WeightKg: 200, Reps: 40},
				models.WorkoutSet{WeightKg: 0, Reps: 10},
			),
		),
	}, strength.Epley)
	if sum.WorkingSets != 3 || sum.SkippedSets != 3 {
		t.Errorf("working/skipped = %d/%d, want 3/3", sum.WorkingSets, sum.SkippedSets)
	}
	if len(sum.Lifts) != 0 {
		t.Errorf("lifts = %+v, want none", sum.Lifts)
	}
}

// TestSummarizeTieKeepsEarlier verifies an equal estimate does not replace the earlier set.
func TestSummarizeTieKeepsEarlier(t *testing.T) {
	sum := Summarize([]models.WorkoutSession{
		session(1, exercise("Deadlift", "Barbell", models.WorkoutSet{WeightKg: 180, Reps: 3})),
		session(2, exercise("Deadlift", "Barbell", models.WorkoutSet{WeightKg: 180, Reps: 3})),
	}, strength.Brzycki)
	if got := sum.Lifts[0].Date.Day(); got != 1 {
		t.Errorf("date = March %d, want March 1", got)
	}
}

// TestSummarizeUnknownExerciseTier verifies exercises without standards report N/A.
func TestSummarizeUnknownExerciseTier(t *testing.T) {
	sum := Summarize([]models.WorkoutSession{
		session(1, exercise("Hack Squats", "Machine", models.WorkoutSet{WeightKg: 115, Reps: 10})),
	}, strength.Epley)
	if sum.Lifts[0].Tier != strength.NotApplicable {
		t.Errorf("tier = %s, want N/A", sum.Lifts[0].Tier)
	}
}

// TestSummarizeEmpty verifies an empty log yields an empty, non-nil lift list.
func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil, strength.Epley)
	if sum.Lifts == nil || len(sum.Lifts) != 0 {
		t.Errorf("lifts = %#v, want empty slice", sum.Lifts)
	}
}
