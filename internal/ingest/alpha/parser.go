package alpha

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/claude/gymez/internal/models"
)

var (
	// "Legs · Day 2";"2026-02-19 4:54 h";"1:02 hr"
	sessionLine = regexp.MustCompile(`^"(.+)";"(\d{4}-\d{2}-\d{2}\s+\d+:\d+)\s+h";"(.+)"$`)

	// "1. Hack Squats · Machine · 8 reps[ · modifiers]"[;"warmups"]
	exerciseLine = regexp.MustCompile(`^"(\d+)\.\s+(.+?)(?:\s+·\s+(\S.*?))?\s+·\s+(\d+)\s+reps(.*?)"(?:;"(.+)")?$`)

	// 1;115;8;1
	setLine = regexp.MustCompile(`^(\d+);(.+);(\d+);(.+)$`)

	// WU1 · 37,5 kg · 9 reps
	warmupSet = regexp.MustCompile(`WU(\d+)\s+·\s+(.+?)\s+kg\s+·\s+(\d+)\s+reps`)
)

const columnHeader = "#;KG;REPS;RIR"

var sessionDateLayouts = []string{"2006-01-02 15:04", "2006-01-02 3:04"}

type parser struct {
	sessions []models.WorkoutSession
	session  *models.WorkoutSession
	exercise *models.WorkoutExercise
}

// Parse reads an Alpha Progression CSV export. Sessions are separated by
// blank lines; unrecognized lines such as notes are skipped.
func Parse(r io.Reader) ([]models.WorkoutSession, error) {
	p := &parser{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := p.line(strings.TrimSpace(scanner.Text())); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading export: %w", err)
	}
	p.endSession()
	return p.sessions, nil
}

func (p *parser) line(line string) error {
	if line == "" {
		p.endSession()
		return nil
	}
	if line == columnHeader {
		return nil
	}

	if m := sessionLine.FindStringSubmatch(line); m != nil {
		p.endSession()
		date, err := parseSessionDate(m[2])
		if err != nil {
			return err
		}
		p.session = &models.WorkoutSession{Name: m[1], Date: date, Duration: m[3]}
		return nil
	}

	if m := exerciseLine.FindStringSubmatch(line); m != nil {
		if p.session == nil {
			return fmt.Errorf("exercise without session: %q", line)
		}
		p.endExercise()
		num, _ := strconv.Atoi(m[1])
		target, _ := strconv.Atoi(m[4])
		p.exercise = &models.WorkoutExercise{
			Number:     num,
			Name:       strings.TrimSpace(m[2]),
			Equipment:  strings.TrimSpace(m[3]),
			TargetReps: target,
		}
		if m[6] != "" {
			p.exercise.Sets = append(p.exercise.Sets, parseWarmups(m[6])...)
		}
		return nil
	}

	if m := setLine.FindStringSubmatch(line); m != nil {
		if p.exercise == nil {
			return fmt.Errorf("set without exercise: %q", line)
		}
		num, _ := strconv.Atoi(m[1])
		weight, bodyweight := parseWeight(m[2])
		reps, _ := strconv.Atoi(m[3])
		p.exercise.Sets = append(p.exercise.Sets, models.WorkoutSet{
			Number:           num,
			WeightKg:         weight,
			IsBodyweightPlus: bodyweight,
			Reps:             reps,
			RIR:              parseDecimal(m[4]),
		})
	}
	return nil
}

func (p *parser) endExercise() {
	if p.exercise != nil && p.session != nil {
		p.session.Exercises = append(p.session.Exercises, *p.exercise)
	}
	p.exercise = nil
}

func (p *parser) endSession() {
	p.endExercise()
	if p.session != nil {
		p.sessions = append(p.sessions, *p.session)
	}
	p.session = nil
}

// parseSessionDate accepts both "2026-02-19 4:54" and "2026-02-19 16:54".
func parseSessionDate(s string) (time.Time, error) {
	for _, layout := range sessionDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse session date %q", s)
}

// parseWarmups reads "WU1 · 37,5 kg · 9 reps<br>WU2 · 72,5 kg · 7 reps".
func parseWarmups(s string) []models.WorkoutSet {
	var sets []models.WorkoutSet
	for _, part := range strings.Split(s, "<br>") {
		m := warmupSet.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		num, _ := strconv.Atoi(m[1])
		weight, bodyweight := parseWeight(m[2])
		reps, _ := strconv.Atoi(m[3])
		sets = append(sets, models.WorkoutSet{
			Number:           num,
			WeightKg:         weight,
			IsBodyweightPlus: bodyweight,
			Reps:             reps,
			IsWarmup:         true,
		})
	}
	return sets
}

// parseWeight handles "+35" (bodyweight plus 35) and "102,5".
func parseWeight(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "+"); ok {
		return parseDecimal(rest), true
	}
	return parseDecimal(s), false
}

// parseDecimal reads a comma-decimal number; malformed input yields 0.
func parseDecimal(s string) float64 {
	f, _ := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	return f
}
