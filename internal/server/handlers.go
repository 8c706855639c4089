package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/claude/gymez/internal/models"
	"github.com/claude/gymez/internal/render"
	"github.com/claude/gymez/internal/strength"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleOneRepMaxPost(w http.ResponseWriter, r *http.Request) {
	var body models.OneRepMaxBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	req, err := body.Request()
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}
	s.writeEvaluation(w, req)
}

func (s *Server) handleOneRepMaxGet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	weight, err := parseFloatParam(q.Get("weight"), "weight")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}
	rawReps, err := parseFloatParam(q.Get("reps"), "reps")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}
	reps, err := models.WholeReps(rawReps)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}
	s.writeEvaluation(w, models.OneRepMaxRequest{
		Weight:   weight,
		Reps:     reps,
		Formula:  q.Get("formula"),
		Exercise: q.Get("exercise"),
	})
}

func (s *Server) writeEvaluation(w http.ResponseWriter, req models.OneRepMaxRequest) {
	resp, err := models.Evaluate(req, s.formula)
	switch {
	case errors.Is(err, strength.ErrUnknownFormula):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	case errors.Is(err, strength.ErrInvalidInput):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	case err != nil:
		s.log.Error("one-rep-max evaluation", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	oneRM, err := parseOneRepMax(r)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"one_rep_max": oneRM,
		"percentages": strength.BuildPercentageChart(oneRM),
	})
}

func (s *Server) handleChartPNG(w http.ResponseWriter, r *http.Request) {
	oneRM, err := parseOneRepMax(r)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}

	title := fmt.Sprintf("1RM %g", oneRM)
	if ex := r.URL.Query().Get("exercise"); ex != "" {
		title = ex + " " + title
	}

	img, err := render.PercentageChartPNG(strength.BuildPercentageChart(oneRM), title)
	if err != nil {
		s.log.Error("chart render", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(img)
}

func (s *Server) handleChartXLSX(w http.ResponseWriter, r *http.Request) {
	oneRM, err := parseOneRepMax(r)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}
	book, err := render.ChartWorkbook(oneRM, strength.BuildPercentageChart(oneRM))
	if err != nil {
		s.log.Error("chart workbook", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeWorkbook(w, "percentage-chart.xlsx", book)
}

func (s *Server) handleStrengthLevel(w http.ResponseWriter, r *http.Request) {
	oneRM, err := parseOneRepMax(r)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}
	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise parameter required"})
		return
	}
	writeJSON(w, http.StatusOK, models.NewStrengthLevel(oneRM, exercise))
}

func (s *Server) handleFormulas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"default":  s.formula,
		"formulas": strength.AllFormulaInfo(),
	})
}

func (s *Server) handleLifts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, strength.CommonLifts)
}

func (s *Server) handlePersonalRecord(w http.ResponseWriter, r *http.Request) {
	var req models.PersonalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	cmp, err := req.Compare()
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}

func (s *Server) handleAlphaIngest(w http.ResponseWriter, r *http.Request) {
	f := s.formula
	if name := r.URL.Query().Get("formula"); name != "" {
		var err error
		if f, err = strength.ParseFormula(name); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
	}
	sum, err := s.alpha.Analyze(r.Body, f)
	if err != nil {
		s.log.Error("alpha ingest error", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if r.URL.Query().Get("format") == "xlsx" {
		book, err := render.SummaryWorkbook(sum)
		if err != nil {
			s.log.Error("summary workbook", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeWorkbook(w, "training-summary.xlsx", book)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func writeWorkbook(w http.ResponseWriter, filename string, book []byte) {
	w.Header().Set("Content-Type", render.XLSXContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(book)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func parseFloatParam(raw, name string) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%s parameter required", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}

func parseOneRepMax(r *http.Request) (float64, error) {
	v, err := parseFloatParam(r.URL.Query().Get("one_rep_max"), "one_rep_max")
	if err != nil {
		return 0, err
	}
	if !strength.ValidOneRepMax(v) {
		return 0, fmt.Errorf("one_rep_max must be a positive number")
	}
	return v, nil
}
