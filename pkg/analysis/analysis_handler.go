package analysis

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/schichtlog/schichtlog/pkg/user"
)

type ChartPointDTO struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
	Label string  `json:"label"`
}

type DistributionEntryDTO struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type ResultDTO struct {
	Start        time.Time              `json:"start"`
	End          time.Time              `json:"end"`
	Label        string                 `json:"label"`
	Invalid      bool                   `json:"invalid,omitempty"`
	TargetHours  float64                `json:"targetHours"`
	ActualHours  float64                `json:"actualHours"`
	ShiftCount   int                    `json:"shiftCount"`
	Delta        float64                `json:"delta"`
	ChartSeries  []ChartPointDTO        `json:"chartSeries"`
	Distribution []DistributionEntryDTO `json:"distribution"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetAnalysis handles GET /api/analysis. Attribute filter params may repeat:
// ?typeId=a&typeId=b selects shifts of either type.
func (h *Handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	result, err := h.service.Analyze(r.Context(), QueryFromRequest(r))
	if err != nil {
		if errors.Is(err, user.ErrNoUser) {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(toResultDTO(result)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// QueryFromRequest extracts the analysis query parameters; the report handler reuses
// it so both endpoints accept the same selection.
func QueryFromRequest(r *http.Request) Query {
	params := r.URL.Query()
	mode := RangeMode(params.Get("mode"))
	if mode == "" {
		mode = ModeMonth
	}
	return Query{
		Mode:          mode,
		ReferenceDate: params.Get("date"),
		CustomStart:   params.Get("from"),
		CustomEnd:     params.Get("to"),
		Filters: Filters{
			TypeIDs:  params["typeId"],
			Stations: params["station"],
			Vehicles: params["vehicle"],
		},
	}
}

func toResultDTO(result Result) ResultDTO {
	dto := ResultDTO{
		Start:        result.Range.Start,
		End:          result.Range.End,
		Label:        result.Range.Label,
		Invalid:      result.Range.Invalid,
		TargetHours:  result.Range.TargetHours,
		ActualHours:  result.Stats.ActualHours,
		ShiftCount:   result.Stats.ShiftCount,
		Delta:        result.Delta,
		ChartSeries:  make([]ChartPointDTO, 0, len(result.Stats.ChartSeries)),
		Distribution: make([]DistributionEntryDTO, 0, len(result.Stats.Distribution)),
	}
	for _, p := range result.Stats.ChartSeries {
		dto.ChartSeries = append(dto.ChartSeries, ChartPointDTO{Date: p.Date, Hours: p.Hours, Label: p.Label})
	}
	for _, d := range result.Stats.Distribution {
		dto.Distribution = append(dto.Distribution, DistributionEntryDTO{Name: d.Name, Value: d.Value})
	}
	return dto
}
