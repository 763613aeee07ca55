package shift

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/schichtlog/schichtlog/internal/rest"
	"github.com/schichtlog/schichtlog/pkg/user"
)

type ShiftDTO struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	TypeID    string `json:"typeId,omitempty"`
	CodeID    string `json:"codeId,omitempty"`
	Station   string `json:"station,omitempty"`
	Vehicle   string `json:"vehicle,omitempty"`
	CallSign  string `json:"callSign,omitempty"`
	Partner   string `json:"partner,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new shift")
	w.Header().Set("Content-Type", "application/json")

	var dto ShiftDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Date == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "date is required",
			Details: "date must be in YYYY-MM-DD format",
		})
		return
	}

	created, err := h.service.Create(r.Context(), fromDTO(dto))
	if err != nil {
		if errors.Is(err, user.ErrNoUser) {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	shifts, err := h.service.List(r.Context())
	if err != nil {
		if errors.Is(err, user.ErrNoUser) {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]ShiftDTO, 0, len(shifts))
	for _, s := range shifts {
		dtos = append(dtos, toDTO(s))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	shiftId := mux.Vars(r)["shiftId"]

	ok, err := h.service.Delete(r.Context(), shiftId)
	if err != nil {
		if errors.Is(err, user.ErrNoUser) {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "shift not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toDTO(s Shift) ShiftDTO {
	return ShiftDTO{
		ID:        s.ID,
		Date:      s.Date,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		TypeID:    s.TypeID,
		CodeID:    s.CodeID,
		Station:   s.Station,
		Vehicle:   s.Vehicle,
		CallSign:  s.CallSign,
		Partner:   s.Partner,
		Timestamp: s.CreatedAt.UnixMilli(),
	}
}

func fromDTO(dto ShiftDTO) Shift {
	return Shift{
		Date:      dto.Date,
		StartTime: dto.StartTime,
		EndTime:   dto.EndTime,
		TypeID:    dto.TypeID,
		CodeID:    dto.CodeID,
		Station:   dto.Station,
		Vehicle:   dto.Vehicle,
		CallSign:  dto.CallSign,
		Partner:   dto.Partner,
		CreatedAt: time.Time{},
	}
}
