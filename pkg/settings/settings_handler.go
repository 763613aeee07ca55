package settings

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/schichtlog/schichtlog/internal/rest"
	"github.com/schichtlog/schichtlog/pkg/user"
)

type ShiftTypeDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ShiftCodeDTO struct {
	ID    string  `json:"id"`
	Code  string  `json:"code"`
	Hours float64 `json:"hours"`
}

type SettingsDTO struct {
	ShiftTypes []ShiftTypeDTO `json:"shiftTypes"`
	ShiftCodes []ShiftCodeDTO `json:"shiftCodes"`
	Vehicles   []string       `json:"vehicles"`
	CallSigns  []string       `json:"callSigns"`
	Stations   []string       `json:"stations"`
}

// AddItemDTO covers all categories: Name for shift types, Code/Hours for shift
// codes, Value for the plain string lists.
type AddItemDTO struct {
	Name  string  `json:"name,omitempty"`
	Code  string  `json:"code,omitempty"`
	Hours float64 `json:"hours,omitempty"`
	Value string  `json:"value,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	settings, err := h.service.Get(r.Context())
	if err != nil {
		if errors.Is(err, user.ErrNoUser) {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(toDTO(settings)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	category := Category(mux.Vars(r)["category"])
	if !category.Valid() {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "unknown settings category"})
		return
	}

	var dto AddItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	var response any
	var err error
	switch category {
	case CategoryShiftTypes:
		var t ShiftType
		t, err = h.service.AddShiftType(ctx, dto.Name)
		response = ShiftTypeDTO{ID: t.ID, Name: t.Name}
	case CategoryShiftCodes:
		var c ShiftCode
		c, err = h.service.AddShiftCode(ctx, dto.Code, dto.Hours)
		response = ShiftCodeDTO{ID: c.ID, Code: c.Code, Hours: c.Hours}
	default:
		err = h.service.AddListItem(ctx, category, dto.Value)
		response = dto
	}
	if err != nil {
		if errors.Is(err, user.ErrNoUser) {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	category := Category(vars["category"])
	if !category.Valid() {
		http.Error(w, "unknown settings category", http.StatusBadRequest)
		return
	}

	ok, err := h.service.RemoveItem(r.Context(), category, vars["itemId"])
	if err != nil {
		if errors.Is(err, user.ErrNoUser) {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "settings item not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toDTO(s Settings) SettingsDTO {
	dto := SettingsDTO{
		ShiftTypes: make([]ShiftTypeDTO, 0, len(s.ShiftTypes)),
		ShiftCodes: make([]ShiftCodeDTO, 0, len(s.ShiftCodes)),
		Vehicles:   s.Vehicles,
		CallSigns:  s.CallSigns,
		Stations:   s.Stations,
	}
	for _, t := range s.ShiftTypes {
		dto.ShiftTypes = append(dto.ShiftTypes, ShiftTypeDTO{ID: t.ID, Name: t.Name})
	}
	for _, c := range s.ShiftCodes {
		dto.ShiftCodes = append(dto.ShiftCodes, ShiftCodeDTO{ID: c.ID, Code: c.Code, Hours: c.Hours})
	}
	if dto.Vehicles == nil {
		dto.Vehicles = []string{}
	}
	if dto.CallSigns == nil {
		dto.CallSigns = []string{}
	}
	if dto.Stations == nil {
		dto.Stations = []string{}
	}
	return dto
}
