package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/kris27x/ElevatorControlSystem/internal/building"
	"github.com/kris27x/ElevatorControlSystem/internal/controller"
)

type pickupRequest struct {
	Floor     int `json:"floor"`
	Direction int `json:"direction"`
}

type pickupResponse struct {
	ElevatorID int `json:"elevatorId"`
}

type targetRequest struct {
	Floor int `json:"floor"`
}

type healthResponse struct {
	Status   string `json:"status"`
	Instance string `json:"instance"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ctrl.GetStatus())
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ctrl.GetConfig())
}

func (s *Server) handleConfigure(w http.ResponseWriter, r *http.Request) {
	var cfg building.Config
	if err := readJSON(r, &cfg); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if err := s.ctrl.Configure(cfg.NumberOfFloors, cfg.ActiveElevatorCount); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePickup(w http.ResponseWriter, r *http.Request) {
	var req pickupRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	direction := building.Direction(req.Direction)
	if !direction.Valid() {
		writeError(w, http.StatusBadRequest, "direction must be 1 or -1")
		return
	}

	id, err := s.ctrl.Pickup(req.Floor, direction)
	switch {
	case errors.Is(err, controller.ErrFloorOutOfRange):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, controller.ErrNoElevatorAvailable):
		writeError(w, http.StatusConflict, err.Error())
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, pickupResponse{ElevatorID: id})
	}
}

func (s *Server) handleAddTarget(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "elevator id must be an integer")
		return
	}
	var req targetRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	if !s.ctrl.AddTarget(id, req.Floor) {
		writeError(w, http.StatusNotFound, "elevator unknown, out of service, or floor out of range")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleStep(w http.ResponseWriter, r *http.Request) {
	s.ctrl.Step()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Instance: s.instance})
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}
