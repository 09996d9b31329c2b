package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mizutanik/roadquest/internal/domain/shared"
)

type useItemRequest struct {
	Slot int `json:"slot" validate:"gte=0"`
}

type equipRequest struct {
	Key string `json:"key" validate:"required"`
}

type unequipRequest struct {
	Slot string `json:"slot" validate:"required"`
}

type battleActionRequest struct {
	Action string `json:"action" validate:"required"`
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	characterID := chi.URLParam(r, "characterID")

	result, err := s.provider.MovementService.Move(r.Context(), characterID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleUseItem(w http.ResponseWriter, r *http.Request) {
	characterID := chi.URLParam(r, "characterID")

	var req useItemRequest
	if !s.decode(w, r, &req) {
		return
	}

	result, err := s.provider.ItemService.UseItem(r.Context(), characterID, req.Slot)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, result)
}

func (s *Server) handleEquip(w http.ResponseWriter, r *http.Request) {
	characterID := chi.URLParam(r, "characterID")

	var req equipRequest
	if !s.decode(w, r, &req) {
		return
	}

	result, err := s.provider.ItemService.EquipItem(r.Context(), characterID, req.Key)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, result)
}

func (s *Server) handleUnequip(w http.ResponseWriter, r *http.Request) {
	characterID := chi.URLParam(r, "characterID")

	var req unequipRequest
	if !s.decode(w, r, &req) {
		return
	}

	result, err := s.provider.ItemService.UnequipItem(r.Context(), characterID, shared.Slot(req.Slot))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, result)
}

func (s *Server) handleGetBattle(w http.ResponseWriter, r *http.Request) {
	battleID := chi.URLParam(r, "battleID")

	battle, err := s.provider.BattleService.GetBattle(r.Context(), battleID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, battle)
}

func (s *Server) handleBattleAction(w http.ResponseWriter, r *http.Request) {
	battleID := chi.URLParam(r, "battleID")

	var req battleActionRequest
	if !s.decode(w, r, &req) {
		return
	}

	result, err := s.provider.BattleService.ExecuteTurn(r.Context(), battleID, req.Action)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, result)
}
