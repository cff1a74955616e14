package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/studenthub/internal/server/middleware"
)

// handleListInterests returns the authenticated user's interests
func (s *Server) handleListInterests(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	interests, err := s.db.ListInterests(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"interests": interests})
}

// handleCreateInterest adds an interest for the authenticated user
func (s *Server) handleCreateInterest(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req InterestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	interest, err := s.db.CreateInterest(r.Context(), userID, req.InterestName, req.Category, req.Description, req.LevelOfInterest)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"interest": interest})
}

// handleUpdateInterest updates an interest owned by the authenticated
// user
func (s *Server) handleUpdateInterest(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	interestID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid interest ID", http.StatusBadRequest)
		return
	}

	var req InterestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	interest, err := s.db.UpdateInterest(r.Context(), userID, interestID, req.InterestName, req.Category, req.Description, req.LevelOfInterest)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}
	if interest == nil {
		http.Error(w, "Interest not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"interest": interest})
}

// handleDeleteInterest removes an interest owned by the authenticated
// user
func (s *Server) handleDeleteInterest(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	interestID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid interest ID", http.StatusBadRequest)
		return
	}

	deleted, err := s.db.DeleteInterest(r.Context(), userID, interestID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "Interest not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Interest deleted successfully"})
}
