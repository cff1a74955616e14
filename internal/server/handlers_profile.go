package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/studenthub/internal/db"
	"github.com/jonathan/studenthub/internal/server/middleware"
)

// handleGetProfile returns the authenticated user's profile with entity
// counts
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := s.db.GetProfile(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	counts, err := s.db.GetProfileCounts(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"profile": profile,
		"counts":  counts,
	})
}

// handleUpdateProfile applies a partial update to the authenticated
// user's profile
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}
	if req.YearLevel == nil && req.MajorProgram == nil && req.Bio == nil {
		http.Error(w, "At least one field must be provided", http.StatusBadRequest)
		return
	}

	update := db.ProfileUpdate{
		YearLevel:    req.YearLevel,
		MajorProgram: req.MajorProgram,
		Bio:          req.Bio,
	}
	if err := s.db.UpdateProfile(r.Context(), userID, update); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	profile, err := s.db.GetProfile(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Profile updated successfully",
		"profile": profile,
	})
}
