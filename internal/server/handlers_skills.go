package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/studenthub/internal/server/middleware"
)

// handleListSkills returns the authenticated user's skills
func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	skills, err := s.db.ListSkills(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"skills": skills})
}

// handleCreateSkill adds a skill for the authenticated user
func (s *Server) handleCreateSkill(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	skill, err := s.db.CreateSkill(r.Context(), userID, req.SkillName, req.Category, req.ProficiencyLevel, req.Notes)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"skill": skill})
}

// handleUpdateSkill updates a skill owned by the authenticated user
func (s *Server) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	skillID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid skill ID", http.StatusBadRequest)
		return
	}

	var req SkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	skill, err := s.db.UpdateSkill(r.Context(), userID, skillID, req.Category, req.ProficiencyLevel, req.Notes)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}
	if skill == nil {
		http.Error(w, "Skill not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"skill": skill})
}

// handleDeleteSkill removes a skill owned by the authenticated user
func (s *Server) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	skillID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid skill ID", http.StatusBadRequest)
		return
	}

	deleted, err := s.db.DeleteSkill(r.Context(), userID, skillID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "Skill not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Skill deleted successfully"})
}
