package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/studenthub/internal/db"
	"github.com/jonathan/studenthub/internal/server/middleware"
)

func goalInputFromRequest(req GoalRequest) db.GoalInput {
	status := req.Status
	if status == "" {
		status = "active"
	}
	return db.GoalInput{
		Title:       req.Title,
		Description: req.Description,
		GoalType:    req.GoalType,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      status,
		TargetDate:  req.TargetDate,
	}
}

// handleListGoals returns the authenticated user's goals
func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	goals, err := s.db.ListGoals(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"goals": goals})
}

// handleCreateGoal adds a goal for the authenticated user
func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req GoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	goal, err := s.db.CreateGoal(r.Context(), userID, goalInputFromRequest(req))
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"goal": goal})
}

// handleUpdateGoal updates a goal owned by the authenticated user
func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	goalID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid goal ID", http.StatusBadRequest)
		return
	}

	var req GoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	goal, err := s.db.UpdateGoal(r.Context(), userID, goalID, goalInputFromRequest(req))
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}
	if goal == nil {
		http.Error(w, "Goal not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"goal": goal})
}

// handleDeleteGoal removes a goal owned by the authenticated user
func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	goalID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid goal ID", http.StatusBadRequest)
		return
	}

	deleted, err := s.db.DeleteGoal(r.Context(), userID, goalID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "Goal not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Goal deleted successfully"})
}
