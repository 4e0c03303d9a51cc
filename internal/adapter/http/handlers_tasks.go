package adapthttp

import (
	"errors"
	"net/http"
	"strconv"

	"taskhub/internal/app"
)

func (s *Server) handleTaskCreate(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		ID          int64  `json:"id"`
		Task        string `json:"task"`
		IsCompleted bool   `json:"isCompleted"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeText(w, http.StatusBadRequest, "invalid request")
		return
	}

	err := s.tasks.Create(r.Context(), identity.UserID, req.ID, req.Task, req.IsCompleted)
	if errors.Is(err, app.ErrTaskExists) {
		writeText(w, http.StatusBadRequest, "To-Do id already exists")
		return
	}
	if err != nil {
		writeText(w, http.StatusInternalServerError, "Error creating To-Do")
		return
	}
	writeText(w, http.StatusOK, "To-Do created successfully")
}

func (s *Server) handleTaskList(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	tasks, err := s.tasks.ListOwned(r.Context(), identity.UserID)
	if err != nil {
		writeText(w, http.StatusInternalServerError, "Error retrieving To-Dos")
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleTaskUpdate(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	taskID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeText(w, http.StatusBadRequest, "invalid To-Do id")
		return
	}

	var req struct {
		Task        string `json:"task"`
		IsCompleted bool   `json:"isCompleted"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeText(w, http.StatusBadRequest, "invalid request")
		return
	}

	err = s.tasks.Update(r.Context(), identity.UserID, taskID, req.Task, req.IsCompleted)
	switch {
	case errors.Is(err, app.ErrTaskNotFound):
		writeText(w, http.StatusNotFound, "To-Do not found")
	case errors.Is(err, app.ErrNotOwner):
		writeText(w, http.StatusForbidden, "forbidden")
	case err != nil:
		writeText(w, http.StatusInternalServerError, "Error updating To-Do")
	default:
		writeText(w, http.StatusOK, "To-Do updated successfully")
	}
}

func (s *Server) handleTaskDelete(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	taskID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeText(w, http.StatusBadRequest, "invalid To-Do id")
		return
	}

	err = s.tasks.Delete(r.Context(), identity.UserID, taskID)
	switch {
	case errors.Is(err, app.ErrTaskNotFound):
		writeText(w, http.StatusNotFound, "To-Do not found")
	case errors.Is(err, app.ErrNotOwner):
		writeText(w, http.StatusForbidden, "forbidden")
	case err != nil:
		writeText(w, http.StatusInternalServerError, "Error deleting To-Do")
	default:
		writeText(w, http.StatusOK, "To-Do deleted successfully")
	}
}
