package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"microblog/app/services"
)

// sendJSON writes data as a JSON response with the given status
func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError writes an error message as a JSON response
func sendError(w http.ResponseWriter, message string, status int) {
	sendJSON(w, status, map[string]string{"error": message})
}

// sendServiceError maps a service error to its HTTP status. Conflicts
// on likes and registration surface as 400, matching the API contract.
func sendServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		sendError(w, "Post not found", http.StatusNotFound)
	case errors.Is(err, services.ErrForbidden):
		sendError(w, "Not authorized to modify this post", http.StatusForbidden)
	case errors.Is(err, services.ErrUsernameTaken):
		sendError(w, "Username already registered", http.StatusBadRequest)
	case errors.Is(err, services.ErrInvalidCredentials):
		sendError(w, "Incorrect username or password", http.StatusUnauthorized)
	case errors.Is(err, services.ErrUnauthenticated):
		sendError(w, "Could not validate credentials", http.StatusUnauthorized)
	case errors.Is(err, services.ErrAlreadyLiked):
		sendError(w, "You have already liked this post", http.StatusBadRequest)
	case errors.Is(err, services.ErrNotLiked):
		sendError(w, "You haven't liked this post", http.StatusBadRequest)
	default:
		sendError(w, "Internal server error", http.StatusInternalServerError)
	}
}
