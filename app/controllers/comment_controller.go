package controllers

import (
	"encoding/json"
	"net/http"

	"microblog/app/middleware"
	"microblog/app/models"
	"microblog/app/services"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// Create handles POST /api/posts/{id}/comment
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}

	var req models.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		sendError(w, "Invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := cc.commentService.AddComment(id, &req, middleware.CurrentUser(r))
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, comment)
}

// Index handles GET /api/posts/{id}/comments, oldest first
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}

	comments, err := cc.commentService.ListPostComments(id)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	sendJSON(w, http.StatusOK, comments)
}
