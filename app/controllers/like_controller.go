package controllers

import (
	"net/http"

	"microblog/app/middleware"
	"microblog/app/models"
	"microblog/app/services"
)

// LikeController handles HTTP requests for post likes
type LikeController struct {
	likeService *services.LikeService
}

// NewLikeController creates a new LikeController
func NewLikeController(likeService *services.LikeService) *LikeController {
	return &LikeController{likeService: likeService}
}

// Like handles POST /api/posts/{id}/like
func (lc *LikeController) Like(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}

	count, err := lc.likeService.Like(id, middleware.CurrentUser(r))
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, models.LikeResponse{
		Message:    "Post liked successfully",
		LikesCount: count,
	})
}

// Unlike handles DELETE /api/posts/{id}/like
func (lc *LikeController) Unlike(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}

	count, err := lc.likeService.Unlike(id, middleware.CurrentUser(r))
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, models.LikeResponse{
		Message:    "Post unliked successfully",
		LikesCount: count,
	})
}
