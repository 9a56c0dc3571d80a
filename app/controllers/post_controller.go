package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"microblog/app/middleware"
	"microblog/app/models"
	"microblog/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Index handles GET /api/posts, listing all posts newest first
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, posts)
}

// Show handles GET /api/posts/{id}
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Create handles POST /api/posts
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		sendError(w, "Invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, err := pc.postService.CreatePost(&req, middleware.CurrentUser(r))
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, post)
}

// Update handles PUT /api/posts/{id}
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}

	var patch models.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := patch.Validate(); err != nil {
		sendError(w, "Invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, err := pc.postService.UpdatePost(id, &patch, middleware.CurrentUser(r))
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Delete handles DELETE /api/posts/{id}
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}

	if err := pc.postService.DeletePost(id, middleware.CurrentUser(r)); err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, models.MessageResponse{Message: "Post deleted successfully"})
}

// postID extracts the {id} path variable. The route pattern restricts
// it to digits, so a parse failure means a malformed request.
func postID(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendError(w, "Invalid post ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
