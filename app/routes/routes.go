package routes

import (
	"net/http"

	"microblog/app/controllers"
	"microblog/app/middleware"
	"microblog/app/repositories"
	"microblog/app/services"
	"microblog/config"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// SetupRoutes wires repositories, services and controllers onto a
// router backed by the given Badger DB.
func SetupRoutes(db *badger.DB, cfg *config.Config) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)
	likeRepo := repositories.NewBadgerLikeRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	postService := services.NewPostService(postRepo)
	likeService := services.NewLikeService(likeRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	authController := controllers.NewAuthController(authService)
	postController := controllers.NewPostController(postService)
	likeController := controllers.NewLikeController(likeService)
	commentController := controllers.NewCommentController(commentService)
	healthController := controllers.NewHealthController()

	api := router.PathPrefix("/api").Subrouter()

	// Public endpoints
	api.HandleFunc("/auth/register", authController.Register).Methods("POST")
	api.HandleFunc("/auth/login", authController.Login).Methods("POST")
	api.HandleFunc("/health", healthController.Check).Methods("GET")
	api.HandleFunc("/posts", postController.Index).Methods("GET")
	api.HandleFunc("/posts/{id:[0-9]+}", postController.Show).Methods("GET")
	api.HandleFunc("/posts/{id:[0-9]+}/comments", commentController.Index).Methods("GET")

	// Mutating endpoints require a valid bearer token
	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.RequireAuth(authService))
	protected.HandleFunc("/posts", postController.Create).Methods("POST")
	protected.HandleFunc("/posts/{id:[0-9]+}", postController.Update).Methods("PUT")
	protected.HandleFunc("/posts/{id:[0-9]+}", postController.Delete).Methods("DELETE")
	protected.HandleFunc("/posts/{id:[0-9]+}/like", likeController.Like).Methods("POST")
	protected.HandleFunc("/posts/{id:[0-9]+}/like", likeController.Unlike).Methods("DELETE")
	protected.HandleFunc("/posts/{id:[0-9]+}/comment", commentController.Create).Methods("POST")

	return router
}

// WithCORS wraps the router with an allow-all CORS policy.
func WithCORS(router *mux.Router) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(router)
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
