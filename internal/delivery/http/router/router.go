// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"critica/internal/delivery/http/middleware"
	"critica/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	TitleHandler    *handler.TitleHandler
	TaxonomyHandler *handler.TaxonomyHandler
	ReviewHandler   *handler.ReviewHandler
	CommentHandler  *handler.CommentHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	titleHandler    *handler.TitleHandler
	taxonomyHandler *handler.TaxonomyHandler
	reviewHandler   *handler.ReviewHandler
	commentHandler  *handler.CommentHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		titleHandler:    params.TitleHandler,
		taxonomyHandler: params.TaxonomyHandler,
		reviewHandler:   params.ReviewHandler,
		commentHandler:  params.CommentHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
//
// Content routes use OptionalAuthenticate: reads are open to anonymous
// clients and the permission policies decide the rest, so the middleware
// only resolves the actor when credentials are present. The user surface
// requires a valid token outright.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")

	// Auth routes
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/token", r.authHandler.IssueToken)
	}

	// User routes; /me must be registered before /:username so the
	// literal segment wins over the parameter.
	userGroup := v1.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.GetMe)
		userGroup.PATCH("/me", r.userHandler.UpdateMe)

		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.POST("", r.userHandler.CreateUser)
		userGroup.GET("/:username", r.userHandler.GetUser)
		userGroup.PATCH("/:username", r.userHandler.UpdateUser)
		userGroup.DELETE("/:username", r.userHandler.DeleteUser)
	}

	// Title routes with nested reviews and comments
	titleGroup := v1.Group("/titles")
	titleGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		titleGroup.GET("", r.titleHandler.ListTitles)
		titleGroup.POST("", r.titleHandler.CreateTitle)
		titleGroup.GET("/:title_id", r.titleHandler.GetTitle)
		titleGroup.PATCH("/:title_id", r.titleHandler.UpdateTitle)
		titleGroup.DELETE("/:title_id", r.titleHandler.DeleteTitle)

		reviewGroup := titleGroup.Group("/:title_id/reviews")
		{
			reviewGroup.GET("", r.reviewHandler.ListReviews)
			reviewGroup.POST("", r.reviewHandler.CreateReview)
			reviewGroup.GET("/:review_id", r.reviewHandler.GetReview)
			reviewGroup.PATCH("/:review_id", r.reviewHandler.UpdateReview)
			reviewGroup.DELETE("/:review_id", r.reviewHandler.DeleteReview)

			commentGroup := reviewGroup.Group("/:review_id/comments")
			{
				commentGroup.GET("", r.commentHandler.ListComments)
				commentGroup.POST("", r.commentHandler.CreateComment)
				commentGroup.GET("/:comment_id", r.commentHandler.GetComment)
				commentGroup.PATCH("/:comment_id", r.commentHandler.UpdateComment)
				commentGroup.DELETE("/:comment_id", r.commentHandler.DeleteComment)
			}
		}
	}

	// Taxonomy routes
	genreGroup := v1.Group("/genres")
	genreGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		genreGroup.GET("", r.taxonomyHandler.ListGenres)
		genreGroup.POST("", r.taxonomyHandler.CreateGenre)
		genreGroup.DELETE("/:slug", r.taxonomyHandler.DeleteGenre)
	}

	categoryGroup := v1.Group("/categories")
	categoryGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		categoryGroup.GET("", r.taxonomyHandler.ListCategories)
		categoryGroup.POST("", r.taxonomyHandler.CreateCategory)
		categoryGroup.DELETE("/:slug", r.taxonomyHandler.DeleteCategory)
	}
}
