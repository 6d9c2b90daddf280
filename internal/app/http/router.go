// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"myflix/internal/app/http/auth"
	"myflix/internal/app/http/favorites"
	"myflix/internal/app/http/middleware"
	"myflix/internal/app/http/movies"
	"myflix/internal/app/http/users"
	"myflix/internal/config"
	"myflix/internal/ports/api"
	"myflix/internal/ports/repositories"
	svc "myflix/internal/ports/services"
)

// Deps содержит зависимости маршрутизатора.
type Deps struct {
	AuthUseCase      api.AuthUseCase
	UserUseCase      api.UserUseCase
	MovieUseCase     api.MovieUseCase
	FavoritesUseCase api.FavoritesUseCase
	TokenService     svc.TokenService
	UserRepository   repositories.UserRepository
	CORS             *config.CORSConfig
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
// Все маршруты каталога и профиля проходят через Access Gate;
// публичны только регистрация, вход и приветствие.
func SetupRouter(app *fiber.App, deps Deps) {
	authHandler := auth.NewHandler(deps.AuthUseCase)
	usersHandler := users.NewHandler(deps.UserUseCase)
	moviesHandler := movies.NewHandler(deps.MovieUseCase)
	favoritesHandler := favorites.NewHandler(deps.FavoritesUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: deps.CORS.GetAllowedOrigins(),
	}))

	// Публичные маршруты.
	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("Welcome to the greatest movie app of all time!")
	})
	app.Post("/login", authHandler.Login)
	app.Post("/users", authHandler.Register)

	// Защищенные маршруты.
	authGate := middleware.NewAuthMiddleware(deps.TokenService, deps.UserRepository)

	movieRoutes := app.Group("/movies", authGate)
	movieRoutes.Get("/", moviesHandler.ListMovies)
	movieRoutes.Get("/:title", moviesHandler.GetMovie)

	app.Get("/genres/:name", moviesHandler.GetGenre, authGate)
	app.Get("/directors/:name", moviesHandler.GetDirector, authGate)

	userRoutes := app.Group("/users/:username", authGate)
	userRoutes.Get("/", usersHandler.GetUser)
	userRoutes.Put("/", usersHandler.UpdateUser)
	userRoutes.Delete("/", usersHandler.DeleteUser)
	userRoutes.Get("/favorites", favoritesHandler.ListFavorites)
	userRoutes.Post("/favorites/:movie_id", favoritesHandler.AddFavorite)
	userRoutes.Delete("/favorites/:movie_id", favoritesHandler.RemoveFavorite)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
