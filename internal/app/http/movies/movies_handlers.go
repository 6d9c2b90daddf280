// Package movies содержит HTTP обработчики каталога фильмов.
package movies

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"myflix/internal/app/http/dto"
	"myflix/internal/domain/entities"
	"myflix/internal/ports/api"
	"myflix/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerListMovies  = "movies handler: list"
	LogHandlerGetMovie    = "movies handler: get movie"
	LogHandlerGetGenre    = "movies handler: get genre"
	LogHandlerGetDirector = "movies handler: get director"

	ErrorNotFound             = "not found"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики каталога.
type Handler struct {
	movieUseCase api.MovieUseCase
}

// NewHandler создает новый экземпляр обработчика каталога.
func NewHandler(movieUseCase api.MovieUseCase) *Handler {
	return &Handler{
		movieUseCase: movieUseCase,
	}
}

func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// ListMovies обрабатывает запрос на получение каталога фильмов.
func (h *Handler) ListMovies(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListMovies"))
	log.Debug(requestCtx, LogHandlerListMovies)

	movies, err := h.movieUseCase.ListMovies(requestCtx)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	response := make([]dto.MovieResponse, 0, len(movies))
	for _, movie := range movies {
		response = append(response, dto.NewMovieResponse(movie))
	}

	if err := ctx.Status(fiber.StatusOK).JSON(response); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetMovie обрабатывает запрос на получение фильма по названию.
func (h *Handler) GetMovie(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetMovie"))
	log.Debug(requestCtx, LogHandlerGetMovie)

	movie, err := h.movieUseCase.GetMovie(requestCtx, ctx.Params("title"))
	if err != nil {
		return h.handleError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(dto.NewMovieResponse(movie)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetGenre обрабатывает запрос на получение жанра по имени.
func (h *Handler) GetGenre(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetGenre"))
	log.Debug(requestCtx, LogHandlerGetGenre)

	genre, err := h.movieUseCase.GetGenre(requestCtx, ctx.Params("name"))
	if err != nil {
		return h.handleError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(dto.GenreResponse{
		Name:        genre.Name,
		Description: genre.Description,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetDirector обрабатывает запрос на получение режиссера по имени.
func (h *Handler) GetDirector(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetDirector"))
	log.Debug(requestCtx, LogHandlerGetDirector)

	director, err := h.movieUseCase.GetDirector(requestCtx, ctx.Params("name"))
	if err != nil {
		return h.handleError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(dto.DirectorResponse{
		Name:  director.Name,
		Bio:   director.Bio,
		Birth: director.Birth,
		Death: director.Death,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

func (h *Handler) handleError(ctx fiber.Ctx, err error) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)

	switch {
	case errors.Is(err, entities.ErrMovieNotFound),
		errors.Is(err, entities.ErrGenreNotFound),
		errors.Is(err, entities.ErrDirectorNotFound):
		return sendErrorResponse(ctx, fiber.StatusNotFound, ErrorNotFound)
	default:
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusInternalServerError, ErrorFailedToServeRequest)
	}
}
