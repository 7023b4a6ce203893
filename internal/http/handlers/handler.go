package handlers

import (
	"net/http"

	"taskboard/internal/logger"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB    *pgxpool.Pool
	Auth  *service.AuthService
	Tasks *service.TaskService
	Tags  *service.TagService
	Stats *service.StatsService
}

func NewHandler(db *pgxpool.Pool) *Handler {
	users := repository.NewUserRepository(db)
	tags := repository.NewTagRepository(db)
	tasks := repository.NewTaskRepository(db)

	return &Handler{
		DB:    db,
		Auth:  service.NewAuthService(users, tags),
		Tasks: service.NewTaskService(tasks),
		Tags:  service.NewTagService(tags),
		Stats: service.NewStatsService(tasks),
	}
}

// getUserID extracts the authenticated user id set by the JWT middleware.
func getUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// internalError logs the fault server-side and answers with an opaque body.
func internalError(c *gin.Context, op string, err error) {
	logger.Error(op, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
