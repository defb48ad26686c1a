package v1

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/MGTheTrain/hbnb-storage/internal/domain/storage"
	"github.com/MGTheTrain/hbnb-storage/internal/pkg/logger"
)

// AllTypes is the path segment that lists every registered type.
const AllTypes = "all"

// EntityHandler defines the interface for handling entity operations
type EntityHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// entityHandler serializes every request on one shared engine.
type entityHandler struct {
	mu     sync.Mutex
	engine storage.Engine
	logger logger.Logger
}

// NewEntityHandler creates a new EntityHandler
func NewEntityHandler(engine storage.Engine, log logger.Logger) EntityHandler {
	return &entityHandler{
		engine: engine,
		logger: log.With("component", "entity_handler"),
	}
}

// List handles GET /:type and returns "Type.id" to string form
func (handler *entityHandler) List(ctx *gin.Context) {
	typeName := ctx.Param("type")
	if typeName == AllTypes {
		typeName = ""
	}

	handler.mu.Lock()
	defer handler.mu.Unlock()

	objs, err := handler.engine.All(ctx.Request.Context(), typeName)
	if err != nil {
		handler.fail(ctx, err, fmt.Sprintf("error listing %s", ctx.Param("type")))
		return
	}

	ctx.JSON(http.StatusOK, objs)
}

// GetByID handles GET /:type/:id
func (handler *entityHandler) GetByID(ctx *gin.Context) {
	typeName := ctx.Param("type")
	id := ctx.Param("id")

	handler.mu.Lock()
	defer handler.mu.Unlock()

	e, err := handler.engine.Get(ctx.Request.Context(), typeName, id)
	if err != nil {
		handler.fail(ctx, err, fmt.Sprintf("error getting %s with id %s", typeName, id))
		return
	}

	ctx.JSON(http.StatusOK, newEntityResponse(e))
}

// Create handles POST /:type: stages the entity and commits it
func (handler *entityHandler) Create(ctx *gin.Context) {
	typeName := ctx.Param("type")

	var request CreateEntityRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid %s data: %v", typeName, err.Error()),
		})
		return
	}

	handler.mu.Lock()
	defer handler.mu.Unlock()

	e, err := handler.engine.NewEntity(typeName)
	if err != nil {
		handler.fail(ctx, err, fmt.Sprintf("error creating %s", typeName))
		return
	}
	if err := e.FromRecord(request.ToRecord()); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid %s data: %v", typeName, err.Error()),
		})
		return
	}

	reqCtx := ctx.Request.Context()
	if err := handler.engine.New(reqCtx, e); err != nil {
		handler.fail(ctx, err, fmt.Sprintf("error creating %s", typeName))
		return
	}
	if err := handler.engine.Save(reqCtx); err != nil {
		handler.fail(ctx, err, fmt.Sprintf("error saving %s", typeName))
		return
	}

	ctx.JSON(http.StatusCreated, newEntityResponse(e))
}

// DeleteByID handles DELETE /:type/:id
func (handler *entityHandler) DeleteByID(ctx *gin.Context) {
	typeName := ctx.Param("type")
	id := ctx.Param("id")
	reqCtx := ctx.Request.Context()

	handler.mu.Lock()
	defer handler.mu.Unlock()

	e, err := handler.engine.Get(reqCtx, typeName, id)
	if err != nil {
		handler.fail(ctx, err, fmt.Sprintf("error deleting %s with id %s", typeName, id))
		return
	}
	if err := handler.engine.Delete(reqCtx, e); err != nil {
		handler.fail(ctx, err, fmt.Sprintf("error deleting %s with id %s", typeName, id))
		return
	}
	if err := handler.engine.Save(reqCtx); err != nil {
		handler.fail(ctx, err, fmt.Sprintf("error deleting %s with id %s", typeName, id))
		return
	}

	handler.logger.Info("deleted ", typeName, " with id ", id)
	ctx.Status(http.StatusNoContent)
	ctx.Writer.WriteHeaderNow()
}

func (handler *entityHandler) fail(ctx *gin.Context, err error, msg string) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		handler.logger.Error(msg, ": ", err)
	}
	ctx.JSON(status, ErrorResponse{Message: fmt.Sprintf("%s: %v", msg, err.Error())})
}

// StatusFor maps a storage error to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotReady):
		return http.StatusServiceUnavailable
	case errors.Is(err, storage.ErrUnknownType), errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrDuplicateID), errors.Is(err, storage.ErrHasDependents):
		return http.StatusConflict
	case errors.Is(err, storage.ErrPersistence):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
