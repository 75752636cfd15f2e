package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davicafu/apollo-events/internal/auction/domain"
	"github.com/davicafu/apollo-events/pkg/utils"
)

// EventService es lo que el handler necesita del EventRouter.
type EventService interface {
	Route(ctx context.Context, kind string, raw []byte) error
	Translate(kind string, raw []byte) ([]domain.Output, error)
}

// EventHandler encapsula los endpoints HTTP de ingesta de eventos.
type EventHandler struct {
	service EventService
}

func NewEventHandler(service EventService) *EventHandler {
	return &EventHandler{service: service}
}

type outputView struct {
	Channel string         `json:"channel"`
	Message domain.Message `json:"message"`
}

// PublishEvent endpoint POST /events/:kind
func (h *EventHandler) PublishEvent(c *gin.Context) {
	kind := c.Param("kind")
	raw, err := c.GetRawData()
	if err != nil {
		utils.SendBadRequest(c, utils.CodeBadRequest, err.Error())
		return
	}

	if err := h.service.Route(c.Request.Context(), kind, raw); err != nil {
		sendRouteError(c, err)
		return
	}

	utils.SendSuccess(c, http.StatusAccepted, gin.H{"kind": kind})
}

// PreviewEvent endpoint POST /events/:kind/preview: traduce sin publicar.
func (h *EventHandler) PreviewEvent(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		utils.SendBadRequest(c, utils.CodeBadRequest, err.Error())
		return
	}

	outputs, err := h.service.Translate(c.Param("kind"), raw)
	if err != nil {
		sendRouteError(c, err)
		return
	}

	views := make([]outputView, 0, len(outputs))
	for _, out := range outputs {
		views = append(views, outputView{Channel: out.Channel, Message: out.Message})
	}
	utils.SendSuccess(c, http.StatusOK, views)
}

func sendRouteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownEventKind):
		utils.SendNotFound(c, utils.CodeUnknownKind, err.Error())
	case errors.Is(err, domain.ErrMalformedEvent):
		utils.SendBadRequest(c, utils.CodeMalformedEvent, err.Error())
	case errors.Is(err, domain.ErrPublishFailed):
		utils.SendBadGateway(c, utils.CodePublishFailed, err.Error())
	default:
		utils.SendInternalServerError(c, err.Error())
	}
}
