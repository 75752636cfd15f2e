package http

import "github.com/gin-gonic/gin"

// RegisterEventRoutes registra las rutas HTTP de ingesta de eventos.
func RegisterEventRoutes(r *gin.Engine, handler *EventHandler) {
	events := r.Group("/events")
	{
		events.POST("/:kind", handler.PublishEvent)         // Enrutar y publicar un evento
		events.POST("/:kind/preview", handler.PreviewEvent) // Ver qué se publicaría
	}
}
