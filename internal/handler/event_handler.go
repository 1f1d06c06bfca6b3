package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eventhive/eventhive_api/internal/models"
	"github.com/eventhive/eventhive_api/internal/service"
	"github.com/eventhive/eventhive_api/internal/utils"
)

// EventHandler handles event creation and retrieval endpoints.
type EventHandler struct {
	eventService       *service.EventService
	descriptionService *service.DescriptionService
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(eventService *service.EventService, descriptionService *service.DescriptionService) *EventHandler {
	return &EventHandler{eventService: eventService, descriptionService: descriptionService}
}

// CreateEvent handles POST /api/admin/create_event. The JWT middleware has
// already established the caller; the owner email comes from the claims,
// never the payload.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "Invalid request body")
		return
	}

	adminEmail := c.GetString("email")
	if _, err := h.eventService.CreateEvent(c.Request.Context(), &req, adminEmail); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Message(c, 201, "Event created successfully")
}

// GetEvents handles GET /api/events.
func (h *EventHandler) GetEvents(c *gin.Context) {
	events, err := h.eventService.ListEvents(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "Failed to retrieve events")
		return
	}
	if events == nil {
		events = []*models.Event{}
	}
	c.JSON(200, events)
}

// GetEventByID handles GET /api/user/events/:id.
func (h *EventHandler) GetEventByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "Invalid event ID")
		return
	}

	event, err := h.eventService.GetEvent(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, event)
}

// AdminEvents handles GET /api/admin/admin_events, listing only the
// caller's own events.
func (h *EventHandler) AdminEvents(c *gin.Context) {
	events, err := h.eventService.ListEventsByAdmin(c.GetString("email"))
	if err != nil {
		utils.Error(c, 500, "Failed to retrieve events")
		return
	}
	if events == nil {
		events = []*models.Event{}
	}
	c.JSON(200, events)
}

// AIDescription handles POST /api/admin/ai_description.
func (h *EventHandler) AIDescription(c *gin.Context) {
	var req service.DescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "Invalid request body")
		return
	}

	description, err := h.descriptionService.GenerateDescription(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(200, gin.H{"description": description})
}
