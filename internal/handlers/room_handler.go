package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hotelio/hotel-manager/internal/httperr"
	"github.com/hotelio/hotel-manager/internal/httpresp"
	"github.com/hotelio/hotel-manager/internal/service"
)

type RoomHandler struct {
	svc *service.RoomService
}

func NewRoomHandler(svc *service.RoomService) *RoomHandler {
	return &RoomHandler{svc: svc}
}

// --------- Requests ---------

type CreateRoomRequest struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Price       *float64 `json:"price"`
	Available   *bool    `json:"available"`
	Description string   `json:"description"`
	Capacity    *int     `json:"capacity"`
	OwnerID     *uint    `json:"owner_id"`
}

type UpdateRoomRequest struct {
	Name        *string  `json:"name"`
	Type        *string  `json:"type"`
	Price       *float64 `json:"price"`
	Available   *bool    `json:"available"`
	Description *string  `json:"description"`
	Capacity    *int     `json:"capacity"`
	OwnerID     *uint    `json:"owner_id"`
}

// --------- Handlers ---------

func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.svc.List(c.Request.Context())
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	message := "Rooms retrieved successfully"
	if len(rooms) == 0 {
		message = "No rooms available"
	}
	httpresp.OK(c, message, "rooms", rooms)
}

func (h *RoomHandler) Create(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	room, err := h.svc.Create(c.Request.Context(), service.CreateRoomInput{
		Name:        req.Name,
		Type:        req.Type,
		Price:       req.Price,
		Available:   req.Available,
		Description: req.Description,
		Capacity:    req.Capacity,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Created(c, "Room created successfully", "room", room)
}

func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	room, err := h.svc.Update(c.Request.Context(), id, service.UpdateRoomInput{
		Name:        req.Name,
		Type:        req.Type,
		Price:       req.Price,
		Available:   req.Available,
		Description: req.Description,
		Capacity:    req.Capacity,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, "Room successfully updated", "room", room)
}

func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Message(c, "Room successfully deleted.")
}
