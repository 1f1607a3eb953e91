package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hotelio/hotel-manager/internal/httperr"
	"github.com/hotelio/hotel-manager/internal/httpresp"
	"github.com/hotelio/hotel-manager/internal/service"
)

type ReservationHandler struct {
	svc *service.ReservationService
}

func NewReservationHandler(svc *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

// --------- Requests ---------

type CreateReservationRequest struct {
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	RoomID         *uint  `json:"room_id"`
	ClientID       *uint  `json:"client_id"`
	NumberOfPeople *int   `json:"number_of_people"`
}

type UpdateReservationRequest struct {
	CheckIn        *string `json:"check_in"`
	CheckOut       *string `json:"check_out"`
	RoomID         *uint   `json:"room_id"`
	ClientID       *uint   `json:"client_id"`
	NumberOfPeople *int    `json:"number_of_people"`
}

// --------- Handlers ---------

func (h *ReservationHandler) List(c *gin.Context) {
	reservations, err := h.svc.List(c.Request.Context())
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	message := "Reservations retrieved successfully"
	if len(reservations) == 0 {
		message = "No reservations found"
	}
	httpresp.OK(c, message, "reservations", reservations)
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	reservation, err := h.svc.Create(c.Request.Context(), service.CreateReservationInput{
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		RoomID:         req.RoomID,
		ClientID:       req.ClientID,
		NumberOfPeople: req.NumberOfPeople,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Created(c, "Reservation created successfully!", "reservation", reservation)
}

func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	reservation, err := h.svc.Update(c.Request.Context(), id, service.UpdateReservationInput{
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		RoomID:         req.RoomID,
		ClientID:       req.ClientID,
		NumberOfPeople: req.NumberOfPeople,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, "Reservation successfully updated", "reservation", reservation)
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Message(c, "Reservation correctly deleted")
}
