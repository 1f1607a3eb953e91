package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hotelio/hotel-manager/internal/httperr"
	"github.com/hotelio/hotel-manager/internal/httpresp"
	"github.com/hotelio/hotel-manager/internal/service"
)

type OwnerHandler struct {
	svc *service.OwnerService
}

func NewOwnerHandler(svc *service.OwnerService) *OwnerHandler {
	return &OwnerHandler{svc: svc}
}

// --------- Requests ---------

type CreateOwnerRequest struct {
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type UpdateOwnerRequest struct {
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// --------- Handlers ---------

func (h *OwnerHandler) List(c *gin.Context) {
	owners, err := h.svc.List(c.Request.Context())
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	message := "Owners retrieved successfully"
	if len(owners) == 0 {
		message = "No owners found"
	}
	httpresp.OK(c, message, "owners", owners)
}

func (h *OwnerHandler) Create(c *gin.Context) {
	var req CreateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	owner, err := h.svc.Create(c.Request.Context(), service.CreateOwnerInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Created(c, "Owner created successfully!", "owner", owner)
}

func (h *OwnerHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	owner, err := h.svc.Update(c.Request.Context(), id, service.UpdateOwnerInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, "Owner and associated user successfully updated", "owner", owner)
}

func (h *OwnerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Message(c, "Owner successfully deleted")
}
