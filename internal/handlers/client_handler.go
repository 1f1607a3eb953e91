package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/hotelio/hotel-manager/internal/httperr"
	"github.com/hotelio/hotel-manager/internal/httpresp"
	"github.com/hotelio/hotel-manager/internal/service"
)

type ClientHandler struct {
	svc *service.ClientService
}

func NewClientHandler(svc *service.ClientService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name      string  `json:"name"`
	Surname   string  `json:"surname"`
	Address   string  `json:"address"`
	Birthdate *string `json:"birthdate"`
	Note      string  `json:"note"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
}

type UpdateClientRequest struct {
	Name      *string `json:"name"`
	Surname   *string `json:"surname"`
	Address   *string `json:"address"`
	Birthdate *string `json:"birthdate"`
	Note      *string `json:"note"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.svc.List(c.Request.Context())
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	message := "Clients retrieved successfully"
	if len(clients) == 0 {
		message = "No clients found"
	}
	httpresp.OK(c, message, "clients", clients)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	client, err := h.svc.Create(c.Request.Context(), service.CreateClientInput{
		Name:      req.Name,
		Surname:   req.Surname,
		Address:   req.Address,
		Birthdate: req.Birthdate,
		Note:      req.Note,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Created(c, "Client and user created successfully!", "client", client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	client, err := h.svc.Update(c.Request.Context(), id, service.UpdateClientInput{
		Name:      req.Name,
		Surname:   req.Surname,
		Address:   req.Address,
		Birthdate: req.Birthdate,
		Note:      req.Note,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, "Client and associated user successfully updated", "client", client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Message(c, fmt.Sprintf("Client with ID %d and associated user correctly deleted", id))
}
