package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	orders, err := h.Svc.List(utils.CurrentUserID(c), utils.CurrentRole(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// POST /orders — checkout the caller's cart
func (h *OrderController) Checkout(c *gin.Context) {
	order, err := h.Svc.Checkout(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	order, err := h.Svc.Detail(utils.CurrentUserID(c), utils.CurrentRole(c), paramID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// PUT /orders/:id — role-gated status/assignment transition
func (h *OrderController) Update(c *gin.Context) {
	var req services.UpdateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Message(c, 400, err.Error())
		return
	}
	ack, err := h.Svc.Update(utils.CurrentUserID(c), utils.CurrentRole(c), paramID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, 200, ack)
}
