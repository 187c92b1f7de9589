package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

// GET /cart/menu-items
func (h *CartController) List(c *gin.Context) {
	lines, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, lines)
}

// POST /cart/menu-items
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Message(c, 400, err.Error())
		return
	}
	line, err := h.Svc.Add(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, line)
}

// DELETE /cart/menu-items
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}

// GET /cart/menu-items/:id
func (h *CartController) LineDetail(c *gin.Context) {
	line, err := h.Svc.GetLine(utils.CurrentUserID(c), paramID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, line)
}

type updateQuantityIn struct {
	Quantity int `json:"quantity" binding:"required"`
}

// PUT /cart/menu-items/:id
func (h *CartController) UpdateLine(c *gin.Context) {
	var req updateQuantityIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Message(c, 400, err.Error())
		return
	}
	line, err := h.Svc.UpdateQuantity(utils.CurrentUserID(c), paramID(c), req.Quantity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, line)
}

// DELETE /cart/menu-items/:id
func (h *CartController) RemoveLine(c *gin.Context) {
	if err := h.Svc.RemoveLine(utils.CurrentUserID(c), paramID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}
