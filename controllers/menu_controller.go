package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.CatalogService }

func NewMenuController(s *services.CatalogService) *MenuController {
	return &MenuController{Svc: s}
}

// GET /menu-items?category=&page=
func (h *MenuController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	items, err := h.Svc.ListMenuItems(c.Query("category"), page)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu-items/counts?category=
func (h *MenuController) Counts(c *gin.Context) {
	counts, pages, err := h.Svc.Counts(c.Query("category"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"counts": counts, "total_pages": pages})
}

// GET /menu-items/:id
func (h *MenuController) Detail(c *gin.Context) {
	item, err := h.Svc.GetMenuItem(paramID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /menu-items
func (h *MenuController) Create(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Message(c, 400, err.Error())
		return
	}
	item, err := h.Svc.CreateMenuItem(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /menu-items/:id
func (h *MenuController) Update(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Message(c, 400, err.Error())
		return
	}
	item, err := h.Svc.UpdateMenuItem(paramID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu-items/:id
func (h *MenuController) Delete(c *gin.Context) {
	if err := h.Svc.DeleteMenuItem(paramID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}
