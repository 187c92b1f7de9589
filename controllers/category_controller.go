package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct{ Svc *services.CatalogService }

func NewCategoryController(s *services.CatalogService) *CategoryController {
	return &CategoryController{Svc: s}
}

type categoryIn struct {
	Title string `json:"title" binding:"required"`
}

// GET /categories
func (h *CategoryController) List(c *gin.Context) {
	cats, err := h.Svc.ListCategories()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cats)
}

// POST /categories
func (h *CategoryController) Create(c *gin.Context) {
	var req categoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Message(c, 400, err.Error())
		return
	}
	cat, err := h.Svc.CreateCategory(req.Title)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, cat)
}

// GET /categories/:id
func (h *CategoryController) Detail(c *gin.Context) {
	cat, err := h.Svc.GetCategory(paramID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cat)
}

// PUT/PATCH /categories/:id
func (h *CategoryController) Update(c *gin.Context) {
	var req categoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Message(c, 400, err.Error())
		return
	}
	cat, err := h.Svc.UpdateCategory(paramID(c), req.Title)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /categories/:id
func (h *CategoryController) Delete(c *gin.Context) {
	if err := h.Svc.DeleteCategory(paramID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}

func paramID(c *gin.Context) uint {
	id, _ := strconv.Atoi(c.Param("id"))
	return uint(id)
}
