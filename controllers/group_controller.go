package controllers

import (
	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type GroupController struct{ Svc *services.GroupService }

func NewGroupController(s *services.GroupService) *GroupController {
	return &GroupController{Svc: s}
}

type memberIn struct {
	UserID uint `json:"userId" binding:"required"`
}

// GET /groups/manager/users
func (h *GroupController) ListManagers(c *gin.Context) {
	h.list(c, entity.RoleManager)
}

// POST /groups/manager/users
func (h *GroupController) AddManager(c *gin.Context) {
	h.add(c, entity.RoleManager)
}

// DELETE /groups/manager/users
func (h *GroupController) RemoveManager(c *gin.Context) {
	h.remove(c, entity.RoleManager)
}

// GET /groups/delivery-crew/users
func (h *GroupController) ListDeliveryCrew(c *gin.Context) {
	h.list(c, entity.RoleDeliveryCrew)
}

// POST /groups/delivery-crew/users
func (h *GroupController) AddDeliveryCrew(c *gin.Context) {
	h.add(c, entity.RoleDeliveryCrew)
}

// DELETE /groups/delivery-crew/users
func (h *GroupController) RemoveDeliveryCrew(c *gin.Context) {
	h.remove(c, entity.RoleDeliveryCrew)
}

func (h *GroupController) list(c *gin.Context, role entity.Role) {
	users, err := h.Svc.List(role)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, users)
}

func (h *GroupController) add(c *gin.Context, role entity.Role) {
	var req memberIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Message(c, 400, err.Error())
		return
	}
	u, err := h.Svc.Add(req.UserID, role)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, u)
}

func (h *GroupController) remove(c *gin.Context, role entity.Role) {
	var req memberIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Message(c, 400, err.Error())
		return
	}
	if err := h.Svc.Remove(req.UserID, role); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}
