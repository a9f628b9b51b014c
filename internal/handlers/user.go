package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/kanban-backend/internal/data/repos"
	types "github.com/yungbote/kanban-backend/internal/domain"
	"github.com/yungbote/kanban-backend/internal/pkg/dbctx"
)

type UserHandler struct {
	users repos.UserRepo
}

func NewUserHandler(users repos.UserRepo) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req types.UserCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	resp, id, err := h.users.Create(dbc, req)
	respondResult(c, resp, err, gin.H{"id": id})
}

func (h *UserHandler) Find(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	view, err := h.users.Find(dbc, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "store_error", err)
		return
	}
	if view == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *UserHandler) Read(c *gin.Context) {
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	views, err := h.users.Read(dbc)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "store_error", err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req types.UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	req.ID = id
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	resp, err := h.users.Update(dbc, req)
	respondResult(c, resp, err, nil)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	force := c.Query("force") == "true"
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	resp, err := h.users.Delete(dbc, id, force)
	respondResult(c, resp, err, nil)
}
