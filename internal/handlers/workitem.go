package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/kanban-backend/internal/data/repos"
	types "github.com/yungbote/kanban-backend/internal/domain"
	"github.com/yungbote/kanban-backend/internal/pkg/dbctx"
)

type WorkItemHandler struct {
	items repos.WorkItemRepo
}

func NewWorkItemHandler(items repos.WorkItemRepo) *WorkItemHandler {
	return &WorkItemHandler{items: items}
}

func (h *WorkItemHandler) Create(c *gin.Context) {
	var req types.WorkItemCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if req.Title == "" {
		RespondError(c, http.StatusBadRequest, "missing_title", fmt.Errorf("title is required"))
		return
	}
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	resp, id, err := h.items.Create(dbc, req)
	respondResult(c, resp, err, gin.H{"id": id})
}

func (h *WorkItemHandler) Find(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	details, err := h.items.Find(dbc, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "store_error", err)
		return
	}
	if details == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *WorkItemHandler) Read(c *gin.Context) {
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	views, err := h.items.Read(dbc)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "store_error", err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *WorkItemHandler) ReadByState(c *gin.Context) {
	state, ok := types.ParseState(c.Param("state"))
	if !ok {
		RespondError(c, http.StatusBadRequest, "invalid_state", fmt.Errorf("unknown state %q", c.Param("state")))
		return
	}
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	views, err := h.items.ReadByState(dbc, state)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "store_error", err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *WorkItemHandler) ReadByTag(c *gin.Context) {
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	views, err := h.items.ReadByTag(dbc, c.Param("name"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "store_error", err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *WorkItemHandler) ReadByUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	views, err := h.items.ReadByUser(dbc, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "store_error", err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *WorkItemHandler) ReadRemoved(c *gin.Context) {
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	views, err := h.items.ReadRemoved(dbc)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "store_error", err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *WorkItemHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req types.WorkItemUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if !req.State.Valid() {
		RespondError(c, http.StatusBadRequest, "invalid_state", fmt.Errorf("unknown state %q", req.State))
		return
	}
	req.ID = id
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	resp, err := h.items.Update(dbc, req)
	respondResult(c, resp, err, nil)
}

func (h *WorkItemHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	resp, err := h.items.Delete(dbc, id)
	respondResult(c, resp, err, nil)
}
