package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/kanban-backend/internal/data/repos"
	types "github.com/yungbote/kanban-backend/internal/domain"
	"github.com/yungbote/kanban-backend/internal/pkg/dbctx"
)

type TagHandler struct {
	tags repos.TagRepo
}

func NewTagHandler(tags repos.TagRepo) *TagHandler {
	return &TagHandler{tags: tags}
}

func (h *TagHandler) Create(c *gin.Context) {
	var req types.TagCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	resp, id, err := h.tags.Create(dbc, req)
	respondResult(c, resp, err, gin.H{"id": id})
}

func (h *TagHandler) Find(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	view, err := h.tags.Find(dbc, id)
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

func (h *TagHandler) Read(c *gin.Context) {
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	views, err := h.tags.Read(dbc)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "store_error", err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *TagHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req types.TagUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	req.ID = id
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	resp, err := h.tags.Update(dbc, req)
	respondResult(c, resp, err, nil)
}

func (h *TagHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	force := c.Query("force") == "true"
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	resp, err := h.tags.Delete(dbc, id, force)
	respondResult(c, resp, err, nil)
}
