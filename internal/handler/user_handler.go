package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anoa.com/makanlist/internal/store"
	"anoa.com/makanlist/pkg/response"
)

type UserHandler struct {
	store *store.Store
}

func NewUserHandler(st *store.Store) *UserHandler {
	return &UserHandler{store: st}
}

func (h *UserHandler) Me(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	user := h.store.GetUserByID(userID)
	if user == nil {
		response.NotFound(c)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Stats(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.store.GetUserStats(userID))
}

// Search matches other users by username, display name or email.
// Queries shorter than two characters return an empty list.
func (h *UserHandler) Search(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	query := c.Query("q")
	users := h.store.SearchUsers(query, userID)

	c.JSON(http.StatusOK, gin.H{"data": users})
}
