package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"anoa.com/makanlist/internal/dto"
	"anoa.com/makanlist/internal/store"
	"anoa.com/makanlist/pkg/response"
	"anoa.com/makanlist/pkg/validator"
)

type FriendHandler struct {
	store *store.Store
}

func NewFriendHandler(st *store.Store) *FriendHandler {
	return &FriendHandler{store: st}
}

func (h *FriendHandler) SendRequest(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.SendFriendRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if !h.store.SendFriendRequest(userID, req.UserID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "permintaan pertemanan tidak dapat dikirim"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "permintaan pertemanan terkirim"})
}

func (h *FriendHandler) AcceptRequest(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	requesterID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if !h.store.AcceptFriendRequest(userID, requesterID) {
		response.NotFound(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "permintaan pertemanan diterima"})
}

func (h *FriendHandler) RejectRequest(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	requesterID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if !h.store.RejectFriendRequest(userID, requesterID) {
		response.NotFound(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "permintaan pertemanan ditolak"})
}

func (h *FriendHandler) ListFriends(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": h.store.GetFriends(userID)})
}

func (h *FriendHandler) ListRequests(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": h.store.GetFriendRequests(userID)})
}
