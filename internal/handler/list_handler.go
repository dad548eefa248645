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

type ListHandler struct {
	store *store.Store
}

func NewListHandler(st *store.Store) *ListHandler {
	return &ListHandler{store: st}
}

func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func (h *ListHandler) CreateList(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.CreateListInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	list := h.store.CreateList(store.CreateListParams{
		Title:         req.Title,
		Description:   req.Description,
		CoverImageURL: req.CoverImageURL,
	}, userID)
	if list == nil {
		response.NotFound(c)
		return
	}

	c.JSON(http.StatusCreated, list)
}

func (h *ListHandler) GetLists(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": h.store.GetListsByUser(userID)})
}

func (h *ListHandler) GetSharedLists(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": h.store.GetSharedLists(userID)})
}

func (h *ListHandler) GetList(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	listID, ok := paramID(c, "id")
	if !ok {
		return
	}

	details := h.store.GetListDetails(listID, userID)
	if details == nil {
		response.NotFound(c)
		return
	}

	c.JSON(http.StatusOK, details)
}

func (h *ListHandler) UpdateList(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	listID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateListInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	list := h.store.UpdateList(listID, userID, store.UpdateListParams{
		Title:         req.Title,
		Description:   req.Description,
		CoverImageURL: req.CoverImageURL,
	})
	if list == nil {
		response.NotFound(c)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *ListHandler) DeleteList(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	listID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if !h.store.DeleteList(listID, userID) {
		response.NotFound(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "daftar berhasil dihapus"})
}

func (h *ListHandler) ShareList(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	listID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.ShareListInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if !h.store.ShareList(listID, req.UserID, req.IsOwner, userID) {
		response.NotFound(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "daftar berhasil dibagikan"})
}

func (h *ListHandler) GetListRestaurants(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	listID, ok := paramID(c, "id")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": h.store.GetRestaurantsByList(listID, userID)})
}

func (h *ListHandler) AddRestaurant(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	listID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.AddRestaurantToListInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	entry := h.store.AddRestaurantToList(listID, req.RestaurantID, userID)
	if entry == nil {
		response.NotFound(c)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *ListHandler) RemoveRestaurant(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	listID, ok := paramID(c, "id")
	if !ok {
		return
	}
	restaurantID, ok := paramID(c, "restaurantId")
	if !ok {
		return
	}

	if !h.store.RemoveRestaurantFromList(listID, restaurantID, userID) {
		response.NotFound(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "restoran dihapus dari daftar"})
}

// Reorder replaces the list's ordering with the given sequence. The
// sequence must contain every restaurant in the list exactly once.
func (h *ListHandler) Reorder(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	listID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.ReorderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if !h.store.ReorderRestaurantsInList(listID, req.RestaurantIDs, userID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "urutan tidak valid"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "urutan berhasil diperbarui"})
}
