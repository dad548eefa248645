package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anoa.com/makanlist/internal/dto"
	"anoa.com/makanlist/internal/service"
	"anoa.com/makanlist/internal/store"
	"anoa.com/makanlist/pkg/response"
	"anoa.com/makanlist/pkg/validator"
)

type RestaurantHandler struct {
	service service.RestaurantService
	store   *store.Store
}

func NewRestaurantHandler(service service.RestaurantService, st *store.Store) *RestaurantHandler {
	return &RestaurantHandler{service: service, store: st}
}

func (h *RestaurantHandler) AddRestaurant(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.CreateRestaurantInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.service.AddRestaurant(c.Request.Context(), userID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *RestaurantHandler) GetRestaurants(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": h.store.GetRestaurantsByUser(userID)})
}

func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	restaurantID, ok := paramID(c, "id")
	if !ok {
		return
	}

	details := h.store.GetRestaurantDetails(restaurantID, userID)
	if details == nil {
		response.NotFound(c)
		return
	}

	c.JSON(http.StatusOK, details)
}

func (h *RestaurantHandler) GetVisits(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	restaurantID, ok := paramID(c, "id")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": h.store.GetVisitsByRestaurant(restaurantID, userID)})
}
