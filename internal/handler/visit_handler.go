package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anoa.com/makanlist/internal/dto"
	"anoa.com/makanlist/internal/service"
	"anoa.com/makanlist/pkg/response"
	"anoa.com/makanlist/pkg/validator"
)

type VisitHandler struct {
	service service.VisitService
}

func NewVisitHandler(service service.VisitService) *VisitHandler {
	return &VisitHandler{service: service}
}

func (h *VisitHandler) CreateVisit(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.CreateVisitInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	visit, err := h.service.CreateVisit(userID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, visit)
}

func (h *VisitHandler) GetVisit(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	visitID, ok := paramID(c, "id")
	if !ok {
		return
	}

	details, err := h.service.GetVisit(visitID, userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

func (h *VisitHandler) GenerateSummary(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	visitID, ok := paramID(c, "id")
	if !ok {
		return
	}

	summary, err := h.service.GenerateSummary(c.Request.Context(), visitID, userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

func (h *VisitHandler) AddNote(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	visitID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateNoteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	note, err := h.service.AddNote(visitID, userID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, note)
}

func (h *VisitHandler) AddPhoto(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	visitID, ok := paramID(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "foto wajib dilampirkan"})
		return
	}

	photo, err := h.service.AddPhoto(c.Request.Context(), visitID, userID, file)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, photo)
}
