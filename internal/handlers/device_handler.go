package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "paisa/internal/errors"
	"paisa/internal/middleware"
	"paisa/internal/services"
)

// DeviceHandler handles device registration requests
type DeviceHandler struct {
	deviceService services.DeviceServicer
}

// NewDeviceHandler creates a new DeviceHandler
func NewDeviceHandler(deviceService services.DeviceServicer) *DeviceHandler {
	return &DeviceHandler{deviceService: deviceService}
}

// RegisterDeviceRequest represents the registration payload
type RegisterDeviceRequest struct {
	Name     string `json:"name" binding:"required"`
	Platform string `json:"platform" binding:"required"`
}

// RegisterDeviceResponse carries the issued bearer token
type RegisterDeviceResponse struct {
	DeviceID string `json:"device_id"`
	Token    string `json:"token"`
}

// RegisterDevice registers an installation and issues its bearer token
// @Summary     Register device
// @Description Register this installation and receive the bearer token for all other endpoints
// @Tags        devices
// @Accept      json
// @Produce     json
// @Param       request body RegisterDeviceRequest true "Device details"
// @Success     201 {object} RegisterDeviceResponse "Device registered"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /devices/register [post]
func (h *DeviceHandler) RegisterDevice(c *gin.Context) {
	var req RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	device, err := h.deviceService.RegisterDevice(req.Name, req.Platform)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateDeviceToken(device)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusCreated, RegisterDeviceResponse{
		DeviceID: device.ID,
		Token:    token,
	})
}
