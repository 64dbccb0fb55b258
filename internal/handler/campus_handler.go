package handler

import (
	"log/slog"
	"net/http"

	"kiit_connect/internal/model"
	"kiit_connect/internal/service"

	"github.com/gin-gonic/gin"
)

// CampusHandler serves campus data and the chatbot
type CampusHandler struct {
	campus    service.CampusService
	directory service.DirectoryService
	logger    *slog.Logger
}

// NewCampusHandler creates a new CampusHandler
func NewCampusHandler(campus service.CampusService, directory service.DirectoryService, logger *slog.Logger) *CampusHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CampusHandler{campus: campus, directory: directory, logger: logger.With("component", "campus_handler")}
}

func (h *CampusHandler) ListCafeterias(c *gin.Context) {
	cafeterias, err := h.campus.ListCafeterias(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": cafeterias})
}

func (h *CampusHandler) CreateCafeteria(c *gin.Context) {
	var req model.CreateCafeteriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cafeteria, err := h.campus.CreateCafeteria(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": cafeteria})
}

func (h *CampusHandler) ListHostels(c *gin.Context) {
	hostels, err := h.campus.ListHostels(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": hostels})
}

func (h *CampusHandler) CreateHostel(c *gin.Context) {
	var req model.CreateHostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	hostel, err := h.campus.CreateHostel(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": hostel})
}

func (h *CampusHandler) ListLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.directory.Locations(c.Request.Context())})
}

func (h *CampusHandler) ListPersonnel(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.directory.Personnel(c.Request.Context())})
}

func (h *CampusHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "response": service.ChatReply(req.Message)})
}

// RegisterCampusRoutes registers campus routes. Every route needs a token;
// writes additionally need the admin role.
func (h *CampusHandler) RegisterCampusRoutes(rg *gin.RouterGroup, jwtAuthMW gin.HandlerFunc, adminRoleMW gin.HandlerFunc) {
	campus := rg.Group("")
	campus.Use(jwtAuthMW)
	{
		campus.GET("/cafeterias", h.ListCafeterias)
		campus.POST("/cafeterias", adminRoleMW, h.CreateCafeteria)
		campus.GET("/hostels", h.ListHostels)
		campus.POST("/hostels", adminRoleMW, h.CreateHostel)
		campus.GET("/locations", h.ListLocations)
		campus.GET("/personnel", h.ListPersonnel)
		campus.POST("/chatbot", h.Chat)
	}
}
