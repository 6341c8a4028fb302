package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"jobboard/internal/apperr"
	"jobboard/internal/models"
	"jobboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type OrganizationHandler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type organizationHandler struct {
	orgService service.OrganizationService
	log        *logrus.Logger
}

func NewOrganizationHandler(orgService service.OrganizationService, log *logrus.Logger) OrganizationHandler {
	return &organizationHandler{orgService: orgService, log: log}
}

type OrganizationCreateRequest struct {
	Handle       string  `json:"handle" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"num_employees" binding:"omitempty,gte=0"`
	LogoURL      *string `json:"logo_url" binding:"omitempty,url"`
}

type OrganizationUpdateRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1"`
	Description  *string `json:"description"`
	NumEmployees *int    `json:"num_employees" binding:"omitempty,gte=0"`
	LogoURL      *string `json:"logo_url" binding:"omitempty,url"`
}

func (h *organizationHandler) Create(c *gin.Context) {
	var req OrganizationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for organization create: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	org, err := h.orgService.Create(&models.Organization{
		Handle:       req.Handle,
		Name:         req.Name,
		Description:  req.Description,
		NumEmployees: req.NumEmployees,
		LogoURL:      req.LogoURL,
	})
	if err != nil {
		h.respondError(c, err, "create organization")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"organization": org})
}

// organizationFilterFrom coerces and validates the list-query options. Only
// recognized option names may appear, and the employee bounds must be a valid
// range before they reach the evaluator.
func organizationFilterFrom(c *gin.Context) (models.OrganizationFilter, error) {
	var filter models.OrganizationFilter
	for key, values := range c.Request.URL.Query() {
		value := values[0]
		switch key {
		case "name":
			filter.Name = &value
		case "minEmployees":
			n, err := strconv.Atoi(value)
			if err != nil {
				return filter, apperr.BadRequest("minEmployees must be an integer")
			}
			filter.MinEmployees = &n
		case "maxEmployees":
			n, err := strconv.Atoi(value)
			if err != nil {
				return filter, apperr.BadRequest("maxEmployees must be an integer")
			}
			filter.MaxEmployees = &n
		default:
			return filter, apperr.BadRequest(fmt.Sprintf("Unrecognized filter: %s", key))
		}
	}

	if filter.MinEmployees != nil && filter.MaxEmployees != nil && *filter.MinEmployees >= *filter.MaxEmployees {
		return filter, apperr.BadRequest("minEmployees must be less than maxEmployees")
	}
	return filter, nil
}

func (h *organizationHandler) List(c *gin.Context) {
	filter, err := organizationFilterFrom(c)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	orgs, err := h.orgService.List(filter)
	if err != nil {
		h.respondError(c, err, "list organizations")
		return
	}

	c.JSON(http.StatusOK, gin.H{"organizations": orgs})
}

func (h *organizationHandler) Get(c *gin.Context) {
	org, err := h.orgService.Get(c.Param("handle"))
	if err != nil {
		h.respondError(c, err, "get organization")
		return
	}

	c.JSON(http.StatusOK, gin.H{"organization": org})
}

func (h *organizationHandler) Update(c *gin.Context) {
	var req OrganizationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for organization update: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	org, err := h.orgService.Update(c.Param("handle"), service.OrganizationUpdate{
		Name:         req.Name,
		Description:  req.Description,
		NumEmployees: req.NumEmployees,
		LogoURL:      req.LogoURL,
	})
	if err != nil {
		h.respondError(c, err, "update organization")
		return
	}

	c.JSON(http.StatusOK, gin.H{"organization": org})
}

func (h *organizationHandler) Delete(c *gin.Context) {
	handle := c.Param("handle")
	if err := h.orgService.Delete(handle); err != nil {
		h.respondError(c, err, "delete organization")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": handle})
}

func (h *organizationHandler) respondError(c *gin.Context, err error, op string) {
	respondError(c, h.log, err, op)
}
