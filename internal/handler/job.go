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

type JobHandler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type jobHandler struct {
	jobService service.JobService
	log        *logrus.Logger
}

func NewJobHandler(jobService service.JobService, log *logrus.Logger) JobHandler {
	return &jobHandler{jobService: jobService, log: log}
}

type JobCreateRequest struct {
	Title     string   `json:"title" binding:"required"`
	Salary    *int     `json:"salary" binding:"omitempty,gte=0"`
	Equity    *float64 `json:"equity" binding:"omitempty,gte=0,lte=1"`
	OrgHandle string   `json:"org_handle" binding:"required"`
}

type JobUpdateRequest struct {
	Title  *string  `json:"title" binding:"omitempty,min=1"`
	Salary *int     `json:"salary" binding:"omitempty,gte=0"`
	Equity *float64 `json:"equity" binding:"omitempty,gte=0,lte=1"`
}

func (h *jobHandler) Create(c *gin.Context) {
	var req JobCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for job create: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.jobService.Create(&models.Job{
		Title:     req.Title,
		Salary:    req.Salary,
		Equity:    req.Equity,
		OrgHandle: req.OrgHandle,
	})
	if err != nil {
		respondError(c, h.log, err, "create job")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"job": job})
}

func jobFilterFrom(c *gin.Context) (models.JobFilter, error) {
	var filter models.JobFilter
	for key, values := range c.Request.URL.Query() {
		value := values[0]
		switch key {
		case "title":
			filter.Title = &value
		case "minSalary":
			n, err := strconv.Atoi(value)
			if err != nil {
				return filter, apperr.BadRequest("minSalary must be an integer")
			}
			filter.MinSalary = &n
		case "hasEquity":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return filter, apperr.BadRequest("hasEquity must be a boolean")
			}
			filter.HasEquity = &b
		default:
			return filter, apperr.BadRequest(fmt.Sprintf("Unrecognized filter: %s", key))
		}
	}
	return filter, nil
}

func (h *jobHandler) List(c *gin.Context) {
	filter, err := jobFilterFrom(c)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	jobs, err := h.jobService.List(filter)
	if err != nil {
		respondError(c, h.log, err, "list jobs")
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func jobID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperr.BadRequest("Job id must be an integer")
	}
	return id, nil
}

func (h *jobHandler) Get(c *gin.Context) {
	id, err := jobID(c)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	job, err := h.jobService.Get(id)
	if err != nil {
		respondError(c, h.log, err, "get job")
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": job})
}

func (h *jobHandler) Update(c *gin.Context) {
	id, err := jobID(c)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	var req JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for job update: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.jobService.Update(id, service.JobUpdate{
		Title:  req.Title,
		Salary: req.Salary,
		Equity: req.Equity,
	})
	if err != nil {
		respondError(c, h.log, err, "update job")
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": job})
}

func (h *jobHandler) Delete(c *gin.Context) {
	id, err := jobID(c)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	if err := h.jobService.Delete(id); err != nil {
		respondError(c, h.log, err, "delete job")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
