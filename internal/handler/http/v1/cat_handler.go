package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/cat_finder_system/internal/imaging"
	"github.com/shenikar/cat_finder_system/internal/service"
)

const (
	maxPhotos    = 5
	maxPhotoSize = 5 << 20 // 5MB на файл
)

// parseLocation разбирает строку JSON "[latitude, longitude]"
func parseLocation(raw string) (float64, float64, error) {
	var loc []float64
	if err := json.Unmarshal([]byte(raw), &loc); err != nil {
		return 0, 0, fmt.Errorf("invalid location json: %w", err)
	}
	if len(loc) != 2 {
		return 0, 0, fmt.Errorf("location must contain exactly two elements")
	}
	if math.IsNaN(loc[0]) || math.IsInf(loc[0], 0) || math.IsNaN(loc[1]) || math.IsInf(loc[1], 0) {
		return 0, 0, fmt.Errorf("location values must be finite numbers")
	}
	return loc[0], loc[1], nil
}

// readPhotos извлекает до пяти файлов фотографий из multipart-формы
func readPhotos(c *gin.Context) ([]imaging.Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, fmt.Errorf("multipart form is required")
		}
		return nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	files := form.File["photos"]
	if len(files) > maxPhotos {
		return nil, fmt.Errorf("at most %d photos are allowed", maxPhotos)
	}

	uploads := make([]imaging.Upload, 0, len(files))
	for _, header := range files {
		if header.Size > maxPhotoSize {
			return nil, fmt.Errorf("photo %s exceeds the %d byte limit", header.Filename, maxPhotoSize)
		}
		file, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open uploaded photo: %w", err)
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read uploaded photo: %w", err)
		}
		uploads = append(uploads, imaging.Upload{Name: header.Filename, Data: data})
	}
	return uploads, nil
}

// @Summary List cats
// @Description Get a paginated list of cats, optionally filtered to a circular geofence
// @Tags Cats
// @Accept json
// @Produce json
// @Param lat query number false "Latitude of the geofence center"
// @Param lng query number false "Longitude of the geofence center"
// @Param radius query number false "Geofence radius in kilometers" default(10)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Number of items per page" default(10)
// @Success 200 {object} CatListResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cats [get]
func (h *Handler) listCats(c *gin.Context) {
	log := h.logger.WithField("method", "listCats")

	filter := service.CatFilter{}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	filter.Page = page
	filter.Limit = limit

	if radiusStr := c.Query("radius"); radiusStr != "" {
		radius, err := strconv.ParseFloat(radiusStr, 64)
		if err != nil || radius <= 0 || radius > 1000 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "radius must be between 0 and 1000 kilometers"})
			return
		}
		filter.RadiusKm = radius
	}

	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr != "" && lngStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil || lat < -90 || lat > 90 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude"})
			return
		}
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil || lng < -180 || lng > 180 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude"})
			return
		}
		filter.Lat = &lat
		filter.Lng = &lng
	}

	cats, total, err := h.catService.ListCats(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("Failed to list cats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, CatListResponse{
		Cats: ModelsToCatListItems(cats),
		Pagination: Pagination{
			Total: total,
			Page:  filter.Page,
			Limit: filter.Limit,
		},
	})
}

// @Summary Get cat details
// @Description Get a full cat record with all its sighting reports
// @Tags Cats
// @Accept json
// @Produce json
// @Param id path string true "Cat ID"
// @Success 200 {object} CatDetailResponse
// @Failure 400 {object} map[string]string "Invalid cat ID"
// @Failure 404 {object} map[string]string "Cat not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cats/{id} [get]
func (h *Handler) getCat(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cat ID"})
		return
	}
	log := h.logger.WithField("method", "getCat").WithField("id", id)

	details, err := h.catService.GetCatDetails(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cat not found"})
			return
		}
		log.WithError(err).Error("Failed to get cat details from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, DetailsToCatDetailResponse(details))
}

// @Summary Create a cat record
// @Description Create a lost/found cat record with photos (multipart form)
// @Tags Cats
// @Accept mpfd
// @Produce json
// @Param name formData string true "Cat name"
// @Param description formData string true "Description"
// @Param status formData string true "Status: lost or found"
// @Param location formData string true "Location as JSON [latitude, longitude]"
// @Param photos formData file false "Up to 5 photos"
// @Success 201 {object} CatDetailResponse
// @Failure 400 {object} map[string]string "Invalid form data"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cats [post]
func (h *Handler) createCat(c *gin.Context) {
	log := h.logger.WithField("method", "createCat")

	lat, lng, err := parseLocation(c.PostForm("location"))
	if err != nil {
		log.WithError(err).Warn("Failed to parse location")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location format, expected [latitude, longitude]"})
		return
	}

	form := CreateCatForm{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Status:      c.PostForm("status"),
		Latitude:    lat,
		Longitude:   lng,
	}
	if err := h.validate.Struct(form); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	photos, err := readPhotos(c)
	if err != nil {
		log.WithError(err).Warn("Failed to read uploaded photos")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat, err := h.catService.CreateCat(c.Request.Context(), service.CreateCatInput{
		Name:        form.Name,
		Description: form.Description,
		Status:      form.Status,
		Latitude:    lat,
		Longitude:   lng,
		Photos:      photos,
		OwnerID:     optionalUserID(c),
	})
	if err != nil {
		log.WithError(err).Error("Failed to create cat in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create cat report"})
		return
	}

	c.JSON(http.StatusCreated, DetailsToCatDetailResponse(&service.CatDetails{Cat: cat, Reports: nil}))
}

// @Summary Add a sighting report
// @Description Add a sighting report to an existing cat and update its last seen position
// @Tags Cats
// @Accept mpfd
// @Produce json
// @Param id path string true "Cat ID"
// @Param description formData string true "Description"
// @Param location formData string true "Location as JSON [latitude, longitude]"
// @Param photos formData file false "Up to 5 photos"
// @Success 201 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid cat ID or form data"
// @Failure 404 {object} map[string]string "Cat not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cats/{id}/reports [post]
func (h *Handler) addReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cat ID"})
		return
	}
	log := h.logger.WithField("method", "addReport").WithField("id", id)

	lat, lng, err := parseLocation(c.PostForm("location"))
	if err != nil {
		log.WithError(err).Warn("Failed to parse location")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location format, expected [latitude, longitude]"})
		return
	}

	form := AddReportForm{
		Description: c.PostForm("description"),
		Latitude:    lat,
		Longitude:   lng,
	}
	if err := h.validate.Struct(form); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	photos, err := readPhotos(c)
	if err != nil {
		log.WithError(err).Warn("Failed to read uploaded photos")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.catService.AddReport(c.Request.Context(), id, service.AddReportInput{
		Description: form.Description,
		Latitude:    lat,
		Longitude:   lng,
		Photos:      photos,
		ReporterID:  optionalUserID(c),
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cat not found"})
			return
		}
		log.WithError(err).Error("Failed to add report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add report"})
		return
	}

	c.JSON(http.StatusCreated, ModelToReportResponse(report))
}

// @Summary Update cat status
// @Description Transition a cat to a new status (owner only)
// @Tags Cats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cat ID"
// @Param status body UpdateStatusRequest true "Status update request"
// @Success 200 {object} CatDetailResponse
// @Failure 400 {object} map[string]string "Invalid cat ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Cat not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cats/{id}/status [patch]
func (h *Handler) updateCatStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cat ID"})
		return
	}
	userID, ok := authenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	log := h.logger.WithField("method", "updateCatStatus").WithField("id", id)

	var input UpdateStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat, err := h.catService.UpdateCatStatus(c.Request.Context(), id, input.Status, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "cat not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "only the owner can change cat status"})
		default:
			log.WithError(err).Error("Failed to update cat status in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cat status"})
		}
		return
	}

	c.JSON(http.StatusOK, DetailsToCatDetailResponse(&service.CatDetails{Cat: cat, Reports: nil}))
}

// @Summary Delete a cat record
// @Description Delete a cat with its reports and photo files (owner only)
// @Tags Cats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cat ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid cat ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Cat not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cats/{id} [delete]
func (h *Handler) deleteCat(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cat ID"})
		return
	}
	userID, ok := authenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	log := h.logger.WithField("method", "deleteCat").WithField("id", id)

	if err := h.catService.DeleteCat(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "cat not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "only the owner can delete the cat"})
		default:
			log.WithError(err).Error("Failed to delete cat in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete cat"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
