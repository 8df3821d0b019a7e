package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/markeugine/atelier-backend/internal/httperr"
	"github.com/markeugine/atelier-backend/internal/httpresp"
	"github.com/markeugine/atelier-backend/internal/middleware"
	"github.com/markeugine/atelier-backend/internal/models"
	"github.com/markeugine/atelier-backend/internal/storage"
)

const galleryFolder = "gallery_images"

type GalleryHandler struct {
	db    *gorm.DB
	store storage.Store
}

func NewGalleryHandler(db *gorm.DB, store storage.Store) *GalleryHandler {
	return &GalleryHandler{db: db, store: store}
}

// applyImages stores up to five uploaded images named image1..image5 onto
// the attire. Slots without an upload keep their current value.
func (h *GalleryHandler) applyImages(c *gin.Context, attire *models.Attire) error {
	targets := []*string{
		&attire.Image1, &attire.Image2, &attire.Image3,
		&attire.Image4, &attire.Image5,
	}
	for i, target := range targets {
		fh, err := c.FormFile(fmt.Sprintf("image%d", i+1))
		if err != nil {
			continue
		}
		url, err := storage.SaveUpload(c.Request.Context(), h.store, galleryFolder, fh)
		if err != nil {
			return err
		}
		*target = url
	}
	return nil
}

// Create is staff-only. Multipart so images can come along with the fields.
func (h *GalleryHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	attire := models.Attire{
		UserID:            &user.ID,
		AttireName:        c.PostForm("attire_name"),
		AttireType:        c.PostForm("attire_type"),
		AttireDescription: c.PostForm("attire_description"),
		TotalPrice:        c.PostForm("total_price"),
		ToShow:            true,
	}
	if attire.AttireName == "" {
		httperr.Validation(c, gin.H{"attire_name": "This field is required."})
		return
	}
	if v := c.PostForm("to_show"); v != "" {
		attire.ToShow = v == "true"
	}
	if v := c.PostForm("landing_page"); v != "" {
		attire.LandingPage = v == "true"
	}

	if err := h.applyImages(c, &attire); err != nil {
		log.Printf("gallery image upload failed: %v", err)
		httperr.Internal(c, "image_upload_failed", "Could not store an uploaded image.")
		return
	}

	if err := h.db.Create(&attire).Error; err != nil {
		httperr.Internal(c, "attire_create_failed", "Could not save the attire.")
		return
	}

	httpresp.Created(c, attire)
}

// List returns non-archived attires by default; staff can pass
// show_archived=true to see everything.
func (h *GalleryHandler) List(c *gin.Context) {
	q := h.db.Order("created_at DESC")

	showArchived := c.Query("show_archived") == "true"
	if !showArchived || !middleware.IsStaff(c) {
		q = q.Where("is_archived = ?", false)
	}

	var attires []models.Attire
	if err := q.Find(&attires).Error; err != nil {
		httperr.Internal(c, "attire_list_failed", "Could not list attires.")
		return
	}

	httpresp.List(c, attires)
}

func (h *GalleryHandler) Retrieve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.Validation(c, gin.H{"id": "Must be an integer."})
		return
	}

	var attire models.Attire
	if err := h.db.First(&attire, uint(id)).Error; err != nil {
		httperr.NotFound(c, "attire_not_found", "Attire not found.")
		return
	}

	if attire.IsArchived && !middleware.IsStaff(c) {
		httperr.NotFound(c, "attire_not_found", "Attire not found.")
		return
	}

	httpresp.OK(c, attire)
}

// Update is staff-only and partial: only supplied form fields change.
func (h *GalleryHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.Validation(c, gin.H{"id": "Must be an integer."})
		return
	}

	var attire models.Attire
	if err := h.db.First(&attire, uint(id)).Error; err != nil {
		httperr.NotFound(c, "attire_not_found", "Attire not found.")
		return
	}

	if v, ok := c.GetPostForm("attire_name"); ok {
		attire.AttireName = v
	}
	if v, ok := c.GetPostForm("attire_type"); ok {
		attire.AttireType = v
	}
	if v, ok := c.GetPostForm("attire_description"); ok {
		attire.AttireDescription = v
	}
	if v, ok := c.GetPostForm("total_price"); ok {
		attire.TotalPrice = v
	}
	if v, ok := c.GetPostForm("to_show"); ok {
		attire.ToShow = v == "true"
	}
	if v, ok := c.GetPostForm("landing_page"); ok {
		attire.LandingPage = v == "true"
	}
	if v, ok := c.GetPostForm("is_archived"); ok {
		attire.IsArchived = v == "true"
	}

	if err := h.applyImages(c, &attire); err != nil {
		log.Printf("gallery image upload failed: %v", err)
		httperr.Internal(c, "image_upload_failed", "Could not store an uploaded image.")
		return
	}

	if err := h.db.Save(&attire).Error; err != nil {
		httperr.Internal(c, "attire_update_failed", "Could not save the attire.")
		return
	}

	httpresp.OK(c, attire)
}

// Archive soft-removes an attire from the public gallery.
func (h *GalleryHandler) Archive(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.Validation(c, gin.H{"id": "Must be an integer."})
		return
	}

	var attire models.Attire
	if err := h.db.First(&attire, uint(id)).Error; err != nil {
		httperr.NotFound(c, "attire_not_found", "Attire not found.")
		return
	}

	attire.IsArchived = true
	if err := h.db.Save(&attire).Error; err != nil {
		httperr.Internal(c, "attire_update_failed", "Could not archive the attire.")
		return
	}

	httpresp.Message(c, http.StatusOK, "Attire archived.")
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.Validation(c, gin.H{"id": "Must be an integer."})
		return
	}

	var attire models.Attire
	if err := h.db.First(&attire, uint(id)).Error; err != nil {
		httperr.NotFound(c, "attire_not_found", "Attire not found.")
		return
	}

	if err := h.db.Delete(&attire).Error; err != nil {
		httperr.Internal(c, "attire_delete_failed", "Could not delete the attire.")
		return
	}

	c.Status(http.StatusNoContent)
}
