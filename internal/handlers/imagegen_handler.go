package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/markeugine/atelier-backend/internal/httperr"
	"github.com/markeugine/atelier-backend/internal/imagegen"
	"github.com/markeugine/atelier-backend/internal/storage"
)

const generatedFolder = "generated_images"

type ImageGenHandler struct {
	client *imagegen.Client
	store  storage.Store
}

func NewImageGenHandler(client *imagegen.Client, store storage.Store) *ImageGenHandler {
	return &ImageGenHandler{client: client, store: store}
}

type GenerateImageRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// Generate proxies a text prompt to the image provider, stores the result,
// and returns both the base64 payload and a durable URL. Upstream failures
// are relayed with the provider's own status and body so the frontend can
// show the real reason.
func (h *ImageGenHandler) Generate(c *gin.Context) {
	var req GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, gin.H{"prompt": "This field is required."})
		return
	}

	data, b64, err := h.client.Generate(c.Request.Context(), req.Prompt)
	if err != nil {
		var upstream *imagegen.UpstreamError
		if errors.As(err, &upstream) {
			c.Data(upstream.StatusCode, "application/json", []byte(upstream.Body))
			return
		}
		log.Printf("image generation failed: %v", err)
		httperr.Internal(c, "image_generation_failed", "Could not generate the image.")
		return
	}

	name := storage.UniqueName("generated.png")
	url, err := h.store.Save(c.Request.Context(), generatedFolder, name, "image/png", data)
	if err != nil {
		log.Printf("storing generated image failed: %v", err)
		httperr.Internal(c, "image_store_failed", "Could not store the generated image.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"image_base64": b64,
		"file_url":     url,
	})
}
