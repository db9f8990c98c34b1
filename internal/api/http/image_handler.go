package http

import (
	"net/http"

	"medrent-backend/internal/domain"
	"medrent-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

type ImageHandler struct {
	imageSvc service.ImageStorageService
	validate *validator.Validate
}

func NewImageHandler(imageSvc service.ImageStorageService, validate *validator.Validate) *ImageHandler {
	return &ImageHandler{imageSvc: imageSvc, validate: validate}
}

type uploadURLRequest struct {
	FileName    string `json:"file_name" validate:"required"`
	ContentType string `json:"content_type" validate:"required,oneof=image/jpeg image/png image/gif"`
}

type uploadURLResponse struct {
	Image     *domain.EquipmentImage `json:"image"`
	UploadURL string                 `json:"upload_url"`
}

// RequestUploadURL issues a presigned-style upload URL and records a pending
// image row. The client must confirm after the upload finishes.
func (h *ImageHandler) RequestUploadURL(w http.ResponseWriter, r *http.Request) {
	equipmentID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req uploadURLRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, err)
		return
	}

	image, uploadURL, err := h.imageSvc.GetUploadURL(r.Context(), UserIDFromContext(r.Context()), equipmentID, req.FileName, req.ContentType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, uploadURLResponse{Image: image, UploadURL: uploadURL})
}

func (h *ImageHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	equipmentID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	imageID, err := pathID(r, "imageID")
	if err != nil {
		writeError(w, err)
		return
	}

	image, err := h.imageSvc.ConfirmImageUpload(r.Context(), UserIDFromContext(r.Context()), imageID, equipmentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, image)
}

func (h *ImageHandler) List(w http.ResponseWriter, r *http.Request) {
	equipmentID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	images, err := h.imageSvc.GetEquipmentImages(r.Context(), equipmentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, images)
}

func (h *ImageHandler) DownloadURL(w http.ResponseWriter, r *http.Request) {
	imageID, err := pathID(r, "imageID")
	if err != nil {
		writeError(w, err)
		return
	}

	url, err := h.imageSvc.GetDownloadURL(r.Context(), imageID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"download_url": url})
}

func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	imageID, err := pathID(r, "imageID")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.imageSvc.DeleteImage(r.Context(), UserIDFromContext(r.Context()), imageID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
