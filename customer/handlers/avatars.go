package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopcore/commerce-api/framework/mid"
	"github.com/shopcore/commerce-api/framework/web"
)

// maxAvatarSize caps profile picture uploads at 5 MiB.
const maxAvatarSize = 5 << 20

// UploadAvatar stores a profile picture from a multipart form field named
// "picture". Only image content types are accepted.
func (h *Customers) UploadAvatar(ctx *gin.Context) error {
	customerID := ctx.GetString(mid.CtxCustomerIDKey)

	fileHeader, err := ctx.FormFile("picture")
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if fileHeader.Size > maxAvatarSize {
		return web.NewRequestError(web.ErrRequestEntityTooLarge, http.StatusRequestEntityTooLarge)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	if err := h.service.UploadAvatar(ctx, customerID, contentType, file); err != nil {
		return translateCustomerError(err)
	}

	return web.Respond(ctx, nil, http.StatusCreated)
}

// GetAvatarURL returns a short-lived download link for the stored picture.
func (h *Customers) GetAvatarURL(ctx *gin.Context) error {
	customerID := ctx.GetString(mid.CtxCustomerIDKey)

	url, err := h.service.AvatarURL(ctx, customerID)
	if err != nil {
		return translateCustomerError(err)
	}

	return web.Respond(ctx, gin.H{"url": url}, http.StatusOK)
}
