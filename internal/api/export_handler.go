package api

import (
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"assinatura/internal/api/middleware"
	"assinatura/internal/signature"
)

// ExportHandler renders the finished signature preview.
type ExportHandler struct {
	logger *slog.Logger
}

// NewExportHandler builds the export handler.
func NewExportHandler(logger *slog.Logger) *ExportHandler {
	return &ExportHandler{logger: logger}
}

// Signature assembles renderer parameters from the multipart form, turning
// an uploaded photo into a data URI, and answers with the raw HTML document.
func (h *ExportHandler) Signature(c *gin.Context) {
	params := signature.Params{
		Name:                  c.PostForm("name"),
		Email:                 c.PostForm("email"),
		Sector:                c.PostForm("sector"),
		UserID:                c.PostForm("userId"),
		BackgroundImage:       c.PostForm("backgroundImage"),
		ContainerBorderColor:  c.PostForm("containerBorderColor"),
		ImageBorderColor:      c.PostForm("imageBorderColor"),
		DivisionBarColor:      c.PostForm("divisionBarColor"),
		CollaboratorNameColor: c.PostForm("collaboratorNameColor"),
		SectorNameColor:       c.PostForm("sectorNameColor"),
		CollaboratorInfoColor: c.PostForm("collaboratorInfosColor"),
		ContasLogo:            c.PostForm("contasLogo"),
		IconsColor:            c.PostForm("iconsColor"),
	}

	params.ImageZoom = formInt(c, "imageZoom")
	params.ImageOffsetX = formInt(c, "imageOffsetX")
	params.ImageOffsetY = formInt(c, "imageOffsetY")

	if value := c.PostForm("showTitle"); value != "" {
		if showTitle, err := strconv.ParseBool(value); err == nil {
			params.ShowTitle = &showTitle
		}
	}

	if dataURI, err := h.photoDataURI(c); err != nil {
		h.loggerFromContext(c).Error("read signature photo failed", slog.Any("error", err))
		Internal(c, "Erro ao gerar visualização da assinatura")
		return
	} else if dataURI != "" {
		params.Image = dataURI
	}

	html, err := signature.Render(params)
	if err != nil {
		h.loggerFromContext(c).Error("render signature failed", slog.Any("error", err))
		Internal(c, "Erro ao gerar visualização da assinatura")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// photoDataURI encodes the optional `image` upload as a data URI.
func (h *ExportHandler) photoDataURI(c *gin.Context) (string, error) {
	file, err := formFile(c, "image")
	if err != nil || file == nil {
		return "", err
	}

	reader, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open photo: %w", err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read photo: %w", err)
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(content)), nil
}

func (h *ExportHandler) loggerFromContext(c *gin.Context) *slog.Logger {
	if logger := middleware.LoggerFromContext(c); logger != nil {
		return logger
	}
	if h.logger != nil {
		return h.logger
	}
	return slog.Default()
}

// formInt parses an optional numeric form value; garbage counts as unset.
func formInt(c *gin.Context, field string) *int {
	value := c.PostForm(field)
	if value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &parsed
}
