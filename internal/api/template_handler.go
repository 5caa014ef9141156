package api

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"assinatura/internal/api/middleware"
	"assinatura/internal/database"
	"assinatura/internal/storage"
)

// Multipart file fields and the remote folders they are stored under.
const (
	backgroundFileField = "backgroundImg"
	logoFileField       = "logoContas"
)

var templateColorFields = []string{
	"containerBorderColor",
	"imgBorderColor",
	"divisionBarColor",
	"nomeColor",
	"setorColor",
	"iconsColor",
	"infoColor",
}

// TemplateHandler serves template CRUD, orchestrating asset uploads against
// the remote store.
type TemplateHandler struct {
	templates TemplateStore
	storage   AssetStorage
	scanner   *uploadScanner
	logger    *slog.Logger
}

// NewTemplateHandler builds the template handler. clamdAddr may be empty, in
// which case uploads are not scanned.
func NewTemplateHandler(templates TemplateStore, assetStorage AssetStorage, clamdAddr string, logger *slog.Logger) *TemplateHandler {
	return &TemplateHandler{
		templates: templates,
		storage:   assetStorage,
		scanner:   newUploadScanner(clamdAddr),
		logger:    logger,
	}
}

// Create persists a new template. A name and at least one color are
// required; background and logo files are optional and go to the asset
// store first.
func (h *TemplateHandler) Create(c *gin.Context) {
	logger := h.loggerFromContext(c)

	nome := c.PostForm("nome")
	if nome == "" {
		BadRequest(c, "Campo Nome é obrigatório")
		return
	}

	colors := bson.M{}
	for _, field := range templateColorFields {
		if value := c.PostForm(field); value != "" {
			colors[field] = value
		}
	}
	if len(colors) == 0 {
		BadRequest(c, "É necessário escolher ao menos uma cor")
		return
	}

	tpl := database.Template{
		Nome:                 nome,
		ContainerBorderColor: c.PostForm("containerBorderColor"),
		ImgBorderColor:       c.PostForm("imgBorderColor"),
		DivisionBarColor:     c.PostForm("divisionBarColor"),
		NomeColor:            c.PostForm("nomeColor"),
		SetorColor:           c.PostForm("setorColor"),
		IconsColor:           c.PostForm("iconsColor"),
		InfoColor:            c.PostForm("infoColor"),
		IsActive:             true,
	}

	background, err := h.uploadFormFile(c, backgroundFileField)
	if err != nil {
		h.replyUploadError(c, logger, err, "Ocorreu algum erro ao criar template")
		return
	}
	if background != nil {
		tpl.BackgroundImg = background.URL
		tpl.BackgroundID = background.AssetID
	}

	logo, err := h.uploadFormFile(c, logoFileField)
	if err != nil {
		h.replyUploadError(c, logger, err, "Ocorreu algum erro ao criar template")
		return
	}
	if logo != nil {
		tpl.LogoContas = logo.URL
		tpl.LogoContasID = logo.AssetID
	}

	saved, err := h.templates.Create(c.Request.Context(), tpl)
	if err != nil {
		logger.Error("create template failed", slog.Any("error", err))
		Internal(c, "Ocorreu algum erro ao criar template")
		return
	}

	resp := gin.H{
		"message":       "Upload feito com sucesso",
		"templateSaved": saved,
	}
	if background != nil {
		resp["backgroundUrl"] = background.URL
	}
	if logo != nil {
		resp["logoUrl"] = logo.URL
	}
	c.JSON(http.StatusCreated, resp)
}

// ListOrGetByID returns every template, or a single one when an id is given.
// The by-id path deliberately answers 200 with a null template when the id
// matches nothing; clients depend on that shape.
func (h *TemplateHandler) ListOrGetByID(c *gin.Context) {
	logger := h.loggerFromContext(c)

	id := c.Param("id")
	if id == "" {
		templates, err := h.templates.FindAll(c.Request.Context())
		if err != nil {
			logger.Error("list templates failed", slog.Any("error", err))
			Internal(c, "Ocorreu algum erro ao tentar buscar templates")
			return
		}
		c.JSON(http.StatusOK, gin.H{"templates": templates})
		return
	}

	tpl, err := h.templates.FindByID(c.Request.Context(), id)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		logger.Error("find template failed", slog.Any("error", err))
		Internal(c, "Ocorreu algum erro ao tentar buscar templates")
		return
	}
	c.JSON(http.StatusOK, gin.H{"template": tpl})
}

// Update applies a partial merge; new files replace the previous remote
// assets, deleting the old object before uploading the new one.
func (h *TemplateHandler) Update(c *gin.Context) {
	logger := h.loggerFromContext(c)

	id := c.Param("id")
	if id == "" {
		BadRequest(c, "É necessário o parametro ID")
		return
	}

	fields := bson.M{}
	if nome := c.PostForm("nome"); nome != "" {
		fields["nome"] = nome
	}
	for _, field := range templateColorFields {
		if value := c.PostForm(field); value != "" {
			fields[field] = value
		}
	}
	if value := c.PostForm("isActive"); value != "" {
		if isActive, err := strconv.ParseBool(value); err == nil {
			fields["isActive"] = isActive
		}
	}

	backgroundFile, bgErr := formFile(c, backgroundFileField)
	logoFile, logoErr := formFile(c, logoFileField)
	if bgErr != nil || logoErr != nil {
		Internal(c, "Ocorreu algum erro ao tentar atualizar template")
		return
	}

	if len(fields) == 0 && backgroundFile == nil && logoFile == nil {
		BadRequest(c, "É necessário ao menos um campo")
		return
	}

	current, err := h.templates.FindByID(c.Request.Context(), id)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		logger.Error("update lookup failed", slog.Any("error", err))
		Internal(c, "Ocorreu algum erro ao tentar atualizar template")
		return
	}

	if backgroundFile != nil {
		if current != nil && current.BackgroundID != "" {
			if err := h.storage.Delete(c.Request.Context(), current.BackgroundID); err != nil {
				logger.Error("delete old background failed", slog.Any("error", err))
				Internal(c, "Ocorreu algum erro ao tentar atualizar template")
				return
			}
		}
		uploaded, err := h.uploadFile(c, backgroundFile, backgroundFileField)
		if err != nil {
			h.replyUploadError(c, logger, err, "Ocorreu algum erro ao tentar atualizar template")
			return
		}
		fields["backgroundImg"] = uploaded.URL
		fields["backgroundId"] = uploaded.AssetID
	}

	if logoFile != nil {
		if current != nil && current.LogoContasID != "" {
			if err := h.storage.Delete(c.Request.Context(), current.LogoContasID); err != nil {
				logger.Error("delete old logo failed", slog.Any("error", err))
				Internal(c, "Ocorreu algum erro ao tentar atualizar template")
				return
			}
		}
		uploaded, err := h.uploadFile(c, logoFile, logoFileField)
		if err != nil {
			h.replyUploadError(c, logger, err, "Ocorreu algum erro ao tentar atualizar template")
			return
		}
		fields["logoContas"] = uploaded.URL
		fields["logoContasId"] = uploaded.AssetID
	}

	if _, err := h.templates.Update(c.Request.Context(), id, fields); err != nil {
		logger.Error("update template failed", slog.Any("error", err))
		Internal(c, "Ocorreu algum erro ao tentar atualizar template")
		return
	}
	Message(c, http.StatusOK, "Template atualizado com sucesso!")
}

// Delete removes a template, deleting its remote assets first. The two
// deletions and the record removal are sequenced, not atomic.
func (h *TemplateHandler) Delete(c *gin.Context) {
	logger := h.loggerFromContext(c)

	id := c.Param("id")
	if id == "" {
		BadRequest(c, "É necessário o parametro ID")
		return
	}

	current, err := h.templates.FindByID(c.Request.Context(), id)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		logger.Error("delete lookup failed", slog.Any("error", err))
		Internal(c, "Ocorreu algum erro ao tentar deletar o template")
		return
	}

	if current != nil && current.BackgroundID != "" {
		if err := h.storage.Delete(c.Request.Context(), current.BackgroundID); err != nil {
			logger.Error("delete background asset failed", slog.Any("error", err))
			Internal(c, "Ocorreu algum erro ao tentar deletar o template")
			return
		}
	}
	if current != nil && current.LogoContasID != "" {
		if err := h.storage.Delete(c.Request.Context(), current.LogoContasID); err != nil {
			logger.Error("delete logo asset failed", slog.Any("error", err))
			Internal(c, "Ocorreu algum erro ao tentar deletar o template")
			return
		}
	}

	result, err := h.templates.Delete(c.Request.Context(), id)
	if err != nil {
		logger.Error("delete template failed", slog.Any("error", err))
		Internal(c, "Ocorreu algum erro ao tentar deletar o template")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":         "Template deleteado com sucesso:",
		"templateDeleted": result,
	})
}

// uploadFormFile uploads the named multipart file when present. Returns
// (nil, nil) when the field was not sent.
func (h *TemplateHandler) uploadFormFile(c *gin.Context, field string) (*storage.UploadResult, error) {
	file, err := formFile(c, field)
	if err != nil || file == nil {
		return nil, err
	}
	return h.uploadFile(c, file, field)
}

func (h *TemplateHandler) uploadFile(c *gin.Context, file *multipart.FileHeader, folder string) (*storage.UploadResult, error) {
	if err := h.scanner.scan(file); err != nil {
		return nil, err
	}

	reader, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	contentType := file.Header.Get("Content-Type")
	return h.storage.Upload(c.Request.Context(), folder, file.Filename, reader, file.Size, contentType)
}

func (h *TemplateHandler) replyUploadError(c *gin.Context, logger *slog.Logger, err error, internalMsg string) {
	if errors.Is(err, errInfectedFile) {
		BadRequest(c, "Arquivo malicioso detectado")
		return
	}
	logger.Error("upload asset failed", slog.Any("error", err))
	Internal(c, internalMsg)
}

func (h *TemplateHandler) loggerFromContext(c *gin.Context) *slog.Logger {
	if logger := middleware.LoggerFromContext(c); logger != nil {
		return logger
	}
	if h.logger != nil {
		return h.logger
	}
	return slog.Default()
}

// formFile fetches a multipart file header, mapping "no such field" to nil.
func formFile(c *gin.Context, field string) (*multipart.FileHeader, error) {
	file, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return file, nil
}
