package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"assinatura/internal/api/middleware"
	"assinatura/internal/auth"
	"assinatura/internal/database"
)

// Only addresses under the corporate domain may register or log in.
const corporateEmailDomain = "contas.com.br"

const minPasswordLength = 8

// UserHandler serves registration, login and user CRUD.
type UserHandler struct {
	users  UserStore
	tokens *auth.TokenService
	logger *slog.Logger
}

// NewUserHandler builds the user handler.
func NewUserHandler(users UserStore, tokens *auth.TokenService, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, tokens: tokens, logger: logger}
}

type registerRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
}

// Register creates a new user account. The password is bcrypt-hashed before
// storage; plaintext is never persisted.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "É necessário preencher todos os campos")
		return
	}

	logger := h.loggerFromContext(c)

	if req.Nome == "" || req.Email == "" || req.Password == "" {
		BadRequest(c, "É necessário preencher todos os campos")
		return
	}
	if !hasCorporateDomain(req.Email) {
		BadRequest(c, "É permitido apenas o email corporativo")
		return
	}
	if len(req.Password) < minPasswordLength {
		BadRequest(c, "Senha deve ter pelo menos 8 digitos")
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error("hash password failed", slog.Any("error", err))
		Internal(c, "Ocorreu algum erro ao criar usuário")
		return
	}

	userType := req.UserType
	if userType == "" {
		userType = "admin"
	}

	user := database.User{
		Nome:           req.Nome,
		Email:          req.Email,
		HashedPassword: hashed,
		UserType:       userType,
	}
	if err := h.users.Create(c.Request.Context(), user); err != nil {
		logger.Error("create user failed", slog.Any("error", err))
		Internal(c, "Ocorreu algum erro ao criar usuário")
		return
	}

	Message(c, http.StatusCreated, "Usuário criado com sucesso")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks the credentials and returns the stored role plus a session
// token.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "é necessário enviar todos os campos")
		return
	}

	logger := h.loggerFromContext(c)

	if req.Email == "" || req.Password == "" {
		BadRequest(c, "é necessário enviar todos os campos")
		return
	}
	if !hasCorporateDomain(req.Email) {
		BadRequest(c, "É permitido apenas o email corporativo")
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			NotFound(c, "Usuário não cadastrado na nossa base")
			return
		}
		logger.Error("login lookup failed", slog.Any("error", err))
		Internal(c, "Ocorreu algum erro ao realizar o Login")
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.HashedPassword) {
		Forbidden(c, "Senha incorreta")
		return
	}

	token, err := h.tokens.GenerateToken(user.ID.Hex(), user.UserType)
	if err != nil {
		logger.Error("generate token failed", slog.Any("error", err))
		Internal(c, "Ocorreu algum erro ao realizar o Login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Usuário logado com sucesso!",
		"user":    user.UserType,
		"token":   token,
	})
}

// ListOrGetByName returns every user, or a single one when the `nome` query
// parameter is present.
func (h *UserHandler) ListOrGetByName(c *gin.Context) {
	logger := h.loggerFromContext(c)

	nome := c.Query("nome")
	if nome == "" {
		users, err := h.users.FindAll(c.Request.Context())
		if err != nil {
			logger.Error("list users failed", slog.Any("error", err))
			Internal(c, "Ocorreu algum erro ao buscar usuário(s)")
			return
		}
		c.JSON(http.StatusOK, users)
		return
	}

	user, err := h.users.FindByName(c.Request.Context(), nome)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			NotFound(c, "Usuário não encontrado")
			return
		}
		logger.Error("find user by name failed", slog.Any("error", err))
		Internal(c, "Ocorreu algum erro ao buscar usuário(s)")
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateUserRequest struct {
	Nome     string `json:"nome"`
	Password string `json:"password"`
}

// Update applies a partial merge of name and/or password. The target is
// fetched first so a missing user yields 404.
func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "É necessário o id do usuário")
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "É necessário preencher ao menos um campo")
		return
	}
	if req.Nome == "" && req.Password == "" {
		BadRequest(c, "É necessário preencher ao menos um campo")
		return
	}

	logger := h.loggerFromContext(c)

	if _, err := h.users.FindByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			NotFound(c, "Usuário não encontrado")
			return
		}
		logger.Error("update lookup failed", slog.Any("error", err))
		Internal(c, "Ocorreu algum erro ao atualizar Usuário")
		return
	}

	fields := bson.M{}
	if req.Password != "" {
		if len(req.Password) < minPasswordLength {
			BadRequest(c, "Senha deve ter pelo menos 8 digitos")
			return
		}
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			logger.Error("hash password failed", slog.Any("error", err))
			Internal(c, "Ocorreu algum erro ao atualizar Usuário")
			return
		}
		fields["hashedPassword"] = hashed
	}
	if req.Nome != "" {
		fields["nome"] = req.Nome
	}

	result, err := h.users.Update(c.Request.Context(), id, fields)
	if err != nil {
		logger.Error("update user failed", slog.Any("error", err))
		Internal(c, "Ocorreu algum erro ao atualizar Usuário")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": result})
}

// Delete removes a user by id.
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "É necessário passar o id como parametro")
		return
	}

	result, err := h.users.Delete(c.Request.Context(), id)
	if err != nil {
		h.loggerFromContext(c).Error("delete user failed", slog.Any("error", err))
		Internal(c, "Ocorreu algum erro ao deletar Usuário")
		return
	}
	c.JSON(http.StatusOK, gin.H{"userDeleted": result})
}

func (h *UserHandler) loggerFromContext(c *gin.Context) *slog.Logger {
	if logger := middleware.LoggerFromContext(c); logger != nil {
		return logger
	}
	if h.logger != nil {
		return h.logger
	}
	return slog.Default()
}

// hasCorporateDomain splits the address on "@" and checks the domain part.
func hasCorporateDomain(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) < 2 {
		return false
	}
	return parts[1] == corporateEmailDomain
}
