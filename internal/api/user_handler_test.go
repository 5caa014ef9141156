package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"assinatura/internal/auth"
	"assinatura/internal/database"
)

func performJSON(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return got
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	store := &fakeUserStore{}
	router := newTestRouter(t, store, &fakeTemplateStore{}, &fakeStorage{})

	rec := performJSON(t, router, http.MethodPost, "/api/users/register",
		`{"nome":"Ana","email":"ana@contas.com.br"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := decodeBody(t, rec)["message"]; got != "É necessário preencher todos os campos" {
		t.Fatalf("message = %v", got)
	}
	if len(store.users) != 0 {
		t.Fatalf("user was created despite validation failure")
	}
}

func TestRegisterRejectsNonCorporateDomain(t *testing.T) {
	router := newTestRouter(t, &fakeUserStore{}, &fakeTemplateStore{}, &fakeStorage{})

	rec := performJSON(t, router, http.MethodPost, "/api/users/register",
		`{"nome":"Ana","email":"ana@gmail.com","password":"supersecret"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := decodeBody(t, rec)["message"]; got != "É permitido apenas o email corporativo" {
		t.Fatalf("message = %v", got)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	router := newTestRouter(t, &fakeUserStore{}, &fakeTemplateStore{}, &fakeStorage{})

	rec := performJSON(t, router, http.MethodPost, "/api/users/register",
		`{"nome":"Ana","email":"ana@contas.com.br","password":"curta12"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := decodeBody(t, rec)["message"]; got != "Senha deve ter pelo menos 8 digitos" {
		t.Fatalf("message = %v", got)
	}
}

func TestRegisterCreatesUserWithDefaults(t *testing.T) {
	store := &fakeUserStore{}
	router := newTestRouter(t, store, &fakeTemplateStore{}, &fakeStorage{})

	// exactly the minimum length must pass
	rec := performJSON(t, router, http.MethodPost, "/api/users/register",
		`{"nome":"Ana","email":"ana@contas.com.br","password":"12345678"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if got := decodeBody(t, rec)["message"]; got != "Usuário criado com sucesso" {
		t.Fatalf("message = %v", got)
	}
	if len(store.users) != 1 {
		t.Fatalf("stored users = %d, want 1", len(store.users))
	}
	user := store.users[0]
	if user.UserType != "admin" {
		t.Fatalf("user_type = %q, want default admin", user.UserType)
	}
	if user.HashedPassword == "12345678" || user.HashedPassword == "" {
		t.Fatalf("password stored without hashing: %q", user.HashedPassword)
	}
	if !auth.CheckPasswordHash("12345678", user.HashedPassword) {
		t.Fatalf("stored hash does not verify the original password")
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	router := newTestRouter(t, &fakeUserStore{}, &fakeTemplateStore{}, &fakeStorage{})

	rec := performJSON(t, router, http.MethodPost, "/api/users/login",
		`{"email":"ninguem@contas.com.br","password":"12345678"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got := decodeBody(t, rec)["message"]; got != "Usuário não cadastrado na nossa base" {
		t.Fatalf("message = %v", got)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hashed, err := auth.HashPassword("correta123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	store := &fakeUserStore{users: []database.User{{
		ID:             primitive.NewObjectID(),
		Nome:           "Ana",
		Email:          "ana@contas.com.br",
		HashedPassword: hashed,
		UserType:       "admin",
	}}}
	router := newTestRouter(t, store, &fakeTemplateStore{}, &fakeStorage{})

	rec := performJSON(t, router, http.MethodPost, "/api/users/login",
		`{"email":"ana@contas.com.br","password":"errada123"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if got := decodeBody(t, rec)["message"]; got != "Senha incorreta" {
		t.Fatalf("message = %v", got)
	}
}

func TestLoginReturnsRoleAndToken(t *testing.T) {
	hashed, err := auth.HashPassword("correta123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	store := &fakeUserStore{users: []database.User{{
		ID:             primitive.NewObjectID(),
		Nome:           "Ana",
		Email:          "ana@contas.com.br",
		HashedPassword: hashed,
		UserType:       "editor",
	}}}
	router := newTestRouter(t, store, &fakeTemplateStore{}, &fakeStorage{})

	rec := performJSON(t, router, http.MethodPost, "/api/users/login",
		`{"email":"ana@contas.com.br","password":"correta123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["message"] != "Usuário logado com sucesso!" {
		t.Fatalf("message = %v", body["message"])
	}
	if body["user"] != "editor" {
		t.Fatalf("user = %v, want stored role", body["user"])
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("token missing from login response")
	}
}

func TestListUsersAndFindByName(t *testing.T) {
	store := &fakeUserStore{users: []database.User{
		{ID: primitive.NewObjectID(), Nome: "Ana", Email: "ana@contas.com.br"},
		{ID: primitive.NewObjectID(), Nome: "Bruno", Email: "bruno@contas.com.br"},
	}}
	router := newTestRouter(t, store, &fakeTemplateStore{}, &fakeStorage{})

	rec := performJSON(t, router, http.MethodGet, "/api/users/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rec.Code)
	}
	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("listed %d users, want 2", len(list))
	}

	rec = performJSON(t, router, http.MethodGet, "/api/users/?nome=Bruno", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("find status = %d, want 200", rec.Code)
	}
	if got := decodeBody(t, rec)["nome"]; got != "Bruno" {
		t.Fatalf("nome = %v, want Bruno", got)
	}

	rec = performJSON(t, router, http.MethodGet, "/api/users/?nome=Carla", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing user status = %d, want 404", rec.Code)
	}
	if got := decodeBody(t, rec)["message"]; got != "Usuário não encontrado" {
		t.Fatalf("message = %v", got)
	}
}

func TestUpdateUserFetchesFirst(t *testing.T) {
	store := &fakeUserStore{}
	router := newTestRouter(t, store, &fakeTemplateStore{}, &fakeStorage{})

	rec := performJSON(t, router, http.MethodPut,
		"/api/users/update/"+primitive.NewObjectID().Hex(), `{"nome":"Novo Nome"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if store.updateCalls != 0 {
		t.Fatalf("update was issued for a missing user")
	}
}

func TestUpdateUserRequiresAField(t *testing.T) {
	id := primitive.NewObjectID()
	store := &fakeUserStore{users: []database.User{{ID: id, Nome: "Ana"}}}
	router := newTestRouter(t, store, &fakeTemplateStore{}, &fakeStorage{})

	rec := performJSON(t, router, http.MethodPut, "/api/users/update/"+id.Hex(), `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := decodeBody(t, rec)["message"]; got != "É necessário preencher ao menos um campo" {
		t.Fatalf("message = %v", got)
	}
}

func TestUpdateUserHashesNewPassword(t *testing.T) {
	id := primitive.NewObjectID()
	store := &fakeUserStore{users: []database.User{{ID: id, Nome: "Ana"}}}
	router := newTestRouter(t, store, &fakeTemplateStore{}, &fakeStorage{})

	rec := performJSON(t, router, http.MethodPut, "/api/users/update/"+id.Hex(),
		`{"nome":"Ana Clara","password":"novasenha"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if store.updateCalls != 1 {
		t.Fatalf("update calls = %d, want 1", store.updateCalls)
	}
	if store.lastUpdate["nome"] != "Ana Clara" {
		t.Fatalf("nome field = %v", store.lastUpdate["nome"])
	}
	hashed, _ := store.lastUpdate["hashedPassword"].(string)
	if hashed == "" || hashed == "novasenha" {
		t.Fatalf("password not hashed in update: %q", hashed)
	}
	if !auth.CheckPasswordHash("novasenha", hashed) {
		t.Fatalf("updated hash does not verify the new password")
	}
}

func TestDeleteUser(t *testing.T) {
	store := &fakeUserStore{}
	router := newTestRouter(t, store, &fakeTemplateStore{}, &fakeStorage{})

	rec := performJSON(t, router, http.MethodDelete,
		"/api/users/delete/"+primitive.NewObjectID().Hex(), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if store.deleteCalls != 1 {
		t.Fatalf("delete calls = %d, want 1", store.deleteCalls)
	}
	if _, ok := decodeBody(t, rec)["userDeleted"]; !ok {
		t.Fatalf("response missing userDeleted: %s", rec.Body.String())
	}
}
