package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"assinatura/internal/auth"
	"assinatura/internal/config"
	"assinatura/internal/database"
	"assinatura/internal/storage"
)

// fakeUserStore keeps users in memory and records update calls.
type fakeUserStore struct {
	users       []database.User
	lastUpdate  bson.M
	updateCalls int
	deleteCalls int
}

func (s *fakeUserStore) Create(_ context.Context, user database.User) error {
	user.ID = primitive.NewObjectID()
	s.users = append(s.users, user)
	return nil
}

func (s *fakeUserStore) FindAll(_ context.Context) ([]database.User, error) {
	return s.users, nil
}

func (s *fakeUserStore) FindByName(_ context.Context, nome string) (*database.User, error) {
	for i := range s.users {
		if s.users[i].Nome == nome {
			return &s.users[i], nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*database.User, error) {
	for i := range s.users {
		if s.users[i].Email == email {
			return &s.users[i], nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *fakeUserStore) FindByID(_ context.Context, id string) (*database.User, error) {
	for i := range s.users {
		if s.users[i].ID.Hex() == id {
			return &s.users[i], nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *fakeUserStore) Update(_ context.Context, _ string, fields bson.M) (*mongo.UpdateResult, error) {
	s.updateCalls++
	s.lastUpdate = fields
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *fakeUserStore) Delete(_ context.Context, _ string) (*mongo.DeleteResult, error) {
	s.deleteCalls++
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

// fakeTemplateStore keeps a single template and appends to the shared event
// log so tests can assert call ordering against the asset store.
type fakeTemplateStore struct {
	template   *database.Template
	lastUpdate bson.M
	events     *[]string
}

func (s *fakeTemplateStore) Create(_ context.Context, tpl database.Template) (*database.Template, error) {
	tpl.ID = primitive.NewObjectID()
	s.template = &tpl
	return &tpl, nil
}

func (s *fakeTemplateStore) FindAll(_ context.Context) ([]database.Template, error) {
	if s.template == nil {
		return []database.Template{}, nil
	}
	return []database.Template{*s.template}, nil
}

func (s *fakeTemplateStore) FindByID(_ context.Context, id string) (*database.Template, error) {
	if s.template != nil && s.template.ID.Hex() == id {
		return s.template, nil
	}
	return nil, database.ErrNotFound
}

func (s *fakeTemplateStore) Update(_ context.Context, _ string, fields bson.M) (*mongo.UpdateResult, error) {
	s.lastUpdate = fields
	s.logEvent("update-record")
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *fakeTemplateStore) Delete(_ context.Context, _ string) (*mongo.DeleteResult, error) {
	s.logEvent("delete-record")
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (s *fakeTemplateStore) logEvent(event string) {
	if s.events != nil {
		*s.events = append(*s.events, event)
	}
}

// fakeStorage records uploads and deletions in the shared event log.
type fakeStorage struct {
	uploads []string
	deleted []string
	events  *[]string
}

func (s *fakeStorage) Upload(_ context.Context, folder, filename string, reader io.Reader, _ int64, _ string) (*storage.UploadResult, error) {
	_, _ = io.ReadAll(reader)
	key := fmt.Sprintf("%s/%s", folder, filename)
	s.uploads = append(s.uploads, key)
	if s.events != nil {
		*s.events = append(*s.events, "upload:"+key)
	}
	return &storage.UploadResult{
		URL:     "https://assets.example/" + key,
		AssetID: key,
	}, nil
}

func (s *fakeStorage) Delete(_ context.Context, assetID string) error {
	s.deleted = append(s.deleted, assetID)
	if s.events != nil {
		*s.events = append(*s.events, "delete-asset:"+assetID)
	}
	return nil
}

func newTestTokenService(t *testing.T) *auth.TokenService {
	t.Helper()
	tokens, err := auth.NewTokenService("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new token service: %v", err)
	}
	return tokens
}

func newTestRouter(t *testing.T, users UserStore, templates TemplateStore, assetStorage AssetStorage) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	cfg := &config.Config{}
	RegisterRoutes(router, users, templates, assetStorage, newTestTokenService(t), cfg, slog.Default())
	return router
}
