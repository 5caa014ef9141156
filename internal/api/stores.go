package api

import (
	"context"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"assinatura/internal/database"
	"assinatura/internal/storage"
)

// UserStore is the repository surface the user handlers depend on.
type UserStore interface {
	Create(ctx context.Context, user database.User) error
	FindAll(ctx context.Context) ([]database.User, error)
	FindByName(ctx context.Context, nome string) (*database.User, error)
	FindByEmail(ctx context.Context, email string) (*database.User, error)
	FindByID(ctx context.Context, id string) (*database.User, error)
	Update(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

// TemplateStore is the repository surface the template handlers depend on.
type TemplateStore interface {
	Create(ctx context.Context, tpl database.Template) (*database.Template, error)
	FindAll(ctx context.Context) ([]database.Template, error)
	FindByID(ctx context.Context, id string) (*database.Template, error)
	Update(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

// AssetStorage is the remote asset host surface the template handlers use.
type AssetStorage interface {
	Upload(ctx context.Context, folder, filename string, reader io.Reader, size int64, contentType string) (*storage.UploadResult, error)
	Delete(ctx context.Context, assetID string) error
}
