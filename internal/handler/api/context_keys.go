package api

import (
	"context"

	"github.com/casthive/media-store-go/internal/db"
)

type ctxKey string

const (
	IDKey      ctxKey = "id"
	OwnerIDKey ctxKey = "owner_id"
)

func IDFromContext(ctx context.Context) (db.UUID, bool) {
	id, ok := ctx.Value(IDKey).(db.UUID)
	return id, ok
}

func OwnerIDFromContext(ctx context.Context) (db.UUID, bool) {
	id, ok := ctx.Value(OwnerIDKey).(db.UUID)
	return id, ok
}
