package tipatask

import (
	"context"

	"github.com/donskikhas/tipatask-sub001/internal/model"
)

// ContentAPI exposes the content-plan collection.
type ContentAPI struct {
	app *App
}

func (c ContentAPI) Posts(ctx context.Context) ([]model.ContentPost, error) {
	return getRecords[model.ContentPost](ctx, c.app, "contentPosts")
}

func (c ContentAPI) SetPosts(ctx context.Context, posts []model.ContentPost) error {
	return setRecords(ctx, c.app, "contentPosts", posts)
}
