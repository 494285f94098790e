package tipatask

import (
	"context"

	"github.com/donskikhas/tipatask-sub001/internal/model"
)

// PeopleAPI exposes the login list and notification preferences. The login
// list is supplied to the core as ordinary data; authenticating against it
// is the view layer's concern.
type PeopleAPI struct {
	app *App
}

func (p PeopleAPI) Users(ctx context.Context) ([]model.User, error) {
	return getRecords[model.User](ctx, p.app, "users")
}

func (p PeopleAPI) SetUsers(ctx context.Context, users []model.User) error {
	return setRecords(ctx, p.app, "users", users)
}

// NotificationPrefs returns the singleton preference object.
func (p PeopleAPI) NotificationPrefs(ctx context.Context) (model.NotificationPrefs, error) {
	return getSingleton[model.NotificationPrefs](ctx, p.app, "notificationPrefs")
}

func (p PeopleAPI) SetNotificationPrefs(ctx context.Context, prefs model.NotificationPrefs) error {
	return setSingleton(ctx, p.app, "notificationPrefs", prefs)
}
