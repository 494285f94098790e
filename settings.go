package tipatask

import (
	"context"

	"github.com/donskikhas/tipatask-sub001/internal/model"
)

// Local-only scalar settings. These keys live beside the collections in the
// local store but are never part of the snapshot document and never sync.
const (
	keyActiveSession = "activeSessionId"
	keyBotToken      = "botToken"
	keyNotifyChat    = "notifyChatId"
	keyFeatureFlags  = "featureFlags"
)

// SettingsAPI exposes the device-local scalar settings.
type SettingsAPI struct {
	app *App
}

func (s SettingsAPI) ActiveSession(ctx context.Context) (string, error) {
	return s.getString(ctx, keyActiveSession)
}

func (s SettingsAPI) SetActiveSession(ctx context.Context, id string) error {
	return s.app.store.SetJSON(ctx, keyActiveSession, id)
}

func (s SettingsAPI) BotToken(ctx context.Context) (string, error) {
	return s.getString(ctx, keyBotToken)
}

func (s SettingsAPI) SetBotToken(ctx context.Context, token string) error {
	return s.app.store.SetJSON(ctx, keyBotToken, token)
}

func (s SettingsAPI) NotifyChat(ctx context.Context) (string, error) {
	return s.getString(ctx, keyNotifyChat)
}

func (s SettingsAPI) SetNotifyChat(ctx context.Context, chatID string) error {
	return s.app.store.SetJSON(ctx, keyNotifyChat, chatID)
}

func (s SettingsAPI) FeatureFlags(ctx context.Context) (model.FeatureFlags, error) {
	var flags model.FeatureFlags
	err := s.app.store.GetJSON(ctx, keyFeatureFlags, "{}", &flags)
	return flags, err
}

func (s SettingsAPI) SetFeatureFlags(ctx context.Context, flags model.FeatureFlags) error {
	return s.app.store.SetJSON(ctx, keyFeatureFlags, flags)
}

func (s SettingsAPI) getString(ctx context.Context, key string) (string, error) {
	var v string
	err := s.app.store.GetJSON(ctx, key, `""`, &v)
	return v, err
}
