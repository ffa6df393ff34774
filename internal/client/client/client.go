package client

import (
	"context"
)

type Client interface {
	Close() error
	Register(ctx context.Context, login, name, password string) (string, error)
	Login(ctx context.Context, login, password string) (string, error)
	RestorePassword(ctx context.Context, login, newPassword string) (string, error)
	Refresh(ctx context.Context) (string, error)
	GenerateLinkToken(ctx context.Context) (string, error)
	LinkTelegram(ctx context.Context, linkToken string, tgID *int64) (string, error)
	TelegramLogin(ctx context.Context, tgID int64) (string, error)
	TelegramSignOut(ctx context.Context, tgID int64) (bool, error)
	Logout()
	LoggedIn() bool
}
