package main

import (
	"context"
	"log/slog"
	"time"

	"vipbot/internal/model"
)

// MemberStore is the registry persistence used by handlers and the reset task.
type MemberStore interface {
	Exists(ctx context.Context, id int64) (bool, error)
	Insert(ctx context.Context, id int64, tier model.Tier, joinedAt, modifiedAt time.Time) error
	UpdateTier(ctx context.Context, id int64, tier model.Tier, modifiedAt time.Time) error
	UpdateFlag(ctx context.Context, id int64, flag model.Flag, value bool, modifiedAt time.Time) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (model.Member, error)
	ListAll(ctx context.Context) ([]model.Member, error)
	Count(ctx context.Context) (int64, error)
	ResetAllFlags(ctx context.Context) (int64, error)
}

// AppContext holds the application dependencies and state.
type AppContext struct {
	Config   *Config
	Store    MemberStore
	Bot      *BotContext
	Commands *CommandRegistry
	Clock    func() time.Time
}

// BotContext holds bot identity, set once the transport is connected.
type BotContext struct {
	StartTime time.Time
	SelfID    int64
	UserName  string
}

// InitApp initializes the application context
func InitApp(cfg *Config, store MemberStore) *AppContext {
	return &AppContext{
		Config:   cfg,
		Store:    store,
		Bot:      &BotContext{StartTime: time.Now()},
		Commands: SetupCommandRegistry(),
		Clock:    time.Now,
	}
}

// Now returns the current time in the configured location, truncated to seconds.
func (ctx *AppContext) Now() time.Time {
	now := time.Now
	if ctx.Clock != nil {
		now = ctx.Clock
	}
	return now().In(ctx.Location()).Truncate(time.Second)
}

func (ctx *AppContext) Location() *time.Location {
	if ctx.Config != nil && ctx.Config.Timezone.Location != nil {
		return ctx.Config.Timezone.Location
	}
	return time.Local
}

func (ctx *AppContext) Prefix() string {
	if ctx.Config == nil || ctx.Config.CommandPrefix == "" {
		return "!"
	}
	return ctx.Config.CommandPrefix
}

func (ctx *AppContext) LogError(msg string, args ...any) {
	slog.Error(msg, args...)
}

// Tr translates a key using the configured language
func (ctx *AppContext) Tr(key string) string {
	lang := "es"
	if ctx.Config != nil && ctx.Config.Language != "" {
		lang = ctx.Config.Language
	}
	return tr(lang, key)
}
