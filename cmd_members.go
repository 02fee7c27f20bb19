package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"vipbot/internal/format"
	"vipbot/internal/model"
	"vipbot/internal/store"
)

func invalidTierText(ctx *AppContext, raw string) string {
	allowed := make([]string, len(model.Tiers))
	for i, t := range model.Tiers {
		allowed[i] = string(t)
	}
	return fmt.Sprintf(ctx.Tr("invalid_tier"), raw, format.JoinQuoted(allowed, ctx.Tr("tier_conj")))
}

// replyStorageError logs an unexpected store failure and tells the chat something went wrong.
func replyStorageError(ctx *AppContext, bot BotAPI, chatID int64, op string, err error) {
	ctx.LogError("Registry operation failed", "op", op, "err", err)
	sendText(bot, chatID, ctx.Tr("storage_error"))
}

// parseIDAndTier reads the "<id> <tier>" argument pair shared by ingresar and editar.
func parseIDAndTier(args []string) (int64, string, error) {
	id, err := intArg(args, 0)
	if err != nil {
		return 0, "", err
	}
	raw, err := stringArg(args, 1)
	if err != nil {
		return 0, "", err
	}
	return id, raw, nil
}

type RegisterCmd struct{}

func (c *RegisterCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args []string) {
	id, raw, err := parseIDAndTier(args)
	if err != nil {
		replyUsage(ctx, bot, msg, c)
		return
	}
	sendText(bot, msg.Chat.ID, registerMember(ctx, context.Background(), id, raw))
}
func (c *RegisterCmd) Usage(ctx *AppContext) string       { return ctx.Tr("usage_ingresar") }
func (c *RegisterCmd) Description(ctx *AppContext) string { return ctx.Tr("desc_ingresar") }

func registerMember(ctx *AppContext, rc context.Context, id int64, raw string) string {
	tier, err := model.ParseTier(raw)
	if err != nil {
		return invalidTierText(ctx, raw)
	}

	exists, err := ctx.Store.Exists(rc, id)
	if err != nil {
		ctx.LogError("Registry operation failed", "op", "exists", "id", id, "err", err)
		return ctx.Tr("storage_error")
	}
	if exists {
		return fmt.Sprintf(ctx.Tr("member_exists"), id)
	}

	now := ctx.Now()
	if err := ctx.Store.Insert(rc, id, tier, now, now); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return fmt.Sprintf(ctx.Tr("member_exists"), id)
		}
		ctx.LogError("Registry operation failed", "op", "insert", "id", id, "err", err)
		return ctx.Tr("storage_error")
	}
	return fmt.Sprintf(ctx.Tr("member_inserted"), id, tier)
}

type EditTierCmd struct{}

func (c *EditTierCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args []string) {
	id, raw, err := parseIDAndTier(args)
	if err != nil {
		replyUsage(ctx, bot, msg, c)
		return
	}
	tier, err := model.ParseTier(raw)
	if err != nil {
		sendText(bot, msg.Chat.ID, invalidTierText(ctx, raw))
		return
	}

	rc := context.Background()
	if err := ctx.Store.UpdateTier(rc, id, tier, ctx.Now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			sendText(bot, msg.Chat.ID, fmt.Sprintf(ctx.Tr("member_not_found"), id))
			return
		}
		replyStorageError(ctx, bot, msg.Chat.ID, "update_tier", err)
		return
	}
	sendText(bot, msg.Chat.ID, fmt.Sprintf(ctx.Tr("member_updated"), id, tier))
}
func (c *EditTierCmd) Usage(ctx *AppContext) string       { return ctx.Tr("usage_editar") }
func (c *EditTierCmd) Description(ctx *AppContext) string { return ctx.Tr("desc_editar") }

type DeleteCmd struct{}

func (c *DeleteCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args []string) {
	id, err := intArg(args, 0)
	if err != nil {
		replyUsage(ctx, bot, msg, c)
		return
	}

	if err := ctx.Store.Delete(context.Background(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			sendText(bot, msg.Chat.ID, fmt.Sprintf(ctx.Tr("member_not_found"), id))
			return
		}
		replyStorageError(ctx, bot, msg.Chat.ID, "delete", err)
		return
	}
	sendText(bot, msg.Chat.ID, fmt.Sprintf(ctx.Tr("member_deleted"), id))
}
func (c *DeleteCmd) Usage(ctx *AppContext) string       { return ctx.Tr("usage_borrar") }
func (c *DeleteCmd) Description(ctx *AppContext) string { return ctx.Tr("desc_borrar") }

type ListCmd struct{}

func (c *ListCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args []string) {
	members, err := ctx.Store.ListAll(context.Background())
	if err != nil {
		replyStorageError(ctx, bot, msg.Chat.ID, "list", err)
		return
	}
	sendLongText(bot, msg.Chat.ID, getMemberListText(ctx, members))
}
func (c *ListCmd) Usage(ctx *AppContext) string       { return "lista" }
func (c *ListCmd) Description(ctx *AppContext) string { return ctx.Tr("desc_lista") }

func getMemberListText(ctx *AppContext, members []model.Member) string {
	if len(members) == 0 {
		return ctx.Tr("list_empty")
	}
	loc := ctx.Location()
	var b strings.Builder
	b.WriteString(ctx.Tr("list_title"))
	b.WriteString("\n")
	for _, m := range members {
		b.WriteString(fmt.Sprintf(ctx.Tr("list_line"),
			m.ID, m.Tier, m.MechanicalDiscount, m.AestheticDiscount,
			format.FormatTimestamp(m.JoinedAt, loc), format.FormatTimestamp(m.ModifiedAt, loc)))
		b.WriteString("\n")
	}
	return b.String()
}
