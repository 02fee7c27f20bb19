package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"vipbot/internal/model"
	"vipbot/internal/store"
)

type dispatchKind int

const (
	dispatchIgnore  dispatchKind = iota // authored by the bot itself
	dispatchForward                     // no bare id: command parsing only
	dispatchQueryFlags
	dispatchClearFlag
)

// dispatchAction is what a single incoming message asks for.
type dispatchAction struct {
	Kind     dispatchKind
	MemberID int64
	Flag     model.Flag
}

// forward reports whether the message still goes through command parsing afterwards.
func (a dispatchAction) forward() bool {
	return a.Kind != dispatchIgnore
}

var flagKeywords = map[string]model.Flag{
	"mecanico":   model.Mechanical,
	"mecánico":   model.Mechanical,
	"mechanical": model.Mechanical,
	"estetico":   model.Aesthetic,
	"estético":   model.Aesthetic,
	"aesthetic":  model.Aesthetic,
}

// parseMessage classifies a message without touching the registry.
func parseMessage(text, prefix string, fromSelf bool) dispatchAction {
	if fromSelf {
		return dispatchAction{Kind: dispatchIgnore}
	}
	if prefix == "" || !strings.HasPrefix(text, prefix) {
		return dispatchAction{Kind: dispatchForward}
	}
	tokens := strings.Fields(text[len(prefix):])
	if len(tokens) == 0 || !isDigits(tokens[0]) {
		return dispatchAction{Kind: dispatchForward}
	}
	id, err := strconv.ParseInt(tokens[0], 10, 64)
	if err != nil {
		return dispatchAction{Kind: dispatchForward}
	}

	if len(tokens) > 1 {
		if flag, ok := flagKeywords[strings.ToLower(tokens[1])]; ok {
			return dispatchAction{Kind: dispatchClearFlag, MemberID: id, Flag: flag}
		}
	}
	return dispatchAction{Kind: dispatchQueryFlags, MemberID: id}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isFromSelf(ctx *AppContext, msg *tgbotapi.Message) bool {
	return msg.From != nil && ctx.Bot != nil && ctx.Bot.SelfID != 0 && msg.From.ID == ctx.Bot.SelfID
}

// handleMessage runs the bare-id stage and then hands the message to the command registry.
func handleMessage(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message) {
	if ctx == nil || msg == nil {
		return
	}
	action := parseMessage(msg.Text, ctx.Prefix(), isFromSelf(ctx, msg))

	switch action.Kind {
	case dispatchQueryFlags:
		sendText(bot, msg.Chat.ID, getFlagsText(ctx, context.Background(), action.MemberID))
	case dispatchClearFlag:
		sendText(bot, msg.Chat.ID, clearFlag(ctx, context.Background(), action.MemberID, action.Flag))
	}

	if action.forward() && ctx.Commands != nil {
		ctx.Commands.Execute(ctx, bot, msg)
	}
}

func getFlagsText(ctx *AppContext, rc context.Context, id int64) string {
	m, err := ctx.Store.Get(rc, id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Sprintf(ctx.Tr("member_not_found"), id)
	}
	if err != nil {
		ctx.LogError("Registry operation failed", "op", "get", "id", id, "err", err)
		return ctx.Tr("storage_error")
	}
	return fmt.Sprintf(ctx.Tr("flags_status"), id, m.Discount(model.Mechanical), m.Discount(model.Aesthetic))
}

// clearFlag consumes a discount. Clearing an already used discount still succeeds.
func clearFlag(ctx *AppContext, rc context.Context, id int64, flag model.Flag) string {
	err := ctx.Store.UpdateFlag(rc, id, flag, false, ctx.Now())
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Sprintf(ctx.Tr("member_not_found"), id)
	}
	if err != nil {
		ctx.LogError("Registry operation failed", "op", "update_flag", "id", id, "flag", flag.String(), "err", err)
		return ctx.Tr("storage_error")
	}
	return fmt.Sprintf(ctx.Tr("flag_cleared"), flagName(ctx, flag), id)
}

func flagName(ctx *AppContext, flag model.Flag) string {
	if flag == model.Aesthetic {
		return ctx.Tr("flag_aesthetic")
	}
	return ctx.Tr("flag_mechanical")
}
