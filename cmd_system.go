package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	"vipbot/internal/format"
)

type StatusCmd struct{}

func (c *StatusCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args []string) {
	sendMarkdown(bot, msg.Chat.ID, getStatusText(ctx))
}
func (c *StatusCmd) Usage(ctx *AppContext) string       { return "estado" }
func (c *StatusCmd) Description(ctx *AppContext) string { return ctx.Tr("desc_estado") }

func getStatusText(ctx *AppContext) string {
	na := ctx.Tr("unavailable")
	var b strings.Builder
	b.WriteString(ctx.Tr("status_title") + "\n\n")

	uptime := na
	if ctx.Bot != nil && !ctx.Bot.StartTime.IsZero() {
		uptime = format.FormatDuration(time.Since(ctx.Bot.StartTime))
	}
	b.WriteString(fmt.Sprintf(ctx.Tr("status_uptime"), uptime) + "\n")

	if n, err := ctx.Store.Count(context.Background()); err == nil {
		b.WriteString(fmt.Sprintf(ctx.Tr("status_members"), n) + "\n")
	} else {
		ctx.LogError("Registry operation failed", "op", "count", "err", err)
	}

	rss := na
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if mi, err := p.MemoryInfo(); err == nil {
			rss = format.FormatRAM(mi.RSS / 1024 / 1024)
		}
	}
	b.WriteString(fmt.Sprintf(ctx.Tr("status_process"), rss) + "\n")

	if v, err := mem.VirtualMemory(); err == nil {
		b.WriteString(fmt.Sprintf(ctx.Tr("status_host_mem"), v.UsedPercent, format.FormatRAM(v.Total/1024/1024)) + "\n")
	}
	if up, err := host.Uptime(); err == nil {
		b.WriteString(fmt.Sprintf(ctx.Tr("status_host_up"), format.FormatUptime(up)) + "\n")
	}

	s := newFlagResetSchedule(ctx)
	b.WriteString(fmt.Sprintf(ctx.Tr("status_next_reset"), weekdayName(ctx, s.Weekday), s.Hour))
	return b.String()
}

func weekdayName(ctx *AppContext, d time.Weekday) string {
	return ctx.Tr("weekday_" + strings.ToLower(d.String()))
}

type HelpCmd struct{}

func (c *HelpCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args []string) {
	sendText(bot, msg.Chat.ID, getHelpText(ctx))
}
func (c *HelpCmd) Usage(ctx *AppContext) string       { return "ayuda" }
func (c *HelpCmd) Description(ctx *AppContext) string { return ctx.Tr("desc_ayuda") }

func getHelpText(ctx *AppContext) string {
	prefix := ctx.Prefix()
	var b strings.Builder
	b.WriteString(ctx.Tr("help_title") + "\n")
	if ctx.Commands != nil {
		for _, name := range ctx.Commands.Names() {
			cmd, _ := ctx.Commands.Lookup(name)
			b.WriteString(fmt.Sprintf("%s%s - %s\n", prefix, cmd.Usage(ctx), cmd.Description(ctx)))
		}
	}
	b.WriteString("\n" + fmt.Sprintf(ctx.Tr("help_bare_id"), prefix, prefix))
	return b.String()
}
