package main

import (
	"context"
	"testing"
	"time"

	"vipbot/internal/model"
)

func TestParseMessage(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		fromSelf bool
		want     dispatchAction
	}{
		{"own message", "!42", true, dispatchAction{Kind: dispatchIgnore}},
		{"plain text", "hola", false, dispatchAction{Kind: dispatchForward}},
		{"command", "!lista", false, dispatchAction{Kind: dispatchForward}},
		{"prefix only", "!", false, dispatchAction{Kind: dispatchForward}},
		{"bare id", "!42", false, dispatchAction{Kind: dispatchQueryFlags, MemberID: 42}},
		{"bare id trailing text", "!42 hola", false, dispatchAction{Kind: dispatchQueryFlags, MemberID: 42}},
		{"mechanical", "!42 mecanico", false, dispatchAction{Kind: dispatchClearFlag, MemberID: 42, Flag: model.Mechanical}},
		{"mechanical accented upper", "!42 MECÁNICO", false, dispatchAction{Kind: dispatchClearFlag, MemberID: 42, Flag: model.Mechanical}},
		{"mechanical english", "!7 mechanical", false, dispatchAction{Kind: dispatchClearFlag, MemberID: 7, Flag: model.Mechanical}},
		{"aesthetic", "!42 estetico", false, dispatchAction{Kind: dispatchClearFlag, MemberID: 42, Flag: model.Aesthetic}},
		{"aesthetic accented", "!42 Estético", false, dispatchAction{Kind: dispatchClearFlag, MemberID: 42, Flag: model.Aesthetic}},
		{"negative id", "!-42", false, dispatchAction{Kind: dispatchForward}},
		{"mixed token", "!42abc", false, dispatchAction{Kind: dispatchForward}},
		{"no prefix digits", "42", false, dispatchAction{Kind: dispatchForward}},
		{"overflow", "!99999999999999999999", false, dispatchAction{Kind: dispatchForward}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseMessage(tt.text, "!", tt.fromSelf)
			if got != tt.want {
				t.Fatalf("parseMessage(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseMessageCustomPrefix(t *testing.T) {
	got := parseMessage("$15 estetico", "$", false)
	want := dispatchAction{Kind: dispatchClearFlag, MemberID: 15, Flag: model.Aesthetic}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if got := parseMessage("!15", "$", false); got.Kind != dispatchForward {
		t.Fatalf("other prefix should only be forwarded, got %+v", got)
	}
}

func TestDiscountLifecycle(t *testing.T) {
	app := newTestAppContext(t)
	app.Config.Language = "en"
	bot := &fakeBot{}

	runCommand(t, app, bot, "!ingresar 42 rex")

	steps := []struct{ text, want string }{
		{"!42", "ID 42 - mechanicalDiscount: true, aestheticDiscount: true"},
		{"!42 mecanico", "Mechanical discount used for ID 42."},
		{"!42", "ID 42 - mechanicalDiscount: false, aestheticDiscount: true"},
		{"!42 mecanico", "Mechanical discount used for ID 42."},
		{"!42 estetico", "Aesthetic discount used for ID 42."},
		{"!42", "ID 42 - mechanicalDiscount: false, aestheticDiscount: false"},
	}
	for _, s := range steps {
		if got := runCommand(t, app, bot, s.text); got != s.want {
			t.Fatalf("%q reply = %q, want %q", s.text, got, s.want)
		}
	}

	resetAt := time.Date(2024, 5, 6, 20, 5, 0, 0, time.UTC)
	fired, err := resetFlagsIfDue(app, context.Background(), newFlagResetSchedule(app), resetAt)
	if err != nil || !fired {
		t.Fatalf("reset fired=%v err=%v", fired, err)
	}
	if got := runCommand(t, app, bot, "!42"); got != "ID 42 - mechanicalDiscount: true, aestheticDiscount: true" {
		t.Fatalf("after reset reply = %q", got)
	}

	if got := runCommand(t, app, bot, "!borrar 42"); got != "VIP user with ID 42 deleted" {
		t.Fatalf("borrar reply = %q", got)
	}
	if got := runCommand(t, app, bot, "!42"); got != "No VIP user found with ID 42." {
		t.Fatalf("after delete reply = %q", got)
	}
}

func TestClearFlagUpdatesModifiedAt(t *testing.T) {
	app := newTestAppContext(t)
	bot := &fakeBot{}
	runCommand(t, app, bot, "!ingresar 42 rex")

	later := testNow.Add(30 * time.Minute)
	app.Clock = func() time.Time { return later }
	if got := runCommand(t, app, bot, "!42 estetico"); got != "Descuento estético utilizado para ID 42." {
		t.Fatalf("reply = %q", got)
	}
	m, err := app.Store.Get(context.Background(), 42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if m.AestheticDiscount || !m.MechanicalDiscount {
		t.Fatalf("unexpected flags: %+v", m)
	}
	if !m.ModifiedAt.Equal(later) {
		t.Fatalf("modifiedAt = %v, want %v", m.ModifiedAt, later)
	}
}

func TestBareIDUnknownMember(t *testing.T) {
	app := newTestAppContext(t)
	bot := &fakeBot{}

	if got := runCommand(t, app, bot, "!5"); got != "No se encontró usuario VIP con ID 5." {
		t.Fatalf("query reply = %q", got)
	}
	if got := runCommand(t, app, bot, "!5 mecanico"); got != "No se encontró usuario VIP con ID 5." {
		t.Fatalf("clear reply = %q", got)
	}
	if n, _ := app.Store.Count(context.Background()); n != 0 {
		t.Fatalf("bare id created %d rows", n)
	}
}

func TestBareIDSendsSingleReply(t *testing.T) {
	app := newTestAppContext(t)
	bot := &fakeBot{}
	runCommand(t, app, bot, "!ingresar 42 rex")
	before := len(bot.sent)

	handleMessage(app, bot, newTextMessage("!42"))
	if got := len(bot.sent) - before; got != 1 {
		t.Fatalf("expected one reply for a bare id, got %d", got)
	}
}

func TestOwnMessagesAreIgnored(t *testing.T) {
	app := newTestAppContext(t)
	bot := &fakeBot{}
	runCommand(t, app, bot, "!ingresar 42 rex")
	before := len(bot.sent)

	for _, text := range []string{"!42", "!42 mecanico", "!lista", "!ingresar 43 ems"} {
		msg := newTextMessage(text)
		msg.From.ID = app.Bot.SelfID
		handleMessage(app, bot, msg)
	}
	if len(bot.sent) != before {
		t.Fatalf("bot answered its own messages: %q", bot.texts()[before:])
	}
	m, _ := app.Store.Get(context.Background(), 42)
	if !m.MechanicalDiscount {
		t.Fatalf("own message consumed a discount")
	}
	if ok, _ := app.Store.Exists(context.Background(), 43); ok {
		t.Fatalf("own message ran a command")
	}
}

func TestUnknownCommandIsSilent(t *testing.T) {
	app := newTestAppContext(t)
	bot := &fakeBot{}
	handleMessage(app, bot, newTextMessage("!desconocido 1 2"))
	handleMessage(app, bot, newTextMessage("hola a todos"))
	if len(bot.sent) != 0 {
		t.Fatalf("expected no replies, got %q", bot.texts())
	}
}
