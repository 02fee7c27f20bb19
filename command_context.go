package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var (
	errMissingArgument = errors.New("missing argument")
	errBadArgument     = errors.New("bad argument")
)

// Command is the interface that all bot commands must implement
type Command interface {
	Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args []string)
	Usage(ctx *AppContext) string
	Description(ctx *AppContext) string
}

// CommandRegistry holds the map of commands
type CommandRegistry struct {
	commands map[string]Command
	order    []string
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, cmd Command) {
	name = strings.ToLower(name)
	if _, exists := r.commands[name]; !exists {
		r.order = append(r.order, name)
	}
	r.commands[name] = cmd
}

// Names returns command names in registration order.
func (r *CommandRegistry) Names() []string {
	return append([]string(nil), r.order...)
}

func (r *CommandRegistry) Lookup(name string) (Command, bool) {
	cmd, ok := r.commands[strings.ToLower(name)]
	return cmd, ok
}

// Execute runs the command named by a prefixed message. Unknown commands are ignored.
func (r *CommandRegistry) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message) bool {
	if msg == nil {
		return false
	}
	name, args, ok := parseCommand(msg.Text, ctx.Prefix())
	if !ok {
		return false
	}
	cmd, found := r.Lookup(name)
	if !found {
		return false
	}
	cmd.Execute(ctx, bot, msg, args)
	return true
}

// parseCommand splits "<prefix><name>[@bot] arg1 arg2" into name and args.
func parseCommand(text, prefix string) (string, []string, bool) {
	if prefix == "" || !strings.HasPrefix(text, prefix) {
		return "", nil, false
	}
	rest := text[len(prefix):]
	if rest == "" || unicode.IsSpace(rune(rest[0])) {
		return "", nil, false
	}
	fields := strings.Fields(rest)
	name := fields[0]
	if at := strings.IndexByte(name, '@'); at > 0 {
		name = name[:at]
	}
	return strings.ToLower(name), fields[1:], true
}

func intArg(args []string, i int) (int64, error) {
	if i >= len(args) {
		return 0, errMissingArgument
	}
	v, err := strconv.ParseInt(args[i], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", errBadArgument, args[i])
	}
	return v, nil
}

func stringArg(args []string, i int) (string, error) {
	if i >= len(args) {
		return "", errMissingArgument
	}
	return args[i], nil
}

// replyUsage answers an argument parsing failure with the command's usage line.
func replyUsage(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, cmd Command) {
	sendText(bot, msg.Chat.ID, fmt.Sprintf(ctx.Tr("bad_arguments"), ctx.Prefix()+cmd.Usage(ctx)))
}
