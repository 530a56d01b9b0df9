// Package command implements prefix commands with typed argument
// selectors, e.g. "!kick @someone 10".
package command

import (
	"context"
	"strings"

	"github.com/puzpuzpuz/xsync"

	"github.com/gocord/gocord/pkg/errorx"
	"github.com/gocord/gocord/pkg/model"
	"github.com/gocord/gocord/pkg/xcontext"
)

// Callback runs when a command matches. Args is nil for commands without
// a selector.
type Callback func(ctx context.Context, msg model.MessageModel, args Args)

type Command struct {
	Name string

	pattern  *Pattern
	callback Callback
}

// NewCommand compiles the selector and binds it to a callback. An empty
// selector makes a command that triggers on its bare name.
func NewCommand(name, selector string, callback Callback) (*Command, error) {
	cmd := &Command{Name: name, callback: callback}

	if selector != "" {
		pattern, err := Compile(selector)
		if err != nil {
			return nil, err
		}

		cmd.pattern = pattern
	}

	return cmd, nil
}

// Invoke matches the remaining message text against the command's pattern
// and runs the callback on success. A matching message whose arguments do
// not cast is reported but not treated as a dispatch failure.
func (c *Command) Invoke(ctx context.Context, msg model.MessageModel, text string) {
	if c.pattern == nil {
		if text == "" {
			c.callback(ctx, msg, nil)
		}

		return
	}

	args, ok, err := c.pattern.Parse(text)
	if !ok {
		return
	}

	if err != nil {
		xcontext.Logger(ctx).Debugf("Bad arguments for command %s: %v", c.Name, err)
		return
	}

	c.callback(ctx, msg, args)
}

// Set is the collection of commands a client listens for.
type Set struct {
	prefix   string
	commands *xsync.MapOf[string, *Command]
}

func NewSet(prefix string) *Set {
	return &Set{
		prefix:   prefix,
		commands: xsync.NewMapOf[*Command](),
	}
}

// Register adds a command. Command names are unique within a set.
func (s *Set) Register(cmd *Command) error {
	if _, existed := s.commands.LoadOrStore(cmd.Name, cmd); existed {
		return errorx.New(errorx.ReusedCommandName, "command %s is already registered", cmd.Name)
	}

	return nil
}

// Dispatch routes a message to the command it invokes, reporting whether
// the content named a registered command. Messages from bots and messages
// without the prefix never invoke anything.
func (s *Set) Dispatch(ctx context.Context, msg model.MessageModel) bool {
	core := msg.CoreMessage()
	if core.Author != nil && core.Author.CoreUser().Bot {
		return false
	}

	content, ok := strings.CutPrefix(core.Content, s.prefix)
	if !ok {
		return false
	}

	name, text, _ := strings.Cut(content, " ")
	cmd, ok := s.commands.Load(name)
	if !ok {
		return false
	}

	cmd.Invoke(ctx, msg, text)
	return true
}
