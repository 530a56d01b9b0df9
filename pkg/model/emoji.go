package model

import "fmt"

// EmojiModel is the contract a replacement for the EMOJI kind must
// satisfy.
type EmojiModel interface {
	CoreEmoji() *Emoji
}

// Emoji has a zero ID when it is a plain unicode emoji; the name then
// holds the emoji itself.
type Emoji struct {
	Base `mapstructure:",squash"`

	ID            Snowflake   `mapstructure:"id"`
	Name          string      `mapstructure:"name"`
	Roles         []Snowflake `mapstructure:"roles"`
	User          UserModel   `mapstructure:"user"`
	RequireColons bool        `mapstructure:"require_colons"`
	Managed       bool        `mapstructure:"managed"`
	Animated      bool        `mapstructure:"animated"`
}

func (e *Emoji) CoreEmoji() *Emoji {
	return e
}

func (e *Emoji) Required() []string {
	return []string{"name"}
}

// Text is the formatted string Discord renders as the emoji.
func (e *Emoji) Text() string {
	if e.ID == 0 {
		return e.Name
	}

	if e.Animated {
		return fmt.Sprintf("<a:%s:%s>", e.Name, e.ID)
	}

	return fmt.Sprintf("<:%s:%s>", e.Name, e.ID)
}
