package model

import (
	"fmt"
	"time"
)

// Channel types. Discord sends text and voice channels as the same
// object; check the type field to know which one arrived.
const (
	ChannelGuildText     = 0
	ChannelDM            = 1
	ChannelGuildVoice    = 2
	ChannelGroupDM       = 3
	ChannelGuildCategory = 4
)

// OverwriteModel is the contract a replacement for the OVERWRITE kind
// must satisfy.
type OverwriteModel interface {
	CoreOverwrite() *Overwrite
}

// Overwrite changes a user's or role's permissions for one channel.
type Overwrite struct {
	Base `mapstructure:",squash"`

	ID    Snowflake `mapstructure:"id"`
	Type  string    `mapstructure:"type"`
	Allow int64     `mapstructure:"allow"`
	Deny  int64     `mapstructure:"deny"`
}

func (o *Overwrite) CoreOverwrite() *Overwrite {
	return o
}

func (o *Overwrite) Required() []string {
	return []string{"id", "type"}
}

// ChannelModel is the contract a replacement for the CHANNEL kind must
// satisfy.
type ChannelModel interface {
	CoreChannel() *Channel
}

type Channel struct {
	Base `mapstructure:",squash"`

	ID                   Snowflake        `mapstructure:"id"`
	Type                 int              `mapstructure:"type"`
	GuildID              Snowflake        `mapstructure:"guild_id"`
	Position             int              `mapstructure:"position"`
	PermissionOverwrites []OverwriteModel `mapstructure:"permission_overwrites"`
	Name                 string           `mapstructure:"name"`
	Topic                string           `mapstructure:"topic"`
	NSFW                 bool             `mapstructure:"nsfw"`
	LastMessageID        Snowflake        `mapstructure:"last_message_id"`
	Bitrate              int              `mapstructure:"bitrate"`
	UserLimit            int              `mapstructure:"user_limit"`
	RateLimitPerUser     int              `mapstructure:"rate_limit_per_user"`
	Recipients           []UserModel      `mapstructure:"recipients"`
	Icon                 string           `mapstructure:"icon"`
	OwnerID              Snowflake        `mapstructure:"owner_id"`
	ApplicationID        Snowflake        `mapstructure:"application_id"`
	ParentID             Snowflake        `mapstructure:"parent_id"`
	LastPinTimestamp     string           `mapstructure:"last_pin_timestamp"`
}

func (c *Channel) CoreChannel() *Channel {
	return c
}

func (c *Channel) Required() []string {
	return []string{"id", "type"}
}

func (c *Channel) Mention() string {
	return fmt.Sprintf("<#%s>", c.ID)
}

func (c *Channel) IsVoice() bool {
	return c.Type == ChannelGuildVoice
}

func (c *Channel) IsDM() bool {
	return c.Type == ChannelDM || c.Type == ChannelGroupDM
}

func (c *Channel) LastPinTime() (time.Time, error) {
	return ParseTimestamp(c.LastPinTimestamp)
}
