package model

import (
	"fmt"
	"time"
)

// RoleModel is the contract a replacement for the ROLE kind must satisfy.
type RoleModel interface {
	CoreRole() *Role
}

type Role struct {
	Base `mapstructure:",squash"`

	ID          Snowflake `mapstructure:"id"`
	Name        string    `mapstructure:"name"`
	Color       int       `mapstructure:"color"`
	Hoist       bool      `mapstructure:"hoist"`
	Position    int       `mapstructure:"position"`
	Permissions int64     `mapstructure:"permissions"`
	Managed     bool      `mapstructure:"managed"`
	Mentionable bool      `mapstructure:"mentionable"`
}

func (r *Role) CoreRole() *Role {
	return r
}

func (r *Role) Required() []string {
	return []string{"id", "name"}
}

func (r *Role) Mention() string {
	return fmt.Sprintf("<@&%s>", r.ID)
}

// MemberModel is the contract a replacement for the MEMBER kind must
// satisfy.
type MemberModel interface {
	CoreMember() *Member
}

// Member is a user in the context of a guild. The user field is absent on
// partial members nested in message mentions.
type Member struct {
	Base `mapstructure:",squash"`

	User     UserModel   `mapstructure:"user"`
	Nick     string      `mapstructure:"nick"`
	Roles    []Snowflake `mapstructure:"roles"`
	JoinedAt string      `mapstructure:"joined_at"`
	Deaf     bool        `mapstructure:"deaf"`
	Mute     bool        `mapstructure:"mute"`
	GuildID  Snowflake   `mapstructure:"guild_id"`
}

func (m *Member) CoreMember() *Member {
	return m
}

func (m *Member) Required() []string {
	return []string{"roles", "joined_at"}
}

func (m *Member) JoinedTime() (time.Time, error) {
	return ParseTimestamp(m.JoinedAt)
}

// Mention mentions the member, taking the nickname into account.
func (m *Member) Mention() string {
	if m.User == nil {
		return ""
	}

	if m.Nick != "" {
		return fmt.Sprintf("<@!%s>", m.User.CoreUser().ID)
	}

	return m.User.CoreUser().Mention()
}

// GuildModel is the contract a replacement for the GUILD kind must
// satisfy.
type GuildModel interface {
	CoreGuild() *Guild
}

type Guild struct {
	Base `mapstructure:",squash"`

	ID                Snowflake `mapstructure:"id"`
	Name              string    `mapstructure:"name"`
	Icon              string    `mapstructure:"icon"`
	Splash            string    `mapstructure:"splash"`
	OwnerID           Snowflake `mapstructure:"owner_id"`
	Region            string    `mapstructure:"region"`
	AfkChannelID      Snowflake `mapstructure:"afk_channel_id"`
	AfkTimeout        int       `mapstructure:"afk_timeout"`
	VerificationLevel int       `mapstructure:"verification_level"`
	MfaLevel          int       `mapstructure:"mfa_level"`
	ApplicationID     Snowflake `mapstructure:"application_id"`
	SystemChannelID   Snowflake `mapstructure:"system_channel_id"`
	JoinedAt          string    `mapstructure:"joined_at"`
	Large             bool      `mapstructure:"large"`
	Unavailable       bool      `mapstructure:"unavailable"`
	MemberCount       int       `mapstructure:"member_count"`

	Features  []string              `mapstructure:"features"`
	Roles     []RoleModel           `mapstructure:"roles"`
	Emojis    []EmojiModel          `mapstructure:"emojis"`
	Members   []MemberModel         `mapstructure:"members"`
	Channels  []ChannelModel        `mapstructure:"channels"`
	Presences []PresenceUpdateModel `mapstructure:"presences"`
}

func (g *Guild) CoreGuild() *Guild {
	return g
}

func (g *Guild) Required() []string {
	return []string{"id", "name"}
}

func (g *Guild) IconURL() string {
	if g.Icon == "" {
		return ""
	}

	return fmt.Sprintf("https://cdn.discordapp.com/icons/%s/%s.png", g.ID, g.Icon)
}
