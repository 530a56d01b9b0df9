package model

import (
	"fmt"
	"strconv"
	"strings"
)

// User flags, one bit per group the user belongs to on Discord.
const (
	FlagHypeSquadEvents = 1 << 2
	FlagHouseBravery    = 1 << 6
	FlagHouseBrilliance = 1 << 7
	FlagHouseBalance    = 1 << 8
)

// Premium subscription types.
const (
	PremiumNitroClassic = 1
	PremiumNitro        = 2
)

// UserModel is the contract a replacement for the USER kind must satisfy.
// Embedding User satisfies it automatically.
type UserModel interface {
	CoreUser() *User
}

type User struct {
	Base `mapstructure:",squash"`

	ID            Snowflake   `mapstructure:"id"`
	Username      string      `mapstructure:"username"`
	Discriminator string      `mapstructure:"discriminator"`
	Avatar        string      `mapstructure:"avatar"`
	Bot           bool        `mapstructure:"bot"`
	Member        MemberModel `mapstructure:"member"`
	Flags         int         `mapstructure:"flags"`
	PremiumType   int         `mapstructure:"premium_type"`
}

func (u *User) CoreUser() *User {
	return u
}

func (u *User) Required() []string {
	return []string{"id", "username", "discriminator"}
}

// AvatarURL returns the CDN address of the user avatar, adjusting for
// animated avatars and falling back to a default avatar when unset.
func (u *User) AvatarURL() string {
	if u.Avatar == "" {
		d, _ := strconv.Atoi(u.Discriminator)
		return fmt.Sprintf("https://cdn.discordapp.com/embed/avatars/%d.png", d%5)
	}

	if strings.HasPrefix(u.Avatar, "a_") {
		return fmt.Sprintf("https://cdn.discordapp.com/avatars/%s/%s.gif", u.ID, u.Avatar)
	}

	return fmt.Sprintf("https://cdn.discordapp.com/avatars/%s/%s.png", u.ID, u.Avatar)
}

func (u *User) Mention() string {
	return fmt.Sprintf("<@%s>", u.ID)
}

// Tag is the conjoined username and discriminator, e.g. Test#1234.
func (u *User) Tag() string {
	return u.Username + "#" + u.Discriminator
}

func (u *User) HasFlag(flag int) bool {
	return u.Flags&flag != 0
}

func (u *User) HasPremium(premiumType int) bool {
	return u.PremiumType == premiumType
}
