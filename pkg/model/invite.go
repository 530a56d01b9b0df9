package model

import "time"

// InviteModel is the contract a replacement for the INVITE kind must
// satisfy.
type InviteModel interface {
	CoreInvite() *Invite
}

type Invite struct {
	Base `mapstructure:",squash"`

	Code                     string       `mapstructure:"code"`
	Guild                    GuildModel   `mapstructure:"guild"`
	Channel                  ChannelModel `mapstructure:"channel"`
	ApproximatePresenceCount int          `mapstructure:"approximate_presence_count"`
	ApproximateMemberCount   int          `mapstructure:"approximate_member_count"`
}

func (i *Invite) CoreInvite() *Invite {
	return i
}

func (i *Invite) Required() []string {
	return []string{"code"}
}

// InviteMetadataModel is the contract a replacement for the
// INVITE_METADATA kind must satisfy.
type InviteMetadataModel interface {
	CoreInviteMetadata() *InviteMetadata
}

// InviteMetadata extends the invite with usage bookkeeping. A max_uses or
// max_age of zero means unlimited.
type InviteMetadata struct {
	Invite `mapstructure:",squash"`

	Inviter   UserModel `mapstructure:"inviter"`
	Uses      int       `mapstructure:"uses"`
	MaxUses   int       `mapstructure:"max_uses"`
	MaxAge    int       `mapstructure:"max_age"`
	Temporary bool      `mapstructure:"temporary"`
	CreatedAt string    `mapstructure:"created_at"`
	Revoked   bool      `mapstructure:"revoked"`
}

func (i *InviteMetadata) CoreInviteMetadata() *InviteMetadata {
	return i
}

func (i *InviteMetadata) Required() []string {
	return []string{"code", "uses", "max_uses", "max_age", "temporary"}
}

func (i *InviteMetadata) CreatedTime() (time.Time, error) {
	return ParseTimestamp(i.CreatedAt)
}

// MaxAgeDuration is the lifetime of the invite.
func (i *InviteMetadata) MaxAgeDuration() time.Duration {
	return time.Duration(i.MaxAge) * time.Second
}

// Expired reports whether the invite can no longer be used at the given
// point in time.
func (i *InviteMetadata) Expired(now time.Time) bool {
	if i.Revoked {
		return true
	}

	if i.MaxUses > 0 && i.Uses >= i.MaxUses {
		return true
	}

	if i.MaxAge == 0 {
		return false
	}

	createdAt, err := i.CreatedTime()
	if err != nil {
		return false
	}

	return createdAt.Add(i.MaxAgeDuration()).Before(now)
}
