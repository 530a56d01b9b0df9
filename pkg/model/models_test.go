package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUserAvatarURL(t *testing.T) {
	u := &User{ID: 80351110224678912, Discriminator: "1337"}

	require.Equal(t, "https://cdn.discordapp.com/embed/avatars/2.png", u.AvatarURL())

	u.Avatar = "8342729096ea3675442027381ff50dfe"
	require.Equal(t,
		"https://cdn.discordapp.com/avatars/80351110224678912/8342729096ea3675442027381ff50dfe.png",
		u.AvatarURL())

	u.Avatar = "a_8342729096ea3675442027381ff50dfe"
	require.Equal(t,
		"https://cdn.discordapp.com/avatars/80351110224678912/a_8342729096ea3675442027381ff50dfe.gif",
		u.AvatarURL())
}

func TestUserFlagsAndPremium(t *testing.T) {
	u := &User{Flags: FlagHouseBravery | FlagHypeSquadEvents, PremiumType: PremiumNitro}

	require.True(t, u.HasFlag(FlagHouseBravery))
	require.False(t, u.HasFlag(FlagHouseBalance))
	require.True(t, u.HasPremium(PremiumNitro))
	require.False(t, u.HasPremium(PremiumNitroClassic))
}

func TestMentions(t *testing.T) {
	require.Equal(t, "<@80351110224678912>", (&User{ID: 80351110224678912}).Mention())
	require.Equal(t, "<@&41771983423143936>", (&Role{ID: 41771983423143936}).Mention())
	require.Equal(t, "<#290926798999357250>", (&Channel{ID: 290926798999357250}).Mention())
}

func TestMemberMention(t *testing.T) {
	m := &Member{User: &User{ID: 80351110224678912}}
	require.Equal(t, "<@80351110224678912>", m.Mention())

	m.Nick = "cool nick"
	require.Equal(t, "<@!80351110224678912>", m.Mention())
}

func TestEmojiText(t *testing.T) {
	require.Equal(t, "🔥", (&Emoji{Name: "🔥"}).Text())
	require.Equal(t, "<:blob:41771983429993937>",
		(&Emoji{ID: 41771983429993937, Name: "blob"}).Text())
	require.Equal(t, "<a:blob:41771983429993937>",
		(&Emoji{ID: 41771983429993937, Name: "blob", Animated: true}).Text())
}

func TestChannelHelpers(t *testing.T) {
	require.True(t, (&Channel{Type: ChannelGuildVoice}).IsVoice())
	require.False(t, (&Channel{Type: ChannelGuildText}).IsVoice())
	require.True(t, (&Channel{Type: ChannelDM}).IsDM())
	require.True(t, (&Channel{Type: ChannelGroupDM}).IsDM())
}

func TestInviteExpiry(t *testing.T) {
	now := time.Date(2020, 5, 1, 12, 0, 0, 0, time.UTC)

	fresh := &InviteMetadata{
		CreatedAt: now.Add(-time.Hour).Format(time.RFC3339),
		MaxAge:    7200,
	}
	require.False(t, fresh.Expired(now))
	require.Equal(t, 2*time.Hour, fresh.MaxAgeDuration())

	stale := &InviteMetadata{
		CreatedAt: now.Add(-3 * time.Hour).Format(time.RFC3339),
		MaxAge:    7200,
	}
	require.True(t, stale.Expired(now))

	unlimited := &InviteMetadata{
		CreatedAt: now.Add(-240 * time.Hour).Format(time.RFC3339),
	}
	require.False(t, unlimited.Expired(now))

	usedUp := &InviteMetadata{Uses: 5, MaxUses: 5}
	require.True(t, usedUp.Expired(now))

	revoked := &InviteMetadata{Revoked: true}
	require.True(t, revoked.Expired(now))
}

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("2017-07-11T17:27:07.299000+00:00")
	require.NoError(t, err)
	require.Equal(t, time.Date(2017, 7, 11, 17, 27, 7, 299000000, time.UTC), ts.UTC())

	ts, err = ParseTimestamp("2017-07-11T17:27:07Z")
	require.NoError(t, err)
	require.Equal(t, 2017, ts.Year())

	_, err = ParseTimestamp("yesterday")
	require.Error(t, err)
}

func TestMessageIsSystem(t *testing.T) {
	require.False(t, (&Message{Type: MessageDefault}).IsSystem())
	require.True(t, (&Message{Type: MessageGuildMemberJoin}).IsSystem())
}

func TestActivityPartySizes(t *testing.T) {
	p := &ActivityParty{Size: []int{2, 8}}
	require.Equal(t, 2, p.CurrentSize())
	require.Equal(t, 8, p.MaxSize())

	empty := &ActivityParty{}
	require.Zero(t, empty.CurrentSize())
	require.Zero(t, empty.MaxSize())
}
