package model

import "time"

// Activity types.
const (
	ActivityGame      = 0
	ActivityStreaming = 1
	ActivityListening = 2
)

// ActivityTimestampsModel is the contract a replacement for the
// ACTIVITY_TIMESTAMPS kind must satisfy.
type ActivityTimestampsModel interface {
	CoreActivityTimestamps() *ActivityTimestamps
}

// ActivityTimestamps carries unix epoch times in milliseconds.
type ActivityTimestamps struct {
	Base `mapstructure:",squash"`

	Start int64 `mapstructure:"start"`
	End   int64 `mapstructure:"end"`
}

func (t *ActivityTimestamps) CoreActivityTimestamps() *ActivityTimestamps {
	return t
}

func (t *ActivityTimestamps) StartTime() time.Time {
	return time.UnixMilli(t.Start)
}

func (t *ActivityTimestamps) EndTime() time.Time {
	return time.UnixMilli(t.End)
}

// ActivityPartyModel is the contract a replacement for the ACTIVITY_PARTY
// kind must satisfy.
type ActivityPartyModel interface {
	CoreActivityParty() *ActivityParty
}

type ActivityParty struct {
	Base `mapstructure:",squash"`

	ID   string `mapstructure:"id"`
	Size []int  `mapstructure:"size"`
}

func (p *ActivityParty) CoreActivityParty() *ActivityParty {
	return p
}

// CurrentSize returns the party's current member count, zero when the
// payload omitted sizes.
func (p *ActivityParty) CurrentSize() int {
	if len(p.Size) < 1 {
		return 0
	}
	return p.Size[0]
}

// MaxSize returns the party's capacity, zero when the payload omitted
// sizes.
func (p *ActivityParty) MaxSize() int {
	if len(p.Size) < 2 {
		return 0
	}
	return p.Size[1]
}

// ActivityAssetsModel is the contract a replacement for the
// ACTIVITY_ASSETS kind must satisfy.
type ActivityAssetsModel interface {
	CoreActivityAssets() *ActivityAssets
}

type ActivityAssets struct {
	Base `mapstructure:",squash"`

	LargeImage string `mapstructure:"large_image"`
	LargeText  string `mapstructure:"large_text"`
	SmallImage string `mapstructure:"small_image"`
	SmallText  string `mapstructure:"small_text"`
}

func (a *ActivityAssets) CoreActivityAssets() *ActivityAssets {
	return a
}

// ActivitySecretsModel is the contract a replacement for the
// ACTIVITY_SECRETS kind must satisfy.
type ActivitySecretsModel interface {
	CoreActivitySecrets() *ActivitySecrets
}

type ActivitySecrets struct {
	Base `mapstructure:",squash"`

	Join     string `mapstructure:"join"`
	Spectate string `mapstructure:"spectate"`
	Match    string `mapstructure:"match"`
}

func (s *ActivitySecrets) CoreActivitySecrets() *ActivitySecrets {
	return s
}

// ActivityModel is the contract a replacement for the ACTIVITY kind must
// satisfy.
type ActivityModel interface {
	CoreActivity() *Activity
}

type Activity struct {
	Base `mapstructure:",squash"`

	Name          string                  `mapstructure:"name"`
	Type          int                     `mapstructure:"type"`
	URL           string                  `mapstructure:"url"`
	Timestamps    ActivityTimestampsModel `mapstructure:"timestamps"`
	ApplicationID Snowflake               `mapstructure:"application_id"`
	Details       string                  `mapstructure:"details"`
	State         string                  `mapstructure:"state"`
	Party         ActivityPartyModel      `mapstructure:"party"`
	Assets        ActivityAssetsModel     `mapstructure:"assets"`
	Secrets       ActivitySecretsModel    `mapstructure:"secrets"`
	Instance      bool                    `mapstructure:"instance"`
	Flags         int                     `mapstructure:"flags"`
}

func (a *Activity) CoreActivity() *Activity {
	return a
}

func (a *Activity) Required() []string {
	return []string{"name", "type"}
}

func (a *Activity) IsStreaming() bool {
	return a.Type == ActivityStreaming
}

// PresenceUpdateModel is the contract a replacement for the
// PRESENCE_UPDATE kind must satisfy.
type PresenceUpdateModel interface {
	CorePresenceUpdate() *PresenceUpdate
}

type PresenceUpdate struct {
	Base `mapstructure:",squash"`

	User       UserModel       `mapstructure:"user"`
	Roles      []Snowflake     `mapstructure:"roles"`
	Game       ActivityModel   `mapstructure:"game"`
	GuildID    Snowflake       `mapstructure:"guild_id"`
	Status     string          `mapstructure:"status"`
	Activities []ActivityModel `mapstructure:"activities"`
}

func (p *PresenceUpdate) CorePresenceUpdate() *PresenceUpdate {
	return p
}

func (p *PresenceUpdate) Required() []string {
	return []string{"user"}
}

// ChannelPinsUpdateModel is the contract a replacement for the
// CHANNEL_PINS_UPDATE kind must satisfy.
type ChannelPinsUpdateModel interface {
	CoreChannelPinsUpdate() *ChannelPinsUpdate
}

type ChannelPinsUpdate struct {
	Base `mapstructure:",squash"`

	ChannelID        Snowflake `mapstructure:"channel_id"`
	LastPinTimestamp string    `mapstructure:"last_pin_timestamp"`
}

func (p *ChannelPinsUpdate) CoreChannelPinsUpdate() *ChannelPinsUpdate {
	return p
}

func (p *ChannelPinsUpdate) Required() []string {
	return []string{"channel_id"}
}

func (p *ChannelPinsUpdate) LastPinTime() (time.Time, error) {
	return ParseTimestamp(p.LastPinTimestamp)
}
