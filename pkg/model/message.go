package model

import "time"

// Message types. Discord sends system notifications, like pins and member
// joins, as messages too; MessageDefault is a normal user message.
const (
	MessageDefault              = 0
	MessageRecipientAdd         = 1
	MessageRecipientRemove      = 2
	MessageCall                 = 3
	MessageChannelNameChange    = 4
	MessageChannelIconChange    = 5
	MessageChannelPinnedMessage = 6
	MessageGuildMemberJoin      = 7
)

// Message activity types, used by rich-presence invites.
const (
	MessageActivityJoin        = 1
	MessageActivitySpectate    = 2
	MessageActivityListen      = 3
	MessageActivityJoinRequest = 5
)

// MessageActivityModel is the contract a replacement for the
// MESSAGE_ACTIVITY kind must satisfy.
type MessageActivityModel interface {
	CoreMessageActivity() *MessageActivity
}

type MessageActivity struct {
	Base `mapstructure:",squash"`

	Type    int    `mapstructure:"type"`
	PartyID string `mapstructure:"party_id"`
}

func (a *MessageActivity) CoreMessageActivity() *MessageActivity {
	return a
}

func (a *MessageActivity) Required() []string {
	return []string{"type"}
}

// MessageApplicationModel is the contract a replacement for the
// MESSAGE_APPLICATION kind must satisfy.
type MessageApplicationModel interface {
	CoreMessageApplication() *MessageApplication
}

type MessageApplication struct {
	Base `mapstructure:",squash"`

	ID          Snowflake `mapstructure:"id"`
	CoverImage  string    `mapstructure:"cover_image"`
	Description string    `mapstructure:"description"`
	Icon        string    `mapstructure:"icon"`
	Name        string    `mapstructure:"name"`
}

func (a *MessageApplication) CoreMessageApplication() *MessageApplication {
	return a
}

func (a *MessageApplication) Required() []string {
	return []string{"id"}
}

// AttachmentModel is the contract a replacement for the ATTACHMENT kind
// must satisfy.
type AttachmentModel interface {
	CoreAttachment() *Attachment
}

type Attachment struct {
	Base `mapstructure:",squash"`

	ID       Snowflake `mapstructure:"id"`
	Filename string    `mapstructure:"filename"`
	Size     int       `mapstructure:"size"`
	URL      string    `mapstructure:"url"`
	ProxyURL string    `mapstructure:"proxy_url"`
	Height   int       `mapstructure:"height"`
	Width    int       `mapstructure:"width"`
}

func (a *Attachment) CoreAttachment() *Attachment {
	return a
}

func (a *Attachment) Required() []string {
	return []string{"id", "filename", "size", "url"}
}

// EmbedFooterModel is the contract a replacement for the EMBED_FOOTER
// kind must satisfy.
type EmbedFooterModel interface {
	CoreEmbedFooter() *EmbedFooter
}

type EmbedFooter struct {
	Base `mapstructure:",squash"`

	Text         string `mapstructure:"text"`
	IconURL      string `mapstructure:"icon_url"`
	IconProxyURL string `mapstructure:"proxy_icon_url"`
}

func (f *EmbedFooter) CoreEmbedFooter() *EmbedFooter {
	return f
}

func (f *EmbedFooter) Required() []string {
	return []string{"text"}
}

// EmbedImageModel is the contract a replacement for the EMBED_IMAGE kind
// must satisfy.
type EmbedImageModel interface {
	CoreEmbedImage() *EmbedImage
}

type EmbedImage struct {
	Base `mapstructure:",squash"`

	URL      string `mapstructure:"url"`
	ProxyURL string `mapstructure:"proxy_url"`
	Height   int    `mapstructure:"height"`
	Width    int    `mapstructure:"width"`
}

func (i *EmbedImage) CoreEmbedImage() *EmbedImage {
	return i
}

// EmbedThumbnailModel is the contract a replacement for the
// EMBED_THUMBNAIL kind must satisfy.
type EmbedThumbnailModel interface {
	CoreEmbedThumbnail() *EmbedThumbnail
}

type EmbedThumbnail struct {
	Base `mapstructure:",squash"`

	URL      string `mapstructure:"url"`
	ProxyURL string `mapstructure:"proxy_url"`
	Height   int    `mapstructure:"height"`
	Width    int    `mapstructure:"width"`
}

func (t *EmbedThumbnail) CoreEmbedThumbnail() *EmbedThumbnail {
	return t
}

// EmbedVideoModel is the contract a replacement for the EMBED_VIDEO kind
// must satisfy.
type EmbedVideoModel interface {
	CoreEmbedVideo() *EmbedVideo
}

type EmbedVideo struct {
	Base `mapstructure:",squash"`

	URL    string `mapstructure:"url"`
	Height int    `mapstructure:"height"`
	Width  int    `mapstructure:"width"`
}

func (v *EmbedVideo) CoreEmbedVideo() *EmbedVideo {
	return v
}

// EmbedProviderModel is the contract a replacement for the EMBED_PROVIDER
// kind must satisfy.
type EmbedProviderModel interface {
	CoreEmbedProvider() *EmbedProvider
}

type EmbedProvider struct {
	Base `mapstructure:",squash"`

	Name string `mapstructure:"name"`
	URL  string `mapstructure:"url"`
}

func (p *EmbedProvider) CoreEmbedProvider() *EmbedProvider {
	return p
}

// EmbedAuthorModel is the contract a replacement for the EMBED_AUTHOR
// kind must satisfy.
type EmbedAuthorModel interface {
	CoreEmbedAuthor() *EmbedAuthor
}

type EmbedAuthor struct {
	Base `mapstructure:",squash"`

	Name         string `mapstructure:"name"`
	URL          string `mapstructure:"url"`
	IconURL      string `mapstructure:"icon_url"`
	IconProxyURL string `mapstructure:"proxy_icon_url"`
}

func (a *EmbedAuthor) CoreEmbedAuthor() *EmbedAuthor {
	return a
}

// EmbedFieldModel is the contract a replacement for the EMBED_FIELD kind
// must satisfy.
type EmbedFieldModel interface {
	CoreEmbedField() *EmbedField
}

type EmbedField struct {
	Base `mapstructure:",squash"`

	Name   string `mapstructure:"name"`
	Value  string `mapstructure:"value"`
	Inline bool   `mapstructure:"inline"`
}

func (f *EmbedField) CoreEmbedField() *EmbedField {
	return f
}

func (f *EmbedField) Required() []string {
	return []string{"name", "value"}
}

// EmbedModel is the contract a replacement for the EMBED kind must
// satisfy.
type EmbedModel interface {
	CoreEmbed() *Embed
}

type Embed struct {
	Base `mapstructure:",squash"`

	Title       string              `mapstructure:"title"`
	Type        string              `mapstructure:"type"`
	Description string              `mapstructure:"description"`
	URL         string              `mapstructure:"url"`
	Timestamp   string              `mapstructure:"timestamp"`
	Color       int                 `mapstructure:"color"`
	Footer      EmbedFooterModel    `mapstructure:"footer"`
	Image       EmbedImageModel     `mapstructure:"image"`
	Thumbnail   EmbedThumbnailModel `mapstructure:"thumbnail"`
	Video       EmbedVideoModel     `mapstructure:"video"`
	Provider    EmbedProviderModel  `mapstructure:"provider"`
	Author      EmbedAuthorModel    `mapstructure:"author"`
	Fields      []EmbedFieldModel   `mapstructure:"fields"`
}

func (e *Embed) CoreEmbed() *Embed {
	return e
}

func (e *Embed) Time() (time.Time, error) {
	return ParseTimestamp(e.Timestamp)
}

// ReactionModel is the contract a replacement for the REACTION kind must
// satisfy.
type ReactionModel interface {
	CoreReaction() *Reaction
}

type Reaction struct {
	Base `mapstructure:",squash"`

	Count int        `mapstructure:"count"`
	Me    bool       `mapstructure:"me"`
	Emoji EmojiModel `mapstructure:"emoji"`
}

func (r *Reaction) CoreReaction() *Reaction {
	return r
}

func (r *Reaction) Required() []string {
	return []string{"count", "emoji"}
}

// MessageModel is the contract a replacement for the MESSAGE kind must
// satisfy.
type MessageModel interface {
	CoreMessage() *Message
}

type Message struct {
	Base `mapstructure:",squash"`

	ID              Snowflake               `mapstructure:"id"`
	ChannelID       Snowflake               `mapstructure:"channel_id"`
	GuildID         Snowflake               `mapstructure:"guild_id"`
	Author          UserModel               `mapstructure:"author"`
	Member          MemberModel             `mapstructure:"member"`
	Content         string                  `mapstructure:"content"`
	Timestamp       string                  `mapstructure:"timestamp"`
	EditedTimestamp string                  `mapstructure:"edited_timestamp"`
	TTS             bool                    `mapstructure:"tts"`
	MentionEveryone bool                    `mapstructure:"mention_everyone"`
	Mentions        []UserModel             `mapstructure:"mentions"`
	MentionRoles    []Snowflake             `mapstructure:"mention_roles"`
	Attachments     []AttachmentModel       `mapstructure:"attachments"`
	Embeds          []EmbedModel            `mapstructure:"embeds"`
	Reactions       []ReactionModel         `mapstructure:"reactions"`
	Nonce           string                  `mapstructure:"nonce"`
	Pinned          bool                    `mapstructure:"pinned"`
	WebhookID       Snowflake               `mapstructure:"webhook_id"`
	Type            int                     `mapstructure:"type"`
	Activity        MessageActivityModel    `mapstructure:"activity"`
	Application     MessageApplicationModel `mapstructure:"application"`
}

func (m *Message) CoreMessage() *Message {
	return m
}

func (m *Message) Required() []string {
	return []string{"id", "channel_id", "author", "content", "timestamp"}
}

func (m *Message) Time() (time.Time, error) {
	return ParseTimestamp(m.Timestamp)
}

func (m *Message) EditedTime() (time.Time, error) {
	return ParseTimestamp(m.EditedTimestamp)
}

// IsSystem reports whether the message is a Discord notification rather
// than something a user wrote.
func (m *Message) IsSystem() bool {
	return m.Type != MessageDefault
}
