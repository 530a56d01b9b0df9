package model

// WebhookModel is the contract a replacement for the WEBHOOK kind must
// satisfy.
type WebhookModel interface {
	CoreWebhook() *Webhook
}

// Webhook posts into a channel without a bot user. The user field is
// absent when the webhook was fetched by token.
type Webhook struct {
	Base `mapstructure:",squash"`

	ID        Snowflake `mapstructure:"id"`
	Type      int       `mapstructure:"type"`
	GuildID   Snowflake `mapstructure:"guild_id"`
	ChannelID Snowflake `mapstructure:"channel_id"`
	User      UserModel `mapstructure:"user"`
	Name      string    `mapstructure:"name"`
	Avatar    string    `mapstructure:"avatar"`
	Token     string    `mapstructure:"token"`
}

func (w *Webhook) CoreWebhook() *Webhook {
	return w
}

func (w *Webhook) Required() []string {
	return []string{"id", "type"}
}
