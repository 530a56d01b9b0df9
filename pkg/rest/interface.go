package rest

import (
	"context"

	"github.com/gocord/gocord/pkg/model"
)

type IEndpoint interface {
	GetGatewayURL(ctx context.Context) (string, int, error)
	Me(ctx context.Context) (model.UserModel, error)
	GetUser(ctx context.Context, userID model.Snowflake) (model.UserModel, error)
	GetChannel(ctx context.Context, channelID model.Snowflake) (model.ChannelModel, error)
	GetGuild(ctx context.Context, guildID model.Snowflake) (model.GuildModel, error)
	GetInvite(ctx context.Context, code string) (model.InviteModel, error)
	GetChannelInvites(ctx context.Context, channelID model.Snowflake) ([]model.InviteMetadataModel, error)
	GetWebhook(ctx context.Context, webhookID model.Snowflake) (model.WebhookModel, error)
	CreateMessage(ctx context.Context, channelID model.Snowflake, out OutgoingMessage) (model.MessageModel, error)
	ExecuteWebhook(ctx context.Context, webhookID model.Snowflake, token string, out WebhookMessage) error
}
