// Package rest calls the Discord HTTP API and turns responses into
// catalog models through the registry.
package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/fatih/structs"
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync"

	"github.com/gocord/gocord/config"
	"github.com/gocord/gocord/pkg/api"
	"github.com/gocord/gocord/pkg/errorx"
	"github.com/gocord/gocord/pkg/model"
)

const userAgent = "DiscordBot (https://github.com/gocord/gocord, 1.0)"

const (
	createMessageResource  = "create_message"
	channelInvitesResource = "channel_invites"
	executeWebhookResource = "execute_webhook"
)

type Endpoint struct {
	BotToken string

	apiURL            string
	apiGenerator      api.Generator
	registry          *model.Registry
	rateLimitResource *xsync.MapOf[string, *xsync.MapOf[string, time.Time]]
}

func New(cfg config.ApiConfigs, botToken string, registry *model.Registry) *Endpoint {
	if registry == nil {
		registry = model.Default()
	}

	return &Endpoint{
		BotToken:          botToken,
		apiURL:            cfg.URL,
		apiGenerator:      api.NewGenerator(),
		registry:          registry,
		rateLimitResource: xsync.NewMapOf[*xsync.MapOf[string, time.Time]](),
	}
}

// GetGatewayURL asks Discord where the gateway currently lives. The bot
// variant also reports how many shards Discord recommends.
func (e *Endpoint) GetGatewayURL(ctx context.Context) (string, int, error) {
	resp, err := e.apiGenerator.New(e.apiURL, "/gateway/bot").
		Header("User-Agent", userAgent).
		GET(ctx, api.BotAuth(e.BotToken))
	if err != nil {
		return "", 0, err
	}

	body, ok := resp.Body.(api.JSON)
	if !ok {
		return "", 0, errorx.New(errorx.BadResponse, "invalid gateway response")
	}

	url, err := body.GetString("url")
	if err != nil {
		return "", 0, err
	}

	shards, err := body.GetInt("shards")
	if err != nil {
		shards = 1
	}

	return url, shards, nil
}

func (e *Endpoint) GetUser(ctx context.Context, userID model.Snowflake) (model.UserModel, error) {
	body, err := e.getJSON(ctx, "/users/%s", userID)
	if err != nil {
		return nil, err
	}

	return model.BuildAs[model.UserModel](e.registry, model.KindUser, body)
}

// Me fetches the user the token belongs to.
func (e *Endpoint) Me(ctx context.Context) (model.UserModel, error) {
	body, err := e.getJSON(ctx, "/users/@me")
	if err != nil {
		return nil, err
	}

	return model.BuildAs[model.UserModel](e.registry, model.KindUser, body)
}

func (e *Endpoint) GetChannel(ctx context.Context, channelID model.Snowflake) (model.ChannelModel, error) {
	body, err := e.getJSON(ctx, "/channels/%s", channelID)
	if err != nil {
		return nil, err
	}

	return model.BuildAs[model.ChannelModel](e.registry, model.KindChannel, body)
}

func (e *Endpoint) GetGuild(ctx context.Context, guildID model.Snowflake) (model.GuildModel, error) {
	body, err := e.getJSON(ctx, "/guilds/%s", guildID)
	if err != nil {
		return nil, err
	}

	return model.BuildAs[model.GuildModel](e.registry, model.KindGuild, body)
}

// GetInvite resolves a single invite code. Counts are approximate, Discord
// refreshes them lazily.
func (e *Endpoint) GetInvite(ctx context.Context, code string) (model.InviteModel, error) {
	resp, err := e.apiGenerator.New(e.apiURL, "/invites/%s", code).
		Header("User-Agent", userAgent).
		Query(api.Parameter{"with_counts": "true"}).
		GET(ctx, api.BotAuth(e.BotToken))
	if err != nil {
		return nil, err
	}

	body, ok := resp.Body.(api.JSON)
	if !ok {
		return nil, errorx.New(errorx.BadResponse, "invalid invite response")
	}

	if resp.Code == http.StatusNotFound {
		return nil, errorx.New(errorx.NotFound, "unknown invite %s", code)
	}

	return model.BuildAs[model.InviteModel](e.registry, model.KindInvite, body)
}

// GetChannelInvites lists the invites of a channel with their usage
// metadata.
func (e *Endpoint) GetChannelInvites(ctx context.Context, channelID model.Snowflake) ([]model.InviteMetadataModel, error) {
	if err := e.checkLimitingResource(channelInvitesResource, channelID.String()); err != nil {
		return nil, err
	}

	resp, err := e.apiGenerator.New(e.apiURL, "/channels/%s/invites", channelID).
		Header("User-Agent", userAgent).
		GET(ctx, api.BotAuth(e.BotToken))
	if err != nil {
		return nil, err
	}

	if err := e.checkTooManyRequest(resp, channelInvitesResource, channelID.String()); err != nil {
		return nil, err
	}

	array, ok := resp.Body.(api.Array)
	if !ok {
		return nil, errorx.New(errorx.BadResponse, "invalid invite list response")
	}

	var invites []model.InviteMetadataModel
	for _, obj := range array {
		invite, err := model.BuildAs[model.InviteMetadataModel](e.registry, model.KindInviteMetadata, obj)
		if err != nil {
			return nil, err
		}

		invites = append(invites, invite)
	}

	return invites, nil
}

func (e *Endpoint) GetWebhook(ctx context.Context, webhookID model.Snowflake) (model.WebhookModel, error) {
	body, err := e.getJSON(ctx, "/webhooks/%s", webhookID)
	if err != nil {
		return nil, err
	}

	return model.BuildAs[model.WebhookModel](e.registry, model.KindWebhook, body)
}

// OutgoingMessage is the body of CreateMessage. A nonce is generated when
// none is set, so resends of the same message can be deduplicated.
type OutgoingMessage struct {
	Content string `structs:"content"`
	Nonce   string `structs:"nonce"`
	TTS     bool   `structs:"tts"`
}

func (e *Endpoint) CreateMessage(ctx context.Context, channelID model.Snowflake, out OutgoingMessage) (model.MessageModel, error) {
	if err := e.checkLimitingResource(createMessageResource, channelID.String()); err != nil {
		return nil, err
	}

	if out.Nonce == "" {
		out.Nonce = uuid.NewString()
	}

	resp, err := e.apiGenerator.New(e.apiURL, "/channels/%s/messages", channelID).
		Header("User-Agent", userAgent).
		Body(api.JSON(structs.Map(out))).
		POST(ctx, api.BotAuth(e.BotToken))
	if err != nil {
		return nil, err
	}

	if err := e.checkTooManyRequest(resp, createMessageResource, channelID.String()); err != nil {
		return nil, err
	}

	body, ok := resp.Body.(api.JSON)
	if !ok {
		return nil, errorx.New(errorx.BadResponse, "invalid message response")
	}

	return model.BuildAs[model.MessageModel](e.registry, model.KindMessage, body)
}

// WebhookMessage is the body of ExecuteWebhook.
type WebhookMessage struct {
	Content   string `structs:"content"`
	Username  string `structs:"username,omitempty"`
	AvatarURL string `structs:"avatar_url,omitempty"`
	TTS       bool   `structs:"tts"`
}

// ExecuteWebhook posts a message through a webhook, authenticated by the
// webhook token instead of the bot token.
func (e *Endpoint) ExecuteWebhook(ctx context.Context, webhookID model.Snowflake, token string, out WebhookMessage) error {
	if err := e.checkLimitingResource(executeWebhookResource, webhookID.String()); err != nil {
		return err
	}

	resp, err := e.apiGenerator.New(e.apiURL, "/webhooks/%s/%s", webhookID, token).
		Header("User-Agent", userAgent).
		Body(api.JSON(structs.Map(out))).
		POST(ctx)
	if err != nil {
		return err
	}

	if err := e.checkTooManyRequest(resp, executeWebhookResource, webhookID.String()); err != nil {
		return err
	}

	if resp.Code >= http.StatusBadRequest {
		return errorx.New(errorx.BadRequest, "webhook execution failed with status %d", resp.Code)
	}

	return nil
}

func (e *Endpoint) getJSON(ctx context.Context, path string, args ...any) (api.JSON, error) {
	resp, err := e.apiGenerator.New(e.apiURL, path, args...).
		Header("User-Agent", userAgent).
		GET(ctx, api.BotAuth(e.BotToken))
	if err != nil {
		return nil, err
	}

	body, ok := resp.Body.(api.JSON)
	if !ok {
		return nil, errorx.New(errorx.BadResponse, "expected a JSON object from %s", path)
	}

	if resp.Code == http.StatusNotFound {
		return nil, errorx.New(errorx.NotFound, "resource of %s does not exist", path)
	}

	return body, nil
}

func (e *Endpoint) checkLimitingResource(resource, identifier string) error {
	if limit, ok := e.rateLimitResource.Load(resource); ok {
		if resetAt, ok := limit.Load(identifier); ok {
			if resetAt.After(time.Now()) {
				return wrapRateLimit(resetAt.Unix())
			}

			// The rate limit expired, forget it.
			limit.Delete(identifier)
		}
	}

	return nil
}

func (e *Endpoint) checkTooManyRequest(resp *api.Response, resource, identifier string) error {
	if resp.Code == http.StatusTooManyRequests {
		resetAt, err := strconv.Atoi(resp.Header.Get("X-Ratelimit-Reset"))
		if err != nil {
			return err
		}

		resourceLimiter, _ := e.rateLimitResource.LoadOrStore(resource, xsync.NewMapOf[time.Time]())
		resourceLimiter.Store(identifier, time.Unix(int64(resetAt), 0))
		return wrapRateLimit(int64(resetAt))
	}

	return nil
}
