package model

import (
	"reflect"
	"sync/atomic"

	"github.com/gocord/gocord/pkg/errorx"
	"github.com/puzpuzpuz/xsync"
	"golang.org/x/exp/slices"
)

// Kind is the logical name of a model, the key under which its
// constructor is registered.
type Kind string

const (
	KindUser               Kind = "USER"
	KindMember             Kind = "MEMBER"
	KindRole               Kind = "ROLE"
	KindGuild              Kind = "GUILD"
	KindChannel            Kind = "CHANNEL"
	KindOverwrite          Kind = "OVERWRITE"
	KindEmoji              Kind = "EMOJI"
	KindInvite             Kind = "INVITE"
	KindInviteMetadata     Kind = "INVITE_METADATA"
	KindWebhook            Kind = "WEBHOOK"
	KindMessage            Kind = "MESSAGE"
	KindAttachment         Kind = "ATTACHMENT"
	KindReaction           Kind = "REACTION"
	KindEmbed              Kind = "EMBED"
	KindEmbedFooter        Kind = "EMBED_FOOTER"
	KindEmbedImage         Kind = "EMBED_IMAGE"
	KindEmbedThumbnail     Kind = "EMBED_THUMBNAIL"
	KindEmbedVideo         Kind = "EMBED_VIDEO"
	KindEmbedProvider      Kind = "EMBED_PROVIDER"
	KindEmbedAuthor        Kind = "EMBED_AUTHOR"
	KindEmbedField         Kind = "EMBED_FIELD"
	KindMessageActivity    Kind = "MESSAGE_ACTIVITY"
	KindMessageApplication Kind = "MESSAGE_APPLICATION"
	KindActivity           Kind = "ACTIVITY"
	KindActivityTimestamps Kind = "ACTIVITY_TIMESTAMPS"
	KindActivityParty      Kind = "ACTIVITY_PARTY"
	KindActivityAssets     Kind = "ACTIVITY_ASSETS"
	KindActivitySecrets    Kind = "ACTIVITY_SECRETS"
	KindPresenceUpdate     Kind = "PRESENCE_UPDATE"
	KindChannelPinsUpdate  Kind = "CHANNEL_PINS_UPDATE"
)

// Factory produces an empty model instance ready to be populated by Build.
type Factory func() any

type entry struct {
	factory  Factory
	contract reflect.Type
}

// Registry maps model kinds to the factory used to construct them. It is
// pre-populated with every built-in kind and freezes on first use: once a
// model has been resolved or built, further overrides are rejected so a
// process cannot end up with mixed model types for the same kind.
type Registry struct {
	entries   *xsync.MapOf[string, entry]
	contracts map[reflect.Type]Kind
	frozen    atomic.Bool
}

func contractOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

type registration struct {
	kind     Kind
	contract reflect.Type
	factory  Factory
}

func builtins() []registration {
	return []registration{
		{KindUser, contractOf[UserModel](), func() any { return &User{} }},
		{KindMember, contractOf[MemberModel](), func() any { return &Member{} }},
		{KindRole, contractOf[RoleModel](), func() any { return &Role{} }},
		{KindGuild, contractOf[GuildModel](), func() any { return &Guild{} }},
		{KindChannel, contractOf[ChannelModel](), func() any { return &Channel{} }},
		{KindOverwrite, contractOf[OverwriteModel](), func() any { return &Overwrite{} }},
		{KindEmoji, contractOf[EmojiModel](), func() any { return &Emoji{} }},
		{KindInvite, contractOf[InviteModel](), func() any { return &Invite{} }},
		{KindInviteMetadata, contractOf[InviteMetadataModel](), func() any { return &InviteMetadata{} }},
		{KindWebhook, contractOf[WebhookModel](), func() any { return &Webhook{} }},
		{KindMessage, contractOf[MessageModel](), func() any { return &Message{} }},
		{KindAttachment, contractOf[AttachmentModel](), func() any { return &Attachment{} }},
		{KindReaction, contractOf[ReactionModel](), func() any { return &Reaction{} }},
		{KindEmbed, contractOf[EmbedModel](), func() any { return &Embed{} }},
		{KindEmbedFooter, contractOf[EmbedFooterModel](), func() any { return &EmbedFooter{} }},
		{KindEmbedImage, contractOf[EmbedImageModel](), func() any { return &EmbedImage{} }},
		{KindEmbedThumbnail, contractOf[EmbedThumbnailModel](), func() any { return &EmbedThumbnail{} }},
		{KindEmbedVideo, contractOf[EmbedVideoModel](), func() any { return &EmbedVideo{} }},
		{KindEmbedProvider, contractOf[EmbedProviderModel](), func() any { return &EmbedProvider{} }},
		{KindEmbedAuthor, contractOf[EmbedAuthorModel](), func() any { return &EmbedAuthor{} }},
		{KindEmbedField, contractOf[EmbedFieldModel](), func() any { return &EmbedField{} }},
		{KindMessageActivity, contractOf[MessageActivityModel](), func() any { return &MessageActivity{} }},
		{KindMessageApplication, contractOf[MessageApplicationModel](), func() any { return &MessageApplication{} }},
		{KindActivity, contractOf[ActivityModel](), func() any { return &Activity{} }},
		{KindActivityTimestamps, contractOf[ActivityTimestampsModel](), func() any { return &ActivityTimestamps{} }},
		{KindActivityParty, contractOf[ActivityPartyModel](), func() any { return &ActivityParty{} }},
		{KindActivityAssets, contractOf[ActivityAssetsModel](), func() any { return &ActivityAssets{} }},
		{KindActivitySecrets, contractOf[ActivitySecretsModel](), func() any { return &ActivitySecrets{} }},
		{KindPresenceUpdate, contractOf[PresenceUpdateModel](), func() any { return &PresenceUpdate{} }},
		{KindChannelPinsUpdate, contractOf[ChannelPinsUpdateModel](), func() any { return &ChannelPinsUpdate{} }},
	}
}

// NewRegistry returns a registry pre-populated with the built-in model of
// every kind.
func NewRegistry() *Registry {
	r := &Registry{
		entries:   xsync.NewMapOf[entry](),
		contracts: make(map[reflect.Type]Kind),
	}

	for _, b := range builtins() {
		r.entries.Store(string(b.kind), entry{factory: b.factory, contract: b.contract})
		r.contracts[b.contract] = b.kind
	}

	return r
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used when none is injected.
func Default() *Registry {
	return defaultRegistry
}

// Register overrides the factory of a kind. The factory product is checked
// against the kind's contract, so a replacement that does not embed or
// reimplement the built-in model is rejected immediately instead of
// failing on a later payload. Registration must happen before the first
// model is constructed.
func (r *Registry) Register(kind Kind, factory Factory) error {
	if r.frozen.Load() {
		return errorx.New(errorx.RegistryFrozen,
			"cannot register %s: models were already constructed with this registry", kind)
	}

	e, ok := r.entries.Load(string(kind))
	if !ok {
		return errorx.New(errorx.UnknownModelKind, "not found model kind %s", kind)
	}

	if factory == nil {
		return errorx.New(errorx.InvalidContract, "nil factory for kind %s", kind)
	}

	product := factory()
	if product == nil || !reflect.TypeOf(product).Implements(e.contract) {
		return errorx.New(errorx.InvalidContract,
			"factory product %T does not satisfy the %s contract %s", product, kind, e.contract)
	}

	r.entries.Store(string(kind), entry{factory: factory, contract: e.contract})
	return nil
}

// Resolve returns the factory currently registered for a kind. Resolving
// freezes the registry.
func (r *Registry) Resolve(kind Kind) (Factory, error) {
	r.frozen.Store(true)

	e, ok := r.entries.Load(string(kind))
	if !ok {
		return nil, errorx.New(errorx.UnknownModelKind, "not found model kind %s", kind)
	}

	return e.factory, nil
}

// Contract returns the capability interface a factory product of the
// given kind must satisfy.
func (r *Registry) Contract(kind Kind) (reflect.Type, error) {
	e, ok := r.entries.Load(string(kind))
	if !ok {
		return nil, errorx.New(errorx.UnknownModelKind, "not found model kind %s", kind)
	}

	return e.contract, nil
}

// Kinds lists every registered kind in lexical order.
func (r *Registry) Kinds() []Kind {
	var kinds []Kind
	r.entries.Range(func(k string, _ entry) bool {
		kinds = append(kinds, Kind(k))
		return true
	})

	slices.Sort(kinds)
	return kinds
}
