package paginator

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// DefaultTimeout: sin clicks durante este tiempo el paginador se desactiva.
const DefaultTimeout = 30 * time.Minute

// Messenger es lo que usamos de *discordgo.Session.
type Messenger interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ Messenger = (*discordgo.Session)(nil)

type Paginator struct {
	s       Messenger
	log     *zap.Logger
	store   *Store
	expiry  *Expiry
	timeout time.Duration
}

func New(s Messenger, log *zap.Logger, timeout time.Duration) *Paginator {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	p := &Paginator{
		s:       s,
		log:     log.Named("paginator"),
		store:   NewStore(),
		timeout: timeout,
	}
	p.expiry = NewExpiry(p.expire)
	return p
}

// Run drena la cola de vencimientos hasta que ctx se cancele.
func (p *Paginator) Run(ctx context.Context) { p.expiry.Run(ctx) }

func (p *Paginator) Active() int { return p.store.Len() }

func (p *Paginator) Get(messageID string) (Session, bool) { return p.store.Get(messageID) }

// Send edita la respuesta (ya diferida) de ic con la primera página. Si hay
// más de una página registra la sesión y arma el vencimiento.
func (p *Paginator) Send(ctx context.Context, ic *discordgo.Interaction, ownerID string, base *discordgo.MessageEmbed, content Content) error {
	if err := content.validate(); err != nil {
		return err
	}
	first := &Session{CurrentPage: 1, Content: content, Base: base}
	embed, comps := Render(first, false)
	embeds := []*discordgo.MessageEmbed{embed}

	msg, err := p.s.InteractionResponseEdit(ic, &discordgo.WebhookEdit{
		Embeds:     &embeds,
		Components: &comps,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("paginator send: %w", err)
	}
	if first.TotalPages() <= 1 {
		return nil
	}

	if _, err := p.store.Create(msg.ID, msg.ChannelID, ownerID, content, base); err != nil {
		return err
	}
	p.expiry.Start(msg.ID, p.timeout)
	p.log.Debug("session created",
		zap.String("message", msg.ID),
		zap.String("owner", ownerID),
		zap.Int("pages", first.TotalPages()))
	return nil
}

// HandleComponent atiende los botones del paginador. false si el custom_id no es nuestro.
func (p *Paginator) HandleComponent(ctx context.Context, ic *discordgo.InteractionCreate) (bool, error) {
	if ic.Type != discordgo.InteractionMessageComponent || ic.Message == nil {
		return false, nil
	}
	token, ok := ParseCustomID(ic.MessageComponentData().CustomID)
	if !ok {
		return false, nil
	}

	// ack siempre, aunque la sesión ya no exista: evita "interaction failed"
	if err := p.s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}, discordgo.WithContext(ctx)); err != nil {
		p.log.Warn("defer update failed", zap.Error(err))
	}

	_, err := p.Navigate(ctx, ic.Message.ID, token)
	return true, err
}

// Close da de baja la sesión sin tocar el mensaje.
func (p *Paginator) Close(messageID string) bool {
	p.expiry.Cancel(messageID)
	return p.store.Remove(messageID)
}

// Shutdown descarta todas las sesiones (no hay persistencia).
func (p *Paginator) Shutdown() {
	for _, id := range p.store.IDs() {
		p.Close(id)
	}
}

func (p *Paginator) edit(ctx context.Context, s *Session, disabled bool) error {
	embed, comps := Render(s, disabled)
	embeds := []*discordgo.MessageEmbed{embed}
	_, err := p.s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    s.ChannelID,
		ID:         s.MessageID,
		Embeds:     &embeds,
		Components: &comps,
	}, discordgo.WithContext(ctx))
	return err
}

// expire lo llama Expiry al vencer. Corre con la sesión bloqueada, así que no
// se pisa con un click; si un click la rearmó mientras tanto, no se borra.
func (p *Paginator) expire(messageID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	removed := p.store.Evict(messageID, func(s *Session) bool {
		if p.expiry.Pending(messageID) {
			return false
		}
		if err := p.edit(ctx, s, true); err != nil {
			// el mensaje pudo haber sido borrado; la sesión se va igual
			p.log.Warn("disable controls failed", zap.String("message", messageID), zap.Error(err))
		}
		return true
	})
	if removed {
		p.log.Debug("session expired", zap.String("message", messageID))
	}
}
