package paginator

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// mockMessenger registra respuestas y edits en lugar de hablar con Discord.
type mockMessenger struct {
	mu        sync.Mutex
	responds  []*discordgo.InteractionResponse
	sent      []*discordgo.WebhookEdit
	edits     []*discordgo.MessageEdit
	editErr   error
	messageID string
	channelID string
}

func newMockMessenger() *mockMessenger {
	return &mockMessenger{messageID: "msg-1", channelID: "chan-1"}
}

func (m *mockMessenger) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responds = append(m.responds, resp)
	return nil
}

func (m *mockMessenger) InteractionResponseEdit(_ *discordgo.Interaction, newresp *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, newresp)
	return &discordgo.Message{ID: m.messageID, ChannelID: m.channelID}, nil
}

func (m *mockMessenger) ChannelMessageEditComplex(e *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.editErr != nil {
		return nil, m.editErr
	}
	m.edits = append(m.edits, e)
	return &discordgo.Message{ID: e.ID, ChannelID: e.Channel}, nil
}

func (m *mockMessenger) setEditErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.editErr = err
}

func (m *mockMessenger) editCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.edits)
}

func (m *mockMessenger) lastEdit() *discordgo.MessageEdit {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.edits) == 0 {
		return nil
	}
	return m.edits[len(m.edits)-1]
}
