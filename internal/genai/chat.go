package genai

import (
	"context"
	"strings"

	"github.com/ukydev/wayfarer/internal/models"
)

const chatSystemInstruction = `You are a friendly, well-traveled assistant for a trip-planning site.
You know destinations, seasons, prices and local customs, and you answer briefly and warmly.
Stay on travel topics; if asked about something else, steer the conversation back to travel.`

// Chat sends one conversation turn to the remote collaborator and
// returns the assistant's reply text. History order is preserved; the
// new message is appended as the final user turn.
func (c *Client) Chat(ctx context.Context, history []models.ChatMessage, message string) (string, error) {
	contents := make([]content, 0, len(history)+1)
	for _, msg := range history {
		role := "user"
		if msg.Role == models.RoleAssistant {
			role = "model"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: msg.Content}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: message}}})

	resp, err := c.generate(ctx, c.chatModel, generateRequest{
		Contents:          contents,
		SystemInstruction: &content{Parts: []part{{Text: chatSystemInstruction}}},
	})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.text()), nil
}
