package chatbot

import (
	"context"
	"fmt"

	"emotion-assistant/internal/model"
	"emotion-assistant/pkg/llmprovider"
)

// Chat answers query using the session's history. The exchange is recorded
// only when the model call succeeds.
func (c *Chatbot) Chat(ctx context.Context, sessionID, query string) (string, error) {
	history := c.history.Get(sessionID)
	system := llmprovider.NewTextMessage(llmprovider.RoleSystem,
		fmt.Sprintf(chatSystemTemplate, c.persona.Username, c.persona.AssistantName)+
			"\n"+RealtimeInformation(c.now().In(c.loc)))

	messages := toProviderMessages(history.Messages())
	messages = append(messages, llmprovider.NewTextMessage(llmprovider.RoleUser, query))

	resp, err := c.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &system,
		Messages:          messages,
		Temperature:       ChatTemperature,
		MaxTokens:         ChatMaxTokens,
	})
	if err != nil {
		c.l.Errorf(ctx, "%s: session=%s: %v", LogPrefixChat, sessionID, err)
		return "", fmt.Errorf("%s: %w", LogPrefixChat, err)
	}

	answer := CleanAnswer(resp.Text())
	history.Append(
		model.ChatMessage{Role: model.RoleUser, Content: query},
		model.ChatMessage{Role: model.RoleAssistant, Content: answer},
	)
	return answer, nil
}
