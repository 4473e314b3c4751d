package chatbot

import (
	"context"
	"fmt"
	"strings"

	"emotion-assistant/internal/model"
	"emotion-assistant/pkg/llmprovider"
	"emotion-assistant/pkg/websearch"
)

// Search looks query up on the web and asks the model to answer from the
// results.
func (s *SearchEngine) Search(ctx context.Context, sessionID, query string) (string, error) {
	results, err := s.searcher.Search(ctx, query, s.limit)
	if err != nil {
		s.l.Errorf(ctx, "%s: session=%s: %v", LogPrefixSearch, sessionID, err)
		return "", fmt.Errorf("%s: %w", LogPrefixSearch, err)
	}

	history := s.history.Get(sessionID)
	system := llmprovider.NewTextMessage(llmprovider.RoleSystem,
		fmt.Sprintf(searchSystemTemplate, s.persona.Username, s.persona.AssistantName))

	messages := []llmprovider.Message{
		llmprovider.NewTextMessage(llmprovider.RoleUser, searchGreetingUser),
		llmprovider.NewTextMessage(llmprovider.RoleAssistant, searchGreetingAssistant),
		llmprovider.NewTextMessage(llmprovider.RoleAssistant, FormatResults(query, results)),
		llmprovider.NewTextMessage(llmprovider.RoleSystem, RealtimeInformation(s.now().In(s.loc))),
	}
	messages = append(messages, toProviderMessages(history.Messages())...)
	messages = append(messages, llmprovider.NewTextMessage(llmprovider.RoleUser, query))

	resp, err := s.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &system,
		Messages:          messages,
		Temperature:       SearchTemperature,
		MaxTokens:         SearchMaxTokens,
	})
	if err != nil {
		s.l.Errorf(ctx, "%s: session=%s: %v", LogPrefixSearch, sessionID, err)
		return "", fmt.Errorf("%s: %w", LogPrefixSearch, err)
	}

	answer := RemoveBlankLines(strings.ReplaceAll(resp.Text(), endOfSequence, ""))
	history.Append(
		model.ChatMessage{Role: model.RoleUser, Content: query},
		model.ChatMessage{Role: model.RoleAssistant, Content: answer},
	)
	return answer, nil
}

// FormatResults renders search hits as the block the model reads.
func FormatResults(query string, results []websearch.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, searchResultsHeader, query)
	for _, r := range results {
		fmt.Fprintf(&b, searchResultEntry, r.Title, r.Description)
	}
	b.WriteString(searchResultsFooter)
	return b.String()
}
