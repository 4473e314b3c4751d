package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"emotion-assistant/internal/conversation"
	"emotion-assistant/internal/intent"
	"emotion-assistant/internal/model"
	"emotion-assistant/internal/recommend"
	"emotion-assistant/internal/router"
	"emotion-assistant/internal/session"
	"emotion-assistant/pkg/places"
)

// reply is the bot line before it is persisted.
type reply struct {
	text  string
	path  conversation.Path
	food  string
	place *placeRef
}

type placeRef struct {
	name, url string
}

func (uc *implUseCase) Respond(ctx context.Context, sc model.Scope, input conversation.RespondInput) (conversation.RespondOutput, error) {
	text := strings.TrimSpace(input.Message)
	if text == "" {
		return conversation.RespondOutput{}, conversation.ErrEmptyMessage
	}
	location := strings.TrimSpace(input.Location)
	if location == "" {
		location = uc.cfg.DefaultLocation
	}

	sessionID, err := uc.ensureSession(ctx, sc, input.SessionID, text)
	if err != nil {
		return conversation.RespondOutput{}, err
	}

	userLog, err := uc.sessionUC.SaveLog(ctx, sc, session.SaveLogInput{
		SessionID: sessionID,
		Role:      model.SpeakerUser,
		Message:   text,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Respond SaveLog user: %v", err)
		return conversation.RespondOutput{}, err
	}

	out := conversation.RespondOutput{
		SessionID: sessionID,
		Location:  location,
		CreatedAt: uc.now().UTC(),
	}

	r, restaurant, err := uc.answer(ctx, sc, sessionID, userLog.ID, text, location)
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", conversation.LogPrefixRespond, err)
		r = reply{text: conversation.ReplyApology, path: conversation.PathApology}
		restaurant = nil
	}

	in := session.SaveLogInput{
		SessionID: sessionID,
		Role:      model.SpeakerBot,
		Message:   r.text,
		Food:      r.food,
	}
	if r.place != nil {
		in.Name = r.place.name
		in.URL = r.place.url
	}
	if _, err := uc.sessionUC.SaveLog(ctx, sc, in); err != nil {
		uc.l.Errorf(ctx, "uc.Respond SaveLog bot: %v", err)
		return conversation.RespondOutput{}, err
	}

	out.Message = r.text
	out.Path = r.path
	out.Food = r.food
	out.Restaurant = restaurant
	return out, nil
}

// ensureSession creates a session titled after the message when sessionID is
// empty, otherwise checks the caller owns it.
func (uc *implUseCase) ensureSession(ctx context.Context, sc model.Scope, sessionID, text string) (string, error) {
	if sessionID == "" {
		s, err := uc.sessionUC.Create(ctx, sc, session.CreateInput{Title: text})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Respond Create: %v", err)
			return "", err
		}
		return s.ID, nil
	}

	if _, err := uc.sessionUC.Detail(ctx, sc, sessionID); err != nil {
		uc.l.Warnf(ctx, "uc.Respond Detail: %v", err)
		return "", err
	}
	return sessionID, nil
}

// answer applies the reply precedence. Errors are collaborator failures.
func (uc *implUseCase) answer(ctx context.Context, sc model.Scope, sessionID string, userLogID int64, text, location string) (reply, *places.Place, error) {
	if intent.IsThanks(text) {
		return reply{text: conversation.ReplyThanks, path: conversation.PathThanks}, nil, nil
	}

	if intent.IsEmotionRelated(text) || intent.IsRecommendRequest(text) {
		return uc.recommend(ctx, sc, sessionID, userLogID, text, location)
	}

	uc.restoreHistory(ctx, sc, sessionID, userLogID)

	out, err := uc.router.Route(ctx, router.Input{SessionID: sessionID, Text: text})
	if err != nil {
		return reply{}, nil, err
	}
	if strings.TrimSpace(out.Reply) != "" {
		return reply{text: out.Reply, path: conversation.PathRouter}, nil, nil
	}

	switch intent.DetectSalutation(text) {
	case intent.SalutationGreeting:
		return reply{text: router.ReplyGreeting, path: conversation.PathSalutation}, nil, nil
	case intent.SalutationFarewell:
		return reply{text: router.ReplyFarewell, path: conversation.PathSalutation}, nil, nil
	}
	return reply{text: conversation.ReplyNotUnderstood, path: conversation.PathUnknown}, nil, nil
}

func (uc *implUseCase) recommend(ctx context.Context, sc model.Scope, sessionID string, userLogID int64, text, location string) (reply, *places.Place, error) {
	recent, err := uc.sessionUC.RecentFoods(ctx, sc, uc.cfg.RecentFoodWindow)
	if err != nil {
		return reply{}, nil, err
	}
	logs, err := uc.sessionUC.Logs(ctx, sc, sessionID)
	if err != nil {
		return reply{}, nil, err
	}

	rec, err := uc.resolver.Recommend(ctx, recommend.EmotionContext{
		Text:        text,
		RecentFoods: recent,
		ChatHistory: historyOf(logs, userLogID),
	})
	if err != nil {
		return reply{}, nil, err
	}

	food, suggestion := rec.Food, rec.Reason
	if food == "" {
		if !intent.IsRecommendRequest(text) {
			return reply{text: conversation.ReplyClarify, path: conversation.PathClarify}, nil, nil
		}
		food = uc.fallbackFood(recent)
		suggestion = fmt.Sprintf(conversation.FallbackSuggestionFormat, food)
	}
	if suggestion == "" {
		suggestion = fmt.Sprintf(conversation.FallbackSuggestionFormat, food)
	}

	r := reply{text: suggestion, path: conversation.PathRecommend, food: food}
	if uc.finder == nil {
		return r, nil, nil
	}

	place, err := uc.finder.FindRestaurant(ctx, food, location)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Respond FindRestaurant: %v", err)
		place = nil
	}
	if place == nil {
		r.text = fmt.Sprintf(conversation.RestaurantNotFoundFormat, suggestion, food)
		return r, nil, nil
	}

	r.text = fmt.Sprintf(conversation.RestaurantFoundFormat, suggestion, place.Name, place.Address, formatRating(place.Rating))
	r.place = &placeRef{name: place.Name, url: place.MapURL}
	return r, place, nil
}

// fallbackFood picks a random fallback, avoiding recent foods when possible.
func (uc *implUseCase) fallbackFood(recent []string) string {
	seen := make(map[string]bool, len(recent))
	for _, f := range recent {
		seen[f] = true
	}

	var candidates []string
	for _, f := range conversation.FallbackFoods {
		if !seen[f] {
			candidates = append(candidates, f)
		}
	}
	if len(candidates) == 0 {
		candidates = conversation.FallbackFoods
	}
	return candidates[uc.pick(len(candidates))]
}

// restoreHistory reloads the router's chat history from the stored logs when
// the session has none in memory. Failures only cost the context.
func (uc *implUseCase) restoreHistory(ctx context.Context, sc model.Scope, sessionID string, userLogID int64) {
	if uc.restorer == nil || uc.restorer.HasHistory(sessionID) {
		return
	}
	logs, err := uc.sessionUC.Logs(ctx, sc, sessionID)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Respond Logs: %v", err)
		return
	}
	uc.restorer.RestoreHistory(sessionID, historyOf(logs, userLogID))
}

// historyOf converts the session logs, leaving out the line just saved for
// the current message.
func historyOf(logs []model.ChatLog, skipID int64) []model.ChatMessage {
	out := make([]model.ChatMessage, 0, len(logs))
	for _, l := range logs {
		if l.ID == skipID {
			continue
		}
		out = append(out, l.ToChatMessage())
	}
	return out
}

func formatRating(r float64) string {
	if r <= 0 {
		return conversation.RatingUnknown
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
