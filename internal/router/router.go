package router

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// Route applies, first match wins:
//  1. exact greeting phrase
//  2. exact farewell phrase
//  3. news keyword, searched with the canonical news query
//  4. music keyword, searched on youtube
//  5. classify then dispatch
func (r *IntegratedRouter) Route(ctx context.Context, in Input) (Output, error) {
	trimmed := strings.TrimSpace(in.Text)

	switch {
	case slices.Contains(greetingPhrases, trimmed):
		return Output{Reply: ReplyGreeting, Path: PathGreeting}, nil

	case slices.Contains(farewellPhrases, trimmed):
		return Output{Reply: ReplyFarewell, Path: PathFarewell}, nil

	case containsAny(in.Text, newsKeywords):
		return r.fastPath(ctx, in.SessionID, NewsQuery, PathNews)

	case containsAny(in.Text, musicKeywords):
		return r.fastPath(ctx, in.SessionID, in.Text+MusicQuerySuffix, PathMusic)
	}

	directives, err := r.classifier.Classify(ctx, in.SessionID, in.Text)
	if err != nil {
		return Output{}, fmt.Errorf("%s: %w", LogPrefixRoute, err)
	}

	reply, err := r.dispatcher.Dispatch(ctx, in.SessionID, directives)
	if err != nil {
		return Output{}, fmt.Errorf("%s: %w", LogPrefixRoute, err)
	}

	if reply == "" {
		r.l.Infof(ctx, "%s: nothing understood in %q", LogPrefixRoute, in.Text)
	}
	return Output{Reply: reply, Path: PathDispatch}, nil
}

func (r *IntegratedRouter) fastPath(ctx context.Context, sessionID, query string, path Path) (Output, error) {
	reply, err := r.search.Search(ctx, sessionID, query)
	if err != nil {
		return Output{}, fmt.Errorf("%s: %s: %w", LogPrefixRoute, path, err)
	}
	return Output{Reply: reply, Path: path}, nil
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
