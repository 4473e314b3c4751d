package http

import (
	"time"

	"emotion-assistant/internal/conversation"
	"emotion-assistant/pkg/places"
)

// --- Request DTOs ---

// respondReq binds from JSON or from a url-encoded/multipart form.
type respondReq struct {
	Message   string `json:"message" form:"message" binding:"required"`
	SessionID string `json:"session_id" form:"session_id"`
	Location  string `json:"location" form:"location"`
}

func (r respondReq) toInput() conversation.RespondInput {
	return conversation.RespondInput{
		SessionID: r.SessionID,
		Message:   r.Message,
		Location:  r.Location,
	}
}

// --- Response DTOs ---

type restaurantResp struct {
	ID      string  `json:"place_id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Rating  float64 `json:"rating,omitempty"`
	URL     string  `json:"url"`
}

type respondResp struct {
	SessionID  string          `json:"session_id"`
	Message    string          `json:"message"`
	Path       string          `json:"path"`
	Food       string          `json:"food,omitempty"`
	Restaurant *restaurantResp `json:"restaurant,omitempty"`
	Name       string          `json:"name,omitempty"`
	URL        string          `json:"url,omitempty"`
	Location   string          `json:"location"`
	CreatedAt  time.Time       `json:"created_at"`
}

func newRestaurantResp(p *places.Place) *restaurantResp {
	if p == nil {
		return nil
	}
	return &restaurantResp{
		ID:      p.ID,
		Name:    p.Name,
		Address: p.Address,
		Rating:  p.Rating,
		URL:     p.MapURL,
	}
}

func newRespondResp(o conversation.RespondOutput) respondResp {
	resp := respondResp{
		SessionID:  o.SessionID,
		Message:    o.Message,
		Path:       string(o.Path),
		Food:       o.Food,
		Restaurant: newRestaurantResp(o.Restaurant),
		Location:   o.Location,
		CreatedAt:  o.CreatedAt,
	}
	if o.Restaurant != nil {
		resp.Name = o.Restaurant.Name
		resp.URL = o.Restaurant.MapURL
	}
	return resp
}
