package http

import (
	"time"

	"emotion-assistant/internal/bookmark"
	"emotion-assistant/internal/model"
)

// --- Request DTOs ---

type addReq struct {
	Name string `json:"name" binding:"required,max=255"`
	URL  string `json:"url"  binding:"required,max=2048"`
}

func (r addReq) toInput() bookmark.AddInput {
	return bookmark.AddInput{Name: r.Name, URL: r.URL}
}

type updateReq struct {
	ID   int64  `json:"-"`
	Name string `json:"name" binding:"required,max=255"`
	URL  string `json:"url"  binding:"omitempty,max=2048"`
}

func (r updateReq) toInput() bookmark.UpdateInput {
	return bookmark.UpdateInput{ID: r.ID, Name: r.Name, URL: r.URL}
}

// --- Response DTOs ---

type bookmarkResp struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

func newBookmarkResp(b model.Bookmark) bookmarkResp {
	return bookmarkResp{ID: b.ID, Name: b.Name, URL: b.URL, CreatedAt: b.CreatedAt}
}

func newBookmarkListResp(bs []model.Bookmark) []bookmarkResp {
	out := make([]bookmarkResp, len(bs))
	for i, b := range bs {
		out[i] = newBookmarkResp(b)
	}
	return out
}
