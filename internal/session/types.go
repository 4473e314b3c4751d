package session

import "emotion-assistant/internal/model"

const MaxTitleRunes = 30

type CreateInput struct {
	Title string
}

type SaveLogInput struct {
	SessionID string
	Role      model.Speaker
	Message   string
	URL       string
	Name      string
	Food      string
}
