package events

import "time"

// Evento publicado no tópico "take_posted" após o fanbot aprovar e postar
// uma take na rede social. Consumido pelo takes-feed-worker.
type TakePosted struct {
	TakeID     string    `json:"take_id"`
	GameID     string    `json:"game_id"`
	Text       string    `json:"text"`
	ExternalID string    `json:"external_id"` // id retornado pela rede social
	Events     []string  `json:"events"`      // classificações que motivaram a take ("hot_streak", ...)
	PostedAt   time.Time `json:"posted_at"`
}
