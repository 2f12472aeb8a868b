package ws

// ClientMsg é a mensagem de controle enviada pelo cliente WebSocket
type ClientMsg struct {
	Type   string `json:"type"` // "subscribe" | "unsubscribe" | "ping"
	GameID string `json:"game_id"`
}
