package simulator

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Server expõe o jogo simulado nos mesmos endpoints do provedor real:
// GET /scoreboard e GET /games/{id}/boxscore.
// Cada fetch de box score avança o jogo um passo.
type Server struct {
	Log  *zap.Logger
	Game *Game

	ScoreboardHits prometheus.Counter
	BoxScoreHits   prometheus.Counter
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /scoreboard", s.scoreboard)
	mux.HandleFunc("GET /games/{id}/boxscore", s.boxScore)
	return mux
}

func (s *Server) scoreboard(w http.ResponseWriter, r *http.Request) {
	if s.ScoreboardHits != nil {
		s.ScoreboardHits.Inc()
	}
	writeJSON(w, s.Game.Scoreboard())
}

func (s *Server) boxScore(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id != s.Game.GameID() {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	if s.BoxScoreHits != nil {
		s.BoxScoreHits.Inc()
	}

	// o jogo anda a cada consulta: próximo poll sempre vê novidade
	s.Game.Advance()
	writeJSON(w, s.Game.BoxScore())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
