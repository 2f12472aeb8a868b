package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/radieske/nba-fanbot-poc/internal/takesfeed"
	"github.com/radieske/nba-fanbot-poc/internal/takesservice/repo"
)

// API serve o histórico de snapshots e takes, com a última take por jogo
// vindo do cache Redis alimentado pelo takes-feed-worker
type API struct {
	ReadRepo *repo.ReadRepo
	Cache    *takesfeed.RedisCache
	Now      func() time.Time
}

func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/v1/games", a.listGames)
	r.Get("/v1/games/{id}/snapshots", a.listSnapshots)
	r.Get("/v1/games/{id}/takes", a.listTakes)
	r.Get("/v1/games/{id}/takes/latest", a.latestTake)
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// listGames lista os jogos com snapshots nas últimas 24h
func (a *API) listGames(w http.ResponseWriter, r *http.Request) {
	since := a.Now().Add(-24 * time.Hour)
	games, err := a.ReadRepo.ListGames(r.Context(), since)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, games)
}

func (a *API) listSnapshots(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	snaps, err := a.ReadRepo.ListSnapshots(r.Context(), id, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, snaps)
}

func (a *API) listTakes(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	takes, err := a.ReadRepo.ListTakes(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, takes)
}

// latestTake responde do cache Redis; 404 quando o jogo ainda não tem take
func (a *API) latestTake(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	take, ok, err := a.Cache.GetLatest(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	writeJSON(w, http.StatusOK, take)
}
