package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/filling-server/internal/config"
	"github.com/vancomm/filling-server/internal/filling"
	"github.com/vancomm/filling-server/internal/middleware"
	"github.com/vancomm/filling-server/internal/repository"
)

type GameHandler struct {
	logger  *slog.Logger
	repo    *repository.Queries
	cookies *config.Cookies
	ws      *config.WebSocket
	rnd     *rand.Rand
}

func NewGameHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	cookies *config.Cookies,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		logger:  logger,
		repo:    repository.New(db),
		cookies: cookies,
		ws:      ws,
		rnd:     rnd,
	}
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dto, err := ParseCreateNewGameDTO(query)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	gameParams := filling.GameParams{Width: dto.Width, Height: dto.Height}
	if err := gameParams.Validate(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	game, err := filling.NewGame(gameParams, g.rnd)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to generate a new game", "error", err)
		return
	}

	params := repository.CreateGameSessionParams{}
	claims, loggedIn := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims)
	if loggedIn {
		g.logger.Debug("creating player session", "claims", claims)
		params.PlayerId = &claims.PlayerId
	} else {
		g.logger.Debug("creating anonymous session")
	}

	session, err := g.repo.CreateGameSession(r.Context(), game, params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create game session", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

func (g GameHandler) fetchSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *filling.GameState, bool) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	session, err := g.repo.FetchGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch session from db", "error", err)
		return nil, nil, false
	}

	game, err := filling.ParseGameStateFromBytes(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("db returned invalid game_session.state", "error", err)
		return nil, nil, false
	}

	return session, game, true
}

func (g GameHandler) persistSession(
	ctx context.Context,
	session *repository.GameSession, game *filling.GameState,
) error {
	b, err := game.Bytes()
	if err != nil {
		return fmt.Errorf("unable to serialize game state: %w", err)
	}

	params := repository.UpdateGameSessionParams{
		Completed: &game.Completed,
		Cheated:   &game.Cheated,
		State:     &b,
	}
	if game.Completed && !session.EndedAt.Valid {
		endedAt := time.Now().UTC()
		params.EndedAt = &endedAt
		session.EndedAt.Time = endedAt
		session.EndedAt.Valid = true
	}

	if _, err := g.repo.UpdateGameSession(
		ctx, session.GameSessionId, params,
	); err != nil {
		return fmt.Errorf("unable to update session in db: %w", err)
	}

	return nil
}

func (g GameHandler) saveSession(
	w http.ResponseWriter, r *http.Request,
	session *repository.GameSession, game *filling.GameState,
) bool {
	if err := g.persistSession(r.Context(), session, game); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to save session", "error", err)
		return false
	}
	return true
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

func (g GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	move := r.URL.Query().Get("move")

	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	if err := game.ApplyMove(move); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	if !g.saveSession(w, r, session, game) {
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

func (g GameHandler) Solve(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	move, err := game.Solution()
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	if err := game.ApplyMove(move); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("solver produced an invalid move", "error", err)
		return
	}

	if !g.saveSession(w, r, session, game) {
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

// Forfeit solves from the clue set alone, discarding any player
// progress, and marks the session cheated.
func (g GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	move, solved := filling.SolutionMove(game.GameParams, game.Clues)
	if !solved {
		w.WriteHeader(http.StatusUnprocessableEntity)
		sendJSONOrLog(w, g.logger, wrapError(errors.New("no solution found")))
		return
	}

	if err := game.ApplyMove(move); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("solver produced an invalid move", "error", err)
		return
	}

	if !g.saveSession(w, r, session, game) {
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

func (g GameHandler) Highscores(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.HighscoreFilter{}

	if query.Has("params") {
		gameParams, err := filling.ParseParams(query.Get("params"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, g.logger, wrapError(err))
			return
		}
		filter.GameParams = &gameParams
	}

	if query.Has("username") {
		username := query.Get("username")
		filter.Username = &username
	}

	highscores, err := g.repo.GetHighscores(r.Context(), filter)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("failed to fetch highscores", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, highscores)
}
