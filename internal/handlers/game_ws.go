package handlers

import (
	"iter"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
)

func iterBySep(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}

// ConnectWS serves an interactive session over a websocket. Each text
// frame carries one or more newline-separated move strings in the same
// encoding MakeAMove accepts; after every frame the session is
// persisted and sent back as JSON.
func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}

	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				g.logger.Warn("abnormal ws break", slog.Any("error", err))
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}
		text := strings.TrimSpace(string(message))
		for _, move := range iterBySep(text, "\n") {
			if err := game.ApplyMove(move); err != nil {
				g.logger.Error("unable to process move", slog.Any("error", err))
				if werr := c.WriteJSON(wrapError(err)); werr != nil {
					g.logger.Error("unable to write json", slog.Any("error", werr))
				}
				return
			}
			if game.Completed {
				break
			}
		}

		if err := g.persistSession(r.Context(), session, game); err != nil {
			g.logger.Error("unable to save session", slog.Any("error", err))
			return
		}

		if err := c.WriteJSON(NewGameSessionDTO(session, game)); err != nil {
			g.logger.Error("unable to write json", slog.Any("error", err))
			break
		}
	}
}
