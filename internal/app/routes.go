package app

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/vancomm/filling-server/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	base := a.router

	auth := handlers.NewAuth(a.logger, a.db, a.cookies, a.jwt)
	base.HandleFunc("POST /v1/register", auth.Register)
	base.HandleFunc("POST /v1/login", auth.Login)
	base.HandleFunc("POST /v1/logout", auth.Logout)
	base.HandleFunc("GET /v1/status", auth.Status)

	game := handlers.NewGameHandler(
		a.logger, a.db, a.cookies, a.ws, createRand(),
	)
	base.HandleFunc("POST /v1/game", game.NewGame)
	base.HandleFunc("GET /v1/game/{id}", game.Fetch)
	base.HandleFunc("POST /v1/game/{id}/move", game.MakeAMove)
	base.HandleFunc("POST /v1/game/{id}/solve", game.Solve)
	base.HandleFunc("POST /v1/game/{id}/forfeit", game.Forfeit)
	base.HandleFunc("/v1/game/{id}/connect", game.ConnectWS)
	base.HandleFunc("GET /v1/highscores", game.Highscores)
}
