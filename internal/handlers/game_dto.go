package handlers

import (
	"strconv"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/filling-server/internal/filling"
	"github.com/vancomm/filling-server/internal/repository"
)

type CreateNewGameDTO struct {
	Width  int `schema:"width,required"`
	Height int `schema:"height,required"`
}

func ParseCreateNewGameDTO(src map[string][]string) (CreateNewGameDTO, error) {
	var dto CreateNewGameDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type GameSessionDTO struct {
	GameSessionId string `json:"game_session_id"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Desc          string `json:"desc"`
	Board         string `json:"board"`
	Completed     bool   `json:"completed"`
	Cheated       bool   `json:"cheated"`
	StartedAt     int64  `json:"started_at"`
	EndedAt       *int64 `json:"ended_at,omitempty"`
}

func encodeBoard(board []int) string {
	var b strings.Builder
	for _, v := range board {
		b.WriteByte(byte('0' + v))
	}
	return b.String()
}

func NewGameSessionDTO(
	session *repository.GameSession, g *filling.GameState,
) *GameSessionDTO {
	dto := &GameSessionDTO{
		GameSessionId: strconv.FormatInt(session.GameSessionId, 10),
		Width:         g.Width,
		Height:        g.Height,
		Desc:          g.Desc(),
		Board:         encodeBoard(g.Board),
		Completed:     g.Completed,
		Cheated:       g.Cheated,
		StartedAt:     session.StartedAt.Time.UnixMilli(),
	}
	if session.EndedAt.Valid {
		e := session.EndedAt.Time.UnixMilli()
		dto.EndedAt = &e
	}
	return dto
}
