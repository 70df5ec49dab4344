package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

const maxJSONBodyBytes int64 = 1 << 20

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games *game.Manager
}

func NewHandler(games *game.Manager) *Handler {
	return &Handler{games: games}
}

func (h *Handler) Games() *game.Manager {
	return h.games
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var fn func(http.ResponseWriter, *http.Request)
	switch r.URL.Path {
	case "/api/new_game":
		fn = h.handleNewGame
	case "/api/state":
		fn = h.handleState
	case "/api/moves":
		fn = h.handleMoves
	case "/api/play":
		fn = h.handlePlay
	case "/api/attacked":
		fn = h.handleAttacked
	default:
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	fn(w, r)
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	// 允许空 body
	if r.ContentLength != 0 {
		if !decodeJSON(w, r, &req) {
			return
		}
	}

	var (
		snap game.Snapshot
		err  error
	)
	if req.FEN == "" {
		snap, err = h.games.NewGame()
	} else {
		snap, err = h.games.NewGameFromFEN(req.FEN)
	}
	if err != nil {
		writeGameError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, NewGameResponse{
		GameID:   snap.ID,
		Position: snap.FEN,
		ToMove:   snap.ToMove.String(),
		Pieces:   piecesToDTO(snap.Pieces),
	})
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	snap, err := h.games.Get(req.GameID)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, StateResponse{
		Position: snap.FEN,
		ToMove:   snap.ToMove.String(),
		Captured: capturedToDTO(snap.Captured),
		Status:   string(snap.Status),
		Winner:   winnerString(snap),
		Plies:    snap.Plies,
	})
}

func (h *Handler) handleMoves(w http.ResponseWriter, r *http.Request) {
	var req MovesRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	dsts, err := h.games.Moves(req.GameID, req.From)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MovesResponse{
		From:         req.From,
		Destinations: nonNil(dsts),
	})
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.games.Play(req.GameID, req.Move.From, req.Move.To)
	if err != nil {
		writeGameError(w, err)
		return
	}

	resp := PlayResponse{
		Position: res.FEN,
		ToMove:   res.ToMove.String(),
		Status:   string(res.Status),
		Winner:   winnerString(res.Snapshot),
	}
	if res.CapturedPiece != xiangqi.None {
		resp.CapturedPiece = res.CapturedPiece.Type().String()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleAttacked(w http.ResponseWriter, r *http.Request) {
	var req AttackedRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	side := xiangqi.ParseSide(req.Side)
	if side == xiangqi.NoSide {
		writeError(w, http.StatusBadRequest, "side must be \"red\" or \"green\"")
		return
	}
	points, err := h.games.Attacked(req.GameID, side)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AttackedResponse{
		Side:   side.String(),
		Points: nonNil(points),
	})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "bad json")
		return false
	}
	return true
}

// writeGameError 把 manager 的错误映射成状态码
func writeGameError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrNotYourTurn), errors.Is(err, game.ErrGameOver):
		status = http.StatusConflict
	case errors.Is(err, game.ErrIllegalMove):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, game.ErrOutOfRange), errors.Is(err, game.ErrEmptyOrigin),
		errors.Is(err, xiangqi.ErrInvalidFEN):
		status = http.StatusBadRequest
	case errors.Is(err, game.ErrTooManyGames):
		status = http.StatusServiceUnavailable
	}
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("Unhandled game error")
	}
	writeError(w, status, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		log.Warn().Err(err).Msg("writeJSON failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
