package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(game.NewManager(1, 0), t.TempDir())
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func newGame(t *testing.T, h http.Handler) NewGameResponse {
	t.Helper()
	rr := post(t, h, "/api/new_game", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	return decode[NewGameResponse](t, rr)
}

func TestNewGameEndpoint(t *testing.T) {
	srv := newTestServer(t)
	resp := newGame(t, srv)

	assert.NotEmpty(t, resp.GameID)
	assert.Equal(t, xiangqi.InitialFEN, resp.Position)
	assert.Equal(t, "red", resp.ToMove)
	require.Len(t, resp.Pieces, 32)
	assert.Equal(t, PieceDTO{Index: 0, Side: "red", Type: "chariot", Code: uint8(xiangqi.MakePiece(xiangqi.Red, xiangqi.PieceChariot))}, resp.Pieces[0])
	assert.Equal(t, "green", resp.Pieces[31].Side)
}

func TestNewGameFromFENEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rr := post(t, srv, "/api/new_game", `{"fen":"4k4/9/9/9/9/9/9/9/9/4K4 b"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decode[NewGameResponse](t, rr)
	assert.Equal(t, "green", resp.ToMove)
	assert.Len(t, resp.Pieces, 2)

	rr = post(t, srv, "/api/new_game", `{"fen":"garbage"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)
	for _, path := range []string{"/api/new_game", "/api/state", "/api/moves", "/api/play", "/api/attacked"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		srv.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code, path)
		assert.Equal(t, http.MethodPost, rr.Header().Get("Allow"))
	}
}

func TestUnknownAPIPath(t *testing.T) {
	srv := newTestServer(t)
	rr := post(t, srv, "/api/undo", `{}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestBadJSON(t *testing.T) {
	srv := newTestServer(t)
	for _, path := range []string{"/api/state", "/api/moves", "/api/play", "/api/attacked"} {
		rr := post(t, srv, path, `{"game_id":`)
		assert.Equal(t, http.StatusBadRequest, rr.Code, path)
		assert.Equal(t, "bad json", decode[errorResponse](t, rr).Error)
	}
}

func TestUnknownGame(t *testing.T) {
	srv := newTestServer(t)
	tests := []struct {
		path string
		body string
	}{
		{"/api/state", `{"game_id":"nope"}`},
		{"/api/moves", `{"game_id":"nope","from":0}`},
		{"/api/play", `{"game_id":"nope","move":{"from":0,"to":9}}`},
		{"/api/attacked", `{"game_id":"nope","side":"red"}`},
	}
	for _, tt := range tests {
		rr := post(t, srv, tt.path, tt.body)
		assert.Equal(t, http.StatusNotFound, rr.Code, tt.path)
	}
}

func TestGameFlow(t *testing.T) {
	srv := newTestServer(t)
	g := newGame(t, srv)

	// 红炮的落点
	rr := post(t, srv, "/api/moves", `{"game_id":"`+g.GameID+`","from":19}`)
	require.Equal(t, http.StatusOK, rr.Code)
	moves := decode[MovesResponse](t, rr)
	assert.Equal(t, 19, moves.From)
	assert.Equal(t, []int{20, 21, 22, 23, 24, 28, 37, 46, 55, 82, 18, 10}, moves.Destinations)

	// 炮打马
	rr = post(t, srv, "/api/play", `{"game_id":"`+g.GameID+`","move":{"from":19,"to":82}}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	play := decode[PlayResponse](t, rr)
	assert.Equal(t, "green", play.ToMove)
	assert.Equal(t, "knight", play.CapturedPiece)
	assert.Equal(t, "ongoing", play.Status)
	assert.Empty(t, play.Winner)

	rr = post(t, srv, "/api/state", `{"game_id":"`+g.GameID+`"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	state := decode[StateResponse](t, rr)
	assert.Equal(t, play.Position, state.Position)
	assert.Equal(t, []string{"knight"}, state.Captured["red"])
	assert.Empty(t, state.Captured["green"])
	assert.Equal(t, 1, state.Plies)

	rr = post(t, srv, "/api/attacked", `{"game_id":"`+g.GameID+`","side":"green"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	att := decode[AttackedResponse](t, rr)
	assert.Equal(t, "green", att.Side)
	assert.IsIncreasing(t, att.Points)
	assert.Contains(t, att.Points, 82, "green chariot and elephant can take the cannon")
}

func TestPlayRejections(t *testing.T) {
	srv := newTestServer(t)
	g := newGame(t, srv)

	rr := post(t, srv, "/api/play", `{"game_id":"`+g.GameID+`","move":{"from":54,"to":45}}`)
	assert.Equal(t, http.StatusConflict, rr.Code, "green cannot move first")

	rr = post(t, srv, "/api/play", `{"game_id":"`+g.GameID+`","move":{"from":0,"to":1}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = post(t, srv, "/api/play", `{"game_id":"`+g.GameID+`","move":{"from":40,"to":49}}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = post(t, srv, "/api/play", `{"game_id":"`+g.GameID+`","move":{"from":-1,"to":9}}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = post(t, srv, "/api/state", `{"game_id":"`+g.GameID+`"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	state := decode[StateResponse](t, rr)
	assert.Equal(t, xiangqi.InitialFEN, state.Position, "rejected moves leave the board untouched")
	assert.Equal(t, "red", state.ToMove)
}

func TestGeneralCapturedEndsGame(t *testing.T) {
	srv := newTestServer(t)
	rr := post(t, srv, "/api/new_game", `{"fen":"4k4/9/9/9/9/9/9/9/9/3K4R w"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	g := decode[NewGameResponse](t, rr)

	moves := [][2]int{{8, 89}, {85, 84}, {89, 84}}
	var last PlayResponse
	for _, mv := range moves {
		body, err := json.Marshal(PlayRequest{GameID: g.GameID, Move: MoveDTO{From: mv[0], To: mv[1]}})
		require.NoError(t, err)
		rr = post(t, srv, "/api/play", string(body))
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		last = decode[PlayResponse](t, rr)
	}
	assert.Equal(t, "general", last.CapturedPiece)
	assert.Equal(t, "general_captured", last.Status)
	assert.Equal(t, "red", last.Winner)

	rr = post(t, srv, "/api/play", `{"game_id":"`+g.GameID+`","move":{"from":3,"to":4}}`)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestAttackedRejectsUnknownSide(t *testing.T) {
	srv := newTestServer(t)
	g := newGame(t, srv)
	rr := post(t, srv, "/api/attacked", `{"game_id":"`+g.GameID+`","side":"blue"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestTooManyGames(t *testing.T) {
	srv := NewServer(game.NewManager(1, 1), t.TempDir())
	newGame(t, srv)
	rr := post(t, srv, "/api/new_game", "")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestStaticAndHealth(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>board</html>"), 0o644))
	srv := NewServer(game.NewManager(1, 0), dir)

	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())

	rr = httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "board")
}
