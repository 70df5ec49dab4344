package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"xiangqi/internal/xiangqi"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrTooManyGames = errors.New("too many games")
	ErrOutOfRange   = errors.New("index out of range")
	ErrEmptyOrigin  = errors.New("no piece at origin")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrIllegalMove  = errors.New("illegal move")
	ErrGameOver     = errors.New("game is over")
)

type Manager struct {
	mu       sync.RWMutex
	games    map[string]*GameState
	scale    float64
	maxGames int
}

// NewManager maxGames <= 0 表示不限制
func NewManager(scale float64, maxGames int) *Manager {
	return &Manager{
		games:    make(map[string]*GameState),
		scale:    scale,
		maxGames: maxGames,
	}
}

// NewGame 开局，红方先走
func (m *Manager) NewGame() (Snapshot, error) {
	return m.add(xiangqi.NewBoard(m.scale), xiangqi.Red)
}

// NewGameFromFEN 从任意局面开始
func (m *Manager) NewGameFromFEN(fen string) (Snapshot, error) {
	b, toMove, err := xiangqi.DecodeBoard(fen, m.scale)
	if err != nil {
		return Snapshot{}, err
	}
	return m.add(b, toMove)
}

func (m *Manager) add(b *xiangqi.Board, toMove xiangqi.Side) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxGames > 0 && len(m.games) >= m.maxGames {
		log.Warn().
			Int("current_games", len(m.games)).
			Int("max_games", m.maxGames).
			Msg("Rejecting game creation - server at capacity")
		return Snapshot{}, fmt.Errorf("%w: %d/%d games active", ErrTooManyGames, len(m.games), m.maxGames)
	}

	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Board:     b,
		ToMove:    toMove,
		Status:    StatusOngoing,
		Captured:  make(map[xiangqi.Side][]xiangqi.Piece, 2),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if b.GeneralPoint(xiangqi.Red) == nil || b.GeneralPoint(xiangqi.Green) == nil {
		g.Status = StatusGeneralCaptured
		if b.GeneralPoint(xiangqi.Red) != nil {
			g.Winner = xiangqi.Red
		} else if b.GeneralPoint(xiangqi.Green) != nil {
			g.Winner = xiangqi.Green
		}
	}
	m.games[g.ID] = g

	log.Info().Str("game_id", g.ID).Str("to_move", toMove.String()).Msg("Game created")
	return g.snapshotLocked(), nil
}

func (m *Manager) get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return g, nil
}

// Get 返回当前局面快照
func (m *Manager) Get(id string) (Snapshot, error) {
	g, err := m.get(id)
	if err != nil {
		return Snapshot{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked(), nil
}

// Remove 删除一局，不存在时返回 ErrGameNotFound
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(m.games, id)
	log.Info().Str("game_id", id).Msg("Game removed")
	return nil
}

// Count 当前对局数
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// Moves 返回 from 上棋子的伪合法落点（不含起点），按生成顺序
func (m *Manager) Moves(id string, from int) ([]int, error) {
	g, err := m.get(id)
	if err != nil {
		return nil, err
	}
	if !xiangqi.IsValid(from) {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Board.At(from).IsEmpty() {
		return nil, fmt.Errorf("%w: %d", ErrEmptyOrigin, from)
	}
	dsts := g.Board.Destinations(from)
	out := make([]int, len(dsts))
	for i, pt := range dsts {
		out[i] = pt.Index()
	}
	return out, nil
}

// Play 校验并执行一步：必须轮到该方、落点必须在伪合法落点里
func (m *Manager) Play(id string, from, to int) (PlayResult, error) {
	g, err := m.get(id)
	if err != nil {
		return PlayResult{}, err
	}
	if !xiangqi.IsValid(from) || !xiangqi.IsValid(to) {
		return PlayResult{}, fmt.Errorf("%w: %d -> %d", ErrOutOfRange, from, to)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Status != StatusOngoing {
		return PlayResult{}, ErrGameOver
	}
	origin := g.Board.At(from)
	if origin.IsEmpty() {
		return PlayResult{}, fmt.Errorf("%w: %d", ErrEmptyOrigin, from)
	}
	mover := origin.Piece().Side()
	if mover != g.ToMove {
		return PlayResult{}, fmt.Errorf("%w: %s to move", ErrNotYourTurn, g.ToMove)
	}
	if !g.Board.CanMove(from, to) {
		log.Debug().Str("game_id", g.ID).Int("from", from).Int("to", to).Msg("Rejected illegal move")
		return PlayResult{}, fmt.Errorf("%w: %d -> %d", ErrIllegalMove, from, to)
	}

	captured := g.Board.RegisterMove(origin, g.Board.At(to))
	if captured != xiangqi.None {
		g.Captured[mover] = append(g.Captured[mover], captured)
		if captured.Type() == xiangqi.PieceGeneral {
			g.Status = StatusGeneralCaptured
			g.Winner = mover
		}
	}
	g.ToMove = mover.Opposite()
	g.Plies++
	g.UpdatedAt = time.Now()

	log.Info().
		Str("game_id", g.ID).
		Int("from", from).
		Int("to", to).
		Str("captured", captured.String()).
		Str("status", string(g.Status)).
		Msg("Move played")

	return PlayResult{
		Snapshot:      g.snapshotLocked(),
		From:          from,
		To:            to,
		CapturedPiece: captured,
	}, nil
}

// Attacked 返回 side 的受攻击点下标（升序）
func (m *Manager) Attacked(id string, side xiangqi.Side) ([]int, error) {
	g, err := m.get(id)
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.Board.AttackedPoints(side).Indices(), nil
}
