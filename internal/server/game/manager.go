package game

import (
	"errors"
	"log"
	"sort"
	"sync"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"

	"shashki/internal/shashki"
)

var ErrGameNotFound = errors.New("game not found")

// ResultRecorder 对局结束时接收胜者
type ResultRecorder interface {
	RecordResult(winner shashki.Side) error
}

type Manager struct {
	mu       sync.RWMutex
	games    map[string]*GameState
	recorder ResultRecorder
}

// NewManager recorder 可以为 nil
func NewManager(recorder ResultRecorder) *Manager {
	return &Manager{
		games:    make(map[string]*GameState),
		recorder: recorder,
	}
}

func (m *Manager) NewGame() *GameState {
	return m.add(shashki.NewGame())
}

// NewGameFrom 从指定局面开局（调试、残局练习）
func (m *Manager) NewGameFrom(pos *shashki.Position) *GameState {
	return m.add(shashki.NewGameFrom(pos))
}

func (m *Manager) add(g *shashki.Game) *GameState {
	now := time.Now()
	gs := &GameState{
		ID:        uuid.NewString(),
		Name:      petname.Generate(2, "-"),
		CreatedAt: now,
		UpdatedAt: now,
		game:      g,
	}

	m.mu.Lock()
	m.games[gs.ID] = gs
	m.mu.Unlock()
	return gs
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrGameNotFound
	}
	delete(m.games, id)
	return nil
}

// List 按创建时间排序
func (m *Manager) List() []*GameState {
	m.mu.RLock()
	out := make([]*GameState, 0, len(m.games))
	for _, g := range m.games {
		out = append(out, g)
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// Do 在对局锁内执行 fn。fn 返回后，如果对局刚刚结束，胜者只记录一次。
func (m *Manager) Do(id string, fn func(g *shashki.Game) error) error {
	gs, err := m.Get(id)
	if err != nil {
		return err
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()

	wasOver := gs.game.Over()
	err = fn(gs.game)
	gs.UpdatedAt = time.Now()

	switch {
	case !gs.game.Over():
		// 重开之后允许再次记录
		gs.recorded = false
	case !wasOver && !gs.recorded:
		gs.recorded = true
		if m.recorder != nil {
			if rerr := m.recorder.RecordResult(gs.game.Winner()); rerr != nil {
				log.Printf("record result for game %s: %v", gs.ID, rerr)
			}
		}
	}
	return err
}
