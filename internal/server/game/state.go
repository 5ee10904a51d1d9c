package game

import (
	"sync"
	"time"

	"shashki/internal/shashki"
)

// GameState 一局棋的会话。规则核心是单线程的，所有访问都经过 mu。
type GameState struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time

	mu       sync.Mutex
	game     *shashki.Game
	recorded bool // 胜负是否已经写入统计
}
