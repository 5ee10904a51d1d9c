package shashki

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Game 持有唯一一份真实局面，以及本回合的选子/连吃进度。
// 非并发安全：调用方（例如 server/game）负责加锁。
type Game struct {
	pos     Position
	actions Actions

	selected int        // 选中的起点，NoSquare 表示未选
	active   []Sequence // 与已走前缀一致的候选路线（仅吃子模式）
	prefix   []Hop      // 本回合已落下的吃子步

	winner Side
}

// CommitResult 一步落子的结果
type CommitResult struct {
	From      int  `json:"from"`
	Hop       Hop  `json:"hop"`
	Promoted  bool `json:"promoted"`
	TurnEnded bool `json:"turn_ended"`
}

func NewGame() *Game {
	return NewGameFrom(NewInitialPosition())
}

// NewGameFrom 从任意局面开始（复制一份，调用方之后的修改不影响对局）
func NewGameFrom(pos *Position) *Game {
	g := &Game{}
	g.load(*pos)
	return g
}

func (g *Game) load(pos Position) {
	pos.EnsureHash()
	g.pos = pos
	g.clearSelection()
	g.winner = NoSide
	g.refresh()
}

// Reset 回到开局
func (g *Game) Reset() {
	g.load(*NewInitialPosition())
}

func (g *Game) refresh() {
	g.actions = g.pos.LegalActions()
	if g.actions.Empty() {
		// 走子方无棋可走，上一手的一方获胜
		g.winner = Opposite(g.pos.SideToMove)
	}
}

func (g *Game) clearSelection() {
	g.selected = NoSquare
	g.active = nil
	g.prefix = nil
}

// Position 返回当前局面的副本
func (g *Game) Position() Position { return g.pos }

func (g *Game) SideToMove() Side { return g.pos.SideToMove }

func (g *Game) Actions() Actions { return g.actions }

func (g *Game) Over() bool { return g.winner != NoSide }

// Winner 对局未结束时为 NoSide
func (g *Game) Winner() Side { return g.winner }

func (g *Game) Selected() int { return g.selected }

// Current 选中棋子现在所在的格（连吃途中会变化）
func (g *Game) Current() int {
	if len(g.prefix) > 0 {
		return g.prefix[len(g.prefix)-1].To
	}
	return g.selected
}

func (g *Game) Prefix() []Hop { return slices.Clone(g.prefix) }

// Candidates 选中棋子仍然可走的完整路线（仅吃子模式）
func (g *Game) Candidates() []Sequence { return slices.Clone(g.active) }

// Select 选择（或重新选择）本回合要走的棋子
func (g *Game) Select(sq int) error {
	if g.Over() {
		return ErrGameOver
	}
	if len(g.prefix) > 0 {
		return ErrCaptureInProgress
	}
	if !g.actions.Contains(sq) {
		return ErrInvalidSelection
	}
	g.selected = sq
	g.prefix = nil
	g.active = nil
	if g.actions.Mode == ModeCapture {
		g.active = slices.Clone(g.actions.Captures[sq])
	}
	return nil
}

// Deselect 取消选择；已经吃过子就不允许中途放弃
func (g *Game) Deselect() error {
	if len(g.prefix) > 0 {
		return ErrCaptureInProgress
	}
	g.clearSelection()
	return nil
}

// NextOptions 连吃中下一步可选的（落点, 被吃子），按落点排序去重。
// 普通模式下为空，落点直接看 Destinations。
func (g *Game) NextOptions() []Hop {
	if g.actions.Mode != ModeCapture || g.selected == NoSquare {
		return nil
	}
	k := len(g.prefix)
	// 同一格出发、同一落点，被吃的子必然相同
	byTo := make(map[int]Hop)
	for _, s := range g.active {
		if len(s) > k {
			byTo[s[k].To] = s[k]
		}
	}
	landings := maps.Keys(byTo)
	slices.Sort(landings)
	opts := make([]Hop, 0, len(landings))
	for _, to := range landings {
		opts = append(opts, byTo[to])
	}
	return opts
}

// Destinations 选中棋子下一步可以落的格
func (g *Game) Destinations() []int {
	if g.selected == NoSquare {
		return nil
	}
	if g.actions.Mode == ModeNormal {
		return slices.Clone(g.actions.Moves[g.selected])
	}
	opts := g.NextOptions()
	out := make([]int, len(opts))
	for i, h := range opts {
		out[i] = h.To
	}
	return out
}

// Commit 把选中棋子走到 to。吃子模式下一次只走一跳；
// 还有后续吃子时回合继续，否则换边。
func (g *Game) Commit(to int) (CommitResult, error) {
	if g.Over() {
		return CommitResult{}, ErrGameOver
	}
	if g.selected == NoSquare {
		return CommitResult{}, ErrInapplicableAction
	}

	if g.actions.Mode == ModeNormal {
		if !slices.Contains(g.actions.Moves[g.selected], to) {
			return CommitResult{}, ErrIllegalHop
		}
		from := g.selected
		hop := SimpleHop(to)
		promoted, _ := g.pos.ApplyHop(from, hop)
		g.endTurn()
		return CommitResult{From: from, Hop: hop, Promoted: promoted, TurnEnded: true}, nil
	}

	var hop Hop
	found := false
	for _, h := range g.NextOptions() {
		if h.To == to {
			hop, found = h, true
			break
		}
	}
	if !found {
		return CommitResult{}, ErrIllegalHop
	}

	from := g.Current()
	promoted, _ := g.pos.ApplyHop(from, hop)
	g.prefix = append(g.prefix, hop)

	kept := g.active[:0]
	for _, s := range g.active {
		if s.HasPrefix(g.prefix) {
			kept = append(kept, s)
		}
	}
	g.active = kept

	res := CommitResult{From: from, Hop: hop, Promoted: promoted}
	for _, s := range g.active {
		if len(s) > len(g.prefix) {
			return res, nil
		}
	}
	g.endTurn()
	res.TurnEnded = true
	return res, nil
}

// PlayTurn 一次性走完整个回合；先整体校验，失败时局面不变
func (g *Game) PlayTurn(from int, hops []Hop) error {
	if g.Over() {
		return ErrGameOver
	}
	if len(g.prefix) > 0 {
		return ErrCaptureInProgress
	}
	if !g.actions.Contains(from) {
		return ErrInvalidSelection
	}
	if len(hops) == 0 {
		return ErrIllegalHop
	}
	capture := hops[0].IsCapture()
	if capture != (g.actions.Mode == ModeCapture) {
		return ErrInapplicableAction
	}
	if capture {
		ok := false
		for _, s := range g.actions.Captures[from] {
			if len(s) == len(hops) && s.HasPrefix(hops) {
				ok = true
				break
			}
		}
		if !ok {
			return ErrIllegalHop
		}
	} else if len(hops) != 1 || !slices.Contains(g.actions.Moves[from], hops[0].To) {
		return ErrIllegalHop
	}

	if err := g.Select(from); err != nil {
		return err
	}
	for _, h := range hops {
		if _, err := g.Commit(h.To); err != nil {
			// 已校验过整条路线，走到这里说明生成器有缺陷
			panic("shashki: validated turn rejected: " + err.Error())
		}
	}
	return nil
}

func (g *Game) endTurn() {
	g.pos.passTurn()
	g.clearSelection()
	g.refresh()
}
