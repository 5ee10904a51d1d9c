package shashki

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Mode 本回合的动作类型：有吃子时必须吃，且只能走最长路线
type Mode int8

const (
	ModeNormal Mode = iota
	ModeCapture
)

func (m Mode) String() string {
	if m == ModeCapture {
		return "capture"
	}
	return "normal"
}

// Actions 一方在本回合的全部合法动作。
// ModeCapture 时只有 Captures 有内容，ModeNormal 时只有 Moves 有内容。
type Actions struct {
	Mode     Mode
	Captures map[int][]Sequence
	Moves    map[int][]int
}

// LegalActions 计算 side 的合法动作；纯函数，不修改 b。
func LegalActions(b *Board, side Side) Actions {
	captures := make(map[int][]Sequence)
	maxLen := 0
	for sq := 0; sq < NumSquares; sq++ {
		pc := b.Squares[sq]
		if pc == 0 || pc.Side() != side {
			continue
		}
		seqs := GenerateCaptures(b, sq)
		if len(seqs) == 0 {
			continue
		}
		captures[sq] = seqs
		for _, s := range seqs {
			if len(s) > maxLen {
				maxLen = len(s)
			}
		}
	}

	if len(captures) > 0 {
		// 最大吃子规则：只保留全局最长的路线，没有剩余路线的棋子整个去掉
		for sq, seqs := range captures {
			kept := seqs[:0]
			for _, s := range seqs {
				if len(s) == maxLen {
					kept = append(kept, s)
				}
			}
			if len(kept) == 0 {
				delete(captures, sq)
				continue
			}
			captures[sq] = kept
		}
		return Actions{Mode: ModeCapture, Captures: captures}
	}

	moves := make(map[int][]int)
	for sq := 0; sq < NumSquares; sq++ {
		pc := b.Squares[sq]
		if pc == 0 || pc.Side() != side {
			continue
		}
		if mv := GenerateSimpleMoves(b, sq); len(mv) > 0 {
			moves[sq] = mv
		}
	}
	return Actions{Mode: ModeNormal, Moves: moves}
}

// LegalActions 当前走子方的合法动作
func (p *Position) LegalActions() Actions {
	return LegalActions(&p.Board, p.SideToMove)
}

// Empty 两种模式下都没有任何动作：走子方输棋
func (a Actions) Empty() bool {
	return len(a.Captures) == 0 && len(a.Moves) == 0
}

// Origins 可以选择的起点，升序
func (a Actions) Origins() []int {
	var keys []int
	if a.Mode == ModeCapture {
		keys = maps.Keys(a.Captures)
	} else {
		keys = maps.Keys(a.Moves)
	}
	slices.Sort(keys)
	return keys
}

func (a Actions) Contains(from int) bool {
	if a.Mode == ModeCapture {
		_, ok := a.Captures[from]
		return ok
	}
	_, ok := a.Moves[from]
	return ok
}

// MaxCapture 本回合必须吃掉的子数；普通模式为 0
func (a Actions) MaxCapture() int {
	for _, seqs := range a.Captures {
		if len(seqs) > 0 {
			return len(seqs[0])
		}
	}
	return 0
}

// Turns 本回合可走的完整动作数（每条吃子路线或每个普通落点算一个）
func (a Actions) Turns() int {
	n := 0
	for _, seqs := range a.Captures {
		n += len(seqs)
	}
	for _, mv := range a.Moves {
		n += len(mv)
	}
	return n
}
