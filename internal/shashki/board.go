package shashki

import (
	"strings"
	"unicode"
)

const (
	Rows       = 8
	Cols       = 8
	NumSquares = Rows * Cols

	startRows = 3 // 每方开局占满的行数
)

func indexOf(row, col int) int { return row*Cols + col }
func rowOf(sq int) int         { return sq / Cols }
func colOf(sq int) int         { return sq % Cols }

// Square 由行列得到格子编号，越界返回 NoSquare
func Square(row, col int) int {
	if !onBoard(row, col) {
		return NoSquare
	}
	return indexOf(row, col)
}

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// 只有深色格可以放子
func isDark(row, col int) bool { return (row+col)%2 == 1 }

// IsDark 对外暴露的深色格判断
func IsDark(sq int) bool {
	return sq >= 0 && sq < NumSquares && isDark(rowOf(sq), colOf(sq))
}

func Opposite(side Side) Side {
	if side == White {
		return Black
	}
	if side == Black {
		return White
	}
	return NoSide
}

// 普通棋子的前进方向：白向上(-1)，黑向下(+1)
func manDir(side Side) int {
	if side == White {
		return -1
	}
	if side == Black {
		return +1
	}
	return 0
}

// 升变行（对方底线）
func promotionRow(side Side) int {
	if side == White {
		return 0
	}
	return Rows - 1
}

func reachesPromotion(pc Piece, sq int) bool {
	return pc.Rank() == RankMan && rowOf(sq) == promotionRow(pc.Side())
}

var diagDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

var letterToRank = map[rune]Rank{
	'm': RankMan,
	'k': RankKing,
}

func pieceToChar(p Piece) rune {
	var base rune
	switch p.Rank() {
	case RankMan:
		base = 'm'
	case RankKing:
		base = 'k'
	default:
		return '.'
	}
	if p.Side() == White {
		return unicode.ToUpper(base)
	}
	return base
}

// 白方在下，黑方在上
const initialBoardString = `.m.m.m.m
m.m.m.m.
.m.m.m.m
........
........
M.M.M.M.
.M.M.M.M
M.M.M.M.`

func parseInitialBoard() Board {
	var b Board
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(initialBoardString, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Rows {
		panic("initialBoardString row count is not 8")
	}
	for r := 0; r < Rows; r++ {
		if len(lines[r]) != Cols {
			panic("initialBoardString column count is not 8")
		}
		for c, ch := range lines[r] {
			if ch == '.' {
				continue
			}
			rk, ok := letterToRank[unicode.ToLower(ch)]
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			side := Black
			if unicode.IsUpper(ch) {
				side = White
			}
			b.Squares[indexOf(r, c)] = MakePiece(side, rk)
		}
	}
	return b
}

func NewInitialPosition() *Position {
	pos := &Position{
		Board:      parseInitialBoard(),
		SideToMove: White, // 白先
	}
	pos.Hash = pos.CalculateHash()
	return pos
}

// Count 统计某一方的棋子数（王棋单独计）
func (b *Board) Count(side Side) (men, kings int) {
	for _, pc := range b.Squares {
		if pc == 0 || pc.Side() != side {
			continue
		}
		if pc.IsKing() {
			kings++
		} else {
			men++
		}
	}
	return men, kings
}
