package shashki

import (
	"errors"
	"strings"
	"unicode"
)

// 简单 FEN-like：8 行用“/”隔开，空位用数字压缩；空格后 w/b 表示先后
func (p *Position) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := p.Board.Squares[indexOf(r, c)]
			if pc == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

var ErrInvalidFEN = errors.New("invalid FEN")

func DecodePosition(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, ErrInvalidFEN
	}
	var b Board
	for r := 0; r < Rows; r++ {
		c := 0
		for _, ch := range rows[r] {
			if c >= Cols {
				return nil, ErrInvalidFEN
			}
			if ch >= '1' && ch <= '8' {
				c += int(ch - '0')
				continue
			}
			if ch == '.' {
				c++
				continue
			}
			rk, ok := letterToRank[unicode.ToLower(ch)]
			if !ok {
				return nil, ErrInvalidFEN
			}
			// 浅色格不能有子
			if !isDark(r, c) {
				return nil, ErrInvalidFEN
			}
			side := Black
			if unicode.IsUpper(ch) {
				side = White
			}
			b.Squares[indexOf(r, c)] = MakePiece(side, rk)
			c++
		}
		if c != Cols {
			return nil, ErrInvalidFEN
		}
	}
	var stm Side
	switch parts[1] {
	case "w":
		stm = White
	case "b":
		stm = Black
	default:
		return nil, ErrInvalidFEN
	}
	pos := &Position{
		Board:      b,
		SideToMove: stm,
	}
	pos.Hash = pos.CalculateHash()
	return pos, nil
}

// SquareName 格子的代数记法，a1 在白方左下角
func SquareName(sq int) string {
	if sq < 0 || sq >= NumSquares {
		return "-"
	}
	return string([]byte{byte('a' + colOf(sq)), byte('1' + Rows - 1 - rowOf(sq))})
}

// ParseSquare 解析 "c3" 这样的格子名
func ParseSquare(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) != 2 {
		return NoSquare, false
	}
	col := int(name[0] - 'a')
	row := Rows - 1 - int(name[1]-'1')
	if !onBoard(row, col) {
		return NoSquare, false
	}
	return indexOf(row, col), true
}
