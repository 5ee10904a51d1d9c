package shashki

import "testing"

var (
	wm = MakePiece(White, RankMan)
	wk = MakePiece(White, RankKing)
	bm = MakePiece(Black, RankMan)
	bk = MakePiece(Black, RankKing)
)

func sq(t *testing.T, name string) int {
	t.Helper()
	s, ok := ParseSquare(name)
	if !ok {
		t.Fatalf("bad square %q", name)
	}
	return s
}

// setup 在空棋盘上摆子
func setup(t *testing.T, side Side, pieces map[string]Piece) *Position {
	t.Helper()
	pos := &Position{SideToMove: side}
	for name, pc := range pieces {
		s := sq(t, name)
		if !IsDark(s) {
			t.Fatalf("%s is a light square", name)
		}
		pos.Board.Squares[s] = pc
	}
	pos.Hash = pos.CalculateHash()
	return pos
}

func hop(t *testing.T, to, captured string) Hop {
	t.Helper()
	return Hop{To: sq(t, to), Captured: sq(t, captured)}
}
