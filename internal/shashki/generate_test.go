package shashki

import (
	"reflect"
	"testing"
)

func TestInitialPositionLayout(t *testing.T) {
	pos := NewInitialPosition()
	for s, pc := range pos.Board.Squares {
		if pc == 0 {
			continue
		}
		if !IsDark(s) {
			t.Fatalf("piece on light square %s", SquareName(s))
		}
		r := rowOf(s)
		if pc == wm && r < Rows-startRows {
			t.Fatalf("white man on row %d", r)
		}
		if pc == bm && r >= startRows {
			t.Fatalf("black man on row %d", r)
		}
	}
	for _, side := range []Side{White, Black} {
		men, kings := pos.Board.Count(side)
		if men != 12 || kings != 0 {
			t.Fatalf("%v: men=%d kings=%d", side, men, kings)
		}
	}
	if pos.SideToMove != White {
		t.Fatalf("white should move first")
	}
}

func TestStartingPositionOnlyFrontRowAdvances(t *testing.T) {
	pos := NewInitialPosition()
	a := pos.LegalActions()
	if a.Mode != ModeNormal {
		t.Fatalf("expected normal mode, got %v", a.Mode)
	}
	want := map[int][]int{
		sq(t, "a3"): {sq(t, "b4")},
		sq(t, "c3"): {sq(t, "b4"), sq(t, "d4")},
		sq(t, "e3"): {sq(t, "d4"), sq(t, "f4")},
		sq(t, "g3"): {sq(t, "f4"), sq(t, "h4")},
	}
	if !reflect.DeepEqual(a.Moves, want) {
		t.Fatalf("moves mismatch: got=%v want=%v", a.Moves, want)
	}
	if len(a.Captures) != 0 {
		t.Fatalf("unexpected captures: %v", a.Captures)
	}
	if a.Turns() != 7 {
		t.Fatalf("turns=%d want 7", a.Turns())
	}

	pos.passTurn()
	if got := pos.LegalActions().Turns(); got != 7 {
		t.Fatalf("black turns=%d want 7", got)
	}
}

func TestLegalActionsIdempotent(t *testing.T) {
	pos := setup(t, White, map[string]Piece{
		"a1": wk, "c3": wm, "e3": wm,
		"d4": bm, "f6": bm, "b6": bm, "g5": bk,
	})
	before := pos.Board
	first := pos.LegalActions()
	second := pos.LegalActions()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ:\n%v\n%v", first, second)
	}
	if pos.Board != before {
		t.Fatalf("LegalActions mutated the board")
	}
}

func TestManSimpleMovesForwardOnly(t *testing.T) {
	pos := setup(t, White, map[string]Piece{"d4": wm, "f4": bm})
	got := GenerateSimpleMoves(&pos.Board, sq(t, "d4"))
	want := []int{sq(t, "c5"), sq(t, "e5")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("white man: got=%v want=%v", got, want)
	}

	got = GenerateSimpleMoves(&pos.Board, sq(t, "f4"))
	want = []int{sq(t, "e3"), sq(t, "g3")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("black man: got=%v want=%v", got, want)
	}
}

func TestKingSimpleMovesStopBeforeBlocker(t *testing.T) {
	pos := setup(t, White, map[string]Piece{"a1": wk, "e5": bm})
	got := GenerateSimpleMoves(&pos.Board, sq(t, "a1"))
	want := []int{sq(t, "b2"), sq(t, "c3"), sq(t, "d4")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
}

func TestManCapturesBackward(t *testing.T) {
	pos := setup(t, White, map[string]Piece{"d4": wm, "c3": bm})
	got := GenerateCaptures(&pos.Board, sq(t, "d4"))
	want := []Sequence{{hop(t, "b2", "c3")}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
}

func TestCaptureIsMandatory(t *testing.T) {
	pos := setup(t, White, map[string]Piece{"d4": wm, "a3": wm, "e5": bm})
	a := pos.LegalActions()
	if a.Mode != ModeCapture {
		t.Fatalf("expected capture mode")
	}
	if len(a.Moves) != 0 {
		t.Fatalf("simple moves offered while a capture exists: %v", a.Moves)
	}
	if !reflect.DeepEqual(a.Origins(), []int{sq(t, "d4")}) {
		t.Fatalf("origins=%v", a.Origins())
	}
}

func TestShorterCaptureExcluded(t *testing.T) {
	pos := setup(t, White, map[string]Piece{
		"c1": wm, "b2": bm, // 只能吃一个
		"g3": wm, "f4": bm, "d6": bm, // 连吃两个
	})

	if n := len(GenerateCaptures(&pos.Board, sq(t, "c1"))); n != 1 {
		t.Fatalf("c1 should have one capture, got %d", n)
	}

	a := pos.LegalActions()
	if a.Mode != ModeCapture {
		t.Fatalf("expected capture mode")
	}
	if a.Contains(sq(t, "c1")) {
		t.Fatalf("length-1 capture must be excluded: %v", a.Captures)
	}
	want := []Sequence{{hop(t, "e5", "f4"), hop(t, "c7", "d6")}}
	if got := a.Captures[sq(t, "g3")]; !reflect.DeepEqual(got, want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
	if a.MaxCapture() != 2 {
		t.Fatalf("max capture=%d", a.MaxCapture())
	}
}

func TestKingFlyingCaptureLandings(t *testing.T) {
	pos := setup(t, White, map[string]Piece{"a1": wk, "d4": bm})
	got := GenerateCaptures(&pos.Board, sq(t, "a1"))
	want := []Sequence{
		{hop(t, "e5", "d4")},
		{hop(t, "f6", "d4")},
		{hop(t, "g7", "d4")},
		{hop(t, "h8", "d4")},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
}

func TestKingLandingWithContinuationWins(t *testing.T) {
	pos := setup(t, White, map[string]Piece{"a1": wk, "d4": bm, "c7": bm})
	all := GenerateCaptures(&pos.Board, sq(t, "a1"))
	if len(all) != 4 {
		t.Fatalf("expected 4 leaves, got %v", all)
	}

	a := pos.LegalActions()
	want := []Sequence{{hop(t, "e5", "d4"), hop(t, "b8", "c7")}}
	if got := a.Captures[sq(t, "a1")]; !reflect.DeepEqual(got, want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
}

func TestKingCaptureBlocked(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]Piece
	}{
		{
			name:   "OwnPieceInFront",
			pieces: map[string]Piece{"a1": wk, "b2": wm, "c3": bm, "d4": bm},
		},
		{
			name:   "TwoEnemiesInARow",
			pieces: map[string]Piece{"a1": wk, "c3": bm, "d4": bm},
		},
		{
			name:   "NoLandingSquare",
			pieces: map[string]Piece{"a1": wk, "g7": bm, "h8": bm},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			pos := setup(t, White, tt.pieces)
			if got := GenerateCaptures(&pos.Board, sq(t, "a1")); len(got) != 0 {
				t.Fatalf("expected no king capture, got %v", got)
			}
		})
	}
}

func TestPromotionMidChainContinuesAsKing(t *testing.T) {
	pos := setup(t, White, map[string]Piece{
		"b6": wm, "c7": bm, "g5": bm, "a7": bm,
	})
	a := pos.LegalActions()
	want := []Sequence{{hop(t, "d8", "c7"), hop(t, "h4", "g5")}}
	if got := a.Captures[sq(t, "b6")]; !reflect.DeepEqual(got, want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
}

func TestKingCannotRecaptureRemovedPiece(t *testing.T) {
	// 吃掉 d4 后它已不在棋盘上，王可以越过原位置继续走
	pos := setup(t, White, map[string]Piece{"a1": wk, "d4": bm, "f2": bm})
	for _, s := range GenerateCaptures(&pos.Board, sq(t, "a1")) {
		seen := map[int]bool{}
		for _, h := range s {
			if seen[h.Captured] {
				t.Fatalf("piece captured twice in %v", s)
			}
			seen[h.Captured] = true
		}
	}
}

func TestCaptureSequencesAreMaximal(t *testing.T) {
	pos := setup(t, White, map[string]Piece{
		"a1": wk, "c1": wm, "g1": wm,
		"d4": bm, "c7": bm, "b2": bm, "f2": bm, "f6": bk,
	})
	for from := range pos.Board.Squares {
		pc := pos.Board.Squares[from]
		if pc == 0 || pc.Side() != White {
			continue
		}
		for _, s := range GenerateCaptures(&pos.Board, from) {
			b := pos.Board
			cur := from
			for _, h := range s {
				b.applyHop(cur, h)
				cur = h.To
			}
			if more := GenerateCaptures(&b, cur); len(more) != 0 {
				t.Fatalf("sequence %v from %s is a prefix of a longer line", s, SquareName(from))
			}
		}
	}
}
