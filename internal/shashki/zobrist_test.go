package shashki

import (
	"errors"
	"strings"
	"testing"
)

func TestHashInitializedFromInitialAndFEN(t *testing.T) {
	pos := NewInitialPosition()
	if pos.Hash != pos.CalculateHash() {
		t.Fatalf("initial hash mismatch: got=%d want=%d", pos.Hash, pos.CalculateHash())
	}

	fen := strings.ReplaceAll(initialBoardString, "\n", "/") + " w"
	decoded, err := DecodePosition(fen)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if *decoded != *pos {
		t.Fatalf("decoded position differs: %s", decoded.Encode())
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	pos := setup(t, Black, map[string]Piece{"a1": wk, "c3": wm, "h8": bk, "d6": bm})
	enc := pos.Encode()
	if enc != "7k/8/3m4/8/8/2M5/8/K7 b" {
		t.Fatalf("encode=%q", enc)
	}
	decoded, err := DecodePosition(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if *decoded != *pos {
		t.Fatalf("round trip mismatch: %s", decoded.Encode())
	}
}

func TestDecodeRejectsBadInput(t *testing.T) {
	for _, fen := range []string{
		"",
		"8/8/8/8/8/8/8 w",           // 7 行
		"M7/8/8/8/8/8/8/8 w",        // 浅色格
		"1x6/8/8/8/8/8/8/8 w",       // 未知字母
		"8/8/8/8/8/8/8/8 x",         // 走子方
		"1m1m1m1m1/8/8/8/8/8/8/8 w", // 超出 8 列
	} {
		if _, err := DecodePosition(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Fatalf("%q: expected ErrInvalidFEN, got %v", fen, err)
		}
	}
}

func TestApplyHopHashIncrementalMatchesFullRecompute(t *testing.T) {
	g := NewGame()
	for ply := 0; ply < 40 && !g.Over(); ply++ {
		a := g.Actions()
		origins := a.Origins()
		from := origins[len(origins)/2]
		var hops []Hop
		if a.Mode == ModeCapture {
			seqs := a.Captures[from]
			hops = seqs[len(seqs)/2]
		} else {
			mv := a.Moves[from]
			hops = []Hop{SimpleHop(mv[len(mv)/2])}
		}
		if err := g.PlayTurn(from, hops); err != nil {
			t.Fatalf("ply %d: %v", ply, err)
		}
		pos := g.Position()
		if got, want := pos.Hash, pos.CalculateHash(); got != want {
			t.Fatalf("hash mismatch at ply %d: got=%d want=%d", ply, got, want)
		}
	}
}

func TestSquareNames(t *testing.T) {
	if SquareName(Square(7, 0)) != "a1" || SquareName(Square(0, 7)) != "h8" {
		t.Fatalf("unexpected corner names")
	}
	if _, ok := ParseSquare("i9"); ok {
		t.Fatalf("i9 should not parse")
	}
}

func TestPieceHashKeysDistinctOnDarkSquares(t *testing.T) {
	pieces := []Piece{
		MakePiece(White, RankMan), MakePiece(White, RankKing),
		MakePiece(Black, RankMan), MakePiece(Black, RankKing),
	}
	seen := make(map[uint64]string)
	for sq := 0; sq < NumSquares; sq++ {
		if !IsDark(sq) {
			continue
		}
		for _, pc := range pieces {
			k := pieceHashKey(pc, sq)
			name := SquareName(sq) + ":" + string(pieceToChar(pc))
			if k == 0 {
				t.Fatalf("zero key for %s", name)
			}
			if prev, dup := seen[k]; dup {
				t.Fatalf("key collision %s vs %s", prev, name)
			}
			seen[k] = name
		}
	}
	if len(seen) != 4*NumSquares/2 {
		t.Fatalf("keys=%d", len(seen))
	}
	if pieceHashKey(0, 10) != 0 || pieceHashKey(pieces[0], NumSquares) != 0 {
		t.Fatalf("empty square or off-board square must not hash")
	}
}
