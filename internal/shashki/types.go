package shashki

type Side int8

const (
	NoSide Side = -1
	White  Side = 0
	Black  Side = 1
)

func (s Side) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

type Rank int8

const (
	RankNone Rank = iota
	RankMan       // 普通棋子
	RankKing      // 王棋（飞王）
)

type Piece int8 // 0=空；>0 白；<0 黑；abs=Rank

func MakePiece(side Side, r Rank) Piece {
	if r == RankNone || side == NoSide {
		return 0
	}
	if side == White {
		return Piece(r)
	}
	return -Piece(r)
}

func (p Piece) Rank() Rank {
	if p < 0 {
		return Rank(-p)
	}
	return Rank(p)
}

func (p Piece) Side() Side {
	if p == 0 {
		return NoSide
	}
	if p > 0 {
		return White
	}
	return Black
}

func (p Piece) IsKing() bool { return p.Rank() == RankKing }

// 升变后的棋子，同一方
func (p Piece) promoted() Piece { return MakePiece(p.Side(), RankKing) }

type Board struct {
	Squares [NumSquares]Piece
}

// NoSquare 表示 Hop 没有吃子（普通走子）
const NoSquare = -1

// Hop 一次落子：落点 + 被吃棋子所在格。
// 零值的 Captured 是 0 号格，普通走子必须写 NoSquare，用 SimpleHop 构造。
type Hop struct {
	To       int `json:"to"`
	Captured int `json:"captured"`
}

// SimpleHop 不吃子的一步
func SimpleHop(to int) Hop { return Hop{To: to, Captured: NoSquare} }

func (h Hop) IsCapture() bool { return h.Captured != NoSquare }

// Sequence 一条完整的连吃路线（从起点出发，按顺序）
type Sequence []Hop

// HasPrefix 判断 prefix 是否为 s 的前缀
func (s Sequence) HasPrefix(prefix []Hop) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}

// Position = 棋盘 + 轮到谁走
type Position struct {
	Board      Board
	SideToMove Side
	Hash       uint64
}
