package shashki

import "sync"

// 棋子只落在深色格上：每行 4 个，sq/2 在深色格之间互不相同
const darkSquares = NumSquares / 2

// 白兵、白王、黑兵、黑王
const pieceKinds = 2 * int(RankKing)

var (
	zobristOnce sync.Once
	zobristKeys [pieceKinds][darkSquares]uint64
	zobristSide uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		// xorshift64*，固定种子保证不同进程哈希一致
		state := uint64(0x53484153484B4931)
		next := func() uint64 {
			state ^= state >> 12
			state ^= state << 25
			state ^= state >> 27
			return state * 0x2545F4914F6CDD1D
		}
		for kind := range zobristKeys {
			for i := range zobristKeys[kind] {
				zobristKeys[kind][i] = next()
			}
		}
		zobristSide = next()
	})
}

func pieceKind(pc Piece) int {
	kind := int(pc.Rank()) - 1
	if pc.Side() == Black {
		kind += int(RankKing)
	}
	return kind
}

func pieceHashKey(pc Piece, sq int) uint64 {
	if pc == 0 || !onBoardSquare(sq) {
		return 0
	}
	initZobrist()
	return zobristKeys[pieceKind(pc)][sq/2]
}

func sideHashKey() uint64 {
	initZobrist()
	return zobristSide
}

func onBoardSquare(sq int) bool { return sq >= 0 && sq < NumSquares }

// CalculateHash 全量计算当前局面的 Zobrist 哈希。
func (p *Position) CalculateHash() uint64 {
	var h uint64
	for sq, pc := range p.Board.Squares {
		h ^= pieceHashKey(pc, sq)
	}
	if p.SideToMove == Black {
		h ^= sideHashKey()
	}
	return h
}

// EnsureHash 确保 Position.Hash 已初始化；返回当前哈希值。
func (p *Position) EnsureHash() uint64 {
	if p.Hash == 0 {
		p.Hash = p.CalculateHash()
	}
	return p.Hash
}
