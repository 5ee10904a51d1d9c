package shashki

// applyHop 在棋盘上执行一步：清空起点、移除被吃子、落子（到底线即升变）。
// 返回落下的棋子以及是否在这一步升变。
func (b *Board) applyHop(from int, h Hop) (Piece, bool) {
	pc := b.Squares[from]
	b.Squares[from] = 0
	if h.IsCapture() {
		b.Squares[h.Captured] = 0
	}
	promoted := reachesPromotion(pc, h.To)
	if promoted {
		pc = pc.promoted()
	}
	b.Squares[h.To] = pc
	return pc, promoted
}

// ApplyHop 在真实局面上执行一步（由上层保证合法），同时增量更新 Zobrist。
// 不切换走子方：连吃过程中同一方可能要走多步，换边由 passTurn 完成。
func (p *Position) ApplyHop(from int, h Hop) (promoted, ok bool) {
	if from < 0 || from >= NumSquares || h.To < 0 || h.To >= NumSquares {
		return false, false
	}
	if h.IsCapture() && (h.Captured < 0 || h.Captured >= NumSquares) {
		return false, false
	}
	pc := p.Board.Squares[from]
	if pc == 0 {
		return false, false
	}
	var victim Piece
	if h.IsCapture() {
		victim = p.Board.Squares[h.Captured]
	}

	hash := p.EnsureHash()
	landed, promoted := p.Board.applyHop(from, h)

	hash ^= pieceHashKey(pc, from)
	if victim != 0 {
		hash ^= pieceHashKey(victim, h.Captured)
	}
	hash ^= pieceHashKey(landed, h.To)
	p.Hash = hash
	return promoted, true
}

func (p *Position) passTurn() {
	p.EnsureHash()
	p.SideToMove = Opposite(p.SideToMove)
	p.Hash ^= sideHashKey()
}
