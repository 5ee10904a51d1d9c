package shashki

// Perft 统计 depth 个回合内的叶子数，用来核对走法生成。
// 一条完整吃子路线或一个普通落点算一个回合。
func Perft(pos *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	actions := pos.LegalActions()
	if depth == 1 {
		return uint64(actions.Turns())
	}
	var nodes uint64
	for _, from := range actions.Origins() {
		if actions.Mode == ModeCapture {
			for _, seq := range actions.Captures[from] {
				next := *pos
				next.playSequence(from, seq)
				nodes += Perft(&next, depth-1)
			}
			continue
		}
		for _, to := range actions.Moves[from] {
			next := *pos
			next.playSequence(from, Sequence{SimpleHop(to)})
			nodes += Perft(&next, depth-1)
		}
	}
	return nodes
}

func (p *Position) playSequence(from int, seq Sequence) {
	for _, h := range seq {
		p.ApplyHop(from, h)
		from = h.To
	}
	p.passTurn()
}

// DivideEntry 某个首步之下的叶子数
type DivideEntry struct {
	Turn  string
	Nodes uint64
}

// Divide 按第一回合拆分 Perft，方便和其他实现逐项对比
func Divide(pos *Position, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}
	actions := pos.LegalActions()
	var out []DivideEntry
	for _, from := range actions.Origins() {
		if actions.Mode == ModeCapture {
			for _, seq := range actions.Captures[from] {
				next := *pos
				next.playSequence(from, seq)
				name := SquareName(from)
				for _, h := range seq {
					name += ":" + SquareName(h.To)
				}
				out = append(out, DivideEntry{Turn: name, Nodes: Perft(&next, depth-1)})
			}
			continue
		}
		for _, to := range actions.Moves[from] {
			next := *pos
			next.playSequence(from, Sequence{SimpleHop(to)})
			out = append(out, DivideEntry{
				Turn:  SquareName(from) + "-" + SquareName(to),
				Nodes: Perft(&next, depth-1),
			})
		}
	}
	return out
}
