package shashki

// GenerateCaptures 返回 from 上棋子的全部极大连吃路线。
// 搜索在棋盘副本上进行：被吃的子立即移除，同一个子不会被吃两次。
// 不同分支的路线长度可以不同，取最长由 LegalActions 负责。
func GenerateCaptures(b *Board, from int) []Sequence {
	if b.Squares[from] == 0 {
		return nil
	}
	var out []Sequence
	searchCaptures(*b, from, nil, &out)
	return out
}

// 深度优先：当前格再也吃不到子时，把已走的路线作为叶子输出。
// 普通棋子在途中升变后，棋盘上已经是王棋，后续自然按王棋规则搜索。
func searchCaptures(b Board, sq int, path []Hop, out *[]Sequence) {
	var found bool
	if b.Squares[sq].IsKing() {
		found = kingCaptureHops(&b, sq, func(h Hop) {
			descend(b, sq, h, path, out)
		})
	} else {
		found = manCaptureHops(&b, sq, func(h Hop) {
			descend(b, sq, h, path, out)
		})
	}
	if !found && len(path) > 0 {
		*out = append(*out, path)
	}
}

func descend(b Board, from int, h Hop, path []Hop, out *[]Sequence) {
	b.applyHop(from, h)
	// 三下标切片：保证每个分支拿到独立的底层数组
	next := append(path[:len(path):len(path)], h)
	searchCaptures(b, h.To, next, out)
}

// 普通棋子：四个方向都能吃，紧邻敌子且其后一格为空
func manCaptureHops(b *Board, from int, yield func(Hop)) bool {
	row, col := rowOf(from), colOf(from)
	side := b.Squares[from].Side()
	found := false
	for _, d := range diagDirs {
		r1, c1 := row+d[0], col+d[1]
		r2, c2 := row+2*d[0], col+2*d[1]
		if !onBoard(r2, c2) {
			continue
		}
		victim := b.Squares[indexOf(r1, c1)]
		if victim == 0 || victim.Side() == side {
			continue
		}
		if b.Squares[indexOf(r2, c2)] != 0 {
			continue
		}
		found = true
		yield(Hop{To: indexOf(r2, c2), Captured: indexOf(r1, c1)})
	}
	return found
}

// 王棋：沿斜线越过空格找到第一个子；己方子挡住该方向，
// 敌子之后直到下一个子或边界的每个空格都是一个落点
func kingCaptureHops(b *Board, from int, yield func(Hop)) bool {
	row, col := rowOf(from), colOf(from)
	side := b.Squares[from].Side()
	found := false
	for _, d := range diagDirs {
		r, c := row+d[0], col+d[1]
		for onBoard(r, c) && b.Squares[indexOf(r, c)] == 0 {
			r += d[0]
			c += d[1]
		}
		if !onBoard(r, c) {
			continue
		}
		victimSq := indexOf(r, c)
		if b.Squares[victimSq].Side() == side {
			continue
		}
		r += d[0]
		c += d[1]
		for onBoard(r, c) && b.Squares[indexOf(r, c)] == 0 {
			found = true
			yield(Hop{To: indexOf(r, c), Captured: victimSq})
			r += d[0]
			c += d[1]
		}
	}
	return found
}
