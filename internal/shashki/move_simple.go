package shashki

// GenerateSimpleMoves 不吃子的普通走法（落点列表）
func GenerateSimpleMoves(b *Board, from int) []int {
	pc := b.Squares[from]
	if pc == 0 {
		return nil
	}
	var out []int
	if pc.IsKing() {
		genKingMoves(b, from, &out)
	} else {
		genManMoves(b, from, &out)
	}
	return out
}

// 普通棋子：只能向前斜走一格
func genManMoves(b *Board, from int, moves *[]int) {
	row, col := rowOf(from), colOf(from)
	dir := manDir(b.Squares[from].Side())
	for _, dc := range []int{-1, +1} {
		r, c := row+dir, col+dc
		if !onBoard(r, c) {
			continue
		}
		to := indexOf(r, c)
		if b.Squares[to] == 0 {
			*moves = append(*moves, to)
		}
	}
}

// 王棋：四个斜线方向滑行，遇子或边界停止（该格不算）
func genKingMoves(b *Board, from int, moves *[]int) {
	row, col := rowOf(from), colOf(from)
	for _, d := range diagDirs {
		r, c := row+d[0], col+d[1]
		for onBoard(r, c) {
			to := indexOf(r, c)
			if b.Squares[to] != 0 {
				break
			}
			*moves = append(*moves, to)
			r += d[0]
			c += d[1]
		}
	}
}
