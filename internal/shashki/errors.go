package shashki

import (
	"errors"
	"fmt"
)

// 这些错误只是“拒绝”的标志：返回错误时 Game 的状态保持不变
var (
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrIllegalHop         = errors.New("illegal hop")
	ErrInapplicableAction = errors.New("inapplicable action")
	ErrGameOver           = errors.New("game over")

	// 已经吃过一个子，必须用同一个棋子吃完
	ErrCaptureInProgress = fmt.Errorf("%w: capture in progress", ErrInvalidSelection)
)
