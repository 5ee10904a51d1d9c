package storage

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"shashki/internal/shashki"
)

const keyTally = "tally"

// Tally 已结束对局的胜负统计
type Tally struct {
	GamesPlayed int       `json:"games_played"`
	WhiteWins   int       `json:"white_wins"`
	BlackWins   int       `json:"black_wins"`
	LastResult  time.Time `json:"last_result"`
}

// Scoreboard 用 BadgerDB 保存胜负统计（不保存棋谱）
type Scoreboard struct {
	db *badger.DB
}

// Open 打开 dir 下的数据库；dir 为空时使用内存库
func Open(dir string) (*Scoreboard, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Scoreboard{db: db}, nil
}

func (s *Scoreboard) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordResult 记一局胜者。多局同时结束时事务会冲突，冲突就重做。
func (s *Scoreboard) RecordResult(winner shashki.Side) error {
	if winner != shashki.White && winner != shashki.Black {
		return errors.New("storage: no winner to record")
	}
	for {
		err := s.recordOnce(winner)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
}

func (s *Scoreboard) recordOnce(winner shashki.Side) error {
	return s.db.Update(func(txn *badger.Txn) error {
		t, err := loadTally(txn)
		if err != nil {
			return err
		}
		t.GamesPlayed++
		if winner == shashki.White {
			t.WhiteWins++
		} else {
			t.BlackWins++
		}
		t.LastResult = time.Now()

		data, err := json.Marshal(t)
		if err != nil {
			return err
		}
		return txn.Set([]byte(keyTally), data)
	})
}

// Tally 读取统计，没有记录时返回零值
func (s *Scoreboard) Tally() (Tally, error) {
	var t Tally
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		t, err = loadTally(txn)
		return err
	})
	return t, err
}

func loadTally(txn *badger.Txn) (Tally, error) {
	var t Tally
	item, err := txn.Get([]byte(keyTally))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return t, nil
	}
	if err != nil {
		return t, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &t)
	})
	return t, err
}
