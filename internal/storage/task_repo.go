package storage

import (
	"encoding/json"
	"strconv"

	badger "github.com/dgraph-io/badger/v4"

	"taskline/internal/model"
)

// TaskRepo persists the ordered task list. It satisfies the
// collection.Store contract: Load returns the tasks in id order plus the
// highest identifier ever assigned, Save replaces the stored sequence.
type TaskRepo struct {
	db *DB
}

// NewTaskRepo creates a new task repository.
func NewTaskRepo(db *DB) *TaskRepo {
	return &TaskRepo{db: db}
}

// Load retrieves all tasks in id order and the highest identifier ever
// assigned, used to seed the collection's id counter.
func (r *TaskRepo) Load() ([]*model.Task, uint64, error) {
	tasks, err := GetAllByPrefix(r.db, model.PrefixTask+":", func() *model.Task {
		return &model.Task{}
	})
	if err != nil {
		return nil, 0, err
	}

	lastID, err := r.loadSeq()
	if err != nil {
		return nil, 0, err
	}

	// The sequence key may lag behind after a crash; never hand out an
	// id at or below one already in use.
	for _, t := range tasks {
		if t.ID > lastID {
			lastID = t.ID
		}
	}

	return tasks, lastID, nil
}

// Save atomically replaces the stored task sequence and records the
// highest identifier ever assigned.
func (r *TaskRepo) Save(tasks []*model.Task, lastID uint64) error {
	return r.db.db.Update(func(txn *badger.Txn) error {
		// Drop stale task keys first so deletions stick.
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		prefix := []byte(model.PrefixTask + ":")

		var stale [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := make([]byte, len(it.Item().Key()))
			copy(key, it.Item().Key())
			stale = append(stale, key)
		}
		it.Close()

		for _, key := range stale {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}

		for _, t := range tasks {
			t.Key = model.GenerateTaskKey(t.MustID())
			data, err := json.Marshal(t)
			if err != nil {
				return err
			}
			if err := txn.Set([]byte(t.Key), data); err != nil {
				return err
			}
		}

		return txn.Set([]byte(model.KeyTaskSeq), []byte(strconv.FormatUint(lastID, 10)))
	})
}

// loadSeq reads the persisted id counter, zero if unset.
func (r *TaskRepo) loadSeq() (uint64, error) {
	var lastID uint64
	err := r.db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(model.KeyTaskSeq))
		if err != nil {
			if IsErrKeyNotFound(err) {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			n, err := strconv.ParseUint(string(val), 10, 64)
			if err != nil {
				return err
			}
			lastID = n
			return nil
		})
	})
	return lastID, err
}
