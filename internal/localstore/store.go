// Package localstore is the console's own small bbolt database. It never
// holds roster data (the record service owns that); only cosmetic
// preferences and the per-day transfer tally live here.
package localstore

import (
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/tiagorb/enrollment-console/internal/model"
)

var (
	bucketPreferences = []byte("Preferences")
	bucketTransfers   = []byte("Transfers")

	keyPreferences = []byte("preferences")
)

type Store struct {
	db *bbolt.DB
}

func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range [][]byte{bucketPreferences, bucketTransfers} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Preferences() (model.Preferences, error) {
	prefs := model.DefaultPreferences()
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketPreferences).Get(keyPreferences)
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &prefs)
	})
	return prefs, err
}

func (s *Store) SavePreferences(prefs model.Preferences) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(prefs)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketPreferences).Put(keyPreferences, data)
	})
}

// IncrementTransfers bumps the tally for the given civil date and returns
// the new value.
func (s *Store) IncrementTransfers(day time.Time) (int64, error) {
	var count int64
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketTransfers)
		key := dayKey(day)
		count = decodeCount(b.Get(key)) + 1
		return b.Put(key, encodeCount(count))
	})
	return count, err
}

func (s *Store) TransfersOn(day time.Time) (int64, error) {
	var count int64
	err := s.db.View(func(tx *bbolt.Tx) error {
		count = decodeCount(tx.Bucket(bucketTransfers).Get(dayKey(day)))
		return nil
	})
	return count, err
}

func dayKey(day time.Time) []byte {
	return []byte(day.Format(time.DateOnly))
}

func encodeCount(n int64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(n))
	return buf
}

func decodeCount(v []byte) int64 {
	if len(v) != 8 {
		return 0
	}
	return int64(binary.BigEndian.Uint64(v))
}
