package store

import (
	"encoding/json"
	"log/slog"
	"strconv"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/quiver/internal/session"
)

type migration func(tx *bolt.Tx) error

// migrations are applied in order; the index of a migration plus one is the
// schema version it upgrades to.
var migrations = []migration{
	migrateLegacySessions,
}

func storedVersion(tx *bolt.Tx) int {
	v := tx.Bucket([]byte(metaBucket)).Get([]byte(schemaKey))

	n, err := strconv.Atoi(string(v))
	if err != nil {
		return 0
	}

	return n
}

func migrate(tx *bolt.Tx) error {
	version := storedVersion(tx)

	for i := version; i < schemaVersion && i < len(migrations); i++ {
		if err := migrations[i](tx); err != nil {
			return err
		}

		slog.Info("database migrated", slog.Int("schema_version", i+1))
	}

	if version == schemaVersion {
		return nil
	}

	return tx.Bucket([]byte(metaBucket)).Put(
		[]byte(schemaKey),
		[]byte(strconv.Itoa(schemaVersion)),
	)
}

// migrateLegacySessions rewrites every stored record in canonical form. Older
// records may be keyed by a legacy object id, store coordinates as
// xNorm/yNorm, encode inner tens as "X" or use the old kind labels.
func migrateLegacySessions(tx *bolt.Tx) error {
	bucket := tx.Bucket([]byte(sessionBucket))

	type rewrite struct {
		oldKey []byte
		sess   session.Session
	}

	var pending []rewrite

	err := bucket.ForEach(func(k, v []byte) error {
		s := session.NormalizeStored(session.DecodeRecord(v))

		pending = append(pending, rewrite{
			oldKey: append([]byte(nil), k...),
			sess:   s,
		})

		return nil
	})
	if err != nil {
		return err
	}

	for _, r := range pending {
		s := r.sess

		if s.ID == "" {
			s.ID = string(r.oldKey)
		}

		if s.ID == "" {
			s.ID = NewID()
		}

		value, err := json.Marshal(&s)
		if err != nil {
			return err
		}

		if s.ID != string(r.oldKey) {
			if err := bucket.Delete(r.oldKey); err != nil {
				return err
			}
		}

		if err := bucket.Put([]byte(s.ID), value); err != nil {
			return err
		}
	}

	return nil
}
