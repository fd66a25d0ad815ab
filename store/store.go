// Package store persists archery sessions in a local BoltDB database
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/quiver/internal/session"
)

const (
	sessionBucket = "sessions"
	metaBucket    = "meta"
	schemaKey     = "schema_version"
)

// schemaVersion is bumped whenever stored records need to be rewritten.
const schemaVersion = 1

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// NewClient opens the database at dbPath, creating it and its buckets if
// necessary, and upgrades records written by older versions.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{sessionBucket, metaBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}

		return migrate(tx)
	})
	if err != nil {
		db.Close()
		return nil, errMigrate.Wrap(err)
	}

	return &Client{db}, nil
}

// openDB creates or opens a database and locks it.
func openDB(dbPath string) (*bolt.DB, error) {
	var (
		fileMode fs.FileMode = 0o600
		dirMode  fs.FileMode = 0o750
	)

	if err := os.MkdirAll(filepath.Dir(dbPath), dirMode); err != nil {
		return nil, errOpenDB.Wrap(err)
	}

	db, err := bolt.Open(
		dbPath,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errQuiverRunning
		}

		return nil, errOpenDB.Wrap(err)
	}

	return db, nil
}

// NewID returns a fresh session id.
func NewID() string {
	return uuid.NewString()
}

func decode(v []byte) session.Session {
	return session.NormalizeStored(session.DecodeRecord(v))
}

func (c *Client) List() ([]session.Session, error) {
	return c.Find(nil)
}

func (c *Client) Find(q *Query) ([]session.Session, error) {
	var sessions []session.Session

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).ForEach(func(k, v []byte) error {
			s := decode(v)

			if s.ID == "" {
				s.ID = string(k)
			}

			if q.Match(&s) {
				sessions = append(sessions, s)
			}

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(sessions, func(a, b session.Session) int {
		return a.Date.Compare(b.Date)
	})

	return sessions, nil
}

func (c *Client) Get(id string) (*session.Session, error) {
	var s session.Session

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(sessionBucket)).Get([]byte(id))
		if v == nil {
			return errSessionNotFound.Fmt(id)
		}

		s = session.Normalize(session.DecodeRecord(v))
		s.ID = id

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// Create assigns an id to sess (unless it already has one) and saves it.
func (c *Client) Create(sess *session.Session) error {
	if sess.ID == "" {
		sess.ID = NewID()
	}

	if sess.Date.IsZero() {
		sess.Date = time.Now()
	}

	*sess = sess.Recompute()

	value, err := json.Marshal(sess)
	if err != nil {
		return errSaveSession.Fmt(sess.ID).Wrap(err)
	}

	err = c.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))

		if b.Get([]byte(sess.ID)) != nil {
			return errSessionExists.Fmt(sess.ID)
		}

		return b.Put([]byte(sess.ID), value)
	})
	if err != nil {
		return err
	}

	slog.Info("session created", slog.String("session_id", sess.ID))

	return nil
}

// Update overwrites the session stored under id.
func (c *Client) Update(id string, sess *session.Session) error {
	s := sess.Recompute()
	s.ID = id

	value, err := json.Marshal(&s)
	if err != nil {
		return errSaveSession.Fmt(id).Wrap(err)
	}

	return c.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))

		if b.Get([]byte(id)) == nil {
			return errSessionNotFound.Fmt(id)
		}

		return b.Put([]byte(id), value)
	})
}

// Save updates sess in place. It satisfies the autosave Saver interface.
func (c *Client) Save(sess *session.Session) error {
	return c.Update(sess.ID, sess)
}

// Delete removes the sessions with the given ids. It fails without deleting
// anything if one of the ids does not exist.
func (c *Client) Delete(ids ...string) error {
	err := c.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))

		for _, id := range ids {
			if b.Get([]byte(id)) == nil {
				return errSessionNotFound.Fmt(id)
			}

			if err := b.Delete([]byte(id)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("sessions deleted", slog.Any("session_ids", ids))

	return nil
}
