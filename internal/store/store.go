// Package store persists generated identities in an encrypted zstore
// collection and owns every mutation made after generation: the favorite
// flag, tags and notes.
package store

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstore"
	"github.com/zarlcorp/zident/internal/identity"
	"github.com/zarlcorp/zident/internal/registry"
)

const collectionName = "identities"

// ErrNotFound is returned when an identity does not exist.
var ErrNotFound = errors.New("identity not found")

// ErrWrongPassword is returned by Open when the password does not unlock
// an existing store.
var ErrWrongPassword = zstore.ErrWrongPassword

// Store manages the encrypted identity collection.
type Store struct {
	db  *zstore.Store
	col *zstore.Collection[identity.Identity]
}

// Open opens or initializes the store on fsys.
func Open(fsys zfilesystem.ReadWriteFileFS, password string) (*Store, error) {
	db, err := zstore.Open(fsys, []byte(password))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	col, err := zstore.NewCollection[identity.Identity](db, collectionName)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("open store: %s collection: %w", collectionName, err)
	}

	return &Store{db: db, col: col}, nil
}

// Close locks the store.
func (s *Store) Close() {
	s.db.Close()
}

// Save writes an identity, replacing any record with the same ID.
func (s *Store) Save(id identity.Identity) error {
	if id.ID == "" {
		return errors.New("save identity: empty id")
	}
	if err := s.col.Put(id.ID, id); err != nil {
		return fmt.Errorf("save identity %s: %w", id.ID, err)
	}
	return nil
}

// SaveAll writes identities in order and stops at the first failure.
func (s *Store) SaveAll(ids []identity.Identity) error {
	for _, id := range ids {
		if err := s.Save(id); err != nil {
			return err
		}
	}
	return nil
}

// Get returns a single identity by ID.
func (s *Store) Get(id string) (identity.Identity, error) {
	v, err := s.col.Get(id)
	if err == nil {
		return v, nil
	}
	if ok, lerr := s.exists(id); lerr == nil && !ok {
		return identity.Identity{}, ErrNotFound
	}
	return identity.Identity{}, fmt.Errorf("get identity %s: %w", id, err)
}

// Filter narrows List. Zero fields match everything.
type Filter struct {
	Country   registry.Code
	Favorites bool
	Tag       string
	// Query matches a case-insensitive substring of name or email.
	Query string
}

func (f Filter) match(id identity.Identity) bool {
	if f.Country != "" && id.Country != f.Country {
		return false
	}
	if f.Favorites && !id.Favorite {
		return false
	}
	if f.Tag != "" && !slices.Contains(id.Tags, normalizeTag(f.Tag)) {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(id.Name), q) && !strings.Contains(strings.ToLower(id.Email), q) {
			return false
		}
	}
	return true
}

// List returns the identities matching f, newest first.
func (s *Store) List(f Filter) ([]identity.Identity, error) {
	all, err := s.col.List()
	if err != nil {
		return nil, fmt.Errorf("list identities: %w", err)
	}

	var out []identity.Identity
	for _, id := range all {
		if f.match(id) {
			out = append(out, id)
		}
	}

	// zstore.List does not guarantee order
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Count returns the number of stored identities.
func (s *Store) Count() (int, error) {
	all, err := s.col.List()
	if err != nil {
		return 0, fmt.Errorf("count identities: %w", err)
	}
	return len(all), nil
}

// Delete removes an identity by ID.
func (s *Store) Delete(id string) error {
	ok, err := s.exists(id)
	if err != nil {
		return fmt.Errorf("delete identity %s: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}
	if err := s.col.Delete(id); err != nil {
		return fmt.Errorf("delete identity %s: %w", id, err)
	}
	return nil
}

// SetFavorite sets the favorite flag and returns the updated identity.
func (s *Store) SetFavorite(id string, favorite bool) (identity.Identity, error) {
	return s.update(id, func(v *identity.Identity) {
		v.Favorite = favorite
	})
}

// AddTags adds tags, ignoring blanks and duplicates. Tags are stored
// lower-cased and trimmed.
func (s *Store) AddTags(id string, tags ...string) (identity.Identity, error) {
	return s.update(id, func(v *identity.Identity) {
		for _, t := range tags {
			t = normalizeTag(t)
			if t == "" || slices.Contains(v.Tags, t) {
				continue
			}
			v.Tags = append(v.Tags, t)
		}
	})
}

// RemoveTags removes tags; unknown tags are ignored.
func (s *Store) RemoveTags(id string, tags ...string) (identity.Identity, error) {
	return s.update(id, func(v *identity.Identity) {
		v.Tags = slices.DeleteFunc(v.Tags, func(t string) bool {
			return slices.ContainsFunc(tags, func(r string) bool { return normalizeTag(r) == t })
		})
		if len(v.Tags) == 0 {
			v.Tags = nil
		}
	})
}

// SetNotes replaces the free-text notes.
func (s *Store) SetNotes(id, notes string) (identity.Identity, error) {
	return s.update(id, func(v *identity.Identity) {
		v.Notes = strings.TrimSpace(notes)
	})
}

func (s *Store) update(id string, fn func(*identity.Identity)) (identity.Identity, error) {
	v, err := s.Get(id)
	if err != nil {
		return identity.Identity{}, err
	}
	fn(&v)
	if err := s.Save(v); err != nil {
		return identity.Identity{}, err
	}
	return v, nil
}

func (s *Store) exists(id string) (bool, error) {
	all, err := s.col.List()
	if err != nil {
		return false, err
	}
	return slices.ContainsFunc(all, func(v identity.Identity) bool { return v.ID == id }), nil
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
