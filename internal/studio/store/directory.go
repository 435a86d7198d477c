// Package store implements the flat-file client directory: a single index
// document mapping email to record key, plus one JSON record per client, both
// kept in a key-addressed object store.
//
// The index/record invariant (every index value points at a live record,
// every reachable record has exactly one index entry) cannot be enforced
// atomically by the storage capability. It is maintained by write ordering
// (record before index on create, record delete before unindex on delete) and
// by serializing all directory mutations through a per-process mutex. The
// reconciler repairs whatever still slips through.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fotosdotap/studio/internal/studio/domain"
	"github.com/fotosdotap/studio/pkg/blob"
	"github.com/fotosdotap/studio/pkg/idx"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	ErrCorrupted     = errors.New("store: corrupted record")
)

const (
	// IndexKey is the storage key of the directory index document.
	IndexKey = "clientes_index.json"

	// RecordPrefix namespaces every client record key.
	RecordPrefix = "clientes/"
)

// Directory is the index-plus-records structure every login, registration and
// admin CRUD operation pivots through.
type Directory struct {
	blobs blob.Store

	// mu serializes mutations so two in-process writers can never interleave
	// an index read-modify-rewrite. Cross-process races remain possible; the
	// deployment runs a single writer process.
	mu sync.Mutex
}

func NewDirectory(blobs blob.Store) *Directory {
	return &Directory{blobs: blobs}
}

// Index loads the whole index document. An absent document is an empty
// index, not an error; an unparseable one is a storage-level failure.
func (d *Directory) Index(ctx context.Context) (map[string]string, error) {
	data, err := d.blobs.Get(ctx, IndexKey)
	if errors.Is(err, blob.ErrNotFound) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch index: %w", err)
	}

	index := map[string]string{}
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}
	return index, nil
}

// Lookup resolves an email to its record key.
func (d *Directory) Lookup(ctx context.Context, email string) (string, error) {
	index, err := d.Index(ctx)
	if err != nil {
		return "", err
	}
	key, ok := index[email]
	if !ok {
		return "", ErrNotFound
	}
	return key, nil
}

// GetRecord fetches and parses one client record. Unparseable bytes and
// records missing their email are ErrCorrupted, never silently defaulted.
func (d *Directory) GetRecord(ctx context.Context, key string) (domain.Cliente, error) {
	data, err := d.blobs.Get(ctx, key)
	if errors.Is(err, blob.ErrNotFound) {
		return domain.Cliente{}, ErrNotFound
	}
	if err != nil {
		return domain.Cliente{}, fmt.Errorf("fetch record %s: %w", key, err)
	}

	var c domain.Cliente
	if err := json.Unmarshal(data, &c); err != nil {
		return domain.Cliente{}, fmt.Errorf("%w: %s: %v", ErrCorrupted, key, err)
	}
	if c.Email == "" {
		return domain.Cliente{}, fmt.Errorf("%w: %s: missing email", ErrCorrupted, key)
	}
	return c, nil
}

// GetByEmail resolves the index entry and loads the record behind it. A
// dangling index entry reads as ErrNotFound.
func (d *Directory) GetByEmail(ctx context.Context, email string) (domain.Cliente, string, error) {
	key, err := d.Lookup(ctx, email)
	if err != nil {
		return domain.Cliente{}, "", err
	}
	c, err := d.GetRecord(ctx, key)
	if err != nil {
		return domain.Cliente{}, key, err
	}
	return c, key, nil
}

// CreateClient writes a fresh record and then inserts its index entry.
// Record-before-index ordering: a crash in between leaves an orphan record,
// not a dangling index pointer.
func (d *Directory) CreateClient(ctx context.Context, c domain.Cliente) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	index, err := d.Index(ctx)
	if err != nil {
		return "", err
	}
	if _, ok := index[c.Email]; ok {
		return "", ErrAlreadyExists
	}

	key := newRecordKey(c.Nome, c.Email)
	if c.Servicos == nil {
		c.Servicos = []string{}
	}
	if err := d.putRecord(ctx, key, c); err != nil {
		return "", err
	}

	index[c.Email] = key
	if err := d.writeIndex(ctx, index); err != nil {
		return "", err
	}
	return key, nil
}

// UpdateProfile mutates name and phone only. Credential and service
// references can never ride through this path.
func (d *Directory) UpdateProfile(ctx context.Context, email, nome, telefone string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	c, key, err := d.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	c.Nome = nome
	c.Telefone = telefone
	return d.putRecord(ctx, key, c)
}

// RegisterCredential stores the (already hashed) credential on the record.
// It fails with ErrAlreadyExists when a credential is already registered; the
// check sits inside the mutation lock so two concurrent registrations can't
// both pass it.
func (d *Directory) RegisterCredential(ctx context.Context, email, hash string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	c, key, err := d.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if c.HasCredential() {
		return ErrAlreadyExists
	}

	c.Senha = hash
	return d.putRecord(ctx, key, c)
}

// DeleteByEmail removes the record first and the index entry second, so a
// crash in between leaves a dangling entry the reconciler can repair rather
// than an unreachable record pretending to still exist.
func (d *Directory) DeleteByEmail(ctx context.Context, email string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	index, err := d.Index(ctx)
	if err != nil {
		return "", err
	}
	key, ok := index[email]
	if !ok {
		return "", ErrNotFound
	}

	if err := d.blobs.Delete(ctx, key); err != nil {
		return "", fmt.Errorf("delete record %s: %w", key, err)
	}

	delete(index, email)
	if err := d.writeIndex(ctx, index); err != nil {
		return "", err
	}
	return key, nil
}

// RemoveEntry drops an index entry without touching any record, but only if
// the entry still points at key. The reconciler decides from an unlocked
// snapshot, so by the time it gets here the email may have been deleted and
// recreated with a live record; the key check keeps that entry intact.
// Removing an absent or re-pointed entry is a no-op.
func (d *Directory) RemoveEntry(ctx context.Context, email, key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	index, err := d.Index(ctx)
	if err != nil {
		return err
	}
	if index[email] != key {
		return nil
	}
	delete(index, email)
	return d.writeIndex(ctx, index)
}

// ListRecordKeys returns every stored record key, indexed or not.
func (d *Directory) ListRecordKeys(ctx context.Context) ([]string, error) {
	return d.blobs.List(ctx, RecordPrefix)
}

// Ping reports whether the underlying storage is reachable.
func (d *Directory) Ping(ctx context.Context) error {
	return d.blobs.Ping(ctx)
}

func (d *Directory) putRecord(ctx context.Context, key string, c domain.Cliente) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record %s: %w", key, err)
	}
	if err := d.blobs.Put(ctx, key, data); err != nil {
		return fmt.Errorf("write record %s: %w", key, err)
	}
	return nil
}

func (d *Directory) writeIndex(ctx context.Context, index map[string]string) error {
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}
	if err := d.blobs.Put(ctx, IndexKey, data); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// newRecordKey names a record with a ULID plus a readability slug from the
// client's name (or email local part).
func newRecordKey(nome, email string) string {
	base := nome
	if base == "" {
		base, _, _ = strings.Cut(email, "@")
	}
	slug := slugify(base)
	if slug == "" {
		slug = "cliente"
	}
	return RecordPrefix + strings.ToLower(idx.New().String()) + "-" + slug + ".json"
}

func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
