// Package memory is an in-process implementation of the repository contracts.
// It backs the HTTP and feature tests and a database-less local run.
package memory

import (
	"bytes"
	"context"
	"slices"
	"sync"
	"time"

	"bookmarks/internal/domain/entity"
	domainerrors "bookmarks/internal/domain/errors"
	"bookmarks/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Store keeps users and bookmarks in maps guarded by a single RWMutex.
// Email uniqueness is enforced inside the write lock, mirroring a unique index.
type Store struct {
	mu        sync.RWMutex
	users     map[uuid.UUID]*entity.User
	byEmail   map[string]uuid.UUID
	bookmarks map[uuid.UUID]*entity.Bookmark

	// txMu serializes Execute calls.
	txMu sync.Mutex
	now  func() time.Time
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		users:     make(map[uuid.UUID]*entity.User),
		byEmail:   make(map[string]uuid.UUID),
		bookmarks: make(map[uuid.UUID]*entity.Bookmark),
		now:       time.Now,
	}
}

// UserRepo returns the store as a repository.UserRepository.
func (s *Store) UserRepo() repository.UserRepository {
	return &userRepository{store: s}
}

// BookmarkRepo returns the store as a repository.BookmarkRepository.
func (s *Store) BookmarkRepo() repository.BookmarkRepository {
	return &bookmarkRepository{store: s}
}

// NewUserRepository adapts s for fx providers.
func NewUserRepository(s *Store) repository.UserRepository {
	return s.UserRepo()
}

// NewBookmarkRepository adapts s for fx providers.
func NewBookmarkRepository(s *Store) repository.BookmarkRepository {
	return s.BookmarkRepo()
}

// NewTransactionManager adapts s for fx providers.
func NewTransactionManager(s *Store) repository.TransactionManager {
	return s
}

// Execute runs fn against the store. If fn fails or panics every change made
// through the factory it received is undone. Writes made outside that factory
// are left alone.
func (s *Store) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	undo := newJournal()
	committed := false
	defer func() {
		if !committed {
			s.rollback(undo)
		}
	}()

	if err := fn(&txFactory{store: s, journal: undo}); err != nil {
		return err
	}
	committed = true

	return nil
}

// txFactory hands out repositories that journal every key they write.
type txFactory struct {
	store   *Store
	journal *journal
}

func (f *txFactory) UserRepo() repository.UserRepository {
	return &userRepository{store: f.store, journal: f.journal}
}

func (f *txFactory) BookmarkRepo() repository.BookmarkRepository {
	return &bookmarkRepository{store: f.store, journal: f.journal}
}

type emailEntry struct {
	id      uuid.UUID
	present bool
}

// journal holds the value each key had before the transaction first wrote it.
// A nil entity means the key did not exist. All methods require s.mu held for writing.
type journal struct {
	users     map[uuid.UUID]*entity.User
	byEmail   map[string]emailEntry
	bookmarks map[uuid.UUID]*entity.Bookmark
}

func newJournal() *journal {
	return &journal{
		users:     make(map[uuid.UUID]*entity.User),
		byEmail:   make(map[string]emailEntry),
		bookmarks: make(map[uuid.UUID]*entity.Bookmark),
	}
}

func (j *journal) user(s *Store, id uuid.UUID) {
	if j == nil {
		return
	}
	if _, seen := j.users[id]; !seen {
		j.users[id] = s.users[id]
	}
}

func (j *journal) email(s *Store, email string) {
	if j == nil {
		return
	}
	if _, seen := j.byEmail[email]; !seen {
		id, ok := s.byEmail[email]
		j.byEmail[email] = emailEntry{id: id, present: ok}
	}
}

func (j *journal) bookmark(s *Store, id uuid.UUID) {
	if j == nil {
		return
	}
	if _, seen := j.bookmarks[id]; !seen {
		j.bookmarks[id] = s.bookmarks[id]
	}
}

func (s *Store) rollback(j *journal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, prev := range j.users {
		if prev == nil {
			delete(s.users, id)
		} else {
			s.users[id] = prev
		}
	}
	for email, prev := range j.byEmail {
		if prev.present {
			s.byEmail[email] = prev.id
		} else {
			delete(s.byEmail, email)
		}
	}
	for id, prev := range j.bookmarks {
		if prev == nil {
			delete(s.bookmarks, id)
		} else {
			s.bookmarks[id] = prev
		}
	}
}

type userRepository struct {
	store   *Store
	journal *journal
}

func (r *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(r.store.users[id]), nil
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.byEmail[user.Email]; exists {
		return errors.WithStack(domainerrors.ErrUserAlreadyExists)
	}

	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate user id")
		}
		user.ID = id
	}
	now := r.store.now()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.journal.user(r.store, user.ID)
	r.journal.email(r.store, user.Email)
	r.store.users[user.ID] = cloneUser(user)
	r.store.byEmail[user.Email] = user.ID

	return nil
}

func (r *userRepository) UpdateProfile(_ context.Context, id uuid.UUID, changes entity.UserChanges) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	if changes.Email != nil && *changes.Email != current.Email {
		if _, taken := r.store.byEmail[*changes.Email]; taken {
			return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
		}
	}

	updated := cloneUser(current)
	changes.Apply(updated)
	if !changes.IsEmpty() {
		updated.UpdatedAt = r.store.now()
	}

	r.journal.user(r.store, id)
	r.journal.email(r.store, current.Email)
	r.journal.email(r.store, updated.Email)
	delete(r.store.byEmail, current.Email)
	r.store.byEmail[updated.Email] = id
	r.store.users[id] = updated

	return cloneUser(updated), nil
}

type bookmarkRepository struct {
	store   *Store
	journal *journal
}

func (r *bookmarkRepository) Create(_ context.Context, bookmark *entity.Bookmark) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[bookmark.UserID]; !ok {
		return errors.WithStack(domainerrors.ErrUserNotFound)
	}

	if bookmark.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate bookmark id")
		}
		bookmark.ID = id
	}
	now := r.store.now()
	bookmark.CreatedAt = now
	bookmark.UpdatedAt = now

	r.journal.bookmark(r.store, bookmark.ID)
	r.store.bookmarks[bookmark.ID] = cloneBookmark(bookmark)

	return nil
}

func (r *bookmarkRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Bookmark, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	bookmark, ok := r.store.bookmarks[id]
	if !ok {
		return nil, repository.ErrBookmarkNotFound
	}

	return cloneBookmark(bookmark), nil
}

func (r *bookmarkRepository) FindByIDAndOwner(_ context.Context, id, userID uuid.UUID) (*entity.Bookmark, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	bookmark, ok := r.store.bookmarks[id]
	if !ok || !bookmark.IsOwnedBy(userID) {
		return nil, repository.ErrBookmarkNotFound
	}

	return cloneBookmark(bookmark), nil
}

func (r *bookmarkRepository) ListByOwner(_ context.Context, userID uuid.UUID) ([]*entity.Bookmark, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*entity.Bookmark, 0)
	for _, bookmark := range r.store.bookmarks {
		if bookmark.IsOwnedBy(userID) {
			result = append(result, cloneBookmark(bookmark))
		}
	}

	slices.SortFunc(result, func(a, b *entity.Bookmark) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return bytes.Compare(b.ID[:], a.ID[:])
	})

	return result, nil
}

func (r *bookmarkRepository) Update(_ context.Context, id uuid.UUID, changes entity.BookmarkChanges) (*entity.Bookmark, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.bookmarks[id]
	if !ok {
		return nil, repository.ErrBookmarkNotFound
	}

	updated := cloneBookmark(current)
	changes.Apply(updated)
	if !changes.IsEmpty() {
		updated.UpdatedAt = r.store.now()
	}
	r.journal.bookmark(r.store, id)
	r.store.bookmarks[id] = updated

	return cloneBookmark(updated), nil
}

func (r *bookmarkRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.bookmarks[id]; !ok {
		return repository.ErrBookmarkNotFound
	}
	r.journal.bookmark(r.store, id)
	delete(r.store.bookmarks, id)

	return nil
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	c := *u
	c.FirstName = cloneString(u.FirstName)
	c.LastName = cloneString(u.LastName)

	return &c
}

func cloneBookmark(b *entity.Bookmark) *entity.Bookmark {
	if b == nil {
		return nil
	}
	c := *b
	c.Description = cloneString(b.Description)

	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s

	return &v
}
