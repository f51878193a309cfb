package server

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/technopolitica/morty/internal/db"
	"github.com/technopolitica/morty/internal/domain"
)

type savedKey struct {
	userID      uuid.UUID
	characterID int
}

// fakeRepository is an in-memory domain.CharacterRepository that follows the
// error contract of db.Repository.
type fakeRepository struct {
	mu         sync.Mutex
	characters map[int]domain.Character
	saved      map[savedKey]time.Time
	failWith   error

	// failUpsertWith only breaks cache writes.
	failUpsertWith error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		characters: map[int]domain.Character{},
		saved:      map[savedKey]time.Time{},
	}
}

func (repo *fakeRepository) FetchCharacter(ctx context.Context, id int) (character domain.Character, err error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.failWith != nil {
		err = repo.failWith
		return
	}
	character, ok := repo.characters[id]
	if !ok {
		err = db.ErrNotFound
	}
	return
}

func (repo *fakeRepository) UpsertCharacters(ctx context.Context, characters []domain.Character) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.failWith != nil {
		return repo.failWith
	}
	if repo.failUpsertWith != nil {
		return repo.failUpsertWith
	}
	for _, character := range characters {
		repo.characters[character.ID] = character
	}
	return nil
}

func (repo *fakeRepository) SaveCharacter(ctx context.Context, params domain.SaveCharacterParams) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.failWith != nil {
		return repo.failWith
	}
	if _, ok := repo.characters[params.CharacterID]; !ok {
		return db.ErrNotFound
	}
	key := savedKey{params.UserID, params.CharacterID}
	if _, ok := repo.saved[key]; ok {
		return db.ErrConflict
	}
	repo.saved[key] = time.Now().Add(time.Duration(len(repo.saved)) * time.Millisecond)
	return nil
}

func (repo *fakeRepository) UnsaveCharacter(ctx context.Context, params domain.SaveCharacterParams) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.failWith != nil {
		return repo.failWith
	}
	key := savedKey{params.UserID, params.CharacterID}
	if _, ok := repo.saved[key]; !ok {
		return db.ErrNotFound
	}
	delete(repo.saved, key)
	return nil
}

func (repo *fakeRepository) ListSavedCharacters(ctx context.Context, params domain.ListSavedCharactersParams) (page domain.Page[domain.SavedCharacter], err error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.failWith != nil {
		err = repo.failWith
		return
	}
	var all []domain.SavedCharacter
	for key, savedAt := range repo.saved {
		if key.userID != params.UserID {
			continue
		}
		all = append(all, domain.SavedCharacter{
			UserID:    key.userID,
			Character: repo.characters[key.characterID],
			SavedAt:   savedAt,
		})
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].SavedAt.After(all[j].SavedAt)
	})
	page.Total = int64(len(all))
	start := min(int(params.Offset), len(all))
	end := min(start+int(params.Limit), len(all))
	page.Items = all[start:end]
	return
}

var errDatabaseDown = errors.New("database is down")
