package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"unitrade/models"
)

// MemoryStore keeps users and transactions in process memory behind a
// single RWMutex. Suited to demos and tests; nothing survives a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	users   map[string]*models.User // keyed by id
	byEmail map[string]string       // lowercased email -> id
	ledger  map[string][]models.Transaction
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   make(map[string]*models.User),
		byEmail: make(map[string]string),
		ledger:  make(map[string][]models.Transaction),
	}
}

func (s *MemoryStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(user.Email)
	if _, exists := s.byEmail[key]; exists {
		return ErrEmailTaken
	}
	copied := *user
	s.users[user.ID] = &copied
	s.byEmail[key] = user.ID
	return nil
}

func (s *MemoryStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *s.users[id]
	return &copied, nil
}

func (s *MemoryStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}

// Users returns the memory-backed UserRepository view of the store.
func (s *MemoryStore) Users() UserRepository { return s }

// Transactions returns the memory-backed TransactionRepository view.
func (s *MemoryStore) Transactions() TransactionRepository { return (*memoryLedger)(s) }

// memoryLedger shares the MemoryStore state so both repositories sit
// behind the same mutex.
type memoryLedger MemoryStore

func (l *memoryLedger) Create(ctx context.Context, tx *models.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ledger[tx.UserID] = append(l.ledger[tx.UserID], *tx)
	return nil
}

func (l *memoryLedger) ListByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	txs := make([]models.Transaction, len(l.ledger[userID]))
	copy(txs, l.ledger[userID])
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date.After(txs[j].Date) })
	return txs, nil
}
