// Package suggest wraps the prefix tree behind a single lock so it can be
// loaded once at startup and queried afterwards, including from concurrent
// HTTP handlers.
package suggest

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/SoySerhio507/Search-Filter/internal/trie"
)

// Service owns the tree. The tree itself provides no synchronization, so
// every insert and query goes through the one mutex here.
type Service struct {
	mu     sync.RWMutex
	tree   *trie.PrefixTree
	logger zerolog.Logger
}

// NewService creates a service with an empty tree.
func NewService(logger zerolog.Logger) *Service {
	return &Service{
		tree:   trie.New(),
		logger: logger,
	}
}

// Load inserts every word from the source into the tree and returns how many
// were accepted. Malformed entries are skipped with a warning rather than
// aborting the whole load.
func (s *Service) Load(words []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	accepted := 0
	for _, word := range words {
		if err := s.tree.Insert(word); err != nil {
			s.logger.Warn().Err(err).Str("word", word).Msg("skipping word")
			continue
		}
		accepted++
	}

	s.logger.Info().
		Int("accepted", accepted).
		Int("stored", s.tree.Len()).
		Msg("wordlist loaded")
	return accepted
}

// Add stores a single word.
func (s *Service) Add(word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Insert(word)
}

// Suggest returns every stored word starting with prefix. An empty prefix
// returns everything.
func (s *Service) Suggest(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Query(prefix)
}

// Words returns every stored word in tree pre-order.
func (s *Service) Words() []string {
	return s.Suggest("")
}

// Len returns the number of distinct stored words.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Len()
}

// Dump renders the underlying tree in indented form.
func (s *Service) Dump() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.String()
}

// Empty reports whether nothing has been stored yet.
func (s *Service) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.IsEmpty()
}
