package locale

import (
	"errors"
	"sync"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

// Service stores each session's language choice for the lifetime of the
// process. Last write wins; unknown sessions read as the default.
type Service struct {
	mu    sync.RWMutex
	langs map[string]string
}

func NewService() *Service {
	return &Service{langs: make(map[string]string)}
}

func (s *Service) Language(sessionID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if lang, ok := s.langs[sessionID]; ok {
		return lang
	}
	return DefaultLanguage
}

func (s *Service) SetLanguage(sessionID, lang string) error {
	if !Supported(lang) {
		return ErrUnsupportedLanguage
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.langs[sessionID] = lang
	return nil
}

// Translate resolves key in the session's active language.
func (s *Service) Translate(sessionID, key string) string {
	return T(s.Language(sessionID), key)
}
