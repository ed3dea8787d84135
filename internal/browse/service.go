package browse

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/tamonkoch/drink-shop-backend/internal/catalog"
)

// Service answers filtered/sorted catalog views. Results are cached in a
// bounded LRU; the catalog is immutable, so entries never go stale. The
// cache is a performance optimization only; Browse is correct without it.
type Service struct {
	catalog catalog.ServiceInterface
	cache   *lru.Cache[string, []catalog.Product]
}

func NewService(cat catalog.ServiceInterface, cacheSize int) (*Service, error) {
	cache, err := lru.New[string, []catalog.Product](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Service{catalog: cat, cache: cache}, nil
}

// Browse returns the view for params, computing and caching it on a miss.
func (s *Service) Browse(p Params) []catalog.Product {
	k := p.key()
	if cached, ok := s.cache.Get(k); ok {
		out := make([]catalog.Product, len(cached))
		copy(out, cached)
		return out
	}

	result := Apply(s.catalog.List(), p)
	s.cache.Add(k, result)

	out := make([]catalog.Product, len(result))
	copy(out, result)
	return out
}

// CacheLen reports how many parameter combinations are currently cached.
func (s *Service) CacheLen() int {
	return s.cache.Len()
}
