package catalog

// ServiceInterface lets other packages depend on the catalog without the
// concrete service.
type ServiceInterface interface {
	List() []Product
	GetByID(id int) (Product, error)
	GetBySlug(slug string) (Product, error)
	ListByIDs(ids []int) []Product
	Categories() []Category
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Product {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetBySlug(slug string) (Product, error) {
	if slug == "" {
		return Product{}, ErrNotFound
	}
	return s.repo.GetBySlug(slug)
}

func (s *Service) ListByIDs(ids []int) []Product {
	return s.repo.ListByIDs(ids)
}

func (s *Service) Categories() []Category {
	return s.repo.Categories()
}
