package service

import (
	"fmt"

	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/domain"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/index"
	lru "github.com/hashicorp/golang-lru/v2"
)

type Options struct {
	// CacheSize bounds the number of memoised diagrams; 0 disables the cache.
	CacheSize int
}

// DiagramService answers view lookups over a workspace and its index. Both
// are fixed at construction, so one instance is shared by all requests.
type DiagramService struct {
	ws      *domain.Workspace
	ix      *index.Index
	catalog domain.ViewSet
	cache   *lru.Cache[string, *domain.Diagram]
}

// NewDiagramService creates a new DiagramService
func NewDiagramService(ws *domain.Workspace, ix *index.Index, opts Options) (*DiagramService, error) {
	s := &DiagramService{
		ws:      ws,
		ix:      ix,
		catalog: Catalog(ws),
	}
	if opts.CacheSize > 0 {
		cache, err := lru.New[string, *domain.Diagram](opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("diagram cache: %w", err)
		}
		s.cache = cache
	}
	return s, nil
}

// Views returns the catalog of all static views.
func (s *DiagramService) Views() domain.ViewSet {
	return s.catalog
}

// List returns the summaries for one static view kind.
func (s *DiagramService) List(kind domain.ViewKind) ([]domain.ViewSummary, error) {
	switch kind {
	case domain.ViewLandscape:
		return s.catalog.Landscapes, nil
	case domain.ViewContext:
		return s.catalog.Contexts, nil
	case domain.ViewContainer:
		return s.catalog.Containers, nil
	case domain.ViewComponent:
		return s.catalog.Components, nil
	}
	return nil, &domain.UnknownViewKindError{Kind: kind}
}

// Diagram projects the view identified by kind and key. Returned diagrams
// may be shared between callers and must not be modified.
func (s *DiagramService) Diagram(kind domain.ViewKind, key string) (*domain.Diagram, error) {
	cacheKey := string(kind) + "/" + key
	if s.cache != nil {
		if d, ok := s.cache.Get(cacheKey); ok {
			return d, nil
		}
	}

	d, err := Project(s.ws, s.ix, kind, s.ix.LinksFor(kind), key)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Add(cacheKey, d)
	}
	return d, nil
}

func (s *DiagramService) Landscape(key string) (*domain.Diagram, error) {
	return s.Diagram(domain.ViewLandscape, key)
}

func (s *DiagramService) Context(key string) (*domain.Diagram, error) {
	return s.Diagram(domain.ViewContext, key)
}

func (s *DiagramService) Container(key string) (*domain.Diagram, error) {
	return s.Diagram(domain.ViewContainer, key)
}

func (s *DiagramService) Component(key string) (*domain.Diagram, error) {
	return s.Diagram(domain.ViewComponent, key)
}

type Stats struct {
	Workspace     string      `json:"workspace"`
	Elements      int         `json:"elements"`
	Relationships int         `json:"relationships"`
	Views         int         `json:"views"`
	DynamicViews  int         `json:"dynamicViews"`
	Index         index.Stats `json:"index"`
}

func (s *DiagramService) Stats() Stats {
	v := s.ws.Views
	return Stats{
		Workspace:     s.ws.Name,
		Elements:      len(s.ws.Elements()),
		Relationships: len(s.ws.Relationships()),
		Views:         len(v.Landscapes) + len(v.Contexts) + len(v.Containers) + len(v.Components),
		DynamicViews:  len(v.Dynamics),
		Index:         s.ix.Stats(),
	}
}
