package services

import (
	"context"
	"log"
	"strconv"
	"strings"

	"wadi/internal/models/response_models"
	"wadi/internal/repositories"
	"wadi/pkg/utils"
)

// FieldsProfile controls how much of each record a search hit carries.
type FieldsProfile int

const (
	// ProfileCompact is used for prompt grounding: text fields only.
	ProfileCompact FieldsProfile = iota
	// ProfileFull is used for the client-facing search surface and
	// includes resolved image URLs.
	ProfileFull
)

const (
	GroundingLimit    = 3
	GlobalSearchLimit = 10
)

type SearchServiceInterface interface {
	Search(ctx context.Context, query string, limit int, profile FieldsProfile, origin string) ([]response_models.SearchHit, error)
	Ground(ctx context.Context, query string) (string, error)
	GlobalSearch(ctx context.Context, query, origin string) ([]response_models.SearchHit, error)
}

type SearchService struct {
	attractionRepo repositories.AttractionRepository
	lodgingRepo    repositories.LodgingRepository
	productRepo    repositories.ProductRepository
}

func NewSearchService(
	attractionRepo repositories.AttractionRepository,
	lodgingRepo repositories.LodgingRepository,
	productRepo repositories.ProductRepository,
) SearchServiceInterface {
	return &SearchService{
		attractionRepo: attractionRepo,
		lodgingRepo:    lodgingRepo,
		productRepo:    productRepo,
	}
}

// Search scans all three record types for a case-insensitive substring match
// on name or description and returns up to limit hits per type, concatenated
// in a fixed type order: attractions, lodgings, products. There is no
// relevance scoring; hits come back in store order. An empty query matches
// every record, which is how the browse-all mode works.
func (s *SearchService) Search(ctx context.Context, query string, limit int, profile FieldsProfile, origin string) ([]response_models.SearchHit, error) {
	var hits []response_models.SearchHit

	attractions, err := s.attractionRepo.ListAll(ctx)
	if err != nil {
		log.Printf("Error listing attractions: %v", err)
		return nil, utils.ErrDatabaseError
	}
	for _, a := range attractions {
		if len(hits) >= limit {
			break
		}
		if !matchesQuery(query, a.Name, a.Description) {
			continue
		}
		hit := response_models.SearchHit{
			Type:        response_models.HitTypeAttraction,
			ID:          a.ID.String(),
			Name:        a.Name,
			Description: utils.TruncateDescription(a.Description, utils.DescriptionPreviewLength),
			Category:    a.AttractionType,
		}
		if profile == ProfileFull {
			hit.Image = utils.ResolveImage(a.ImagePath, a.ImageURL, origin)
		}
		hits = append(hits, hit)
	}

	attractionHits := len(hits)
	lodgings, err := s.lodgingRepo.ListAll(ctx)
	if err != nil {
		log.Printf("Error listing lodgings: %v", err)
		return nil, utils.ErrDatabaseError
	}
	for _, l := range lodgings {
		if len(hits)-attractionHits >= limit {
			break
		}
		if !matchesQuery(query, l.Name, l.Description) {
			continue
		}
		hit := response_models.SearchHit{
			Type:        response_models.HitTypeLodging,
			ID:          l.ID.String(),
			Name:        l.Name,
			Description: utils.TruncateDescription(l.Description, utils.DescriptionPreviewLength),
			Rating:      l.Stars,
		}
		if profile == ProfileFull {
			hit.Image = utils.ResolveImage(l.ImagePath, l.ImageURL, origin)
		}
		hits = append(hits, hit)
	}

	lodgingHits := len(hits)
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return nil, utils.ErrDatabaseError
	}
	for _, p := range products {
		if len(hits)-lodgingHits >= limit {
			break
		}
		if !matchesQuery(query, p.Name, p.Description) {
			continue
		}
		price := p.Price
		hit := response_models.SearchHit{
			Type:        response_models.HitTypeProduct,
			ID:          p.ID.String(),
			Name:        p.Name,
			Description: utils.TruncateDescription(p.Description, utils.DescriptionPreviewLength),
			Price:       &price,
		}
		if profile == ProfileFull {
			hit.Image = utils.ResolveImage(p.ImagePath, p.ImageURL, origin)
		}
		hits = append(hits, hit)
	}

	return hits, nil
}

// Ground runs a compact search and flattens the hits into one short line per
// record, ready to be embedded in a model prompt.
func (s *SearchService) Ground(ctx context.Context, query string) (string, error) {
	hits, err := s.Search(ctx, query, GroundingLimit, ProfileCompact, "")
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(hits))
	for _, hit := range hits {
		switch hit.Type {
		case response_models.HitTypeAttraction:
			lines = append(lines, "Attraction: "+hit.Name+", "+hit.Description)
		case response_models.HitTypeLodging:
			lines = append(lines, "Lodging: "+hit.Name+", "+hit.Description)
		case response_models.HitTypeProduct:
			price := strconv.FormatFloat(*hit.Price, 'f', -1, 64)
			lines = append(lines, "Product: "+hit.Name+", Price: "+price+", "+hit.Description)
		}
	}

	return strings.Join(lines, "\n"), nil
}

func (s *SearchService) GlobalSearch(ctx context.Context, query, origin string) ([]response_models.SearchHit, error) {
	return s.Search(ctx, query, GlobalSearchLimit, ProfileFull, origin)
}

func matchesQuery(query, name, description string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(name), q) ||
		strings.Contains(strings.ToLower(description), q)
}
