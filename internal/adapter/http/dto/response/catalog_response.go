package response

import "bidright/internal/domain/entities"

// CatalogResponse is the subset of the rate catalog a client needs to build
// a selection form.
type CatalogResponse struct {
	Industries   []entities.Industry        `json:"industries"`
	ProjectTypes []entities.ProjectType     `json:"project_types"`
	Features     []entities.FeatureModifier `json:"features"`
	Complexities []entities.ComplexityTier  `json:"complexities"`
	Locations    []entities.Location        `json:"locations"`
}

func FromCatalog(c *entities.RateCatalog) CatalogResponse {
	if c == nil {
		return CatalogResponse{}
	}
	return CatalogResponse{
		Industries:   c.Industries,
		ProjectTypes: c.ProjectTypes,
		Features:     c.Features,
		Complexities: c.Complexities,
		Locations:    c.Locations,
	}
}
