// Package mock holds the statically bundled catalog served whenever the
// live source is unavailable or mock mode is switched on. The storefront
// must always have a renderable catalog, so this data is the floor it
// can never fall below.
package mock

import "github.com/lina-design/storefront/internal/catalog/domain"

// Categories returns the bundled category list.
func Categories() []domain.Category {
	return []domain.Category{
		{ID: "1", Name: "Cadeiras", Image: "https://picsum.photos/seed/chair/100/100"},
		{ID: "2", Name: "Mesas", Image: "https://picsum.photos/seed/table/100/100"},
		{ID: "3", Name: "Sofás", Image: "https://picsum.photos/seed/sofa/100/100"},
		{ID: "4", Name: "Decoração", Image: "https://picsum.photos/seed/decor/100/100"},
		{ID: "5", Name: "Iluminação", Image: "https://picsum.photos/seed/lamp/100/100"},
	}
}

// Products returns the bundled product list.
func Products() []domain.Product {
	return []domain.Product{
		{
			ID:          "101",
			Name:        "Cadeira Eames Wood",
			Price:       249.90,
			OldPrice:    price(329.00),
			Category:    "Cadeiras",
			Image:       "https://picsum.photos/seed/eames/400/400",
			Description: "Design clássico de Charles e Ray Eames. Assento em polipropileno e base em madeira maciça.",
			Rating:      4.8,
		},
		{
			ID:          "102",
			Name:        "Mesa de Jantar Industrial",
			Price:       1290.00,
			Category:    "Mesas",
			Image:       "https://picsum.photos/seed/tablewood/400/400",
			Description: "Mesa com tampo de madeira maciça e pés de ferro estilo industrial. Perfeita para 6 lugares.",
			Rating:      4.9,
		},
		{
			ID:          "103",
			Name:        "Sofá Retrátil 3 Lugares",
			Price:       2599.00,
			OldPrice:    price(3100.00),
			Category:    "Sofás",
			Image:       "https://picsum.photos/seed/sofa1/400/400",
			Description: "Conforto absoluto com assento retrátil e encosto reclinável. Tecido Suede aveludado.",
			Rating:      4.7,
		},
		{
			ID:          "104",
			Name:        "Luminária Pendente Cobre",
			Price:       189.90,
			Category:    "Iluminação",
			Image:       "https://picsum.photos/seed/lamp1/400/400",
			Description: "Acabamento em cobre moderno, ideal para bancadas e mesas de jantar.",
			Rating:      4.5,
		},
		{
			ID:          "105",
			Name:        "Vaso Cerâmica Nórdico",
			Price:       89.90,
			Category:    "Decoração",
			Image:       "https://picsum.photos/seed/vase/400/400",
			Description: "Design minimalista nórdico. Perfeito para plantas secas ou naturais.",
			Rating:      4.6,
		},
		{
			ID:          "106",
			Name:        "Poltrona Charles Eames",
			Price:       4599.90,
			OldPrice:    price(5200.00),
			Category:    "Cadeiras",
			Image:       "https://picsum.photos/seed/armchair/400/400",
			Description: "A clássica poltrona com puff. Couro ecológico e madeira multilaminada.",
			Rating:      5.0,
		},
	}
}

// Banners returns the bundled promotional banners.
func Banners() []domain.Banner {
	return []domain.Banner{
		{ID: 1, Image: "https://picsum.photos/seed/livingroom/800/400", Title: "Renove sua Sala", Subtitle: "Até 40% OFF"},
		{ID: 2, Image: "https://picsum.photos/seed/kitchen/800/400", Title: "Cozinha Gourmet", Subtitle: "Lançamentos"},
	}
}

func price(v float64) *float64 {
	return &v
}
