package catalog

import "github.com/shopspring/decimal"

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// SeedCategories describes the shop's category pages in display order.
var SeedCategories = []Category{
	{Slug: "soft-drinks", Title: "Soft Drinks", Description: "Sodas and sparkling classics"},
	{Slug: "juices", Title: "Juices", Description: "Pressed and blended fruit juices"},
	{Slug: "water", Title: "Water", Description: "Still and sparkling mineral water"},
	{Slug: "energy-drinks", Title: "Energy Drinks", Description: "A boost for long days"},
	{Slug: "beers", Title: "Beers", Description: "Local and imported beers"},
	{Slug: "wines", Title: "Wines", Description: "Reds, whites and sparkling wine"},
}

// SeedProducts returns the static catalog the shop serves. Prices are in
// thousands of XAF.
func SeedProducts() []Product {
	return []Product{
		{
			ID: 1, Slug: "tangui-mineral-water-1l", Name: "Tangui Mineral Water 1L",
			Brand: "Tangui", Category: "water", Price: dec("0.60"), Rating: 4.6,
			InStock: true, StockCount: 240, Image: "/products/tangui-1l.jpg",
			Description: "Natural mineral water from the Moungo springs.",
			Details:     map[string]string{"volume": "1 L", "packaging": "PET bottle"},
			Reviews: []Review{
				{Name: "Clarisse", Rating: 5, Date: "2026-03-14", Comment: "Always fresh."},
				{Name: "Bertrand", Rating: 4, Date: "2026-04-02", Comment: "Good price for the size."},
			},
		},
		{
			ID: 2, Slug: "supermont-water-pack-6", Name: "Supermont Water 1.5L (pack of 6)",
			Brand: "Supermont", Category: "water", Price: dec("3.90"),
			CurrentPrice: decPtr("3.50"), OriginalPrice: decPtr("3.90"),
			Rating: 4.3, Badges: []string{"sale"}, InStock: true, StockCount: 80,
			Image:       "/products/supermont-pack.jpg",
			Description: "Family pack of still mineral water.",
			Details:     map[string]string{"volume": "6 x 1.5 L"},
		},
		{
			ID: 3, Slug: "top-pamplemousse-60cl", Name: "Top Pamplemousse 60cl",
			Brand: "Top", Category: "soft-drinks", Price: dec("0.50"), Rating: 4.8,
			InStock: true, StockCount: 320, Image: "/products/top-pamplemousse.jpg",
			Description: "The classic grapefruit soda.",
			Details:     map[string]string{"volume": "60 cl", "packaging": "glass bottle"},
			Reviews: []Review{
				{Name: "Aline", Rating: 5, Date: "2026-01-20", Comment: "Nothing beats it cold."},
				{Name: "Serge", Rating: 5, Date: "2026-02-11", Comment: "A staple."},
				{Name: "Mireille", Rating: 4, Date: "2026-05-30", Comment: "Great with grilled fish."},
			},
		},
		{
			ID: 4, Slug: "djino-cocktail-1l", Name: "D'jino Cocktail 1L",
			Brand: "D'jino", Category: "soft-drinks", Price: dec("0.80"), Rating: 4.1,
			InStock: true, StockCount: 150, Image: "/products/djino-cocktail.jpg",
			Description: "Fruit cocktail sparkling drink.",
		},
		{
			ID: 5, Slug: "coca-cola-50cl", Name: "Coca-Cola 50cl",
			Brand: "Coca-Cola", Category: "soft-drinks", Price: dec("0.55"), Rating: 4.4,
			InStock: true, StockCount: 400, Image: "/products/coca-50cl.jpg",
			Description: "The original taste, chilled.",
		},
		{
			ID: 6, Slug: "orangina-33cl", Name: "Orangina 33cl",
			Brand: "Orangina", Category: "soft-drinks", Price: dec("0.70"),
			CurrentPrice: decPtr("0.65"), OriginalPrice: decPtr("0.70"),
			Rating: 4.0, Badges: []string{"sale"}, InStock: true, StockCount: 96,
			Image:       "/products/orangina-33cl.jpg",
			Description: "Sparkling orange drink with real pulp.",
		},
		{
			ID: 7, Slug: "kadji-pineapple-juice-1l", Name: "Kadji Pineapple Juice 1L",
			Brand: "Kadji", Category: "juices", Price: dec("1.20"), Rating: 4.5,
			Badges: []string{"new"}, InStock: true, StockCount: 60,
			Image:       "/products/kadji-pineapple.jpg",
			Description: "Pressed pineapple juice, no added sugar.",
			Details:     map[string]string{"volume": "1 L", "fruit": "pineapple"},
			Reviews: []Review{
				{Name: "Patrick", Rating: 5, Date: "2026-06-08", Comment: "Tastes like fresh fruit."},
			},
		},
		{
			ID: 8, Slug: "presto-mango-juice-50cl", Name: "Presto Mango Juice 50cl",
			Brand: "Presto", Category: "juices", Price: dec("0.90"), Rating: 4.2,
			InStock: true, StockCount: 110, Image: "/products/presto-mango.jpg",
			Description: "Smooth mango nectar.",
		},
		{
			ID: 9, Slug: "baobab-juice-33cl", Name: "Baobab Juice 33cl",
			Brand: "Saveurs du Nord", Category: "juices", Price: dec("1.00"), Rating: 4.7,
			Badges: []string{"new"}, InStock: true, StockCount: 45,
			Image:       "/products/baobab-juice.jpg",
			Description: "Traditional baobab fruit drink.",
		},
		{
			ID: 10, Slug: "guinness-smooth-50cl", Name: "Guinness Smooth 50cl",
			Brand: "Guinness", Category: "beers", Price: dec("1.10"), Rating: 4.3,
			InStock: true, StockCount: 180, Image: "/products/guinness-smooth.jpg",
			Description: "Dark stout, brewed in Douala.",
		},
		{
			ID: 11, Slug: "33-export-65cl", Name: "33 Export 65cl",
			Brand: "33 Export", Category: "beers", Price: dec("0.90"), Rating: 4.1,
			InStock: true, StockCount: 220, Image: "/products/33-export.jpg",
			Description: "Crisp lager in the classic large bottle.",
			Reviews: []Review{
				{Name: "Emmanuel", Rating: 4, Date: "2026-02-27", Comment: "Reliable."},
				{Name: "Josiane", Rating: 4, Date: "2026-03-19", Comment: "Good with ndolé."},
			},
		},
		{
			ID: 12, Slug: "castel-beer-65cl", Name: "Castel Beer 65cl",
			Brand: "Castel", Category: "beers", Price: dec("0.95"), Rating: 3.9,
			InStock: false, StockCount: 0, Badges: []string{"sold-out"},
			Image:       "/products/castel-65cl.jpg",
			Description: "Smooth blond lager.",
		},
		{
			ID: 13, Slug: "xxl-energy-50cl", Name: "XXL Energy 50cl",
			Brand: "XXL", Category: "energy-drinks", Price: dec("0.75"), Rating: 3.8,
			InStock: true, StockCount: 130, Image: "/products/xxl-energy.jpg",
			Description: "Taurine energy drink.",
		},
		{
			ID: 14, Slug: "bullet-energy-25cl", Name: "Bullet Energy 25cl",
			Brand: "Bullet", Category: "energy-drinks", Price: dec("0.65"),
			CurrentPrice: decPtr("0.55"), OriginalPrice: decPtr("0.65"),
			Rating: 3.8, Badges: []string{"sale"}, InStock: true, StockCount: 75,
			Image:       "/products/bullet-energy.jpg",
			Description: "Compact energy shot.",
		},
		{
			ID: 15, Slug: "vin-rouge-cellier-75cl", Name: "Cellier des Dauphins Rouge 75cl",
			Brand: "Cellier des Dauphins", Category: "wines", Price: dec("4.50"), Rating: 4.4,
			InStock: true, StockCount: 38, Image: "/products/cellier-rouge.jpg",
			Description: "Côtes du Rhône red, medium-bodied.",
			Details:     map[string]string{"volume": "75 cl", "origin": "France"},
		},
		{
			ID: 16, Slug: "baron-de-madrid-blanc-75cl", Name: "Baron de Madrid Blanc 75cl",
			Brand: "Baron de Madrid", Category: "wines", Price: dec("3.80"), Rating: 4.0,
			InStock: true, StockCount: 52, Image: "/products/baron-blanc.jpg",
			Description: "Sweet white wine, best served chilled.",
		},
		{
			ID: 17, Slug: "mousseux-celebration-75cl", Name: "Célébration Mousseux 75cl",
			Brand: "Célébration", Category: "wines", Price: dec("5.20"),
			CurrentPrice: decPtr("4.60"), OriginalPrice: decPtr("5.20"),
			Rating: 4.6, Badges: []string{"sale", "new"}, InStock: true, StockCount: 25,
			Image:       "/products/celebration-mousseux.jpg",
			Description: "Sparkling wine for special occasions.",
			Reviews: []Review{
				{Name: "Florence", Rating: 5, Date: "2026-07-04", Comment: "Perfect for a birthday."},
			},
		},
		{
			ID: 18, Slug: "malta-quench-33cl", Name: "Malta Quench 33cl",
			Brand: "Malta", Category: "soft-drinks", Price: dec("0.60"), Rating: 4.2,
			InStock: true, StockCount: 190, Image: "/products/malta-quench.jpg",
			Description: "Non-alcoholic malt drink.",
		},
	}
}
