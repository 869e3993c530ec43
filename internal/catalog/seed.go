package catalog

import "github.com/shopspring/decimal"

var seedSellers = map[int]Seller{
	1: {ID: 1, Name: "Panadería Del Sol", Rating: 4.8, ReviewsCount: 134},
	2: {ID: 2, Name: "Sushi Go!", Rating: 4.9, ReviewsCount: 250},
	3: {ID: 3, Name: "Verduras Frescas & Co.", Rating: 4.6, ReviewsCount: 88},
	4: {ID: 4, Name: "Café El Rincón", Rating: 4.7, ReviewsCount: 95},
	5: {ID: 5, Name: "Gourmet Express", Rating: 4.8, ReviewsCount: 112},
}

// SeedItems returns the built-in catalog. Insertion order doubles as
// recency: the recent view shows the last entries first.
func SeedItems() []Item {
	return []Item{
		{
			ID:            1,
			Title:         "Pack de 3 Croissants de Mantequilla",
			Description:   "Deliciosos croissants recién horneados esta mañana. Perfectos para el desayuno o la merienda.",
			Price:         decimal.NewFromFloat(2.50),
			OriginalPrice: decimal.NewFromFloat(7.50),
			PickupTime:    "Recoger antes de las 18:00",
			ImageURL:      "https://picsum.photos/seed/croissant/600/400",
			Distance:      "0.5 km",
			Seller:        seedSellers[1],
			Tags:          []string{TagBakery, "Desayuno"},
			DietaryInfo:   []string{},
			Stock:         1,
			Location:      GeoPoint{Lat: 40.4167, Lng: -3.7032},
		},
		{
			ID:            2,
			Title:         "Maki Box (16 piezas)",
			Description:   "Selección variada de makis de salmón, atún y aguacate. Preparado hoy con pescado fresco.",
			Price:         decimal.NewFromFloat(6.00),
			OriginalPrice: decimal.NewFromFloat(15.00),
			PickupTime:    "Recoger antes de las 21:30",
			ImageURL:      "https://picsum.photos/seed/sushi/600/400",
			Distance:      "1.2 km",
			Seller:        seedSellers[2],
			Tags:          []string{"Japonés", "Pescado", TagPrepared},
			DietaryInfo:   []string{},
			Stock:         5,
			Location:      GeoPoint{Lat: 40.4203, Lng: -3.7058},
		},
		{
			ID:            3,
			Title:         "Caja de Verduras Orgánicas",
			Description:   "Mix de verduras de temporada: tomates, pepinos, pimientos y lechuga. Todo orgánico y local.",
			Price:         decimal.NewFromFloat(4.50),
			OriginalPrice: decimal.NewFromFloat(12.00),
			PickupTime:    "Recoger antes de las 13:20",
			ImageURL:      "https://picsum.photos/seed/vegetables/600/400",
			Distance:      "2.1 km",
			Seller:        seedSellers[3],
			Tags:          []string{"Vegano", "Sin Gluten", "Saludable"},
			DietaryInfo:   []string{"Vegano", "Sin Gluten"},
			Stock:         1,
			Location:      GeoPoint{Lat: 40.4100, Lng: -3.7010},
		},
		{
			ID:            4,
			Title:         "2 porciones de Tarta de Zanahoria",
			Description:   "Nuestra famosa tarta de zanahoria casera con frosting de queso crema. ¡Irresistible!",
			Price:         decimal.NewFromFloat(3.00),
			OriginalPrice: decimal.NewFromFloat(8.00),
			PickupTime:    "Recoger antes de las 19:00",
			ImageURL:      "https://picsum.photos/seed/cake/600/400",
			Distance:      "0.8 km",
			Seller:        seedSellers[4],
			Tags:          []string{"Postre", "Dulce", TagBakery},
			DietaryInfo:   []string{},
			Stock:         4,
			Location:      GeoPoint{Lat: 40.4240, Lng: -3.7080},
		},
		{
			ID:            5,
			Title:         "Sopa de Lentejas Casera (1L)",
			Description:   "Sopa de lentejas nutritiva y reconfortante, como la de la abuela. Ideal para una comida completa.",
			Price:         decimal.NewFromFloat(3.50),
			OriginalPrice: decimal.NewFromFloat(9.00),
			PickupTime:    "Recoger antes de las 15:00",
			ImageURL:      "https://picsum.photos/seed/soup/600/400",
			Distance:      "1.5 km",
			Seller:        seedSellers[1],
			Tags:          []string{"Comida casera", "Vegano", TagPrepared},
			DietaryInfo:   []string{"Vegano"},
			Stock:         1,
			Location:      GeoPoint{Lat: 40.4230, Lng: -3.6980},
		},
		{
			ID:            6,
			Title:         "Hogaza de Pan de Pueblo",
			Description:   "Pan de masa madre con corteza crujiente e interior esponjoso. Hecho en horno de leña.",
			Price:         decimal.NewFromFloat(2.00),
			OriginalPrice: decimal.NewFromFloat(4.50),
			PickupTime:    "Recoger antes de las 14:00",
			ImageURL:      "https://picsum.photos/seed/bread/600/400",
			Distance:      "0.6 km",
			Seller:        seedSellers[1],
			Tags:          []string{TagBakery, "Artesano"},
			DietaryInfo:   []string{"Vegano"},
			Stock:         3,
			Location:      GeoPoint{Lat: 40.4150, Lng: -3.7040},
		},
		{
			ID:            7,
			Title:         "Ensalada César con Pollo",
			Description:   "Ensalada completa con pollo a la parrilla, croutons, parmesano y nuestra salsa César especial.",
			Price:         decimal.NewFromFloat(4.00),
			OriginalPrice: decimal.NewFromFloat(9.50),
			PickupTime:    "Recoger antes de las 16:00",
			ImageURL:      "https://picsum.photos/seed/salad/600/400",
			Distance:      "1.8 km",
			Seller:        seedSellers[5],
			Tags:          []string{"Ensalada", "Saludable", TagPrepared},
			DietaryInfo:   []string{},
			Stock:         2,
			Location:      GeoPoint{Lat: 40.4180, Lng: -3.7100},
		},
	}
}
