// Package data carries the embedded seed catalog served when no product
// database is configured in development.
package data

import (
	"github.com/novamart/novamart-api/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func SeedProducts() []models.Product {
	return []models.Product{
		{
			Model:         gorm.Model{ID: 1},
			Name:          "Classic Blazer",
			Brand:         "ELEGANCE",
			Description:   "Elevate your professional wardrobe with this timeless Classic White Blazer. Crafted from premium cotton blend fabric, this blazer offers both comfort and sophistication for any occasion.",
			Price:         "$299.00",
			OriginalPrice: "$399.00",
			Discount:      "25% OFF",
			Category:      "Blazers & Jackets",
			Image:         "https://images.unsplash.com/photo-1593030103066-0093718efeb9?q=80&w=1000&auto=format&fit=crop",
			Sizes:         datatypes.JSON(`["XS","S","M","L","XL","XXL"]`),
			Colors:        datatypes.JSON(`[{"name":"White","hex":"#FFFFFF"},{"name":"Cream","hex":"#FFFDD0"},{"name":"Light Gray","hex":"#D3D3D3"}]`),
			Details:       datatypes.JSON(`["Premium cotton blend fabric (65% Cotton, 35% Polyester)","Single-breasted design with two-button closure","Notched lapels with classic tailoring","Fully lined interior for smooth wear","Dry clean recommended"]`),
			Rating:        4.5,
			Reviews:       128,
			InStock:       true,
			DeliveryInfo:  "Free delivery by Feb 10-12",
		},
		{
			Model:        gorm.Model{ID: 2},
			Name:         "Designer Jeans",
			Brand:        "DENIM CO",
			Description:  "Premium denim with a tailored fit and enduring wash.",
			Price:        "$199.00",
			Category:     "Jeans",
			Image:        "https://images.unsplash.com/photo-1542272604-787c3835535d?q=80&w=1000&auto=format&fit=crop",
			Sizes:        datatypes.JSON(`["XS","S","M","L","XL"]`),
			Colors:       datatypes.JSON(`[{"name":"Indigo Blue","hex":"#3F51B5"},{"name":"Dark Wash","hex":"#1A237E"},{"name":"Light Blue","hex":"#64B5F6"}]`),
			Rating:       4.3,
			Reviews:      256,
			InStock:      true,
			DeliveryInfo: "Free delivery by Feb 9-11",
		},
		{
			Model:        gorm.Model{ID: 3},
			Name:         "Silk Evening Gown",
			Brand:        "LUXE COUTURE",
			Description:  "A floor-length silk gown cut for evening wear.",
			Price:        "$599.00",
			Category:     "Evening Wear",
			Image:        "https://images.unsplash.com/photo-1566174053879-31528523f8ae?q=80&w=1000&auto=format&fit=crop",
			Sizes:        datatypes.JSON(`["XS","S","M","L"]`),
			Colors:       datatypes.JSON(`[{"name":"Burgundy","hex":"#800020"},{"name":"Midnight Blue","hex":"#191970"},{"name":"Emerald","hex":"#50C878"}]`),
			Rating:       4.8,
			Reviews:      89,
			InStock:      true,
			DeliveryInfo: "Free delivery by Feb 11-13",
		},
		{
			Model:        gorm.Model{ID: 4},
			Name:         "Leather Handbag",
			Brand:        "MILANO",
			Description:  "Full-grain leather handbag with brass hardware.",
			Price:        "$399.00",
			Category:     "Bags & Accessories",
			Image:        "https://images.unsplash.com/photo-1584917865442-de89df76afd3?q=80&w=1000&auto=format&fit=crop",
			Colors:       datatypes.JSON(`[{"name":"Tan","hex":"#D2691E"},{"name":"Black","hex":"#000000"},{"name":"Burgundy","hex":"#800020"}]`),
			Rating:       4.6,
			Reviews:      312,
			InStock:      true,
			DeliveryInfo: "Free delivery by Feb 10-12",
		},
		{
			Model:        gorm.Model{ID: 5},
			Name:         "Gold Heels",
			Brand:        "GLAMOUR",
			Description:  "Statement metallic heels for evening occasions.",
			Price:        "$249.00",
			Category:     "Shoes",
			Image:        "https://images.unsplash.com/photo-1543163521-1bf539c55dd2?q=80&w=1000&auto=format&fit=crop",
			Sizes:        datatypes.JSON(`["36","37","38","39","40","41"]`),
			Colors:       datatypes.JSON(`[{"name":"Gold","hex":"#FFD700"},{"name":"Silver","hex":"#C0C0C0"},{"name":"Rose Gold","hex":"#B76E79"}]`),
			Rating:       4.4,
			Reviews:      167,
			InStock:      true,
			DeliveryInfo: "Free delivery by Feb 9-11",
		},
	}
}
