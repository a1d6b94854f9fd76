package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductImage struct {
	gorm.Model
	Url       string `json:"url" binding:"required"`
	ProductID int    `json:"productId"`
}

type Product struct {
	gorm.Model
	Name          string         `json:"name" binding:"required"`
	Brand         string         `json:"brand" binding:"required"`
	Description   string         `json:"description"`
	Price         string         `json:"price" binding:"required"`
	OriginalPrice string         `json:"originalPrice,omitempty"`
	Discount      string         `json:"discount,omitempty"`
	Category      string         `json:"category"`
	Image         string         `json:"image"`
	Sizes         datatypes.JSON `json:"sizes"`
	Colors        datatypes.JSON `json:"colors"`
	Details       datatypes.JSON `json:"details"`
	Rating        float64        `json:"rating"`
	Reviews       int            `json:"reviews"`
	InStock       bool           `json:"inStock"`
	DeliveryInfo  string         `json:"deliveryInfo"`
	Images        []ProductImage `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
