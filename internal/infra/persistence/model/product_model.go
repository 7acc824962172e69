package model

import "happyshop/internal/domain/entity"

// ProductModel mirrors the 'product_table' table. The check constraint keeps
// in_stock from ever going negative, whichever code path writes it.
type ProductModel struct {
	ProductID   string  `gorm:"column:product_id;type:char(4);primaryKey"`
	Description string  `gorm:"column:description;type:varchar(100)"`
	UnitPrice   float64 `gorm:"column:unit_price;type:double precision"`
	Image       string  `gorm:"column:image;type:varchar(100)"`
	InStock     int     `gorm:"column:in_stock;check:in_stock >= 0"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "product_table"
}

// ToDomain maps the persistence model to the pure domain entity.
func (m *ProductModel) ToDomain() *entity.Product {
	return &entity.Product{
		ID:          m.ProductID,
		Description: m.Description,
		UnitPrice:   m.UnitPrice,
		Image:       m.Image,
		InStock:     m.InStock,
	}
}

// FromProductDomain maps a domain entity to the persistence model.
func FromProductDomain(product *entity.Product) *ProductModel {
	return &ProductModel{
		ProductID:   product.ID,
		Description: product.Description,
		UnitPrice:   product.UnitPrice,
		Image:       product.Image,
		InStock:     product.InStock,
	}
}
