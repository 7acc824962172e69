package bootstrap

import "happyshop/internal/infra/persistence/model"

// Defaults for the seeded administrative account and the image folders.
// AdminPassword is a demo-store default; deployments override it through
// the bootstrap configuration.
const (
	defaultAdminUsername  = "admin"
	defaultAdminPassword  = "admin123"
	defaultImageDir       = "images"
	defaultImageBackupDir = "images_resetDB"
)

const seedStock = 100

// SeedProducts returns the fixed catalog inserted by the bootstrap. The
// list is the reference data of the demo store; product 0012 reuses the
// 0011 image on purpose, matching the shipped asset set.
func SeedProducts() []model.ProductModel {
	return []model.ProductModel{
		{ProductID: "0001", Description: "40 inch TV", UnitPrice: 269.00, Image: "0001.jpg", InStock: seedStock},
		{ProductID: "0002", Description: "DAB Radio", UnitPrice: 29.99, Image: "0002.jpg", InStock: seedStock},
		{ProductID: "0003", Description: "Toaster", UnitPrice: 19.99, Image: "0003.jpg", InStock: seedStock},
		{ProductID: "0004", Description: "Watch", UnitPrice: 29.99, Image: "0004.jpg", InStock: seedStock},
		{ProductID: "0005", Description: "Digital Camera", UnitPrice: 89.99, Image: "0005.jpg", InStock: seedStock},
		{ProductID: "0006", Description: "MP3 player", UnitPrice: 7.99, Image: "0006.jpg", InStock: seedStock},
		{ProductID: "0007", Description: "USB drive", UnitPrice: 6.99, Image: "0007.jpg", InStock: seedStock},
		{ProductID: "0008", Description: "USB2 drive", UnitPrice: 7.99, Image: "0008.jpg", InStock: seedStock},
		{ProductID: "0009", Description: "USB3 drive", UnitPrice: 8.99, Image: "0009.jpg", InStock: seedStock},
		{ProductID: "0010", Description: "USB4 drive", UnitPrice: 9.99, Image: "0010.jpg", InStock: seedStock},
		{ProductID: "0011", Description: "USB5 drive", UnitPrice: 10.99, Image: "0011.jpg", InStock: seedStock},
		{ProductID: "0012", Description: "USB6 drive", UnitPrice: 10.99, Image: "0011.jpg", InStock: seedStock},
	}
}
