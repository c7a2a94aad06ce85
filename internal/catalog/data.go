package catalog

import (
	"github.com/agrimart/agrimart-backend/pkg/enums"
)

// sampleProducts mirrors the demo data the browse screens ship with. Prices
// are in rupees.
func sampleProducts() []Product {
	return []Product{
		{ID: "groc-1", Name: "Fresh Tomatoes", Price: 50, ImageRef: "assets/logo.png", Description: "Fresh organic tomatoes", Source: enums.LineSourceGroceries},
		{ID: "groc-2", Name: "Basmati Rice", Price: 120, ImageRef: "assets/logo.png", Description: "Premium basmati rice 1kg", Source: enums.LineSourceGroceries},
		{ID: "groc-3", Name: "Fresh Milk", Price: 60, ImageRef: "assets/logo.png", Description: "Fresh dairy milk 1L", Source: enums.LineSourceGroceries},
		{ID: "groc-4", Name: "Wheat Flour", Price: 80, ImageRef: "assets/logo.png", Description: "Whole wheat flour 1kg", Source: enums.LineSourceGroceries},
		{ID: "groc-5", Name: "Fresh Onions", Price: 40, ImageRef: "assets/logo.png", Description: "Fresh red onions 1kg", Source: enums.LineSourceGroceries},
		{ID: "groc-6", Name: "Cooking Oil", Price: 150, ImageRef: "assets/logo.png", Description: "Sunflower cooking oil 1L", Source: enums.LineSourceGroceries},
		{ID: "agri-1", Name: "Urea Fertilizer", Price: 300, ImageRef: "assets/logo.png", Description: "Urea fertilizer 45kg bag", Source: enums.LineSourceAgriInput},
		{ID: "agri-2", Name: "NPK 19-19-19", Price: 450, ImageRef: "assets/logo.png", Description: "Water soluble NPK 1kg", Source: enums.LineSourceAgriInput},
		{ID: "agri-3", Name: "Hybrid Maize Seeds", Price: 250, ImageRef: "assets/logo.png", Description: "Hybrid maize seeds 1kg", Source: enums.LineSourceAgriInput},
		{ID: "agri-4", Name: "Neem Oil Spray", Price: 180, ImageRef: "assets/logo.png", Description: "Organic neem pest spray 500ml", Source: enums.LineSourceAgriInput},
		{ID: "agri-5", Name: "Drip Irrigation Kit", Price: 1200, ImageRef: "assets/logo.png", Description: "Drip kit for 1/4 acre", Source: enums.LineSourceAgriInput},
	}
}
