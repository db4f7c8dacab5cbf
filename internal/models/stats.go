package models

// GalleryStats — сводка каталога для дашборда админки.
type GalleryStats struct {
	TotalTrees int `json:"total_trees"`
	InStock    int `json:"in_stock"`
	OutOfStock int `json:"out_of_stock"`
	Featured   int `json:"featured"`

	InStockPct int     `json:"in_stock_pct"`
	AvgPrice   float64 `json:"avg_price"`
}
