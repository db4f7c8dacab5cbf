package models

import "time"

// Категории деревьев в каталоге
type TreeType string

const (
	TreeTypeFicus   TreeType = "ficus"
	TreeTypeJuniper TreeType = "juniper"
	TreeTypeMaple   TreeType = "maple"
	TreeTypePine    TreeType = "pine"
	TreeTypeElm     TreeType = "elm"
	TreeTypeCedar   TreeType = "cedar"
	TreeTypeAzalea  TreeType = "azalea"
	TreeTypeBamboo  TreeType = "bamboo"
	TreeTypeOther   TreeType = "other"
)

// Уровень сложности ухода
type CareLevel string

const (
	CareLevelBeginner     CareLevel = "beginner"
	CareLevelIntermediate CareLevel = "intermediate"
	CareLevelAdvanced     CareLevel = "advanced"
	CareLevelExpert       CareLevel = "expert"
)

// Размерная категория дерева
type TreeSize string

const (
	TreeSizeMini       TreeSize = "mini"
	TreeSizeSmall      TreeSize = "small"
	TreeSizeMedium     TreeSize = "medium"
	TreeSizeLarge      TreeSize = "large"
	TreeSizeExtraLarge TreeSize = "extra-large"
)

// Варианты сортировки галереи
type SortOption string

const (
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortName      SortOption = "name"
	SortNewest    SortOption = "newest"
	SortOldest    SortOption = "oldest"
)

func IsTreeType(v string) bool {
	switch TreeType(v) {
	case TreeTypeFicus, TreeTypeJuniper, TreeTypeMaple, TreeTypePine,
		TreeTypeElm, TreeTypeCedar, TreeTypeAzalea, TreeTypeBamboo, TreeTypeOther:
		return true
	}
	return false
}

func IsCareLevel(v string) bool {
	switch CareLevel(v) {
	case CareLevelBeginner, CareLevelIntermediate, CareLevelAdvanced, CareLevelExpert:
		return true
	}
	return false
}

func IsTreeSize(v string) bool {
	switch TreeSize(v) {
	case TreeSizeMini, TreeSizeSmall, TreeSizeMedium, TreeSizeLarge, TreeSizeExtraLarge:
		return true
	}
	return false
}

func IsSortOption(v string) bool {
	switch SortOption(v) {
	case SortPriceAsc, SortPriceDesc, SortName, SortNewest, SortOldest:
		return true
	}
	return false
}

type Tree struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Species          string    `json:"species"`
	TreeType         TreeType  `json:"tree_type"`
	Price            float64   `json:"price"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description"`
	CareLevel        CareLevel `json:"care_level"`
	Size             TreeSize  `json:"size"`
	Age              int       `json:"age"`
	Height           string    `json:"height"`
	PotType          string    `json:"pot_type"`
	Images           []string  `json:"images"`
	Thumbnail        string    `json:"thumbnail"`
	Model3DURL       *string   `json:"model3d_url,omitempty"`
	Features         []string  `json:"features"`
	InStock          bool      `json:"in_stock"`
	Featured         bool      `json:"featured"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type TreeFormData struct {
	Name             string    `json:"name"`
	Species          string    `json:"species"`
	TreeType         TreeType  `json:"tree_type"`
	Price            float64   `json:"price"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description"`
	CareLevel        CareLevel `json:"care_level"`
	Size             TreeSize  `json:"size"`
	Age              int       `json:"age"`
	Height           string    `json:"height"`
	PotType          string    `json:"pot_type"`
	Features         []string  `json:"features"`
	InStock          bool      `json:"in_stock"`
	Featured         bool      `json:"featured"`
	Images           []string  `json:"images"`
	Thumbnail        string    `json:"thumbnail"`
	Model3DURL       *string   `json:"model3d_url,omitempty"`
}

type TreesResponse struct {
	Trees    []Tree `json:"trees"`
	Total    int    `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	HasMore  bool   `json:"has_more"`
}

// Подписи для отображения в галерее
var TreeTypeLabels = map[TreeType]string{
	TreeTypeFicus:   "Ficus",
	TreeTypeJuniper: "Juniper",
	TreeTypeMaple:   "Maple",
	TreeTypePine:    "Pine",
	TreeTypeElm:     "Elm",
	TreeTypeCedar:   "Cedar",
	TreeTypeAzalea:  "Azalea",
	TreeTypeBamboo:  "Bamboo",
	TreeTypeOther:   "Other",
}

var CareLevelLabels = map[CareLevel]string{
	CareLevelBeginner:     "Beginner",
	CareLevelIntermediate: "Intermediate",
	CareLevelAdvanced:     "Advanced",
	CareLevelExpert:       "Expert",
}

var TreeSizeLabels = map[TreeSize]string{
	TreeSizeMini:       `Mini (< 6")`,
	TreeSizeSmall:      `Small (6-10")`,
	TreeSizeMedium:     `Medium (10-16")`,
	TreeSizeLarge:      `Large (16-24")`,
	TreeSizeExtraLarge: `Extra Large (24"+)`,
}
