package services

import (
	"bonsaigallery/internal/filters"
	"bonsaigallery/internal/logger"
	"bonsaigallery/internal/models"
	"context"
	"errors"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

var ErrInvalidTreeData = errors.New("invalid tree data")

type TreeService struct {
	repo TreeRepo
}

func NewTreeService(repo TreeRepo) *TreeService {
	return &TreeService{repo: repo}
}

type TreeRepo interface {
	GetAllPaginated(ctx context.Context, limit, offset int) ([]models.Tree, int, error)
	GetFeatured(ctx context.Context, limit int) ([]models.Tree, error)
	GetByID(ctx context.Context, id string) (*models.Tree, error)
	GetBySlug(ctx context.Context, slug string) (*models.Tree, error)
	Create(ctx context.Context, tree *models.Tree) error
	Update(ctx context.Context, id string, tree *models.Tree) error
	Delete(ctx context.Context, id string) error
	GetStats(ctx context.Context) (*models.GalleryStats, error)
}

// GetPage — страница каталога с наложением фильтров поверх выборки.
// Фильтрация и сортировка выполняются движком в памяти над загруженной
// страницей, как это делает витрина.
func (s *TreeService) GetPage(ctx context.Context, page, pageSize int, state filters.State) (*models.TreesResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 12
	}
	offset := (page - 1) * pageSize

	trees, total, err := s.repo.GetAllPaginated(ctx, pageSize, offset)
	if err != nil {
		logger.Log.Error("Ошибка получения страницы каталога (service)", zap.Error(err))
		return nil, err
	}

	// Строгий вариант предиката: суженный ценовой диапазон тоже считается
	// активным фильтром — это вариант витрины, не панели фильтров.
	if state.HasActiveFiltersStrict() || state.SortBy != models.SortNewest {
		trees = filters.Apply(trees, state)
	}

	return &models.TreesResponse{
		Trees:    trees,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  offset+pageSize < total,
	}, nil
}

// GetFeatured — до пяти избранных деревьев в наличии, для главной.
func (s *TreeService) GetFeatured(ctx context.Context) ([]models.Tree, error) {
	return s.repo.GetFeatured(ctx, 5)
}

func (s *TreeService) GetByID(ctx context.Context, id string) (*models.Tree, error) {
	tree, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.Log.Warn("Дерево не найдено по ID (service)", zap.String("tree_id", id), zap.Error(err))
	}
	return tree, err
}

func (s *TreeService) GetBySlug(ctx context.Context, slug string) (*models.Tree, error) {
	tree, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		logger.Log.Warn("Дерево не найдено по slug (service)", zap.String("slug", slug), zap.Error(err))
	}
	return tree, err
}

func (s *TreeService) Create(ctx context.Context, form *models.TreeFormData) (*models.Tree, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}

	tree := treeFromForm(form)
	if err := s.repo.Create(ctx, tree); err != nil {
		logger.Log.Error("Ошибка создания дерева (service)", zap.Error(err))
		return nil, err
	}
	logger.Log.Info("Дерево создано (service)", zap.String("tree_id", tree.ID))
	return tree, nil
}

func (s *TreeService) Update(ctx context.Context, id string, form *models.TreeFormData) error {
	if err := validateForm(form); err != nil {
		return err
	}

	tree := treeFromForm(form)
	if err := s.repo.Update(ctx, id, tree); err != nil {
		logger.Log.Error("Ошибка обновления дерева (service)", zap.Error(err), zap.String("tree_id", id))
		return err
	}
	return nil
}

func (s *TreeService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// GetStats — сводка каталога для дашборда админки.
func (s *TreeService) GetStats(ctx context.Context) (*models.GalleryStats, error) {
	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		logger.Log.Error("Ошибка получения статистики каталога (service)", zap.Error(err))
	}
	return stats, err
}

func validateForm(form *models.TreeFormData) error {
	if form.Name == "" || form.Price < 0 {
		return ErrInvalidTreeData
	}
	if !models.IsTreeType(string(form.TreeType)) ||
		!models.IsCareLevel(string(form.CareLevel)) ||
		!models.IsTreeSize(string(form.Size)) {
		return ErrInvalidTreeData
	}
	return nil
}

// slugify — url-имя из названия: латиница и цифры в нижнем регистре,
// остальное схлопывается в дефисы.
func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

func treeFromForm(form *models.TreeFormData) *models.Tree {
	return &models.Tree{
		Name:             form.Name,
		Slug:             slugify(form.Name),
		Species:          form.Species,
		TreeType:         form.TreeType,
		Price:            form.Price,
		Description:      form.Description,
		ShortDescription: form.ShortDescription,
		CareLevel:        form.CareLevel,
		Size:             form.Size,
		Age:              form.Age,
		Height:           form.Height,
		PotType:          form.PotType,
		Images:           form.Images,
		Thumbnail:        form.Thumbnail,
		Model3DURL:       form.Model3DURL,
		Features:         form.Features,
		InStock:          form.InStock,
		Featured:         form.Featured,
	}
}
