package repository

import (
	"bonsaigallery/internal/logger"
	"bonsaigallery/internal/models"
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type TreeRepository struct {
	db *pgxpool.Pool
}

func NewTreeRepository(db *pgxpool.Pool) *TreeRepository {
	return &TreeRepository{db: db}
}

const treeColumns = `id, name, slug, species, tree_type, price, description, short_description,
	care_level, size, age, height, pot_type, images, thumbnail, model3d_url, features,
	in_stock, featured, created_at, updated_at`

func scanTree(row pgx.Row) (*models.Tree, error) {
	var t models.Tree
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Slug,
		&t.Species,
		&t.TreeType,
		&t.Price,
		&t.Description,
		&t.ShortDescription,
		&t.CareLevel,
		&t.Size,
		&t.Age,
		&t.Height,
		&t.PotType,
		&t.Images,
		&t.Thumbnail,
		&t.Model3DURL,
		&t.Features,
		&t.InStock,
		&t.Featured,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TreeRepository) GetAllPaginated(ctx context.Context, limit, offset int) ([]models.Tree, int, error) {
	logger.Log.Debug("Получение страницы каталога (repo)", zap.Int("limit", limit), zap.Int("offset", offset))

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM trees`).Scan(&total); err != nil {
		logger.Log.Error("Ошибка подсчёта деревьев (repo)", zap.Error(err))
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+treeColumns+` FROM trees ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		logger.Log.Error("Ошибка выборки деревьев (repo)", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	trees := make([]models.Tree, 0, limit)
	for rows.Next() {
		t, err := scanTree(rows)
		if err != nil {
			return nil, 0, err
		}
		trees = append(trees, *t)
	}

	return trees, total, rows.Err()
}

// GetFeatured — избранные и при этом в наличии, для главной страницы.
func (r *TreeRepository) GetFeatured(ctx context.Context, limit int) ([]models.Tree, error) {
	rows, err := r.db.Query(ctx, `SELECT `+treeColumns+` FROM trees WHERE featured = true AND in_stock = true LIMIT $1`, limit)
	if err != nil {
		logger.Log.Error("Ошибка выборки избранных деревьев (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var trees []models.Tree
	for rows.Next() {
		t, err := scanTree(rows)
		if err != nil {
			return nil, err
		}
		trees = append(trees, *t)
	}

	return trees, rows.Err()
}

func (r *TreeRepository) GetByID(ctx context.Context, id string) (*models.Tree, error) {
	logger.Log.Debug("Получение дерева по ID (repo)", zap.String("tree_id", id))
	return scanTree(r.db.QueryRow(ctx, `SELECT `+treeColumns+` FROM trees WHERE id = $1`, id))
}

func (r *TreeRepository) GetBySlug(ctx context.Context, slug string) (*models.Tree, error) {
	logger.Log.Debug("Получение дерева по slug (repo)", zap.String("slug", slug))
	return scanTree(r.db.QueryRow(ctx, `SELECT `+treeColumns+` FROM trees WHERE slug = $1`, slug))
}

func (r *TreeRepository) Create(ctx context.Context, tree *models.Tree) error {
	logger.Log.Info("Создание дерева (repo)", zap.String("slug", tree.Slug))
	query := `
	INSERT INTO trees (name, slug, species, tree_type, price, description, short_description,
		care_level, size, age, height, pot_type, images, thumbnail, model3d_url, features,
		in_stock, featured)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		tree.Name,
		tree.Slug,
		tree.Species,
		tree.TreeType,
		tree.Price,
		tree.Description,
		tree.ShortDescription,
		tree.CareLevel,
		tree.Size,
		tree.Age,
		tree.Height,
		tree.PotType,
		tree.Images,
		tree.Thumbnail,
		tree.Model3DURL,
		tree.Features,
		tree.InStock,
		tree.Featured,
	).Scan(&tree.ID, &tree.CreatedAt, &tree.UpdatedAt)
}

func (r *TreeRepository) Update(ctx context.Context, id string, tree *models.Tree) error {
	logger.Log.Info("Обновление дерева (repo)", zap.String("tree_id", id))
	query := `
	UPDATE trees SET name=$1, slug=$2, species=$3, tree_type=$4, price=$5, description=$6,
		short_description=$7, care_level=$8, size=$9, age=$10, height=$11, pot_type=$12,
		images=$13, thumbnail=$14, model3d_url=$15, features=$16, in_stock=$17, featured=$18,
		updated_at=now()
	WHERE id=$19`
	_, err := r.db.Exec(ctx, query,
		tree.Name,
		tree.Slug,
		tree.Species,
		tree.TreeType,
		tree.Price,
		tree.Description,
		tree.ShortDescription,
		tree.CareLevel,
		tree.Size,
		tree.Age,
		tree.Height,
		tree.PotType,
		tree.Images,
		tree.Thumbnail,
		tree.Model3DURL,
		tree.Features,
		tree.InStock,
		tree.Featured,
		id,
	)
	if err != nil {
		logger.Log.Error("Ошибка обновления дерева (repo)", zap.Error(err), zap.String("tree_id", id))
	}
	return err
}

// GetStats — агрегаты каталога одной выборкой.
func (r *TreeRepository) GetStats(ctx context.Context) (*models.GalleryStats, error) {
	query := `
	SELECT COUNT(*),
		COUNT(*) FILTER (WHERE in_stock),
		COUNT(*) FILTER (WHERE featured),
		COALESCE(AVG(price), 0)
	FROM trees`

	var s models.GalleryStats
	if err := r.db.QueryRow(ctx, query).Scan(&s.TotalTrees, &s.InStock, &s.Featured, &s.AvgPrice); err != nil {
		logger.Log.Error("Ошибка получения статистики каталога (repo)", zap.Error(err))
		return nil, err
	}

	s.OutOfStock = s.TotalTrees - s.InStock
	if s.TotalTrees > 0 {
		s.InStockPct = s.InStock * 100 / s.TotalTrees
	}
	return &s, nil
}

func (r *TreeRepository) Delete(ctx context.Context, id string) error {
	logger.Log.Info("Удаление дерева (repo)", zap.String("tree_id", id))
	_, err := r.db.Exec(ctx, `DELETE FROM trees WHERE id = $1`, id)
	if err != nil {
		logger.Log.Error("Ошибка удаления дерева (repo)", zap.Error(err), zap.String("tree_id", id))
	}
	return err
}
