package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bonsaigallery/internal/filters"
	"bonsaigallery/internal/logger"
	"bonsaigallery/internal/models"
	"bonsaigallery/internal/reqctx"
	"bonsaigallery/internal/services"
	helpers "bonsaigallery/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type TreeHandler struct {
	svc *services.TreeService
}

func NewTreeHandler(svc *services.TreeService) *TreeHandler {
	return &TreeHandler{svc: svc}
}

// adminLog — логгер запроса с почтой действующего администратора,
// чтобы по логам было видно, кто менял каталог.
func adminLog(r *http.Request) *zap.Logger {
	log := logger.WithCtx(r.Context())
	if email, ok := reqctx.GetUserEmail(r.Context()); ok {
		log = log.With(zap.String("admin", email))
	}
	return log
}

// List godoc
// @Summary Каталог деревьев с фильтрами
// @Description Страница каталога; параметры фильтров те же, что в адресной строке галереи (sizes, careLevels, treeTypes, search, sortBy, inStock).
// @Tags trees
// @Produce json
// @Param page query int false "Номер страницы"
// @Param sizes query string false "Размеры через запятую"
// @Param careLevels query string false "Уровни ухода через запятую"
// @Param treeTypes query string false "Типы деревьев через запятую"
// @Param search query string false "Поиск по имени, виду, описанию"
// @Param sortBy query string false "price-asc|price-desc|name|newest|oldest"
// @Param inStock query string false "true — только в наличии"
// @Success 200 {object} models.TreesResponse
// @Router /api/trees [get]
func (h *TreeHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("pageSize"))

	state := filters.FromQuery(query)

	resp, err := h.svc.GetPage(r.Context(), page, pageSize, state)
	if err != nil {
		log.Error("Ошибка получения каталога", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Failed to fetch trees")
		return
	}

	helpers.JSON(w, http.StatusOK, resp)
}

// Featured godoc
// @Summary Избранные деревья для главной
// @Tags trees
// @Produce json
// @Success 200 {array} models.Tree
// @Router /api/trees/featured [get]
func (h *TreeHandler) Featured(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	trees, err := h.svc.GetFeatured(r.Context())
	if err != nil {
		log.Error("Ошибка получения избранных деревьев", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Failed to fetch featured trees")
		return
	}

	helpers.JSON(w, http.StatusOK, trees)
}

type filterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type filterOptionsResponse struct {
	TreeTypes   []filterOption `json:"treeTypes"`
	CareLevels  []filterOption `json:"careLevels"`
	Sizes       []filterOption `json:"sizes"`
	SortOptions []string       `json:"sortOptions"`
}

// FilterOptions godoc
// @Summary Доступные значения фильтров галереи
// @Description Значения фасетов с подписями для панели фильтров. Порядок фиксированный.
// @Tags trees
// @Produce json
// @Success 200 {object} filterOptionsResponse
// @Router /api/trees/filter-options [get]
func (h *TreeHandler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	resp := filterOptionsResponse{
		SortOptions: []string{
			string(models.SortNewest),
			string(models.SortOldest),
			string(models.SortPriceAsc),
			string(models.SortPriceDesc),
			string(models.SortName),
		},
	}

	for _, v := range []models.TreeType{
		models.TreeTypeFicus, models.TreeTypeJuniper, models.TreeTypeMaple,
		models.TreeTypePine, models.TreeTypeElm, models.TreeTypeCedar,
		models.TreeTypeAzalea, models.TreeTypeBamboo, models.TreeTypeOther,
	} {
		resp.TreeTypes = append(resp.TreeTypes, filterOption{Value: string(v), Label: models.TreeTypeLabels[v]})
	}
	for _, v := range []models.CareLevel{
		models.CareLevelBeginner, models.CareLevelIntermediate,
		models.CareLevelAdvanced, models.CareLevelExpert,
	} {
		resp.CareLevels = append(resp.CareLevels, filterOption{Value: string(v), Label: models.CareLevelLabels[v]})
	}
	for _, v := range []models.TreeSize{
		models.TreeSizeMini, models.TreeSizeSmall, models.TreeSizeMedium,
		models.TreeSizeLarge, models.TreeSizeExtraLarge,
	} {
		resp.Sizes = append(resp.Sizes, filterOption{Value: string(v), Label: models.TreeSizeLabels[v]})
	}

	helpers.JSON(w, http.StatusOK, resp)
}

// GetByID godoc
// @Summary Карточка дерева
// @Tags trees
// @Produce json
// @Param id path string true "ID дерева"
// @Success 200 {object} models.Tree
// @Failure 404 {object} helpers.ErrorResponse
// @Router /api/trees/{id} [get]
func (h *TreeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	tree, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		helpers.Error(w, http.StatusNotFound, "Tree not found")
		return
	}

	helpers.JSON(w, http.StatusOK, tree)
}

// GetBySlug godoc
// @Summary Карточка дерева по slug
// @Tags trees
// @Produce json
// @Param slug path string true "Slug дерева"
// @Success 200 {object} models.Tree
// @Failure 404 {object} helpers.ErrorResponse
// @Router /api/trees/slug/{slug} [get]
func (h *TreeHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	tree, err := h.svc.GetBySlug(r.Context(), slug)
	if err != nil {
		helpers.Error(w, http.StatusNotFound, "Tree not found")
		return
	}

	helpers.JSON(w, http.StatusOK, tree)
}

// Create godoc
// @Summary Создание дерева (админка)
// @Tags admin-trees
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.TreeFormData true "Данные дерева"
// @Success 201 {object} models.Tree
// @Failure 400 {object} helpers.ErrorResponse
// @Router /api/admin/trees [post]
func (h *TreeHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := adminLog(r)

	var form models.TreeFormData
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Warn("Невалидный payload в Create", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	tree, err := h.svc.Create(r.Context(), &form)
	if err != nil {
		if err == services.ErrInvalidTreeData {
			helpers.Error(w, http.StatusBadRequest, "Invalid tree data")
			return
		}
		log.Error("Ошибка создания дерева", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Failed to create tree")
		return
	}

	helpers.JSON(w, http.StatusCreated, tree)
}

// Update godoc
// @Summary Обновление дерева (админка)
// @Tags admin-trees
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID дерева"
// @Param input body models.TreeFormData true "Данные дерева"
// @Success 200 {object} messageResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Router /api/admin/trees/{id} [put]
func (h *TreeHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := adminLog(r)
	id := mux.Vars(r)["id"]

	var form models.TreeFormData
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Warn("Невалидный payload в Update", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.svc.Update(r.Context(), id, &form); err != nil {
		if err == services.ErrInvalidTreeData {
			helpers.Error(w, http.StatusBadRequest, "Invalid tree data")
			return
		}
		log.Error("Ошибка обновления дерева", zap.Error(err), zap.String("tree_id", id))
		helpers.Error(w, http.StatusInternalServerError, "Failed to update tree")
		return
	}

	helpers.JSON(w, http.StatusOK, messageResponse{Success: true, Message: "Tree updated"})
}

// Stats godoc
// @Summary Статистика каталога (админка)
// @Tags admin-trees
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} models.GalleryStats
// @Router /api/admin/stats [get]
func (h *TreeHandler) Stats(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		log.Error("Ошибка получения статистики каталога", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}

	helpers.JSON(w, http.StatusOK, stats)
}

// Delete godoc
// @Summary Удаление дерева (админка)
// @Tags admin-trees
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID дерева"
// @Success 200 {object} messageResponse
// @Router /api/admin/trees/{id} [delete]
func (h *TreeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := adminLog(r)
	id := mux.Vars(r)["id"]

	if err := h.svc.Delete(r.Context(), id); err != nil {
		log.Error("Ошибка удаления дерева", zap.Error(err), zap.String("tree_id", id))
		helpers.Error(w, http.StatusInternalServerError, "Failed to delete tree")
		return
	}

	helpers.JSON(w, http.StatusOK, messageResponse{Success: true, Message: "Tree deleted"})
}
