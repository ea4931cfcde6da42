package repositories

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"undangan.link/configs/configslog"
	"undangan.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var columnNamePattern = regexp.MustCompile(`^[a-z_]+$`)

// dbFromContext bağlantıyı (transaction olabilir) isteğin context'ine bağlar.
func dbFromContext(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx)
}

// IBaseRepository tüm modeller için ortak işlemleri tanımlar.
type IBaseRepository[T any] interface {
	FindByID(ctx context.Context, id uint, preloads ...string) (*T, error)
	Create(ctx context.Context, entity *T) error
	IncrementColumn(ctx context.Context, id uint, column string, delta int) error
	Exists(ctx context.Context, query string, args ...interface{}) (bool, error)
	Paginate(ctx context.Context, query *gorm.DB, params queryparams.ListParams, dest *[]T, preloads ...string) (int64, error)
	SetAllowedSortColumns(columns []string)
}

// BaseRepository IBaseRepository'nin generik uygulamasıdır.
type BaseRepository[T any] struct {
	db                 *gorm.DB
	allowedSortColumns map[string]bool
	defaultSortColumn  string
}

// NewBaseRepository verilen bağlantı ile yeni bir BaseRepository oluşturur.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{
		db:                 db,
		allowedSortColumns: map[string]bool{"id": true, "created_at": true},
		defaultSortColumn:  "created_at",
	}
}

// SetAllowedSortColumns sıralamada kabul edilecek sütunları belirler.
// Listedeki ilk sütun varsayılan sıralama sütunu olur.
func (r *BaseRepository[T]) SetAllowedSortColumns(columns []string) {
	r.allowedSortColumns = make(map[string]bool, len(columns))
	for _, c := range columns {
		r.allowedSortColumns[c] = true
	}
	if len(columns) > 0 {
		r.defaultSortColumn = columns[0]
	}
}

func (r *BaseRepository[T]) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint, preloads ...string) (*T, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var entity T
	query := r.getDB(ctx)
	for _, p := range preloads {
		query = query.Preload(p)
	}
	if err := query.First(&entity, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &entity, nil
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("oluşturulacak kayıt nil olamaz")
	}
	return translateError(r.getDB(ctx).Create(entity).Error)
}

// IncrementColumn sayaç sütununu veritabanı seviyesinde atomik olarak artırır
// (UPDATE ... SET col = col + n). Oku-yaz döngüsü yapılmaz.
func (r *BaseRepository[T]) IncrementColumn(ctx context.Context, id uint, column string, delta int) error {
	if !columnNamePattern.MatchString(column) {
		return errors.New("geçersiz sütun adı: " + column)
	}
	result := r.getDB(ctx).Model(new(T)).Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta))
	if result.Error != nil {
		configslog.Log.Error("BaseRepository.IncrementColumn: DB hatası",
			zap.Uint("id", id), zap.String("column", column), zap.Error(result.Error))
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BaseRepository[T]) Exists(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var count int64
	err := r.getDB(ctx).Model(new(T)).Where(query, args...).Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// Paginate verilen sorguyu sayar, sıralar ve sayfalar.
// Preload'lar sayımdan sonra eklenir.
func (r *BaseRepository[T]) Paginate(ctx context.Context, query *gorm.DB, params queryparams.ListParams, dest *[]T, preloads ...string) (int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, translateError(err)
	}
	if total == 0 {
		*dest = []T{}
		return 0, nil
	}

	sortBy := params.SortBy
	if !r.allowedSortColumns[sortBy] {
		if sortBy != "" {
			configslog.SLog.Warnw("Geçersiz sıralama alanı istendi, varsayılan kullanılıyor", "requestedSortBy", sortBy)
		}
		sortBy = r.defaultSortColumn
	}
	orderBy := strings.ToLower(params.OrderBy)
	if orderBy != "asc" && orderBy != "desc" {
		orderBy = queryparams.DefaultOrderBy
	}

	for _, p := range preloads {
		query = query.Preload(p)
	}
	err := query.Order(sortBy + " " + orderBy).Order("id " + orderBy).
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Find(dest).Error
	if err != nil {
		return total, translateError(err)
	}
	return total, nil
}
