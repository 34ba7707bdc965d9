package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	refModel "ftms_backend/internals/features/reference/model"
	"ftms_backend/internals/helpers/refcache"
)

var ErrNotFound = errors.New("reference row not found")

const (
	keyCategories      = "categories"
	keyPaymentMethods  = "payment_methods"
	keySources         = "sources"
	keyPaymentStatuses = "payment_statuses"
)

// Store is the cached read path over the reference tables. Reads are memoized
// per process with a short TTL; every write through the Store invalidates the
// affected key. Single-instance only — see helpers/refcache.
type Store struct {
	DB    *gorm.DB
	Cache *refcache.Cache
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db, Cache: refcache.New(5 * time.Minute)}
}

/* ===================== Cached list loads ===================== */

func (s *Store) Categories() ([]refModel.GlobalCategory, error) {
	v, err := s.Cache.GetOrLoad(keyCategories, func() (any, error) {
		var rows []refModel.GlobalCategory
		if err := s.DB.Order("category_name ASC").Find(&rows).Error; err != nil {
			return nil, err
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]refModel.GlobalCategory), nil
}

func (s *Store) PaymentMethods() ([]refModel.GlobalPaymentMethod, error) {
	v, err := s.Cache.GetOrLoad(keyPaymentMethods, func() (any, error) {
		var rows []refModel.GlobalPaymentMethod
		if err := s.DB.Order("payment_method_name ASC").Find(&rows).Error; err != nil {
			return nil, err
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]refModel.GlobalPaymentMethod), nil
}

func (s *Store) Sources() ([]refModel.GlobalSource, error) {
	v, err := s.Cache.GetOrLoad(keySources, func() (any, error) {
		var rows []refModel.GlobalSource
		if err := s.DB.Order("source_name ASC").Find(&rows).Error; err != nil {
			return nil, err
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]refModel.GlobalSource), nil
}

func (s *Store) PaymentStatuses() ([]refModel.GlobalPaymentStatus, error) {
	v, err := s.Cache.GetOrLoad(keyPaymentStatuses, func() (any, error) {
		var rows []refModel.GlobalPaymentStatus
		if err := s.DB.Order("payment_status_name ASC").Find(&rows).Error; err != nil {
			return nil, err
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]refModel.GlobalPaymentStatus), nil
}

/* ===================== Lookups ===================== */

func (s *Store) CategoryByID(id uuid.UUID) (*refModel.GlobalCategory, error) {
	rows, err := s.Categories()
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].CategoryID == id {
			return &rows[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) CategoryByName(name string) (*refModel.GlobalCategory, error) {
	rows, err := s.Categories()
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if strings.EqualFold(rows[i].CategoryName, strings.TrimSpace(name)) {
			return &rows[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) PaymentMethodByID(id uuid.UUID) (*refModel.GlobalPaymentMethod, error) {
	rows, err := s.PaymentMethods()
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].PaymentMethodID == id {
			return &rows[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) PaymentMethodByName(name string) (*refModel.GlobalPaymentMethod, error) {
	rows, err := s.PaymentMethods()
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if strings.EqualFold(rows[i].PaymentMethodName, strings.TrimSpace(name)) {
			return &rows[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) SourceByID(id uuid.UUID) (*refModel.GlobalSource, error) {
	rows, err := s.Sources()
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].SourceID == id {
			return &rows[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) SourceByName(name string) (*refModel.GlobalSource, error) {
	rows, err := s.Sources()
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if strings.EqualFold(rows[i].SourceName, strings.TrimSpace(name)) {
			return &rows[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) PaymentStatusByName(name string) (*refModel.GlobalPaymentStatus, error) {
	rows, err := s.PaymentStatuses()
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if strings.EqualFold(rows[i].PaymentStatusName, strings.TrimSpace(name)) {
			return &rows[i], nil
		}
	}
	return nil, ErrNotFound
}

/* ===================== Writes (invalidate) ===================== */

func (s *Store) CreateCategory(row *refModel.GlobalCategory) error {
	if err := s.DB.Create(row).Error; err != nil {
		return err
	}
	s.Cache.Invalidate(keyCategories)
	return nil
}

func (s *Store) SaveCategory(row *refModel.GlobalCategory) error {
	if err := s.DB.Save(row).Error; err != nil {
		return err
	}
	s.Cache.Invalidate(keyCategories)
	return nil
}

func (s *Store) DeleteCategory(id uuid.UUID) error {
	if err := s.DB.Delete(&refModel.GlobalCategory{}, "category_id = ?", id).Error; err != nil {
		return err
	}
	s.Cache.Invalidate(keyCategories)
	return nil
}

func (s *Store) CreatePaymentMethod(row *refModel.GlobalPaymentMethod) error {
	if err := s.DB.Create(row).Error; err != nil {
		return err
	}
	s.Cache.Invalidate(keyPaymentMethods)
	return nil
}

func (s *Store) DeletePaymentMethod(id uuid.UUID) error {
	if err := s.DB.Delete(&refModel.GlobalPaymentMethod{}, "payment_method_id = ?", id).Error; err != nil {
		return err
	}
	s.Cache.Invalidate(keyPaymentMethods)
	return nil
}

func (s *Store) CreateSource(row *refModel.GlobalSource) error {
	if err := s.DB.Create(row).Error; err != nil {
		return err
	}
	s.Cache.Invalidate(keySources)
	return nil
}

func (s *Store) DeleteSource(id uuid.UUID) error {
	if err := s.DB.Delete(&refModel.GlobalSource{}, "source_id = ?", id).Error; err != nil {
		return err
	}
	s.Cache.Invalidate(keySources)
	return nil
}
