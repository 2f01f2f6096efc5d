package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/voyagehq/voyagecms/internal/domain"
	"github.com/voyagehq/voyagecms/internal/registry"
)

// LookupRepository serves every registered lookup kind from its configured
// table. Table and column names come from the static registry, never from
// request input.
type LookupRepository struct {
	db *gorm.DB
}

func NewLookupRepository(db *gorm.DB) *LookupRepository {
	return &LookupRepository{db: db}
}

func (r *LookupRepository) List(ctx context.Context, kind registry.EntityKind) ([]domain.LookupRecord, error) {
	var rows []domain.LookupRecord
	err := r.db.WithContext(ctx).
		Table(kind.Table).
		Select("id, " + kind.NameField + " AS name").
		Order(kind.NameField + " ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.LookupRecord{}
	}
	return rows, nil
}

func (r *LookupRepository) Create(ctx context.Context, kind registry.EntityKind, name string) (domain.LookupRecord, error) {
	var rec domain.LookupRecord
	err := r.db.WithContext(ctx).
		Raw("INSERT INTO "+kind.Table+" ("+kind.NameField+") VALUES (?) RETURNING id, "+kind.NameField+" AS name", name).
		Scan(&rec).Error
	if err != nil {
		return domain.LookupRecord{}, err
	}
	return rec, nil
}

func (r *LookupRepository) Update(ctx context.Context, kind registry.EntityKind, id int64, name string) (domain.LookupRecord, error) {
	res := r.db.WithContext(ctx).
		Table(kind.Table).
		Where("id = ?", id).
		Update(kind.NameField, name)
	if res.Error != nil {
		return domain.LookupRecord{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.LookupRecord{}, domain.NotFoundError{Resource: kind.DisplayName}
	}
	return domain.LookupRecord{ID: id, Name: name}, nil
}

func (r *LookupRepository) Delete(ctx context.Context, kind registry.EntityKind, id int64) error {
	if dep := kind.Dependent; dep != nil {
		var refs int64
		err := r.db.WithContext(ctx).
			Table(dep.Table).
			Where(dep.Column+" = ?", id).
			Count(&refs).Error
		if err != nil {
			return err
		}
		if refs > 0 {
			return domain.ConflictError{Message: dep.Message}
		}
	}

	res := r.db.WithContext(ctx).Exec("DELETE FROM "+kind.Table+" WHERE id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundError{Resource: kind.DisplayName}
	}
	return nil
}

func (r *LookupRepository) Counts(ctx context.Context, kinds []registry.EntityKind) (domain.LookupCounts, error) {
	counts := make(domain.LookupCounts, len(kinds))
	for _, kind := range kinds {
		var n int64
		err := r.db.WithContext(ctx).Table(kind.Table).Count(&n).Error
		if err != nil {
			return nil, err
		}
		counts[kind.Key] = n
	}
	return counts, nil
}
