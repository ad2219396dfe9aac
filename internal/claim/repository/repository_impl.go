package repository

import (
	"context"
	"fmt"

	"github.com/fogonlabs/fogon/internal/claim/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, claim *domain.Claim) error {
	var maxSeq int64
	if err := db.WithContext(ctx).Raw(
		`SELECT COALESCE(MAX(numero_seq), 0) FROM reclamaciones`,
	).Scan(&maxSeq).Error; err != nil {
		return err
	}

	claim.NumeroSeq = maxSeq + 1
	claim.NumeroHoja = fmt.Sprintf("R-%06d", claim.NumeroSeq)

	return db.WithContext(ctx).Create(claim).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Claim, error) {
	var c domain.Claim
	err := db.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&c).Error
	if err != nil {
		return nil, err
	}
	if c.ID == 0 {
		return nil, nil
	}
	return &c, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Claim, error) {
	var items []domain.Claim
	err := db.WithContext(ctx).
		Order("fecha_registro DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, claim *domain.Claim) error {
	if claim == nil || claim.ID == 0 {
		return gorm.ErrInvalidData
	}
	// Only the management block is writable after creation. Select
	// keeps consumer/subject/snapshot columns out of the statement.
	return db.WithContext(ctx).
		Model(&domain.Claim{}).
		Where("id = ?", claim.ID).
		Select(
			"estado",
			"respuesta_proveedor",
			"fecha_respuesta",
			"fecha_comunicacion_respuesta",
			"acciones_proveedor",
			"acciones_fecha",
			"confirmacion_proveedor",
			"confirmacion_proveedor_fecha",
			"prorroga_hasta",
			"prorroga_motivo",
			"prorroga_fecha_comunicacion",
		).
		Updates(claim).Error
}
