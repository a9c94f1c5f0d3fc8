package repository

import (
	"context"

	"bundle-invoice-demo/internal/model"

	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(ctx context.Context, record *model.InvoiceRecord) error
	FindByInvoiceID(ctx context.Context, invoiceID string) (*model.InvoiceRecord, error)
}

type invoiceRepoImpl struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepoImpl{
		db: db,
	}
}

func (r *invoiceRepoImpl) Create(ctx context.Context, record *model.InvoiceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *invoiceRepoImpl) FindByInvoiceID(ctx context.Context, invoiceID string) (*model.InvoiceRecord, error) {
	var record model.InvoiceRecord
	err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		First(&record).Error

	if err != nil {
		return nil, err
	}

	return &record, nil
}
