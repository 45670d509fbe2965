package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/speedo5/FinetechSalesManager-sub002/internal/domain"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/postgres/mappers"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/postgres/models"
)

type DefaultSaleRepository struct {
	DB *gorm.DB
}

func NewDefaultSaleRepository(db *gorm.DB) *DefaultSaleRepository {
	return &DefaultSaleRepository{DB: db}
}

// CreateDeviceSale runs the terminal custody flip, the sale insert and the
// commission batch insert as one transaction. The conditional custody update
// inside the transaction rejects a sale raced by a concurrent transfer.
func (r *DefaultSaleRepository) CreateDeviceSale(sale *domain.Sale, commissions []*domain.Commission, expected domain.CustodyState) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		update := domain.CustodyUpdate{
			Status:   domain.DeviceSold,
			HolderID: expected.HolderID,
		}
		if err := updateCustody(tx, sale.DeviceID, expected, update); err != nil {
			return err
		}

		if err := tx.Create(mappers.ToGORMSale(sale)).Error; err != nil {
			return err
		}

		return createCommissions(tx, commissions)
	})
}

func (r *DefaultSaleRepository) CreateProductSale(sale *domain.Sale, commissions []*domain.Commission) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(mappers.ToGORMSale(sale)).Error; err != nil {
			return err
		}

		return createCommissions(tx, commissions)
	})
}

func createCommissions(tx *gorm.DB, commissions []*domain.Commission) error {
	if len(commissions) == 0 {
		return nil
	}

	commissionModels := make([]*models.CommissionModel, len(commissions))
	for i, commission := range commissions {
		commissionModels[i] = mappers.ToGORMCommission(commission)
	}

	return tx.Create(commissionModels).Error
}

func (r *DefaultSaleRepository) GetSaleByID(saleID string) (*domain.Sale, error) {
	var saleModel models.SaleModel
	if err := r.DB.First(&saleModel, "id = ?", saleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: sale %s", domain.ErrNotFound, saleID)
		}
		return nil, err
	}

	return mappers.ToDomainSale(&saleModel), nil
}
