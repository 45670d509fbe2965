package saledto

import "github.com/speedo5/FinetechSalesManager-sub002/internal/domain"

type SaleOutput struct {
	Sale        *domain.Sale
	Commissions []*domain.Commission
}
