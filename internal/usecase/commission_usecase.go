package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/shopspring/decimal"

	"github.com/speedo5/FinetechSalesManager-sub002/internal/domain"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/metrics"
)

type CommissionUsecase interface {
	// ComputeCommissions derives zero to three PENDING commission entries for a
	// sale. Entries are returned, not persisted; the sale usecase writes them
	// inside its transaction.
	ComputeCommissions(saleID string, cfg domain.CommissionConfig, seller *domain.User) ([]*domain.Commission, error)

	ApproveCommission(commissionID, adminID string) error
	RejectCommission(commissionID, adminID string) error
	PayCommission(commissionID, paymentReference string) error
	BulkApproveCommissions(commissionIDs []string, adminID string) (int64, error)
	BulkPayCommissions(commissionIDs []string, paymentReference string) (int64, error)

	GetCommissionsBySaleID(saleID string) ([]*domain.Commission, error)
	GetCommissionsByUser(userID string, status domain.CommissionStatus) ([]*domain.Commission, error)
}

type DefaultCommissionUsecase struct {
	commissionRepo domain.CommissionRepository
	userRepo       domain.UserRepository
	metrics        *metrics.SalesMetrics
}

func NewDefaultCommissionUsecase(
	commissionRepo domain.CommissionRepository,
	userRepo domain.UserRepository,
	salesMetrics *metrics.SalesMetrics) *DefaultCommissionUsecase {

	return &DefaultCommissionUsecase{
		commissionRepo: commissionRepo,
		userRepo:       userRepo,
		metrics:        salesMetrics,
	}
}

func (uc *DefaultCommissionUsecase) ComputeCommissions(saleID string, cfg domain.CommissionConfig, seller *domain.User) ([]*domain.Commission, error) {
	idGenerator, err := nanoid.Standard(21)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entries := make([]*domain.Commission, 0, 3)
	appendEntry := func(userID string, role domain.Role, amount decimal.Decimal) {
		entries = append(entries, &domain.Commission{
			ID:        idGenerator(),
			SaleID:    saleID,
			UserID:    userID,
			Role:      role,
			Amount:    amount,
			Status:    domain.CommissionPending,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	// Seller's own commission.
	var own decimal.Decimal
	switch seller.Role {
	case domain.RoleFieldOfficer:
		own = cfg.FOCommission
	case domain.RoleTeamLeader:
		own = cfg.TeamLeaderCommission
	case domain.RoleRegionalManager:
		own = cfg.RegionalManagerCommission
	}
	if own.IsPositive() {
		appendEntry(seller.ID, seller.Role, own)
	}

	// Team-leader override, only on a field officer's sale. Fires regardless of
	// whether the seller earned an own commission.
	if seller.Role == domain.RoleFieldOfficer && seller.TeamLeaderID != "" && cfg.TeamLeaderCommission.IsPositive() {
		appendEntry(seller.TeamLeaderID, domain.RoleTeamLeader, cfg.TeamLeaderCommission)
	}

	// Regional-manager commission: prefer the seller's back-reference, fall back
	// to a region lookup.
	rmID := seller.RegionalManagerID
	if rmID == "" && cfg.RegionalManagerCommission.IsPositive() && seller.Region != "" {
		rm, err := uc.userRepo.FindActiveUserByRoleAndRegion(domain.RoleRegionalManager, seller.Region)
		switch {
		case err == nil:
			rmID = rm.ID
		case errors.Is(err, domain.ErrNotFound):
			// No regional manager covers the region; skip the entry.
		default:
			return nil, err
		}
	}
	// The equality guard keeps a regional manager selling directly from being
	// paid twice.
	if rmID != "" && rmID != seller.ID && cfg.RegionalManagerCommission.IsPositive() {
		appendEntry(rmID, domain.RoleRegionalManager, cfg.RegionalManagerCommission)
	}

	return entries, nil
}

func (uc *DefaultCommissionUsecase) ApproveCommission(commissionID, adminID string) error {
	commission, err := uc.commissionRepo.GetCommissionByID(commissionID)
	if err != nil {
		return err
	}
	if commission.Status != domain.CommissionPending {
		return fmt.Errorf("%w: commission %s is %s, only %s can be approved", domain.ErrInvalidState, commissionID, commission.Status, domain.CommissionPending)
	}

	now := time.Now()
	if err := uc.commissionRepo.UpdateCommissionStatus(commissionID, domain.CommissionPending, domain.CommissionUpdate{
		Status:     domain.CommissionApproved,
		ApprovedBy: adminID,
		ApprovedAt: &now,
	}); err != nil {
		return err
	}

	uc.metrics.CommissionStatusUpdatesTotal.WithLabelValues(string(domain.CommissionApproved)).Inc()
	return nil
}

func (uc *DefaultCommissionUsecase) RejectCommission(commissionID, adminID string) error {
	commission, err := uc.commissionRepo.GetCommissionByID(commissionID)
	if err != nil {
		return err
	}
	if commission.Status != domain.CommissionPending {
		return fmt.Errorf("%w: commission %s is %s, only %s can be rejected", domain.ErrInvalidState, commissionID, commission.Status, domain.CommissionPending)
	}

	now := time.Now()
	if err := uc.commissionRepo.UpdateCommissionStatus(commissionID, domain.CommissionPending, domain.CommissionUpdate{
		Status:     domain.CommissionRejected,
		ApprovedBy: adminID,
		ApprovedAt: &now,
	}); err != nil {
		return err
	}

	uc.metrics.CommissionStatusUpdatesTotal.WithLabelValues(string(domain.CommissionRejected)).Inc()
	return nil
}

func (uc *DefaultCommissionUsecase) PayCommission(commissionID, paymentReference string) error {
	commission, err := uc.commissionRepo.GetCommissionByID(commissionID)
	if err != nil {
		return err
	}
	if commission.Status == domain.CommissionPaid {
		return fmt.Errorf("%w: commission %s is already paid", domain.ErrInvalidState, commissionID)
	}

	now := time.Now()
	if err := uc.commissionRepo.UpdateCommissionStatus(commissionID, commission.Status, domain.CommissionUpdate{
		Status:           domain.CommissionPaid,
		PaidAt:           &now,
		PaymentReference: paymentReference,
	}); err != nil {
		return err
	}

	uc.metrics.CommissionStatusUpdatesTotal.WithLabelValues(string(domain.CommissionPaid)).Inc()
	return nil
}

// BulkApproveCommissions is a single conditional set-update returning only a
// count. Entries not currently PENDING are silently skipped; there is no
// per-item breakdown, unlike bulk allocate/recall.
func (uc *DefaultCommissionUsecase) BulkApproveCommissions(commissionIDs []string, adminID string) (int64, error) {
	now := time.Now()
	count, err := uc.commissionRepo.BulkUpdateCommissionStatus(commissionIDs, domain.CommissionPending, domain.CommissionUpdate{
		Status:     domain.CommissionApproved,
		ApprovedBy: adminID,
		ApprovedAt: &now,
	})
	if err != nil {
		return 0, err
	}

	uc.metrics.CommissionStatusUpdatesTotal.WithLabelValues(string(domain.CommissionApproved)).Add(float64(count))
	return count, nil
}

func (uc *DefaultCommissionUsecase) BulkPayCommissions(commissionIDs []string, paymentReference string) (int64, error) {
	now := time.Now()
	count, err := uc.commissionRepo.BulkUpdateCommissionStatus(commissionIDs, domain.CommissionApproved, domain.CommissionUpdate{
		Status:           domain.CommissionPaid,
		PaidAt:           &now,
		PaymentReference: paymentReference,
	})
	if err != nil {
		return 0, err
	}

	uc.metrics.CommissionStatusUpdatesTotal.WithLabelValues(string(domain.CommissionPaid)).Add(float64(count))
	return count, nil
}

func (uc *DefaultCommissionUsecase) GetCommissionsBySaleID(saleID string) ([]*domain.Commission, error) {
	return uc.commissionRepo.GetCommissionsBySaleID(saleID)
}

func (uc *DefaultCommissionUsecase) GetCommissionsByUser(userID string, status domain.CommissionStatus) ([]*domain.Commission, error) {
	return uc.commissionRepo.GetCommissionsByUser(userID, status)
}
