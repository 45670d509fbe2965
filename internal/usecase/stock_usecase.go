package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"

	"github.com/speedo5/FinetechSalesManager-sub002/internal/domain"
	publisher "github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/kafka"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/metrics"
	stockdto "github.com/speedo5/FinetechSalesManager-sub002/internal/usecase/dto/stock"
)

// StockEventPublisher is satisfied by the kafka publisher.
type StockEventPublisher interface {
	PublishStockEvent(event publisher.StockEvent) error
}

type StockUsecase interface {
	AllocateStock(input *stockdto.AllocateStockInput) (*domain.AllocationRecord, error)
	RecallStock(input *stockdto.RecallStockInput) (*domain.AllocationRecord, error)
	BulkAllocateStock(input *stockdto.BulkAllocateStockInput) (*stockdto.BulkResultOutput, error)
	BulkRecallStock(input *stockdto.BulkRecallStockInput) (*stockdto.BulkResultOutput, error)

	RegisterDevice(input *stockdto.RegisterDeviceInput) (*domain.Device, error)
	GetDeviceByIMEI(imei string) (*stockdto.DeviceHistoryOutput, error)
	GetDevicesByHolder(holderID string) ([]*domain.Device, error)
}

type DefaultStockUsecase struct {
	deviceRepo     domain.DeviceRepository
	userRepo       domain.UserRepository
	allocationRepo domain.AllocationRepository
	publisher      StockEventPublisher
	metrics        *metrics.SalesMetrics
}

func NewDefaultStockUsecase(
	deviceRepo domain.DeviceRepository,
	userRepo domain.UserRepository,
	allocationRepo domain.AllocationRepository,
	stockPublisher StockEventPublisher,
	salesMetrics *metrics.SalesMetrics) *DefaultStockUsecase {

	return &DefaultStockUsecase{
		deviceRepo:     deviceRepo,
		userRepo:       userRepo,
		allocationRepo: allocationRepo,
		publisher:      stockPublisher,
		metrics:        salesMetrics,
	}
}

func (uc *DefaultStockUsecase) AllocateStock(input *stockdto.AllocateStockInput) (*domain.AllocationRecord, error) {
	device, err := uc.deviceRepo.GetDeviceByIMEI(input.DeviceIMEI)
	if err != nil {
		return nil, uc.fail("allocate", err)
	}
	fromUser, err := uc.userRepo.GetUserByID(input.FromUserID)
	if err != nil {
		return nil, uc.fail("allocate", err)
	}
	toUser, err := uc.userRepo.GetUserByID(input.ToUserID)
	if err != nil {
		return nil, uc.fail("allocate", err)
	}
	if !toUser.Active {
		return nil, uc.fail("allocate", fmt.Errorf("%w: recipient %s is not active", domain.ErrNotFound, toUser.ID))
	}

	if device.Status == domain.DeviceSold {
		return nil, uc.fail("allocate", fmt.Errorf("%w: device %s is already sold", domain.ErrInvalidState, device.IMEI))
	}

	target, ok := domain.AllowedAllocationTarget(fromUser.Role)
	if !ok || toUser.Role != target {
		return nil, uc.fail("allocate", fmt.Errorf("%w: role %s cannot allocate stock to role %s", domain.ErrUnauthorized, fromUser.Role, toUser.Role))
	}

	// Only admin may hand out stock they do not hold (depot allocation).
	if fromUser.Role != domain.RoleAdmin && device.CurrentHolderID != fromUser.ID {
		return nil, uc.fail("allocate", fmt.Errorf("%w: device %s is not held by %s", domain.ErrUnauthorized, device.IMEI, fromUser.ID))
	}

	switch fromUser.Role {
	case domain.RoleRegionalManager:
		if toUser.Region != fromUser.Region {
			return nil, uc.fail("allocate", fmt.Errorf("%w: recipient region %q does not match regional manager region %q", domain.ErrUnauthorized, toUser.Region, fromUser.Region))
		}
	case domain.RoleTeamLeader:
		if toUser.TeamLeaderID != fromUser.ID {
			return nil, uc.fail("allocate", fmt.Errorf("%w: field officer %s does not report to team leader %s", domain.ErrUnauthorized, toUser.ID, fromUser.ID))
		}
	}

	update := domain.CustodyUpdate{
		Status:   domain.DeviceAllocated,
		HolderID: toUser.ID,
	}
	// Device region is stamped at the regional-manager tier only.
	if toUser.Role == domain.RoleRegionalManager && toUser.Region != "" {
		update.Region = toUser.Region
	}

	expected := domain.CustodyState{Status: device.Status, HolderID: device.CurrentHolderID}
	if err := uc.deviceRepo.UpdateCustody(device.ID, expected, update); err != nil {
		return nil, uc.fail("allocate", err)
	}

	idGenerator, err := nanoid.Standard(21)
	if err != nil {
		return nil, err
	}

	record := &domain.AllocationRecord{
		ID:         idGenerator(),
		DeviceID:   device.ID,
		ProductID:  device.ProductID,
		FromUserID: fromUser.ID,
		ToUserID:   toUser.ID,
		FromLevel:  fromUser.Role,
		ToLevel:    toUser.Role,
		Type:       domain.AllocationTypeAllocation,
		Status:     domain.AllocationCompleted,
		Notes:      input.Notes,
		CreatedAt:  time.Now(),
	}
	if err := uc.allocationRepo.CreateAllocationRecord(record); err != nil {
		return nil, err
	}

	uc.metrics.AllocationsTotal.WithLabelValues(string(fromUser.Role), string(toUser.Role)).Inc()
	uc.publishStockEvent(publisher.StockEvent{
		DeviceIMEI: device.IMEI,
		Type:       string(domain.AllocationTypeAllocation),
		FromUserID: fromUser.ID,
		ToUserID:   toUser.ID,
		FromLevel:  string(fromUser.Role),
		ToLevel:    string(toUser.Role),
	})
	slog.Info("stock allocated", "imei", device.IMEI, "from", fromUser.ID, "to", toUser.ID)

	return record, nil
}

func (uc *DefaultStockUsecase) RecallStock(input *stockdto.RecallStockInput) (*domain.AllocationRecord, error) {
	device, err := uc.deviceRepo.GetDeviceByIMEI(input.DeviceIMEI)
	if err != nil {
		return nil, uc.fail("recall", err)
	}
	recaller, err := uc.userRepo.GetUserByID(input.RecallerID)
	if err != nil {
		return nil, uc.fail("recall", err)
	}

	if device.Status == domain.DeviceSold {
		return nil, uc.fail("recall", fmt.Errorf("%w: device %s is already sold", domain.ErrInvalidState, device.IMEI))
	}
	if device.CurrentHolderID == "" {
		return nil, uc.fail("recall", fmt.Errorf("%w: device %s has no current holder", domain.ErrInvalidState, device.IMEI))
	}

	holder, err := uc.userRepo.GetUserByID(device.CurrentHolderID)
	if err != nil {
		return nil, uc.fail("recall", err)
	}

	if !domain.CanRecall(recaller.Role, holder.Role) {
		return nil, uc.fail("recall", fmt.Errorf("%w: role %s cannot recall stock from role %s", domain.ErrUnauthorized, recaller.Role, holder.Role))
	}
	// The structural check is strictly tighter than the rank check and always
	// applied in addition to it.
	switch recaller.Role {
	case domain.RoleRegionalManager:
		if holder.Region != recaller.Region {
			return nil, uc.fail("recall", fmt.Errorf("%w: holder region %q does not match regional manager region %q", domain.ErrUnauthorized, holder.Region, recaller.Region))
		}
	case domain.RoleTeamLeader:
		if holder.TeamLeaderID != recaller.ID {
			return nil, uc.fail("recall", fmt.Errorf("%w: holder %s does not report to team leader %s", domain.ErrUnauthorized, holder.ID, recaller.ID))
		}
	}

	update := domain.CustodyUpdate{
		Status:   domain.DeviceAllocated,
		HolderID: recaller.ID,
	}
	if recaller.Role == domain.RoleAdmin {
		// Admin recall returns the unit to the depot.
		update = domain.CustodyUpdate{Status: domain.DeviceInStock, HolderID: ""}
	}

	expected := domain.CustodyState{Status: device.Status, HolderID: device.CurrentHolderID}
	if err := uc.deviceRepo.UpdateCustody(device.ID, expected, update); err != nil {
		return nil, uc.fail("recall", err)
	}

	idGenerator, err := nanoid.Standard(21)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record := &domain.AllocationRecord{
		ID:           idGenerator(),
		DeviceID:     device.ID,
		ProductID:    device.ProductID,
		FromUserID:   holder.ID,
		ToUserID:     recaller.ID,
		FromLevel:    holder.Role,
		ToLevel:      recaller.Role,
		Type:         domain.AllocationTypeRecall,
		Status:       domain.AllocationRecalled,
		RecallReason: input.Reason,
		RecalledAt:   &now,
		RecalledBy:   recaller.ID,
		CreatedAt:    now,
	}
	if err := uc.allocationRepo.CreateAllocationRecord(record); err != nil {
		return nil, err
	}

	uc.metrics.RecallsTotal.WithLabelValues(string(recaller.Role)).Inc()
	uc.publishStockEvent(publisher.StockEvent{
		DeviceIMEI: device.IMEI,
		Type:       string(domain.AllocationTypeRecall),
		FromUserID: holder.ID,
		ToUserID:   recaller.ID,
		FromLevel:  string(holder.Role),
		ToLevel:    string(recaller.Role),
		Reason:     input.Reason,
	})
	slog.Info("stock recalled", "imei", device.IMEI, "holder", holder.ID, "recaller", recaller.ID)

	return record, nil
}

// BulkAllocateStock runs each device through AllocateStock independently and
// never aborts the batch; the caller retries only the failed subset.
func (uc *DefaultStockUsecase) BulkAllocateStock(input *stockdto.BulkAllocateStockInput) (*stockdto.BulkResultOutput, error) {
	out := &stockdto.BulkResultOutput{
		Succeeded: []string{},
		Failed:    []stockdto.BulkFailure{},
	}

	for _, imei := range input.DeviceIMEIs {
		_, err := uc.AllocateStock(&stockdto.AllocateStockInput{
			DeviceIMEI: imei,
			FromUserID: input.FromUserID,
			ToUserID:   input.ToUserID,
			Notes:      input.Notes,
		})
		if err != nil {
			out.Failed = append(out.Failed, stockdto.BulkFailure{DeviceIMEI: imei, Reason: err.Error()})
			continue
		}
		out.Succeeded = append(out.Succeeded, imei)
	}

	uc.metrics.BulkBatchSize.WithLabelValues("allocate").Observe(float64(len(input.DeviceIMEIs)))
	return out, nil
}

func (uc *DefaultStockUsecase) BulkRecallStock(input *stockdto.BulkRecallStockInput) (*stockdto.BulkResultOutput, error) {
	out := &stockdto.BulkResultOutput{
		Succeeded: []string{},
		Failed:    []stockdto.BulkFailure{},
	}

	for _, imei := range input.DeviceIMEIs {
		_, err := uc.RecallStock(&stockdto.RecallStockInput{
			DeviceIMEI: imei,
			RecallerID: input.RecallerID,
			Reason:     input.Reason,
		})
		if err != nil {
			out.Failed = append(out.Failed, stockdto.BulkFailure{DeviceIMEI: imei, Reason: err.Error()})
			continue
		}
		out.Succeeded = append(out.Succeeded, imei)
	}

	uc.metrics.BulkBatchSize.WithLabelValues("recall").Observe(float64(len(input.DeviceIMEIs)))
	return out, nil
}

func (uc *DefaultStockUsecase) RegisterDevice(input *stockdto.RegisterDeviceInput) (*domain.Device, error) {
	if _, err := uc.deviceRepo.GetDeviceByIMEI(input.IMEI); err == nil {
		return nil, fmt.Errorf("%w: device with IMEI %s already registered", domain.ErrConflict, input.IMEI)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	device := &domain.Device{
		ID:               uuid.NewString(),
		IMEI:             input.IMEI,
		SerialNumber:     input.SerialNumber,
		ProductID:        input.ProductID,
		Status:           domain.DeviceInStock,
		CommissionConfig: input.CommissionConfig,
		RegisteredBy:     input.RegisteredBy,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.deviceRepo.CreateDevice(device); err != nil {
		return nil, err
	}

	return device, nil
}

func (uc *DefaultStockUsecase) GetDeviceByIMEI(imei string) (*stockdto.DeviceHistoryOutput, error) {
	device, err := uc.deviceRepo.GetDeviceByIMEI(imei)
	if err != nil {
		return nil, err
	}
	history, err := uc.allocationRepo.GetAllocationRecordsByDeviceID(device.ID)
	if err != nil {
		return nil, err
	}

	return &stockdto.DeviceHistoryOutput{Device: device, History: history}, nil
}

func (uc *DefaultStockUsecase) GetDevicesByHolder(holderID string) ([]*domain.Device, error) {
	return uc.deviceRepo.GetDevicesByHolder(holderID)
}

func (uc *DefaultStockUsecase) fail(operation string, err error) error {
	uc.metrics.TransferFailuresTotal.WithLabelValues(operation, failureReason(err)).Inc()
	return err
}

func (uc *DefaultStockUsecase) publishStockEvent(event publisher.StockEvent) {
	if uc.publisher == nil {
		return
	}
	go func(event publisher.StockEvent) {
		if err := uc.publisher.PublishStockEvent(event); err != nil {
			slog.Error("failed to publish kafka StockEvent", "type", event.Type, "error", err.Error())
		}
	}(event)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	}
	return "internal"
}
