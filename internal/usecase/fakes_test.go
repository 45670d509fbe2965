package usecase

import (
	"fmt"
	"sync"

	"github.com/speedo5/FinetechSalesManager-sub002/internal/domain"
	publisher "github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/kafka"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*domain.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (r *fakeUserRepo) GetUserByID(userID string) (*domain.User, error) {
	user, ok := r.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, userID)
	}
	return user, nil
}

func (r *fakeUserRepo) GetUserByName(fullName string) (*domain.User, error) {
	var found *domain.User
	matches := 0
	for _, user := range r.users {
		if user.FullName == fullName {
			found = user
			matches++
		}
	}
	if matches != 1 {
		return nil, fmt.Errorf("%w: user named %q", domain.ErrNotFound, fullName)
	}
	return found, nil
}

func (r *fakeUserRepo) FindActiveUserByRoleAndRegion(role domain.Role, region string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Role == role && user.Region == region && user.Active {
			return user, nil
		}
	}
	return nil, fmt.Errorf("%w: no active %s in region %s", domain.ErrNotFound, role, region)
}

type fakeDeviceRepo struct {
	mu      sync.Mutex
	devices map[string]*domain.Device // keyed by device id
	// onUpdateCustody runs inside UpdateCustody before the compare, letting a
	// test interleave a concurrent write.
	onUpdateCustody func()
}

func newFakeDeviceRepo(devices ...*domain.Device) *fakeDeviceRepo {
	repo := &fakeDeviceRepo{devices: make(map[string]*domain.Device)}
	for _, device := range devices {
		repo.devices[device.ID] = device
	}
	return repo
}

func (r *fakeDeviceRepo) CreateDevice(device *domain.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.devices[device.ID] = device
	return nil
}

func (r *fakeDeviceRepo) GetDeviceByID(deviceID string) (*domain.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	device, ok := r.devices[deviceID]
	if !ok {
		return nil, fmt.Errorf("%w: device %s", domain.ErrNotFound, deviceID)
	}
	copied := *device
	return &copied, nil
}

func (r *fakeDeviceRepo) GetDeviceByIMEI(imei string) (*domain.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, device := range r.devices {
		if device.IMEI == imei {
			copied := *device
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: device with IMEI %s", domain.ErrNotFound, imei)
}

func (r *fakeDeviceRepo) UpdateCustody(deviceID string, expected domain.CustodyState, update domain.CustodyUpdate) error {
	if r.onUpdateCustody != nil {
		r.onUpdateCustody()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	device, ok := r.devices[deviceID]
	if !ok {
		return fmt.Errorf("%w: device %s", domain.ErrNotFound, deviceID)
	}
	if device.Status != expected.Status || device.CurrentHolderID != expected.HolderID {
		return fmt.Errorf("%w: custody of device %s changed", domain.ErrConflict, deviceID)
	}
	device.Status = update.Status
	device.CurrentHolderID = update.HolderID
	if update.Region != "" {
		device.Region = update.Region
	}
	return nil
}

func (r *fakeDeviceRepo) GetDevicesByHolder(holderID string) ([]*domain.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Device
	for _, device := range r.devices {
		if device.CurrentHolderID == holderID {
			copied := *device
			out = append(out, &copied)
		}
	}
	return out, nil
}

// setCustody force-writes custody state, bypassing the compare. Test setup only.
func (r *fakeDeviceRepo) setCustody(deviceID string, status domain.DeviceStatus, holderID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	device := r.devices[deviceID]
	device.Status = status
	device.CurrentHolderID = holderID
}

type fakeAllocationRepo struct {
	mu      sync.Mutex
	records []*domain.AllocationRecord
}

func (r *fakeAllocationRepo) CreateAllocationRecord(record *domain.AllocationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return nil
}

func (r *fakeAllocationRepo) GetAllocationRecordsByDeviceID(deviceID string) ([]*domain.AllocationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.AllocationRecord
	for _, record := range r.records {
		if record.DeviceID == deviceID {
			out = append(out, record)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[string]*domain.Product
}

func (r *fakeProductRepo) GetProductByID(productID string) (*domain.Product, error) {
	product, ok := r.products[productID]
	if !ok {
		return nil, fmt.Errorf("%w: product %s", domain.ErrNotFound, productID)
	}
	return product, nil
}

type fakeCommissionRepo struct {
	mu          sync.Mutex
	commissions map[string]*domain.Commission
}

func newFakeCommissionRepo(commissions ...*domain.Commission) *fakeCommissionRepo {
	repo := &fakeCommissionRepo{commissions: make(map[string]*domain.Commission)}
	for _, commission := range commissions {
		repo.commissions[commission.ID] = commission
	}
	return repo
}

func (r *fakeCommissionRepo) GetCommissionByID(commissionID string) (*domain.Commission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	commission, ok := r.commissions[commissionID]
	if !ok {
		return nil, fmt.Errorf("%w: commission %s", domain.ErrNotFound, commissionID)
	}
	copied := *commission
	return &copied, nil
}

func (r *fakeCommissionRepo) apply(commission *domain.Commission, update domain.CommissionUpdate) {
	commission.Status = update.Status
	if update.ApprovedBy != "" {
		commission.ApprovedBy = update.ApprovedBy
	}
	if update.ApprovedAt != nil {
		commission.ApprovedAt = update.ApprovedAt
	}
	if update.PaidAt != nil {
		commission.PaidAt = update.PaidAt
	}
	if update.PaymentReference != "" {
		commission.PaymentReference = update.PaymentReference
	}
}

func (r *fakeCommissionRepo) UpdateCommissionStatus(commissionID string, expected domain.CommissionStatus, update domain.CommissionUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	commission, ok := r.commissions[commissionID]
	if !ok {
		return fmt.Errorf("%w: commission %s", domain.ErrNotFound, commissionID)
	}
	if commission.Status != expected {
		return fmt.Errorf("%w: commission %s is %s", domain.ErrConflict, commissionID, commission.Status)
	}
	r.apply(commission, update)
	return nil
}

func (r *fakeCommissionRepo) BulkUpdateCommissionStatus(commissionIDs []string, expected domain.CommissionStatus, update domain.CommissionUpdate) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var updated int64
	for _, id := range commissionIDs {
		commission, ok := r.commissions[id]
		if !ok || commission.Status != expected {
			continue
		}
		r.apply(commission, update)
		updated++
	}
	return updated, nil
}

func (r *fakeCommissionRepo) GetCommissionsBySaleID(saleID string) ([]*domain.Commission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Commission
	for _, commission := range r.commissions {
		if commission.SaleID == saleID {
			copied := *commission
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeCommissionRepo) GetCommissionsByUser(userID string, status domain.CommissionStatus) ([]*domain.Commission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Commission
	for _, commission := range r.commissions {
		if commission.UserID != userID {
			continue
		}
		if status != "" && commission.Status != status {
			continue
		}
		copied := *commission
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeCommissionRepo) insert(commissions []*domain.Commission) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, commission := range commissions {
		r.commissions[commission.ID] = commission
	}
}

// fakeSaleRepo mirrors the production transaction: the device custody flip and
// the commission batch either all land or none do.
type fakeSaleRepo struct {
	mu             sync.Mutex
	sales          map[string]*domain.Sale
	deviceRepo     *fakeDeviceRepo
	commissionRepo *fakeCommissionRepo
}

func newFakeSaleRepo(deviceRepo *fakeDeviceRepo, commissionRepo *fakeCommissionRepo) *fakeSaleRepo {
	return &fakeSaleRepo{
		sales:          make(map[string]*domain.Sale),
		deviceRepo:     deviceRepo,
		commissionRepo: commissionRepo,
	}
}

func (r *fakeSaleRepo) CreateDeviceSale(sale *domain.Sale, commissions []*domain.Commission, expected domain.CustodyState) error {
	if err := r.deviceRepo.UpdateCustody(sale.DeviceID, expected, domain.CustodyUpdate{
		Status:   domain.DeviceSold,
		HolderID: expected.HolderID,
	}); err != nil {
		return err
	}
	r.mu.Lock()
	r.sales[sale.ID] = sale
	r.mu.Unlock()
	r.commissionRepo.insert(commissions)
	return nil
}

func (r *fakeSaleRepo) CreateProductSale(sale *domain.Sale, commissions []*domain.Commission) error {
	r.mu.Lock()
	r.sales[sale.ID] = sale
	r.mu.Unlock()
	r.commissionRepo.insert(commissions)
	return nil
}

func (r *fakeSaleRepo) GetSaleByID(saleID string) (*domain.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sale, ok := r.sales[saleID]
	if !ok {
		return nil, fmt.Errorf("%w: sale %s", domain.ErrNotFound, saleID)
	}
	return sale, nil
}

type fakeReceiptSeq struct {
	mu   sync.Mutex
	next int64
}

func (s *fakeReceiptSeq) NextReceiptNumber() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return s.next, nil
}

type fakeStockPublisher struct {
	mu     sync.Mutex
	events []publisher.StockEvent
}

func (p *fakeStockPublisher) PublishStockEvent(event publisher.StockEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

type fakeSalePublisher struct {
	mu     sync.Mutex
	events []publisher.SaleEvent
}

func (p *fakeSalePublisher) PublishSaleEvent(event publisher.SaleEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}
