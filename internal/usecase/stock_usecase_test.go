package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/speedo5/FinetechSalesManager-sub002/internal/domain"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/metrics"
	stockdto "github.com/speedo5/FinetechSalesManager-sub002/internal/usecase/dto/stock"
)

const testIMEI = "354000111222333"

func testMetrics() *metrics.SalesMetrics {
	return metrics.NewSalesMetricsWith(prometheus.NewRegistry())
}

// hierarchyFixture wires a minimal org tree: one admin, two regional managers
// covering Coast and Inland, one team leader under the Coast manager and two
// field officers, one of them reporting to that team leader.
func hierarchyFixture() *fakeUserRepo {
	return newFakeUserRepo(
		&domain.User{ID: "admin-1", FullName: "Head Office", Role: domain.RoleAdmin, Active: true},
		&domain.User{ID: "rm-1", FullName: "Coast Manager", Role: domain.RoleRegionalManager, Region: "Coast", Active: true},
		&domain.User{ID: "rm-2", FullName: "Inland Manager", Role: domain.RoleRegionalManager, Region: "Inland", Active: true},
		&domain.User{ID: "tl-1", FullName: "Coast Team Lead", Role: domain.RoleTeamLeader, Region: "Coast", RegionalManagerID: "rm-1", Active: true},
		&domain.User{ID: "tl-2", FullName: "Inland Team Lead", Role: domain.RoleTeamLeader, Region: "Inland", RegionalManagerID: "rm-2", Active: true},
		&domain.User{ID: "fo-1", FullName: "Coast Officer", Role: domain.RoleFieldOfficer, Region: "Coast", TeamLeaderID: "tl-1", RegionalManagerID: "rm-1", Active: true},
		&domain.User{ID: "fo-2", FullName: "Stray Officer", Role: domain.RoleFieldOfficer, Region: "Coast", TeamLeaderID: "tl-9", RegionalManagerID: "rm-1", Active: true},
	)
}

func depotDevice(id, imei string) *domain.Device {
	return &domain.Device{
		ID:        id,
		IMEI:      imei,
		ProductID: "prod-1",
		Status:    domain.DeviceInStock,
	}
}

func newStockFixture(devices ...*domain.Device) (*DefaultStockUsecase, *fakeDeviceRepo, *fakeAllocationRepo) {
	deviceRepo := newFakeDeviceRepo(devices...)
	allocationRepo := &fakeAllocationRepo{}
	uc := NewDefaultStockUsecase(deviceRepo, hierarchyFixture(), allocationRepo, nil, testMetrics())
	return uc, deviceRepo, allocationRepo
}

func allocate(uc *DefaultStockUsecase, imei, from, to string) (*domain.AllocationRecord, error) {
	return uc.AllocateStock(&stockdto.AllocateStockInput{DeviceIMEI: imei, FromUserID: from, ToUserID: to})
}

func TestAllocateStockRolePairs(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr error
	}{
		{"admin to regional manager", "admin-1", "rm-1", nil},
		{"admin to team leader skips a tier", "admin-1", "tl-1", domain.ErrUnauthorized},
		{"admin to field officer skips two tiers", "admin-1", "fo-1", domain.ErrUnauthorized},
		{"admin to admin", "admin-1", "admin-1", domain.ErrUnauthorized},
		{"regional manager to field officer skips a tier", "rm-1", "fo-1", domain.ErrUnauthorized},
		{"team leader to team leader", "tl-1", "tl-2", domain.ErrUnauthorized},
		{"field officer cannot allocate", "fo-1", "fo-2", domain.ErrUnauthorized},
		{"upward allocation", "tl-1", "rm-1", domain.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _ := newStockFixture(depotDevice("dev-1", testIMEI))
			_, err := allocate(uc, testIMEI, tt.from, tt.to)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAllocateStockDepotStampRegion(t *testing.T) {
	uc, deviceRepo, allocationRepo := newStockFixture(depotDevice("dev-1", testIMEI))

	record, err := allocate(uc, testIMEI, "admin-1", "rm-1")
	if err != nil {
		t.Fatalf("depot allocation failed: %v", err)
	}
	if record.FromLevel != domain.RoleAdmin || record.ToLevel != domain.RoleRegionalManager {
		t.Errorf("record levels = %s -> %s, want admin -> regional_manager", record.FromLevel, record.ToLevel)
	}
	if record.Type != domain.AllocationTypeAllocation || record.Status != domain.AllocationCompleted {
		t.Errorf("record = %s/%s, want ALLOCATION/COMPLETED", record.Type, record.Status)
	}

	device, _ := deviceRepo.GetDeviceByIMEI(testIMEI)
	if device.Status != domain.DeviceAllocated || device.CurrentHolderID != "rm-1" {
		t.Errorf("device custody = %s/%s, want ALLOCATED/rm-1", device.Status, device.CurrentHolderID)
	}
	if device.Region != "Coast" {
		t.Errorf("device region = %q, want Coast stamped at regional tier", device.Region)
	}

	history, _ := allocationRepo.GetAllocationRecordsByDeviceID("dev-1")
	if len(history) != 1 {
		t.Errorf("expected 1 ledger entry, got %d", len(history))
	}
}

func TestAllocateStockHolderRequired(t *testing.T) {
	uc, deviceRepo, _ := newStockFixture(depotDevice("dev-1", testIMEI))
	// Device sits with rm-2; rm-1 does not hold it.
	deviceRepo.setCustody("dev-1", domain.DeviceAllocated, "rm-2")

	if _, err := allocate(uc, testIMEI, "rm-1", "tl-1"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("non-holder allocation: got %v, want ErrUnauthorized", err)
	}
}

func TestAllocateStockRegionMismatch(t *testing.T) {
	uc, deviceRepo, _ := newStockFixture(depotDevice("dev-1", testIMEI))
	deviceRepo.setCustody("dev-1", domain.DeviceAllocated, "rm-1")

	// tl-2 belongs to Inland, rm-1 covers Coast.
	if _, err := allocate(uc, testIMEI, "rm-1", "tl-2"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("cross-region allocation: got %v, want ErrUnauthorized", err)
	}
}

func TestAllocateStockTeamMismatch(t *testing.T) {
	uc, deviceRepo, _ := newStockFixture(depotDevice("dev-1", testIMEI))
	deviceRepo.setCustody("dev-1", domain.DeviceAllocated, "tl-1")

	// fo-2 reports to tl-9, not tl-1.
	if _, err := allocate(uc, testIMEI, "tl-1", "fo-2"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("cross-team allocation: got %v, want ErrUnauthorized", err)
	}
}

func TestAllocateStockSoldDevice(t *testing.T) {
	uc, deviceRepo, _ := newStockFixture(depotDevice("dev-1", testIMEI))
	deviceRepo.setCustody("dev-1", domain.DeviceSold, "fo-1")

	if _, err := allocate(uc, testIMEI, "admin-1", "rm-1"); !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("allocation of sold device: got %v, want ErrInvalidState", err)
	}
}

func TestAllocateStockUnknownDevice(t *testing.T) {
	uc, _, _ := newStockFixture()
	if _, err := allocate(uc, testIMEI, "admin-1", "rm-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown device: got %v, want ErrNotFound", err)
	}
}

func TestAllocateStockConcurrentConflict(t *testing.T) {
	uc, deviceRepo, _ := newStockFixture(depotDevice("dev-1", testIMEI))
	// Another writer wins between the read and the conditional write.
	deviceRepo.onUpdateCustody = func() {
		deviceRepo.onUpdateCustody = nil
		deviceRepo.setCustody("dev-1", domain.DeviceAllocated, "rm-2")
	}

	if _, err := allocate(uc, testIMEI, "admin-1", "rm-1"); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("lost custody race: got %v, want ErrConflict", err)
	}

	device, _ := deviceRepo.GetDeviceByIMEI(testIMEI)
	if device.CurrentHolderID != "rm-2" {
		t.Errorf("losing write must not override the winner, holder = %s", device.CurrentHolderID)
	}
}

func TestRecallStockWithinTeam(t *testing.T) {
	uc, deviceRepo, _ := newStockFixture(depotDevice("dev-1", testIMEI))
	deviceRepo.setCustody("dev-1", domain.DeviceAllocated, "fo-1")

	record, err := uc.RecallStock(&stockdto.RecallStockInput{DeviceIMEI: testIMEI, RecallerID: "tl-1", Reason: "end of campaign"})
	if err != nil {
		t.Fatalf("team recall failed: %v", err)
	}
	if record.Type != domain.AllocationTypeRecall || record.Status != domain.AllocationRecalled {
		t.Errorf("record = %s/%s, want RECALL/RECALLED", record.Type, record.Status)
	}
	if record.RecallReason != "end of campaign" || record.RecalledBy != "tl-1" || record.RecalledAt == nil {
		t.Errorf("recall audit fields not filled: %+v", record)
	}

	device, _ := deviceRepo.GetDeviceByIMEI(testIMEI)
	if device.Status != domain.DeviceAllocated || device.CurrentHolderID != "tl-1" {
		t.Errorf("device custody = %s/%s, want ALLOCATED/tl-1", device.Status, device.CurrentHolderID)
	}
}

func TestRecallStockAdminToDepot(t *testing.T) {
	uc, deviceRepo, _ := newStockFixture(depotDevice("dev-1", testIMEI))
	deviceRepo.setCustody("dev-1", domain.DeviceAllocated, "fo-1")

	if _, err := uc.RecallStock(&stockdto.RecallStockInput{DeviceIMEI: testIMEI, RecallerID: "admin-1"}); err != nil {
		t.Fatalf("admin recall failed: %v", err)
	}

	device, _ := deviceRepo.GetDeviceByIMEI(testIMEI)
	if device.Status != domain.DeviceInStock || device.CurrentHolderID != "" {
		t.Errorf("device custody = %s/%q, want IN_STOCK back in depot", device.Status, device.CurrentHolderID)
	}
}

func TestRecallStockDenied(t *testing.T) {
	tests := []struct {
		name     string
		holder   string
		recaller string
		wantErr  error
	}{
		{"field officer cannot recall", "tl-1", "fo-1", domain.ErrUnauthorized},
		{"same rank cannot recall", "tl-2", "tl-1", domain.ErrUnauthorized},
		{"regional manager outside region", "tl-1", "rm-2", domain.ErrUnauthorized},
		{"team leader outside team", "fo-2", "tl-1", domain.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, deviceRepo, _ := newStockFixture(depotDevice("dev-1", testIMEI))
			deviceRepo.setCustody("dev-1", domain.DeviceAllocated, tt.holder)

			_, err := uc.RecallStock(&stockdto.RecallStockInput{DeviceIMEI: testIMEI, RecallerID: tt.recaller})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecallStockInvalidStates(t *testing.T) {
	uc, deviceRepo, _ := newStockFixture(depotDevice("dev-1", testIMEI))

	// Depot stock has no holder to recall from.
	if _, err := uc.RecallStock(&stockdto.RecallStockInput{DeviceIMEI: testIMEI, RecallerID: "admin-1"}); !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("depot recall: got %v, want ErrInvalidState", err)
	}

	deviceRepo.setCustody("dev-1", domain.DeviceSold, "fo-1")
	if _, err := uc.RecallStock(&stockdto.RecallStockInput{DeviceIMEI: testIMEI, RecallerID: "admin-1"}); !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("sold recall: got %v, want ErrInvalidState", err)
	}
}

// Full custody round trip along the hierarchy and back to the depot.
func TestStockCustodyRoundTrip(t *testing.T) {
	uc, deviceRepo, allocationRepo := newStockFixture(depotDevice("dev-1", testIMEI))

	hops := []struct{ from, to string }{
		{"admin-1", "rm-1"},
		{"rm-1", "tl-1"},
		{"tl-1", "fo-1"},
	}
	for _, hop := range hops {
		if _, err := allocate(uc, testIMEI, hop.from, hop.to); err != nil {
			t.Fatalf("allocation %s -> %s failed: %v", hop.from, hop.to, err)
		}
	}

	if _, err := uc.RecallStock(&stockdto.RecallStockInput{DeviceIMEI: testIMEI, RecallerID: "admin-1", Reason: "stock audit"}); err != nil {
		t.Fatalf("final recall failed: %v", err)
	}

	device, _ := deviceRepo.GetDeviceByIMEI(testIMEI)
	if device.Status != domain.DeviceInStock || device.CurrentHolderID != "" {
		t.Fatalf("device did not return to depot: %s/%q", device.Status, device.CurrentHolderID)
	}

	history, _ := allocationRepo.GetAllocationRecordsByDeviceID("dev-1")
	if len(history) != 4 {
		t.Fatalf("expected 4 ledger entries, got %d", len(history))
	}
	for i, record := range history[:3] {
		if record.Type != domain.AllocationTypeAllocation {
			t.Errorf("entry %d type = %s, want ALLOCATION", i, record.Type)
		}
	}
	if history[3].Type != domain.AllocationTypeRecall {
		t.Errorf("last entry type = %s, want RECALL", history[3].Type)
	}
}

func TestBulkAllocateStockPartialFailure(t *testing.T) {
	devices := []*domain.Device{
		depotDevice("dev-1", "354000111222333"),
		depotDevice("dev-2", "354000111222334"),
		depotDevice("dev-3", "354000111222335"),
	}
	uc, deviceRepo, _ := newStockFixture(devices...)
	// dev-2 already went through a sale.
	deviceRepo.setCustody("dev-2", domain.DeviceSold, "rm-2")

	out, err := uc.BulkAllocateStock(&stockdto.BulkAllocateStockInput{
		DeviceIMEIs: []string{"354000111222333", "354000111222334", "354000111222335", "999999999999999"},
		FromUserID:  "admin-1",
		ToUserID:    "rm-1",
	})
	if err != nil {
		t.Fatalf("bulk allocation returned top-level error: %v", err)
	}

	if len(out.Succeeded) != 2 {
		t.Errorf("succeeded = %v, want 2 entries", out.Succeeded)
	}
	if len(out.Failed) != 2 {
		t.Fatalf("failed = %v, want 2 entries", out.Failed)
	}
	for _, failure := range out.Failed {
		if failure.Reason == "" {
			t.Errorf("failure for %s carries no reason", failure.DeviceIMEI)
		}
	}

	// The batch never aborts: devices after a failure are still processed.
	device, _ := deviceRepo.GetDeviceByIMEI("354000111222335")
	if device.CurrentHolderID != "rm-1" {
		t.Errorf("device after failed item not allocated, holder = %q", device.CurrentHolderID)
	}
}

func TestBulkRecallStockPartialFailure(t *testing.T) {
	devices := []*domain.Device{
		depotDevice("dev-1", "354000111222333"),
		depotDevice("dev-2", "354000111222334"),
	}
	uc, deviceRepo, _ := newStockFixture(devices...)
	deviceRepo.setCustody("dev-1", domain.DeviceAllocated, "fo-1")
	// dev-2 sits with an officer outside tl-1's team.
	deviceRepo.setCustody("dev-2", domain.DeviceAllocated, "fo-2")

	out, err := uc.BulkRecallStock(&stockdto.BulkRecallStockInput{
		DeviceIMEIs: []string{"354000111222333", "354000111222334"},
		RecallerID:  "tl-1",
		Reason:      "rotation",
	})
	if err != nil {
		t.Fatalf("bulk recall returned top-level error: %v", err)
	}
	if len(out.Succeeded) != 1 || out.Succeeded[0] != "354000111222333" {
		t.Errorf("succeeded = %v, want only dev-1's IMEI", out.Succeeded)
	}
	if len(out.Failed) != 1 || out.Failed[0].DeviceIMEI != "354000111222334" {
		t.Errorf("failed = %v, want only dev-2's IMEI", out.Failed)
	}
}

func TestRegisterDevice(t *testing.T) {
	uc, deviceRepo, _ := newStockFixture()

	device, err := uc.RegisterDevice(&stockdto.RegisterDeviceInput{
		IMEI:         testIMEI,
		SerialNumber: "SN-001",
		ProductID:    "prod-1",
		RegisteredBy: "admin-1",
	})
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	if device.Status != domain.DeviceInStock || device.CurrentHolderID != "" {
		t.Errorf("new device custody = %s/%q, want depot stock", device.Status, device.CurrentHolderID)
	}

	if _, err := uc.RegisterDevice(&stockdto.RegisterDeviceInput{IMEI: testIMEI, ProductID: "prod-1"}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("duplicate IMEI: got %v, want ErrConflict", err)
	}

	stored, err := deviceRepo.GetDeviceByIMEI(testIMEI)
	if err != nil {
		t.Fatalf("registered device not stored: %v", err)
	}
	if stored.SerialNumber != "SN-001" {
		t.Errorf("serial number = %q, want SN-001", stored.SerialNumber)
	}
}

func TestGetDeviceByIMEIWithHistory(t *testing.T) {
	uc, _, _ := newStockFixture(depotDevice("dev-1", testIMEI))

	for _, hop := range [][2]string{{"admin-1", "rm-1"}, {"rm-1", "tl-1"}} {
		if _, err := allocate(uc, testIMEI, hop[0], hop[1]); err != nil {
			t.Fatalf("setup allocation failed: %v", err)
		}
	}

	out, err := uc.GetDeviceByIMEI(testIMEI)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if out.Device.CurrentHolderID != "tl-1" {
		t.Errorf("holder = %s, want tl-1", out.Device.CurrentHolderID)
	}
	if len(out.History) != 2 {
		t.Errorf("history length = %d, want 2", len(out.History))
	}
	seen := map[string]bool{}
	for _, record := range out.History {
		if seen[record.ID] {
			t.Errorf("duplicate ledger id %s", record.ID)
		}
		seen[record.ID] = true
	}
}

func TestBulkAllocateOrderIndependence(t *testing.T) {
	imeis := make([]string, 0, 5)
	devices := make([]*domain.Device, 0, 5)
	for i := 0; i < 5; i++ {
		imei := fmt.Sprintf("35400011122%04d", i)
		imeis = append(imeis, imei)
		devices = append(devices, depotDevice(fmt.Sprintf("dev-%d", i), imei))
	}

	run := func(order []string) (map[string]bool, map[string]bool) {
		uc, deviceRepo, _ := newStockFixture(devices...)
		for i := range devices {
			deviceRepo.devices[devices[i].ID] = depotDevice(devices[i].ID, devices[i].IMEI)
		}
		// Two of the five are already sold.
		deviceRepo.setCustody("dev-1", domain.DeviceSold, "fo-1")
		deviceRepo.setCustody("dev-3", domain.DeviceSold, "fo-1")

		out, err := uc.BulkAllocateStock(&stockdto.BulkAllocateStockInput{
			DeviceIMEIs: order, FromUserID: "admin-1", ToUserID: "rm-1",
		})
		if err != nil {
			t.Fatalf("bulk allocation failed: %v", err)
		}
		ok, failed := map[string]bool{}, map[string]bool{}
		for _, imei := range out.Succeeded {
			ok[imei] = true
		}
		for _, failure := range out.Failed {
			failed[failure.DeviceIMEI] = true
		}
		return ok, failed
	}

	forward, forwardFailed := run(imeis)
	reversed := make([]string, len(imeis))
	for i, imei := range imeis {
		reversed[len(imeis)-1-i] = imei
	}
	backward, backwardFailed := run(reversed)

	for _, imei := range imeis {
		if forward[imei] != backward[imei] || forwardFailed[imei] != backwardFailed[imei] {
			t.Errorf("outcome for %s depends on batch order", imei)
		}
	}
}
