package stockdto

import "github.com/speedo5/FinetechSalesManager-sub002/internal/domain"

type BulkFailure struct {
	DeviceIMEI string `json:"deviceImei"`
	Reason     string `json:"reason"`
}

// BulkResultOutput collects per-item outcomes of a bulk transfer. The batch
// itself never fails; callers resubmit only the failed subset.
type BulkResultOutput struct {
	Succeeded []string      `json:"succeeded"`
	Failed    []BulkFailure `json:"failed"`
}

type DeviceHistoryOutput struct {
	Device  *domain.Device
	History []*domain.AllocationRecord
}
