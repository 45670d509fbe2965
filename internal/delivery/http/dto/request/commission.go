package request

type BulkCommissionRequest struct {
	CommissionIDs []string `json:"commissionIds" validate:"required,min=1,dive,required"`
}
