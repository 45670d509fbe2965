package repository

import "gorm.io/gorm"

// PGReceiptSequence backs the receipt-number port with a Postgres sequence,
// which gives the atomic monotonic guarantee the sale recorder relies on.
type PGReceiptSequence struct {
	DB *gorm.DB
}

func NewPGReceiptSequence(db *gorm.DB) *PGReceiptSequence {
	return &PGReceiptSequence{DB: db}
}

func (r *PGReceiptSequence) NextReceiptNumber() (int64, error) {
	var next int64
	if err := r.DB.Raw("SELECT nextval('receipt_number_seq')").Scan(&next).Error; err != nil {
		return 0, err
	}

	return next, nil
}
