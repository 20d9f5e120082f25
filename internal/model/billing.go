package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMode string

const (
	PaymentModeCash PaymentMode = "Cash"
	PaymentModeUPI  PaymentMode = "UPI"
	PaymentModeCard PaymentMode = "Card"
)

// Charge is a single billable line item on an in-progress bill.
type Charge struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
}

// BillingSession is the transient working state of a bill. It is discarded
// once a receipt is generated or its TTL lapses.
type BillingSession struct {
	ID        uuid.UUID `json:"id"`
	PatientID uuid.UUID `json:"patient_id"`
	Charges   []Charge  `json:"charges"`
	CreatedAt time.Time `json:"created_at"`
}

// Total is the arithmetic sum of all charge amounts, recomputed on every
// call; 0 for an empty list.
func (s *BillingSession) Total() float64 {
	var total float64
	for _, c := range s.Charges {
		total += c.Amount
	}
	return total
}

// Receipt is the finalized bill. It is rendered and returned, never stored.
type Receipt struct {
	Number      string      `json:"number"`
	PatientName string      `json:"patient_name"`
	UHID        string      `json:"uhid"`
	Age         int         `json:"age"`
	Sex         string      `json:"sex"`
	Phone       string      `json:"phone"`
	Date        time.Time   `json:"date"`
	Charges     []Charge    `json:"charges"`
	Total       float64     `json:"total"`
	PaymentMode PaymentMode `json:"payment_mode"`
}

type OpenBillingSessionRequest struct {
	PatientID string `json:"patient_id" binding:"required,uuid"`
}

type AddChargeRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type FinalizeBillRequest struct {
	PaymentMode PaymentMode `json:"payment_mode" binding:"required,oneof=Cash UPI Card"`
	EmailTo     string      `json:"email_to" binding:"omitempty,email"`
}
