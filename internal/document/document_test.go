package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mmhcare/frontdesk-api/internal/config"
	"github.com/mmhcare/frontdesk-api/internal/model"
)

var testClinic = config.ClinicConfig{
	Name:    "Maternity & Nursing Home",
	Address: "12 Hospital Road, Chennai",
	Phone:   "044-12345678",
}

func TestRegistrationMessage(t *testing.T) {
	r := NewRenderer(testClinic)

	got := r.RegistrationMessage(&model.Patient{
		ApplicationNumber: "MMH-OP-2025-000001",
		Name:              "Smt. Anjali Ramesh",
		Doctor:            "Dr. Lakshmi Narayanan",
		VisitType:         model.VisitTypeOutPatient,
	})

	want := "Registration Successful!\n" +
		"Application No: MMH-OP-2025-000001\n" +
		"Patient: Smt. Anjali Ramesh\n" +
		"Doctor: Dr. Lakshmi Narayanan\n" +
		"Visit Type: OP"
	assert.Equal(t, want, got)
}

func TestReceiptMessage(t *testing.T) {
	r := NewRenderer(testClinic)

	got := r.ReceiptMessage(&model.Receipt{
		Number:      "RCP-00000001",
		PatientName: "Smt. Anjali Ramesh",
		Date:        time.Date(2025, time.December, 5, 10, 30, 0, 0, time.UTC),
		Charges: []model.Charge{
			{Description: "Consultation", Amount: 500},
			{Description: "Scan", Amount: 1200},
		},
		Total:       1700,
		PaymentMode: model.PaymentModeUPI,
	})

	want := "Receipt - Maternity & Nursing Home\n" +
		"\n" +
		"Patient: Smt. Anjali Ramesh\n" +
		"Date: 5/12/2025\n" +
		"\n" +
		"Charges:\n" +
		"Consultation: ₹500\n" +
		"Scan: ₹1200\n" +
		"\n" +
		"Total: ₹1700\n" +
		"Payment Mode: UPI\n" +
		"\n" +
		"Thank you!"
	assert.Equal(t, want, got)
}

func TestReceiptMessageKeepsFractionalAmounts(t *testing.T) {
	r := NewRenderer(testClinic)

	got := r.ReceiptMessage(&model.Receipt{
		PatientName: "Smt. Anjali Ramesh",
		Date:        time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC),
		Charges:     []model.Charge{{Description: "Dressing", Amount: 150.5}},
		Total:       150.5,
		PaymentMode: model.PaymentModeCash,
	})

	assert.Contains(t, got, "Dressing: ₹150.5\n")
	assert.Contains(t, got, "Total: ₹150.5\n")
	assert.Contains(t, got, "Date: 2/1/2025\n")
}

func TestRegistrationFormSkipsEmptyFields(t *testing.T) {
	r := NewRenderer(testClinic)

	got := r.RegistrationForm(&model.Patient{
		ApplicationNumber: "MMH-IP-2025-000004",
		Name:              "Baby of Meena",
		Sex:               "Female",
		VisitType:         model.VisitTypeInPatient,
		Doctor:            "Dr. Lakshmi Narayanan",
		Phone:             "9876543210",
		CreatedAt:         time.Date(2025, time.December, 5, 0, 0, 0, 0, time.UTC),
	})

	assert.Contains(t, got, "Maternity & Nursing Home\n")
	assert.Contains(t, got, "PATIENT REGISTRATION FORM\n")
	assert.Contains(t, got, "Application No    : MMH-IP-2025-000004\n")
	assert.Contains(t, got, "Registration Date : 5/12/2025\n")
	assert.NotContains(t, got, "Aadhaar")
	assert.NotContains(t, got, "Guardian")
}

func TestReceiptDocumentLayout(t *testing.T) {
	r := NewRenderer(testClinic)

	got := r.ReceiptDocument(&model.Receipt{
		Number:      "RCP-00000007",
		PatientName: "Smt. Anjali Ramesh",
		UHID:        "UHID-IND-9087",
		Age:         26,
		Sex:         "Female",
		Phone:       "9876543210",
		Date:        time.Date(2025, time.December, 5, 0, 0, 0, 0, time.UTC),
		Charges:     []model.Charge{{Description: "Consultation", Amount: 500}},
		Total:       500,
		PaymentMode: model.PaymentModeCard,
	})

	assert.Contains(t, got, "Receipt Number    : RCP-00000007\n")
	assert.Contains(t, got, "Age / Sex         : 26 / Female\n")
	assert.Contains(t, got, "Total Amount                       500.00\n")
	assert.Contains(t, got, "Get well soon!\n")
}
