// Package document renders registration forms and receipts in their
// three output forms: the on-screen preview structure, the print layout,
// and the line-oriented plain message handed to external messaging. All
// functions are pure formatting; printing and sending belong to the
// caller.
package document

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mmhcare/frontdesk-api/internal/config"
	"github.com/mmhcare/frontdesk-api/internal/model"
)

type Renderer struct {
	clinic config.ClinicConfig
}

func NewRenderer(clinic config.ClinicConfig) *Renderer {
	return &Renderer{clinic: clinic}
}

// RegistrationMessage is the confirmation text sent to the patient's
// phone after registration.
func (r *Renderer) RegistrationMessage(p *model.Patient) string {
	return fmt.Sprintf("Registration Successful!\nApplication No: %s\nPatient: %s\nDoctor: %s\nVisit Type: %s",
		p.ApplicationNumber, p.Name, p.Doctor, p.VisitType)
}

// RegistrationForm is the print layout of the registration record.
func (r *Renderer) RegistrationForm(p *model.Patient) string {
	var b strings.Builder
	writeHeader(&b, r.clinic)
	b.WriteString("PATIENT REGISTRATION FORM\n")
	b.WriteString(strings.Repeat("-", 40) + "\n\n")

	writeField(&b, "Application No", p.ApplicationNumber)
	writeField(&b, "Registration Date", displayDate(p.CreatedAt))
	writeField(&b, "Visit Type", string(p.VisitType))
	b.WriteString("\n")
	writeField(&b, "Name", p.Name)
	writeField(&b, "Sex", p.Sex)
	writeField(&b, "Date of Birth", p.DOB)
	writeField(&b, "Age", strconv.Itoa(p.Age))
	writeField(&b, "Blood Group", p.BloodGroup)
	writeField(&b, "Marital Status", p.MaritalStatus)
	b.WriteString("\n")
	writeField(&b, "Guardian", p.GuardianName)
	writeField(&b, "Guardian Phone", p.GuardianPhone)
	writeField(&b, "Phone", p.Phone)
	writeField(&b, "Aadhaar", p.Aadhaar)
	writeField(&b, "UHID", p.UHID)
	writeField(&b, "Address", p.Address)
	b.WriteString("\n")
	writeField(&b, "Complaints", p.Complaints)
	writeField(&b, "Remarks", p.Remarks)
	writeField(&b, "Doctor", p.Doctor)
	return b.String()
}

// ReceiptMessage is the plain-text receipt for external messaging:
// header, one line per charge, blank line, total, payment mode, closing
// line.
func (r *Renderer) ReceiptMessage(rcpt *model.Receipt) string {
	lines := make([]string, 0, len(rcpt.Charges))
	for _, c := range rcpt.Charges {
		lines = append(lines, fmt.Sprintf("%s: ₹%s", c.Description, amount(c.Amount)))
	}
	return fmt.Sprintf("Receipt - %s\n\nPatient: %s\nDate: %s\n\nCharges:\n%s\n\nTotal: ₹%s\nPayment Mode: %s\n\nThank you!",
		r.clinic.Name, rcpt.PatientName, displayDate(rcpt.Date),
		strings.Join(lines, "\n"), amount(rcpt.Total), rcpt.PaymentMode)
}

// ReceiptDocument is the print layout of a finalized receipt. Pagination
// is the printing surface's concern.
func (r *Renderer) ReceiptDocument(rcpt *model.Receipt) string {
	var b strings.Builder
	writeHeader(&b, r.clinic)

	writeField(&b, "Receipt Number", rcpt.Number)
	writeField(&b, "Date", displayDate(rcpt.Date))
	b.WriteString("\n")
	writeField(&b, "Patient Name", rcpt.PatientName)
	writeField(&b, "UHID", rcpt.UHID)
	writeField(&b, "Age / Sex", fmt.Sprintf("%d / %s", rcpt.Age, rcpt.Sex))
	writeField(&b, "Phone", rcpt.Phone)
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%-30s %10s\n", "Description", "Amount"))
	b.WriteString(strings.Repeat("-", 41) + "\n")
	for _, c := range rcpt.Charges {
		b.WriteString(fmt.Sprintf("%-30s %10.2f\n", c.Description, c.Amount))
	}
	b.WriteString(strings.Repeat("-", 41) + "\n")
	b.WriteString(fmt.Sprintf("%-30s %10.2f\n\n", "Total Amount", rcpt.Total))

	writeField(&b, "Payment Mode", string(rcpt.PaymentMode))
	b.WriteString("\nThank you for choosing our services\nGet well soon!\n")
	return b.String()
}

func writeHeader(b *strings.Builder, clinic config.ClinicConfig) {
	b.WriteString(clinic.Name + "\n")
	b.WriteString(clinic.Address + "\n")
	b.WriteString("Phone: " + clinic.Phone + "\n\n")
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(fmt.Sprintf("%-18s: %s\n", label, value))
}

// displayDate follows the front desk's day/month/year convention without
// leading zeros.
func displayDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// amount prints a currency value the way the reference receipts do:
// no trailing zeros, no thousands separators.
func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
