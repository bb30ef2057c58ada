package services

import (
	"bytes"
	"fmt"
	"strings"

	"railbook/internal/domain/models"
	"railbook/internal/store"
	"railbook/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders e-ticket PDFs for confirmed bookings.
type DocsService struct {
	Store     store.Store
	RequestID string
}

func (s DocsService) GenerateETicket(pnr string) ([]byte, string, error) {
	booking, err := s.Store.Bookings.GetByPNR(strings.TrimSpace(pnr))
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", "pnr="+booking.PNR)
	return buildETicketPDF(booking)
}

func buildETicketPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET / RESERVATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("PNR            : %s", b.PNR),
		fmt.Sprintf("Ticket No      : %s", b.TicketNumber),
		fmt.Sprintf("Train          : %s %s", b.TrainNumber, b.TrainName),
		fmt.Sprintf("Route          : %s -> %s", b.SourceStation, b.DestinationStation),
		fmt.Sprintf("Journey Date   : %s", b.JourneyDate),
		fmt.Sprintf("Departure      : %s   Arrival: %s", safe(b.DepartureTime, "-"), safe(b.ArrivalTime, "-")),
		fmt.Sprintf("Class          : %s (%s)", b.ClassCode, b.ClassName),
		fmt.Sprintf("Status         : %s", b.Status),
		fmt.Sprintf("Payment        : %s (%s)", b.PaymentStatus, safe(b.PaymentMethod, "-")),
		fmt.Sprintf("Total Fare     : %s", utils.FormatINR(b.TotalFare)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Passengers:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for i, p := range b.Passengers {
		entry := fmt.Sprintf("%d) %s, %d, %s", i+1, p.Name, p.Age, safe(p.Gender, "-"))
		if p.BerthPreference != "" {
			entry += " (" + p.BerthPreference + ")"
		}
		pdf.Cell(0, 6, entry)
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Carry a valid photo ID for every passenger. This e-ticket is valid only with a confirmed booking status.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("ETICKET_%s.pdf", b.PNR)
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
