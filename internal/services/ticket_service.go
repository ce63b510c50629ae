package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"roadbuddy/internal/domain"
	"roadbuddy/internal/domain/models"
	"roadbuddy/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// TicketService renders booking e-tickets as PDF.
type TicketService struct {
	Bookings  BookingService
	Users     UserService
	RequestID string
}

type ticketData struct {
	Booking       models.Booking
	Trip          models.Trip
	PassengerName string
	Email         string
	Phone         string
}

func (s TicketService) GenerateTicket(bookingID string) ([]byte, string, error) {
	data, err := s.load(bookingID)
	if err != nil {
		return nil, "", err
	}
	pdf, filename, err := buildTicketPDF(data)
	if err != nil {
		return nil, "", domain.InternalError{Msg: "failed to render ticket", Err: err}
	}
	utils.LogEvent(s.RequestID, "ticket", "generate", "booking_id", bookingID, "bytes", len(pdf))
	return pdf, filename, nil
}

func (s TicketService) load(bookingID string) (ticketData, error) {
	detail, err := s.Bookings.GetBooking(bookingID)
	if err != nil {
		return ticketData{}, err
	}
	out := ticketData{
		Booking:       detail.Booking,
		Trip:          detail.Trip,
		PassengerName: detail.UserID,
	}
	if u, err := s.Users.Get(detail.UserID); err == nil {
		out.PassengerName = u.Name
		out.Email = u.Email
		out.Phone = u.Phone
	}
	return out, nil
}

func buildTicketPDF(d ticketData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("RoadBuddy E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "ROADBUDDY E-TICKET")
	pdf.Ln(12)

	// Core fonts are cp1252; the route arrow is not representable.
	route := fmt.Sprintf("%s -> %s", safe(d.Trip.DepartureCity, "-"), safe(d.Trip.DestinationCity, "-"))

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking code   : %s", d.Booking.ID),
		fmt.Sprintf("Status         : %s", strings.ToUpper(d.Booking.Status)),
		fmt.Sprintf("Booked at      : %s", d.Booking.BookingTime.Format(time.RFC1123)),
		fmt.Sprintf("Passenger      : %s", safe(d.PassengerName, "-")),
		fmt.Sprintf("Email / Phone  : %s / %s", safe(d.Email, "-"), safe(d.Phone, "-")),
		fmt.Sprintf("Route          : %s", route),
		fmt.Sprintf("Departure      : %s", safe(d.Trip.DepartureTime, "-")),
		fmt.Sprintf("Duration       : %s", safe(d.Trip.EstimatedDuration, "-")),
		fmt.Sprintf("Driver         : %s (%.1f)", safe(d.Trip.DriverName, "-"), d.Trip.DriverRating),
		fmt.Sprintf("Vehicle        : %s", safe(d.Trip.CarModel, "-")),
		fmt.Sprintf("Pickup points  : %s", safe(strings.Join(d.Trip.PickupPoints, ", "), "-")),
		fmt.Sprintf("Seats booked   : %d", d.Booking.PassengerCount),
		fmt.Sprintf("Price / person : %s", utils.FormatUSD(d.Trip.PricePerPerson)),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Total: "+utils.FormatUSD(d.Booking.TotalPrice))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("Valid for %d passenger(s). Show this ticket to your driver at pickup.", d.Booking.PassengerCount), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("TICKET_%s.pdf", safeFilenamePart(d.Booking.ID))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
