package get_calendar

import (
	"sort"

	"github.com/m04kA/SMC-TransportService/internal/domain"
)

// BookingModel бронирование внутри события календаря
type BookingModel struct {
	ID           string   `json:"id"`
	CustomerID   string   `json:"customerId"`
	CustomerName string   `json:"customerName"`
	VehicleIDs   []string `json:"vehicleIds"`
	PickupAt     string   `json:"pickupAt"`
	ArrivalAt    string   `json:"arrivalAt"`
}

// EventModel событие календаря: рейс и его бронирования
type EventModel struct {
	ID            string         `json:"id"`
	TripID        string         `json:"tripId"`
	TruckID       string         `json:"truckId"`
	LoadNumber    int            `json:"loadNumber"`
	DepartureDate string         `json:"departureDate"`
	DisplayDate   string         `json:"displayDate"`
	Origin        string         `json:"origin"`
	Destination   string         `json:"destination"`
	RemLoadCap    float64        `json:"remLoadCap"`
	RemCarCap     int            `json:"remCarCap"`
	PaidBookings  int            `json:"paidBookings"`
	Bookings      []BookingModel `json:"bookings"`
}

// DayModel корзина календаря за одну дату
type DayModel struct {
	Date   string       `json:"date"`
	Events []EventModel `json:"events"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Days []DayModel `json:"days"`
}

// FromIndexResult конвертирует срез индекса в HTTP response
// Дни отсортированы по дате, порядок событий внутри дня сохраняется
func FromIndexResult(buckets map[string][]domain.CalendarEvent) *CalendarResponse {
	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	resp := &CalendarResponse{Days: make([]DayModel, 0, len(keys))}
	for _, key := range keys {
		day := DayModel{Date: key, Events: make([]EventModel, 0, len(buckets[key]))}
		for _, event := range buckets[key] {
			bookings := make([]BookingModel, 0, len(event.Bookings))
			for _, b := range event.Bookings {
				bookings = append(bookings, BookingModel{
					ID:           b.ID,
					CustomerID:   b.Customer.CustomerID,
					CustomerName: b.Customer.Name,
					VehicleIDs:   b.VehicleIDs,
					PickupAt:     b.PickupAt.Format(domain.DateFormat),
					ArrivalAt:    b.ArrivalAt.Format(domain.DateFormat),
				})
			}
			day.Events = append(day.Events, EventModel{
				ID:            event.ID,
				TripID:        event.Trip.ID,
				TruckID:       event.Trip.TruckID,
				LoadNumber:    event.Trip.LoadNumber,
				DepartureDate: event.Trip.DepartureDate.Format(domain.DateFormat),
				DisplayDate:   event.Trip.DisplayDate().Format(domain.DateFormat),
				Origin:        event.Trip.Origin,
				Destination:   event.Trip.Destination,
				RemLoadCap:    event.Trip.RemLoadCap,
				RemCarCap:     event.Trip.RemCarCap,
				PaidBookings:  event.Trip.PaidBookings,
				Bookings:      bookings,
			})
		}
		resp.Days = append(resp.Days, day)
	}
	return resp
}
