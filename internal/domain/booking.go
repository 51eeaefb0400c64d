package domain

import "time"

// Paycheck данные чека, которым оплачено бронирование
type Paycheck struct {
	CheckNumber string  `bson:"checkNumber"`
	BankName    string  `bson:"bankName"`
	Amount      float64 `bson:"amount"`
}

// Booking представляет бронирование одного или нескольких автомобилей на рейс
// Booking не владеет рейсом, только ссылается на него через TripID
type Booking struct {
	ID             string           `bson:"id"`
	Customer       CustomerSnapshot `bson:"customer"`
	VehicleIDs     []string         `bson:"vehicleIds"`
	Paycheck       Paycheck         `bson:"paycheck"`
	ArrivalAt      time.Time        `bson:"arrivalAt"`
	PickupAt       time.Time        `bson:"pickupAt"`
	ArrivalWeek    int              `bson:"arrivalWeek"` // производное: ISO-неделя ArrivalAt
	PickupWeek     int              `bson:"pickupWeek"`  // производное: ISO-неделя PickupAt
	ArrivalAddress string           `bson:"arrivalAddress"`
	PickupAddress  string           `bson:"pickupAddress"`
	TruckID        string           `bson:"truckId,omitempty"`
	TripID         string           `bson:"tripId,omitempty"` // пустая строка = рейс не выбран
	From           string           `bson:"from"`
	To             string           `bson:"to"`
	Notes          *string          `bson:"notes,omitempty"`
	Season         string           `bson:"season"`
	CreatedAt      time.Time        `bson:"createdAt"`
}

// IsAssigned возвращает true, если бронированию назначен рейс
func (b *Booking) IsAssigned() bool {
	return b.TripID != ""
}

// IsPaid возвращает true, если сумма чека достигает порога оплаченного бронирования
func (b *Booking) IsPaid(threshold float64) bool {
	return b.Paycheck.Amount >= threshold
}

// ConsumedWeight возвращает суммарный вес автомобилей бронирования
func (b *Booking) ConsumedWeight() float64 {
	return ConsumedWeight(b.Customer, b.VehicleIDs)
}

// WeekOfYear возвращает ISO-номер недели для даты
func WeekOfYear(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}
