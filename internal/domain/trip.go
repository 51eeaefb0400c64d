package domain

import "time"

// Trip представляет запланированный рейс грузовика между двумя регионами
// Trip единственный владелец своих счетчиков емкости: RemLoadCap и RemCarCap
// не вычисляются при чтении, а поддерживаются инкрементально как леджер
type Trip struct {
	ID            string     `bson:"id"`
	TruckID       string     `bson:"truckId"`
	LoadNumber    int        `bson:"loadNumber"`
	DepartureDate time.Time  `bson:"departureDate"`
	ArrivalDate   time.Time  `bson:"arrivalDate"`
	Origin        string     `bson:"origin"`
	Destination   string     `bson:"destination"`
	RemLoadCap    float64    `bson:"remLoadCap"` // остаток грузоподъемности, та же единица, что Vehicle.Weight
	RemCarCap     int        `bson:"remCarCap"`  // остаток мест под автомобили
	DelayDate     *time.Time `bson:"delayDate,omitempty"`
	Season        string     `bson:"season"`
	PaidBookings  int        `bson:"paidBookings"`
	CreatedAt     time.Time  `bson:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt"`
}

// DisplayDate возвращает дату, по которой рейс отображается в календаре
// DelayDate имеет приоритет над DepartureDate
func (t *Trip) DisplayDate() time.Time {
	if t.DelayDate != nil {
		return *t.DelayDate
	}
	return t.DepartureDate
}

// CanFit проверяет, что остаток емкости рейса вмещает указанный вес и количество машин
func (t *Trip) CanFit(weight float64, count int) bool {
	return weight <= t.RemLoadCap && count <= t.RemCarCap
}

// DepartsWithin проверяет, что дата отправления рейса попадает в окно клиента
// Граничные даты входят в окно
func (t *Trip) DepartsWithin(pickup, arrival time.Time) bool {
	dep := truncateToDay(t.DepartureDate)
	return !dep.Before(truncateToDay(pickup)) && !dep.After(truncateToDay(arrival))
}

// truncateToDay обнуляет время, оставляя только дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
