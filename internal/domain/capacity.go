package domain

// Леджер емкости: единственное место, где живет арифметика
// потребления и восстановления счетчиков рейса.
// Функции чистые и не отклоняют уход счетчиков в минус:
// проверка допустимости выполняется вызывающей стороной до записи.

// ConsumedWeight суммирует вес автомобилей снимка, чьи id входят в vehicleIDs
// Неизвестные id дают вклад 0
func ConsumedWeight(snapshot CustomerSnapshot, vehicleIDs []string) float64 {
	var total float64
	for _, id := range vehicleIDs {
		if v, ok := snapshot.VehicleByID(id); ok {
			total += v.Weight
		}
	}
	return total
}

// ApplyConsumption возвращает копию рейса с уменьшенными счетчиками:
// RemLoadCap на суммарный вес выбранных автомобилей, RemCarCap на их количество
func ApplyConsumption(trip Trip, vehicleIDs []string, snapshot CustomerSnapshot) Trip {
	trip.RemLoadCap -= ConsumedWeight(snapshot, vehicleIDs)
	trip.RemCarCap -= len(vehicleIDs)
	return trip
}

// ApplyRestoration возвращает копию рейса с восстановленными счетчиками,
// точная инверсия ApplyConsumption: ApplyRestoration(ApplyConsumption(t, v, c), v, c) == t
func ApplyRestoration(trip Trip, vehicleIDs []string, snapshot CustomerSnapshot) Trip {
	trip.RemLoadCap += ConsumedWeight(snapshot, vehicleIDs)
	trip.RemCarCap += len(vehicleIDs)
	return trip
}
