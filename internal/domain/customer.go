package domain

import "time"

// Customer клиент, владеющий автомобилями
type Customer struct {
	ID        string            `bson:"id"`
	Name      string            `bson:"name"`
	Phone     string            `bson:"phone"`
	Vehicles  []VehicleSnapshot `bson:"vehicles"`
	Season    string            `bson:"season"`
	CreatedAt time.Time         `bson:"createdAt"`
}

// VehicleSnapshot автомобиль клиента
type VehicleSnapshot struct {
	ID           string  `bson:"id"`
	Model        string  `bson:"model"`
	LicensePlate string  `bson:"licensePlate"`
	Weight       float64 `bson:"weight"`
}

// CustomerSnapshot денормализованная копия клиента и его автомобилей,
// снятая в момент создания бронирования
// Это не живая ссылка: последующие изменения Customer на снимок не влияют
type CustomerSnapshot struct {
	CustomerID string            `bson:"customerId"`
	Name       string            `bson:"name"`
	Phone      string            `bson:"phone"`
	Vehicles   []VehicleSnapshot `bson:"vehicles"`
}

// Snapshot снимает неизменяемую копию клиента для встраивания в бронирование
func (c *Customer) Snapshot() CustomerSnapshot {
	vehicles := make([]VehicleSnapshot, len(c.Vehicles))
	copy(vehicles, c.Vehicles)
	return CustomerSnapshot{
		CustomerID: c.ID,
		Name:       c.Name,
		Phone:      c.Phone,
		Vehicles:   vehicles,
	}
}

// VehicleByID ищет автомобиль в снимке по идентификатору
func (s *CustomerSnapshot) VehicleByID(id string) (VehicleSnapshot, bool) {
	for _, v := range s.Vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return VehicleSnapshot{}, false
}
