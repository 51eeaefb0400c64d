package domain

import "time"

// Truck грузовик, владеющий ресурс для рейсов
// Номинальные емкости грузовика инициализируют счетчики нового рейса
type Truck struct {
	ID           string    `bson:"id"`
	Name         string    `bson:"name"`
	LoadCapacity float64   `bson:"loadCapacity"`
	CarCapacity  int       `bson:"carCapacity"`
	CreatedAt    time.Time `bson:"createdAt"`
}
