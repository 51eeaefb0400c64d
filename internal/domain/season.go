package domain

import "fmt"

// Season именованное временное окно сезона перевозок
// Активным должен быть не более чем один сезон
type Season struct {
	ID         string `bson:"id"`
	SeasonName string `bson:"seasonName"`
	Year       int    `bson:"year"`
	IsActive   bool   `bson:"isActive"`
}

// Key возвращает строковый ключ сезона вида "<name>-<year>"
// Этим ключом помечаются рейсы и бронирования для изоляции между годами
func (s *Season) Key() string {
	return fmt.Sprintf("%s-%d", s.SeasonName, s.Year)
}
