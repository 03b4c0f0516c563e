package domain

import "time"

// Order — покупка ровно одной позиции каталога.
// Создаётся атомарно вместе со списанием qty; после создания неизменяем.
type Order struct {
	ID        string    `json:"id"`
	RecordID  int64     `json:"recordId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created"`
}
