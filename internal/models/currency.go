package models

// Currency is the database row for one published currency.
type Currency struct {
	ID     int64  `json:"id"`
	Entity string `json:"entity"`
	Code   string `json:"code"`
	Name   string `json:"name"`
}
