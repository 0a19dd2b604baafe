package models

import "time"

type Goal struct {
	ID           string     `db:"id"`
	ClientID     string     `db:"client_id"`
	Name         string     `db:"name"`
	TargetAmount float64    `db:"target_amount"`
	TargetDate   *time.Time `db:"target_date"`
	CreatedAt    time.Time  `db:"created_at"`
}
