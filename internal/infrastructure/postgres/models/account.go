package models

import "time"

type AccountModel struct {
	ID               string `gorm:"primaryKey"`
	AvailableBalance float64
	HeldBalance      float64
	LifetimeEarnings float64
	UpdatedAt        time.Time
}

func (AccountModel) TableName() string {
	return "escrow_accounts"
}
