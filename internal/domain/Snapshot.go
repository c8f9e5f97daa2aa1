package domain

import "time"

// SummarySnapshot é o resumo diário persistido pelo agendador
type SummarySnapshot struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	Date       time.Time `json:"date"`
	Users      int64     `json:"users"`
	NewUsers   int64     `json:"newUsers"`
	Sessions   int64     `json:"sessions"`
	PageViews  int64     `json:"pageViews"`
	BounceRate float64   `json:"bounceRate"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
