package domain

import "time"

type OpeningHours struct {
	Day    string `json:"day"    yaml:"day"`
	Opens  string `json:"opens"  yaml:"opens"`
	Closes string `json:"closes" yaml:"closes"`
	Closed bool   `json:"closed" yaml:"closed"`
}

type PriceItem struct {
	Name     string `json:"name"     yaml:"name"`
	Amount   int64  `json:"amount"   yaml:"amount"`
	Currency string `json:"currency" yaml:"currency"`
	Unit     string `json:"unit"     yaml:"unit"`
}

// SiteSettings is the CMS-like content the public site renders on every page.
type SiteSettings struct {
	ResortName   string         `json:"resort_name"   yaml:"resort_name"`
	Tagline      string         `json:"tagline"       yaml:"tagline"`
	Phone        string         `json:"phone"         yaml:"phone"`
	Email        string         `json:"email"         yaml:"email"`
	Address      string         `json:"address"       yaml:"address"`
	OpeningHours []OpeningHours `json:"opening_hours" yaml:"opening_hours"`
	Prices       []PriceItem    `json:"prices"        yaml:"prices"`
	UpdatedAt    time.Time      `json:"updated_at"    yaml:"-"`
}

type DashboardSummary struct {
	Today          string                    `json:"today"`
	CountsByStatus map[ReservationStatus]int `json:"counts_by_status"`
	Arrivals       []*Reservation            `json:"arrivals"`
	Departures     []*Reservation            `json:"departures"`
	Upcoming       []*Reservation            `json:"upcoming"`
}
