// Package model holds the domain types persisted by WorthIt.
package model

import "time"

// IncomeType selects how the income profile is interpreted.
type IncomeType string

const (
	IncomeHourly IncomeType = "hourly"
	IncomeSalary IncomeType = "salary"
)

// ItemStatus is the decision state of an evaluated item.
type ItemStatus string

const (
	StatusPending ItemStatus = "pending"
	StatusBought  ItemStatus = "bought"
	StatusPassed  ItemStatus = "passed"
)

// FilterStatus is an ItemStatus or "all" for history views.
type FilterStatus string

const FilterAll FilterStatus = "all"

// User is the singleton income profile. NetHourlyRate is computed and
// cached at save time; consumers read it and never recompute.
type User struct {
	IncomeType    IncomeType `json:"incomeType"`
	HourlyRate    float64    `json:"hourlyRate"`
	Salary        float64    `json:"salary,omitempty"`
	HoursPerWeek  float64    `json:"hoursPerWeek,omitempty"`
	TaxEnabled    bool       `json:"taxEnabled"`
	TaxRate       float64    `json:"taxRate"`
	NetHourlyRate float64    `json:"netHourlyRate"`
}

// Item is one logged purchase evaluation. HoursRequired is a snapshot of
// the conversion at creation time and never tracks later profile changes.
type Item struct {
	ID            string     `json:"id"`
	Price         float64    `json:"price"`
	HoursRequired float64    `json:"hoursRequired"`
	CreatedAt     time.Time  `json:"createdAt"`
	Status        ItemStatus `json:"status"`
	ReminderAt    *time.Time `json:"reminderAt,omitempty"`
	Note          string     `json:"note,omitempty"`
	Link          string     `json:"link,omitempty"`
}

// AppState is everything WorthIt keeps: at most one profile and the item
// history, newest first.
type AppState struct {
	User  *User
	Items []Item
}

// Matches reports whether the item passes the given history filter.
func (i Item) Matches(f FilterStatus) bool {
	return f == FilterAll || ItemStatus(f) == i.Status
}
