package model

import "time"

// ReportAction names an inventory action recorded in the daily journal.
type ReportAction string

const (
	ActionPlaced     ReportAction = "placed"
	ActionRemoved    ReportAction = "removed"
	ActionIssued     ReportAction = "issued"
	ActionStopListed ReportAction = "stop_listed"
)

// Valid reports whether a is a known action.
func (a ReportAction) Valid() bool {
	switch a {
	case ActionPlaced, ActionRemoved, ActionIssued, ActionStopListed:
		return true
	}
	return false
}

// ActionEntry is one appended line of a daily report.
type ActionEntry struct {
	ProductID string       `json:"product_id"`
	Action    ReportAction `json:"action"`
	Quantity  int          `json:"quantity"`
}

// Report is the append-only action journal of one warehouse for one day.
// Date is always midnight UTC of the calendar day it represents.
type Report struct {
	ID          string        `json:"report_id"`
	WarehouseID string        `json:"warehouse_id"`
	CompanyID   string        `json:"company_id"`
	Date        time.Time     `json:"date"`
	Actions     []ActionEntry `json:"actions"`
}

// ReportDate normalizes t to the calendar day it falls on in loc.
func ReportDate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
