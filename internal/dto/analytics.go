package dto

// DashboardRequest is the filter descriptor for the analytics dashboard.
// Either a named time range keyword or an explicit from/to pair selects the
// window; from/to are calendar dates in 2006-01-02 form.
type DashboardRequest struct {
	UserID      uint   `query:"user_id" validate:"required"`
	TimeRange   string `query:"time_range" validate:"omitempty"`
	From        string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To          string `query:"to" validate:"omitempty,datetime=2006-01-02"`
	Instrument  string `query:"instrument" validate:"omitempty,oneof=EQUITY FUTURES OPTIONS"`
	Strategies  string `query:"strategies"`
	Granularity string `query:"granularity" validate:"omitempty,oneof=day week month"`
}
