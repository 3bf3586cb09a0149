package dto

// SummaryRequest - запрос на сводку активности за день
type SummaryRequest struct {
	Date  string   `json:"date" validate:"required,daykey"`
	Hour  *int     `json:"hour,omitempty" validate:"omitempty,min=0,max=23"`
	North *float64 `json:"north,omitempty" validate:"omitempty,min=-90,max=90"`
	South *float64 `json:"south,omitempty" validate:"omitempty,min=-90,max=90"`
	East  *float64 `json:"east,omitempty" validate:"omitempty,min=-180,max=180"`
	West  *float64 `json:"west,omitempty" validate:"omitempty,min=-180,max=180"`
}

// HasBounds проверяет, заданы ли все четыре границы области
func (r *SummaryRequest) HasBounds() bool {
	return r.North != nil && r.South != nil && r.East != nil && r.West != nil
}

// EventsViewportRequest - запрос на список событий дня в пределах области
type EventsViewportRequest struct {
	Date   string   `json:"date" validate:"required,daykey"`
	North  *float64 `json:"north,omitempty" validate:"omitempty,min=-90,max=90"`
	South  *float64 `json:"south,omitempty" validate:"omitempty,min=-90,max=90"`
	East   *float64 `json:"east,omitempty" validate:"omitempty,min=-180,max=180"`
	West   *float64 `json:"west,omitempty" validate:"omitempty,min=-180,max=180"`
	Limit  int      `json:"limit" validate:"omitempty,min=1,max=500"`
	Offset int      `json:"offset" validate:"omitempty,min=0"`
}

// HasBounds проверяет, заданы ли все четыре границы области
func (r *EventsViewportRequest) HasBounds() bool {
	return r.North != nil && r.South != nil && r.East != nil && r.West != nil
}

// IngestEventRequest - одно событие для приёма в хранилище.
// Временные поля приходят строками в том виде, в каком их отдал источник.
type IngestEventRequest struct {
	ID          string   `json:"id,omitempty"`
	Date        string   `json:"date,omitempty"`
	UTCDate     string   `json:"utcDate,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Sport       string   `json:"sport,omitempty"`
	Competition string   `json:"competition,omitempty"`
	City        string   `json:"city,omitempty"`
	Region      string   `json:"region,omitempty"`
	Kind        string   `json:"kind,omitempty"`
	Lat         *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Lng         *float64 `json:"lng,omitempty" validate:"omitempty,min=-180,max=180"`
}

// BatchIngestRequest - пакетный приём событий
type BatchIngestRequest struct {
	Events []IngestEventRequest `json:"events" validate:"required,min=1,max=1000,dive"`
}

// RefreshSummaryRequest - запрос на принудительный пересчёт сводки
type RefreshSummaryRequest struct {
	Date string `json:"date" validate:"required,daykey"`
}
