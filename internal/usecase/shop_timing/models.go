package shop_timing

// DayTiming часы работы в один день недели
type DayTiming struct {
	Day    string `json:"day"`
	Open   string `json:"open"`
	Close  string `json:"close"`
	ID     string `json:"id,omitempty"`
	Stored bool   `json:"stored"` // false - значение по умолчанию, записи на бэкенде нет
}

// WeekRequest запрос недельного расписания
type WeekRequest struct {
	Workspace Workspace
	Refresh   bool
}

// SetDayRequest запрос изменения часов работы дня
type SetDayRequest struct {
	Workspace Workspace
	Day       string
	Open      string // HH:MM
	Close     string // HH:MM
}
