package service

// Metrics records marketplace business counters.
type Metrics interface {
	OrderTransition(from, to string)
	AppointmentTransition(from, to string)
	InventoryAdjusted(direction string, amount int)
	ReviewSubmitted(itemType string)
}

// NopMetrics discards every observation.
type NopMetrics struct{}

func (NopMetrics) OrderTransition(string, string)       {}
func (NopMetrics) AppointmentTransition(string, string) {}
func (NopMetrics) InventoryAdjusted(string, int)        {}
func (NopMetrics) ReviewSubmitted(string)               {}
