package model

import "time"

// DisplayStatus is a point-in-time snapshot of the running display. It is
// copied out of the UI loop after every update and is read-only elsewhere.
type DisplayStatus struct {
	SessionID   string        `json:"session_id"`
	StartedAt   time.Time     `json:"started_at"`
	Page        string        `json:"page"` // "gate" or "board"
	Ready       bool          `json:"ready"`
	Error       bool          `json:"error"`
	Pending     bool          `json:"pending"`
	Message     string        `json:"message"`
	Section     string        `json:"section"`
	NewsIndex   int           `json:"news_index"`
	NewsCount   int           `json:"news_count"`
	AwardPage   int           `json:"award_page"`
	AwardCount  int           `json:"award_count"`
	EventIndex  int           `json:"event_index"`
	EventCount  int           `json:"event_count"`
	PromoIndex  int           `json:"promo_index"`
	Epoch       uint64        `json:"epoch"`
	Cycles      int           `json:"cycles"`
	TimerArmed  bool          `json:"timer_armed"`
	TimerPeriod time.Duration `json:"timer_period"`

	// TimerHandle identifies the armed tick, 0 when disarmed.
	TimerHandle    uint64        `json:"timer_handle"`
	TimerRemaining time.Duration `json:"timer_remaining"`
	TimerSettled   bool          `json:"timer_settled"` // steady period in use
}
