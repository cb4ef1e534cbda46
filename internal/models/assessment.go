package models

// DistressLevel is the severity classification assigned to an inbound
// message before any dialogue routing happens.
type DistressLevel string

const (
	DistressLow      DistressLevel = "low"
	DistressMedium   DistressLevel = "medium"
	DistressHigh     DistressLevel = "high"
	DistressCritical DistressLevel = "critical"
)

// Assessment is the result of scanning a message against the distress
// keyword sets. ImmediateResponse means the router must short-circuit and
// reply with an emergency template without touching session state.
type Assessment struct {
	Level             DistressLevel `json:"level"`
	Indicators        []string      `json:"indicators,omitempty"`
	ImmediateResponse bool          `json:"immediate_response"`
	FollowUpRequired  bool          `json:"follow_up_required"`
}
