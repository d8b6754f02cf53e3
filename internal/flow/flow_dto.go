package flow

type StateResponse struct {
	State State `json:"state"`
	// Order is present only while the confirmation view is showing.
	Order any `json:"order,omitempty"`
}
