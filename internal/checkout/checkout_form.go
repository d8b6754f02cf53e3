package checkout

// BuyerForm is the mutable checkout draft. It belongs to the caller, exists
// only while checkout is underway, and is discarded once an order has been
// built from it.
type BuyerForm struct {
	FullName   string `json:"fullName" validate:"notblank"`
	Email      string `json:"email" validate:"simpleemail"`
	CardNumber string `json:"cardNumber" validate:"card16"`
	Address1   string `json:"address1" validate:"notblank"`
	Address2   string `json:"address2"`
	City       string `json:"city" validate:"notblank"`
	State      string `json:"state" validate:"notblank"`
	Zip        string `json:"zip" validate:"zip5"`
}

// ValidationResult maps a field's JSON name to its error message. A field
// appears only when invalid; an empty result means the form is valid.
type ValidationResult map[string]string

func (r ValidationResult) Valid() bool {
	return len(r) == 0
}
