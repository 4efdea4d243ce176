package models

import "encoding/json"

// Model is implemented by every resource that is part of the export.
type Model interface {
	Export() (json.RawMessage, error) // All instances of this model for export.
}

// Registry is a slice of all models available.
//
// Operations that affect all models iterate over it instead of listing
// every model explicitly.
var Registry = []Model{
	Type{},
	Category{},
	Cashflow{},
	Budget{},
	LiquidAsset{},
	Debt{},
	Investment{},
	NetWorth{},
	EmergencyFund{},
	Setting{},
	Account{},
}

// export returns all instances of T, including soft deleted ones, as JSON.
func export[T any]() (json.RawMessage, error) {
	var resources []T
	err := DB.Unscoped().Find(&resources).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&resources)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
