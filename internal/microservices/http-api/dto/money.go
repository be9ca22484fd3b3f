package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// AmountError is returned while decoding a request whose money field is not a number.
type AmountError struct {
	Field string
	Err   error
}

func (e *AmountError) Error() string {
	return fmt.Sprintf("%s must be a decimal number", e.Field)
}

func (e *AmountError) Unwrap() error {
	return e.Err
}

func decodeAmount(field string, raw json.RawMessage, dst json.Unmarshaler) error {
	if len(raw) == 0 {
		return nil
	}
	if err := dst.UnmarshalJSON(raw); err != nil {
		return &AmountError{Field: field, Err: err}
	}
	return nil
}

// decodeOptionalAmount leaves *dst nil when the field is absent or null.
func decodeOptionalAmount(field string, raw json.RawMessage, dst **decimal.Decimal) error {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	d := new(decimal.Decimal)
	if err := decodeAmount(field, raw, d); err != nil {
		return err
	}
	*dst = d
	return nil
}

func (r *CreateCampaignRequest) UnmarshalJSON(data []byte) error {
	type plain CreateCampaignRequest
	var body struct {
		plain
		Budget json.RawMessage `json:"budget"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}
	*r = CreateCampaignRequest(body.plain)
	return decodeAmount("budget", body.Budget, &r.Budget)
}

func (r *CreateRequirementRequest) UnmarshalJSON(data []byte) error {
	type plain CreateRequirementRequest
	var body struct {
		plain
		BudgetMin json.RawMessage `json:"budgetMin"`
		BudgetMax json.RawMessage `json:"budgetMax"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}
	*r = CreateRequirementRequest(body.plain)
	if err := decodeAmount("budgetMin", body.BudgetMin, &r.BudgetMin); err != nil {
		return err
	}
	return decodeAmount("budgetMax", body.BudgetMax, &r.BudgetMax)
}

func (r *UpdateRequirementRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateRequirementRequest
	var body struct {
		plain
		BudgetMin json.RawMessage `json:"budgetMin"`
		BudgetMax json.RawMessage `json:"budgetMax"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}
	*r = UpdateRequirementRequest(body.plain)
	if err := decodeOptionalAmount("budgetMin", body.BudgetMin, &r.BudgetMin); err != nil {
		return err
	}
	return decodeOptionalAmount("budgetMax", body.BudgetMax, &r.BudgetMax)
}
