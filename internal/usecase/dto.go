package usecase

import "encoding/json"

type CreateProspectInput struct {
	Name        string  `json:"name"`
	Company     string  `json:"company"`
	Role        string  `json:"role"`
	Industry    *string `json:"industry"`
	PainPoints  *string `json:"painPoints"`
	LinkedinURL *string `json:"linkedinUrl"`
	Email       *string `json:"email"`
}

// NullableUpdate distinguishes the three states a JSON field can arrive in:
// omitted (leave the stored value alone), null (clear it), or a string value.
type NullableUpdate struct {
	Set   bool
	Value *string
}

func (n *NullableUpdate) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// UpdateProspectInput is a partial update. Name/Company/Role/Status keep the
// stored value whenever the incoming value is absent OR empty — an empty
// string cannot clear them. The optional fields are tri-state instead.
type UpdateProspectInput struct {
	Name        *string        `json:"name"`
	Company     *string        `json:"company"`
	Role        *string        `json:"role"`
	Status      *string        `json:"status"`
	Industry    NullableUpdate `json:"industry"`
	PainPoints  NullableUpdate `json:"painPoints"`
	LinkedinURL NullableUpdate `json:"linkedinUrl"`
	Email       NullableUpdate `json:"email"`
}

type GenerateEmailInput struct {
	ProspectID string `json:"prospectId"`
}

type DeleteProspectOutput struct {
	Success bool `json:"success"`
}
