package payload

import (
	"regexp"

	"github.com/jellydator/validation"
)

var fingerprintRegex = regexp.MustCompile(`^(0[xX])?[0-9a-fA-F]{64}$`)

type InvestRequest struct {
	Amount float64 `json:"amount"`
}

func (i *InvestRequest) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.Amount, validation.Required, validation.Min(0.0).Exclusive()),
	)
}

type EvidenceRequest struct {
	ProjectID      uint32 `json:"projectId"`
	MilestoneIndex uint32 `json:"milestoneIndex"`
	Fingerprint    string `json:"fingerprint"`
}

func (e *EvidenceRequest) Validate() error {
	return validation.ValidateStruct(e,
		validation.Field(&e.ProjectID, validation.Required),
		validation.Field(&e.Fingerprint, validation.Required, validation.Match(fingerprintRegex)),
	)
}

type VerifyRequest struct {
	ProjectID      uint32 `json:"projectId"`
	MilestoneIndex uint32 `json:"milestoneIndex"`
	Approved       *bool  `json:"approved"`
}

func (v *VerifyRequest) Validate() error {
	return validation.ValidateStruct(v,
		validation.Field(&v.ProjectID, validation.Required),
		validation.Field(&v.Approved, validation.NotNil),
	)
}
