package domain

import "strings"

// OptimizeRequest is the decoded body of POST /optimize. Field names follow
// the documented data model; PatientInput additionally accepts the legacy
// `acuity` alias for `base_acuity`.
type OptimizeRequest struct {
	Nurses   []NurseInput  `json:"nurses"`
	Patients []PatientInput `json:"patients"`
	Config   *ConfigInput  `json:"config,omitempty"`
}

// NurseInput is the wire shape of a single roster entry. Required fields
// are pointers so the validator can distinguish "absent" from "zero value".
type NurseInput struct {
	NurseID         *string `json:"nurse_id"`
	Name            *string `json:"name"`
	Role            string  `json:"role,omitempty"`
	SkillLevel      *int    `json:"skill_level"`
	IVCert          *string `json:"iv_cert"`
	MaxPatients     *int    `json:"max_patients"`
	PodPref         string  `json:"pod_pref,omitempty"`
	PregnancyStatus string  `json:"pregnancy_status,omitempty"`
	Phone           string  `json:"phone,omitempty"`
}

// PatientInput is the wire shape of a single census entry.
type PatientInput struct {
	PatientID      *string `json:"patient_id"`
	Initials       *string `json:"initials"`
	Pod            string  `json:"pod,omitempty"`
	BaseAcuity     *int    `json:"base_acuity"`
	Acuity         *int    `json:"acuity,omitempty"` // legacy alias for base_acuity
	NewAdmit       string  `json:"new_admit,omitempty"`
	ChemoType      *string `json:"chemo_type"`
	ChemoFrequency string  `json:"chemo_frequency,omitempty"`
	ChemoTime      string  `json:"chemo_time,omitempty"`
	CentralLine    string  `json:"central_line,omitempty"`
	IVMedications  string  `json:"iv_medications,omitempty"`
	Isolation      string  `json:"isolation,omitempty"`
	CMVStatus      string  `json:"cmv_status,omitempty"`
	LastNurse      string  `json:"last_nurse,omitempty"`
}

// ConfigInput is the optional per-request weight override. Any field left
// nil, or set to 0, falls back to the documented default (see
// ResolveWeights).
type ConfigInput struct {
	ContinuityWeight      *float64 `json:"Continuity_Weight,omitempty"`
	SkillWeight           *float64 `json:"Skill_Weight,omitempty"`
	GeographyWeight       *float64 `json:"Geography_Weight,omitempty"`
	WorkloadBalanceWeight *float64 `json:"Workload_Balance_Weight,omitempty"`
}

func effectiveBaseAcuity(p PatientInput) *int {
	if p.BaseAcuity != nil {
		return p.BaseAcuity
	}
	return p.Acuity
}

func normalizeRole(role string) string {
	if role == "" {
		return "RN"
	}
	return role
}

func normalizePregnancyStatus(s string) string {
	if s == "" {
		return "N"
	}
	return s
}

func parseYN(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "Y")
}

func toNurse(in NurseInput) Nurse {
	ivCert := ""
	if in.IVCert != nil {
		ivCert = *in.IVCert
	}
	maxPatients := 4
	if in.MaxPatients != nil {
		maxPatients = *in.MaxPatients
	}
	skill := 1
	if in.SkillLevel != nil {
		skill = *in.SkillLevel
	}
	id, name := "", ""
	if in.NurseID != nil {
		id = *in.NurseID
	}
	if in.Name != nil {
		name = *in.Name
	}
	return Nurse{
		NurseID:         id,
		Name:            name,
		Role:            normalizeRole(in.Role),
		SkillLevel:      skill,
		IVCert:          parseYN(ivCert),
		MaxPatients:     maxPatients,
		PodPref:         in.PodPref,
		PregnancyStatus: normalizePregnancyStatus(in.PregnancyStatus),
		Phone:           in.Phone,
	}
}

func toPatient(in PatientInput) Patient {
	id, initials := "", ""
	if in.PatientID != nil {
		id = *in.PatientID
	}
	if in.Initials != nil {
		initials = *in.Initials
	}
	chemoType := ""
	if in.ChemoType != nil {
		chemoType = *in.ChemoType
	}
	baseAcuity := 1
	if ba := effectiveBaseAcuity(in); ba != nil {
		baseAcuity = *ba
	}
	centralLine := in.CentralLine
	if centralLine == "" {
		centralLine = "none"
	}
	cmv := in.CMVStatus
	if cmv == "" {
		cmv = "Unknown"
	}
	return Patient{
		PatientID:      id,
		Initials:       initials,
		Pod:            in.Pod,
		BaseAcuity:     baseAcuity,
		NewAdmit:       parseYN(in.NewAdmit),
		ChemoType:      strings.ToLower(strings.TrimSpace(chemoType)),
		ChemoFrequency: in.ChemoFrequency,
		ChemoTime:      in.ChemoTime,
		CentralLine:    strings.ToLower(strings.TrimSpace(centralLine)),
		IVMedications:  in.IVMedications,
		Isolation:      in.Isolation,
		CMVStatus:      cmv,
		LastNurse:      in.LastNurse,
	}
}
