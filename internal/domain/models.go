// Package domain defines the core domain models for the SafeSpace backend.
package domain

import (
	"time"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether the role is one of the two supported values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// ReportStatus tracks narrative generation progress for a report.
type ReportStatus string

const (
	ReportStatusPendingGeneration ReportStatus = "pending_generation"
	ReportStatusGenerated         ReportStatus = "generated"
	ReportStatusGenerationFailed  ReportStatus = "generation_failed"
)

// Location is the place where the incident occurred.
type Location string

const (
	LocationPublicSpace Location = "public space"
	LocationOnline      Location = "online"
	LocationKampus      Location = "kampus"
	LocationSekolah     Location = "sekolah"
	LocationWorkplace   Location = "workplace"
)

// Perpetrator is the reported perpetrator type.
type Perpetrator string

const (
	PerpetratorSupervisor Perpetrator = "supervisor"
	PerpetratorColleague  Perpetrator = "colleague"
	PerpetratorLecturer   Perpetrator = "lecturer"
	PerpetratorClient     Perpetrator = "client"
	PerpetratorStranger   Perpetrator = "stranger"
)

// IncidentType is the nature of the reported incident.
type IncidentType string

const (
	IncidentInappropriateComments IncidentType = "inappropriate comments"
	IncidentUnwantedPhysicalTouch IncidentType = "unwanted physical touch"
	IncidentRepeatedPressure      IncidentType = "repeated pressure"
	IncidentThreatOrCoercion      IncidentType = "threat or coercion"
	IncidentDigitalHarassment     IncidentType = "digital harassment"
)

// Evidence is the kind of documentation the reporter has available.
type Evidence string

const (
	EvidenceMessages Evidence = "messages"
	EvidenceEmails   Evidence = "emails"
	EvidenceWitness  Evidence = "witness"
	EvidenceNone     Evidence = "none"
)

// UserGoal is what the reporter wants out of filing the report.
type UserGoal string

const (
	GoalUnderstandRisk    UserGoal = "understand the risk"
	GoalDocumentSafely    UserGoal = "document safely"
	GoalConsiderReporting UserGoal = "consider reporting"
	GoalExploreOptions    UserGoal = "explore options"
)

func (l Location) Valid() bool {
	switch l {
	case LocationPublicSpace, LocationOnline, LocationKampus, LocationSekolah, LocationWorkplace:
		return true
	}
	return false
}

func (p Perpetrator) Valid() bool {
	switch p {
	case PerpetratorSupervisor, PerpetratorColleague, PerpetratorLecturer, PerpetratorClient, PerpetratorStranger:
		return true
	}
	return false
}

func (d IncidentType) Valid() bool {
	switch d {
	case IncidentInappropriateComments, IncidentUnwantedPhysicalTouch, IncidentRepeatedPressure,
		IncidentThreatOrCoercion, IncidentDigitalHarassment:
		return true
	}
	return false
}

func (e Evidence) Valid() bool {
	switch e {
	case EvidenceMessages, EvidenceEmails, EvidenceWitness, EvidenceNone:
		return true
	}
	return false
}

func (g UserGoal) Valid() bool {
	switch g {
	case GoalUnderstandRisk, GoalDocumentSafely, GoalConsiderReporting, GoalExploreOptions:
		return true
	}
	return false
}

// Session represents an anonymous conversation context. It carries no
// identifying information beyond its random identifier.
type Session struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Message represents a single immutable turn in a session's history.
type Message struct {
	MessageID string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Seq       int64     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// ReportInput is the structured incident data submitted by the user.
// All five fields are drawn from fixed closed sets.
type ReportInput struct {
	Location    Location     `json:"location"`
	Perpetrator Perpetrator  `json:"perpetrator"`
	Description IncidentType `json:"description"`
	Evidence    Evidence     `json:"evidence"`
	UserGoal    UserGoal     `json:"user_goal"`
}

// Validate checks every field against its closed set.
func (in ReportInput) Validate() error {
	if !in.Location.Valid() {
		return &ValidationError{Field: "location", Value: string(in.Location)}
	}
	if !in.Perpetrator.Valid() {
		return &ValidationError{Field: "perpetrator", Value: string(in.Perpetrator)}
	}
	if !in.Description.Valid() {
		return &ValidationError{Field: "description", Value: string(in.Description)}
	}
	if !in.Evidence.Valid() {
		return &ValidationError{Field: "evidence", Value: string(in.Evidence)}
	}
	if !in.UserGoal.Valid() {
		return &ValidationError{Field: "user_goal", Value: string(in.UserGoal)}
	}
	return nil
}

// Report is a session-scoped incident report. The five structured fields are
// immutable after creation; only GeneratedDocument and Status transition, and
// at most once (pending -> generated or pending -> generation_failed).
type Report struct {
	ReportID          string       `json:"id"`
	SessionID         string       `json:"session_id"`
	Location          Location     `json:"location"`
	Perpetrator       Perpetrator  `json:"perpetrator"`
	Description       IncidentType `json:"description"`
	Evidence          Evidence     `json:"evidence"`
	UserGoal          UserGoal     `json:"user_goal"`
	GeneratedDocument *string      `json:"generated_document"`
	Status            ReportStatus `json:"status"`
	CreatedAt         time.Time    `json:"created_at"`
}

// Input returns the structured fields the report was created from.
func (r *Report) Input() ReportInput {
	return ReportInput{
		Location:    r.Location,
		Perpetrator: r.Perpetrator,
		Description: r.Description,
		Evidence:    r.Evidence,
		UserGoal:    r.UserGoal,
	}
}
