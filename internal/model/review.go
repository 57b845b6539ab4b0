package model

import "strings"

// ReviewStatus is one operational team's sign-off state.
type ReviewStatus string

const (
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
	ReviewPending  ReviewStatus = "pending"
)

// ParseReviewStatus normalizes a wire status. Anything unrecognized reads as
// pending, matching how the backend leaves unfinished reviews.
func ParseReviewStatus(raw string) ReviewStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "approved":
		return ReviewApproved
	case "rejected":
		return ReviewRejected
	default:
		return ReviewPending
	}
}

// Label returns the badge text for the status.
func (s ReviewStatus) Label() string {
	switch s {
	case ReviewApproved:
		return "Approved"
	case ReviewRejected:
		return "Rejected"
	default:
		return "Pending"
	}
}

// Attachment is a named document link carried on a review.
type Attachment struct {
	Name string
	URL  string
}

// Review is one operational team's sign-off record. Produced by the backend
// and never mutated here.
type Review struct {
	Title      string
	Subtitle   string
	Reviewer   string
	Status     ReviewStatus
	Date       string
	Remarks    string
	Attachment []Attachment
	CIBStatus  string
	CIBDate    string
}
