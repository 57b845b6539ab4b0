package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReviewStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want ReviewStatus
	}{
		{raw: "approved", want: ReviewApproved},
		{raw: "Approved", want: ReviewApproved},
		{raw: "  APPROVED ", want: ReviewApproved},
		{raw: "rejected", want: ReviewRejected},
		{raw: "Rejected", want: ReviewRejected},
		{raw: "pending", want: ReviewPending},
		{raw: "", want: ReviewPending},
		{raw: "in progress", want: ReviewPending},
	}

	for _, tt := range tests {
		t.Run("raw="+tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseReviewStatus(tt.raw))
		})
	}
}

func TestReviewStatusLabel(t *testing.T) {
	assert.Equal(t, "Approved", ReviewApproved.Label())
	assert.Equal(t, "Rejected", ReviewRejected.Label())
	assert.Equal(t, "Pending", ReviewPending.Label())
	assert.Equal(t, "Pending", ReviewStatus("garbage").Label())
}

func TestLoanPurposes(t *testing.T) {
	tests := []struct {
		name string
		loan Loan
		want []string
	}{
		{
			name: "no flags",
			loan: Loan{},
			want: nil,
		},
		{
			name: "single flag",
			loan: Loan{BuildingConstruction: true},
			want: []string{"Building Construction"},
		},
		{
			name: "all flags keep display order",
			loan: Loan{
				BuildingConstruction:     true,
				FlatExtensionRenovation:  true,
				LandBuildingConstruction: true,
				ReadymadeFlat:            true,
			},
			want: []string{
				"Building Construction",
				"Flat/Extension/Renovation",
				"Land & Building",
				"Readymade Flat",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.loan.Purposes()
			var labels []string
			for _, p := range got {
				labels = append(labels, p.Label)
			}
			assert.Equal(t, tt.want, labels)
		})
	}
}
