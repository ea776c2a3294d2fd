package validation

import (
	"testing"

	"github.com/clearpath-au/go-remit/internal/models"

	"github.com/stretchr/testify/assert"
)

func validRelease() models.ReleaseRequest {
	return models.ReleaseRequest{
		ABN:         "51824753556",
		TaxType:     "GST",
		PeriodID:    "2025-Q4",
		AmountCents: -125000,
		Rail:        models.RailEFT,
		Destination: models.Destination{
			BSB:           "012-345",
			AccountNumber: "123456789",
		},
		IdempotencyKey: "rel-2025-q4-51824753556-gst",
	}
}

func TestValidateStruct_ReleaseRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.ReleaseRequest)
		wantErr string
	}{
		{
			name:   "valid request",
			mutate: func(r *models.ReleaseRequest) {},
		},
		{
			name: "abn fails checksum",
			mutate: func(r *models.ReleaseRequest) {
				r.ABN = "51824753557"
			},
			wantErr: "abn",
		},
		{
			name: "unknown tax type",
			mutate: func(r *models.ReleaseRequest) {
				r.TaxType = "VAT"
			},
			wantErr: "taxType",
		},
		{
			name: "amount must be an outflow",
			mutate: func(r *models.ReleaseRequest) {
				r.AmountCents = 125000
			},
			wantErr: "amountCents",
		},
		{
			name: "missing idempotency key",
			mutate: func(r *models.ReleaseRequest) {
				r.IdempotencyKey = ""
			},
			wantErr: "idempotencyKey",
		},
		{
			name: "malformed bsb",
			mutate: func(r *models.ReleaseRequest) {
				r.Destination.BSB = "12-3456"
			},
			wantErr: "bsb",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRelease()
			tt.mutate(&req)

			err := ValidateStruct(req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidABN(t *testing.T) {
	tests := []struct {
		name string
		abn  string
		want bool
	}{
		{name: "known good abn", abn: "51824753556", want: true},
		{name: "checksum off by one", abn: "51824753557", want: false},
		{name: "too short", abn: "5182475355", want: false},
		{name: "non numeric", abn: "5182475355x", want: false},
		{name: "empty", abn: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidABN(tt.abn))
		})
	}
}

func TestValidateStruct_CRN(t *testing.T) {
	req := validRelease()
	req.Rail = models.RailBPAY
	req.Destination = models.Destination{BillerCode: "75556", CRN: "not-a-crn"}

	err := ValidateStruct(req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "crn")
}
