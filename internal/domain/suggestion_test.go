package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestionResponse_ToSet(t *testing.T) {
	tests := []struct {
		name   string
		resp   *SuggestionResponse
		status SuggestionStatus
		items  int
	}{
		{
			name: "ok with rows",
			resp: &SuggestionResponse{
				Status: ProviderStatusOK,
				Data:   []Suggestion{{ID: "a", Description: "Ramen Shop, NYC"}},
			},
			status: SuggestionReady,
			items:  1,
		},
		{name: "ok without rows", resp: &SuggestionResponse{Status: ProviderStatusOK}, status: SuggestionEmpty},
		{name: "zero results", resp: &SuggestionResponse{Status: ProviderStatusZeroResults}, status: SuggestionEmpty},
		{name: "denied", resp: &SuggestionResponse{Status: ProviderStatusRequestDenied}, status: SuggestionError},
		{name: "nil", resp: nil, status: SuggestionError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := tt.resp.ToSet()
			assert.Equal(t, tt.status, set.Status)
			assert.Len(t, set.Items, tt.items)
		})
	}
}

func TestSuggestionResponse_ToSetCopiesRows(t *testing.T) {
	resp := &SuggestionResponse{
		Status: ProviderStatusOK,
		Data:   []Suggestion{{ID: "a", Description: "first"}},
	}

	set := resp.ToSet()
	resp.Data[0].Description = "changed"

	assert.Equal(t, "first", set.Items[0].Description)
}

func TestSuggestionResponse_Cacheable(t *testing.T) {
	assert.True(t, (&SuggestionResponse{Status: ProviderStatusOK}).Cacheable())
	assert.True(t, (&SuggestionResponse{Status: ProviderStatusZeroResults}).Cacheable())
	assert.False(t, (&SuggestionResponse{Status: ProviderStatusOverQueryLimit}).Cacheable())
	assert.False(t, (*SuggestionResponse)(nil).Cacheable())
}
