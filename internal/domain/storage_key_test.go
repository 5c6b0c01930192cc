package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStorageKey(t *testing.T) {
	tests := []struct {
		name     string
		scope    StorageScope
		expected string
	}{
		{
			name: "Nomes de conta e campanha - usa ambos sanitizados",
			scope: StorageScope{
				AccountID:   "9660434837",
				ScopeID:     "22557679902",
				AccountName: "Titan Home Solutions",
				ScopeName:   "PPCL Central NC v3",
			},
			expected: "Titan_Home_Solutions_PPCL_Central_NC_v3",
		},
		{
			name: "Apenas nome da conta - ignora IDs",
			scope: StorageScope{
				AccountID:   "9660434837",
				ScopeID:     "22557679902",
				AccountName: "Titan Home Solutions",
			},
			expected: "Titan_Home_Solutions",
		},
		{
			name:     "Sem nomes - usa conta e campanha",
			scope:    StorageScope{AccountID: "9660434837", ScopeID: "22557679902"},
			expected: "9660434837_22557679902",
		},
		{
			name:     "Sem nomes e sem campanha - usa apenas a conta",
			scope:    StorageScope{AccountID: "966-043-4837"},
			expected: "966-043-4837",
		},
		{
			name:     "Caracteres especiais são descartados",
			scope:    StorageScope{AccountName: "Acme & Sons, LLC.", ScopeName: "Sell/Fast (Q3)"},
			expected: "Acme_Sons_LLC_SellFast_Q3",
		},
		{
			name:     "Espaços repetidos viram um único underscore",
			scope:    StorageScope{AccountName: "  Big    Account  "},
			expected: "Big_Account",
		},
		{
			name:     "Nome da campanha sem nome da conta - cai para IDs",
			scope:    StorageScope{AccountID: "123", ScopeID: "456", ScopeName: "Campanha"},
			expected: "123_456",
		},
		{
			name:     "Escopo vazio",
			scope:    StorageScope{},
			expected: "unscoped",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveStorageKey(tt.scope))
		})
	}
}

func TestDeriveStorageKey_Truncation(t *testing.T) {
	long := strings.Repeat("a", 150)
	scopeA := StorageScope{AccountName: long, ScopeName: strings.Repeat("b", 100) + "x"}
	scopeB := StorageScope{AccountName: long, ScopeName: strings.Repeat("b", 100) + "y"}

	keyA := DeriveStorageKey(scopeA)
	keyB := DeriveStorageKey(scopeB)

	assert.Len(t, keyA, MaxStorageKeyLength)
	assert.Len(t, keyB, MaxStorageKeyLength)
	assert.Contains(t, keyA, "~")
	assert.True(t, strings.HasPrefix(keyA, long+"_"))
	assert.NotEqual(t, keyA, keyB)

	// derivação é determinística
	assert.Equal(t, keyA, DeriveStorageKey(scopeA))
}

func TestSnapshotScope_MatchesDerivation(t *testing.T) {
	snapshot := &Snapshot{
		AccountID:    "9660434837",
		CampaignID:   "22557679902",
		AccountName:  "Titan",
		CampaignName: "Central",
	}

	assert.Equal(t, "Titan_Central", DeriveStorageKey(snapshot.Scope()))
}
