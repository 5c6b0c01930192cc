package domain

import (
	"fmt"
	"hash/fnv"
	"strings"
)

const (
	// MaxStorageKeyLength limita o tamanho da chave (e do nome de arquivo derivado)
	MaxStorageKeyLength = 200

	unscopedStorageKey = "unscoped"
)

// StorageScope identifica a conta e, opcionalmente, a campanha rastreada
type StorageScope struct {
	AccountID   string `json:"account_id"`
	ScopeID     string `json:"campaign_id,omitempty"`
	AccountName string `json:"account_name,omitempty"`
	ScopeName   string `json:"campaign_name,omitempty"`
}

// DeriveStorageKey mapeia o escopo para a chave compartilhada pelo snapshot e pelo changelog.
// Prioridade: nomes de conta e campanha, nome da conta sozinho, IDs.
func DeriveStorageKey(scope StorageScope) string {
	accountName := sanitizeKeyPart(scope.AccountName)
	scopeName := sanitizeKeyPart(scope.ScopeName)

	var key string
	switch {
	case accountName != "" && scopeName != "":
		key = accountName + "_" + scopeName
	case accountName != "":
		key = accountName
	default:
		accountID := sanitizeKeyPart(scope.AccountID)
		scopeID := sanitizeKeyPart(scope.ScopeID)
		switch {
		case accountID != "" && scopeID != "":
			key = accountID + "_" + scopeID
		case accountID != "":
			key = accountID
		case scopeID != "":
			key = scopeID
		default:
			key = unscopedStorageKey
		}
	}

	return truncateStorageKey(key)
}

// sanitizeKeyPart mantém [A-Za-z0-9 _-], descarta o resto e troca sequências de espaços por "_"
func sanitizeKeyPart(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), "_")
}

// truncateStorageKey corta chaves longas e termina com "~" + hash da chave completa,
// assim duas chaves longas com o mesmo prefixo não colidem
func truncateStorageKey(key string) string {
	if len(key) <= MaxStorageKeyLength {
		return key
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	suffix := fmt.Sprintf("~%08x", h.Sum32())

	return key[:MaxStorageKeyLength-len(suffix)] + suffix
}
