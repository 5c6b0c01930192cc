package storage

import "errors"

// ErrNotFound indica que não existe documento para a chave
var ErrNotFound = errors.New("document not found")

// Store é um armazenamento chave-valor de slot único: cada Put substitui o conteúdo anterior.
// Trocar a implementação (ex.: por uma versionada) não afeta o diff nem a formatação.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, content []byte) error
}
