package file

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/ppcl2025/campaign-change-tracker/infrastructure/storage"
)

// Extensões usadas pelos diretórios de snapshots e changelogs
const (
	SnapshotExt  = ".json"
	ChangelogExt = ".txt"
)

// Store guarda cada chave em um arquivo <dir>/<key><ext>
type Store struct {
	dir string
	ext string
}

func NewStore(dir, ext string) *Store {
	return &Store{
		dir: dir,
		ext: ext,
	}
}

func (s *Store) Path(key string) string {
	return filepath.Join(s.dir, key+s.ext)
}

func (s *Store) Get(key string) ([]byte, error) {
	content, err := os.ReadFile(s.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storage.ErrNotFound
		}
		return nil, errors.Wrapf(err, "erro ao ler %s", s.Path(key))
	}

	return content, nil
}

// Put grava em um arquivo temporário e renomeia, assim uma escrita interrompida
// não deixa o arquivo anterior pela metade
func (s *Store) Put(key string, content []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrapf(err, "erro ao criar diretório %s", s.dir)
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "erro ao criar arquivo temporário")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "erro ao escrever %s", tmpName)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "erro ao fechar %s", tmpName)
	}

	if err := os.Rename(tmpName, s.Path(key)); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "erro ao substituir %s", s.Path(key))
	}

	return nil
}

// Keys lista as chaves gravadas no diretório, ignorando temporários.
// Diretório inexistente resulta em lista vazia.
func (s *Store) Keys() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "erro ao listar %s", s.dir)
	}

	var keys []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, s.ext) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, s.ext))
	}
	sort.Strings(keys)

	return keys, nil
}
