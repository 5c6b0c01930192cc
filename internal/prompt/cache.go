package prompt

import (
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const coreModule = "core"

// nomes de módulo viram nomes de arquivo, então só snake_case minúsculo
var moduleNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

type cacheEntry struct {
	content  string
	modTime  time.Time
	loadedAt time.Time
}

// Cache guarda o conteúdo dos módulos de prompt junto com o mtime do arquivo.
// Uma entrada é recarregada quando o arquivo muda ou quando é invalidada.
type Cache struct {
	dir     string
	mu      sync.Mutex
	entries map[string]cacheEntry
}

func NewCache(dir string) *Cache {
	return &Cache{
		dir:     dir,
		entries: make(map[string]cacheEntry),
	}
}

// Load devolve o conteúdo do módulo, ou false se o arquivo não existir
func (c *Cache) Load(name string) (string, bool) {
	if !moduleNamePattern.MatchString(name) {
		logrus.WithField("module", name).Warn("Nome de módulo de prompt inválido")
		return "", false
	}

	path, info, ok := c.resolve(name)
	if !ok {
		logrus.WithField("module", name).Warn("Módulo de prompt não encontrado")
		return "", false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[name]; ok && entry.modTime.Equal(info.ModTime()) {
		return entry.content, true
	}

	content, err := os.ReadFile(path)
	if err != nil {
		logrus.WithField("module", name).WithError(err).Warn("Erro ao carregar módulo de prompt")
		return "", false
	}

	c.entries[name] = cacheEntry{
		content:  string(content),
		modTime:  info.ModTime(),
		loadedAt: time.Now(),
	}

	return string(content), true
}

func (c *Cache) Invalidate(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, name)
}

func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// Cached lista os módulos em cache e quando foram carregados
func (c *Cache) Cached() map[string]time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]time.Time, len(c.entries))
	for name, entry := range c.entries {
		out[name] = entry.loadedAt
	}
	return out
}

// resolve procura primeiro em core/ e depois em modules/.
// O módulo "core" fica no arquivo core_prompt.md.
func (c *Cache) resolve(name string) (string, os.FileInfo, bool) {
	fileName := name
	if name == coreModule {
		fileName = "core_prompt"
	}

	for _, sub := range []string{"core", "modules"} {
		path := filepath.Join(c.dir, sub, fileName+".md")
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, info, true
		}
	}

	return "", nil, false
}
