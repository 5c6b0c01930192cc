package prompt

import (
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	PageFull             = "full"
	PageAdCopy           = "ad_copy"
	PageKeywordResearch  = "keyword_research"
	PageBiweeklyReport   = "biweekly_report"
	PageQA               = "qa"
	PageCampaignAnalysis = "campaign_analysis"

	moduleKeywordPlanner = "keyword_planner"
)

// DefaultPages define os módulos carregados por página
var DefaultPages = map[string][]string{
	PageFull:             {"core", "bidding_strategy", "smart_bidding", "ad_copy", "offline_conversions", "mcc_portfolio", "change_tracking", "keyword_planner"},
	PageAdCopy:           {"core", "ad_copy"},
	PageKeywordResearch:  {"core", "keyword_planner", "keyword_research"},
	PageBiweeklyReport:   {"core", "biweekly_reporting", "change_tracking"},
	PageQA:               {"core"},
	PageCampaignAnalysis: {"core", "bidding_strategy", "smart_bidding", "ad_copy", "offline_conversions", "mcc_portfolio", "change_tracking"},
}

type qaRule struct {
	terms   []string
	modules []string
}

// Termos da pergunta que ativam módulos extras na página de perguntas
var qaRules = []qaRule{
	{terms: []string{"keyword", "match type", "search term", "negative keyword"}, modules: []string{"keyword_planner"}},
	{terms: []string{"bidding", "bid strategy", "maximize clicks", "maximize conversions", "target cpa"}, modules: []string{"bidding_strategy", "smart_bidding"}},
	{terms: []string{"ad copy", "headline", "description", "ad text", "creative"}, modules: []string{"ad_copy"}},
	{terms: []string{"conversion", "offline conversion", "gclid", "funnel"}, modules: []string{"offline_conversions"}},
	{terms: []string{"mcc", "portfolio", "multi-client", "shared"}, modules: []string{"mcc_portfolio"}},
	{terms: []string{"report", "client report", "biweekly"}, modules: []string{"biweekly_reporting"}},
}

type Options struct {
	Question              string
	IncludeKeywordPlanner bool
	AdditionalModules     []string
}

type pagesFile struct {
	Pages map[string][]string `yaml:"pages"`
}

// LoadPages lê o arquivo YAML de páginas e sobrepõe as entradas padrão.
// Caminho vazio devolve apenas os padrões.
func LoadPages(path string) (map[string][]string, error) {
	pages := make(map[string][]string, len(DefaultPages))
	for page, modules := range DefaultPages {
		pages[page] = slices.Clone(modules)
	}

	if path == "" {
		return pages, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler arquivo de páginas %s", path)
	}

	var file pagesFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, errors.Wrapf(err, "erro ao interpretar arquivo de páginas %s", path)
	}

	for page, modules := range file.Pages {
		pages[page] = modules
	}

	return pages, nil
}

type Builder struct {
	cache *Cache
	pages map[string][]string
}

func NewBuilder(cache *Cache, pages map[string][]string) *Builder {
	if pages == nil {
		pages = DefaultPages
	}
	return &Builder{
		cache: cache,
		pages: pages,
	}
}

// DetectQAModules escolhe módulos extras a partir do texto da pergunta
func DetectQAModules(question string) []string {
	question = strings.ToLower(question)

	var modules []string
	for _, rule := range qaRules {
		for _, term := range rule.terms {
			if strings.Contains(question, term) {
				modules = append(modules, rule.modules...)
				break
			}
		}
	}
	return modules
}

// Modules resolve a lista final de módulos da página, sem repetições
func (b *Builder) Modules(page string, opts Options) []string {
	base, ok := b.pages[page]
	if !ok {
		base = []string{coreModule}
	}
	modules := slices.Clone(base)

	add := func(names ...string) {
		for _, name := range names {
			if !slices.Contains(modules, name) {
				modules = append(modules, name)
			}
		}
	}

	if opts.IncludeKeywordPlanner {
		add(moduleKeywordPlanner)
	}
	add(opts.AdditionalModules...)
	if page == PageQA && opts.Question != "" {
		add(DetectQAModules(opts.Question)...)
	}

	return modules
}

// Build junta os módulos encontrados separados por linha em branco
func (b *Builder) Build(page string, opts Options) string {
	var parts []string
	for _, name := range b.Modules(page, opts) {
		if content, ok := b.cache.Load(name); ok && content != "" {
			parts = append(parts, content)
		}
	}
	return strings.Join(parts, "\n\n")
}

// Compose monta o prompt da página e anexa o bloco de mudanças anteriores
func (b *Builder) Compose(page string, opts Options, previousChanges string) string {
	prompt := b.Build(page, opts)
	if strings.TrimSpace(previousChanges) == "" {
		return prompt
	}
	if prompt == "" {
		return previousChanges
	}
	return prompt + "\n\n" + previousChanges
}
