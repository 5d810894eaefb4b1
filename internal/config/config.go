package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LLMConfig holds connection details for one LLM-backed service
// (chat completion or embedding).
type LLMConfig struct {
	Provider string `yaml:"provider"` // "openai" or "ollama"
	BaseURL  string `yaml:"base_url"`
	Key      string `yaml:"key"`
	Model    string `yaml:"model"`
}

type SearchConfig struct {
	TavilyKey   string `yaml:"tavily_key"`
	SerpAPIKey  string `yaml:"serpapi_key"`
	BraveKey    string `yaml:"brave_key"`
	NewsAPIKey  string `yaml:"newsapi_key"`
	RapidAPIKey string `yaml:"rapidapi_key"`
	MaxResults  int    `yaml:"max_results"`
}

type StorageConfig struct {
	CorpusDir   string `yaml:"corpus_dir"`
	IndexDir    string `yaml:"index_dir"`
	CatalogPath string `yaml:"catalog_path"`
	Debug       bool   `yaml:"debug"`
}

type RAGConfig struct {
	ChunkSize    int `yaml:"chunk_size"`
	ChunkOverlap int `yaml:"chunk_overlap"`
	TopK         int `yaml:"top_k"`
}

type Config struct {
	Search   SearchConfig  `yaml:"search"`
	EmbedLLM LLMConfig     `yaml:"embed_llm"`
	ChatLLM  LLMConfig     `yaml:"chat_llm"`
	Storage  StorageConfig `yaml:"storage"`
	RAG      RAGConfig     `yaml:"rag"`
}

const (
	defaultCorpusDir    = "data/scraped_content"
	defaultIndexDir     = "data/index"
	defaultCatalogPath  = "data/catalog.db"
	defaultChunkSize    = 500
	defaultChunkOverlap = 50
	defaultTopK         = 5
	defaultMaxResults   = 5
)

// LoadConfig reads the YAML config file and overlays API keys from the
// environment (a .env file is honored when present). Values already set in
// the file win over the environment.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyEnv() {
	fromEnv(&c.Search.TavilyKey, "TAVILY_API_KEY")
	fromEnv(&c.Search.SerpAPIKey, "SERPAPI_KEY")
	fromEnv(&c.Search.BraveKey, "BRAVE_API_KEY")
	fromEnv(&c.Search.NewsAPIKey, "NEWSAPI_KEY")
	fromEnv(&c.Search.RapidAPIKey, "RAPIDAPI_KEY")
	fromEnv(&c.EmbedLLM.Key, "OPENAI_API_KEY")
	fromEnv(&c.ChatLLM.Key, "OPENAI_API_KEY")
}

func (c *Config) applyDefaults() {
	if c.Storage.CorpusDir == "" {
		c.Storage.CorpusDir = defaultCorpusDir
	}
	if c.Storage.IndexDir == "" {
		c.Storage.IndexDir = defaultIndexDir
	}
	if c.Storage.CatalogPath == "" {
		c.Storage.CatalogPath = defaultCatalogPath
	}
	if c.RAG.ChunkSize == 0 {
		c.RAG.ChunkSize = defaultChunkSize
	}
	if c.RAG.ChunkOverlap == 0 {
		c.RAG.ChunkOverlap = defaultChunkOverlap
	}
	if c.RAG.TopK == 0 {
		c.RAG.TopK = defaultTopK
	}
	if c.Search.MaxResults == 0 {
		c.Search.MaxResults = defaultMaxResults
	}
}

func fromEnv(dst *string, key string) {
	if *dst != "" {
		return
	}
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
