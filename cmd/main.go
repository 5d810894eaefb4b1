package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"company-research/internal/catalog"
	"company-research/internal/config"
	"company-research/internal/corpus"
	"company-research/internal/embedding"
	"company-research/internal/helper"
	"company-research/internal/index"
	"company-research/internal/llm"
	"company-research/internal/rag"
	"company-research/internal/report"
	"company-research/internal/search"
)

var configPath string

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Caller().Logger()

	root := &cobra.Command{
		Use:           "company-research",
		Short:         "Build company research dossiers from web search and RAG",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "./configs/config.yaml", "path to config file")

	root.AddCommand(
		questionsCmd(),
		searchCmd(),
		researchCmd(),
		buildIndexCmd(),
		askCmd(),
		reportCmd(),
		runsCmd(),
	)

	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func loadConfig() *config.Config {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}
	return cfg
}

func questionsCmd() *cobra.Command {
	var company string
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Generate research questions for a company",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			completer, err := llm.NewClient(&cfg.ChatLLM)
			if err != nil {
				return err
			}
			questions, err := llm.GenerateQuestions(cmd.Context(), completer, company)
			if err != nil {
				return err
			}
			for i, q := range questions {
				fmt.Printf("%d. %s\n", i+1, q)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.MarkFlagRequired("company")
	return cmd
}

func searchCmd() *cobra.Command {
	var query string
	var max int
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run one query through the provider failover chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			agg := search.NewDefaultAggregator(cfg.Search)
			results, err := agg.Search(cmd.Context(), query, max)
			if err != nil {
				return err
			}
			helper.PrettyPrint(results)
			return nil
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "search query")
	cmd.Flags().IntVar(&max, "max", 5, "max results")
	cmd.MarkFlagRequired("query")
	return cmd
}

func researchCmd() *cobra.Command {
	var company, questionsFile string
	cmd := &cobra.Command{
		Use:   "research",
		Short: "Bulk-search all research questions and persist the corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			ctx := cmd.Context()

			questions, err := loadQuestions(ctx, cfg, company, questionsFile)
			if err != nil {
				return err
			}

			agg := search.NewDefaultAggregator(cfg.Search)
			store := corpus.NewStore(cfg.Storage.CorpusDir)
			runner := corpus.NewRunner(agg, store, cfg.Search.MaxResults)

			path, err := runner.Run(ctx, company, questions)
			if err != nil {
				return err
			}

			cat, err := catalog.Open(cfg.Storage.CatalogPath, cfg.Storage.Debug)
			if err != nil {
				return err
			}
			defer cat.Close()
			if _, err := cat.Record(ctx, company, path, len(questions)); err != nil {
				return err
			}

			fmt.Println(path)
			return nil
		},
	}
	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().StringVar(&questionsFile, "questions-file", "", "file with one question per line (default: generate via LLM)")
	cmd.MarkFlagRequired("company")
	return cmd
}

func loadQuestions(ctx context.Context, cfg *config.Config, company, path string) ([]string, error) {
	if path == "" {
		completer, err := llm.NewClient(&cfg.ChatLLM)
		if err != nil {
			return nil, err
		}
		return llm.GenerateQuestions(ctx, completer, company)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var questions []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			questions = append(questions, line)
		}
	}
	return questions, scanner.Err()
}

func buildIndexCmd() *cobra.Command {
	var company, corpusPath string
	cmd := &cobra.Command{
		Use:   "build-index",
		Short: "Chunk, embed, and index a corpus for a company",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			ctx := cmd.Context()

			path, err := resolveCorpus(ctx, cfg, company, corpusPath)
			if err != nil {
				return err
			}

			embedder, err := embedding.New(&cfg.EmbedLLM)
			if err != nil {
				return err
			}
			builder := index.NewBuilder(
				index.NewStore(cfg.Storage.IndexDir),
				embedder,
				index.NewChunker(cfg.RAG.ChunkSize, cfg.RAG.ChunkOverlap),
			)
			n, err := builder.BuildFromCorpus(ctx, company, corpus.NewStore(cfg.Storage.CorpusDir), path)
			if err != nil {
				return err
			}
			fmt.Printf("indexed %d chunks for %s\n", n, company)
			return nil
		},
	}
	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().StringVar(&corpusPath, "corpus", "", "corpus file (default: latest run from catalog)")
	cmd.MarkFlagRequired("company")
	return cmd
}

func resolveCorpus(ctx context.Context, cfg *config.Config, company, corpusPath string) (string, error) {
	if corpusPath != "" {
		return corpusPath, nil
	}
	cat, err := catalog.Open(cfg.Storage.CatalogPath, cfg.Storage.Debug)
	if err != nil {
		return "", err
	}
	defer cat.Close()
	run, err := cat.Latest(ctx, company)
	if err != nil {
		return "", err
	}
	return run.CorpusPath, nil
}

func askCmd() *cobra.Command {
	var company, question string
	var k int
	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Answer a question about a company from its built index",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if k == 0 {
				k = cfg.RAG.TopK
			}

			embedder, err := embedding.New(&cfg.EmbedLLM)
			if err != nil {
				return err
			}
			completer, err := llm.NewClient(&cfg.ChatLLM)
			if err != nil {
				return err
			}
			answerer := rag.NewAnswerer(index.NewStore(cfg.Storage.IndexDir), embedder, completer)

			answer, err := answerer.Answer(cmd.Context(), company, question, k)
			if err != nil {
				return err
			}
			fmt.Println(answer)
			return nil
		},
	}
	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().StringVar(&question, "question", "", "question to answer")
	cmd.Flags().IntVarP(&k, "top-k", "k", 0, "chunks to retrieve (default from config)")
	cmd.MarkFlagRequired("company")
	cmd.MarkFlagRequired("question")
	return cmd
}

func reportCmd() *cobra.Command {
	var company, corpusPath, outPath, htmlPath string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Synthesize a Markdown report from the raw corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			ctx := cmd.Context()

			path, err := resolveCorpus(ctx, cfg, company, corpusPath)
			if err != nil {
				return err
			}

			completer, err := llm.NewClient(&cfg.ChatLLM)
			if err != nil {
				return err
			}
			synth := report.NewSynthesizer(corpus.NewStore(cfg.Storage.CorpusDir), completer)
			md, err := synth.Synthesize(ctx, path)
			if err != nil {
				return err
			}

			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
					return err
				}
				log.Info().Str("path", outPath).Msg("report written")
			} else {
				fmt.Println(md)
			}
			if htmlPath != "" {
				html, err := report.RenderHTML(md)
				if err != nil {
					return err
				}
				if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
					return err
				}
				log.Info().Str("path", htmlPath).Msg("report html written")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().StringVar(&corpusPath, "corpus", "", "corpus file (default: latest run from catalog)")
	cmd.Flags().StringVar(&outPath, "out", "", "write the Markdown report to this file")
	cmd.Flags().StringVar(&htmlPath, "html", "", "also render the report to this HTML file")
	cmd.MarkFlagRequired("company")
	return cmd
}

func runsCmd() *cobra.Command {
	var company string
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded bulk-search runs for a company",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			cat, err := catalog.Open(cfg.Storage.CatalogPath, cfg.Storage.Debug)
			if err != nil {
				return err
			}
			defer cat.Close()

			runs, err := cat.List(cmd.Context(), company)
			if err != nil {
				return err
			}
			for _, r := range runs {
				fmt.Printf("%s  %s  questions=%d  %s\n", r.CreatedAt.Format(time.RFC3339), r.ID, r.Questions, r.CorpusPath)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.MarkFlagRequired("company")
	return cmd
}
