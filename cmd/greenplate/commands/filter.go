package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/greenplate/greenplate/internal/classifier"
	"github.com/greenplate/greenplate/internal/llm"
	"github.com/greenplate/greenplate/internal/logger"
	"github.com/greenplate/greenplate/internal/pipeline"
	"github.com/greenplate/greenplate/internal/scraper"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Classify menu items by dietary category",
	Long: `Filter a restaurant menu for a dietary category.

Input is either a menu page URL, pasted text via --text, or menu text
on stdin. Output is the list of matching items, each with the reason it
matched and whether the language-model or keyword path produced it.

Examples:
  greenplate filter --url "https://example.com/menu" --category vegan
  greenplate filter --text "Vegan burger $5.99" --category all
  cat menu.txt | greenplate filter --category vegetarian --format json`,
	RunE: runFilter,
}

func init() {
	rootCmd.AddCommand(filterCmd)

	flags := filterCmd.Flags()

	// Input
	flags.StringP("url", "u", "", "menu page URL to fetch")
	flags.StringP("text", "t", "", "menu text (reads stdin if neither --url nor --text given)")
	flags.StringP("category", "c", "all", "dietary category: vegan, vegetarian, nonvegetarian, all")

	// LLM settings
	flags.StringP("provider", "p", "", "LLM provider: openai, anthropic, openrouter, ollama (auto-detects from env vars)")
	flags.StringP("model", "m", "", "model name (provider-specific)")
	flags.StringP("api-key", "k", "", "API key (or use env var)")
	flags.String("base-url", "", "custom API base URL")
	flags.Float64("temperature", 0.1, "sampling temperature")
	flags.Int("max-tokens", 1000, "max response tokens")
	flags.Bool("no-llm", false, "force the deterministic keyword path")

	// Fetch settings
	flags.String("fetch-mode", "static", "fetch mode: static, dynamic, auto")
	flags.Duration("timeout", 15*time.Second, "page fetch timeout")

	// Classifier settings
	flags.String("lexicon", "", "YAML file with extra keyword terms")

	// Output
	flags.String("format", "text", "output format: text, json")

	_ = viper.BindPFlag("llm.provider", flags.Lookup("provider"))
	_ = viper.BindPFlag("llm.model", flags.Lookup("model"))
	_ = viper.BindPFlag("llm.base_url", flags.Lookup("base-url"))
	_ = viper.BindPFlag("llm.temperature", flags.Lookup("temperature"))
}

func runFilter(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if lexicon, _ := cmd.Flags().GetString("lexicon"); lexicon != "" {
		if err := classifier.LoadLexicon(lexicon); err != nil {
			logError("%v", err)
			return err
		}
	}

	category := classifier.ParseCategory(mustString(cmd, "category"))

	engine, err := buildEngine(cmd)
	if err != nil {
		logError("%v", err)
		return err
	}

	fetcher, err := buildFetcher(cmd)
	if err != nil {
		logError("%v", err)
		return err
	}
	defer fetcher.Close()

	svc := pipeline.New(engine, fetcher)

	var items []classifier.Item
	switch {
	case mustString(cmd, "url") != "":
		items, err = svc.FilterURL(ctx, mustString(cmd, "url"), category)
	case mustString(cmd, "text") != "":
		items, err = svc.FilterText(ctx, mustString(cmd, "text"), category)
	default:
		var text []byte
		text, err = io.ReadAll(os.Stdin)
		if err != nil {
			logError("failed to read stdin: %v", err)
			return err
		}
		items, err = svc.FilterText(ctx, string(text), category)
	}
	if err != nil {
		logError("%v", err)
		return err
	}

	return writeItems(os.Stdout, items, category, mustString(cmd, "format"))
}

// buildEngine assembles the classification engine from flags, config
// file and environment. A provider that cannot be constructed (no key,
// unknown name) is logged and left nil; the engine degrades to the
// keyword path rather than failing the command.
func buildEngine(cmd *cobra.Command) (*classifier.Engine, error) {
	noLLM, _ := cmd.Flags().GetBool("no-llm")
	maxTokens, _ := cmd.Flags().GetInt("max-tokens")

	cfg := classifier.DefaultConfig()
	cfg.Enabled = viper.GetBool("llm.enabled") && !noLLM
	cfg.Temperature = viper.GetFloat64("llm.temperature")
	cfg.MaxTokens = maxTokens

	var provider llm.Provider
	if cfg.Enabled {
		name := viper.GetString("llm.provider")
		var apiKey string
		if name == "" {
			name, apiKey = llm.DetectProvider()
			logger.Debug("auto-detected provider", "provider", name)
		} else {
			// Explicit provider: an explicit key wins, otherwise read
			// that provider's own env var. The detection fallback order
			// must not hand one provider another provider's key.
			apiKey, _ = cmd.Flags().GetString("api-key")
			if apiKey == "" {
				apiKey = llm.KeyFromEnv(name)
			}
		}

		model := viper.GetString("llm.model")
		if model == "" {
			model = llm.GetDefaultModel(name)
		}
		cfg.Model = model

		p, err := llm.NewProvider(name, llm.ProviderConfig{
			APIKey:  apiKey,
			BaseURL: viper.GetString("llm.base_url"),
			Model:   model,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			logger.Warn("language-model provider unavailable, keyword path will be used",
				"provider", name,
				"error", err)
		} else {
			provider = p
			logger.Debug("provider ready", "provider", name, "model", model)
		}
	}

	return classifier.NewEngine(cfg, provider)
}

// buildFetcher assembles the page fetcher from flags.
func buildFetcher(cmd *cobra.Command) (scraper.Fetcher, error) {
	mode, _ := cmd.Flags().GetString("fetch-mode")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	cfg := scraper.DefaultFetcherConfig()
	if timeout > 0 {
		cfg.Timeout = timeout
	}

	return scraper.NewFetcher(scraper.FetchMode(mode), cfg)
}

// writeItems renders the outcome in the requested format.
func writeItems(w io.Writer, items []classifier.Item, category classifier.Category, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	case "text":
		if len(items) == 0 {
			fmt.Fprintf(w, "No %s items found\n", category)
			return nil
		}
		for _, item := range items {
			fmt.Fprintf(w, "%s\n    %s\n", item.Description, item.Reason)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// mustString reads a string flag that is known to exist.
func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}
