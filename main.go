package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"auto_analysis_tweet_publisher/composer"
	"auto_analysis_tweet_publisher/generator"
	"auto_analysis_tweet_publisher/preview"
	"auto_analysis_tweet_publisher/prompts"
	"auto_analysis_tweet_publisher/publisher"
	"auto_analysis_tweet_publisher/renderer"
	"auto_analysis_tweet_publisher/server"
	"auto_analysis_tweet_publisher/workflow"
)

var verbose bool

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.json", "path to config.json")
	transcriptPath := flag.String("transcript", "", "path to transcript text dump ('-' for stdin)")
	analysisType := flag.String("type", "unknown", "analysis type: market_analysis, volume_analysis, user_analysis, defi_analysis, unknown")
	chatURL := flag.String("chat-url", "", "chat URL to attach as a link reply")
	maxLength := flag.Int("max-length", composer.DefaultMaxLength, "tweet character ceiling")
	skipImage := flag.Bool("skip-image", false, "do not render or attach the chart")
	dryRun := flag.Bool("dry-run", false, "compose and preview without posting")
	pickPrompt := flag.Bool("pick-prompt", false, "print an unused analysis prompt and exit")
	category := flag.String("category", "", "prompt category filter for --pick-prompt")
	promptsFile := flag.String("prompts", "", "path to prompts JSON (default: built-in pool)")
	usageFile := flag.String("usage", "prompts/prompt_usage.json", "path to prompt usage tracking file")
	serve := flag.Bool("serve", false, "start web server")
	addr := flag.String("addr", "", "http listen address when --serve (overrides config.server_addr)")
	flag.BoolVar(&verbose, "v", false, "enable info logs")
	flag.Parse()

	// Prompt selection mode needs no credentials.
	if *pickPrompt {
		if err := runPickPrompt(*promptsFile, *usageFile, *category); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	cfg, err := publisher.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Web server mode
	if *serve {
		srv := server.New(cfg.PreviewDir, *maxLength, log.Default())
		listen := cfg.ServerAddr
		if *addr != "" {
			listen = *addr
		}
		if listen == "" {
			listen = ":8080"
		}
		log.Printf("Starting web server on %s", listen)
		if err := http.ListenAndServe(listen, srv.Routes()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if *transcriptPath == "" {
		fmt.Fprintln(os.Stderr, "--transcript is required")
		os.Exit(1)
	}
	transcript, err := readTranscript(*transcriptPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	deps := workflow.Deps{
		Renderer: renderer.New(cfg.ChartDir, log.Default()),
		Logger:   log.Default(),
	}
	if agent := buildSummarizer(cfg); agent != nil {
		deps.Summarizer = agent
	}
	if !*dryRun {
		p, err := publisher.New(cfg, nil, verbose, log.Default())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		deps.Poster = p
	}

	ctx := context.Background()
	result, err := workflow.Run(ctx, transcript, workflow.Options{
		AnalysisType: composer.AnalysisType(*analysisType),
		ChatURL:      *chatURL,
		MaxLength:    *maxLength,
		ChartWidth:   cfg.ChartWidth,
		ChartHeight:  cfg.ChartHeight,
		SkipImage:    *skipImage,
		SkipPublish:  *dryRun,
	}, deps)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *dryRun {
		if err := writePreview(cfg.PreviewDir, result, *chatURL, *analysisType); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(result.Tweet)
		return
	}

	log.Printf("[cli] publish done tweet_id=%s image=%q", result.Post.TweetID, result.ImagePath)
	fmt.Println(result.Post.TweetID)
}

func buildSummarizer(cfg publisher.Config) *generator.Agent {
	if cfg.LLM == nil || cfg.LLM.Provider == "" {
		return nil
	}
	llm, err := buildLLM(cfg)
	if err != nil {
		log.Printf("[cli] llm fallback disabled: %v", err)
		return nil
	}
	agent, err := generator.NewAgent(llm)
	if err != nil {
		return nil
	}
	return agent
}

func buildLLM(cfg publisher.Config) (generator.LLMClient, error) {
	switch cfg.LLM.Provider {
	case "openai":
		return generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
			Provider: cfg.LLM.Provider,
			Model:    cfg.LLM.Model,
			APIKey:   cfg.LLM.APIKey,
			BaseURL:  cfg.LLM.BaseURL,
		})
	case "deepseek":
		// DeepSeek exposes an OpenAI-compatible interface but requires base_url.
		if cfg.LLM.BaseURL == "" {
			return nil, fmt.Errorf("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
		return generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
			Provider: cfg.LLM.Provider,
			Model:    cfg.LLM.Model,
			APIKey:   cfg.LLM.APIKey,
			BaseURL:  cfg.LLM.BaseURL,
		})
	case "mock":
		return generator.MockLLM{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.LLM.Provider)
	}
}

func runPickPrompt(promptsFile, usageFile, category string) error {
	pool := prompts.DefaultPrompts()
	if promptsFile != "" {
		loaded, err := prompts.LoadPool(promptsFile)
		if err != nil {
			return err
		}
		pool = loaded
	}
	selector, err := prompts.NewSelector(pool, usageFile)
	if err != nil {
		return err
	}
	picked, err := selector.Pick(category)
	if err != nil {
		return err
	}
	log.Printf("[cli] picked prompt id=%s category=%s remaining=%d", picked.ID, picked.Category, selector.Remaining(category))
	fmt.Println(picked.Text)
	return nil
}

func readTranscript(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func writePreview(dir string, result workflow.Result, chatURL, analysisType string) error {
	mdPath, htmlPath, err := preview.Write(dir, preview.Preview{
		Content:      result.Tweet,
		ImagePath:    result.ImagePath,
		ChatURL:      composer.SharedChatURL(chatURL),
		AnalysisType: analysisType,
	})
	if err != nil {
		return err
	}
	log.Printf("[cli] preview written md=%s html=%s", mdPath, htmlPath)
	return nil
}
