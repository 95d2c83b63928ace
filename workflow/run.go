// Package workflow chains a single automation run: segment the transcript,
// pull out the delimited sections, build the post text, render the chart,
// and publish. Every stage logs through an injected handle and failures of
// optional stages degrade the post instead of aborting the run.
package workflow

import (
	"context"
	"fmt"

	"auto_analysis_tweet_publisher/composer"
	"auto_analysis_tweet_publisher/extractor"
	"auto_analysis_tweet_publisher/publisher"
)

// Logger is the injected logging handle; *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...interface{})
}

// Renderer rasterizes chart markup to a PNG on disk.
type Renderer interface {
	Render(ctx context.Context, markup string, width, height int) (string, error)
}

// Poster submits posts; *publisher.Publisher satisfies it.
type Poster interface {
	Publish(ctx context.Context, text string, imagePath string) publisher.PublishResult
	PublishReply(ctx context.Context, parentID, text string) publisher.PublishResult
}

// Summarizer is the optional LLM fallback for transcripts that carry no
// social summary and yield no heuristic insights.
type Summarizer interface {
	Summarize(ctx context.Context, answerBody string, maxLength int) (string, error)
}

// Options tune one run.
type Options struct {
	AnalysisType composer.AnalysisType
	ChatURL      string
	MaxLength    int // 0 means composer.DefaultMaxLength
	ChartWidth   int
	ChartHeight  int
	SkipImage    bool // compose and publish text only
	SkipPublish  bool // dry run: stop before the Poster
}

// Deps are the collaborators injected into a run. Renderer, Poster, and
// Summarizer may be nil; the corresponding step is skipped.
type Deps struct {
	Renderer   Renderer
	Poster     Poster
	Summarizer Summarizer
	Logger     Logger
}

// Result reports what a run produced.
type Result struct {
	AnswerBody   string
	Tweet        string
	ChartMarkup  string
	ImagePath    string
	UsedSummary  bool // content came from the transcript's own summary section
	UsedFallback bool // content came from the LLM fallback
	Post         publisher.PublishResult
	Reply        *publisher.PublishResult
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

// Run executes the pipeline over one transcript. Total segmentation failure
// aborts; everything else degrades: a missing summary section falls back to
// heuristic composition, a render failure publishes text-only.
func Run(ctx context.Context, transcript string, opts Options, deps Deps) (Result, error) {
	logger := deps.Logger
	if logger == nil {
		logger = nopLogger{}
	}
	maxLength := opts.MaxLength
	if maxLength == 0 {
		maxLength = composer.DefaultMaxLength
	}

	body, err := extractor.Segment(transcript)
	if err != nil {
		return Result{}, fmt.Errorf("segment transcript: %w", err)
	}
	logger.Printf("answer body extracted: %d characters", len(body))
	result := Result{AnswerBody: body}

	result.Tweet = buildContent(ctx, body, maxLength, opts, deps, &result, logger)

	if opts.ChatURL != "" {
		result.Tweet = composer.AppendLinkLine(result.Tweet, maxLength)
	}

	if markup, ok := extractor.ChartMarkup(body); ok {
		result.ChartMarkup = markup
		if !opts.SkipImage && deps.Renderer != nil {
			imagePath, err := deps.Renderer.Render(ctx, markup, opts.ChartWidth, opts.ChartHeight)
			if err != nil {
				logger.Printf("chart render failed, continuing text-only: %v", err)
			} else {
				result.ImagePath = imagePath
			}
		}
	} else {
		logger.Printf("no chart markup in answer body")
	}

	if opts.SkipPublish || deps.Poster == nil {
		return result, nil
	}

	result.Post = deps.Poster.Publish(ctx, result.Tweet, result.ImagePath)
	if result.Post.Err != nil {
		return result, fmt.Errorf("publish: %w", result.Post.Err)
	}
	logger.Printf("tweet posted id=%s", result.Post.TweetID)

	if opts.ChatURL != "" {
		reply := deps.Poster.PublishReply(ctx, result.Post.TweetID, composer.SharedChatURL(opts.ChatURL))
		result.Reply = &reply
		if reply.Err != nil {
			// The main post is out; a lost link reply is only worth a log line.
			logger.Printf("link reply failed: %v", reply.Err)
		}
	}
	return result, nil
}

// buildContent picks the best available source for the post text: the
// transcript's own summary section, then heuristic composition, then the LLM
// fallback when heuristics found nothing at all.
func buildContent(ctx context.Context, body string, maxLength int, opts Options, deps Deps, result *Result, logger Logger) string {
	if summary, ok := extractor.SocialSummary(body); ok {
		logger.Printf("using transcript social summary: %d characters", len(summary))
		result.UsedSummary = true
		return clampContent(summary, maxLength)
	}

	insights := extractor.ExtractInsights(body)
	if insights.Empty() && deps.Summarizer != nil {
		summary, err := deps.Summarizer.Summarize(ctx, body, maxLength)
		if err != nil {
			logger.Printf("llm summary fallback failed: %v", err)
		} else {
			result.UsedFallback = true
			return summary
		}
	}

	logger.Printf("composing tweet from insights: %d metrics, %d findings, %d trends",
		len(insights.Metrics), len(insights.KeyFindings), len(insights.Trends))
	return composer.Compose(insights, opts.AnalysisType, maxLength)
}

func clampContent(content string, maxLength int) string {
	runes := []rune(content)
	if len(runes) <= maxLength {
		return content
	}
	return string(runes[:maxLength-3]) + "..."
}
