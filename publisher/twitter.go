package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/dghubble/oauth1"
)

const (
	mediaUploadURL = "https://upload.twitter.com/1.1/media/upload.json"
	createTweetURL = "https://api.twitter.com/2/tweets"
)

// PublishResult reports the outcome of one submission attempt. Failure modes
// (auth, rate limit, network) all land in Err; the publisher never retries.
type PublishResult struct {
	Success bool
	TweetID string
	Err     error
}

type mediaUploadResp struct {
	MediaIDString string `json:"media_id_string"`
}

type createTweetReq struct {
	Text  string `json:"text"`
	Media *struct {
		MediaIDs []string `json:"media_ids"`
	} `json:"media,omitempty"`
	Reply *struct {
		InReplyToTweetID string `json:"in_reply_to_tweet_id"`
	} `json:"reply,omitempty"`
}

type createTweetResp struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Publisher submits posts to the Twitter API: v1.1 multipart media upload
// followed by a v2 tweet creation, both signed with OAuth1 user context.
type Publisher struct {
	cfg     Config
	client  *http.Client
	verbose bool
	logger  *log.Logger
}

// New creates a Publisher. A nil client gets an OAuth1-signing client built
// from the configured credential set.
func New(cfg Config, client *http.Client, verbose bool, logger *log.Logger) (*Publisher, error) {
	if cfg.APIKey == "" || cfg.APISecret == "" || cfg.AccessToken == "" || cfg.AccessTokenSecret == "" {
		return nil, errors.New("config must include the four-part twitter credential set")
	}
	if client == nil {
		oauthCfg := oauth1.NewConfig(cfg.APIKey, cfg.APISecret)
		token := oauth1.NewToken(cfg.AccessToken, cfg.AccessTokenSecret)
		client = oauthCfg.Client(oauth1.NoContext, token)
		client.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Publisher{cfg: cfg, client: client, verbose: verbose, logger: logger}, nil
}

func (p *Publisher) infof(format string, args ...interface{}) {
	if !p.verbose {
		return
	}
	p.logger.Printf("[INFO] "+format, args...)
}

// Publish posts text with an optional image. An image that fails to upload
// degrades to a text-only post rather than failing the submission.
func (p *Publisher) Publish(ctx context.Context, text string, imagePath string) PublishResult {
	var mediaIDs []string
	if imagePath != "" {
		mediaID, err := p.uploadMedia(ctx, imagePath)
		if err != nil {
			p.logger.Printf("[WARN] image upload failed, posting text only: %v", err)
		} else {
			p.infof("image uploaded %s -> media_id=%s", imagePath, mediaID)
			mediaIDs = append(mediaIDs, mediaID)
		}
	}

	result := p.createTweet(ctx, text, mediaIDs, "")
	p.logPost(result, text, imagePath)
	return result
}

// PublishReply posts text as a reply to an existing tweet. Used for the
// chat-link follow-up so the link card doesn't consume the main post budget.
func (p *Publisher) PublishReply(ctx context.Context, parentID, text string) PublishResult {
	if parentID == "" {
		return PublishResult{Err: errors.New("parent tweet id is required")}
	}
	result := p.createTweet(ctx, text, nil, parentID)
	p.logPost(result, text, "")
	return result
}

func (p *Publisher) createTweet(ctx context.Context, text string, mediaIDs []string, replyTo string) PublishResult {
	payload := createTweetReq{Text: text}
	if len(mediaIDs) > 0 {
		payload.Media = &struct {
			MediaIDs []string `json:"media_ids"`
		}{MediaIDs: mediaIDs}
	}
	if replyTo != "" {
		payload.Reply = &struct {
			InReplyToTweetID string `json:"in_reply_to_tweet_id"`
		}{InReplyToTweetID: replyTo}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return PublishResult{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", createTweetURL, bytes.NewReader(body))
	if err != nil {
		return PublishResult{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return PublishResult{Err: err}
	}
	defer resp.Body.Close()

	var data createTweetResp
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return PublishResult{Err: err}
	}
	if data.Data.ID == "" {
		return PublishResult{Err: fmt.Errorf("failed to create tweet: %d %s %s", resp.StatusCode, data.Title, data.Detail)}
	}

	p.infof("tweet posted id=%s", data.Data.ID)
	return PublishResult{Success: true, TweetID: data.Data.ID}
}

func (p *Publisher) uploadMedia(ctx context.Context, imagePath string) (string, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("media", filepath.Base(imagePath))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", mediaUploadURL, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var data mediaUploadResp
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", err
	}
	if data.MediaIDString == "" {
		return "", fmt.Errorf("failed to upload media: status %d", resp.StatusCode)
	}
	return data.MediaIDString, nil
}

type postLogRecord struct {
	Timestamp string `json:"timestamp"`
	TweetID   string `json:"tweet_id,omitempty"`
	Content   string `json:"tweet_content"`
	ImagePath string `json:"image_path,omitempty"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

// logPost appends one JSONL record per submission attempt to a daily file.
// Logging failures are reported but never affect the publish result.
func (p *Publisher) logPost(result PublishResult, text, imagePath string) {
	record := postLogRecord{
		Timestamp: time.Now().Format(time.RFC3339),
		TweetID:   result.TweetID,
		Content:   text,
		ImagePath: imagePath,
		Success:   result.Success,
	}
	if result.Err != nil {
		record.Error = result.Err.Error()
	}

	dir := p.cfg.LogDir
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		p.logger.Printf("[WARN] failed to create log dir: %v", err)
		return
	}
	path := filepath.Join(dir, "twitter_posts_"+time.Now().Format("20060102")+".jsonl")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		p.logger.Printf("[WARN] failed to open post log: %v", err)
		return
	}
	defer f.Close()

	line, err := json.Marshal(record)
	if err != nil {
		p.logger.Printf("[WARN] failed to marshal post log record: %v", err)
		return
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		p.logger.Printf("[WARN] failed to write post log: %v", err)
	}
}
