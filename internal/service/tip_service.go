package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/dto"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/model"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/repository"
	"github.com/thomasnguyen/corgi-quest-sub001/pkg/apperror"
)

const (
	tipFreshFor = time.Hour
	tipStaleFor = 24 * time.Hour
)

type TipService interface {
	// GetTip serves the cached summary for a topic when it is under an hour
	// old; otherwise it re-fetches. A fetch failure falls back to a cached
	// copy up to 24 hours old before surfacing an upstream error.
	GetTip(ctx context.Context, topic string) (*dto.Tip, error)
	// RefreshTopic force-fetches one topic into the cache (used by the cron agent).
	RefreshTopic(ctx context.Context, topic string) error
}

type tipService struct {
	repo      repository.RecommendationRepository
	feedURL   string
	sanitizer *bluemonday.Policy
}

func NewTipService(repo repository.RecommendationRepository, feedURL string) TipService {
	return &tipService{
		repo:      repo,
		feedURL:   feedURL,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *tipService) GetTip(ctx context.Context, topic string) (*dto.Tip, error) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		return nil, apperror.New(400, "topic query parameter is required", apperror.ErrInvalidInput)
	}

	cached, err := s.repo.FindTip(ctx, topic)
	if err == nil && time.Since(cached.FetchedAt) < tipFreshFor {
		return tipFromCache(cached), nil
	}
	if err != nil && !repository.IsNotFound(err) {
		return nil, err
	}

	if refreshErr := s.RefreshTopic(ctx, topic); refreshErr != nil {
		// Serve stale within the 24h window rather than failing outright.
		if cached != nil && time.Since(cached.FetchedAt) < tipStaleFor {
			log.Printf("⚠️ tip fetch for %q failed, serving stale copy: %v", topic, refreshErr)
			return tipFromCache(cached), nil
		}
		return nil, refreshErr
	}

	fresh, err := s.repo.FindTip(ctx, topic)
	if err != nil {
		return nil, err
	}
	return tipFromCache(fresh), nil
}

func (s *tipService) RefreshTopic(ctx context.Context, topic string) error {
	article, err := s.findArticle(topic)
	if err != nil {
		return apperror.Upstream("tip-feed", err)
	}

	body, err := s.scrape(article.Link)
	if err != nil {
		return apperror.Upstream("tip-scraper", err)
	}

	description, keyPoints := summarize(body)
	if description == "" {
		description = s.sanitizer.Sanitize(article.Description)
	}

	points, err := json.Marshal(keyPoints)
	if err != nil {
		return err
	}

	return s.repo.UpsertTip(ctx, &model.TipCache{
		Topic:       topic,
		Title:       article.Title,
		Description: description,
		KeyPoints:   string(points),
		SourceURL:   article.Link,
		FetchedAt:   time.Now(),
	})
}

// findArticle picks the first feed item whose title or description mentions
// the topic, falling back to the newest item.
func (s *tipService) findArticle(topic string) (*gofeed.Item, error) {
	feed, err := gofeed.NewParser().ParseURL(s.feedURL)
	if err != nil {
		return nil, err
	}
	if len(feed.Items) == 0 {
		return nil, fmt.Errorf("feed %s has no items", s.feedURL)
	}

	for _, item := range feed.Items {
		haystack := strings.ToLower(item.Title + " " + item.Description)
		if strings.Contains(haystack, topic) {
			return item, nil
		}
	}
	return feed.Items[0], nil
}

func (s *tipService) scrape(url string) (string, error) {
	c := colly.NewCollector(
		colly.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)

	var contentBuilder strings.Builder

	// Grab every reasonably long paragraph inside the article body.
	c.OnHTML("article, .entry-content, #main-content, main", func(e *colly.HTMLElement) {
		e.ForEach("p", func(_ int, el *colly.HTMLElement) {
			text := strings.TrimSpace(s.sanitizer.Sanitize(el.Text))
			if len(text) > 50 {
				contentBuilder.WriteString(text)
				contentBuilder.WriteString("\n\n")
			}
		})
	})

	if err := c.Visit(url); err != nil {
		return "", err
	}

	body := contentBuilder.String()
	if len(body) < 100 {
		return "", fmt.Errorf("article at %s had no usable content", url)
	}
	return body, nil
}

// summarize takes the first paragraph as the description and the next three
// as key points.
func summarize(body string) (string, []string) {
	paragraphs := strings.Split(body, "\n\n")

	var description string
	keyPoints := make([]string, 0, 3)
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if description == "" {
			description = p
			continue
		}
		if len(keyPoints) < 3 {
			keyPoints = append(keyPoints, firstSentence(p))
		}
	}
	return description, keyPoints
}

func firstSentence(p string) string {
	if idx := strings.Index(p, ". "); idx > 0 {
		return p[:idx+1]
	}
	return p
}

func tipFromCache(t *model.TipCache) *dto.Tip {
	var keyPoints []string
	_ = json.Unmarshal([]byte(t.KeyPoints), &keyPoints)

	return &dto.Tip{
		Title:       t.Title,
		Description: t.Description,
		KeyPoints:   keyPoints,
		Source:      t.SourceURL,
		Topic:       t.Topic,
		FetchedAt:   t.FetchedAt.Format(time.RFC3339),
	}
}
