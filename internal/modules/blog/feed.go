package blog

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/modelmart/core/internal/models"
	"github.com/modelmart/core/internal/pkg/apperr"
	"github.com/modelmart/core/internal/pkg/markdown"
)

const feedItemLimit = 20

// SiteMeta carries the channel-level fields of the syndication feeds.
type SiteMeta struct {
	Title       string
	Description string
	URL         string
}

type feedItem struct {
	Title   string
	Link    string
	GUID    string
	PubDate time.Time
	Content string
}

// RegisterFeedRoutes mounts the RSS and Atom feeds over published articles.
func (h *Handler) RegisterFeedRoutes(rg *gin.RouterGroup, meta SiteMeta) {
	rg.GET("/feed", func(c *gin.Context) {
		h.renderFeed(c, meta, c.DefaultQuery("type", "rss"))
	})
	rg.GET("/feed.xml", func(c *gin.Context) {
		h.renderFeed(c, meta, "rss")
	})
	rg.GET("/atom.xml", func(c *gin.Context) {
		h.renderFeed(c, meta, "atom")
	})
}

func (h *Handler) renderFeed(c *gin.Context, meta SiteMeta, feedType string) {
	articles, err := h.svc.ListPublished(feedItemLimit)
	if err != nil {
		c.String(http.StatusInternalServerError, "feed unavailable")
		return
	}

	items := make([]feedItem, len(articles))
	for i, a := range articles {
		html, err := markdown.RenderHTML(a.Content)
		if err != nil {
			html = a.Summary
		}
		pub := a.CreatedAt
		if a.PublishedAt != nil {
			pub = *a.PublishedAt
		}
		items[i] = feedItem{
			Title:   a.Title,
			Link:    fmt.Sprintf("%s/blog/%s", meta.URL, a.Slug),
			GUID:    a.ID,
			PubDate: pub,
			Content: html,
		}
	}

	switch feedType {
	case "atom":
		c.Header("Content-Type", "application/atom+xml; charset=utf-8")
		c.String(http.StatusOK, buildAtom(meta, items))
	default:
		c.Header("Content-Type", "application/rss+xml; charset=utf-8")
		c.String(http.StatusOK, buildRSS(meta, items))
	}
}

func buildRSS(meta SiteMeta, items []feedItem) string {
	out := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>%s</title>
    <link>%s</link>
    <description>%s</description>
    <lastBuildDate>%s</lastBuildDate>
`, escapeXML(meta.Title), escapeXML(meta.URL), escapeXML(meta.Description),
		time.Now().Format(time.RFC1123Z))

	for _, item := range items {
		out += fmt.Sprintf(`    <item>
      <title>%s</title>
      <link>%s</link>
      <guid>%s</guid>
      <pubDate>%s</pubDate>
      <description><![CDATA[%s]]></description>
    </item>
`, escapeXML(item.Title), escapeXML(item.Link), item.GUID,
			item.PubDate.Format(time.RFC1123Z), item.Content)
	}

	out += `  </channel>
</rss>`
	return out
}

func buildAtom(meta SiteMeta, items []feedItem) string {
	out := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>%s</title>
  <subtitle>%s</subtitle>
  <link href="%s"/>
  <updated>%s</updated>
  <id>%s</id>
`, escapeXML(meta.Title), escapeXML(meta.Description), escapeXML(meta.URL),
		time.Now().Format(time.RFC3339), escapeXML(meta.URL))

	for _, item := range items {
		out += fmt.Sprintf(`  <entry>
    <title>%s</title>
    <link href="%s"/>
    <id>%s</id>
    <updated>%s</updated>
    <content type="html"><![CDATA[%s]]></content>
  </entry>
`, escapeXML(item.Title), escapeXML(item.Link), item.GUID,
			item.PubDate.Format(time.RFC3339), item.Content)
	}

	out += `</feed>`
	return out
}

func escapeXML(s string) string {
	result := ""
	for _, r := range s {
		switch r {
		case '&':
			result += "&amp;"
		case '<':
			result += "&lt;"
		case '>':
			result += "&gt;"
		case '"':
			result += "&quot;"
		default:
			result += string(r)
		}
	}
	return result
}

// ListPublished returns the newest published articles for syndication.
func (s *Service) ListPublished(limit int) ([]models.BlogPostModel, error) {
	var articles []models.BlogPostModel
	err := s.db.Where("status = ?", models.BlogPublished).
		Order("published_at DESC").
		Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, apperr.Transient(err, "list published")
	}
	return articles, nil
}
