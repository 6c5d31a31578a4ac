package rss

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/feeds"
	log "github.com/sirupsen/logrus"

	"github.com/sp0x/dmhyfeed/indexer/search"
)

// Source is what the server needs from the feed adapter.
type Source interface {
	Latest() []search.TorrentRecord
	Search(query string) []search.TorrentRecord
}

type Server struct {
	source   Source
	hostname string
}

func NewServer(source Source, hostname string) *Server {
	if hostname == "" {
		hostname = "localhost"
	}
	return &Server{source: source, hostname: hostname}
}

// Listen runs the HTTP server, re-exporting the adapter as RSS and JSON.
func (s *Server) Listen(port int) error {
	r := gin.Default()
	r.GET("/healthz", s.serveHealth)
	r.GET("/latest", s.serveLatest)
	r.GET("/search", s.serveSearch)
	r.GET("/api/latest", s.serveLatestJSON)
	r.GET("/api/search", s.serveSearchJSON)
	return r.Run(fmt.Sprintf(":%d", port))
}

func (s *Server) serveHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) serveLatest(c *gin.Context) {
	s.sendFeed("latest", s.source.Latest(), c)
}

func (s *Server) serveSearch(c *gin.Context) {
	query := c.Query("q")
	s.sendFeed(query, s.source.Search(query), c)
}

func (s *Server) serveLatestJSON(c *gin.Context) {
	c.JSON(http.StatusOK, s.source.Latest())
}

func (s *Server) serveSearchJSON(c *gin.Context) {
	c.JSON(http.StatusOK, s.source.Search(c.Query("q")))
}

func (s *Server) sendFeed(name string, records []search.TorrentRecord, c *gin.Context) {
	out := &feeds.Feed{
		Title:       fmt.Sprintf("dmhyfeed: %s", name),
		Link:        &feeds.Link{Href: fmt.Sprintf("http://%s", s.hostname)},
		Description: "Torrents gathered from the tracker feed",
		Created:     time.Now(),
	}
	for _, record := range records {
		item := &feeds.Item{
			Title:       record.Name,
			Link:        &feeds.Link{Href: record.PageLink},
			Id:          record.InfoHash,
			Description: record.MagnetLink,
			Created:     record.PublishedAt,
		}
		out.Items = append(out.Items, item)
	}
	result, err := out.ToRss()
	if err != nil {
		log.WithError(err).Error("Could not render feed")
		c.String(http.StatusInternalServerError, "feed rendering failed")
		return
	}
	c.Data(http.StatusOK, "application/rss+xml", []byte(result))
}
