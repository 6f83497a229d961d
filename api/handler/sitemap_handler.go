package handler

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"jobhunt/internal/service"

	"github.com/labstack/echo/v4"
)

type SitemapHandler struct {
	Jobs    *service.JobService
	SiteURL string
}

func NewSitemapHandler(jobs *service.JobService, siteURL string) *SitemapHandler {
	return &SitemapHandler{Jobs: jobs, SiteURL: siteURL}
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

func (h *SitemapHandler) Sitemap(c echo.Context) error {
	jobs, err := h.Jobs.ListAll(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	urls := []sitemapURL{
		{Loc: h.SiteURL + "/", ChangeFreq: "daily", Priority: "1.0"},
		{Loc: h.SiteURL + "/about", ChangeFreq: "monthly", Priority: "0.5"},
	}
	for i := range jobs {
		urls = append(urls, sitemapURL{
			Loc:        fmt.Sprintf("%s/job/%s", h.SiteURL, jobs[i].ID),
			LastMod:    jobs[i].CreatedAt.Format(time.RFC3339),
			ChangeFreq: "daily",
			Priority:   "0.8",
		})
	}

	body, err := xml.MarshalIndent(sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}, "", "  ")
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Blob(http.StatusOK, "application/xml", append([]byte(xml.Header), body...))
}

func (h *SitemapHandler) Robots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nSitemap: %s/sitemap.xml\n", h.SiteURL)
	return c.String(http.StatusOK, body)
}
