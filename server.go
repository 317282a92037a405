package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/fernandozarate/portfolio/internal/carousel"
	"github.com/fernandozarate/portfolio/internal/config"
	"github.com/fernandozarate/portfolio/internal/cv"
	"github.com/fernandozarate/portfolio/internal/disclosure"
	"github.com/fernandozarate/portfolio/internal/logging"
	"github.com/fernandozarate/portfolio/internal/metrics"
	"github.com/fernandozarate/portfolio/internal/portfolio"
	"github.com/fernandozarate/portfolio/internal/store"
	"github.com/fernandozarate/portfolio/internal/theme"
)

type server struct {
	cfg     *config.Config
	log     zerolog.Logger
	content *portfolio.Service
	cv      *cv.Loader
	store   *store.Store
	metrics *metrics.Metrics
	static  fs.FS

	adminToken string
	// track records a visit; tests replace it to run synchronously.
	track      func(ip, userAgent, path string)
}

func newServer(cfg *config.Config, log zerolog.Logger, content *portfolio.Service, loader *cv.Loader, st *store.Store, m *metrics.Metrics) (*server, error) {
	token, err := store.NewToken()
	if err != nil {
		return nil, err
	}
	s := &server{
		cfg:        cfg,
		log:        log,
		content:    content,
		cv:         loader,
		store:      st,
		metrics:    m,
		static:     staticFiles(),
		adminToken: token,
	}
	s.track = func(ip, userAgent, path string) {
		go s.recordVisit(ip, userAgent, path)
	}
	return s, nil
}

func (s *server) routes() *gin.Engine {
	r := gin.New()
	r.Use(logging.Recovery(s.log), logging.Middleware(s.log), s.metrics.Middleware())
	r.SetHTMLTemplate(loadTemplates())

	r.StaticFS("/static", http.FS(s.static))
	r.GET(s.cfg.CVPath, s.cvAsset)
	r.GET("/cv/download", s.cvDownload)

	r.GET("/", s.visitorTracking(), s.index)
	r.POST("/theme", s.toggleTheme)

	r.GET("/fragments/projects", s.projectsFragment)
	r.GET("/fragments/projects/:id", s.projectFragment)
	r.GET("/fragments/projects/:id/features", s.featuresFragment)
	r.GET("/fragments/projects/:id/media", s.mediaFragment)

	api := r.Group("/api")
	api.GET("/projects", s.listProjects)
	api.GET("/projects/:id", s.getProject)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "cv_ready": s.cv.Ready()})
	})
	r.GET("/metrics", s.metrics.Handler())

	s.setupAdminRoutes(r)
	return r
}

// themeState resolves the visitor's mode and persists every change to the
// mode cookie.
func (s *server) themeState(c *gin.Context) *theme.State {
	cookie, _ := c.Cookie(theme.CookieName)
	st := theme.NewState(theme.Resolve(cookie, c.GetHeader(theme.HintHeader), s.cfg.ThemeDefault))
	st.Subscribe(func(_, mode theme.Mode) {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(theme.CookieName, mode.String(), 365*24*3600, "/", "", false, false)
		s.metrics.ThemeToggles.WithLabelValues(mode.String()).Inc()
	})
	return st
}

type pageData struct {
	Profile    portfolio.Profile
	Stack      []portfolio.TechCategory
	Experience []portfolio.Experience
	Studies    []portfolio.Study
	Contacts   []portfolio.Link

	Mode     theme.Mode
	NextMode theme.Mode
	Dark     bool

	CVReady    bool
	CVFileName string

	// Illustrations of the active mode, preloaded in the head.
	Illustrations map[theme.Illustration]string

	Projects projectsView
}

func (s *server) index(c *gin.Context) {
	st := s.themeState(c)
	mode := st.Mode()

	c.Header("Accept-CH", theme.HintHeader)
	c.Header("Vary", theme.HintHeader+", Cookie")
	c.HTML(http.StatusOK, "index.html", pageData{
		Profile:    s.content.Profile(),
		Stack:      s.content.Stack(),
		Experience: s.content.Experience(),
		Studies:    s.content.Studies(),
		Contacts:   s.content.Contacts(),
		Mode:       mode,
		NextMode:   mode.Toggle(),
		Dark:       mode == theme.Dark,
		CVReady:    s.cv.Ready(),
		CVFileName: cv.FileName,
		Projects:   s.projectsView(s.projectAccordion(), mode),

		Illustrations: st.Assets(),
	})
}

// toggleTheme flips the mode, or sets it when the form carries "mode".
func (s *server) toggleTheme(c *gin.Context) {
	st := s.themeState(c)
	if m := c.PostForm("mode"); m != "" {
		mode, err := theme.ParseMode(m)
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		_ = st.Set(mode)
	} else {
		st.Toggle()
	}

	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Refresh", "true")
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *server) cvAsset(c *gin.Context) {
	c.FileFromFS(strings.TrimPrefix(s.cfg.CVPath, "/"), http.FS(s.static))
}

// cvDownload serves the prefetched CV bytes. Until the prefetch succeeds
// there is nothing to download.
func (s *server) cvDownload(c *gin.Context) {
	asset, ok := s.cv.Asset()
	if !ok {
		c.String(http.StatusNotFound, "CV not available")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", asset.FileName))
	c.Data(http.StatusOK, asset.MIMEType, asset.Data)

	s.metrics.CVDownloads.Inc()
	if s.store != nil {
		ip := c.ClientIP()
		go func() {
			if err := s.store.RecordDownload(context.Background(), ip); err != nil {
				s.log.Error().Err(err).Msg("Error recording CV download")
			}
		}()
	}
}

func (s *server) listProjects(c *gin.Context) {
	c.JSON(http.StatusOK, s.content.Projects())
}

func (s *server) getProject(c *gin.Context) {
	p, err := s.content.Project(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// projectAccordion is the top-level list: independent items, first project open.
func (s *server) projectAccordion() *disclosure.Accordion {
	ids := s.content.ProjectIDs()
	var opts []disclosure.Option
	if len(ids) > 0 {
		opts = append(opts, disclosure.WithDefault(ids[0]))
	}
	return disclosure.New(ids, opts...)
}

func (s *server) featureAccordion(p *portfolio.Project) *disclosure.Accordion {
	return disclosure.New(p.FeatureIDs())
}

func (s *server) newCarousel(p *portfolio.Project) *carousel.Carousel {
	return carousel.New(len(p.Media),
		carousel.WithBoundary(s.cfg.CarouselBoundary),
		carousel.WithAutoplay(s.cfg.CarouselAutoplay))
}

// applyDisclosure reads "open" and "toggle" from the query into a.
// A request without "open" keeps the configured defaults.
func applyDisclosure(c *gin.Context, a *disclosure.Accordion) error {
	if open, ok := c.GetQuery("open"); ok {
		a.Decode(open)
	}
	if id := c.Query("toggle"); id != "" {
		return a.Toggle(id)
	}
	return nil
}

func (s *server) projectsFragment(c *gin.Context) {
	a := s.projectAccordion()
	if err := applyDisclosure(c, a); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	c.HTML(http.StatusOK, "projects", s.projectsView(a, s.themeState(c).Mode()))
}

// projectFragment renders a single project so toggling it leaves the other
// projects' features and slides untouched.
func (s *server) projectFragment(c *gin.Context) {
	p, err := s.content.Project(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, err.Error())
		return
	}
	a := s.projectAccordion()
	if err := applyDisclosure(c, a); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	c.HTML(http.StatusOK, "project", s.projectItemOf(p, a, s.themeState(c).Mode()))
}

func (s *server) featuresFragment(c *gin.Context) {
	p, err := s.content.Project(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, err.Error())
		return
	}
	a := s.featureAccordion(p)
	if err := applyDisclosure(c, a); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	c.HTML(http.StatusOK, "features", featuresViewOf(p, a))
}

func (s *server) mediaFragment(c *gin.Context) {
	p, err := s.content.Project(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, err.Error())
		return
	}

	car := s.newCarousel(p)
	if err := applyCarousel(c, car); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	c.HTML(http.StatusOK, "media", mediaViewOf(p, car, s.themeState(c).Mode()))
}

// applyCarousel positions car from "index" then applies "op" (next, prev or go with "to").
func applyCarousel(c *gin.Context, car *carousel.Carousel) error {
	if v := c.Query("index"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid index %q", v)
		}
		if err := car.Go(i); err != nil {
			return err
		}
	}

	switch op := c.Query("op"); op {
	case "":
	case "next":
		car.Next()
	case "prev":
		car.Prev()
	case "go":
		to, err := strconv.Atoi(c.Query("to"))
		if err != nil {
			return errors.New("go requires a numeric \"to\"")
		}
		return car.Go(to)
	default:
		return fmt.Errorf("unknown op %q", op)
	}
	return nil
}

type projectsView struct {
	Items []projectItem
}

type projectItem struct {
	Project   *portfolio.Project
	Expanded  bool
	ToggleURL string
	Features  featuresView
	Media     mediaView
}

func (s *server) projectsView(a *disclosure.Accordion, mode theme.Mode) projectsView {
	projects := s.content.Projects()
	v := projectsView{Items: make([]projectItem, 0, len(projects))}
	for i := range projects {
		v.Items = append(v.Items, s.projectItemOf(&projects[i], a, mode))
	}
	return v
}

func (s *server) projectItemOf(p *portfolio.Project, a *disclosure.Accordion, mode theme.Mode) projectItem {
	return projectItem{
		Project:   p,
		Expanded:  a.Expanded(p.ID),
		ToggleURL: disclosureURL("/fragments/projects/"+url.PathEscape(p.ID), a.EncodeToggled(p.ID)),
		Features:  featuresViewOf(p, s.featureAccordion(p)),
		Media:     mediaViewOf(p, s.newCarousel(p), mode),
	}
}

type featuresView struct {
	ProjectID string
	Items     []featureItem
}

type featureItem struct {
	Feature   portfolio.Feature
	Expanded  bool
	ToggleURL string
}

func featuresViewOf(p *portfolio.Project, a *disclosure.Accordion) featuresView {
	base := "/fragments/projects/" + url.PathEscape(p.ID) + "/features"
	v := featuresView{ProjectID: p.ID, Items: make([]featureItem, 0, len(p.Features))}
	for _, f := range p.Features {
		v.Items = append(v.Items, featureItem{
			Feature:   f,
			Expanded:  a.Expanded(f.Value),
			ToggleURL: disclosureURL(base, a.EncodeToggled(f.Value)),
		})
	}
	return v
}

// disclosureURL points at a fragment rendered with the given expanded set.
func disclosureURL(base, open string) string {
	q := url.Values{}
	q.Set("open", open)
	return base + "?" + q.Encode()
}

type mediaView struct {
	ProjectID string
	Slide     *portfolio.Media
	Src       string
	IsVideo   bool
	Index     int
	Len       int

	PrevURL    string
	NextURL    string
	Indicators []indicator

	AutoplayURL     string
	AutoplaySeconds int
}

type indicator struct {
	Index  int
	URL    string
	Active bool
}

func mediaViewOf(p *portfolio.Project, car *carousel.Carousel, mode theme.Mode) mediaView {
	base := "/fragments/projects/" + url.PathEscape(p.ID) + "/media"
	v := mediaView{ProjectID: p.ID, Index: car.Index(), Len: car.Len()}
	if car.Len() == 0 {
		return v
	}

	slide := p.Media[car.Index()]
	v.Slide = &slide
	v.Src = slide.Source(mode)
	v.IsVideo = slide.Kind == portfolio.Video

	at := func(i int) string { return fmt.Sprintf("%s?index=%d", base, i) }
	if car.HasPrev() {
		v.PrevURL = at(car.Peek(false))
	}
	if car.HasNext() {
		v.NextURL = at(car.Peek(true))
	}
	if car.Len() > 1 {
		for i := 0; i < car.Len(); i++ {
			v.Indicators = append(v.Indicators, indicator{Index: i, URL: at(i), Active: i == car.Index()})
		}
	}
	if d := car.Autoplay(); d > 0 && car.HasNext() {
		v.AutoplayURL = fmt.Sprintf("%s?index=%d&op=next", base, car.Index())
		v.AutoplaySeconds = int(d.Seconds())
		if v.AutoplaySeconds < 1 {
			v.AutoplaySeconds = 1
		}
	}
	return v
}
