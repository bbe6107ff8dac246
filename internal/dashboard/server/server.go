package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/betbot/polydash/pkg/sdk/api"
)

type Config struct {
	GammaBaseURL string
	DataBaseURL  string

	// DefaultUserAddress backs /positions when no user param is given.
	// Empty is allowed; a request then needs an explicit address.
	DefaultUserAddress string
}

type Server struct {
	cfg Config
	api *api.Client
}

func New(cfg Config) *Server {
	return &Server{
		cfg: cfg,
		api: api.NewClient(cfg.GammaBaseURL, cfg.DataBaseURL),
	}
}

func (s *Server) Close() {
	s.api.Close()
}

func (s *Server) Router() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLog())

	r.GET("/healthz", s.wrap(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }))

	r.GET("/movers", s.wrap(s.handleMovers))
	r.GET("/positions", s.wrap(s.handlePositions))

	// UI
	r.GET("/", s.wrap(s.handleUI))

	return r
}

// wrap adapts net/http handlers to gin.
func (s *Server) wrap(h func(http.ResponseWriter, *http.Request)) gin.HandlerFunc {
	return func(c *gin.Context) {
		h(c.Writer, c.Request)
	}
}
