// Package server serves the dashboard and a JSON API over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/teecush/tracker"
	"github.com/teecush/tracker/insight"
	"github.com/teecush/tracker/logger"
	"github.com/teecush/tracker/renderer"
)

// Server handles requests on a store. The table is read again on every request.
type Server struct {
	Store     *tracker.Store
	Primary   tracker.Source // refreshed into Store on demand, may be nil
	Generator insight.Generator
}

// New returns a Server on store.
func New(store *tracker.Store, primary tracker.Source, g insight.Generator) *Server {
	return &Server{Store: store, Primary: primary, Generator: g}
}

// Router returns the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogging())

	r.GET("/", s.Dashboard)
	api := r.Group("/api")
	api.GET("/metrics", s.Metrics)
	api.GET("/insights", s.Insights)
	api.GET("/transactions", s.Transactions)
	api.POST("/transactions", s.AddTransaction)
	api.DELETE("/transactions/:index", s.DeleteTransaction)
	api.POST("/refresh", s.Refresh)
	return r
}

// ListenAndServe serves on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	logger.Get().Infow("serving", "addr", addr, "data", s.Store.Path)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) table(c *gin.Context) (tracker.Table, bool) {
	t, err := s.Store.LoadOrEmpty()
	if err != nil {
		respondWithError(c, err)
		return nil, false
	}
	return t, true
}

// Dashboard renders the HTML dashboard.
func (s *Server) Dashboard(c *gin.Context) {
	t, ok := s.table(c)
	if !ok {
		return
	}
	m := tracker.ComputeMetrics(t)
	d := renderer.NewDashboard(t, m, insight.Text(c.Request.Context(), s.Generator, t, m))
	page, err := renderer.Page(d.Title, renderer.RenderDashboard(d))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// Metrics returns the metrics of the table.
func (s *Server) Metrics(c *gin.Context) {
	t, ok := s.table(c)
	if !ok {
		return
	}
	m := tracker.ComputeMetrics(t)
	c.JSON(http.StatusOK, gin.H{
		"metrics": m,
		"roi":     float64(m.ROI()),
	})
}

// Insights returns the insight text, a generator failure is part of the text.
func (s *Server) Insights(c *gin.Context) {
	t, ok := s.table(c)
	if !ok {
		return
	}
	m := tracker.ComputeMetrics(t)
	c.JSON(http.StatusOK, gin.H{"insights": insight.Text(c.Request.Context(), s.Generator, t, m)})
}

// Transactions returns the transaction log, newest first.
func (s *Server) Transactions(c *gin.Context) {
	t, ok := s.table(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": t.Log()})
}

// AddTransaction validates a JSON entry and appends it to the store.
func (s *Server) AddTransaction(c *gin.Context) {
	var e tracker.Entry
	if err := c.ShouldBindJSON(&e); err != nil {
		respondWithError(c, &tracker.ValidationError{Message: "Invalid request body"})
		return
	}
	tx, err := e.Transaction(s.Store.Currency)
	if err != nil {
		respondWithError(c, err)
		return
	}
	t, err := s.Store.Append(tx)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"transaction": tx, "count": len(t)})
}

// DeleteTransaction removes the transaction at the 1-based log index.
func (s *Server) DeleteTransaction(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respondWithError(c, &tracker.ValidationError{Field: "index", Message: "Invalid index"})
		return
	}
	removed, t, err := s.Store.Delete(index)
	if err != nil {
		if errors.Is(err, tracker.ErrNoTransaction) {
			c.JSON(http.StatusNotFound, errorBody("NOT_FOUND", err.Error()))
			return
		}
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": removed, "count": len(t)})
}

// Refresh reloads the table from the primary source into the store.
func (s *Server) Refresh(c *gin.Context) {
	res := tracker.Load(c.Request.Context(), s.Primary, s.Store)
	c.JSON(http.StatusOK, gin.H{
		"origin":   res.Origin,
		"count":    len(res.Table),
		"warnings": res.Warnings,
	})
}
