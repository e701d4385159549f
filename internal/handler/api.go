package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/yuxishi/aws-quota-checker/internal/audit"
	"github.com/yuxishi/aws-quota-checker/internal/cache"
	"github.com/yuxishi/aws-quota-checker/internal/metrics"
	"github.com/yuxishi/aws-quota-checker/internal/model"
	"github.com/yuxishi/aws-quota-checker/internal/quota"
)

type Auditor interface {
	Run(ctx context.Context, req audit.Request) (*model.Report, error)
}

type RegionLister func(ctx context.Context) ([]model.Region, error)

type Options struct {
	// Regions audited when the request names none.
	Regions     []string
	Thresholds  model.Thresholds
	ListRegions RegionLister
	Metrics     *metrics.Metrics
	Log         logrus.FieldLogger
}

type Handler struct {
	auditor  Auditor
	registry *quota.Registry
	cache    *cache.Cache
	opts     Options
}

func New(auditor Auditor, registry *quota.Registry, c *cache.Cache, opts Options) *Handler {
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	return &Handler{
		auditor:  auditor,
		registry: registry,
		cache:    c,
		opts:     opts,
	}
}

// Register mounts the API routes on r.
func (h *Handler) Register(r gin.IRouter) {
	api := r.Group("/api")
	{
		api.GET("/checks", h.GetChecks)
		api.GET("/services", h.GetServices)
		api.GET("/regions", h.GetRegions)
		api.GET("/results", h.GetResults)
		api.POST("/refresh", h.Refresh)
		api.GET("/export/json", h.ExportJSON)
		api.GET("/export/html", h.ExportHTML)
	}
}

func (h *Handler) GetChecks(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checks := make([]model.Check, 0)
	for _, chk := range h.registry.Filter(filter) {
		checks = append(checks, chk.Info())
	}
	c.JSON(http.StatusOK, gin.H{
		"checks": checks,
		"total":  len(checks),
	})
}

func (h *Handler) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": h.registry.Services()})
}

func (h *Handler) GetRegions(c *gin.Context) {
	if h.opts.ListRegions == nil {
		c.JSON(http.StatusOK, gin.H{"regions": h.opts.Regions})
		return
	}
	regions, err := h.opts.ListRegions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"regions": regions})
}

func (h *Handler) GetResults(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key := requestKey(c)
	report, fromCache := h.cache.Get(key)
	if !fromCache {
		regions, err := h.regions(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		report, err = h.auditor.Run(c.Request.Context(), audit.Request{
			Keys:    splitList(c.Query("check")),
			Regions: regions,
			Filter:  filter,
		})
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, quota.ErrUnknownCheck) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		h.cache.Set(key, report)
		if h.opts.Metrics != nil {
			h.opts.Metrics.Observe(report)
		}
		h.opts.Log.WithField("results", report.Total).Info("Audit finished")
	}

	out := *report
	out.FromCache = fromCache
	out.Results = search(report.Results, c.Query("search"))
	out.Total = len(out.Results)
	c.JSON(http.StatusOK, out)
}

func (h *Handler) Refresh(c *gin.Context) {
	h.cache.Clear()
	c.JSON(http.StatusOK, gin.H{
		"message": "Cache cleared successfully",
	})
}

func (h *Handler) regions(c *gin.Context) ([]string, error) {
	param := c.Query("region")
	switch param {
	case "":
		return h.opts.Regions, nil
	case "all":
		if h.opts.ListRegions == nil {
			return h.opts.Regions, nil
		}
		list, err := h.opts.ListRegions(c.Request.Context())
		if err != nil {
			return nil, err
		}
		regions := make([]string, 0, len(list))
		for _, r := range list {
			regions = append(regions, r.Code)
		}
		return regions, nil
	}
	return splitList(param), nil
}

func parseFilter(c *gin.Context) (quota.Filter, error) {
	f := quota.Filter{Service: c.Query("service")}
	if s := c.Query("scope"); s != "" {
		scope, err := quota.ParseScope(s)
		if err != nil {
			return f, err
		}
		f.Scope = &scope
	}
	return f, nil
}

func requestKey(c *gin.Context) string {
	return cache.Key(c.Query("region"), c.Query("check"), strings.ToUpper(c.Query("scope")), c.Query("service"))
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func search(results []model.Result, term string) []model.Result {
	if term == "" {
		return results
	}
	term = strings.ToLower(term)
	filtered := make([]model.Result, 0)
	for _, r := range results {
		if strings.Contains(strings.ToLower(r.Key), term) ||
			strings.Contains(strings.ToLower(r.Description), term) ||
			strings.Contains(strings.ToLower(r.Service), term) ||
			strings.Contains(strings.ToLower(r.InstanceID), term) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
