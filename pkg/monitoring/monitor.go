package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dsa"

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// ProgressWrites log: completion | attempt
	ProgressWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "progress_writes_total",
			Help:      "Completion and attempt log writes",
		},
		[]string{"log"},
	)

	// AuthEvents event: signup | signup_conflict | login_success | login_failure
	AuthEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_events_total",
			Help:      "Signup and login outcomes",
		},
		[]string{"event"},
	)

	// LeaderboardCache result: hit | miss | error
	LeaderboardCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leaderboard_cache_total",
			Help:      "Leaderboard cache lookups by result",
		},
		[]string{"result"},
	)

	registerOnce sync.Once
)

const (
	ProgressLogCompletion = "completion"
	ProgressLogAttempt    = "attempt"

	AuthSignup         = "signup"
	AuthSignupConflict = "signup_conflict"
	AuthLoginSuccess   = "login_success"
	AuthLoginFailure   = "login_failure"

	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Init 可重复调用，只注册一次
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDuration,
			ProgressWrites,
			AuthEvents,
			LeaderboardCache,
		)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// 未匹配的路由统一记为 unmatched
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(c.Request.Method, endpoint, strconv.Itoa(c.Writer.Status())).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
