package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

// Counter is a monotonically increasing Prometheus counter.
type Counter struct {
	name, help string
	v          atomic.Uint64
}

func (c *Counter) Inc() { c.v.Add(1) }

// Add increments by n.
func (c *Counter) Add(n uint64) { c.v.Add(n) }

func (c *Counter) Value() uint64 { return c.v.Load() }

// Histogram is a fixed-bucket Prometheus histogram.
type Histogram struct {
	name, help string

	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func (h *Histogram) Observe(value float64) {
	if value < 0 {
		value = 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

// ObserveSince records the milliseconds elapsed since start.
func (h *Histogram) ObserveSince(start time.Time) {
	h.Observe(float64(time.Since(start)) / float64(time.Millisecond))
}

func (h *Histogram) Count() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.count
}

var (
	counters   []*Counter
	histograms []*Histogram
)

func newCounter(name, help string) *Counter {
	c := &Counter{name: name, help: help}
	counters = append(counters, c)
	return c
}

func newHistogram(name, help string, buckets ...float64) *Histogram {
	h := &Histogram{name: name, help: help, buckets: buckets, counts: make([]uint64, len(buckets))}
	histograms = append(histograms, h)
	return h
}

var (
	Evaluations   = newCounter("score_evaluations_total", "Total resumes scored")
	Batches       = newCounter("score_batches_total", "Total batch scoring requests")
	Uploads       = newCounter("score_uploads_total", "Total documents uploaded for scoring")
	UploadsFailed = newCounter("score_uploads_failed_total", "Total uploads that could not be stored, extracted or scored")
	RateLimited   = newCounter("http_rate_limited_total", "Total requests rejected by the rate limiter")

	Duration = newHistogram("score_duration_ms", "Scoring duration in milliseconds",
		0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000, 5000)
	Overall = newHistogram("score_overall", "Distribution of overall ATS scores",
		10, 20, 30, 40, 50, 60, 70, 80, 90, 100)
)

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	for _, c := range counters {
		fmt.Fprintf(&buf, "# HELP %s %s\n# TYPE %s counter\n%s %d\n", c.name, c.help, c.name, c.name, c.Value())
	}
	for _, h := range histograms {
		writeHistogram(&buf, h)
	}
	return buf.String()
}

func writeHistogram(buf *bytes.Buffer, h *Histogram) {
	h.mu.Lock()
	defer h.mu.Unlock()

	fmt.Fprintf(buf, "# HELP %s %s\n", h.name, h.help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", h.name)
	var cumulative uint64
	for i, bound := range h.buckets {
		cumulative += h.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", h.name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", h.name, h.count)
	fmt.Fprintf(buf, "%s_sum %s\n", h.name, formatFloat(h.sum))
	fmt.Fprintf(buf, "%s_count %d\n", h.name, h.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
