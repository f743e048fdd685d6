package report

import (
	"crypto/rand"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/reviewsense/pkg/reviewsense"
)

// Builder stamps analysis results with sortable unique IDs.
type Builder struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// New creates a new report builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

// Report is one analyzed input.
type Report struct {
	ID          string             `json:"id"`
	Source      string             `json:"source"`
	GeneratedAt time.Time          `json:"generatedAt"`
	Result      reviewsense.Result `json:"result"`
}

// Batch groups the reports of one run.
type Batch struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generatedAt"`
	Reports     []Report  `json:"reports"`
}

// Build wraps a result for source (a file name, or "-" for stdin).
func (b *Builder) Build(source string, res reviewsense.Result) Report {
	now := b.now().UTC()
	return Report{
		ID:          b.newID(now),
		Source:      source,
		GeneratedAt: now,
		Result:      res,
	}
}

// BuildBatch wraps results pairwise with sources. Report IDs sort in input order.
func (b *Builder) BuildBatch(sources []string, results []reviewsense.Result) Batch {
	now := b.now().UTC()
	batch := Batch{
		ID:          b.newID(now),
		GeneratedAt: now,
		Reports:     make([]Report, 0, len(results)),
	}
	for i, res := range results {
		source := ""
		if i < len(sources) {
			source = sources[i]
		}
		batch.Reports = append(batch.Reports, b.Build(source, res))
	}
	return batch
}

// the monotonic entropy source is not safe for concurrent use
func (b *Builder) newID(t time.Time) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), b.entropy).String()
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
