package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/dgallion1/docsumm/internal/chunker"
	"github.com/dgallion1/docsumm/internal/parser"
	"github.com/dgallion1/docsumm/internal/summarize"
)

// NoContentSummary stands in for the summary of a section without content.
// No backend call is made for such sections.
const NoContentSummary = "No content to summarize."

// sectionErrorPrefix marks a section whose summarization failed. The job
// itself still succeeds; the failure stays local to the section.
const sectionErrorPrefix = "Error summarizing section: "

// Worker runs the progressive summarization pipeline for one job at a time:
// parse, extract sections, chunk oversized sections, summarize chunk by
// chunk, and recombine into the final renderings, reporting progress at
// every phase, section, and chunk boundary.
type Worker struct {
	log           *slog.Logger
	chunkCfg      chunker.Config
	stats         *summarize.Stats
	retryAttempts int
	retryDelay    time.Duration
	pdfFallback   bool
}

func NewWorker(log *slog.Logger, chunkCfg chunker.Config, stats *summarize.Stats, retryAttempts int, retryDelay time.Duration, pdfFallback bool) *Worker {
	if retryAttempts <= 0 {
		retryAttempts = 1
	}
	return &Worker{
		log:           log,
		chunkCfg:      chunkCfg,
		stats:         stats,
		retryAttempts: retryAttempts,
		retryDelay:    retryDelay,
		pdfFallback:   pdfFallback,
	}
}

// Process drives a job to a terminal state. Configuration and input-type
// problems fail immediately; other pipeline errors are retried with a fixed
// delay before the job is terminally failed.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	p, err := parser.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported input", "error", err)
		job.Fail(err.Error())
		return
	}
	if pdf, ok := p.(*parser.PDFParser); ok {
		pdf.FallbackPdftotext = w.pdfFallback
	}

	summ, err := summarize.New(job.BackendConfig(), w.stats)
	if err != nil {
		log.Error("backend configuration invalid", "error", err)
		job.Fail(err.Error())
		return
	}

	var lastErr error
	for attempt := 0; attempt < w.retryAttempts; attempt++ {
		if attempt > 0 {
			log.Warn("retrying job", "attempt", attempt+1, "error", lastErr)
			select {
			case <-time.After(w.retryDelay):
			case <-ctx.Done():
				job.Fail(ctx.Err().Error())
				return
			}
		}

		res, err := w.run(ctx, job.Filename, job.FileData(), p, summ, job)
		if err == nil {
			job.Succeed(res)
			log.Info("job completed", "sections", len(res.SummariesJSON.Summaries))
			return
		}
		if !IsRetryable(err) {
			log.Error("job failed", "error", err)
			job.Fail(err.Error())
			return
		}
		lastErr = err
	}

	log.Error("job failed after retries", "attempts", w.retryAttempts, "error", lastErr)
	job.Fail(lastErr.Error())
}

// run executes one attempt of the pipeline, reporting progress through rep.
// Per-chunk backend failures are recorded as that section's summary and do
// not fail the attempt.
func (w *Worker) run(ctx context.Context, filename string, data []byte, p parser.Parser, summ summarize.Summarizer, rep ProgressReporter) (*Result, error) {
	rep.Report(Progress{Current: 0, Total: 3, StatusMessage: "Starting summarization."})

	doc, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	rep.Report(Progress{Current: 1, Total: 3, StatusMessage: "Extracting sections."})
	sections := doc.Sections()

	rep.Report(Progress{
		Current: 1, Total: 3,
		StatusMessage: "Summarizing sections.",
		SectionTotal:  len(sections),
	})

	summaries := make(map[string]string, len(sections))
	titles := make([]string, 0, len(sections))
	record := func(title, summary string) {
		if _, seen := summaries[title]; !seen {
			titles = append(titles, title)
		}
		summaries[title] = summary
	}

	for i, sec := range sections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content := strings.TrimSpace(sec.Content)
		if content == "" {
			record(sec.Title, NoContentSummary)
			continue
		}

		chunks := chunker.ForSection(sec.Title, content, w.chunkCfg)
		var sb strings.Builder
		var chunkErr error

		for _, ch := range chunks {
			out, err := summ.Summarize(ctx, ch.Text)
			if err != nil {
				w.log.Error("chunk summarization failed",
					"section", sec.Title, "chunk", ch.Index, "error", err)
				chunkErr = err
				break
			}

			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strings.TrimSpace(out))

			rep.Report(Progress{
				Current: 1, Total: 3,
				StatusMessage:   "Summarizing section: " + sec.Title,
				SectionTotal:    len(sections),
				SectionCurrent:  i + 1,
				SectionProgress: roundPercent(ch.Index+1, ch.Total),
				ChunkTotal:      ch.Total,
				ChunkCurrent:    ch.Index + 1,
			})
		}

		if chunkErr != nil {
			record(sec.Title, sectionErrorPrefix+chunkErr.Error())
			continue
		}
		record(sec.Title, sb.String())
	}

	rep.Report(Progress{
		Current: 3, Total: 3,
		StatusMessage:   "Finalizing summaries.",
		SectionTotal:    len(sections),
		SectionCurrent:  len(sections),
		SectionProgress: 100,
	})

	var md strings.Builder
	fmt.Fprintf(&md, "# Summaries of %s\n\n", filename)
	for _, title := range titles {
		fmt.Fprintf(&md, "## %s\n\n%s\n\n", title, summaries[title])
	}

	return &Result{
		SummaryMarkdown: strings.TrimSpace(md.String()),
		SummariesJSON: StructuredSummary{
			FileName:  filename,
			Summaries: summaries,
		},
	}, nil
}

func roundPercent(current, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(current) / float64(total) * 100))
}
