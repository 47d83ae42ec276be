package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/claude/ftracker/internal/models"
	"github.com/claude/ftracker/internal/training"
	"github.com/google/uuid"
)

// Output formats accepted by Provider.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Result holds the outcome of a batch run.
type Result struct {
	RunID      uuid.UUID   `json:"run_id"`
	Received   int         `json:"received"`
	Summarized int         `json:"summarized"`
	Rejected   int         `json:"rejected"`
	Rejections []Rejection `json:"rejections,omitempty"`
}

// Rejection describes a package that could not be summarized.
type Rejection struct {
	Index int    `json:"index"`
	Type  string `json:"type"`
	Error string `json:"error"`
}

// Provider turns sensor packages into workout summaries.
type Provider struct {
	format string
	log    *slog.Logger
}

// NewProvider creates a provider writing lines in the given output format.
func NewProvider(format string, log *slog.Logger) *Provider {
	return &Provider{format: format, log: log}
}

// Summarize builds the workout for a single package and returns its summary.
func Summarize(p models.Package) (models.InfoMessage, error) {
	t, err := training.ReadPackage(p.Type, p.Values)
	if err != nil {
		return models.InfoMessage{}, err
	}
	return training.Summary(t)
}

// Ingest summarizes packages in order and writes one line per package to w.
// A package that fails validation produces a diagnostic line and does not stop
// the batch; only write failures and context cancellation abort the run.
func (p *Provider) Ingest(ctx context.Context, packages []models.Package, w io.Writer) (*Result, error) {
	result := &Result{RunID: uuid.New(), Received: len(packages)}
	log := p.log.With("run_id", result.RunID)

	for i, pkg := range packages {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		msg, err := Summarize(pkg)
		if err != nil {
			result.Rejected++
			result.Rejections = append(result.Rejections, Rejection{Index: i + 1, Type: pkg.Type, Error: err.Error()})
			log.Warn("package rejected", "index", i+1, "type", pkg.Type, "error", err)
			if err := p.writeRejection(w, result.RunID, i+1, pkg.Type, err); err != nil {
				return result, err
			}
			continue
		}

		if err := p.writeSummary(w, result.RunID, msg); err != nil {
			return result, err
		}
		result.Summarized++
	}

	log.Info("batch processed", "received", result.Received, "summarized", result.Summarized, "rejected", result.Rejected)
	return result, nil
}

type jsonLine struct {
	RunID   uuid.UUID           `json:"run_id"`
	Summary *models.InfoMessage `json:"summary,omitempty"`
	Message string              `json:"message,omitempty"`
	Error   *Rejection          `json:"error,omitempty"`
}

func (p *Provider) writeSummary(w io.Writer, runID uuid.UUID, msg models.InfoMessage) error {
	if p.format == OutputJSON {
		return writeJSONLine(w, jsonLine{RunID: runID, Summary: &msg, Message: msg.Message()})
	}
	if _, err := fmt.Fprintln(w, msg.Message()); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

func (p *Provider) writeRejection(w io.Writer, runID uuid.UUID, index int, code string, cause error) error {
	if p.format == OutputJSON {
		return writeJSONLine(w, jsonLine{RunID: runID, Error: &Rejection{Index: index, Type: code, Error: cause.Error()}})
	}
	if _, err := fmt.Fprintf(w, "ошибка: пакет #%d (%s): %v\n", index, code, cause); err != nil {
		return fmt.Errorf("writing diagnostic: %w", err)
	}
	return nil
}

func writeJSONLine(w io.Writer, line jsonLine) error {
	if err := json.NewEncoder(w).Encode(line); err != nil {
		return fmt.Errorf("writing json line: %w", err)
	}
	return nil
}
