package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/jsondoc"
	"github.com/theoremus-urban-solutions/transport-catalogue/render"
)

// Options tune how a request is processed.
type Options struct {
	// Workers bounds concurrent stat query answering. 0 or 1 answers them
	// one by one.
	Workers            int
	UnknownTypeMessage string
	Style              render.Style
}

// DefaultOptions answers queries sequentially with the default map style.
func DefaultOptions() Options {
	return Options{
		Workers:            1,
		UnknownTypeMessage: DefaultUnknownTypeMessage,
		Style:              render.DefaultStyle(),
	}
}

// Load parses a request document from r, builds a catalogue from its
// creation commands and returns both.
func Load(r io.Reader) (*catalogue.TransportCatalogue, *Request, error) {
	root, err := jsondoc.Load(r)
	if err != nil {
		return nil, nil, err
	}
	req, err := ParseRequest(root)
	if err != nil {
		return nil, nil, err
	}
	cat := catalogue.New()
	Apply(cat, req, log.Logger)
	return cat, req, nil
}

// Run reads a request document from r and writes the answers to w.
// Parse errors and malformed documents abort the run before anything is
// written.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	start := time.Now()
	logger := log.With().Str("run_id", uuid.NewString()).Logger()

	root, err := jsondoc.Load(r)
	if err != nil {
		return fmt.Errorf("read request: %w", err)
	}
	req, err := ParseRequest(root)
	if err != nil {
		return fmt.Errorf("read request: %w", err)
	}
	logger.Debug().
		Int("stop_commands", len(req.Stops)).
		Int("bus_commands", len(req.Buses)).
		Int("queries", len(req.Queries)).
		Bool("render_settings", req.Settings != nil).
		Msg("request parsed")

	cat := catalogue.New()
	Apply(cat, req, logger)

	out, err := Answer(ctx, cat, req, opts)
	if err != nil {
		return fmt.Errorf("answer queries: %w", err)
	}

	if err := jsondoc.Print(w, out); err != nil {
		return fmt.Errorf("write answers: %w", err)
	}

	logger.Info().
		Int("answers", len(req.Queries)).
		Int("workers", opts.Workers).
		Dur("elapsed", time.Since(start)).
		Msg("request processed")
	return nil
}
