package pipeline

import (
	"context"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/jsondoc"
	"github.com/theoremus-urban-solutions/transport-catalogue/render"
)

const (
	msgNotFound        = "not found"
	msgSettingsMissing = "render settings missing"
	msgSettingsInvalid = "invalid render settings"
	// DefaultUnknownTypeMessage answers stat queries of an unsupported type.
	DefaultUnknownTypeMessage = "unknown request type"
)

// answerer holds what every query needs once the catalogue is complete. The
// catalogue is only read from here on, so queries may run concurrently.
type answerer struct {
	cat         *catalogue.TransportCatalogue
	settings    *render.Settings
	style       render.Style
	unknownType string
	settingsErr error
	svgOnce     func() string
}

func newAnswerer(cat *catalogue.TransportCatalogue, req *Request, opts Options) *answerer {
	a := &answerer{
		cat:         cat,
		settings:    req.Settings,
		style:       opts.Style,
		unknownType: opts.UnknownTypeMessage,
	}
	if a.unknownType == "" {
		a.unknownType = DefaultUnknownTypeMessage
	}
	if req.Settings != nil {
		a.settingsErr = req.Settings.Validate()
		a.svgOnce = sync.OnceValue(func() string {
			return render.NewMapRenderer(*a.settings, a.style).Render(a.cat).String()
		})
	}
	return a
}

func (a *answerer) answer(q StatQuery) (jsondoc.Node, error) {
	b := jsondoc.NewBuilder().StartObject().Key("request_id").Value(jsondoc.Int(q.ID))

	switch q.Type {
	case QueryBus:
		bus, ok := a.cat.FindBus(q.Name)
		if !ok {
			b.Key("error_message").Value(jsondoc.String(msgNotFound))
			break
		}
		info := a.cat.BusInfo(bus)
		b.Key("curvature").Value(jsondoc.Float(info.Curvature)).
			Key("route_length").Value(jsondoc.Int(info.RouteLength)).
			Key("stop_count").Value(jsondoc.Int(info.StopCount)).
			Key("unique_stop_count").Value(jsondoc.Int(info.UniqueStopCount))
	case QueryStop:
		if _, ok := a.cat.FindStop(q.Name); !ok {
			b.Key("error_message").Value(jsondoc.String(msgNotFound))
			break
		}
		b.Key("buses").Value(jsondoc.Strings(a.cat.BusesForStop(q.Name)))
	case QueryMap:
		if a.svgOnce == nil {
			b.Key("error_message").Value(jsondoc.String(msgSettingsMissing))
			break
		}
		if a.settingsErr != nil {
			b.Key("error_message").Value(jsondoc.String(msgSettingsInvalid))
			break
		}
		b.Key("map").Value(jsondoc.String(a.svgOnce()))
	default:
		b.Key("error_message").Value(jsondoc.String(a.unknownType))
	}

	return b.EndObject().Build()
}

// Answer answers every query of req against cat and returns the answers as
// an array in query order. With more than one worker the queries are
// answered concurrently.
func Answer(ctx context.Context, cat *catalogue.TransportCatalogue, req *Request, opts Options) (jsondoc.Node, error) {
	a := newAnswerer(cat, req, opts)
	answers := make([]jsondoc.Node, len(req.Queries))

	if opts.Workers <= 1 {
		for i, q := range req.Queries {
			if err := ctx.Err(); err != nil {
				return jsondoc.Node{}, err
			}
			n, err := a.answer(q)
			if err != nil {
				return jsondoc.Node{}, err
			}
			answers[i] = n
		}
	} else {
		p := pool.New().WithMaxGoroutines(opts.Workers).WithContext(ctx).WithCancelOnError()
		for i, q := range req.Queries {
			i, q := i, q
			p.Go(func(ctx context.Context) error {
				if err := ctx.Err(); err != nil {
					return err
				}
				n, err := a.answer(q)
				if err != nil {
					return err
				}
				// each goroutine owns its slot
				answers[i] = n
				return nil
			})
		}
		if err := p.Wait(); err != nil {
			return jsondoc.Node{}, err
		}
	}

	b := jsondoc.NewBuilder().StartArray()
	for _, n := range answers {
		b.Value(n)
	}
	return b.EndArray().Build()
}
