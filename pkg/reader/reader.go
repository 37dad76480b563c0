package reader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/lintang-b-s/transitx/pkg/catalogue"
	"github.com/lintang-b-s/transitx/pkg/concurrent"
	"github.com/lintang-b-s/transitx/pkg/geo"
	"go.uber.org/zap"
)

var (
	ErrDecodeDocument  = errors.New("reader: malformed document")
	ErrInvalidDocument = errors.New("reader: invalid document")
)

// Reader loads input documents into a catalogue and answers their stat requests.
type Reader struct {
	log        *zap.Logger
	validate   *validator.Validate
	trans      ut.Translator
	numWorkers int
	cacheSize  int
}

func NewReader(log *zap.Logger, numWorkers, routeCacheSize int) *Reader {
	validate, trans := newValidator()
	return &Reader{
		log:        log,
		validate:   validate,
		trans:      trans,
		numWorkers: numWorkers,
		cacheSize:  routeCacheSize,
	}
}

func (r *Reader) ReadDocument(in io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(in).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeDocument, err)
	}

	if err := r.validate.Struct(doc); err != nil {
		vv := translateError(err, r.trans)
		vvString := make([]string, 0, len(vv))
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(vvString, "; "))
	}
	return &doc, nil
}

// BuildCatalogue fills a catalogue in three passes: stops, then road distances, then buses, so a
// request may reference stops declared after it. duplicates and unknown names are logged and skipped.
func (r *Reader) BuildCatalogue(doc *Document) *catalogue.Catalogue {
	cat := catalogue.NewCatalogue()

	accepted := make([]bool, len(doc.BaseRequests))
	for i, req := range doc.BaseRequests {
		if req.Type != BaseRequestStop {
			continue
		}
		_, added := cat.AddStop(req.Name, geo.NewCoordinate(req.Latitude, req.Longitude))
		if !added {
			r.log.Warn("duplicate stop ignored", zap.String("stop", req.Name))
			continue
		}
		accepted[i] = true
	}

	for i, req := range doc.BaseRequests {
		if req.Type != BaseRequestStop || !accepted[i] {
			continue
		}
		targets := make([]string, 0, len(req.RoadDistances))
		for to := range req.RoadDistances {
			targets = append(targets, to)
		}
		sort.Strings(targets)

		for _, to := range targets {
			if !cat.SetDistanceByName(req.Name, to, req.RoadDistances[to]) {
				r.log.Warn("road distance to unknown stop ignored", zap.String("from", req.Name),
					zap.String("to", to))
			}
		}
	}

	for _, req := range doc.BaseRequests {
		if req.Type != BaseRequestBus {
			continue
		}
		for _, stop := range req.Stops {
			if _, ok := cat.GetStopID(stop); !ok {
				r.log.Warn("unknown stop dropped from bus route", zap.String("bus", req.Name),
					zap.String("stop", stop))
			}
		}
		if _, added := cat.AddRoute(req.Name, req.Stops, req.IsRoundtrip); !added {
			r.log.Warn("duplicate bus ignored", zap.String("bus", req.Name))
		}
	}

	r.log.Info("catalogue loaded", zap.Int("stops", cat.StopsCount()), zap.Int("buses", cat.BusesCount()))
	return cat
}

// Answer resolves every stat request. responses keep the order of the requests.
func (r *Reader) Answer(doc *Document, cat *catalogue.Catalogue) ([]any, error) {
	handler, err := NewRequestHandler(cat, doc.RoutingSettings, doc.RenderSettings, r.log, r.cacheSize)
	if err != nil {
		return nil, err
	}
	return concurrent.ProcessOrdered(r.numWorkers, doc.StatRequests, handler.Handle), nil
}

// Process reads one document from in and writes the json array of responses to out.
func (r *Reader) Process(in io.Reader, out io.Writer) error {
	doc, err := r.ReadDocument(in)
	if err != nil {
		return err
	}

	cat := r.BuildCatalogue(doc)

	responses, err := r.Answer(doc, cat)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(responses)
}
