package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-outputfield/internal/logging"
	"github.com/goliatone/go-outputfield/pkg/binding"
	"github.com/goliatone/go-outputfield/pkg/display"
	"github.com/goliatone/go-outputfield/pkg/fieldmeta"
	"github.com/goliatone/go-outputfield/pkg/record"
)

type options struct {
	metadata string
	openapi  string
	object   string
	field    string
	record   string
	reset    string
	logLevel string
}

type output struct {
	DisplayType      binding.DisplayType `json:"displayType"`
	ParentRecordName *record.Value       `json:"parentRecordName,omitempty"`
	FieldValue       *record.Value       `json:"fieldValue,omitempty"`
	DisplayText      string              `json:"displayText"`
	Outcome          binding.Outcome     `json:"outcome"`
}

func main() {
	var opts options
	flag.StringVar(&opts.metadata, "metadata", "", "field metadata catalog (JSON or YAML)")
	flag.StringVar(&opts.openapi, "openapi", "", "OpenAPI document to derive field metadata from")
	flag.StringVar(&opts.object, "object", "", "object name in the catalog")
	flag.StringVar(&opts.field, "field", "", "field name to bind (prompted when empty)")
	flag.StringVar(&opts.record, "record", "", "JSON record file (stdin if empty)")
	flag.StringVar(&opts.reset, "reset", "keep", "miss policy: keep or clear")
	flag.StringVar(&opts.logLevel, "log-level", "info", "log level")
	flag.Parse()

	logger, err := logging.New(os.Stderr, opts.logLevel)
	if err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}

	var picker fieldPicker
	if isatty.IsTerminal(os.Stdin.Fd()) && opts.record != "" {
		picker = surveyPicker{}
	}

	if err := run(context.Background(), opts, os.Stdin, os.Stdout, picker, logger); err != nil {
		logger.WithError(err).Fatal("outputfield: bind failed")
	}
}

func run(ctx context.Context, opts options, stdin io.Reader, stdout io.Writer, picker fieldPicker, logger logrus.FieldLogger) error {
	catalog, err := loadCatalog(ctx, opts)
	if err != nil {
		return err
	}

	object := strings.TrimSpace(opts.object)
	if object == "" {
		objects := catalog.Objects()
		if len(objects) != 1 {
			return fmt.Errorf("outputfield: -object is required when the catalog defines %d objects", len(objects))
		}
		object = objects[0]
	}

	fieldName := strings.TrimSpace(opts.field)
	if fieldName == "" {
		if picker == nil {
			return errors.New("outputfield: -field is required")
		}
		fields := catalog.Fields(object)
		if fields == nil {
			return fmt.Errorf("%w: %s", fieldmeta.ErrObjectNotFound, object)
		}
		fieldName, err = picker.Pick(ctx, fmt.Sprintf("Field on %s", object), fields)
		if err != nil {
			return err
		}
	}

	meta, err := catalog.Field(object, fieldName)
	if err != nil {
		return err
	}

	rec, err := loadRecord(opts.record, stdin)
	if err != nil {
		return err
	}

	policy, err := binding.ParseResetPolicy(opts.reset)
	if err != nil {
		return err
	}

	state := &binding.State{
		FieldMetadata: meta,
		Record:        rec,
		FieldName:     fieldName,
	}
	binder := binding.New(binding.WithResetPolicy(policy), binding.WithLogger(logger))
	outcome := binder.Handle(state, binding.EventRecordChanged)

	logger.WithFields(logrus.Fields{
		"object":      object,
		"field":       fieldName,
		"displayType": string(state.DisplayType),
	}).Debug("outputfield: bound field")

	return writeOutput(stdout, state, outcome)
}

func loadCatalog(ctx context.Context, opts options) (*fieldmeta.Catalog, error) {
	switch {
	case opts.metadata != "" && opts.openapi != "":
		return nil, errors.New("outputfield: use either -metadata or -openapi, not both")
	case opts.metadata != "":
		return fieldmeta.Load(ctx, fieldmeta.SourceFromFile(opts.metadata))
	case opts.openapi != "":
		raw, err := os.ReadFile(opts.openapi)
		if err != nil {
			return nil, fmt.Errorf("outputfield: read openapi document: %w", err)
		}
		return fieldmeta.FromOpenAPI(ctx, raw)
	default:
		return nil, errors.New("outputfield: -metadata or -openapi is required")
	}
}

func loadRecord(path string, stdin io.Reader) (record.Record, error) {
	if path == "" {
		return record.Decode(stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("outputfield: open record: %w", err)
	}
	defer file.Close()
	return record.Decode(file)
}

func writeOutput(w io.Writer, state *binding.State, outcome binding.Outcome) error {
	out := output{
		DisplayType: state.DisplayType,
		Outcome:     outcome,
	}

	text := display.Text(state.FieldValue, state.DisplayType)
	if state.ParentRecordName.IsPresent() {
		name := state.ParentRecordName
		out.ParentRecordName = &name
		if state.DisplayType == binding.DisplayTypeReference {
			text = display.Text(name, binding.DisplayTypeString)
		}
	}
	if state.FieldValue.IsPresent() {
		value := state.FieldValue
		out.FieldValue = &value
	}
	out.DisplayText = text

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
