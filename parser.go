package ctrouting

import "fmt"

// Parser carries the configuration needed to turn an OSM file into a
// ParsingState and RoutingData (C6/C7/C11).
type Parser struct {
	filename      string
	verbose       bool
	anchorsOutput string
}

func (parser *Parser) String() string {
	return fmt.Sprintf(`
Routing parser parameters:
	filename: '%s'
	verbose?: %t
	anchors_output: '%s'
	`,
		parser.filename,
		parser.verbose,
		parser.anchorsOutput,
	)
}

// NewParser builds a Parser from functional options.
func NewParser(options ...func(*Parser)) *Parser {
	parser := &Parser{}
	for _, option := range options {
		option(parser)
	}
	return parser
}

// WithFilename sets the OSM file to load.
func WithFilename(filename string) func(*Parser) {
	return func(parser *Parser) {
		parser.filename = filename
	}
}

// WithVerbose enables progress logging during ingestion and graph building.
func WithVerbose(verbose bool) func(*Parser) {
	return func(parser *Parser) {
		parser.verbose = verbose
	}
}

// WithAnchorsOutput records the path anchors are to be exported to as
// GeoJSON (C10). The Parser only stores it and reports it in String();
// BuildRoutingData does not export anchors.
func WithAnchorsOutput(path string) func(*Parser) {
	return func(parser *Parser) {
		parser.anchorsOutput = path
	}
}

// BuildRoutingData loads the parser's configured OSM file and builds the
// routing graph from it, in one call, matching the teacher's
// createNetwork pipeline shape.
func (parser *Parser) BuildRoutingData() (*ParsingState, *RoutingData, error) {
	state, err := LoadParsingState(parser.filename, parser.verbose)
	if err != nil {
		return nil, nil, err
	}
	data := BuildRoutingData(state, parser.verbose)
	return state, data, nil
}
