package ctrouting

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
)

// osmScanner is the common surface of osmxml.Scanner and osmpbf.Scanner,
// whichever one LoadParsingState picks based on file extension.
type osmScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

func newScanner(filename string, file *os.File) (osmScanner, error) {
	switch ext := filepath.Ext(filename); ext {
	case ".osm", ".xml":
		return osmxml.New(context.Background(), file), nil
	case ".pbf":
		return osmpbf.New(context.Background(), file, 4), nil
	default:
		return nil, fmt.Errorf("file extension '%s' for file '%s' is not handled yet", ext, filename)
	}
}

// LoadParsingState reads an OSM XML or PBF document into a ParsingState
// (C7). Unlike a road-network importer, it does not filter ways by
// highway class: every way with two or more nodes is routable here, since
// this system walks whatever geometry connects two platforms, not just
// roads. Relations are kept only when they carry platform tags, for C9.
func LoadParsingState(filename string, verbose bool) (*ParsingState, error) {
	if verbose {
		fmt.Printf("Opening file: '%s'...\n", filename)
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "can't open OSM file")
	}
	defer file.Close()

	if verbose {
		fmt.Printf("Scanning ways...")
	}
	st := time.Now()
	ways := []Way{}
	nodesSeen := make(map[osm.NodeID]struct{})
	{
		scanner, err := newScanner(filename, file)
		if err != nil {
			return nil, err
		}
		defer scanner.Close()

		for scanner.Scan() {
			obj := scanner.Object()
			if obj.ObjectID().Type() != "way" {
				continue
			}
			way := obj.(*osm.Way)
			if len(way.Nodes) < 2 {
				continue
			}
			nodeIDs := make([]osm.NodeID, len(way.Nodes))
			for i, wn := range way.Nodes {
				nodeIDs[i] = wn.ID
				nodesSeen[wn.ID] = struct{}{}
			}
			tags := make(osm.Tags, len(way.Tags))
			copy(tags, way.Tags)
			ways = append(ways, Way{ID: way.ID, Nodes: nodeIDs, Tags: tags})
		}
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "scanner error on ways")
		}
	}
	if verbose {
		fmt.Printf("Done in %v\n\tWays: %d\n", time.Since(st), len(ways))
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "can't repeat seeking after way scan")
	}

	if verbose {
		fmt.Printf("Scanning nodes...")
	}
	st = time.Now()
	nodes := make([]Node, 0, len(nodesSeen))
	{
		scanner, err := newScanner(filename, file)
		if err != nil {
			return nil, err
		}
		defer scanner.Close()

		for scanner.Scan() {
			obj := scanner.Object()
			if obj.ObjectID().Type() != "node" {
				continue
			}
			node := obj.(*osm.Node)
			if _, ok := nodesSeen[node.ID]; !ok {
				continue
			}
			delete(nodesSeen, node.ID)
			nodes = append(nodes, Node{ID: node.ID, Lat: node.Lat, Lon: node.Lon})
		}
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "scanner error on nodes")
		}
	}
	sortNodesByID(nodes)
	if verbose {
		fmt.Printf("Done in %v\n\tNodes: %d\n", time.Since(st), len(nodes))
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "can't repeat seeking after node scan")
	}

	if verbose {
		fmt.Printf("Scanning relations...")
	}
	st = time.Now()
	relations := []Relation{}
	{
		scanner, err := newScanner(filename, file)
		if err != nil {
			return nil, err
		}
		defer scanner.Close()

		for scanner.Scan() {
			obj := scanner.Object()
			if obj.ObjectID().Type() != "relation" {
				continue
			}
			relation := obj.(*osm.Relation)
			if !IsPlatform(relation.Tags) {
				continue
			}
			tags := make(osm.Tags, len(relation.Tags))
			copy(tags, relation.Tags)
			relations = append(relations, Relation{ID: relation.ID, Members: relation.Members, Tags: tags})
		}
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "scanner error on relations")
		}
	}
	if verbose {
		fmt.Printf("Done in %v\n\tPlatform relations: %d\n", time.Since(st), len(relations))
	}

	return &ParsingState{Nodes: nodes, Ways: ways, Relations: relations}, nil
}
