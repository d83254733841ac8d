package xsd

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"aqwari.net/xml/xmltree"
)

// Parse parses a single in-memory schema document. Include and import
// locations are recorded but not followed; use Load or ParseFile for
// schema sets spread over several files.
func Parse(data []byte) (*Schema, error) {
	d, err := parseDocument(data, "schema", "")
	if err != nil {
		return nil, err
	}
	return newParser([]*document{d}).build()
}

// ParseFile loads the schema at filename together with every document it
// includes, redefines or imports through a relative schemaLocation.
func ParseFile(filename string) (*Schema, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", filename, err)
	}
	return Load(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
}

// Load reads name from fsys and follows its include, redefine and import
// locations. A missing import is skipped; a missing include is an error.
func Load(fsys fs.FS, name string) (*Schema, error) {
	type pending struct {
		location  string
		chameleon string
		optional  bool
	}
	queue := []pending{{location: path.Clean(name)}}
	seen := map[string]bool{}
	var docs []*document

	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if seen[next.location] {
			continue
		}
		seen[next.location] = true

		data, err := fs.ReadFile(fsys, next.location)
		if err != nil {
			if next.optional {
				continue
			}
			return nil, fmt.Errorf("failed to read schema %s: %w", next.location, err)
		}
		d, err := parseDocument(data, next.location, next.chameleon)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)

		for _, c := range children(d.root) {
			loc := c.Attr("", "schemaLocation")
			if loc == "" || strings.Contains(loc, "://") {
				continue
			}
			ref := pending{location: path.Clean(path.Join(path.Dir(next.location), loc))}
			switch c.Name.Local {
			case "include", "redefine":
				ref.chameleon = d.targetNS
			case "import":
				ref.optional = true
			default:
				continue
			}
			queue = append(queue, ref)
		}
	}
	return newParser(docs).build()
}

func parseDocument(data []byte, location, chameleonNS string) (*document, error) {
	root, err := xmltree.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", location, err)
	}
	return newDocument(root, location, chameleonNS)
}
