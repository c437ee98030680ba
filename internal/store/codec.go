package store

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/handiism/game-manager/internal/model"
	"gopkg.in/yaml.v3"
)

// Codec converts a catalog to and from its on-disk document.
type Codec interface {
	// Name returns a short identifier such as "xml".
	Name() string

	// Encode writes the whole catalog to w.
	Encode(w io.Writer, c model.Catalog) error

	// Decode reads a whole catalog from r.
	Decode(r io.Reader) (model.Catalog, error)
}

// ErrUnencodable is returned by Encode for a name or genre that the
// document format would not read back unchanged.
var ErrUnencodable = errors.New("text cannot be stored exactly")

// Available codecs.
var (
	XML  Codec = xmlCodec{}
	JSON Codec = jsonCodec{}
	YAML Codec = yamlCodec{}
)

// CodecFor picks a codec from the file extension of path.
// Unknown extensions use XML.
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	default:
		return XML
	}
}

// CodecByName returns the codec with the given name.
func CodecByName(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "xml":
		return XML, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return nil, fmt.Errorf("unknown document format %q", name)
	}
}

// xmlGameList mirrors the document written by earlier versions of the
// game manager, so existing games.xml files keep loading.
type xmlGameList struct {
	XMLName xml.Name  `xml:"GameList"`
	Games   []xmlGame `xml:"Game"`
}

type xmlGame struct {
	Name  string `xml:"Name"`
	Genre string `xml:"Genre"`
	Price string `xml:"Price"`
}

type xmlCodec struct{}

func (xmlCodec) Name() string { return "xml" }

func (xmlCodec) Encode(w io.Writer, c model.Catalog) error {
	if err := checkText(c, isXMLChar); err != nil {
		return err
	}

	doc := xmlGameList{Games: make([]xmlGame, 0, c.Len())}
	for _, g := range c.Games {
		doc.Games = append(doc.Games, xmlGame{Name: g.Name, Genre: g.Genre, Price: g.PriceText()})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (xmlCodec) Decode(r io.Reader) (model.Catalog, error) {
	var doc xmlGameList
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return model.Catalog{}, err
	}

	c := model.Catalog{Games: make([]model.Game, 0, len(doc.Games))}
	for i, g := range doc.Games {
		price, err := model.ParsePrice(g.Price)
		if err != nil {
			return model.Catalog{}, fmt.Errorf("game %d (%q): bad price %q: %w", i+1, g.Name, g.Price, err)
		}
		c.Append(model.NewGame(g.Name, g.Genre, price))
	}
	return c, nil
}

// checkText rejects names and genres that are not valid UTF-8 or, when
// allowed is set, that hold a rune outside it. Nothing is written then.
func checkText(c model.Catalog, allowed func(rune) bool) error {
	for i, g := range c.Games {
		for _, f := range [...]struct{ field, text string }{{"name", g.Name}, {"genre", g.Genre}} {
			if !utf8.ValidString(f.text) {
				return fmt.Errorf("game %d: %s %q is not valid UTF-8: %w", i+1, f.field, f.text, ErrUnencodable)
			}
			if allowed == nil {
				continue
			}
			for _, r := range f.text {
				if !allowed(r) {
					return fmt.Errorf("game %d: %s %q holds %U: %w", i+1, f.field, f.text, r, ErrUnencodable)
				}
			}
		}
	}
	return nil
}

// isXMLChar reports whether r is in the XML 1.0 Char production.
func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

// documentGame is the record layout shared by the JSON and YAML codecs.
type documentGame struct {
	Name  string  `json:"name" yaml:"name"`
	Genre string  `json:"genre" yaml:"genre"`
	Price float64 `json:"price" yaml:"price"`
}

type document struct {
	Games []documentGame `json:"games" yaml:"games"`
}

func toDocument(c model.Catalog) document {
	doc := document{Games: make([]documentGame, 0, c.Len())}
	for _, g := range c.Games {
		doc.Games = append(doc.Games, documentGame(g))
	}
	return doc
}

func fromDocument(doc document) (model.Catalog, error) {
	c := model.Catalog{Games: make([]model.Game, 0, len(doc.Games))}
	for i, g := range doc.Games {
		if math.IsNaN(g.Price) || math.IsInf(g.Price, 0) {
			return model.Catalog{}, fmt.Errorf("game %d (%q): %w", i+1, g.Name, model.ErrPriceNotFinite)
		}
		c.Append(model.Game(g))
	}
	return c, nil
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Encode(w io.Writer, c model.Catalog) error {
	if err := checkText(c, nil); err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toDocument(c))
}

func (jsonCodec) Decode(r io.Reader) (model.Catalog, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return model.Catalog{}, err
	}
	return fromDocument(doc)
}

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Encode(w io.Writer, c model.Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toDocument(c)); err != nil {
		return err
	}
	return enc.Close()
}

func (yamlCodec) Decode(r io.Reader) (model.Catalog, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return model.Catalog{}, err
	}
	return fromDocument(doc)
}
