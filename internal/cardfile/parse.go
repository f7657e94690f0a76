package cardfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMalformedLine is returned for a data line with more columns than the
// format defines.
var ErrMalformedLine = errors.New("malformed deck line")

// Header is the first line written by Write.
const Header = "Name\tNumber\tType\tCost\tPower\tToughness\tRules"

const columnCount = 7

// ParseFile reads a deck list from path. Files ending in .yaml or .yml are
// read as YAML; anything else as tab-separated text.
func ParseFile(path string) (Records, error) {
	f, err := os.Open(path)
	if err != nil {
		return Records{}, fmt.Errorf("open deck file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return ParseTSV(f)
	}
}

// ParseTSV reads a tab-separated deck list. The first line is a header and
// is ignored; blank lines are skipped. Missing trailing columns are left
// empty.
func ParseTSV(r io.Reader) (Records, error) {
	records := NewRecords()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo == 1 {
			continue
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		items := strings.Split(line, "\t")
		if len(items) > columnCount {
			return Records{}, fmt.Errorf("line %d: %w: %d columns", lineNo, ErrMalformedLine, len(items))
		}
		for len(items) < columnCount {
			items = append(items, "")
		}

		rec, err := newRecord(items[0], items[1], items[2], items[3], items[4], items[5], items[6])
		if err != nil {
			return Records{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records.Set(rec)
	}
	if err := scanner.Err(); err != nil {
		return Records{}, fmt.Errorf("read deck file: %w", err)
	}
	return records, nil
}

// yamlDeck is the YAML deck-list document.
type yamlDeck struct {
	Cards []yamlCard `yaml:"cards"`
}

type yamlCard struct {
	Name      string `yaml:"name"`
	Number    string `yaml:"number"`
	Type      string `yaml:"type"`
	Cost      string `yaml:"cost"`
	Power     string `yaml:"power"`
	Toughness string `yaml:"toughness"`
	Rules     string `yaml:"rules"`
}

// ParseYAML reads a YAML deck list of the form
//
//	cards:
//	  - name: Grizzly Bears
//	    number: 2
//	    type: Creature
//	    cost: "1 G"
//	    power: 2
//	    toughness: 2
//	    rules: ""
func ParseYAML(r io.Reader) (Records, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Records{}, fmt.Errorf("read deck file: %w", err)
	}

	var doc yamlDeck
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Records{}, fmt.Errorf("parse deck YAML: %w", err)
	}

	records := NewRecords()
	for i, c := range doc.Cards {
		rec, err := newRecord(c.Name, c.Number, c.Type, c.Cost, c.Power, c.Toughness, c.Rules)
		if err != nil {
			return Records{}, fmt.Errorf("card %d: %w", i+1, err)
		}
		records.Set(rec)
	}
	return records, nil
}

func newRecord(name, number, cardType, cost, power, toughness, rules string) (CardRecord, error) {
	counts, err := ParseCost(cost)
	if err != nil {
		return CardRecord{}, err
	}
	return CardRecord{
		Name:      name,
		Number:    ParseField(number),
		Type:      cardType,
		Cost:      counts,
		CostText:  cost,
		Power:     ParseField(power),
		Toughness: ParseField(toughness),
		Rules:     rules,
	}, nil
}

// Write writes records as a tab-separated deck list with a header line.
func Write(w io.Writer, records Records) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header + "\n"); err != nil {
		return fmt.Errorf("write deck header: %w", err)
	}
	for rec := range records.All() {
		cost := rec.CostText
		if cost == "" {
			cost = FormatCost(rec.Cost)
		}
		line := strings.Join([]string{
			rec.Name,
			rec.Number.Raw,
			rec.Type,
			cost,
			rec.Power.Raw,
			rec.Toughness.Raw,
			rec.Rules,
		}, "\t")
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("write deck line %q: %w", rec.Name, err)
		}
	}
	return bw.Flush()
}

// WriteFile writes records to path, replacing any existing file.
func WriteFile(path string, records Records) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create deck file: %w", err)
	}
	if err := Write(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
